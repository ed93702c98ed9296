package classify

import (
    "bufio"
    "regexp"
    "strconv"
    "strings"
)

var (
    // Full form: Category 9 – Scientific Apparatus (85%), software; sensors
    // The keyword is case-insensitive and "Class" is accepted because
    // models frequently echo the reference page's own wording. Hyphen and
    // en-dash are interchangeable separators.
    fullLineRe = regexp.MustCompile(`(?i)^(?:category|class)\s+(\d+)\s*[–-]\s*(.+?)\s*\((\d+)\s*%\)\s*,?\s*(.*)$`)

    // Fallback form without name or confidence: Category 35, advertising; ...
    numberLineRe = regexp.MustCompile(`(?i)^(?:category|class)\s+(\d+)\s*,?\s*(.*)$`)
)

// Parse converts the model's raw answer into one Record per non-blank
// line. Lines matching neither accepted form degrade to an unparsed
// record rather than failing: the model's format is not contractually
// guaranteed and partial results beat total failure.
func Parse(raw string) []Record {
    records := make([]Record, 0)
    scanner := bufio.NewScanner(strings.NewReader(raw))
    scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
    for scanner.Scan() {
        line := strings.TrimSpace(scanner.Text())
        if line == "" {
            continue
        }
        records = append(records, parseLine(line))
    }
    return records
}

func parseLine(line string) Record {
    if m := fullLineRe.FindStringSubmatch(line); m != nil {
        return Record{
            Number:     atoi(m[1]),
            Name:       strings.TrimSpace(m[2]),
            Confidence: atoi(m[3]),
            Terms:      splitTerms(m[4]),
            Raw:        line,
        }
    }
    if m := numberLineRe.FindStringSubmatch(line); m != nil {
        return Record{
            Number: atoi(m[1]),
            Terms:  splitTerms(m[2]),
            Raw:    line,
        }
    }
    return Record{Terms: []string{}, Raw: line}
}

// splitTerms splits a semicolon-separated term list, trimming each entry
// and dropping blanks so the result never carries empty terms.
func splitTerms(s string) []string {
    terms := make([]string, 0)
    for _, part := range strings.Split(s, ";") {
        if t := strings.TrimSpace(part); t != "" {
            terms = append(terms, t)
        }
    }
    return terms
}

func atoi(s string) int {
    n, _ := strconv.Atoi(s)
    return n
}
