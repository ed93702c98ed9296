package truncate

import (
    "math"
    "strings"
)

// Cap is the maximum number of characters of business or reference text
// that may reach the classification prompt. The same bound applies to
// file-extracted text, scraped pages, and raw free-text descriptions.
const Cap = 12000

// String bounds s to at most max characters (runes, not bytes, so a
// multi-byte rune is never split). Non-positive max returns s unchanged.
func String(s string, max int) string {
    if max <= 0 {
        return s
    }
    r := []rune(s)
    if len(r) <= max {
        return s
    }
    return string(r[:max])
}

// ToCap bounds s to the fixed Cap.
func ToCap(s string) string {
    return String(s, Cap)
}

// EstimateTokens converts a character count into an estimated token count
// using a conservative ~4 chars per token heuristic, with ceiling rounding.
func EstimateTokens(s string) int {
    if len(s) == 0 {
        return 0
    }
    return int(math.Ceil(float64(len(s)) / 4.0))
}

// ModelContextTokens returns a rough maximum context window for a model
// name. Unknown models fall back to a conservative default. Used only to
// warn when the fixed Cap would overflow a small-context model; the Cap
// itself is never adjusted.
func ModelContextTokens(modelName string) int {
    name := strings.ToLower(strings.TrimSpace(modelName))
    if name == "" {
        return 8192
    }
    if v, ok := knownModelMax[name]; ok {
        return v
    }
    if strings.HasSuffix(name, "128k") {
        return 128_000
    }
    if strings.HasSuffix(name, "32k") {
        return 32_768
    }
    if strings.HasSuffix(name, "16k") {
        return 16_384
    }
    if strings.Contains(name, "-mini") {
        return 128_000
    }
    return 8192
}

var knownModelMax = map[string]int{
    "gpt-4o":        128_000,
    "gpt-4o-mini":   128_000,
    "gpt-4-turbo":   128_000,
    "gpt-4":         8_192,
    "gpt-3.5-turbo": 16_384,
}
