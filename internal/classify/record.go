// Package classify builds the trademark classification prompt, calls the
// model, and parses its line-oriented answer into structured records.
package classify

// Record is one parsed line of the model's answer. A line that matched
// neither of the accepted forms keeps Number 0, an empty Name and no
// Terms; Raw always carries the verbatim line so nothing is lost.
type Record struct {
    Number     int      `json:"category_number"`
    Name       string   `json:"category_name"`
    Confidence int      `json:"confidence"`
    Terms      []string `json:"terms"`
    Raw        string   `json:"raw_line"`
}

// Result is the structured outcome of one classification request.
type Result struct {
    // Source identifies where the business text came from: the URL, the
    // uploaded filename, or a literal marker for free-text input.
    Source          string   `json:"source"`
    Classifications []Record `json:"classifications"`
    // Raw is the model's complete untouched answer.
    Raw string `json:"raw"`
}
