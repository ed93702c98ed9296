// Package document turns uploaded file bytes into plain text. The declared
// filename selects the extraction path by extension only; the bytes are
// never sniffed.
package document

import (
    "bytes"
    "fmt"
    "path/filepath"
    "strings"

    docx "github.com/fumiama/go-docx"
    "github.com/ledongthuc/pdf"

    "github.com/hyperifyio/tmclassify/internal/truncate"
)

// UnsupportedFormatError reports an upload whose extension has no
// extraction path. The filename is preserved for the user-facing message.
type UnsupportedFormatError struct {
    Filename string
}

func (e *UnsupportedFormatError) Error() string {
    return fmt.Sprintf("unsupported file type: %s. Please upload a PDF, DOCX, or TXT file.", e.Filename)
}

// Extract converts an uploaded file to text. Supported extensions are
// .pdf, .docx, .txt, .md and .csv; anything else fails with
// *UnsupportedFormatError. The result is bounded to truncate.Cap on every
// path.
func Extract(data []byte, filename string) (string, error) {
    var text string
    switch strings.ToLower(filepath.Ext(filename)) {
    case ".pdf":
        t, err := fromPDF(data)
        if err != nil {
            return "", fmt.Errorf("read pdf %s: %w", filename, err)
        }
        text = t
    case ".docx":
        t, err := fromDocx(data)
        if err != nil {
            return "", fmt.Errorf("read docx %s: %w", filename, err)
        }
        text = t
    case ".txt", ".md", ".csv":
        // Invalid UTF-8 sequences become replacement runes; this path
        // never fails.
        text = strings.ToValidUTF8(string(data), "�")
    default:
        return "", &UnsupportedFormatError{Filename: filename}
    }
    return truncate.ToCap(text), nil
}

// fromPDF concatenates per-page text with newlines. A page that yields no
// extractable text contributes an empty string rather than an error.
func fromPDF(data []byte) (string, error) {
    r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
    if err != nil {
        return "", err
    }
    pages := make([]string, 0, r.NumPage())
    for i := 1; i <= r.NumPage(); i++ {
        page := r.Page(i)
        if page.V.IsNull() {
            pages = append(pages, "")
            continue
        }
        text, err := page.GetPlainText(nil)
        if err != nil {
            text = ""
        }
        pages = append(pages, text)
    }
    return strings.Join(pages, "\n"), nil
}

// fromDocx concatenates paragraph text with newlines.
func fromDocx(data []byte) (string, error) {
    doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
    if err != nil {
        return "", err
    }
    var paragraphs []string
    for _, item := range doc.Document.Body.Items {
        if p, ok := item.(*docx.Paragraph); ok {
            paragraphs = append(paragraphs, p.String())
        }
    }
    return strings.Join(paragraphs, "\n"), nil
}
