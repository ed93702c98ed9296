package document

import (
    "bytes"
    "errors"
    "strings"
    "testing"
    "unicode/utf8"

    docx "github.com/fumiama/go-docx"
    "github.com/jung-kurt/gofpdf"

    "github.com/hyperifyio/tmclassify/internal/truncate"
)

func TestExtract_PlainTextExtensions(t *testing.T) {
    for _, name := range []string{"about.txt", "README.md", "products.csv", "UPPER.TXT"} {
        got, err := Extract([]byte("we sell handmade soaps"), name)
        if err != nil {
            t.Fatalf("%s: unexpected error: %v", name, err)
        }
        if got != "we sell handmade soaps" {
            t.Fatalf("%s: got %q", name, got)
        }
    }
}

func TestExtract_InvalidUTF8NeverFails(t *testing.T) {
    data := []byte{'o', 'k', 0xff, 0xfe, ' ', 't', 'e', 'x', 't'}
    got, err := Extract(data, "notes.txt")
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if !utf8.ValidString(got) {
        t.Fatalf("result is not valid UTF-8: %q", got)
    }
    if !strings.Contains(got, "�") {
        t.Fatalf("invalid bytes not replaced: %q", got)
    }
    if !strings.HasPrefix(got, "ok") || !strings.HasSuffix(got, " text") {
        t.Fatalf("valid bytes lost: %q", got)
    }
}

func TestExtract_UnsupportedExtension(t *testing.T) {
    for _, name := range []string{"deck.pptx", "archive.zip", "noext", "image.png"} {
        _, err := Extract([]byte("irrelevant"), name)
        var unsupported *UnsupportedFormatError
        if !errors.As(err, &unsupported) {
            t.Fatalf("%s: got %T %v, want *UnsupportedFormatError", name, err, err)
        }
        if unsupported.Filename != name {
            t.Fatalf("filename: got %q, want %q", unsupported.Filename, name)
        }
        if !strings.Contains(err.Error(), name) {
            t.Fatalf("message must name the file: %q", err.Error())
        }
    }
}

func TestExtract_TruncatesToCap(t *testing.T) {
    data := []byte(strings.Repeat("a", 20000))
    got, err := Extract(data, "long.txt")
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if len([]rune(got)) != truncate.Cap {
        t.Fatalf("length: got %d, want %d", len([]rune(got)), truncate.Cap)
    }
}

// buildPDF renders one page per text so per-page extraction can be
// asserted against known content.
func buildPDF(t *testing.T, pages ...string) []byte {
    t.Helper()
    doc := gofpdf.New("P", "mm", "A4", "")
    doc.SetFont("Helvetica", "", 12)
    for _, text := range pages {
        doc.AddPage()
        doc.Cell(0, 10, text)
    }
    var buf bytes.Buffer
    if err := doc.Output(&buf); err != nil {
        t.Fatalf("build pdf: %v", err)
    }
    return buf.Bytes()
}

func TestExtract_PDFConcatenatesPages(t *testing.T) {
    data := buildPDF(t, "soapmaking", "candlemaking")
    got, err := Extract(data, "brochure.pdf")
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    first := strings.Index(got, "soapmaking")
    second := strings.Index(got, "candlemaking")
    if first < 0 || second < 0 {
        t.Fatalf("page text missing: %q", got)
    }
    if first > second {
        t.Fatalf("page order lost: %q", got)
    }
}

func TestExtract_DocxConcatenatesParagraphs(t *testing.T) {
    w := docx.New().WithDefaultTheme()
    w.AddParagraph().AddText("handmade soaps")
    w.AddParagraph().AddText("scented candles")
    var buf bytes.Buffer
    if _, err := w.WriteTo(&buf); err != nil {
        t.Fatalf("build docx: %v", err)
    }

    got, err := Extract(buf.Bytes(), "products.docx")
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    first := strings.Index(got, "handmade soaps")
    second := strings.Index(got, "scented candles")
    if first < 0 || second < 0 {
        t.Fatalf("paragraph text missing: %q", got)
    }
    if first > second {
        t.Fatalf("paragraph order lost: %q", got)
    }
}

func TestExtract_CorruptPDFFails(t *testing.T) {
    _, err := Extract([]byte("not a pdf"), "pitch.pdf")
    if err == nil {
        t.Fatalf("expected error for corrupt pdf")
    }
    var unsupported *UnsupportedFormatError
    if errors.As(err, &unsupported) {
        t.Fatalf("corrupt pdf must not surface as unsupported format")
    }
}

func TestExtract_CorruptDocxFails(t *testing.T) {
    _, err := Extract([]byte("not a docx"), "pitch.docx")
    if err == nil {
        t.Fatalf("expected error for corrupt docx")
    }
}
