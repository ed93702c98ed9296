// Package report renders a classification result as a downloadable PDF.
package report

import (
    "fmt"
    "io"
    "strings"

    "github.com/jung-kurt/gofpdf"

    "github.com/hyperifyio/tmclassify/internal/classify"
)

// WritePDF renders one page-flowing summary of the result: the source,
// then each classification with its confidence and terms. Lines the
// parser could not interpret are printed verbatim.
func WritePDF(w io.Writer, result classify.Result) error {
    pdf := gofpdf.New("P", "mm", "A4", "")
    pdf.SetFont("Helvetica", "", 11)
    pdf.AddPage()

    pdf.SetFont("Helvetica", "B", 14)
    pdf.CellFormat(0, 8, "Trademark Classification", "", 1, "L", false, 0, "")
    pdf.SetFont("Helvetica", "", 10)
    pdf.CellFormat(0, 6, "Source: "+result.Source, "", 1, "L", false, 0, "")
    pdf.Ln(4)

    for _, rec := range result.Classifications {
        if rec.Number == 0 && rec.Name == "" {
            pdf.SetFont("Helvetica", "I", 10)
            pdf.MultiCell(0, 5, rec.Raw, "", "L", false)
            pdf.Ln(2)
            continue
        }
        heading := fmt.Sprintf("Class %d", rec.Number)
        if rec.Name != "" {
            heading += " - " + rec.Name
        }
        if rec.Confidence > 0 {
            heading += fmt.Sprintf(" (%d%%)", rec.Confidence)
        }
        pdf.SetFont("Helvetica", "B", 11)
        pdf.CellFormat(0, 6, heading, "", 1, "L", false, 0, "")
        if len(rec.Terms) > 0 {
            pdf.SetFont("Helvetica", "", 10)
            pdf.MultiCell(0, 5, strings.Join(rec.Terms, "; "), "", "L", false)
        }
        pdf.Ln(2)
    }

    if len(result.Classifications) == 0 {
        pdf.SetFont("Helvetica", "I", 10)
        pdf.MultiCell(0, 5, "No classifications were returned.", "", "L", false)
    }

    return pdf.Output(w)
}
