package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const PDFContentType = "application/pdf"

// Table is a titled PDF table. Widths are in millimetres; missing widths
// share the remaining page width equally.
type Table struct {
	Title    string
	Subtitle string
	Header   []string
	Widths   []float64
	Rows     [][]string
}

const (
	pageWidth   = 210.0
	pageMargin  = 10.0
	rowHeight   = 7.0
	pageBreakAt = 275.0
)

// WriteTablePDF renders t on A4 portrait pages, repeating the header on
// every page.
func WriteTablePDF(w io.Writer, t Table) error {
	const op = "export.WriteTablePDF"

	if len(t.Header) == 0 {
		return fmt.Errorf("%s: no columns", op)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(t.Title, true)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	widths := columnWidths(t.Header, t.Widths)

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, t.Title, "", 1, "L", false, 0, "")
	if t.Subtitle != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, t.Subtitle, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
	tableHeader(pdf, t.Header, widths)

	pdf.SetFont("Arial", "", 9)
	for _, row := range t.Rows {
		if pdf.GetY()+rowHeight > pageBreakAt {
			pdf.AddPage()
			tableHeader(pdf, t.Header, widths)
			pdf.SetFont("Arial", "", 9)
		}
		for i, cw := range widths {
			var v string
			if i < len(row) {
				v = row[i]
			}
			pdf.CellFormat(cw, rowHeight, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func tableHeader(pdf *gofpdf.Fpdf, header []string, widths []float64) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range header {
		pdf.CellFormat(widths[i], rowHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func columnWidths(header []string, given []float64) []float64 {
	widths := make([]float64, len(header))
	rest := pageWidth - 2*pageMargin
	free := 0
	for i := range widths {
		if i < len(given) && given[i] > 0 {
			widths[i] = given[i]
			rest -= given[i]
		} else {
			free++
		}
	}
	if free == 0 {
		return widths
	}

	share := max(rest/float64(free), 10)
	for i := range widths {
		if widths[i] == 0 {
			widths[i] = share
		}
	}
	return widths
}
