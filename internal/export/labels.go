package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Label is one QR sticker. Code is encoded in the QR image and printed
// under it.
type Label struct {
	Code     string
	Title    string
	Subtitle string
}

// LabelLayout places labels on an A4 sheet in a Cols x Rows grid.
type LabelLayout struct {
	Cols       int
	Rows       int
	MarginTop  float64
	MarginLeft float64
	GapX       float64
	GapY       float64
}

var DefaultLabelLayout = LabelLayout{
	Cols:       3,
	Rows:       8,
	MarginTop:  10,
	MarginLeft: 8,
	GapX:       4,
	GapY:       2,
}

// WriteLabelsPDF renders one QR label per entry, paging as the grid fills.
func WriteLabelsPDF(w io.Writer, labels []Label, layout LabelLayout) error {
	const op = "export.WriteLabelsPDF"

	if len(labels) == 0 {
		return fmt.Errorf("%s: no labels", op)
	}
	if layout.Cols <= 0 || layout.Rows <= 0 {
		layout = DefaultLabelLayout
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	const pageW, pageH = 210.0, 297.0
	labelW := (pageW - 2*layout.MarginLeft - float64(layout.Cols-1)*layout.GapX) / float64(layout.Cols)
	labelH := (pageH - 2*layout.MarginTop - float64(layout.Rows-1)*layout.GapY) / float64(layout.Rows)
	perPage := layout.Cols * layout.Rows

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}

	for i, l := range labels {
		if i%perPage == 0 {
			pdf.AddPage()
		}
		slot := i % perPage
		x := layout.MarginLeft + float64(slot%layout.Cols)*(labelW+layout.GapX)
		y := layout.MarginTop + float64(slot/layout.Cols)*(labelH+layout.GapY)

		png, err := qrcode.Encode(l.Code, qrcode.Medium, 256)
		if err != nil {
			return fmt.Errorf("%s: encode %q: %w", op, l.Code, err)
		}

		name := fmt.Sprintf("qr_%d", i)
		pdf.RegisterImageOptionsReader(name, imgOpts, bytes.NewReader(png))

		qr := min(labelH-4, labelW*0.45)
		pdf.ImageOptions(name, x+1, y+(labelH-qr)/2, qr, qr, false, imgOpts, 0, "")

		textX := x + qr + 3
		textW := labelW - qr - 4
		pdf.SetXY(textX, y+labelH/2-7)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(textW, 6, l.Code, "", 2, "L", false, 0, "")
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(textW, 4, l.Title, "", 2, "L", false, 0, "")
		pdf.CellFormat(textW, 4, l.Subtitle, "", 0, "L", false, 0, "")

		pdf.Rect(x, y, labelW, labelH, "D")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
