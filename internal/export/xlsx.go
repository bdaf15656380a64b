package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const maxSheetName = 31

// Sheet is one worksheet: a bold header row followed by data rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

// WriteXLSX renders sheets into a single workbook written to w.
func WriteXLSX(w io.Writer, sheets ...Sheet) error {
	const op = "export.WriteXLSX"

	if len(sheets) == 0 {
		return fmt.Errorf("%s: no sheets", op)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("%s: header style: %w", op, err)
	}

	first := f.GetSheetName(0)
	for i, s := range sheets {
		name := SheetName(s.Name, i)
		if i == 0 {
			err = f.SetSheetName(first, name)
		} else {
			_, err = f.NewSheet(name)
		}
		if err != nil {
			return fmt.Errorf("%s: sheet %q: %w", op, name, err)
		}

		if err := writeSheet(f, name, s, bold); err != nil {
			return fmt.Errorf("%s: sheet %q: %w", op, name, err)
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("%s: write: %w", op, err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, s Sheet, headerStyle int) error {
	row := 1
	if len(s.Header) > 0 {
		header := lo.ToAnySlice(s.Header)
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return err
		}
		if err := f.SetRowStyle(name, 1, 1, headerStyle); err != nil {
			return err
		}
		row++
	}

	for _, values := range s.Rows {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return err
		}
		row++
	}

	if n := len(s.Header); n > 0 {
		last, err := excelize.ColumnNumberToName(n)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, "A", last, 18); err != nil {
			return err
		}
	}
	return nil
}

// SheetName strips characters Excel rejects and truncates to 31 runes.
// An empty name becomes "SheetN".
func SheetName(name string, index int) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(name))

	if name == "" {
		return fmt.Sprintf("Sheet%d", index+1)
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	return name
}
