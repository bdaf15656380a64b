package report

import (
	"io"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/export"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

func ExportLowStock(w io.Writer, rows []model.LowStockRow) error {
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, []any{r.SAPNumber, r.Name, r.Location, r.CurrentStock, r.SafetyLevel, string(r.Status)})
	}
	return export.WriteXLSX(w, export.Sheet{
		Name:   "Low Stock",
		Header: []string{"SAP Number", "Part Name", "Location", "Current Stock", "Safety Level", "Status"},
		Rows:   out,
	})
}

// ExportValuation appends a grand total row below the parts.
func ExportValuation(w io.Writer, report model.ValuationReport) error {
	out := make([][]any, 0, len(report.Rows)+1)
	for _, r := range report.Rows {
		out = append(out, []any{r.SAPNumber, r.Name, r.Category, r.InternalRef, r.CurrentStock, r.UnitPrice, r.TotalValue})
	}
	out = append(out, []any{"", "", "", "", "", "Total", report.TotalValue})

	return export.WriteXLSX(w, export.Sheet{
		Name:   "Stock Valuation",
		Header: []string{"SAP Number", "Part Name", "Category", "Internal Ref", "Current Stock", "Unit Price", "Total Value"},
		Rows:   out,
	})
}

func ExportInquiry(w io.Writer, rows []model.InquiryRow) error {
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, []any{r.SAPNumber, r.Name, r.InternalRef, r.Category, r.Location, r.CurrentStock, r.SafetyLevel, string(r.StockStatus)})
	}
	return export.WriteXLSX(w, export.Sheet{
		Name:   "Stock Inquiry",
		Header: []string{"SAP Number", "Part Name", "Internal Ref", "Category", "Location", "Current Stock", "Safety Level", "Stock Status"},
		Rows:   out,
	})
}

func ExportDashboard(w io.Writer, d model.Dashboard) error {
	categories := make([][]any, 0, len(d.Categories))
	for _, c := range d.Categories {
		categories = append(categories, []any{c.Name, c.Value})
	}

	return export.WriteXLSX(w,
		export.Sheet{
			Name:   "Summary",
			Header: []string{"Metric", "Value"},
			Rows: [][]any{
				{"Total Parts", d.TotalParts},
				{"Low Stock Items", d.LowStockCount},
				{"Pending PRs", d.PendingPRs},
				{"Total Stock Value", d.TotalStockValue},
			},
		},
		export.Sheet{Name: "Categories", Header: []string{"Category", "Parts"}, Rows: categories},
	)
}
