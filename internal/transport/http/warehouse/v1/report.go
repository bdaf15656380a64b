package http

import (
	"io"
	"net/http"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/export"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/report"
)

func (a *api) lowStock(w http.ResponseWriter, r *http.Request) {
	rows, err := a.svc.Reports.LowStock(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, rows)
}

func (a *api) lowStockExport(w http.ResponseWriter, r *http.Request) {
	rows, err := a.svc.Reports.LowStock(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	sendFile(w, r, export.XLSXContentType, "low-stock.xlsx", func(out io.Writer) error {
		return report.ExportLowStock(out, rows)
	})
}

func (a *api) valuation(w http.ResponseWriter, r *http.Request) {
	var req filtersRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	rep, err := a.svc.Reports.Valuation(r.Context(), req.Filters, req.Logic)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, rep)
}

func (a *api) valuationExport(w http.ResponseWriter, r *http.Request) {
	var req filtersRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	rep, err := a.svc.Reports.Valuation(r.Context(), req.Filters, req.Logic)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sendFile(w, r, export.XLSXContentType, "stock-valuation.xlsx", func(out io.Writer) error {
		return report.ExportValuation(out, rep)
	})
}

func (a *api) inquiry(w http.ResponseWriter, r *http.Request) {
	var req filtersRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := a.svc.Reports.Inquiry(r.Context(), req.Filters, req.Logic, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, rows)
}

func (a *api) inquiryExport(w http.ResponseWriter, r *http.Request) {
	var req filtersRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := a.svc.Reports.Inquiry(r.Context(), req.Filters, req.Logic, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sendFile(w, r, export.XLSXContentType, "stock-inquiry.xlsx", func(out io.Writer) error {
		return report.ExportInquiry(out, rows)
	})
}

func (a *api) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := a.svc.Reports.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, d)
}

func (a *api) dashboardExport(w http.ResponseWriter, r *http.Request) {
	d, err := a.svc.Reports.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	sendFile(w, r, export.XLSXContentType, "dashboard.xlsx", func(out io.Writer) error {
		return report.ExportDashboard(out, d)
	})
}
