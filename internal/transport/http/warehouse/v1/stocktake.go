package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/export"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

func (a *api) listStockTakes(w http.ResponseWriter, r *http.Request) {
	start, err := queryInt(r, "start", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := a.svc.StockTakes.List(r.Context(), r.URL.Query().Get("q"), start)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, page)
}

func (a *api) getStockTake(w http.ResponseWriter, r *http.Request) {
	st, err := a.svc.StockTakes.Get(r.Context(), pathID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, st)
}

func (a *api) startStockTake(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req stockTakeStartRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	id, err := a.svc.StockTakes.Start(r.Context(), auth, req.toParams())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, idResponse{ID: id})
}

func (a *api) saveCounts(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req countsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	progress, err := a.svc.StockTakes.SaveProgress(r.Context(), auth, pathID(r), req.Counts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, progress)
}

func (a *api) stockTakeProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := a.svc.StockTakes.Progress(r.Context(), pathID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, progress)
}

func (a *api) stockTakeVariance(w http.ResponseWriter, r *http.Request) {
	report, err := a.svc.StockTakes.Variance(r.Context(), pathID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, report)
}

func (a *api) approveStockTake(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req approveStockTakeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := a.svc.StockTakes.Approve(r.Context(), auth, pathID(r), req.Comments); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) rejectStockTake(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := a.svc.StockTakes.Reject(r.Context(), auth, pathID(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) completeStockTake(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := a.svc.StockTakes.Complete(r.Context(), auth, pathID(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) setStockTakeStatus(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req statusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := a.svc.StockTakes.SetStatus(r.Context(), auth, pathID(r), model.StockTakeStatus(req.Status)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// countSheet serves ?format=xlsx (default) or pdf.
func (a *api) countSheet(w http.ResponseWriter, r *http.Request) {
	format, ok := export.ParseFormat(r.URL.Query().Get("format"))
	if !ok {
		writeError(w, r, fmt.Errorf("%w: format must be xlsx or pdf", model.ErrValidation))
		return
	}

	id := pathID(r)
	name := fmt.Sprintf("count-sheet-%s.%s", id, format)
	sendFile(w, r, format.ContentType(), name, func(out io.Writer) error {
		return a.svc.StockTakes.CountSheet(r.Context(), out, id, format)
	})
}
