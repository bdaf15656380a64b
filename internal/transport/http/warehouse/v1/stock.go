package http

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/export"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/movement"
)

func (a *api) stockIn(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req stockInRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := a.svc.Stock.StockIn(r.Context(), auth, req.toParams())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, entry)
}

func (a *api) stockOut(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req stockOutRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := a.svc.Stock.StockOut(r.Context(), auth, req.toParams())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, entry)
}

func (a *api) transfer(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req transferRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := a.svc.Stock.Transfer(r.Context(), auth, req.toParams())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, entry)
}

func movementFilter(r *http.Request) (model.MovementFilter, error) {
	q := r.URL.Query()
	from, err := queryDate(r, "from")
	if err != nil {
		return model.MovementFilter{}, err
	}
	to, err := queryDate(r, "to")
	if err != nil {
		return model.MovementFilter{}, err
	}
	return model.MovementFilter{
		Search: q.Get("q"),
		Type:   model.MovementType(q.Get("type")),
		From:   from,
		To:     to,
	}, nil
}

func (a *api) movementHistory(w http.ResponseWriter, r *http.Request) {
	f, err := movementFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logs, err := a.svc.Movements.History(r.Context(), f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, logs)
}

func (a *api) movementTrace(w http.ResponseWriter, r *http.Request) {
	logs, err := a.svc.Movements.Trace(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, logs)
}

func (a *api) movementExport(w http.ResponseWriter, r *http.Request) {
	f, err := movementFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logs, err := a.svc.Movements.History(r.Context(), f)
	if err != nil {
		writeError(w, r, err)
		return
	}

	name := fmt.Sprintf("movements-%s.xlsx", time.Now().Format("20060102"))
	sendFile(w, r, export.XLSXContentType, name, func(out io.Writer) error {
		return movement.Export(out, "Movements", logs)
	})
}
