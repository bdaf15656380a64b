package http

import (
	"net/http"
	"time"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

type numberResponse struct {
	Number string `json:"number"`
}

func (a *api) listMRFs(w http.ResponseWriter, r *http.Request) {
	start, err := queryInt(r, "start", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := a.svc.MRFs.List(r.Context(), r.URL.Query().Get("q"), start)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, page)
}

func (a *api) getMRF(w http.ResponseWriter, r *http.Request) {
	m, err := a.svc.MRFs.Get(r.Context(), pathID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, m)
}

func (a *api) createMRF(w http.ResponseWriter, r *http.Request) {
	a.saveMRF(w, r, "")
}

func (a *api) updateMRF(w http.ResponseWriter, r *http.Request) {
	a.saveMRF(w, r, pathID(r))
}

func (a *api) saveMRF(w http.ResponseWriter, r *http.Request, id string) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req mrfRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := a.svc.MRFs.Save(r.Context(), auth, req.toModel(id), req.Submit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	writeJSON(w, r, status, idResponse{ID: saved})
}

func (a *api) submitMRF(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := a.svc.MRFs.Submit(r.Context(), auth, pathID(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) approveMRF(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req commentsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := a.svc.MRFs.Approve(r.Context(), auth, pathID(r), req.Comments); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) rejectMRF(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req commentsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := a.svc.MRFs.Reject(r.Context(), auth, pathID(r), req.Comments); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) deleteMRF(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := a.svc.MRFs.Delete(r.Context(), auth, pathID(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) mrfStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.svc.MRFs.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stats)
}

func (a *api) filterMRFs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := queryDate(r, "from")
	if err != nil {
		writeError(w, r, err)
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := a.svc.MRFs.Filter(r.Context(), model.MRFFilter{
		Search:   q.Get("q"),
		Status:   model.MRFStatus(q.Get("status")),
		Priority: model.Priority(q.Get("priority")),
		From:     from,
		To:       to,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, items)
}

// mrfNextNumber previews the number for ?year=, defaulting to the current year.
func (a *api) mrfNextNumber(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year", time.Now().Year())
	if err != nil {
		writeError(w, r, err)
		return
	}

	n, err := a.svc.MRFs.NextNumber(r.Context(), year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, numberResponse{Number: n})
}
