package http

import (
	"net/http"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

func (a *api) listRequisitions(w http.ResponseWriter, r *http.Request) {
	start, err := queryInt(r, "start", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := a.svc.Requisitions.List(r.Context(), r.URL.Query().Get("q"), start)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, page)
}

func (a *api) getRequisition(w http.ResponseWriter, r *http.Request) {
	pr, err := a.svc.Requisitions.Get(r.Context(), pathID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, pr)
}

func (a *api) createRequisition(w http.ResponseWriter, r *http.Request) {
	a.saveRequisition(w, r, "")
}

func (a *api) updateRequisition(w http.ResponseWriter, r *http.Request) {
	a.saveRequisition(w, r, pathID(r))
}

func (a *api) saveRequisition(w http.ResponseWriter, r *http.Request, id string) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req requisitionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := a.svc.Requisitions.Save(r.Context(), auth, req.toModel(id))
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

func (a *api) approveRequisition(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := a.svc.Requisitions.Approve(r.Context(), auth, pathID(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) rejectRequisition(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req rejectRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := a.svc.Requisitions.Reject(r.Context(), auth, pathID(r), req.Reason); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) deleteRequisition(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := a.svc.Requisitions.Delete(r.Context(), auth, pathID(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) requisitionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.svc.Requisitions.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stats)
}

func (a *api) filterRequisitions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := a.svc.Requisitions.Filter(r.Context(), q.Get("q"), model.PRStatus(q.Get("status")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, items)
}
