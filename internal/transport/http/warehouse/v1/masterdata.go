package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/export"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

type nextIDResponse struct {
	ID string `json:"id"`
}

func decodeSupplier(r *http.Request) (model.Supplier, error) {
	var req supplierRequest
	if err := decode(r, &req); err != nil {
		return model.Supplier{}, err
	}
	return req.toModel(), nil
}

func (a *api) departmentNextID(w http.ResponseWriter, r *http.Request) {
	id, err := a.svc.Departments.NextID(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, nextIDResponse{ID: id})
}

func (a *api) warehouseNextID(w http.ResponseWriter, r *http.Request) {
	id, err := a.svc.Warehouses.NextID(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, nextIDResponse{ID: id})
}

func (a *api) warehouseStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.svc.Warehouses.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stats)
}

func (a *api) locationsByWarehouse(w http.ResponseWriter, r *http.Request) {
	items, err := a.svc.Locations.ByWarehouse(r.Context(), pathID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, items)
}

// remainingCapacity accepts ?exclude=<locationId> so an edit form can
// check the capacity left without counting the location being edited.
func (a *api) remainingCapacity(w http.ResponseWriter, r *http.Request) {
	c, err := a.svc.Locations.RemainingCapacity(r.Context(), pathID(r), r.URL.Query().Get("exclude"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, c)
}

func (a *api) pendingParts(w http.ResponseWriter, r *http.Request) {
	parts, err := a.svc.MaterialGroups.PendingParts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, parts)
}

func (a *api) assignParts(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req assignPartsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := a.svc.MaterialGroups.AssignParts(r.Context(), auth, pathID(r), req.PartIDs); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) partBySAP(w http.ResponseWriter, r *http.Request) {
	part, err := a.svc.Parts.BySAPNumber(r.Context(), chi.URLParam(r, "sap"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, part)
}

func (a *api) binLabels(w http.ResponseWriter, r *http.Request) {
	var req labelsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	sendFile(w, r, export.PDFContentType, "bin-labels.pdf", func(out io.Writer) error {
		return a.svc.StorageBins.Labels(r.Context(), out, req.BinIDs)
	})
}

func (a *api) filterMachines(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := a.svc.Machines.Filter(r.Context(), q.Get("q"), model.RecordStatus(q.Get("status")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, items)
}
