package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

// CRUDService is the common surface of every master-data service.
type CRUDService[T any] interface {
	List(ctx context.Context, query string, start int) (model.Page[T], error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, auth model.AuthorizationContext, item T) (string, error)
	Update(ctx context.Context, auth model.AuthorizationContext, id string, item T) error
	Delete(ctx context.Context, auth model.AuthorizationContext, id string) error
}

type crud[T any] struct {
	svc    CRUDService[T]
	decode func(*http.Request) (T, error)
}

// mountCRUD registers list/get/create/update/delete under the current
// route. A nil decode reads the body straight into T.
func mountCRUD[T any](r chi.Router, svc CRUDService[T], decode func(*http.Request) (T, error)) {
	if decode == nil {
		decode = decodeModel[T]
	}
	c := crud[T]{svc: svc, decode: decode}

	r.Get("/", c.list)
	r.Post("/", c.create)
	r.Get("/{id}", c.get)
	r.Put("/{id}", c.update)
	r.Delete("/{id}", c.delete)
}

func decodeModel[T any](r *http.Request) (T, error) {
	var item T
	err := decode(r, &item)
	return item, err
}

func (c crud[T]) list(w http.ResponseWriter, r *http.Request) {
	start, err := queryInt(r, "start", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := c.svc.List(r.Context(), r.URL.Query().Get("q"), start)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, page)
}

func (c crud[T]) get(w http.ResponseWriter, r *http.Request) {
	item, err := c.svc.Get(r.Context(), pathID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, item)
}

func (c crud[T]) create(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	item, err := c.decode(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := c.svc.Create(r.Context(), auth, item)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, idResponse{ID: id})
}

func (c crud[T]) update(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	item, err := c.decode(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := c.svc.Update(r.Context(), auth, pathID(r), item); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c crud[T]) delete(w http.ResponseWriter, r *http.Request) {
	auth, err := authOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := c.svc.Delete(r.Context(), auth, pathID(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
