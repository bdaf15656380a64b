package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/transport/http/middleware"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

const maxBodyBytes = 1 << 20

var validate = validator.New()

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type idResponse struct {
	ID string `json:"id"`
}

// decode reads a JSON body into dst and checks its validate tags.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", model.ErrValidation, err)
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", model.ErrValidation, describe(verrs))
		}
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	return nil
}

func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "write response", logger.ErrorF(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", logger.String("path", r.URL.Path), logger.ErrorF(err))
	}
	writeJSON(w, r, status, errorResponse{Code: status, Message: err.Error()})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized // 401
	case errors.Is(err, model.ErrPermissionDenied):
		return http.StatusForbidden // 403
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, model.ErrDuplicateKey), errors.Is(err, model.ErrInvalidTransition):
		return http.StatusConflict // 409
	case errors.Is(err, model.ErrCapacityExceeded), errors.Is(err, model.ErrInsufficientStock):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, model.ErrFetchFailed), errors.Is(err, model.ErrWriteFailed):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}

// authOf returns the caller set by the auth middleware. Routes are only
// mounted behind it, so a missing value is a wiring error.
func authOf(r *http.Request) (model.AuthorizationContext, error) {
	auth, ok := middleware.AuthFromContext(r.Context())
	if !ok {
		return model.AuthorizationContext{}, model.ErrUnauthorized
	}
	return auth, nil
}

func pathID(r *http.Request) string { return chi.URLParam(r, "id") }

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", model.ErrValidation, name)
	}
	return n, nil
}

// queryDate parses YYYY-MM-DD; an empty value is nil.
func queryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", model.ErrValidation, name)
	}
	return &t, nil
}

// sendFile renders into memory first so a failed export still gets a
// proper error status.
func sendFile(w http.ResponseWriter, r *http.Request, contentType, filename string, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(r.Context(), "write file", logger.String("filename", filename), logger.ErrorF(err))
	}
}
