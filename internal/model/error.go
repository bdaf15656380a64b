package model

import "errors"

var (
	ErrValidation        = errors.New("validation failed")         // 400
	ErrUnauthorized      = errors.New("unauthorized")              // 401
	ErrPermissionDenied  = errors.New("permission denied")         // 403
	ErrNotFound          = errors.New("not found")                 // 404
	ErrDuplicateKey      = errors.New("duplicate key")             // 409
	ErrInvalidTransition = errors.New("invalid status transition") // 409
	ErrCapacityExceeded  = errors.New("capacity exceeded")         // 422
	ErrInsufficientStock = errors.New("insufficient stock")        // 422
	ErrFetchFailed       = errors.New("fetch failed")              // 502
	ErrWriteFailed       = errors.New("write failed")              // 502
)
