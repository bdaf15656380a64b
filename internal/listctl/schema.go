package listctl

import (
	"context"
	"time"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

// Store is the document store contract the controller needs. Nothing else
// is used: no server-side filtering, joins or transactions.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Add(ctx context.Context, item T) (string, error)
	Update(ctx context.Context, id string, fields model.Fields) error
	Delete(ctx context.Context, id string) error
}

// Key is a business code that must be unique, compared case-insensitively.
type Key[T any] struct {
	Name  string
	Value func(T) string
	// Scope, when set, limits uniqueness to items sharing the same scope
	// value (e.g. location ids within one warehouse).
	Scope func(T) string
}

// Schema describes one entity type to a Controller.
type Schema[T any] struct {
	Resource model.Resource
	ID       func(T) string

	Normalize  func(T) T
	Validate   func(T) error
	Keys       []Key[T]
	Searchable func(T) []string
	// Order sorts the mirror after every refresh; nil keeps store order.
	Order func(a, b T) int
	// Fields returns the editable stored fields written by Update.
	Fields func(T) model.Fields
	// Stamp sets creation timestamps before Add.
	Stamp func(item T, now time.Time) T
	// Check runs after the duplicate scan with the current mirror.
	// editingID is empty on create.
	Check func(ctx context.Context, items []T, item T, editingID string) error
}

type Options struct {
	PageSize     int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Now          func() time.Time
}

const DefaultPageSize = 20

// NewestFirst orders items by a timestamp, latest first.
func NewestFirst[T any](at func(T) time.Time) func(a, b T) int {
	return func(a, b T) int { return at(b).Compare(at(a)) }
}
