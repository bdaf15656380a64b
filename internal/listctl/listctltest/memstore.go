// Package listctltest provides an in-memory listctl.Store for tests.
package listctltest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

const (
	OpList   = "List"
	OpGet    = "Get"
	OpAdd    = "Add"
	OpUpdate = "Update"
	OpDelete = "Delete"
)

// MemStore keeps documents as values of T and applies partial updates
// through T's JSON field names, which match the stored field names.
type MemStore[T any] struct {
	mu       sync.Mutex
	docs     map[string]T
	order    []string
	seq      int
	calls    map[string]int
	writes   int
	failures map[string]map[int]error
}

func NewMemStore[T any](seed ...T) *MemStore[T] {
	s := &MemStore[T]{
		docs:     make(map[string]T),
		calls:    make(map[string]int),
		failures: make(map[string]map[int]error),
	}
	for _, item := range seed {
		id := idOf(item)
		if id == "" {
			s.seq++
			id = fmt.Sprintf("seed-%d", s.seq)
			item = mustWith(item, model.Fields{"id": id})
		}
		s.docs[id] = item
		s.order = append(s.order, id)
	}
	return s
}

// FailAt makes the n-th call (1-based) of op return err.
func (s *MemStore[T]) FailAt(op string, n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures[op] == nil {
		s.failures[op] = make(map[int]error)
	}
	s.failures[op][n] = err
}

// FailNext makes the next call of op return err.
func (s *MemStore[T]) FailNext(op string, err error) {
	s.mu.Lock()
	n := s.calls[op] + 1
	s.mu.Unlock()
	s.FailAt(op, n, err)
}

func (s *MemStore[T]) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// Writes counts successful Add, Update and Delete calls.
func (s *MemStore[T]) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Docs returns every stored document in insertion order.
func (s *MemStore[T]) Docs() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.docs[id])
	}
	return out
}

func (s *MemStore[T]) List(ctx context.Context) ([]T, error) {
	if err := s.enter(ctx, OpList); err != nil {
		return nil, err
	}
	return s.Docs(), nil
}

func (s *MemStore[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := s.enter(ctx, OpGet); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return zero, model.ErrNotFound
	}
	return doc, nil
}

func (s *MemStore[T]) Add(ctx context.Context, item T) (string, error) {
	if err := s.enter(ctx, OpAdd); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := idOf(item)
	if id == "" {
		s.seq++
		id = fmt.Sprintf("doc-%d", s.seq)
	}
	doc, err := with(item, model.Fields{"id": id})
	if err != nil {
		return "", err
	}

	s.docs[id] = doc
	s.order = append(s.order, id)
	s.writes++
	return id, nil
}

func (s *MemStore[T]) Update(ctx context.Context, id string, fields model.Fields) error {
	if err := s.enter(ctx, OpUpdate); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return model.ErrNotFound
	}
	next, err := with(doc, fields)
	if err != nil {
		return err
	}
	s.docs[id] = next
	s.writes++
	return nil
}

func (s *MemStore[T]) Delete(ctx context.Context, id string) error {
	if err := s.enter(ctx, OpDelete); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.docs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.writes++
	return nil
}

func (s *MemStore[T]) enter(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[op]++
	if err, ok := s.failures[op][s.calls[op]]; ok {
		return err
	}
	return nil
}

func idOf[T any](item T) string {
	raw, err := json.Marshal(item)
	if err != nil {
		return ""
	}
	var m struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(raw, &m)
	return m.ID
}

func with[T any](item T, fields model.Fields) (T, error) {
	var out T

	raw, err := json.Marshal(item)
	if err != nil {
		return out, err
	}
	m := make(map[string]any)
	if err := json.Unmarshal(raw, &m); err != nil {
		return out, err
	}
	for k, v := range fields {
		m[k] = v
	}
	if raw, err = json.Marshal(m); err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

func mustWith[T any](item T, fields model.Fields) T {
	out, err := with(item, fields)
	if err != nil {
		panic(err)
	}
	return out
}
