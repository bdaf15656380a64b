package listctl

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/metrics"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

// Controller keeps an in-memory mirror of one collection and routes every
// mutation through validation, a duplicate scan over the mirror and a write
// to the store. A write invalidates the mirror and triggers a full refresh.
//
// Uniqueness and id generation are best-effort: the checks read the mirror
// and the write happens later without a lock, so concurrent writers can
// still produce duplicates.
type Controller[T any] struct {
	schema Schema[T]
	store  Store[T]
	opts   Options

	mu        sync.RWMutex
	items     []T
	loaded    bool
	stale     bool
	loading   bool
	lastErr   error
	query     string
	pageStart int
}

func New[T any](store Store[T], schema Schema[T], opts Options) *Controller[T] {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Controller[T]{
		schema: schema,
		store:  store,
		opts:   opts,
	}
}

func (c *Controller[T]) Resource() model.Resource { return c.schema.Resource }

func (c *Controller[T]) PageSize() int { return c.opts.PageSize }

// Refresh replaces the mirror with the full collection. On failure the
// previous items are kept and LastError reports model.ErrFetchFailed.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	const op = "listctl.Refresh"
	log := logger.With(logger.String("resource", string(c.schema.Resource)))

	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	rctx, cancel := c.readContext(ctx)
	defer cancel()

	items, err := c.store.List(rctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.lastErr = model.ErrFetchFailed
		metrics.MirrorRefreshFailures.WithLabelValues(string(c.schema.Resource)).Inc()
		log.Error(ctx, "refresh mirror", logger.ErrorF(err))
		return fmt.Errorf("%s %s: %w: %w", op, c.schema.Resource, model.ErrFetchFailed, err)
	}

	if c.schema.Order != nil {
		slices.SortStableFunc(items, c.schema.Order)
	}
	c.items = items
	c.loaded = true
	c.stale = false
	c.lastErr = nil
	return nil
}

// Invalidate marks the mirror stale; the next read refreshes it first.
func (c *Controller[T]) Invalidate() {
	c.mu.Lock()
	c.stale = true
	c.mu.Unlock()
}

func (c *Controller[T]) Stale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stale || !c.loaded
}

// Items returns a copy of the mirror, refreshing it first when stale.
func (c *Controller[T]) Items(ctx context.Context) ([]T, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...), nil
}

// Lookup finds an item by store id in the mirror.
func (c *Controller[T]) Lookup(ctx context.Context, id string) (T, error) {
	var zero T

	items, err := c.Items(ctx)
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if c.schema.ID(it) == id {
			return it, nil
		}
	}
	return zero, fmt.Errorf("%s %q: %w", c.schema.Resource, id, model.ErrNotFound)
}

// Fetch reads one item straight from the store, bypassing the mirror.
func (c *Controller[T]) Fetch(ctx context.Context, id string) (T, error) {
	const op = "listctl.Fetch"

	rctx, cancel := c.readContext(ctx)
	defer cancel()

	item, err := c.store.Get(rctx, id)
	if err != nil {
		var zero T
		if errors.Is(err, model.ErrNotFound) {
			return zero, fmt.Errorf("%s %s %q: %w", op, c.schema.Resource, id, err)
		}
		return zero, fmt.Errorf("%s %s: %w: %w", op, c.schema.Resource, model.ErrFetchFailed, err)
	}
	return item, nil
}

func (c *Controller[T]) Create(ctx context.Context, auth model.AuthorizationContext, draft T) (string, error) {
	const op = "listctl.Create"

	if !auth.CanAdd(c.schema.Resource) {
		return "", fmt.Errorf("%s %s: %w", op, c.schema.Resource, model.ErrPermissionDenied)
	}

	item, err := c.prepare(ctx, draft, "")
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", op, c.schema.Resource, err)
	}

	if c.schema.Stamp != nil {
		item = c.schema.Stamp(item, c.opts.Now())
	}

	id, err := c.add(ctx, item)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	c.refreshAfterWrite(ctx)
	return id, nil
}

func (c *Controller[T]) Update(ctx context.Context, auth model.AuthorizationContext, id string, next T) error {
	const op = "listctl.Update"

	if !auth.CanEdit(c.schema.Resource) {
		return fmt.Errorf("%s %s: %w", op, c.schema.Resource, model.ErrPermissionDenied)
	}

	if _, err := c.Lookup(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	item, err := c.prepare(ctx, next, id)
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, c.schema.Resource, err)
	}

	if err := c.Patch(ctx, id, c.schema.Fields(item)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.refreshAfterWrite(ctx)
	return nil
}

func (c *Controller[T]) Delete(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "listctl.Delete"

	if !auth.CanDelete(c.schema.Resource) {
		return fmt.Errorf("%s %s: %w", op, c.schema.Resource, model.ErrPermissionDenied)
	}

	wctx, cancel := c.writeContext(ctx)
	defer cancel()

	err := c.store.Delete(wctx, id)
	c.Invalidate()
	if err != nil {
		return fmt.Errorf("%s %s %q: %w", op, c.schema.Resource, id, writeErr(err))
	}

	c.refreshAfterWrite(ctx)
	return nil
}

// Patch writes fields to one document without validation or a permission
// check; callers own both. The mirror is invalidated but not refreshed.
func (c *Controller[T]) Patch(ctx context.Context, id string, fields model.Fields) error {
	wctx, cancel := c.writeContext(ctx)
	defer cancel()

	err := c.store.Update(wctx, id, fields)
	c.Invalidate()
	if err != nil {
		return fmt.Errorf("%s %q: %w", c.schema.Resource, id, writeErr(err))
	}
	return nil
}

// Insert stamps and adds item without validation or a permission check.
// It is used for append-only records written as a side effect of another
// operation.
func (c *Controller[T]) Insert(ctx context.Context, item T) (string, error) {
	if c.schema.Stamp != nil {
		item = c.schema.Stamp(item, c.opts.Now())
	}
	return c.add(ctx, item)
}

// Remove deletes one document without a permission check.
func (c *Controller[T]) Remove(ctx context.Context, id string) error {
	wctx, cancel := c.writeContext(ctx)
	defer cancel()

	err := c.store.Delete(wctx, id)
	c.Invalidate()
	if err != nil {
		return fmt.Errorf("%s %q: %w", c.schema.Resource, id, writeErr(err))
	}
	return nil
}

// Browse refreshes a stale mirror and returns one page of the items
// matching query.
func (c *Controller[T]) Browse(ctx context.Context, query string, start int) (model.Page[T], error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return model.Page[T]{}, err
	}
	return c.View(query, start), nil
}

// Search returns every item matching query, refreshing a stale mirror.
func (c *Controller[T]) Search(ctx context.Context, query string) ([]T, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter(c.items, query), nil
}

// View pages the current mirror without touching the store.
func (c *Controller[T]) View(query string, start int) model.Page[T] {
	c.mu.RLock()
	total := len(c.items)
	filtered := c.filter(c.items, query)
	c.mu.RUnlock()

	start = clampStart(start, len(filtered), c.opts.PageSize)
	end := min(start+c.opts.PageSize, len(filtered))

	return model.Page[T]{
		Items:    append([]T(nil), filtered[start:end]...),
		Start:    start,
		PageSize: c.opts.PageSize,
		Total:    total,
		Filtered: len(filtered),
		HasPrev:  start > 0,
		HasNext:  end < len(filtered),
	}
}

// SetQuery changes the search query and rewinds to the first page.
func (c *Controller[T]) SetQuery(q string) {
	c.mu.Lock()
	c.query = q
	c.pageStart = 0
	c.mu.Unlock()
}

// FilteredView is recomputed on every call.
func (c *Controller[T]) FilteredView() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter(c.items, c.query)
}

func (c *Controller[T]) Page() model.Page[T] {
	c.mu.RLock()
	q, start := c.query, c.pageStart
	c.mu.RUnlock()
	return c.View(q, start)
}

func (c *Controller[T]) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.filter(c.items, c.query))
	if c.pageStart+c.opts.PageSize < n {
		c.pageStart += c.opts.PageSize
	}
}

func (c *Controller[T]) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pageStart = max(c.pageStart-c.opts.PageSize, 0)
}

// State is a point-in-time view of the controller for rendering.
type State struct {
	Resource  model.Resource
	Count     int
	Query     string
	PageStart int
	PageSize  int
	Loading   bool
	Stale     bool
	LastError error
}

func (c *Controller[T]) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return State{
		Resource:  c.schema.Resource,
		Count:     len(c.items),
		Query:     c.query,
		PageStart: c.pageStart,
		PageSize:  c.opts.PageSize,
		Loading:   c.loading,
		Stale:     c.stale || !c.loaded,
		LastError: c.lastErr,
	}
}

func (c *Controller[T]) prepare(ctx context.Context, draft T, editingID string) (T, error) {
	item := draft
	if c.schema.Normalize != nil {
		item = c.schema.Normalize(item)
	}

	if c.schema.Validate != nil {
		if err := c.schema.Validate(item); err != nil {
			return item, err
		}
	}

	items, err := c.Items(ctx)
	if err != nil {
		return item, err
	}

	if err := c.checkDuplicates(items, item, editingID); err != nil {
		return item, err
	}

	if c.schema.Check != nil {
		if err := c.schema.Check(ctx, items, item, editingID); err != nil {
			return item, err
		}
	}

	return item, nil
}

func (c *Controller[T]) checkDuplicates(items []T, item T, editingID string) error {
	for _, key := range c.schema.Keys {
		want := strings.ToLower(strings.TrimSpace(key.Value(item)))
		if want == "" {
			continue
		}

		for _, other := range items {
			if editingID != "" && c.schema.ID(other) == editingID {
				continue
			}
			if key.Scope != nil && key.Scope(other) != key.Scope(item) {
				continue
			}
			if strings.ToLower(strings.TrimSpace(key.Value(other))) == want {
				return fmt.Errorf("%w: %s %q already exists", model.ErrDuplicateKey, key.Name, key.Value(item))
			}
		}
	}
	return nil
}

func (c *Controller[T]) add(ctx context.Context, item T) (string, error) {
	wctx, cancel := c.writeContext(ctx)
	defer cancel()

	id, err := c.store.Add(wctx, item)
	c.Invalidate()
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.schema.Resource, writeErr(err))
	}
	return id, nil
}

// refreshAfterWrite re-reads the collection after a successful write. A
// failed refresh leaves the mirror stale and is not reported to the caller:
// the write itself has already happened.
func (c *Controller[T]) refreshAfterWrite(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil {
		logger.Warn(ctx, "mirror left stale after write",
			logger.String("resource", string(c.schema.Resource)),
			logger.ErrorF(err),
		)
	}
}

func (c *Controller[T]) ensureLoaded(ctx context.Context) error {
	if !c.Stale() {
		return nil
	}
	return c.Refresh(ctx)
}

func (c *Controller[T]) filter(items []T, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || c.schema.Searchable == nil {
		return append([]T(nil), items...)
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		hay := strings.ToLower(strings.Join(c.schema.Searchable(it), " "))
		if strings.Contains(hay, q) {
			out = append(out, it)
		}
	}
	return out
}

func (c *Controller[T]) readContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opts.ReadTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.opts.ReadTimeout)
}

func (c *Controller[T]) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opts.WriteTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.opts.WriteTimeout)
}

// clampStart keeps start inside [0, n); past the end it snaps to the start
// of the last page.
func clampStart(start, n, size int) int {
	if n == 0 || start < 0 {
		return 0
	}
	if start >= n {
		return ((n - 1) / size) * size
	}
	return start
}

func writeErr(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", model.ErrWriteFailed, err)
}
