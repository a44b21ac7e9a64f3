package console

import (
	"context"
	"sync"

	"github.com/syauqi/course-admin/internal/model"
)

// FetchFunc loads one page of a paginated collection.
type FetchFunc[T any] func(ctx context.Context, page, limit int) (model.Page[T], error)

// Lister owns the paginated view state for one list screen: current page,
// total page count and the items on display. Every page change refetches
// that page wholesale; nothing is cached or merged, navigating back refetches.
//
// Each fetch carries a monotonically increasing sequence number. A response
// belonging to a superseded fetch is discarded, so a fast double-click or a
// second tab cannot clobber newer state with an older page.
type Lister[T any] struct {
	fetch FetchFunc[T]
	limit int

	mu         sync.Mutex
	page       int
	totalPages int
	items      []T
	seq        uint64
}

func NewLister[T any](fetch FetchFunc[T], limit int) *Lister[T] {
	return &Lister[T]{
		fetch:      fetch,
		limit:      limit,
		page:       1,
		totalPages: 1,
	}
}

// Snapshot returns a consistent view of the current state for rendering.
func (l *Lister[T]) Snapshot() (items []T, page, totalPages int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items, l.page, l.totalPages
}

func (l *Lister[T]) HasNext() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page < l.totalPages
}

func (l *Lister[T]) HasPrev() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page > 1
}

// Load fetches the current page. Used on first render and after mutations:
// the view must reflect server state, never a local assumption.
func (l *Lister[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	target := l.page
	l.mu.Unlock()
	return l.loadPage(ctx, target)
}

// Next advances one page. A no-op at the last page.
func (l *Lister[T]) Next(ctx context.Context) error {
	l.mu.Lock()
	if l.page >= l.totalPages {
		l.mu.Unlock()
		return nil
	}
	target := l.page + 1
	l.mu.Unlock()
	return l.loadPage(ctx, target)
}

// Prev recedes one page. A no-op at page 1.
func (l *Lister[T]) Prev(ctx context.Context) error {
	l.mu.Lock()
	if l.page <= 1 {
		l.mu.Unlock()
		return nil
	}
	target := l.page - 1
	l.mu.Unlock()
	return l.loadPage(ctx, target)
}

// Goto jumps to an explicit page. Only the lower bound is clamped before the
// fetch: totalPages is server truth and may not be known yet (a deep link can
// be the first request), so the upper bound is clamped after the response.
func (l *Lister[T]) Goto(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	return l.loadPage(ctx, page)
}

func (l *Lister[T]) loadPage(ctx context.Context, target int) error {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	limit := l.limit
	l.mu.Unlock()

	result, err := l.fetch(ctx, target, limit)

	l.mu.Lock()
	defer l.mu.Unlock()

	if seq != l.seq {
		// A later fetch owns the state now; this response is stale.
		return nil
	}
	if err != nil {
		// Prior state stays on screen; the caller logs and surfaces a notice.
		return err
	}

	l.page = target
	l.totalPages = result.TotalPages
	if l.totalPages < 1 {
		l.totalPages = 1
	}
	if l.page > l.totalPages {
		l.page = l.totalPages
	}
	l.items = result.Data
	return nil
}
