// Package lists owns the state behind paged, searchable, filterable entity
// collections: a server-fetched superset plus a client-side page window.
package lists

import (
	"context"
	"sync"
	"time"
)

// Entity is any domain record with a numeric identifier.
type Entity interface {
	EntityID() int
}

// FetchFunc loads the full superset for the given search/filter constraints.
type FetchFunc[T Entity] func(ctx context.Context, search, filter string) ([]T, error)

// DeleteFunc removes one entity by id on the server.
type DeleteFunc func(ctx context.Context, id int) error

// Notifier surfaces user-visible notifications. Fetch and delete failures are
// reported here and never returned to the render path.
type Notifier interface {
	Notify(message string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

const (
	DefaultPerPage  = 10
	DefaultDebounce = 500 * time.Millisecond
)

// Options tune a Controller. Zero values fall back to the defaults above.
// Search and Filter seed the query constraints for the first fetch.
type Options struct {
	PerPage  int
	Debounce time.Duration
	Notifier Notifier
	Search   string
	Filter   string
}

// Controller manages one screen's list state. All items for the active
// search/filter are held client-side; LoadMore only widens the visible
// window and never touches the network.
//
// Exactly one fetch may be in flight per controller; calls arriving while one
// is pending are dropped, not queued. Every fetch carries a sequence number
// and a completion that is no longer the latest issued is discarded, so a
// superseded response can never overwrite fresher state.
type Controller[T Entity] struct {
	fetch  FetchFunc[T]
	del    DeleteFunc
	notify Notifier

	perPage  int
	debounce time.Duration

	mu          sync.Mutex
	all         []T
	visible     []T
	page        int
	search      string
	filter      string
	loading     bool
	loadingMore bool
	refreshing  bool
	initialLoad bool
	removingID  int
	seq         uint64
	timer       *time.Timer
}

func NewController[T Entity](fetch FetchFunc[T], del DeleteFunc, opts Options) *Controller[T] {
	if opts.PerPage <= 0 {
		opts.PerPage = DefaultPerPage
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Notifier == nil {
		opts.Notifier = nopNotifier{}
	}
	return &Controller[T]{
		fetch:       fetch,
		del:         del,
		notify:      opts.Notifier,
		perPage:     opts.PerPage,
		debounce:    opts.Debounce,
		search:      opts.Search,
		filter:      opts.Filter,
		page:        1,
		initialLoad: true,
	}
}

// Fetch replaces the superset for the current search/filter and rewinds the
// window to the first page. Failures clear the list and notify; Fetch never
// reports an error to the caller.
func (c *Controller[T]) Fetch(ctx context.Context) {
	c.doFetch(ctx)
}

// Refresh is pull-to-refresh. Re-entrant calls while one is outstanding are
// ignored.
func (c *Controller[T]) Refresh(ctx context.Context) {
	c.mu.Lock()
	if c.refreshing {
		c.mu.Unlock()
		return
	}
	c.refreshing = true
	c.mu.Unlock()

	c.doFetch(ctx)

	c.mu.Lock()
	c.refreshing = false
	c.mu.Unlock()
}

func (c *Controller[T]) doFetch(ctx context.Context) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return
	}
	c.loading = true
	c.seq++
	seq := c.seq
	search, filter := c.search, c.filter
	c.mu.Unlock()

	items, err := c.fetch(ctx, search, filter)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.initialLoad = false
	if seq != c.seq {
		// A newer search or filter superseded this request.
		return
	}
	if err != nil {
		c.all = nil
		c.visible = nil
		c.page = 1
		c.notify.Notify("Failed to load data. Pull to refresh to try again.")
		return
	}
	c.all = items
	c.page = 1
	c.rewindow()
}

// LoadMore widens the visible window by one page. It is a no-op while a fetch
// or another LoadMore is busy, and once the superset is fully visible.
func (c *Controller[T]) LoadMore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading || c.loadingMore {
		return
	}
	if c.page*c.perPage >= len(c.all) {
		return
	}
	c.loadingMore = true
	c.page++
	c.rewindow()
	c.loadingMore = false
}

// Remove optimistically marks id as mid-deletion, issues the delete, and
// splices the entity out on success. Failure leaves the list untouched apart
// from clearing the marker. A single deletion may be in flight at a time.
func (c *Controller[T]) Remove(ctx context.Context, id int) {
	c.mu.Lock()
	if c.removingID != 0 {
		c.mu.Unlock()
		return
	}
	c.removingID = id
	c.mu.Unlock()

	err := c.del(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.removingID = 0
	if err != nil {
		c.notify.Notify("Failed to delete item.")
		return
	}
	for i := range c.all {
		if c.all[i].EntityID() == id {
			c.all = append(c.all[:i:i], c.all[i+1:]...)
			break
		}
	}
	c.clampPage()
	c.rewindow()
}

// AddItem prepends a freshly created entity without re-fetching.
func (c *Controller[T]) AddItem(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.all = append([]T{item}, c.all...)
	c.rewindow()
}

// UpdateItem replaces the entity with the same id without re-fetching.
func (c *Controller[T]) UpdateItem(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.all {
		if c.all[i].EntityID() == item.EntityID() {
			c.all[i] = item
			break
		}
	}
	c.rewindow()
}

// SetSearchTerm records the new term and schedules a fetch after the debounce
// interval, cancelling any earlier pending timer (trailing debounce). Any
// in-flight fetch is invalidated so its result cannot land on top of the new
// term's.
func (c *Controller[T]) SetSearchTerm(ctx context.Context, term string) {
	c.mu.Lock()
	c.search = term
	c.page = 1
	c.seq++
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.doFetch(ctx)
	})
	c.mu.Unlock()
}

// SetFilter applies a status filter and fetches immediately.
func (c *Controller[T]) SetFilter(ctx context.Context, filter string) {
	c.mu.Lock()
	c.filter = filter
	c.page = 1
	c.seq++
	c.mu.Unlock()
	c.doFetch(ctx)
}

func (c *Controller[T]) rewindow() {
	n := c.page * c.perPage
	if n > len(c.all) {
		n = len(c.all)
	}
	c.visible = c.all[:n]
}

func (c *Controller[T]) clampPage() {
	max := (len(c.all) + c.perPage - 1) / c.perPage
	if max < 1 {
		max = 1
	}
	if c.page > max {
		c.page = max
	}
}

// Visible returns the currently windowed items.
func (c *Controller[T]) Visible() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.visible))
	copy(out, c.visible)
	return out
}

// Total reports the size of the fetched superset.
func (c *Controller[T]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.all)
}

func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return (len(c.all) + c.perPage - 1) / c.perPage
}

func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller[T]) InitialLoad() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialLoad
}

func (c *Controller[T]) RemovingID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removingID
}

func (c *Controller[T]) SearchTerm() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}
