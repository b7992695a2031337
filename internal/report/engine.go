// Package report fetches the occupancy report once and derives the tabular
// views consumed by the exporters and the preview server.
package report

import (
	"context"
	"sync"

	"warehub/internal/models"
)

// FetchFunc loads the full report payload from the API.
type FetchFunc func(ctx context.Context) (*models.OccupancyReport, error)

// Notifier surfaces report fetch failures to the user.
type Notifier interface {
	Notify(message string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

// Engine holds the authoritative report rows and a client-side page window
// over them. Unlike the entity lists, the payload is complete after one
// fetch; LoadMore only ever widens the window.
type Engine struct {
	fetch   FetchFunc
	notify  Notifier
	perPage int

	mu           sync.Mutex
	rows         []models.UnitOccupancy
	display      []models.UnitOccupancy
	downloadLink string
	page         int
	loading      bool
	loadingMore  bool
	initialLoad  bool
}

func NewEngine(fetch FetchFunc, notify Notifier, perPage int) *Engine {
	if perPage <= 0 {
		perPage = 10
	}
	if notify == nil {
		notify = nopNotifier{}
	}
	return &Engine{
		fetch:       fetch,
		notify:      notify,
		perPage:     perPage,
		page:        1,
		initialLoad: true,
	}
}

// Fetch loads the report. On failure the rows and display window are emptied
// and the user is notified. InitialLoad flips to false exactly once, after
// the first attempt regardless of outcome.
func (e *Engine) Fetch(ctx context.Context) {
	e.mu.Lock()
	if e.loading {
		e.mu.Unlock()
		return
	}
	e.loading = true
	e.mu.Unlock()

	rep, err := e.fetch(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.loading = false
	e.initialLoad = false
	e.page = 1
	if err != nil {
		e.rows = nil
		e.display = nil
		e.downloadLink = ""
		e.notify.Notify("Failed to load report. Please try again.")
		return
	}
	e.rows = rep.ReportData
	e.downloadLink = rep.DownloadLink
	e.rewindow()
}

// LoadMore widens the display window over the already-complete local rows.
// It never issues a network call and is idempotent once every row is shown.
func (e *Engine) LoadMore() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.loading || e.loadingMore {
		return
	}
	if e.page*e.perPage >= len(e.rows) {
		return
	}
	e.loadingMore = true
	e.page++
	e.rewindow()
	e.loadingMore = false
}

func (e *Engine) rewindow() {
	n := e.page * e.perPage
	if n > len(e.rows) {
		n = len(e.rows)
	}
	e.display = e.rows[:n]
}

// Rows returns the full report data set.
func (e *Engine) Rows() []models.UnitOccupancy {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.UnitOccupancy, len(e.rows))
	copy(out, e.rows)
	return out
}

// Display returns the currently windowed rows.
func (e *Engine) Display() []models.UnitOccupancy {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.UnitOccupancy, len(e.display))
	copy(out, e.display)
	return out
}

func (e *Engine) Page() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.page
}

func (e *Engine) TotalPages() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return (len(e.rows) + e.perPage - 1) / e.perPage
}

func (e *Engine) InitialLoad() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialLoad
}

// DownloadLink is the server-rendered artifact URL, unused by the local
// exporters but shown alongside them.
func (e *Engine) DownloadLink() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.downloadLink
}
