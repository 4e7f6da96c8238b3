// Package session implements the per-session annotation state machine:
// one record store per upload, a filtered view over it, and the batch
// cursor the user pages through while validating points.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/agroview/groundtruth-backend-go/internal/models"
	"github.com/agroview/groundtruth-backend-go/internal/store"
)

// ErrEmptyView is returned by operations that need a point under the
// cursor when the current view has none.
var ErrEmptyView = errors.New("no points in the current view")

// Session is all annotation state for one user: the record store of
// the latest upload, the active filtered view, and the cursor/focus
// pair. All state is volatile; a session disappears with the process.
//
// Mutations are small and synchronous, so one coarse mutex per session
// is the whole concurrency story.
type Session struct {
	ID string

	mu        sync.Mutex
	batchSize int
	store     *store.RecordStore
	view      *store.View
	cursor    models.Cursor
	focus     models.Focus
	selection []int64

	// Cached non-validated index, invalidated by any validation write
	// or view rebuild.
	index   []models.IndexEntry
	indexOK bool

	lastSeen time.Time
}

func newSession(id string, batchSize int) *Session {
	return &Session{
		ID:        id,
		batchSize: batchSize,
		focus:     models.DefaultFocus(),
		lastSeen:  time.Now(),
	}
}

// InstallStore replaces the session's dataset wholesale. The filter is
// reset to All and the cursor to (0,0). Callers construct the store
// first and install only on success, so a failed load never disturbs
// the previous dataset.
func (s *Session) InstallStore(st *store.RecordStore, duplicatesRemoved int) models.LoadResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store = st
	s.rebuildView(models.CategoryAll)
	return models.LoadResult{
		TotalPoints:       st.Len(),
		DuplicatesRemoved: duplicatesRemoved,
		Categories:        st.Categories(),
	}
}

// SetFilter rebuilds the view for the given category and resets the
// cursor. Rebuilding is total: an unknown category simply yields an
// empty view.
func (s *Session) SetFilter(category string) (models.BatchSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return models.BatchSnapshot{}, ErrEmptyView
	}
	s.rebuildView(category)
	return s.snapshotLocked(), nil
}

// Snapshot returns the current batch plus cursor, focus and totals.
// Valid at any time; before an upload it is simply empty.
func (s *Session) Snapshot() models.BatchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Categories lists the distinct categories of the loaded store.
func (s *Session) Categories() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, ErrEmptyView
	}
	return s.store.Categories(), nil
}

// Summary counts validated records within the current view.
func (s *Session) Summary() models.ValidationSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := models.ValidationSummary{Total: s.viewLen()}
	for i := 0; i < s.viewLen(); i++ {
		if s.view.At(i).Status.Validated() {
			sum.Validated++
		}
	}
	return sum
}

// ExportRows snapshots the full store for CSV export, optionally
// restricted to one category. The export filter is independent of the
// session's active view filter.
func (s *Session) ExportRows(category string) ([]models.ExportRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, ErrEmptyView
	}
	return s.store.ExportRows(category), nil
}

// rebuildView derives a fresh view and resets cursor, focus cache and
// pending selection. Lock must be held.
func (s *Session) rebuildView(category string) {
	s.view = store.NewView(s.store, category)
	s.cursor = models.Cursor{}
	s.selection = nil
	s.indexOK = false
	s.refreshFocus()
}

func (s *Session) viewLen() int {
	if s.view == nil {
		return 0
	}
	return s.view.Len()
}

// snapshotLocked assembles the batch read model. Lock must be held.
func (s *Session) snapshotLocked() models.BatchSnapshot {
	snap := models.BatchSnapshot{
		Cursor:       s.cursor,
		Focus:        s.focus,
		TotalBatches: TotalBatches(s.viewLen(), s.batchSize),
		TotalPoints:  s.viewLen(),
		Category:     models.CategoryAll,
	}
	if s.view != nil {
		snap.Category = s.view.Category()
		start, end := batchBounds(s.viewLen(), s.batchSize, s.cursor.Batch)
		snap.Records = s.view.Slice(start, end)
	}
	return snap
}

// refreshFocus recomputes map focus from the cursor. On an empty batch
// the prior focus is kept, never an undefined point. Lock must be held.
func (s *Session) refreshFocus() {
	start, end := batchBounds(s.viewLen(), s.batchSize, s.cursor.Batch)
	n := end - start
	if n == 0 {
		return
	}
	if s.cursor.Point >= n {
		// Stale point index after a batch-changing operation.
		s.cursor.Point = 0
	}
	r := s.view.At(start + s.cursor.Point)
	s.focus = models.Focus{Latitude: r.Latitude, Longitude: r.Longitude, Zoom: models.FocusZoom}
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(cutoff)
}
