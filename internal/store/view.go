package store

import "github.com/agroview/groundtruth-backend-go/internal/models"

// View is the ordered subsequence of store rows matching one category
// filter. It holds positions into the store rather than copies, so a
// validation write is visible through both the store and every view of
// it without any synchronization step.
type View struct {
	store     *RecordStore
	category  string
	positions []int
}

// NewView derives a view of the store for the given category. "All"
// yields the full store in load order. An empty result is valid.
func NewView(s *RecordStore, category string) *View {
	v := &View{store: s, category: category}
	for i, r := range s.records {
		if category == models.CategoryAll || r.Category == category {
			v.positions = append(v.positions, i)
		}
	}
	return v
}

// Len returns the number of records in the view.
func (v *View) Len() int {
	return len(v.positions)
}

// Category returns the filter this view was built with.
func (v *View) Category() string {
	return v.category
}

// At returns the record at the given view position.
func (v *View) At(i int) *models.Record {
	return v.store.records[v.positions[i]]
}

// PositionOf locates a serial id within the view. The id may exist in
// the store yet be filtered out here; ok reports view membership.
func (v *View) PositionOf(serialID int64) (int, bool) {
	for i, pos := range v.positions {
		if v.store.records[pos].SerialID == serialID {
			return i, true
		}
	}
	return 0, false
}

// Slice returns record snapshots for view positions [start, end),
// clamped to the view bounds. Snapshots are value copies: readers get a
// stable picture even if a later write relabels the row.
func (v *View) Slice(start, end int) []models.Record {
	if start < 0 {
		start = 0
	}
	if end > len(v.positions) {
		end = len(v.positions)
	}
	if start >= end {
		return nil
	}
	out := make([]models.Record, 0, end-start)
	for _, pos := range v.positions[start:end] {
		out = append(out, *v.store.records[pos])
	}
	return out
}
