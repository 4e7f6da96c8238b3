package models

// IndexEntry locates one not-yet-validated record under the current
// batching: the batch it falls into, its identity, and its category.
type IndexEntry struct {
	Batch    int    `json:"batch"`
	SerialID int64  `json:"serialId"`
	Category string `json:"category"`
}

// IndexGroup is the per-batch grouping served to the UI dropdown.
type IndexGroup struct {
	Batch  int          `json:"batch"`
	Count  int          `json:"count"`
	Points []IndexEntry `json:"points"`
}

// GroupIndex folds a flat, batch-ordered entry list into per-batch
// groups, preserving order.
func GroupIndex(entries []IndexEntry) []IndexGroup {
	var groups []IndexGroup
	for _, e := range entries {
		if len(groups) == 0 || groups[len(groups)-1].Batch != e.Batch {
			groups = append(groups, IndexGroup{Batch: e.Batch})
		}
		g := &groups[len(groups)-1]
		g.Points = append(g.Points, e)
		g.Count++
	}
	return groups
}
