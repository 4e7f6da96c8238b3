package store

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agroview/groundtruth-backend-go/internal/models"
)

// ErrNotFound is returned when a serial id does not exist in the store.
// Callers derive ids from existing rows, so hitting this indicates a
// consistency bug rather than bad user input.
var ErrNotFound = errors.New("record not found")

// RecordStore holds the full deduplicated dataset for one upload. Its
// length is fixed after construction; only validation labels mutate.
type RecordStore struct {
	records  []*models.Record
	bySerial map[int64]int
}

// New builds a store from loaded records, collapsing records that share
// exact (latitude, longitude) coordinates. The first occurrence wins.
// Returns the number of duplicates removed. Fails if two surviving
// records carry the same serial id.
func New(records []*models.Record) (*RecordStore, int, error) {
	seen := make(map[[2]float64]bool, len(records))
	s := &RecordStore{
		records:  make([]*models.Record, 0, len(records)),
		bySerial: make(map[int64]int, len(records)),
	}

	removed := 0
	for _, r := range records {
		key := [2]float64{r.Latitude, r.Longitude}
		if seen[key] {
			removed++
			continue
		}
		seen[key] = true

		if _, dup := s.bySerial[r.SerialID]; dup {
			return nil, 0, fmt.Errorf("duplicate serial id %d in source data", r.SerialID)
		}
		s.bySerial[r.SerialID] = len(s.records)
		s.records = append(s.records, r)
	}

	return s, removed, nil
}

// Len returns the number of records in the store.
func (s *RecordStore) Len() int {
	return len(s.records)
}

// At returns the record at the given load-order position.
func (s *RecordStore) At(i int) *models.Record {
	return s.records[i]
}

// Get looks up a record by serial id.
func (s *RecordStore) Get(serialID int64) (*models.Record, error) {
	pos, ok := s.bySerial[serialID]
	if !ok {
		return nil, fmt.Errorf("serial id %d: %w", serialID, ErrNotFound)
	}
	return s.records[pos], nil
}

// SetValidation writes a validation label onto the record with the
// given serial id. Only Correct and Incorrect are accepted; clearing a
// label back to Not Validated is not an operation the tool offers.
func (s *RecordStore) SetValidation(serialID int64, status models.ValidationStatus) error {
	if !status.Validated() {
		return fmt.Errorf("invalid validation status %q", status)
	}
	r, err := s.Get(serialID)
	if err != nil {
		return err
	}
	r.Status = status
	return nil
}

// Categories returns the distinct category labels in the store, sorted.
func (s *RecordStore) Categories() []string {
	set := make(map[string]bool)
	for _, r := range s.records {
		set[r.Category] = true
	}
	cats := make([]string, 0, len(set))
	for c := range set {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// ExportRows snapshots the store in load order, optionally restricted
// to one category. The filter here is independent of the active view
// filter: exports always read the full store.
func (s *RecordStore) ExportRows(category string) []models.ExportRow {
	rows := make([]models.ExportRow, 0, len(s.records))
	for _, r := range s.records {
		if category != models.CategoryAll && r.Category != category {
			continue
		}
		rows = append(rows, models.ExportRow{
			SerialID:  r.SerialID,
			Category:  r.Category,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Status:    r.Status,
		})
	}
	return rows
}
