package session

import (
	"github.com/agroview/groundtruth-backend-go/internal/models"
)

// ValidateCurrent labels the record under the cursor and advances to
// the next point in the batch. At the last point of the last batch the
// advance is a no-op and Done is set so the caller can surface an
// all-done signal.
func (s *Session) ValidateCurrent(status models.ValidationStatus) (models.ValidateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, end := batchBounds(s.viewLen(), s.batchSize, s.cursor.Batch)
	if start == end {
		return models.ValidateResult{}, ErrEmptyView
	}
	if s.cursor.Point >= end-start {
		s.cursor.Point = 0
	}

	rec := s.view.At(start + s.cursor.Point)
	if err := s.store.SetValidation(rec.SerialID, status); err != nil {
		return models.ValidateResult{}, err
	}
	s.indexOK = false

	advanced := s.nextPointLocked()
	s.refreshFocus()

	lastBatch := s.cursor.Batch == TotalBatches(s.viewLen(), s.batchSize)-1
	return models.ValidateResult{
		Updated: []models.Record{*rec},
		Count:   1,
		Cursor:  s.cursor,
		Focus:   s.focus,
		Done:    !advanced && lastBatch,
	}, nil
}

// ValidateByID labels a record looked up by serial id, for out-of-band
// triggers such as a map marker's detail action. The cursor does not
// move.
func (s *Session) ValidateByID(serialID int64, status models.ValidationStatus) (models.ValidateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return models.ValidateResult{}, ErrEmptyView
	}
	if err := s.store.SetValidation(serialID, status); err != nil {
		return models.ValidateResult{}, err
	}
	s.indexOK = false

	rec, _ := s.store.Get(serialID)
	return models.ValidateResult{
		Updated: []models.Record{*rec},
		Count:   1,
		Cursor:  s.cursor,
		Focus:   s.focus,
	}, nil
}

// ValidateBulk applies one label to every id in the set as a single
// logical operation. Ids outside the current view still update the
// store. The whole set is checked before any write, so a stale id
// leaves the dataset untouched. Any pending spatial selection is
// cleared afterwards.
func (s *Session) ValidateBulk(serialIDs []int64, status models.ValidationStatus) (models.ValidateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return models.ValidateResult{}, ErrEmptyView
	}
	for _, id := range serialIDs {
		if _, err := s.store.Get(id); err != nil {
			return models.ValidateResult{}, err
		}
	}

	updated := make([]models.Record, 0, len(serialIDs))
	for _, id := range serialIDs {
		if err := s.store.SetValidation(id, status); err != nil {
			return models.ValidateResult{}, err
		}
		rec, _ := s.store.Get(id)
		updated = append(updated, *rec)
	}
	s.indexOK = false
	s.selection = nil

	return models.ValidateResult{
		Updated: updated,
		Count:   len(updated),
		Cursor:  s.cursor,
		Focus:   s.focus,
	}, nil
}
