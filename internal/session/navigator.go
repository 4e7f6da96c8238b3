package session

import (
	"fmt"

	"github.com/agroview/groundtruth-backend-go/internal/models"
	"github.com/agroview/groundtruth-backend-go/internal/store"
)

// Navigate applies one cursor transition. Every transition is total:
// moves past a boundary are no-ops, never wraparounds, so repeated
// actions are safe regardless of UI button state. Focus follows the
// cursor on every transition.
func (s *Session) Navigate(action string, serialID int64) (models.NavigateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch action {
	case models.ActionNextPoint:
		s.nextPointLocked()
	case models.ActionPrevPoint:
		if s.cursor.Point > 0 {
			s.cursor.Point--
		}
	case models.ActionNextBatch:
		if s.cursor.Batch < TotalBatches(s.viewLen(), s.batchSize)-1 {
			s.cursor.Batch++
			s.cursor.Point = 0
		}
	case models.ActionPrevBatch:
		if s.cursor.Batch > 0 {
			s.cursor.Batch--
			s.cursor.Point = 0
		}
	case models.ActionJumpToID:
		if err := s.jumpToLocked(serialID); err != nil {
			return models.NavigateResult{}, err
		}
	default:
		return models.NavigateResult{}, fmt.Errorf("unknown navigation action %q", action)
	}

	s.refreshFocus()
	return models.NavigateResult{Cursor: s.cursor, Focus: s.focus}, nil
}

// nextPointLocked advances within the current batch, reporting whether
// the cursor actually moved. Lock must be held.
func (s *Session) nextPointLocked() bool {
	start, end := batchBounds(s.viewLen(), s.batchSize, s.cursor.Batch)
	if s.cursor.Point < (end-start)-1 {
		s.cursor.Point++
		return true
	}
	return false
}

// jumpToLocked positions the cursor on a record of the current view by
// serial id. Ids filtered out of the view are NotFound here even when
// they exist in the store. Lock must be held.
func (s *Session) jumpToLocked(serialID int64) error {
	if s.view == nil {
		return fmt.Errorf("serial id %d: %w", serialID, store.ErrNotFound)
	}
	pos, ok := s.view.PositionOf(serialID)
	if !ok {
		return fmt.Errorf("serial id %d not in current view: %w", serialID, store.ErrNotFound)
	}
	s.cursor = models.Cursor{
		Batch: pos / s.batchSize,
		Point: pos % s.batchSize,
	}
	return nil
}
