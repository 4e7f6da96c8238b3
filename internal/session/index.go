package session

import (
	"github.com/agroview/groundtruth-backend-go/internal/models"
)

// NonValidatedIndex lists every not-yet-validated record of the current
// view grouped by the batch it falls into under the current batching,
// batches ascending, records in view order within each batch. The
// result is cached and invalidated by validation writes and view
// rebuilds; the computation is a pure function of (view, batchSize).
func (s *Session) NonValidatedIndex() []models.IndexGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.indexOK {
		s.index = nil
		for i := 0; i < s.viewLen(); i++ {
			r := s.view.At(i)
			if r.Status != models.StatusNotValidated {
				continue
			}
			s.index = append(s.index, models.IndexEntry{
				Batch:    i / s.batchSize,
				SerialID: r.SerialID,
				Category: r.Category,
			})
		}
		s.indexOK = true
	}

	return models.GroupIndex(s.index)
}
