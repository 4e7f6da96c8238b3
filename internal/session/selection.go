package session

import (
	"github.com/agroview/groundtruth-backend-go/internal/models"
	"github.com/agroview/groundtruth-backend-go/internal/spatial"
)

// Select resolves a drawn shape against the points of the current batch
// only, records the resulting id set as the pending selection, and
// returns it. Validating in bulk afterwards clears the selection.
func (s *Session) Select(vertices [][2]float64) (models.SelectionResult, error) {
	poly, err := spatial.NewPolygon(vertices)
	if err != nil {
		return models.SelectionResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start, end := batchBounds(s.viewLen(), s.batchSize, s.cursor.Batch)
	result := models.SelectionResult{SerialIDs: []int64{}}
	for i := start; i < end; i++ {
		r := s.view.At(i)
		if poly.Contains(r.Latitude, r.Longitude) {
			result.SerialIDs = append(result.SerialIDs, r.SerialID)
			result.Records = append(result.Records, *r)
		}
	}
	s.selection = result.SerialIDs
	return result, nil
}

// PendingSelection returns the id set of the last drawn shape, nil when
// none is outstanding.
func (s *Session) PendingSelection() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}
