package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroview/groundtruth-backend-go/internal/models"
)

// enclosingRing covers every test point (lats 10..10.25, lngs 78..78.25).
var enclosingRing = [][2]float64{{77, 9}, {80, 9}, {80, 12}, {77, 12}}

func TestSelect_CurrentBatchOnly(t *testing.T) {
	s := newTestSession(t, 25)

	// The ring encloses all 25 points, but selection is scoped to the
	// batch the user is looking at.
	result, err := s.Select(enclosingRing)
	require.NoError(t, err)
	assert.Len(t, result.SerialIDs, 10)
	assert.Equal(t, int64(1), result.SerialIDs[0])
	assert.Equal(t, int64(10), result.SerialIDs[9])

	_, err = s.Navigate(models.ActionNextBatch, 0)
	require.NoError(t, err)
	_, err = s.Navigate(models.ActionNextBatch, 0)
	require.NoError(t, err)

	result, err = s.Select(enclosingRing)
	require.NoError(t, err)
	assert.Len(t, result.SerialIDs, 5)
	assert.Equal(t, int64(21), result.SerialIDs[0])
}

func TestSelect_PartialContainment(t *testing.T) {
	s := newTestSession(t, 25)

	// Tight ring around the first three points only (lat 10.00-10.02).
	result, err := s.Select([][2]float64{
		{77.99, 9.995}, {78.03, 9.995}, {78.03, 10.025}, {77.99, 10.025},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, result.SerialIDs)
}

func TestSelect_NoPointsInShape(t *testing.T) {
	s := newTestSession(t, 25)

	result, err := s.Select([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)
	assert.Empty(t, result.SerialIDs)
	assert.Empty(t, s.PendingSelection())
}

func TestSelect_BadPolygon(t *testing.T) {
	s := newTestSession(t, 25)

	_, err := s.Select([][2]float64{{77, 9}, {80, 9}})
	assert.Error(t, err)
}

func TestSelect_RecordsMatchIDs(t *testing.T) {
	s := newTestSession(t, 25)

	result, err := s.Select(enclosingRing)
	require.NoError(t, err)
	require.Len(t, result.Records, len(result.SerialIDs))
	for i, r := range result.Records {
		assert.Equal(t, result.SerialIDs[i], r.SerialID)
	}
}
