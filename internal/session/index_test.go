package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroview/groundtruth-backend-go/internal/models"
)

func TestNonValidatedIndex_GroupsByBatch(t *testing.T) {
	s := newTestSession(t, 25)

	groups := s.NonValidatedIndex()
	require.Len(t, groups, 3)
	assert.Equal(t, 0, groups[0].Batch)
	assert.Equal(t, 10, groups[0].Count)
	assert.Equal(t, 2, groups[2].Batch)
	assert.Equal(t, 5, groups[2].Count)
	assert.Equal(t, int64(1), groups[0].Points[0].SerialID)
	assert.Equal(t, "Wheat", groups[0].Points[0].Category)
}

func TestNonValidatedIndex_DropsValidatedRecords(t *testing.T) {
	s := newTestSession(t, 25)

	_, err := s.Navigate(models.ActionJumpToID, 18)
	require.NoError(t, err)
	_, err = s.ValidateCurrent(models.StatusCorrect)
	require.NoError(t, err)

	for _, g := range s.NonValidatedIndex() {
		for _, p := range g.Points {
			assert.NotEqual(t, int64(18), p.SerialID)
		}
	}
}

func TestNonValidatedIndex_EmptyWhenAllValidated(t *testing.T) {
	s := newTestSession(t, 3)

	_, err := s.ValidateBulk([]int64{1, 2, 3}, models.StatusCorrect)
	require.NoError(t, err)

	assert.Empty(t, s.NonValidatedIndex())
}

func TestNonValidatedIndex_TracksFilterRebatching(t *testing.T) {
	s := newTestSession(t, 25)

	// The 4 Rice records all land in batch 0 under the filtered view,
	// regardless of which batch they occupied under All.
	_, err := s.SetFilter("Rice")
	require.NoError(t, err)

	groups := s.NonValidatedIndex()
	require.Len(t, groups, 1)
	assert.Equal(t, 0, groups[0].Batch)
	assert.Equal(t, 4, groups[0].Count)
	assert.Equal(t, []int64{2, 9, 14, 23}, []int64{
		groups[0].Points[0].SerialID,
		groups[0].Points[1].SerialID,
		groups[0].Points[2].SerialID,
		groups[0].Points[3].SerialID,
	})
}
