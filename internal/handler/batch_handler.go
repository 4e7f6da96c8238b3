package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/agroview/groundtruth-backend-go/internal/middleware"
	"github.com/agroview/groundtruth-backend-go/internal/models"
	"github.com/agroview/groundtruth-backend-go/pkg/response"
)

// BatchHandler serves the batch read model and the category filter.
type BatchHandler struct{}

// NewBatchHandler creates a new batch handler.
func NewBatchHandler() *BatchHandler {
	return &BatchHandler{}
}

// GetBatch handles GET /api/v1/batch
func (h *BatchHandler) GetBatch(c *gin.Context) {
	response.Success(c, middleware.SessionFrom(c).Snapshot())
}

// GetCategories handles GET /api/v1/categories
func (h *BatchHandler) GetCategories(c *gin.Context) {
	cats, err := middleware.SessionFrom(c).Categories()
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, gin.H{
		"categories": append([]string{models.CategoryAll}, cats...),
	})
}

// SetFilter handles PUT /api/v1/filter
// Rebuilding the view resets the cursor to (0,0); filtering to a
// category with no points is valid and yields an empty batch.
func (h *BatchHandler) SetFilter(c *gin.Context) {
	var req models.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid filter request")
		return
	}

	snap, err := middleware.SessionFrom(c).SetFilter(req.Category)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, snap)
}

// GetSummary handles GET /api/v1/summary
func (h *BatchHandler) GetSummary(c *gin.Context) {
	response.Success(c, middleware.SessionFrom(c).Summary())
}
