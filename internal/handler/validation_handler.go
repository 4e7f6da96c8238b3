package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/agroview/groundtruth-backend-go/internal/middleware"
	"github.com/agroview/groundtruth-backend-go/internal/models"
	"github.com/agroview/groundtruth-backend-go/internal/service"
	"github.com/agroview/groundtruth-backend-go/pkg/response"
)

// ValidationHandler serves validation writes and spatial selection.
type ValidationHandler struct {
	sessionService *service.SessionService
}

// NewValidationHandler creates a new validation handler.
func NewValidationHandler(sessionService *service.SessionService) *ValidationHandler {
	return &ValidationHandler{sessionService: sessionService}
}

// Validate handles POST /api/v1/validate
func (h *ValidationHandler) Validate(c *gin.Context) {
	var req models.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid validate request")
		return
	}

	result, err := h.sessionService.Validate(middleware.SessionFrom(c), req)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, result)
}

// Select handles POST /api/v1/selection
// Containment is tested against the current batch only, mirroring the
// map view the shape was drawn over.
func (h *ValidationHandler) Select(c *gin.Context) {
	var req models.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid selection request")
		return
	}

	result, err := middleware.SessionFrom(c).Select(req.Vertices)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, result)
}
