package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/agroview/groundtruth-backend-go/internal/middleware"
	"github.com/agroview/groundtruth-backend-go/internal/models"
	"github.com/agroview/groundtruth-backend-go/pkg/response"
)

// NavigationHandler serves cursor transitions and the outstanding-work
// index used to jump to unvalidated points.
type NavigationHandler struct{}

// NewNavigationHandler creates a new navigation handler.
func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Navigate handles POST /api/v1/navigate
func (h *NavigationHandler) Navigate(c *gin.Context) {
	var req models.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid navigate request")
		return
	}

	result, err := middleware.SessionFrom(c).Navigate(req.Action, req.SerialID)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, result)
}

// GetNonValidated handles GET /api/v1/non-validated
func (h *NavigationHandler) GetNonValidated(c *gin.Context) {
	groups := middleware.SessionFrom(c).NonValidatedIndex()

	response.Success(c, gin.H{
		"groups": groups,
	})
}
