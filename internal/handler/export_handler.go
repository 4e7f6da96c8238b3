package handler

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agroview/groundtruth-backend-go/internal/middleware"
	"github.com/agroview/groundtruth-backend-go/internal/models"
	"github.com/agroview/groundtruth-backend-go/internal/service"
)

// ExportHandler streams the validated dataset as CSV.
type ExportHandler struct {
	sessionService *service.SessionService
}

// NewExportHandler creates a new export handler.
func NewExportHandler(sessionService *service.SessionService) *ExportHandler {
	return &ExportHandler{sessionService: sessionService}
}

// Export handles GET /api/v1/export?category=X
// Exports read the full store regardless of the active view filter;
// the category query parameter (default All) filters independently.
func (h *ExportHandler) Export(c *gin.Context) {
	category := c.DefaultQuery("category", models.CategoryAll)

	rows, err := h.sessionService.Export(middleware.SessionFrom(c), category)
	if err != nil {
		fail(c, err)
		return
	}

	filename := fmt.Sprintf("validated_ground_truth_%s_%s.csv", category, time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(200)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"S_No", "crop_name", "latitude", "longitude", "validation"})
	for _, row := range rows {
		_ = w.Write([]string{
			strconv.FormatInt(row.SerialID, 10),
			row.Category,
			strconv.FormatFloat(row.Latitude, 'f', -1, 64),
			strconv.FormatFloat(row.Longitude, 'f', -1, 64),
			string(row.Status),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		// Headers are already out; nothing left to do but log via gin.
		_ = c.Error(err)
	}
}
