package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/agroview/groundtruth-backend-go/internal/ingest"
	"github.com/agroview/groundtruth-backend-go/internal/middleware"
	"github.com/agroview/groundtruth-backend-go/internal/service"
	"github.com/agroview/groundtruth-backend-go/pkg/response"
)

// SessionHandler handles session lifecycle and data uploads.
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	id, token, err := h.sessionService.Create()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, gin.H{
		"sessionId": id,
		"token":     token,
	})
}

// Delete handles DELETE /api/v1/sessions
func (h *SessionHandler) Delete(c *gin.Context) {
	h.sessionService.Delete(c.GetString(middleware.ContextSessionID))
	response.Success(c, nil)
}

// Upload handles POST /api/v1/sessions/data
// Accepts a multipart form with one or more files under "files":
// either a CSV or a shapefile component set. A rejected upload leaves
// the session's previous dataset untouched.
func (h *SessionHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "expected multipart form upload")
		return
	}

	var files []ingest.RawUpload
	for _, fh := range form.File["files"] {
		f, err := fh.Open()
		if err != nil {
			response.BadRequest(c, "failed to read uploaded file "+fh.Filename)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			response.BadRequest(c, "failed to read uploaded file "+fh.Filename)
			return
		}
		files = append(files, ingest.RawUpload{Name: fh.Filename, Data: data})
	}

	result, err := h.sessionService.Load(middleware.SessionFrom(c), files)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, result)
}
