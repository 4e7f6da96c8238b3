package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/agroview/groundtruth-backend-go/internal/ingest"
	"github.com/agroview/groundtruth-backend-go/internal/session"
	"github.com/agroview/groundtruth-backend-go/internal/store"
	"github.com/agroview/groundtruth-backend-go/pkg/response"
)

// fail maps core errors onto the response envelope. Load problems are
// user-recoverable 400s; a missing serial id means the caller holds a
// stale or fabricated id and gets a 404.
func fail(c *gin.Context, err error) {
	var loadErr *ingest.LoadError
	switch {
	case errors.As(err, &loadErr):
		response.BadRequest(c, loadErr.Error())
	case errors.Is(err, store.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, session.ErrEmptyView):
		response.BadRequest(c, err.Error())
	default:
		response.BadRequest(c, err.Error())
	}
}
