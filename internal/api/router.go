package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agroview/groundtruth-backend-go/internal/config"
	"github.com/agroview/groundtruth-backend-go/internal/handler"
	"github.com/agroview/groundtruth-backend-go/internal/metrics"
	"github.com/agroview/groundtruth-backend-go/internal/middleware"
	"github.com/agroview/groundtruth-backend-go/internal/service"
)

// SetupRouter wires middleware, handlers and routes.
func SetupRouter(cfg *config.Config, sessionService *service.SessionService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	sessionHandler := handler.NewSessionHandler(sessionService)
	batchHandler := handler.NewBatchHandler()
	navigationHandler := handler.NewNavigationHandler()
	validationHandler := handler.NewValidationHandler(sessionService)
	exportHandler := handler.NewExportHandler(sessionService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Ground Truth Validator API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api/v1")
	{
		// Session lifecycle; creation is the only unauthenticated route
		api.POST("/sessions", sessionHandler.Create)

		authed := api.Group("")
		authed.Use(middleware.SessionAuth(cfg.JWTSecret, sessionService.Manager()))
		{
			authed.DELETE("/sessions", sessionHandler.Delete)
			authed.POST("/sessions/data", sessionHandler.Upload)

			// Batch read model and filtering
			authed.GET("/batch", batchHandler.GetBatch)
			authed.GET("/categories", batchHandler.GetCategories)
			authed.PUT("/filter", batchHandler.SetFilter)
			authed.GET("/summary", batchHandler.GetSummary)

			// Cursor navigation and outstanding work
			authed.POST("/navigate", navigationHandler.Navigate)
			authed.GET("/non-validated", navigationHandler.GetNonValidated)

			// Validation writes and spatial selection
			authed.POST("/validate", validationHandler.Validate)
			authed.POST("/selection", validationHandler.Select)

			// CSV export
			authed.GET("/export", exportHandler.Export)
		}
	}

	return r
}
