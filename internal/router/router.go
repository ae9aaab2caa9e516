package router

import (
	"github.com/gin-gonic/gin"

	"refile/internal/config"
	"refile/internal/handler"
	"refile/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	renameH *handler.RenameHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")

	// Rename routes
	rename := v1.Group("/rename")
	rename.POST("", renameH.Rename)
	rename.POST("/preview", renameH.Preview)

	return r
}
