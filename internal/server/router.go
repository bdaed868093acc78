// Package server wires the gin engine: middleware chain, health probe
// and the versioned API routes.
package server

import (
	"github.com/aaron-lee-hebert/seller-metrics/internal/config"
	"github.com/aaron-lee-hebert/seller-metrics/internal/handler"
	"github.com/aaron-lee-hebert/seller-metrics/internal/server/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the HTTP engine. All /api/v1 routes sit behind JWT
// auth; /healthz is open for probes.
func NewRouter(cfg *config.Config, logger *zap.Logger, syncHandler *handler.SyncHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.CORS))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuth(cfg.JWT.Secret))
	{
		sync := api.Group("/sync")
		{
			sync.POST("/:provider/connect", syncHandler.Connect)
			sync.DELETE("/:provider/connection", syncHandler.Disconnect)
			sync.GET("/:provider/status", syncHandler.Status)
			sync.POST("/:provider/run", syncHandler.Run)

			sync.GET("/records", syncHandler.ListRecords)
			sync.DELETE("/records/:id", syncHandler.DeleteRecord)
		}
	}

	return engine
}
