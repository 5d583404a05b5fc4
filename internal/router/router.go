package router

import (
	"net/http"

	"github.com/coolcut/siphon/internal/config"
	"github.com/coolcut/siphon/internal/handler"
	"github.com/coolcut/siphon/internal/middleware"
	"github.com/coolcut/siphon/internal/storage"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures the Gin engine and mounts the API routes.
func SetupRouter(cfg *config.Config, store storage.Store) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLog())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	categories := handler.NewCategoryHandler(store)
	services := handler.NewServiceHandler(store)
	subscriptions := handler.NewSubscriptionHandler(store)

	api := r.Group("/api/v1")
	{
		api.GET("/categories", categories.List)
		api.POST("/categories", categories.Create)
		api.DELETE("/categories/:id", categories.Delete)

		api.GET("/services", services.List)
		api.POST("/services", services.Create)
		api.DELETE("/services/:id", services.Delete)

		api.GET("/subscriptions", subscriptions.List)
		api.POST("/subscriptions", subscriptions.Create)
		api.PATCH("/subscriptions/:id", subscriptions.Update)
		api.DELETE("/subscriptions/:id", subscriptions.Delete)
	}

	return r
}
