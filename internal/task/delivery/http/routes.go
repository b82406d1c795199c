package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Fixed paths (stats, tags, bulk, import) register before the :id routes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/stats", h.Stats)
		tasks.GET("/tags", h.Tags)
		tasks.POST("/bulk", h.Bulk)
		tasks.POST("/import/v1", h.ImportV1)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id", h.Edit)
		tasks.POST("/:id/done", h.Done)
		tasks.DELETE("/:id", h.Delete)
	}
}
