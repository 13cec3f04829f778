package http

import (
	"github.com/gin-gonic/gin"

	"task-capture/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	reviews := rg.Group("/reviews", mw.RateLimit(), mw.Scope())
	{
		reviews.GET("/:id", h.Detail)
		reviews.PUT("/:id/candidates/:index", h.Edit)
		reviews.DELETE("/:id/candidates/:index", h.Remove)
		reviews.POST("/:id/candidates/:index/accept", h.Accept)
	}
}
