package http

import (
	"github.com/gin-gonic/gin"

	"task-capture/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/extract", mw.RateLimit(), mw.Scope(), h.Extract)
	rg.POST("/voice", mw.RateLimit(), mw.Scope(), h.Voice)
	rg.POST("/resolve", mw.RateLimit(), h.Resolve)
}
