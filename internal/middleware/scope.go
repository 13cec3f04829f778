package middleware

import (
	"github.com/gin-gonic/gin"

	"task-capture/internal/model"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUsername = "X-Username"

	scopeKey = "scope"
)

// Scope builds the caller scope from the identity headers set by the
// upstream gateway. Anonymous callers get an empty scope.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(scopeKey, model.Scope{
			UserID:   c.GetHeader(HeaderUserID),
			Username: c.GetHeader(HeaderUsername),
		})
		c.Next()
	}
}

// GetScope returns the scope stored by Scope.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
