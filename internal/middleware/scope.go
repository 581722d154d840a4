package middleware

import (
	"github.com/gin-gonic/gin"

	"personal-task-tracker/internal/model"
)

const scopeKey = "scope"

// SetScope stores the authenticated scope in the request context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the authenticated scope set by the Auth middleware.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
