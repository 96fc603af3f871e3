package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/api/middleware"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/response"
)

// MustGetUserID extracts the authenticated user id from the Gin context.
// Writes a 401 response and returns ok=false when the auth middleware did
// not run; callers should return immediately in that case.
func MustGetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(middleware.CtxUserID)
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id == 0 {
		response.Unauthorized(c, 10002, "not authenticated")
		return 0, false
	}
	return id, true
}

// GetDepartment extracts the caller's department, empty when unset.
func GetDepartment(c *gin.Context) string {
	v, exists := c.Get(middleware.CtxDepartment)
	if !exists {
		return ""
	}
	s, _ := v.(string)
	return s
}

// ParseIDParam parses a numeric path parameter. Writes a 400 response
// and returns ok=false on a malformed id.
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "invalid "+name)
		return 0, false
	}
	return id, true
}
