package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/jwt"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/redis"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/response"
)

// Context keys set by JWTAuth.
const (
	CtxUserID     = "user_id"
	CtxDepartment = "department"
	CtxTokenID    = "jti"
	CtxTokenExp   = "token_exp"
)

// JWTAuth extracts and verifies the Bearer token from the Authorization
// header. A nil rdb skips the blacklist check (degraded mode, matching
// the rest of the redis-optional wiring).
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token invalid or expired")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, 10002, "token revoked")
				c.Abort()
				return
			}
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxDepartment, claims.Department)
		c.Set(CtxTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(CtxTokenExp, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}
