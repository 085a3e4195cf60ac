package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-journal-api/internal/core/auth"
	resp "go-journal-api/internal/transport/http/response"
)

// AuthJWT 未认证请求在这里拦截，后续 handler 不会碰到存储层。
// 通过后把 userId / role 放进上下文供 handler 读取。
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusForbidden, resp.Error(resp.CodeForbidden, "forbidden"))
			return
		}
		c.Set("claims", claims)
		c.Set("userId", claims.UID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
