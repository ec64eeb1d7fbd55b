package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/feed-service/internal/service"
	"github.com/d60-Lab/feed-service/pkg/response"
)

// JWTAuth 解析 Authorization: Bearer 头，把主体 email 写入 context。
// 头缺失 / token 无效均 401。
func JWTAuth(authSvc service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "authorization header required")
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c, "invalid authorization header")
			return
		}
		email, err := authSvc.ResolveToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			return
		}
		c.Set("email", email)
		c.Next()
	}
}
