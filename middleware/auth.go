package middleware

import (
	"net/http"
	"strings"

	"go-estate/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验 Bearer token，并把 userId 放进上下文
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "未授权"})
			c.Abort()
			return
		}
		token = strings.TrimPrefix(token, "Bearer ")

		userID, err := service.ParseToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token 无效或已过期"})
			c.Abort()
			return
		}
		c.Set("userId", userID)
		c.Next()
	}
}
