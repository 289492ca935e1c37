// internal/app/middleware/auth.go
package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/auth"
	"github.com/anzhiyu-c/fintaa-site/pkg/response"
	service_auth "github.com/anzhiyu-c/fintaa-site/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

type Middleware struct {
	authSvc service_auth.Service
}

func NewMiddleware(authSvc service_auth.Service) *Middleware {
	return &Middleware{authSvc: authSvc}
}

// JWTAuth 是一个强制性的JWT认证中间件
func (m *Middleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Fail(c, http.StatusUnauthorized, "Token格式不正确")
			c.Abort()
			return
		}

		claims, err := m.authSvc.ParseAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			log.Printf("[JWTAuth] JWT token解析失败: %v", err)
			response.Fail(c, http.StatusUnauthorized, "无效或过期的Token")
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}
