package middleware

import (
	"course_mgmt_backend/internal/config"
	"course_mgmt_backend/internal/repository"
	"course_mgmt_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// AuthMiddleware 解析 Bearer Token 并加载当前用户，账号被停用视为未认证
func AuthMiddleware(cfg *config.Config, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil || !user.IsActive {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("currentUser", user)
		c.Next()
	}
}

// TryAuthMiddleware 可选认证：带合法 Token 则加载用户，游客直接放行
func TryAuthMiddleware(cfg *config.Config, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			c.Next()
			return
		}

		if user, err := users.FindByID(claims.UserID); err == nil && user.IsActive {
			c.Set("claims", claims)
			c.Set("currentUser", user)
		}
		c.Next()
	}
}

// InstructorMiddleware 要求当前用户具有讲师身份
func InstructorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if !user.IsInstructor {
			util.Forbidden(c, "instructor role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
