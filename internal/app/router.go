package app

import (
	"course_mgmt_backend/docs"
	"course_mgmt_backend/internal/config"
	"course_mgmt_backend/internal/middleware"
	"course_mgmt_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		// 课程目录允许游客访问，登录用户按同样规则展示
		public.GET("/courses", middleware.TryAuthMiddleware(cfg, repos.user), c.course.List)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, repos.user))
	{
		authGroup.GET("/auth/me", c.auth.GetProfile)

		authGroup.GET("/courses/my/enrolled", c.course.MyEnrolled)
		authGroup.GET("/courses/:id", c.course.Detail)
		authGroup.POST("/courses/:id/enroll", c.course.Enroll)

		authGroup.GET("/lessons/:id", c.lesson.Get)
		authGroup.GET("/lessons/course/:id", c.lesson.ListByCourse)
		authGroup.POST("/lessons/:id/complete", c.lesson.Complete)
		authGroup.POST("/lessons/:id/uncomplete", c.lesson.Uncomplete)

		authGroup.GET("/dashboard/stats", c.dashboard.GetStats)

		// 讲师相关接口
		instructor := authGroup.Group("/")
		instructor.Use(middleware.InstructorMiddleware())
		{
			instructor.GET("/courses/my/created", c.course.MyCreated)
			instructor.POST("/courses", c.course.Create)
			instructor.PUT("/courses/:id", c.course.Update)
			instructor.DELETE("/courses/:id", c.course.Delete)

			instructor.POST("/lessons", c.lesson.Create)
			instructor.PUT("/lessons/:id", c.lesson.Update)
			instructor.DELETE("/lessons/:id", c.lesson.Delete)
		}
	}
}
