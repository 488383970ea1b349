package app

import (
	"course_mgmt_backend/internal/config"
	"course_mgmt_backend/internal/controller"
	"course_mgmt_backend/internal/repository"
	"course_mgmt_backend/internal/service"
	"course_mgmt_backend/pkg/database"
	"course_mgmt_backend/pkg/logger"
	"course_mgmt_backend/pkg/monitoring"
	"course_mgmt_backend/pkg/security"
	"course_mgmt_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"
)

type App struct {
	Config         *config.Config
	Router         *gin.Engine
	DB             *gorm.DB
	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user       *repository.UserRepository
	course     *repository.CourseRepository
	lesson     *repository.LessonRepository
	enrollment *repository.EnrollmentRepository
	progress   *repository.ProgressRepository
}

type services struct {
	auth      *service.AuthService
	course    *service.CourseService
	lesson    *service.LessonService
	dashboard *service.DashboardService
}

type controllers struct {
	auth      *controller.AuthController
	course    *controller.CourseController
	lesson    *controller.LessonController
	dashboard *controller.DashboardController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		course:     repository.NewCourseRepository(db),
		lesson:     repository.NewLessonRepository(db),
		enrollment: repository.NewEnrollmentRepository(db),
		progress:   repository.NewProgressRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.course = service.NewCourseService(repos.course, repos.lesson, repos.enrollment, repos.progress)
	s.lesson = service.NewLessonService(repos.lesson, repos.course, repos.enrollment, repos.progress)
	s.dashboard = service.NewDashboardService(repos.course, repos.enrollment, repos.progress)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		course:    controller.NewCourseController(s.course),
		lesson:    controller.NewLessonController(s.lesson),
		dashboard: controller.NewDashboardController(s.dashboard),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	autoMigrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, autoMigrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("course-management", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
