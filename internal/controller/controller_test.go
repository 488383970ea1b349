package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"course_mgmt_backend/internal/config"
	"course_mgmt_backend/internal/middleware"
	"course_mgmt_backend/internal/repository"
	"course_mgmt_backend/internal/service"
	"course_mgmt_backend/pkg/database"
	"course_mgmt_backend/pkg/logger"
)

const testJWTSecret = "controller-test-secret-controller-test"

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

// setupServer 按生产路由表装配一个跑在 sqlite 内存库上的完整服务
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{}
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.ExpireTime = time.Hour

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	enrollRepo := repository.NewEnrollmentRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	authCtl := NewAuthController(service.NewAuthService(userRepo, cfg))
	courseCtl := NewCourseController(service.NewCourseService(courseRepo, lessonRepo, enrollRepo, progressRepo))
	lessonCtl := NewLessonController(service.NewLessonService(lessonRepo, courseRepo, enrollRepo, progressRepo))
	dashboardCtl := NewDashboardController(service.NewDashboardService(courseRepo, enrollRepo, progressRepo))
	healthCtl := NewHealthController(db)

	router := gin.New()

	public := router.Group("/api")
	{
		public.GET("/health", healthCtl.HealthCheck)
		public.POST("/auth/register", authCtl.Register)
		public.POST("/auth/login", authCtl.Login)
		public.GET("/courses", middleware.TryAuthMiddleware(cfg, userRepo), courseCtl.List)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, userRepo))
	{
		authGroup.GET("/auth/me", authCtl.GetProfile)
		authGroup.GET("/courses/my/enrolled", courseCtl.MyEnrolled)
		authGroup.GET("/courses/:id", courseCtl.Detail)
		authGroup.POST("/courses/:id/enroll", courseCtl.Enroll)
		authGroup.GET("/lessons/:id", lessonCtl.Get)
		authGroup.GET("/lessons/course/:id", lessonCtl.ListByCourse)
		authGroup.POST("/lessons/:id/complete", lessonCtl.Complete)
		authGroup.POST("/lessons/:id/uncomplete", lessonCtl.Uncomplete)
		authGroup.GET("/dashboard/stats", dashboardCtl.GetStats)

		instructor := authGroup.Group("/")
		instructor.Use(middleware.InstructorMiddleware())
		{
			instructor.GET("/courses/my/created", courseCtl.MyCreated)
			instructor.POST("/courses", courseCtl.Create)
			instructor.PUT("/courses/:id", courseCtl.Update)
			instructor.DELETE("/courses/:id", courseCtl.Delete)
			instructor.POST("/lessons", lessonCtl.Create)
			instructor.PUT("/lessons/:id", lessonCtl.Update)
			instructor.DELETE("/lessons/:id", lessonCtl.Delete)
		}
	}

	return router
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, &env
}

func registerAndLogin(t *testing.T, router *gin.Engine, username string, instructor bool) string {
	t.Helper()

	w, _ := doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":         username + "@example.com",
		"username":      username,
		"full_name":     username,
		"password":      "password123",
		"is_instructor": instructor,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doRequest(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.Equal(t, "bearer", payload.TokenType)
	require.NotEmpty(t, payload.AccessToken)
	return payload.AccessToken
}

func TestHealthEndpoint(t *testing.T) {
	router := setupServer(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "success", env.Message)
}

func TestAuthEndpoints(t *testing.T) {
	router := setupServer(t)
	token := registerAndLogin(t, router, "alice", false)

	// 密码哈希不得出现在响应中
	w, env := doRequest(t, router, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, string(env.Data), "password")

	// 重复邮箱 / 用户名
	w, _ = doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "alice@example.com", "username": "alice2", "full_name": "a", "password": "password123",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	w, _ = doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "other@example.com", "username": "alice", "full_name": "a", "password": "password123",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// 密码过短被参数校验拦下
	w, _ = doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "short@example.com", "username": "short", "full_name": "s", "password": "123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// 凭据错误
	w, _ = doRequest(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "alice", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// 未认证与伪造 Token
	w, _ = doRequest(t, router, http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = doRequest(t, router, http.MethodGet, "/api/auth/me", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCourseEndpoints(t *testing.T) {
	router := setupServer(t)
	teacherToken := registerAndLogin(t, router, "teacher", true)
	studentToken := registerAndLogin(t, router, "student", false)

	// 学员没有讲师权限
	w, _ := doRequest(t, router, http.MethodPost, "/api/courses", studentToken, gin.H{"title": "偷跑课"})
	require.Equal(t, http.StatusForbidden, w.Code)

	// 讲师建课（未发布）
	w, env := doRequest(t, router, http.MethodPost, "/api/courses", teacherToken, gin.H{
		"title": "Go Web 实战", "description": "gin + gorm",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var course struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &course))

	// 游客目录只含已发布课程
	w, env = doRequest(t, router, http.MethodGet, "/api/courses", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var catalog []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &catalog))
	require.Empty(t, catalog)

	// 未发布：报名与详情均 403，不存在则 404
	path := fmt.Sprintf("/api/courses/%d", course.ID)
	w, _ = doRequest(t, router, http.MethodPost, path+"/enroll", studentToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doRequest(t, router, http.MethodGet, path, studentToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doRequest(t, router, http.MethodGet, "/api/courses/9999", studentToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// 发布（部分更新）
	w, _ = doRequest(t, router, http.MethodPut, path, teacherToken, gin.H{"is_published": true})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doRequest(t, router, http.MethodGet, "/api/courses", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &catalog))
	require.Len(t, catalog, 1)

	// 报名、重复报名
	w, _ = doRequest(t, router, http.MethodPost, path+"/enroll", studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doRequest(t, router, http.MethodPost, path+"/enroll", studentToken, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	// 我的课程视图
	w, env = doRequest(t, router, http.MethodGet, "/api/courses/my/enrolled", studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &catalog))
	require.Len(t, catalog, 1)
	w, _ = doRequest(t, router, http.MethodGet, "/api/courses/my/created", studentToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	w, env = doRequest(t, router, http.MethodGet, "/api/courses/my/created", teacherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &catalog))
	require.Len(t, catalog, 1)
}

func TestLessonAndDashboardEndpoints(t *testing.T) {
	router := setupServer(t)
	teacherToken := registerAndLogin(t, router, "teacher", true)
	studentToken := registerAndLogin(t, router, "student", false)

	w, env := doRequest(t, router, http.MethodPost, "/api/courses", teacherToken, gin.H{
		"title": "数据库原理", "is_published": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var course struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &course))

	w, env = doRequest(t, router, http.MethodPost, "/api/lessons", teacherToken, gin.H{
		"title": "事务与隔离级别", "course_id": course.ID, "order_index": 1, "is_published": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var lesson struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &lesson))

	lessonPath := fmt.Sprintf("/api/lessons/%d", lesson.ID)

	// 未选课不能看课时，也不能打卡
	w, _ = doRequest(t, router, http.MethodGet, lessonPath, studentToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doRequest(t, router, http.MethodPost, lessonPath+"/complete", studentToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/courses/%d/enroll", course.ID), studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 选课后：详情、打卡、完成状态回读
	w, _ = doRequest(t, router, http.MethodPost, lessonPath+"/complete", studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doRequest(t, router, http.MethodGet, lessonPath, studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		IsCompleted bool `json:"is_completed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.True(t, got.IsCompleted)

	// 仪表盘
	w, env = doRequest(t, router, http.MethodGet, "/api/dashboard/stats", studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		TotalCourses     int64  `json:"total_courses"`
		EnrolledCourses  int64  `json:"enrolled_courses"`
		CompletedLessons int64  `json:"completed_lessons"`
		TotalStudents    *int64 `json:"total_students"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	require.EqualValues(t, 1, stats.TotalCourses)
	require.EqualValues(t, 1, stats.EnrolledCourses)
	require.EqualValues(t, 1, stats.CompletedLessons)
	require.Nil(t, stats.TotalStudents)

	w, env = doRequest(t, router, http.MethodGet, "/api/dashboard/stats", teacherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	require.NotNil(t, stats.TotalStudents)
	require.EqualValues(t, 1, *stats.TotalStudents)

	// 取消打卡
	w, _ = doRequest(t, router, http.MethodPost, lessonPath+"/uncomplete", studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, env = doRequest(t, router, http.MethodGet, lessonPath, studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.False(t, got.IsCompleted)

	// 删除课时
	w, _ = doRequest(t, router, http.MethodDelete, lessonPath, teacherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doRequest(t, router, http.MethodGet, lessonPath, studentToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
