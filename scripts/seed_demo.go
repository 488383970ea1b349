// 演示数据初始化脚本
//
// 向数据库写入一名演示讲师、一名演示学员和一门带课时的示例课程，
// 供本地联调与前端开发使用。重复执行时会跳过已存在的账号。
//
// 用法: go run scripts/seed_demo.go

package main

import (
	"course_mgmt_backend/internal/config"
	"course_mgmt_backend/internal/model"
	"course_mgmt_backend/internal/repository"
	"course_mgmt_backend/internal/service"
	"course_mgmt_backend/pkg/database"
	"course_mgmt_backend/pkg/logger"
	"errors"
	"log"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, true)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	enrollRepo := repository.NewEnrollmentRepository(db)

	authService := service.NewAuthService(userRepo, &cfg)

	teacher := ensureUser(authService, userRepo, &model.User{
		Email:        "teacher@demo.local",
		Username:     "demo_teacher",
		FullName:     "演示讲师",
		Password:     "demo-password",
		IsInstructor: true,
	})
	student := ensureUser(authService, userRepo, &model.User{
		Email:    "student@demo.local",
		Username: "demo_student",
		FullName: "演示学员",
		Password: "demo-password",
	})

	existing, err := courseRepo.FindByInstructor(teacher.ID)
	if err != nil {
		log.Fatalf("查询课程失败: %v", err)
	}
	if len(existing) > 0 {
		log.Println("演示课程已存在，跳过")
		return
	}

	course := &model.Course{
		Title:        "Go Web 开发入门",
		Description:  "从路由到持久化的完整示例课程",
		IsPublished:  true,
		InstructorID: teacher.ID,
	}
	if err := courseRepo.Create(course); err != nil {
		log.Fatalf("创建课程失败: %v", err)
	}

	lessons := []model.Lesson{
		{CourseID: course.ID, Title: "环境与项目结构", OrderIndex: 1, IsPublished: true, DurationMinutes: 20},
		{CourseID: course.ID, Title: "路由与中间件", OrderIndex: 2, IsPublished: true, DurationMinutes: 35},
		{CourseID: course.ID, Title: "数据库与事务（草稿）", OrderIndex: 3, DurationMinutes: 40},
	}
	for i := range lessons {
		if err := lessonRepo.Create(&lessons[i]); err != nil {
			log.Fatalf("创建课时失败: %v", err)
		}
	}

	if err := enrollRepo.Enroll(student.ID, course.ID); err != nil {
		log.Fatalf("报名失败: %v", err)
	}

	log.Printf("演示数据就绪：课程 #%d，讲师 %s / 学员 %s（密码 demo-password）",
		course.ID, teacher.Username, student.Username)
}

func ensureUser(auth *service.AuthService, users *repository.UserRepository, u *model.User) *model.User {
	existing, err := users.FindByUsername(u.Username)
	if err == nil {
		log.Printf("用户 %s 已存在，跳过", u.Username)
		return existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("查询用户失败: %v", err)
	}

	if err := auth.Register(u); err != nil {
		log.Fatalf("创建用户 %s 失败: %v", u.Username, err)
	}
	return u
}
