package repository

import (
	"course_mgmt_backend/internal/model"
	"course_mgmt_backend/pkg/database"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// 内存库每个连接各自独立，收紧到单连接
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, instructor bool) *model.User {
	t.Helper()

	user := &model.User{
		Email:        username + "@example.com",
		Username:     username,
		FullName:     username,
		Password:     "hashed",
		IsActive:     true,
		IsInstructor: instructor,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func createCourse(t *testing.T, db *gorm.DB, instructorID uint, title string, published bool) *model.Course {
	t.Helper()

	course := &model.Course{
		Title:        title,
		InstructorID: instructorID,
		IsPublished:  published,
	}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("failed to create course %s: %v", title, err)
	}
	return course
}

func createLesson(t *testing.T, db *gorm.DB, courseID uint, title string, orderIndex int, published bool) *model.Lesson {
	t.Helper()

	lesson := &model.Lesson{
		Title:       title,
		CourseID:    courseID,
		OrderIndex:  orderIndex,
		IsPublished: published,
	}
	if err := db.Create(lesson).Error; err != nil {
		t.Fatalf("failed to create lesson %s: %v", title, err)
	}
	return lesson
}
