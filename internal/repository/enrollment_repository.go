package repository

import (
	"course_mgmt_backend/internal/model"
	"course_mgmt_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// EnrollmentRepository 维护 (user, course) 选课关系表
type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// Enroll 直接插入，去重交给联合主键约束，并发下也不会出现重复选课
func (r *EnrollmentRepository) Enroll(userID, courseID uint) error {
	enrollment := model.UserCourse{UserID: userID, CourseID: courseID}
	err := r.DB.Create(&enrollment).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return util.ErrAlreadyEnrolled
	}
	return err
}

func (r *EnrollmentRepository) IsEnrolled(userID, courseID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.UserCourse{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *EnrollmentRepository) CountStudents(courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserCourse{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserCourse{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) FindCoursesByUser(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Instructor").
		Joins("JOIN user_courses ON user_courses.course_id = courses.id").
		Where("user_courses.user_id = ?", userID).
		Find(&courses).Error
	return courses, err
}

// CountDistinctStudentsByInstructor 统计报名了该讲师任意课程的去重学生数
func (r *EnrollmentRepository) CountDistinctStudentsByInstructor(instructorID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserCourse{}).
		Joins("JOIN courses ON courses.id = user_courses.course_id").
		Where("courses.instructor_id = ?", instructorID).
		Distinct("user_courses.user_id").
		Count(&count).Error
	return count, err
}
