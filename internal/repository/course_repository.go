package repository

import (
	"course_mgmt_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Instructor").First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) List(publishedOnly bool, offset, limit int) ([]model.Course, error) {
	var courses []model.Course
	query := r.DB.Preload("Instructor")
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.Offset(offset).Limit(limit).Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByInstructor(instructorID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Instructor").
		Where("instructor_id = ?", instructorID).
		Find(&courses).Error
	return courses, err
}

// UpdateFields 部分更新，只改动请求中出现的字段
func (r *CourseRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.DB.Model(&model.Course{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 级联删除：课时进度 → 课时 → 选课记录 → 课程，单事务内完成
func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		lessonIDs := tx.Model(&model.Lesson{}).Select("id").Where("course_id = ?", id)

		if err := tx.Where("lesson_id IN (?)", lessonIDs).Delete(&model.LessonProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.UserCourse{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, id).Error
	})
}

func (r *CourseRepository) CountPublished() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Where("is_published = ?", true).Count(&count).Error
	return count, err
}
