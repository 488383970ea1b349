package repository

import (
	"course_mgmt_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	return &lesson, err
}

// FindByCourse 按 order_index 升序返回，order_index 相同按插入顺序（自增 id）排
func (r *LessonRepository) FindByCourse(courseID uint, publishedOnly bool) ([]model.Lesson, error) {
	var lessons []model.Lesson
	query := r.DB.Where("course_id = ?", courseID)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.Order("order_index ASC, id ASC").Find(&lessons).Error
	return lessons, err
}

// UpdateFields 部分更新，只改动请求中出现的字段
func (r *LessonRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.DB.Model(&model.Lesson{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 级联删除课时及其进度记录
func (r *LessonRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_id = ?", id).Delete(&model.LessonProgress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Lesson{}, id).Error
	})
}
