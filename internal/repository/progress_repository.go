package repository

import (
	"course_mgmt_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository 维护 (user, lesson) 完成状态，唯一性由联合唯一索引保证
type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Find(userID, lessonID uint) (*model.LessonProgress, error) {
	var progress model.LessonProgress
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&progress).Error
	return &progress, err
}

// SetCompleted 单条 upsert：标记完成写入 completed_at，取消完成清空。
// 调用方负责先校验选课关系，这里不重复检查。
func (r *ProgressRepository) SetCompleted(userID, lessonID uint, completed bool) error {
	var completedAt *time.Time
	if completed {
		now := time.Now()
		completedAt = &now
	}

	progress := model.LessonProgress{
		UserID:      userID,
		LessonID:    lessonID,
		IsCompleted: completed,
		CompletedAt: completedAt,
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_completed": completed,
			"completed_at": completedAt,
			"updated_at":   time.Now(),
		}),
	}).Create(&progress).Error
}

func (r *ProgressRepository) IsCompleted(userID, lessonID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.LessonProgress{}).
		Where("user_id = ? AND lesson_id = ? AND is_completed = ?", userID, lessonID, true).
		Count(&count).Error
	return count > 0, err
}

// CompletedSet 批量查询一组课时的完成状态，避免逐条回表
func (r *ProgressRepository) CompletedSet(userID uint, lessonIDs []uint) (map[uint]bool, error) {
	completed := make(map[uint]bool, len(lessonIDs))
	if len(lessonIDs) == 0 {
		return completed, nil
	}

	var records []model.LessonProgress
	err := r.DB.Select("lesson_id", "is_completed").
		Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		completed[rec.LessonID] = rec.IsCompleted
	}
	return completed, nil
}

func (r *ProgressRepository) CountCompletedByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonProgress{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&count).Error
	return count, err
}
