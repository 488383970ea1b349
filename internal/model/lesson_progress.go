package model

import "time"

// LessonProgress 每个 (user, lesson) 至多一条记录，由联合唯一索引保证
// swagger:model LessonProgress
type LessonProgress struct {
	BaseModel
	UserID          uint       `gorm:"not null;uniqueIndex:idx_user_lesson" json:"user_id"`
	LessonID        uint       `gorm:"not null;uniqueIndex:idx_user_lesson" json:"lesson_id"`
	IsCompleted     bool       `gorm:"default:false" json:"is_completed"`
	CompletedAt     *time.Time `json:"completed_at"`
	WatchedDuration int        `gorm:"default:0" json:"watched_duration"` // 秒
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
