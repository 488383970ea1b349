package model

import "time"

// UserCourse 选课关系表，(user_id, course_id) 联合主键保证同一门课不能重复报名
// swagger:model UserCourse
type UserCourse struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	CourseID  uint      `gorm:"primaryKey;index" json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserCourse) TableName() string {
	return "user_courses"
}
