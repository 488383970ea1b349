package model

// swagger:model Lesson
type Lesson struct {
	BaseModel
	Title           string `gorm:"size:255;not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	VideoURL        string `gorm:"size:255" json:"video_url"`
	Content         string `gorm:"type:text" json:"content"`
	OrderIndex      int    `gorm:"default:0" json:"order_index"`
	IsPublished     bool   `gorm:"default:false" json:"is_published"`
	DurationMinutes int    `gorm:"default:0" json:"duration_minutes"`
	CourseID        uint   `gorm:"not null;index" json:"course_id"`

	// 当前用户的完成状态，读取时填充
	IsCompleted bool `gorm:"-" json:"is_completed"`
}

func (Lesson) TableName() string {
	return "lessons"
}
