package model

// swagger:model Course
type Course struct {
	BaseModel
	Title        string `gorm:"size:255;not null;index" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	ThumbnailURL string `gorm:"size:255" json:"thumbnail_url"`
	Price        int    `gorm:"default:0" json:"price"` // 价格，最小货币单位（分）
	IsPublished  bool   `gorm:"default:false" json:"is_published"`
	InstructorID uint   `gorm:"not null;index" json:"instructor_id"`
	Instructor   *User  `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`

	// 派生字段，每次读取时重新统计，不落库
	StudentCount int64 `gorm:"-" json:"student_count"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model CourseWithLessons
type CourseWithLessons struct {
	Course
	Lessons []Lesson `json:"lessons"`
}
