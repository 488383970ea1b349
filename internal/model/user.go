package model

// swagger:model User
type User struct {
	BaseModel
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Password     string `gorm:"size:100;not null" json:"-"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	IsInstructor bool   `gorm:"default:false" json:"is_instructor"`
}

func (User) TableName() string {
	return "users"
}
