package model

// DashboardStats 仪表盘统计，均为按需统计的派生值
// swagger:model DashboardStats
type DashboardStats struct {
	TotalCourses     int64  `json:"total_courses"`
	EnrolledCourses  int64  `json:"enrolled_courses"`
	CompletedLessons int64  `json:"completed_lessons"`
	TotalStudents    *int64 `json:"total_students,omitempty"` // 仅讲师返回
}
