package service

import (
	"course_mgmt_backend/internal/model"
	"course_mgmt_backend/internal/repository"
)

type DashboardService struct {
	CourseRepo   *repository.CourseRepository
	EnrollRepo   *repository.EnrollmentRepository
	ProgressRepo *repository.ProgressRepository
}

func NewDashboardService(
	courseRepo *repository.CourseRepository,
	enrollRepo *repository.EnrollmentRepository,
	progressRepo *repository.ProgressRepository,
) *DashboardService {
	return &DashboardService{
		CourseRepo:   courseRepo,
		EnrollRepo:   enrollRepo,
		ProgressRepo: progressRepo,
	}
}

// GetStats 仪表盘统计，全部按需计算
func (s *DashboardService) GetStats(user *model.User) (*model.DashboardStats, error) {
	totalCourses, err := s.CourseRepo.CountPublished()
	if err != nil {
		return nil, err
	}

	enrolledCourses, err := s.EnrollRepo.CountByUser(user.ID)
	if err != nil {
		return nil, err
	}

	completedLessons, err := s.ProgressRepo.CountCompletedByUser(user.ID)
	if err != nil {
		return nil, err
	}

	stats := &model.DashboardStats{
		TotalCourses:     totalCourses,
		EnrolledCourses:  enrolledCourses,
		CompletedLessons: completedLessons,
	}

	if user.IsInstructor {
		totalStudents, err := s.EnrollRepo.CountDistinctStudentsByInstructor(user.ID)
		if err != nil {
			return nil, err
		}
		stats.TotalStudents = &totalStudents
	}

	return stats, nil
}
