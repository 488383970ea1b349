package service

import (
	"course_mgmt_backend/internal/model"
	"course_mgmt_backend/internal/repository"
	"course_mgmt_backend/internal/util"
	"course_mgmt_backend/pkg/monitoring"
	"errors"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo   *repository.CourseRepository
	LessonRepo   *repository.LessonRepository
	EnrollRepo   *repository.EnrollmentRepository
	ProgressRepo *repository.ProgressRepository
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	lessonRepo *repository.LessonRepository,
	enrollRepo *repository.EnrollmentRepository,
	progressRepo *repository.ProgressRepository,
) *CourseService {
	return &CourseService{
		CourseRepo:   courseRepo,
		LessonRepo:   lessonRepo,
		EnrollRepo:   enrollRepo,
		ProgressRepo: progressRepo,
	}
}

// CourseUpdate 部分更新：nil 表示请求未携带该字段，保持原值
type CourseUpdate struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Price        *int    `json:"price"`
	IsPublished  *bool   `json:"is_published"`
}

func (u *CourseUpdate) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.ThumbnailURL != nil {
		fields["thumbnail_url"] = *u.ThumbnailURL
	}
	if u.Price != nil {
		fields["price"] = *u.Price
	}
	if u.IsPublished != nil {
		fields["is_published"] = *u.IsPublished
	}
	return fields
}

// List 课程目录，游客可访问；published_only 默认 true 由 controller 解析
func (s *CourseService) List(publishedOnly bool, offset, limit int) ([]model.Course, error) {
	courses, err := s.CourseRepo.List(publishedOnly, offset, limit)
	if err != nil {
		return nil, err
	}
	if err := s.attachStudentCounts(courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetDetail 课程详情 + 全部课时 + 当前用户的完成状态
func (s *CourseService) GetDetail(user *model.User, courseID uint) (*model.CourseWithLessons, error) {
	course, err := s.findCourse(courseID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.EnrollRepo.IsEnrolled(user.ID, courseID)
	if err != nil {
		return nil, err
	}

	if err := CanViewCourse(user, course, enrolled); err != nil {
		return nil, err
	}

	lessons, err := s.LessonRepo.FindByCourse(courseID, false)
	if err != nil {
		return nil, err
	}

	if err := s.fillCompletion(user.ID, lessons); err != nil {
		return nil, err
	}

	course.StudentCount, err = s.EnrollRepo.CountStudents(courseID)
	if err != nil {
		return nil, err
	}

	return &model.CourseWithLessons{Course: *course, Lessons: lessons}, nil
}

// Create 创建者即课程讲师，归属关系创建后不可变更
func (s *CourseService) Create(user *model.User, course *model.Course) error {
	course.InstructorID = user.ID
	return s.CourseRepo.Create(course)
}

func (s *CourseService) Update(user *model.User, courseID uint, update *CourseUpdate) (*model.Course, error) {
	course, err := s.findCourse(courseID)
	if err != nil {
		return nil, err
	}

	if err := CanModifyCourse(user, course); err != nil {
		return nil, err
	}

	if err := s.CourseRepo.UpdateFields(courseID, update.fields()); err != nil {
		return nil, err
	}

	course, err = s.findCourse(courseID)
	if err != nil {
		return nil, err
	}
	course.StudentCount, err = s.EnrollRepo.CountStudents(courseID)
	return course, err
}

func (s *CourseService) Delete(user *model.User, courseID uint) error {
	course, err := s.findCourse(courseID)
	if err != nil {
		return err
	}

	if err := CanModifyCourse(user, course); err != nil {
		return err
	}

	return s.CourseRepo.Delete(courseID)
}

func (s *CourseService) Enroll(user *model.User, courseID uint) error {
	course, err := s.findCourse(courseID)
	if err != nil {
		return err
	}

	if err := CanEnroll(course); err != nil {
		return err
	}

	if err := s.EnrollRepo.Enroll(user.ID, courseID); err != nil {
		return err
	}

	monitoring.EnrollmentCounter.Inc()
	return nil
}

func (s *CourseService) MyEnrolled(user *model.User) ([]model.Course, error) {
	courses, err := s.EnrollRepo.FindCoursesByUser(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.attachStudentCounts(courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseService) MyCreated(user *model.User) ([]model.Course, error) {
	courses, err := s.CourseRepo.FindByInstructor(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.attachStudentCounts(courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseService) findCourse(courseID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

func (s *CourseService) attachStudentCounts(courses []model.Course) error {
	for i := range courses {
		count, err := s.EnrollRepo.CountStudents(courses[i].ID)
		if err != nil {
			return err
		}
		courses[i].StudentCount = count
	}
	return nil
}

func (s *CourseService) fillCompletion(userID uint, lessons []model.Lesson) error {
	ids := make([]uint, len(lessons))
	for i, l := range lessons {
		ids[i] = l.ID
	}

	completed, err := s.ProgressRepo.CompletedSet(userID, ids)
	if err != nil {
		return err
	}

	for i := range lessons {
		lessons[i].IsCompleted = completed[lessons[i].ID]
	}
	return nil
}
