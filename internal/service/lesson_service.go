package service

import (
	"course_mgmt_backend/internal/model"
	"course_mgmt_backend/internal/repository"
	"course_mgmt_backend/internal/util"
	"course_mgmt_backend/pkg/monitoring"
	"errors"

	"gorm.io/gorm"
)

type LessonService struct {
	LessonRepo   *repository.LessonRepository
	CourseRepo   *repository.CourseRepository
	EnrollRepo   *repository.EnrollmentRepository
	ProgressRepo *repository.ProgressRepository
}

func NewLessonService(
	lessonRepo *repository.LessonRepository,
	courseRepo *repository.CourseRepository,
	enrollRepo *repository.EnrollmentRepository,
	progressRepo *repository.ProgressRepository,
) *LessonService {
	return &LessonService{
		LessonRepo:   lessonRepo,
		CourseRepo:   courseRepo,
		EnrollRepo:   enrollRepo,
		ProgressRepo: progressRepo,
	}
}

// LessonUpdate 部分更新：nil 表示请求未携带该字段，保持原值
type LessonUpdate struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	VideoURL        *string `json:"video_url"`
	Content         *string `json:"content"`
	OrderIndex      *int    `json:"order_index"`
	IsPublished     *bool   `json:"is_published"`
	DurationMinutes *int    `json:"duration_minutes"`
}

func (u *LessonUpdate) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.VideoURL != nil {
		fields["video_url"] = *u.VideoURL
	}
	if u.Content != nil {
		fields["content"] = *u.Content
	}
	if u.OrderIndex != nil {
		fields["order_index"] = *u.OrderIndex
	}
	if u.IsPublished != nil {
		fields["is_published"] = *u.IsPublished
	}
	if u.DurationMinutes != nil {
		fields["duration_minutes"] = *u.DurationMinutes
	}
	return fields
}

// Create 课时归属课程创建后不可变更，只有课程讲师能新增
func (s *LessonService) Create(user *model.User, lesson *model.Lesson) error {
	course, err := s.findCourse(lesson.CourseID)
	if err != nil {
		return err
	}

	if err := CanModifyCourse(user, course); err != nil {
		return err
	}

	return s.LessonRepo.Create(lesson)
}

// Get 单独读取课时，附带当前用户的完成状态
func (s *LessonService) Get(user *model.User, lessonID uint) (*model.Lesson, error) {
	lesson, err := s.findLesson(lessonID)
	if err != nil {
		return nil, err
	}

	course, err := s.findCourse(lesson.CourseID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.EnrollRepo.IsEnrolled(user.ID, course.ID)
	if err != nil {
		return nil, err
	}

	if err := CanViewLesson(user, lesson, course, enrolled); err != nil {
		return nil, err
	}

	lesson.IsCompleted, err = s.ProgressRepo.IsCompleted(user.ID, lessonID)
	if err != nil {
		return nil, err
	}

	return lesson, nil
}

func (s *LessonService) Update(user *model.User, lessonID uint, update *LessonUpdate) (*model.Lesson, error) {
	lesson, err := s.findLesson(lessonID)
	if err != nil {
		return nil, err
	}

	course, err := s.findCourse(lesson.CourseID)
	if err != nil {
		return nil, err
	}

	if err := CanModifyCourse(user, course); err != nil {
		return nil, err
	}

	if err := s.LessonRepo.UpdateFields(lessonID, update.fields()); err != nil {
		return nil, err
	}

	return s.findLesson(lessonID)
}

func (s *LessonService) Delete(user *model.User, lessonID uint) error {
	lesson, err := s.findLesson(lessonID)
	if err != nil {
		return err
	}

	course, err := s.findCourse(lesson.CourseID)
	if err != nil {
		return err
	}

	if err := CanModifyCourse(user, course); err != nil {
		return err
	}

	return s.LessonRepo.Delete(lessonID)
}

// SetCompleted 标记完成/取消完成。前置条件：已选该课时所在课程，
// 讲师不豁免。进度记录按 (user, lesson) upsert
func (s *LessonService) SetCompleted(user *model.User, lessonID uint, completed bool) error {
	lesson, err := s.findLesson(lessonID)
	if err != nil {
		return err
	}

	enrolled, err := s.EnrollRepo.IsEnrolled(user.ID, lesson.CourseID)
	if err != nil {
		return err
	}

	if err := CanToggleProgress(enrolled); err != nil {
		return err
	}

	if err := s.ProgressRepo.SetCompleted(user.ID, lessonID, completed); err != nil {
		return err
	}

	state := "uncompleted"
	if completed {
		state = "completed"
	}
	monitoring.LessonCompletionCounter.WithLabelValues(state).Inc()
	return nil
}

// ListByCourse 课程课时列表：讲师看全部，其他人只看已发布
func (s *LessonService) ListByCourse(user *model.User, courseID uint) ([]model.Lesson, error) {
	course, err := s.findCourse(courseID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.EnrollRepo.IsEnrolled(user.ID, courseID)
	if err != nil {
		return nil, err
	}

	isOwner := course.InstructorID == user.ID
	if !enrolled && !isOwner {
		return nil, util.ErrNotEnrolled
	}

	lessons, err := s.LessonRepo.FindByCourse(courseID, !isOwner)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(lessons))
	for i, l := range lessons {
		ids[i] = l.ID
	}
	completed, err := s.ProgressRepo.CompletedSet(user.ID, ids)
	if err != nil {
		return nil, err
	}
	for i := range lessons {
		lessons[i].IsCompleted = completed[lessons[i].ID]
	}

	return lessons, nil
}

func (s *LessonService) findLesson(lessonID uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	return lesson, err
}

func (s *LessonService) findCourse(courseID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}
