package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrUsernameTaken      = errors.New("该用户名已被使用")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrCourseNotFound     = errors.New("course not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrCourseNotPublished = errors.New("course not published")
	ErrLessonNotPublished = errors.New("lesson not published")
	ErrNotCourseOwner     = errors.New("not the course instructor")
	ErrNotEnrolled        = errors.New("not enrolled in this course")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
)
