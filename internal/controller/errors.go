package controller

import (
	"course_mgmt_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

// handleServiceError 把领域错误映射到 HTTP 状态码。
// 错误全部终结于当前请求，不做重试
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrCourseNotPublished),
		errors.Is(err, util.ErrLessonNotPublished),
		errors.Is(err, util.ErrNotEnrolled),
		errors.Is(err, util.ErrNotCourseOwner),
		errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, err.Error())
	case errors.Is(err, util.ErrAlreadyEnrolled),
		errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrUsernameTaken):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Unauthorized(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
