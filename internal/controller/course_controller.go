package controller

import (
	"course_mgmt_backend/internal/model"
	"course_mgmt_backend/internal/service"
	"course_mgmt_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// CourseCreateRequest 创建课程请求
// swagger:model CourseCreateRequest
type CourseCreateRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	Price        int    `json:"price"`
	IsPublished  bool   `json:"is_published"`
}

// List godoc
// @Summary 课程目录
// @Description 游客可访问；published_only 默认 true，支持 offset/limit
// @Tags 课程
// @Produce  json
// @Param   published_only query bool false "仅展示已发布课程" default(true)
// @Param   offset query int false "偏移量" default(0)
// @Param   limit query int false "每页条数" default(100)
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	publishedOnly, err := strconv.ParseBool(ctx.DefaultQuery("published_only", "true"))
	if err != nil {
		util.BadRequest(ctx, "invalid published_only")
		return
	}
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	courses, err := c.CourseService.List(publishedOnly, offset, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// Detail godoc
// @Summary 课程详情
// @Description 讲师本人或已发布且已选课的用户可见，附带课时列表与完成状态
// @Tags 课程
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.CourseWithLessons} "成功"
// @Failure 403 {object} util.Response "未发布或未选课"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id} [get]
func (c *CourseController) Detail(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.CourseService.GetDetail(util.GetUserFromContext(ctx), courseID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// Create godoc
// @Summary 创建课程
// @Description 仅讲师；创建者即课程讲师，归属不可变更
// @Tags 课程
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CourseCreateRequest true "课程信息"
// @Success 201 {object} util.Response{data=model.Course} "创建成功"
// @Failure 403 {object} util.Response "缺少讲师身份"
// @Router /api/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req CourseCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course := &model.Course{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		Price:        req.Price,
		IsPublished:  req.IsPublished,
	}

	if err := c.CourseService.Create(util.GetUserFromContext(ctx), course); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

// Update godoc
// @Summary 更新课程
// @Description 仅课程讲师；部分更新，未携带的字段保持原值
// @Tags 课程
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Param   body body service.CourseUpdate true "需要更新的字段"
// @Success 200 {object} util.Response{data=model.Course} "成功"
// @Failure 403 {object} util.Response "非课程讲师"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var update service.CourseUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Update(util.GetUserFromContext(ctx), courseID, &update)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// Delete godoc
// @Summary 删除课程
// @Description 仅课程讲师；级联删除课时与进度记录
// @Tags 课程
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "非课程讲师"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.CourseService.Delete(util.GetUserFromContext(ctx), courseID); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "course deleted"})
}

// Enroll godoc
// @Summary 报名课程
// @Description 仅限已发布课程；重复报名返回 409
// @Tags 课程
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "课程未发布"
// @Failure 404 {object} util.Response "课程不存在"
// @Failure 409 {object} util.Response "已报名该课程"
// @Router /api/courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.CourseService.Enroll(util.GetUserFromContext(ctx), courseID); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "enrolled"})
}

// MyEnrolled godoc
// @Summary 我报名的课程
// @Tags 课程
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Router /api/courses/my/enrolled [get]
func (c *CourseController) MyEnrolled(ctx *gin.Context) {
	courses, err := c.CourseService.MyEnrolled(util.GetUserFromContext(ctx))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// MyCreated godoc
// @Summary 我创建的课程
// @Tags 课程
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Failure 403 {object} util.Response "缺少讲师身份"
// @Router /api/courses/my/created [get]
func (c *CourseController) MyCreated(ctx *gin.Context) {
	courses, err := c.CourseService.MyCreated(util.GetUserFromContext(ctx))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
