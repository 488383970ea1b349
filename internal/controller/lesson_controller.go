package controller

import (
	"course_mgmt_backend/internal/model"
	"course_mgmt_backend/internal/service"
	"course_mgmt_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// LessonCreateRequest 创建课时请求
// swagger:model LessonCreateRequest
type LessonCreateRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	Content         string `json:"content"`
	VideoURL        string `json:"video_url"`
	OrderIndex      int    `json:"order_index"`
	IsPublished     bool   `json:"is_published"`
	DurationMinutes int    `json:"duration_minutes"`
	CourseID        uint   `json:"course_id" binding:"required"`
}

// Create godoc
// @Summary 创建课时
// @Description 仅课程讲师可在自己的课程下新增课时
// @Tags 课时
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body LessonCreateRequest true "课时信息"
// @Success 201 {object} util.Response{data=model.Lesson} "创建成功"
// @Failure 403 {object} util.Response "非课程讲师"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/lessons [post]
func (c *LessonController) Create(ctx *gin.Context) {
	var req LessonCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson := &model.Lesson{
		Title:           req.Title,
		Description:     req.Description,
		Content:         req.Content,
		VideoURL:        req.VideoURL,
		OrderIndex:      req.OrderIndex,
		IsPublished:     req.IsPublished,
		DurationMinutes: req.DurationMinutes,
		CourseID:        req.CourseID,
	}

	if err := c.LessonService.Create(util.GetUserFromContext(ctx), lesson); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, lesson)
}

// Get godoc
// @Summary 课时详情
// @Description 需已选课或为课程讲师；未发布课时仅讲师可见
// @Tags 课时
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课时ID"
// @Success 200 {object} util.Response{data=model.Lesson} "成功"
// @Failure 403 {object} util.Response "未选课或课时未发布"
// @Failure 404 {object} util.Response "课时不存在"
// @Router /api/lessons/{id} [get]
func (c *LessonController) Get(ctx *gin.Context) {
	lessonID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	lesson, err := c.LessonService.Get(util.GetUserFromContext(ctx), lessonID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, lesson)
}

// Update godoc
// @Summary 更新课时
// @Description 仅课程讲师；部分更新，未携带的字段保持原值
// @Tags 课时
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课时ID"
// @Param   body body service.LessonUpdate true "需要更新的字段"
// @Success 200 {object} util.Response{data=model.Lesson} "成功"
// @Failure 403 {object} util.Response "非课程讲师"
// @Failure 404 {object} util.Response "课时不存在"
// @Router /api/lessons/{id} [put]
func (c *LessonController) Update(ctx *gin.Context) {
	lessonID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var update service.LessonUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Update(util.GetUserFromContext(ctx), lessonID, &update)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, lesson)
}

// Delete godoc
// @Summary 删除课时
// @Description 仅课程讲师；级联删除该课时的进度记录
// @Tags 课时
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课时ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "非课程讲师"
// @Failure 404 {object} util.Response "课时不存在"
// @Router /api/lessons/{id} [delete]
func (c *LessonController) Delete(ctx *gin.Context) {
	lessonID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.LessonService.Delete(util.GetUserFromContext(ctx), lessonID); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "lesson deleted"})
}

// Complete godoc
// @Summary 标记课时完成
// @Description 需已选该课时所在课程；记录按 (user, lesson) upsert
// @Tags 课时
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课时ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "未选课"
// @Failure 404 {object} util.Response "课时不存在"
// @Router /api/lessons/{id}/complete [post]
func (c *LessonController) Complete(ctx *gin.Context) {
	c.setCompleted(ctx, true)
}

// Uncomplete godoc
// @Summary 取消课时完成标记
// @Description 需已选该课时所在课程；completed_at 会被清空
// @Tags 课时
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课时ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "未选课"
// @Failure 404 {object} util.Response "课时不存在"
// @Router /api/lessons/{id}/uncomplete [post]
func (c *LessonController) Uncomplete(ctx *gin.Context) {
	c.setCompleted(ctx, false)
}

func (c *LessonController) setCompleted(ctx *gin.Context, completed bool) {
	lessonID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.LessonService.SetCompleted(util.GetUserFromContext(ctx), lessonID, completed); err != nil {
		handleServiceError(ctx, err)
		return
	}

	message := "lesson marked as incomplete"
	if completed {
		message = "lesson marked as complete"
	}
	util.Success(ctx, gin.H{"message": message})
}

// ListByCourse godoc
// @Summary 课程课时列表
// @Description 讲师看全部课时，其他已选课用户只看已发布课时；
// @Description 按 order_index 升序，相同时保持插入顺序
// @Tags 课时
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.Lesson} "成功"
// @Failure 403 {object} util.Response "未选课"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/lessons/course/{id} [get]
func (c *LessonController) ListByCourse(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	lessons, err := c.LessonService.ListByCourse(util.GetUserFromContext(ctx), courseID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, lessons)
}
