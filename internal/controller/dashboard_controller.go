package controller

import (
	"course_mgmt_backend/internal/service"
	"course_mgmt_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetStats godoc
// @Summary 仪表盘统计
// @Description 平台已发布课程数、我的选课数、我的已完成课时数；讲师额外返回去重学生数
// @Tags 仪表盘
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.DashboardStats} "成功"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/dashboard/stats [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.DashboardService.GetStats(util.GetUserFromContext(ctx))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
