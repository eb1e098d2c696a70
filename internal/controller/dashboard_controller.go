package controller

import (
	"pathway_edu_backend/internal/service"
	"pathway_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// DashboardController 处理学习总览的API请求

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary 获取学习总览
// @Description 聚合画像、当前目标、清单进度与活跃预警数量
// @Tags 总览
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/pathway/dashboard [get]
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.DashboardService.GetSummary(user.UserID)
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}
