package controller

import (
	"pathway_edu_backend/internal/service"
	"pathway_edu_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AlertController 处理学习预警的API请求

type AlertController struct {
	MonitoringService *service.MonitoringService
}

func NewAlertController(monitoringService *service.MonitoringService) *AlertController {
	return &AlertController{MonitoringService: monitoringService}
}

// @Summary 获取预警列表
// @Description 获取当前用户的全部学习预警
// @Tags 学习预警
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/pathway/alerts [get]
func (c *AlertController) ListAlerts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	alerts, err := c.MonitoringService.ListAlerts(user.UserID)
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, alerts)
}

// @Summary 触发预警巡检
// @Description 对当前用户立即跑一轮预警探测
// @Tags 学习预警
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/pathway/alerts/evaluate [post]
func (c *AlertController) Evaluate(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	alerts, err := c.MonitoringService.Evaluate(user.UserID)
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, alerts)
}

// @Summary 确认预警
// @Description 将 ACTIVE 预警置为 ACKNOWLEDGED
// @Tags 学习预警
// @Produce json
// @Security BearerAuth
// @Param id path int true "预警ID"
// @Success 200 {object} util.Response
// @Router /api/pathway/alerts/{id}/acknowledge [post]
func (c *AlertController) Acknowledge(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	alertID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid alert ID")
		return
	}

	alert, err := c.MonitoringService.Acknowledge(user.UserID, uint(alertID))
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, alert)
}

// @Summary 解除预警
// @Description 将预警置为 RESOLVED 并记录解除时间
// @Tags 学习预警
// @Produce json
// @Security BearerAuth
// @Param id path int true "预警ID"
// @Success 200 {object} util.Response
// @Router /api/pathway/alerts/{id}/resolve [post]
func (c *AlertController) Resolve(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	alertID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid alert ID")
		return
	}

	alert, err := c.MonitoringService.Resolve(user.UserID, uint(alertID))
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, alert)
}
