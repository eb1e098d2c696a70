package controller

import (
	"pathway_edu_backend/internal/service"
	"pathway_edu_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GoalController 处理学习目标的API请求

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

// @Summary 创建学习目标
// @Description 创建新的 SMART 学习目标并评估可行性
// @Tags 学习目标
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param goal body service.CreateGoalRequest true "学习目标信息"
// @Success 201 {object} util.Response
// @Router /api/pathway/goals [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.CreateGoal(user.UserID, req)
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Created(ctx, goal)
}

// @Summary 获取学习目标列表
// @Description 获取当前用户的所有学习目标
// @Tags 学习目标
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/pathway/goals [get]
func (c *GoalController) ListGoals(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	goals, err := c.GoalService.ListGoals(user.UserID)
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, goals)
}

// @Summary 获取单个学习目标
// @Description 按 ID 获取学习目标
// @Tags 学习目标
// @Produce json
// @Security BearerAuth
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/pathway/goals/{id} [get]
func (c *GoalController) GetGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	goalID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid goal ID")
		return
	}

	goal, err := c.GoalService.GetGoal(user.UserID, uint(goalID))
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, goal)
}

// @Summary 取消学习目标
// @Description 将 ACTIVE 状态的目标置为 CANCELLED
// @Tags 学习目标
// @Produce json
// @Security BearerAuth
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/pathway/goals/{id}/cancel [post]
func (c *GoalController) CancelGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	goalID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid goal ID")
		return
	}

	goal, err := c.GoalService.CancelGoal(user.UserID, uint(goalID))
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, goal)
}
