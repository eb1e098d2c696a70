package controller

import (
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/service"
	"pathway_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// TouchpointController 处理社交触点的API请求

type TouchpointController struct {
	TouchpointService *service.TouchpointService
}

func NewTouchpointController(touchpointService *service.TouchpointService) *TouchpointController {
	return &TouchpointController{TouchpointService: touchpointService}
}

// CreateTouchpointRequest 创建触点的请求结构
type CreateTouchpointRequest struct {
	PlaylistID     uint                 `json:"playlistId" binding:"required"`
	TouchpointType model.TouchpointType `json:"touchpointType" binding:"required"`
}

// @Summary 创建社交触点
// @Description 在学习清单上插入一个社交互动节点
// @Tags 社交触点
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param touchpoint body CreateTouchpointRequest true "触点信息"
// @Success 201 {object} util.Response
// @Router /api/pathway/touchpoints [post]
func (c *TouchpointController) CreateTouchpoint(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateTouchpointRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	touchpoint, err := c.TouchpointService.CreateTouchpoint(user.UserID, req.PlaylistID, req.TouchpointType)
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Created(ctx, touchpoint)
}

// @Summary 获取社交触点列表
// @Description 获取当前用户的所有社交触点
// @Tags 社交触点
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/pathway/touchpoints [get]
func (c *TouchpointController) ListTouchpoints(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	touchpoints, err := c.TouchpointService.ListTouchpoints(user.UserID)
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, touchpoints)
}
