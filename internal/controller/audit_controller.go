package controller

import (
	"pathway_edu_backend/internal/service"
	"pathway_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuditController 处理技能诊断的API请求

type AuditController struct {
	PersonaService *service.PersonaService
}

func NewAuditController(personaService *service.PersonaService) *AuditController {
	return &AuditController{PersonaService: personaService}
}

// ComputeAuditRequest 触发诊断的请求结构，分数缺省时走平台信号
type ComputeAuditRequest struct {
	SkillScores map[string]int `json:"skillScores"`
}

// @Summary 触发技能诊断
// @Description 根据技能分数生成学习者画像，重复触发返回已有诊断
// @Tags 技能诊断
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param audit body ComputeAuditRequest false "技能分数"
// @Success 201 {object} util.Response
// @Router /api/pathway/audit [post]
func (c *AuditController) ComputeAudit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ComputeAuditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		util.BadRequest(ctx, err.Error())
		return
	}

	audit, err := c.PersonaService.ComputeAudit(user.UserID, req.SkillScores)
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Created(ctx, audit)
}

// @Summary 获取技能诊断
// @Description 获取当前用户的技能诊断与画像
// @Tags 技能诊断
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/pathway/audit [get]
func (c *AuditController) GetAudit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	audit, err := c.PersonaService.GetAudit(user.UserID)
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, audit)
}
