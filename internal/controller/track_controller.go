package controller

import (
	"pathway_edu_backend/internal/service"
	"pathway_edu_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// TrackController 处理职业方向的API请求

type TrackController struct {
	TrackService *service.TrackService
}

func NewTrackController(trackService *service.TrackService) *TrackController {
	return &TrackController{TrackService: trackService}
}

// @Summary 获取职业方向列表
// @Description 获取所有启用的职业方向及其技能要求
// @Tags 职业方向
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/tracks [get]
func (c *TrackController) ListTracks(ctx *gin.Context) {
	tracks, err := c.TrackService.ListTracks(ctx.Request.Context())
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, tracks)
}

// @Summary 获取单个职业方向
// @Description 按 ID 获取职业方向
// @Tags 职业方向
// @Produce json
// @Param id path int true "方向ID"
// @Success 200 {object} util.Response
// @Router /api/tracks/{id} [get]
func (c *TrackController) GetTrack(ctx *gin.Context) {
	trackID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid track ID")
		return
	}

	track, err := c.TrackService.GetTrack(uint(trackID))
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, track)
}
