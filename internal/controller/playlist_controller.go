package controller

import (
	"pathway_edu_backend/internal/service"
	"pathway_edu_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PlaylistController 处理学习清单的API请求

type PlaylistController struct {
	PlaylistService *service.PlaylistService
}

func NewPlaylistController(playlistService *service.PlaylistService) *PlaylistController {
	return &PlaylistController{PlaylistService: playlistService}
}

// CreatePlaylistRequest 创建清单的请求结构
type CreatePlaylistRequest struct {
	GoalID uint `json:"goalId" binding:"required"`
}

// AdjustDifficultyRequest 难度调整的请求结构
type AdjustDifficultyRequest struct {
	PerformedWell bool `json:"performedWell"`
}

// @Summary 创建学习清单
// @Description 为目标生成自适应学习清单，起始难度由画像决定
// @Tags 学习清单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param playlist body CreatePlaylistRequest true "目标ID"
// @Success 201 {object} util.Response
// @Router /api/pathway/playlists [post]
func (c *PlaylistController) CreatePlaylist(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreatePlaylistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	playlist, err := c.PlaylistService.CreatePlaylist(user.UserID, req.GoalID)
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Created(ctx, playlist)
}

// @Summary 获取学习清单
// @Description 按 ID 获取学习清单
// @Tags 学习清单
// @Produce json
// @Security BearerAuth
// @Param id path int true "清单ID"
// @Success 200 {object} util.Response
// @Router /api/pathway/playlists/{id} [get]
func (c *PlaylistController) GetPlaylist(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	playlistID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid playlist ID")
		return
	}

	playlist, err := c.PlaylistService.GetPlaylist(user.UserID, uint(playlistID))
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, playlist)
}

// @Summary 完成当前条目
// @Description 标记当前条目完成并前移，同步更新目标进度
// @Tags 学习清单
// @Produce json
// @Security BearerAuth
// @Param id path int true "清单ID"
// @Success 200 {object} util.Response
// @Router /api/pathway/playlists/{id}/advance [post]
func (c *PlaylistController) Advance(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	playlistID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid playlist ID")
		return
	}

	if _, err := c.PlaylistService.GetPlaylist(user.UserID, uint(playlistID)); err != nil {
		util.ServiceError(ctx, err)
		return
	}

	playlist, err := c.PlaylistService.Advance(uint(playlistID))
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, playlist)
}

// @Summary 调整清单难度
// @Description 按表现单步升降难度，EASY/EXPERT 两端封顶
// @Tags 学习清单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "清单ID"
// @Param adjustment body AdjustDifficultyRequest true "表现反馈"
// @Success 200 {object} util.Response
// @Router /api/pathway/playlists/{id}/difficulty [post]
func (c *PlaylistController) AdjustDifficulty(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	playlistID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid playlist ID")
		return
	}

	var req AdjustDifficultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if _, err := c.PlaylistService.GetPlaylist(user.UserID, uint(playlistID)); err != nil {
		util.ServiceError(ctx, err)
		return
	}

	playlist, err := c.PlaylistService.AdjustDifficulty(uint(playlistID), req.PerformedWell)
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, playlist)
}
