package controller

import (
	"pathway_edu_backend/internal/service"
	"pathway_edu_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AssessmentController 处理结业评估的API请求

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// CreateAssessmentRequest 创建结业评估的请求结构
type CreateAssessmentRequest struct {
	GoalID uint `json:"goalId" binding:"required"`
}

// CompleteAssessmentRequest 提交评分的请求结构
// nextSteps 缺省时由服务端按能力短板生成
type CompleteAssessmentRequest struct {
	Score            int            `json:"score" binding:"min=0,max=100"`
	CompetencyScores map[string]int `json:"competencyScores"`
	NextSteps        []string       `json:"nextSteps"`
}

// @Summary 创建结业评估
// @Description 为学习目标创建 capstone 结业评估
// @Tags 结业评估
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assessment body CreateAssessmentRequest true "目标ID"
// @Success 201 {object} util.Response
// @Router /api/pathway/assessments [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.AssessmentService.CreateFinalAssessment(user.UserID, req.GoalID)
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Created(ctx, assessment)
}

// @Summary 获取结业评估
// @Description 按 ID 获取结业评估
// @Tags 结业评估
// @Produce json
// @Security BearerAuth
// @Param id path int true "评估ID"
// @Success 200 {object} util.Response
// @Router /api/pathway/assessments/{id} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	assessmentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid assessment ID")
		return
	}

	assessment, err := c.AssessmentService.GetAssessment(user.UserID, uint(assessmentID))
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, assessment)
}

// @Summary 上传评估成果
// @Description 上传 capstone 成果文件并推进评估到 IN_PROGRESS
// @Tags 结业评估
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "评估ID"
// @Param file formData file true "成果文件"
// @Success 200 {object} util.Response
// @Router /api/pathway/assessments/{id}/artifact [post]
func (c *AssessmentController) AttachArtifact(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	assessmentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid assessment ID")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "Missing artifact file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	assessment, err := c.AssessmentService.AttachArtifact(
		ctx.Request.Context(),
		user.UserID,
		uint(assessmentID),
		fileHeader.Filename,
		file,
		fileHeader.Size,
		contentType,
	)
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, assessment)
}

// @Summary 提交评估成绩
// @Description 写入分数、反馈与能力评分，completedAt 只记录一次
// @Tags 结业评估
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "评估ID"
// @Param result body CompleteAssessmentRequest true "评分信息"
// @Success 200 {object} util.Response
// @Router /api/pathway/assessments/{id}/complete [post]
func (c *AssessmentController) CompleteAssessment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	assessmentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid assessment ID")
		return
	}

	var req CompleteAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.AssessmentService.CompleteAssessment(user.UserID, uint(assessmentID), req.Score, req.CompetencyScores, req.NextSteps)
	if err != nil {
		util.ServiceError(ctx, err)
		return
	}

	util.Success(ctx, assessment)
}
