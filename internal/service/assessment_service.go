package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/repository"
	"pathway_edu_backend/internal/util"
	"pathway_edu_backend/pkg/logger"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AssessmentService 结业评估：创建、提交成果、评分归档
type AssessmentService struct {
	AssessmentRepo *repository.AssessmentRepository
	GoalRepo       *repository.GoalRepository
	Storage        *StorageService
	DB             *gorm.DB
}

func NewAssessmentService(
	assessmentRepo *repository.AssessmentRepository,
	goalRepo *repository.GoalRepository,
	storage *StorageService,
	db *gorm.DB,
) *AssessmentService {
	return &AssessmentService{
		AssessmentRepo: assessmentRepo,
		GoalRepo:       goalRepo,
		Storage:        storage,
		DB:             db,
	}
}

// 评分反馈按分数段查表
const (
	feedbackExcellentFloor = 80
	feedbackPassFloor      = 60
	competencyGapCeiling   = 70
)

func feedbackForScore(score int) string {
	switch {
	case score >= feedbackExcellentFloor:
		return "出色！你已经牢固掌握了本目标所需的核心技能。"
	case score >= feedbackPassFloor:
		return "不错！你已达成基本目标，请继续深入练习。"
	default:
		return "仍需加强。建议回顾未掌握的部分并增加练习量。"
	}
}

// buildNextSteps 调用方未给出后续建议时的兜底：
// 针对短板能力逐条建议，没有短板时给进阶建议
func buildNextSteps(competencyScores map[string]int) []string {
	var weak []string
	for name, score := range competencyScores {
		if score < competencyGapCeiling {
			weak = append(weak, name)
		}
	}
	sort.Strings(weak)

	steps := make([]string, 0, len(weak)+1)
	for _, name := range weak {
		steps = append(steps, fmt.Sprintf("巩固 %s 相关内容并补充练习", name))
	}
	if len(steps) == 0 {
		steps = append(steps, "尝试更高阶的进阶路径或实战项目")
	}
	return steps
}

// CreateFinalAssessment 为目标创建结业评估，类型固定为 capstone 项目
func (s *AssessmentService) CreateFinalAssessment(userID, goalID uint) (*model.Assessment, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(goalID, userID)
	if err != nil {
		return nil, err
	}

	assessment := &model.Assessment{
		UserID:         userID,
		GoalID:         goal.ID,
		AssessmentType: model.AssessmentCapstoneProject,
		Title:          "结业评估: " + goal.Title,
		Description:    "提交一个综合项目，证明你已掌握该目标要求的核心技能",
		Status:         model.AssessmentPending,
	}

	if err := s.AssessmentRepo.Create(assessment); err != nil {
		return nil, err
	}

	logger.Log.Info("final assessment created",
		zap.Uint("userId", userID),
		zap.Uint("goalId", goalID),
		zap.Uint("assessmentId", assessment.ID))

	return assessment, nil
}

func (s *AssessmentService) GetAssessment(userID, assessmentID uint) (*model.Assessment, error) {
	assessment, err := s.AssessmentRepo.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.UserID != userID {
		return nil, util.ErrAssessmentNotFound
	}
	return assessment, nil
}

func (s *AssessmentService) ListByGoal(userID, goalID uint) ([]model.Assessment, error) {
	if _, err := s.GoalRepo.FindByIDAndUserID(goalID, userID); err != nil {
		return nil, err
	}
	return s.AssessmentRepo.FindByGoalID(goalID)
}

// AttachArtifact 上传评估成果文件并把评估推进到 IN_PROGRESS
// 对象名用 uuid 防止同名覆盖
func (s *AssessmentService) AttachArtifact(ctx context.Context, userID, assessmentID uint, filename string, reader io.Reader, size int64, contentType string) (*model.Assessment, error) {
	assessment, err := s.GetAssessment(userID, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.Status == model.AssessmentCompleted {
		return nil, util.ErrAssessmentCompleted
	}

	objectName := fmt.Sprintf("artifacts/%d/%s%s", assessmentID, uuid.New().String(), filepath.Ext(filename))
	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	if err := s.AssessmentRepo.UpdateArtifact(assessment.ID, url, model.AssessmentInProgress); err != nil {
		return nil, err
	}

	assessment.ArtifactURL = url
	assessment.Status = model.AssessmentInProgress

	logger.Log.Info("assessment artifact attached",
		zap.Uint("assessmentId", assessmentID),
		zap.String("url", url))

	return assessment, nil
}

// CompleteAssessment 评分并归档
// nextSteps 由评审方给出，缺省时按能力短板生成
// completedAt 只写入一次：已完成的评估再次提交按状态违例处理
func (s *AssessmentService) CompleteAssessment(userID, assessmentID uint, score int, competencyScores map[string]int, nextSteps []string) (*model.Assessment, error) {
	if score < 0 || score > 100 {
		return nil, util.ErrScoreOutOfRange
	}
	for _, v := range competencyScores {
		if v < 0 || v > 100 {
			return nil, util.ErrScoreOutOfRange
		}
	}

	var assessment *model.Assessment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		assessment, err = s.AssessmentRepo.FindByIDForUpdate(tx, assessmentID)
		if err != nil {
			return err
		}
		if assessment.UserID != userID {
			return util.ErrAssessmentNotFound
		}
		if assessment.Status == model.AssessmentCompleted {
			return util.ErrAssessmentCompleted
		}

		if len(nextSteps) == 0 {
			nextSteps = buildNextSteps(competencyScores)
		}

		now := time.Now()
		assessment.Score = &score
		assessment.Feedback = feedbackForScore(score)
		assessment.CompetencyScores = competencyScores
		assessment.NextSteps = nextSteps
		assessment.Status = model.AssessmentCompleted
		assessment.CompletedAt = &now

		return s.AssessmentRepo.Complete(tx, assessment)
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("assessment completed",
		zap.Uint("assessmentId", assessmentID),
		zap.Int("score", score))

	return assessment, nil
}
