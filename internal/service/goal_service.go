package service

import (
	"errors"
	"fmt"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/repository"
	"pathway_edu_backend/internal/util"
	"pathway_edu_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// RelevanceScorer SMART 目标的相关性评分，可替换
type RelevanceScorer interface {
	Score(audit *model.SkillsAudit, trackID *uint) int
}

// StaticRelevance 固定分值的评分器
type StaticRelevance struct {
	Value int
}

func (r StaticRelevance) Score(*model.SkillsAudit, *uint) int {
	return r.Value
}

// 没有可比较的方向要求时退回的固定相关性分值
const defaultRelevance = 75

// TrackRelevance 对比职业方向的技能要求与诊断得分
// 每项技能按 "现有/要求" 的达成率计分后取平均
type TrackRelevance struct {
	Tracks *repository.CareerTrackRepository
}

func (r TrackRelevance) Score(audit *model.SkillsAudit, trackID *uint) int {
	if trackID == nil {
		return defaultRelevance
	}
	track, err := r.Tracks.FindByID(*trackID)
	if err != nil || len(track.RequiredSkills) == 0 {
		return defaultRelevance
	}

	total := 0
	for skill, required := range track.RequiredSkills {
		if required <= 0 {
			total += 100
			continue
		}
		attained := audit.SkillScores[skill] * 100 / required
		if attained > 100 {
			attained = 100
		}
		total += attained
	}
	return total / len(track.RequiredSkills)
}

// GoalService SMART 学习目标
type GoalService struct {
	GoalRepo  *repository.GoalRepository
	Persona   *PersonaService
	Relevance RelevanceScorer
}

func NewGoalService(goalRepo *repository.GoalRepository, persona *PersonaService, relevance RelevanceScorer) *GoalService {
	return &GoalService{GoalRepo: goalRepo, Persona: persona, Relevance: relevance}
}

// CreateGoalRequest 创建学习目标的请求结构
type CreateGoalRequest struct {
	Title       string    `json:"title" binding:"required,max=500"`
	Description string    `json:"description" binding:"max=2000"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	TrackID     *uint     `json:"trackId"`
}

// CreateGoal 创建 SMART 学习目标，缺少诊断时先补跑一次
func (s *GoalService) CreateGoal(userID uint, req CreateGoalRequest) (*model.LearningGoal, error) {
	if req.Deadline.IsZero() || !req.Deadline.After(time.Now()) {
		return nil, util.ErrInvalidDeadline
	}

	audit, err := s.Persona.GetAudit(userID)
	if errors.Is(err, util.ErrAuditNotFound) {
		audit, err = s.Persona.ComputeAudit(userID, nil)
	}
	if err != nil {
		return nil, err
	}

	goal := &model.LearningGoal{
		UserID:           userID,
		Title:            req.Title,
		Description:      req.Description,
		SuccessCriteria:  successCriteria(req.Title),
		FeasibilityScore: feasibilityScore(audit, req.Deadline),
		RelevanceScore:   s.Relevance.Score(audit, req.TrackID),
		Deadline:         req.Deadline,
		Status:           model.GoalActive,
		Progress:         0,
		TrackID:          req.TrackID,
	}

	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}

	logger.Log.Info("learning goal created",
		zap.Uint("userId", userID),
		zap.Uint("goalId", goal.ID),
		zap.Int("feasibility", goal.FeasibilityScore))

	return goal, nil
}

func (s *GoalService) GetGoal(userID, goalID uint) (*model.LearningGoal, error) {
	return s.GoalRepo.FindByIDAndUserID(goalID, userID)
}

func (s *GoalService) ListGoals(userID uint) ([]model.LearningGoal, error) {
	return s.GoalRepo.FindByUserID(userID)
}

// CancelGoal 仅允许 ACTIVE → CANCELLED，终态不可再迁移
func (s *GoalService) CancelGoal(userID, goalID uint) (*model.LearningGoal, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(goalID, userID)
	if err != nil {
		return nil, err
	}
	if goal.Status != model.GoalActive {
		return nil, util.ErrGoalNotActive
	}
	if err := s.GoalRepo.UpdateStatus(goal.ID, model.GoalCancelled); err != nil {
		return nil, err
	}
	goal.Status = model.GoalCancelled
	return goal, nil
}

func successCriteria(title string) string {
	return fmt.Sprintf("完成《%s》学习清单中至少 80%% 的内容，并在结业评估中取得 70 分以上", title)
}

// daysUntilDeadline 剩余天数按日历日计算，两端都截断到当天零点
// 当天中午提交、90 天后截止的目标仍算满 90 天
// 差值在 UTC 下计算，避免夏令时把整天差凑不满 24 小时
func daysUntilDeadline(deadline time.Time) int {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, time.UTC)
	return int(due.Sub(today).Hours() / 24)
}

// feasibilityScore 可行性评分
// BEGINNER 且不足 30 天直接判 40 分；其余按总分和剩余天数修正
func feasibilityScore(audit *model.SkillsAudit, deadline time.Time) int {
	days := daysUntilDeadline(deadline)

	if audit.PersonaType == model.PersonaBeginner && days < 30 {
		return 40
	}

	base := audit.OverallScore
	switch {
	case days >= 90:
		if base+20 > 100 {
			return 100
		}
		return base + 20
	case days >= 60:
		return base
	default:
		if base-20 < 30 {
			return 30
		}
		return base - 20
	}
}
