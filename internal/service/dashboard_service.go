package service

import (
	"errors"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/repository"
	"pathway_edu_backend/internal/util"
)

// DashboardSummary 学习路径总览，一次请求聚合各模块的当前状态
type DashboardSummary struct {
	PersonaType     model.PersonaType      `json:"personaType,omitempty"`
	OverallScore    int                    `json:"overallScore,omitempty"`
	Strengths       []string               `json:"strengths,omitempty"`
	Gaps            []string               `json:"gaps,omitempty"`
	ActiveGoal      *model.LearningGoal    `json:"activeGoal,omitempty"`
	Playlist        *PlaylistPosition      `json:"playlist,omitempty"`
	ActiveAlerts    int64                  `json:"activeAlerts"`
}

// PlaylistPosition 清单进度摘要
type PlaylistPosition struct {
	PlaylistID        uint                  `json:"playlistId"`
	Title             string                `json:"title"`
	CurrentIndex      int                   `json:"currentIndex"`
	TotalItems        int                   `json:"totalItems"`
	CurrentDifficulty model.DifficultyLevel `json:"currentDifficulty"`
}

// DashboardService 聚合画像、目标、清单与告警
type DashboardService struct {
	Persona      *PersonaService
	GoalRepo     *repository.GoalRepository
	PlaylistRepo *repository.PlaylistRepository
	AlertRepo    *repository.AlertRepository
}

func NewDashboardService(
	persona *PersonaService,
	goalRepo *repository.GoalRepository,
	playlistRepo *repository.PlaylistRepository,
	alertRepo *repository.AlertRepository,
) *DashboardService {
	return &DashboardService{
		Persona:      persona,
		GoalRepo:     goalRepo,
		PlaylistRepo: playlistRepo,
		AlertRepo:    alertRepo,
	}
}

// GetSummary 各段数据缺失时留空而不报错，新用户也能拿到总览
func (s *DashboardService) GetSummary(userID uint) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	audit, err := s.Persona.GetAudit(userID)
	if err == nil {
		summary.PersonaType = audit.PersonaType
		summary.OverallScore = audit.OverallScore
		summary.Strengths = audit.Strengths
		summary.Gaps = audit.KnowledgeGaps
	} else if !errors.Is(err, util.ErrAuditNotFound) {
		return nil, err
	}

	goal, err := s.GoalRepo.FindActiveByUserID(userID)
	if err == nil {
		summary.ActiveGoal = goal

		playlist, err := s.PlaylistRepo.FindByGoalID(goal.ID)
		if err == nil {
			summary.Playlist = &PlaylistPosition{
				PlaylistID:        playlist.ID,
				Title:             playlist.Title,
				CurrentIndex:      playlist.CurrentIndex,
				TotalItems:        len(playlist.Items),
				CurrentDifficulty: playlist.CurrentDifficulty,
			}
		} else if !errors.Is(err, util.ErrPlaylistNotFound) {
			return nil, err
		}
	} else if !errors.Is(err, util.ErrGoalNotFound) {
		return nil, err
	}

	count, err := s.AlertRepo.CountActiveByUserID(userID)
	if err != nil {
		return nil, err
	}
	summary.ActiveAlerts = count

	return summary, nil
}
