package service

import (
	"errors"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/repository"
	"pathway_edu_backend/internal/util"
	"pathway_edu_backend/pkg/logger"
	"pathway_edu_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
)

// MonitoringService 预警巡检引擎
// 周期触发由外部调度方负责，这里只实现一次 evaluate
type MonitoringService struct {
	AlertRepo    *repository.AlertRepository
	PlaylistRepo *repository.PlaylistRepository
	GoalRepo     *repository.GoalRepository
	Playlists    *PlaylistService
	Detectors    []AlertDetector
	Notifier     Notifier
}

func NewMonitoringService(
	alertRepo *repository.AlertRepository,
	playlistRepo *repository.PlaylistRepository,
	goalRepo *repository.GoalRepository,
	playlists *PlaylistService,
	detectors []AlertDetector,
	notifier Notifier,
) *MonitoringService {
	return &MonitoringService{
		AlertRepo:    alertRepo,
		PlaylistRepo: playlistRepo,
		GoalRepo:     goalRepo,
		Playlists:    playlists,
		Detectors:    detectors,
		Notifier:     notifier,
	}
}

// Evaluate 对单个用户跑一轮探测器
// 去重由 active_key 唯一索引保证：同 (userId, type) 至多一条 ACTIVE，
// 并发巡检下落败的插入是静默空操作
func (s *MonitoringService) Evaluate(userID uint) ([]model.EarlyAlert, error) {
	playlist, err := s.PlaylistRepo.FindFirstByUserID(userID)
	if errors.Is(err, util.ErrPlaylistNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	goal, err := s.GoalRepo.FindByID(playlist.GoalID)
	if err != nil {
		return nil, err
	}

	sig := Signals{
		UserID:   userID,
		Goal:     goal,
		Playlist: playlist,
		Now:      time.Now(),
	}

	var created []model.EarlyAlert
	for _, detector := range s.Detectors {
		candidate := detector.Detect(sig)
		if candidate == nil {
			continue
		}

		activeKey := model.AlertActiveKey(userID, candidate.Type)
		alert := &model.EarlyAlert{
			UserID:          userID,
			AlertType:       candidate.Type,
			Severity:        candidate.Severity,
			Title:           candidate.Title,
			Description:     candidate.Description,
			SuggestedAction: candidate.SuggestedAction,
			Status:          model.AlertActive,
			ActiveKey:       &activeKey,
		}

		inserted, err := s.AlertRepo.CreateIfAbsent(alert)
		if err != nil {
			return created, err
		}
		if !inserted {
			continue
		}

		created = append(created, *alert)
		monitoring.AlertsCreated.WithLabelValues(string(candidate.Type)).Inc()
		s.Notifier.AlertCreated(alert)
		logger.Log.Info("early alert raised",
			zap.Uint("userId", userID),
			zap.String("type", string(candidate.Type)),
			zap.String("severity", string(candidate.Severity)))

		// 监控反馈边：探测器要求降档时回写清单难度
		if candidate.EaseDifficulty {
			if _, err := s.Playlists.AdjustDifficulty(playlist.ID, false); err != nil {
				logger.Log.Error("failed to ease playlist difficulty",
					zap.Uint("playlistId", playlist.ID), zap.Error(err))
			}
		}
	}

	return created, nil
}

// Sweep 对所有持有清单的用户跑一轮巡检，定时任务入口
func (s *MonitoringService) Sweep() error {
	userIDs, err := s.PlaylistRepo.ActiveUserIDs()
	if err != nil {
		return err
	}
	for _, userID := range userIDs {
		if _, err := s.Evaluate(userID); err != nil {
			logger.Log.Error("alert evaluation failed", zap.Uint("userId", userID), zap.Error(err))
		}
	}
	return nil
}

func (s *MonitoringService) ListAlerts(userID uint) ([]model.EarlyAlert, error) {
	return s.AlertRepo.FindByUserID(userID)
}

// Acknowledge ACTIVE → ACKNOWLEDGED
func (s *MonitoringService) Acknowledge(userID, alertID uint) (*model.EarlyAlert, error) {
	alert, err := s.AlertRepo.FindByIDAndUserID(alertID, userID)
	if err != nil {
		return nil, err
	}
	if alert.Status != model.AlertActive {
		return nil, util.ErrAlertNotActive
	}
	if err := s.AlertRepo.Transition(alert.ID, model.AlertAcknowledged, nil); err != nil {
		return nil, err
	}
	alert.Status = model.AlertAcknowledged
	alert.ActiveKey = nil
	return alert, nil
}

// Resolve ACTIVE/ACKNOWLEDGED → RESOLVED，记录解除时间
func (s *MonitoringService) Resolve(userID, alertID uint) (*model.EarlyAlert, error) {
	alert, err := s.AlertRepo.FindByIDAndUserID(alertID, userID)
	if err != nil {
		return nil, err
	}
	if alert.Status == model.AlertResolved {
		return nil, util.ErrAlertNotActive
	}
	now := time.Now()
	if err := s.AlertRepo.Transition(alert.ID, model.AlertResolved, &now); err != nil {
		return nil, err
	}
	alert.Status = model.AlertResolved
	alert.ActiveKey = nil
	alert.ResolvedAt = &now
	return alert, nil
}
