package service

import (
	"errors"
	"fmt"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/repository"
	"pathway_edu_backend/internal/util"
	"pathway_edu_backend/pkg/logger"
	"pathway_edu_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PlaylistService 自适应学习清单与难度状态机
type PlaylistService struct {
	PlaylistRepo *repository.PlaylistRepository
	GoalRepo     *repository.GoalRepository
	Persona      *PersonaService
	Catalog      ContentCatalog
	PlaylistSize int
	DB           *gorm.DB
}

func NewPlaylistService(
	playlistRepo *repository.PlaylistRepository,
	goalRepo *repository.GoalRepository,
	persona *PersonaService,
	catalog ContentCatalog,
	playlistSize int,
	db *gorm.DB,
) *PlaylistService {
	return &PlaylistService{
		PlaylistRepo: playlistRepo,
		GoalRepo:     goalRepo,
		Persona:      persona,
		Catalog:      catalog,
		PlaylistSize: playlistSize,
		DB:           db,
	}
}

// CreatePlaylist 为目标创建清单，每个目标只建一次
// 内容条目来自内容目录协作方，起始难度由画像决定
func (s *PlaylistService) CreatePlaylist(userID, goalID uint) (*model.LearningPlaylist, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(goalID, userID)
	if err != nil {
		return nil, err
	}
	if goal.Status != model.GoalActive {
		return nil, util.ErrGoalNotActive
	}

	if _, err := s.PlaylistRepo.FindByGoalID(goalID); err == nil {
		return nil, util.ErrPlaylistExists
	} else if !errors.Is(err, util.ErrPlaylistNotFound) {
		return nil, err
	}

	audit, err := s.Persona.GetAudit(userID)
	if errors.Is(err, util.ErrAuditNotFound) {
		audit, err = s.Persona.ComputeAudit(userID, nil)
	}
	if err != nil {
		return nil, err
	}

	difficulty := InitialDifficulty(audit.PersonaType)
	items, err := s.Catalog.NextItems(goal.TrackID, difficulty, s.PlaylistSize)
	if err != nil {
		return nil, err
	}

	playlist := &model.LearningPlaylist{
		UserID:            userID,
		GoalID:            goalID,
		Title:             fmt.Sprintf("学习清单: %s", goal.Title),
		CurrentIndex:      0,
		Items:             items,
		CurrentDifficulty: difficulty,
	}

	// goal_id 上的唯一索引兜底并发下的重复创建
	if err := s.PlaylistRepo.Create(playlist); err != nil {
		return nil, err
	}

	logger.Log.Info("playlist created",
		zap.Uint("userId", userID),
		zap.Uint("goalId", goalID),
		zap.String("difficulty", string(difficulty)),
		zap.Int("items", len(items)))

	return playlist, nil
}

func (s *PlaylistService) GetPlaylist(userID, playlistID uint) (*model.LearningPlaylist, error) {
	playlist, err := s.PlaylistRepo.FindByID(playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.UserID != userID {
		return nil, util.ErrPlaylistNotFound
	}
	return playlist, nil
}

// AdjustDifficulty 按表现单步调整难度，两端封顶
// 行锁串行化同一清单上的并发调整，不会出现跳级
func (s *PlaylistService) AdjustDifficulty(playlistID uint, performedWell bool) (*model.LearningPlaylist, error) {
	var playlist *model.LearningPlaylist
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		playlist, err = s.PlaylistRepo.FindByIDForUpdate(tx, playlistID)
		if err != nil {
			return err
		}

		current := playlist.CurrentDifficulty
		next := NextDifficulty(current, performedWell)
		if next == current {
			return nil
		}

		playlist.CurrentDifficulty = next
		if err := s.PlaylistRepo.Save(tx, playlist); err != nil {
			return err
		}

		direction := "down"
		if performedWell {
			direction = "up"
		}
		monitoring.DifficultyAdjustments.WithLabelValues(direction).Inc()
		logger.Log.Info("playlist difficulty adjusted",
			zap.Uint("playlistId", playlistID),
			zap.String("from", string(current)),
			zap.String("to", string(next)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return playlist, nil
}

// Advance 完成当前条目并前移一位，同步驱动目标进度
// currentIndex 已到末尾时属于状态违例
func (s *PlaylistService) Advance(playlistID uint) (*model.LearningPlaylist, error) {
	var playlist *model.LearningPlaylist
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		playlist, err = s.PlaylistRepo.FindByIDForUpdate(tx, playlistID)
		if err != nil {
			return err
		}

		if playlist.CurrentIndex >= len(playlist.Items) {
			return util.ErrPlaylistExhausted
		}

		playlist.Items[playlist.CurrentIndex].Completed = true
		playlist.CurrentIndex++

		if err := s.PlaylistRepo.Save(tx, playlist); err != nil {
			return err
		}

		progress := playlist.CurrentIndex * 100 / len(playlist.Items)
		status := model.GoalActive
		if progress >= 100 {
			status = model.GoalCompleted
		}
		if err := s.GoalRepo.UpdateProgress(tx, playlist.GoalID, progress, status); err != nil {
			return err
		}

		monitoring.PlaylistAdvances.Inc()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return playlist, nil
}
