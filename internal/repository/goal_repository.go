package repository

import (
	"errors"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// GoalRepository 学习目标的数据访问

type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.LearningGoal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) FindByID(id uint) (*model.LearningGoal, error) {
	var goal model.LearningGoal
	err := r.DB.First(&goal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrGoalNotFound
	}
	return &goal, err
}

func (r *GoalRepository) FindByIDAndUserID(id, userID uint) (*model.LearningGoal, error) {
	var goal model.LearningGoal
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrGoalNotFound
	}
	return &goal, err
}

func (r *GoalRepository) FindByUserID(userID uint) ([]model.LearningGoal, error) {
	var goals []model.LearningGoal
	err := r.DB.Where("user_id = ?", userID).Order("deadline").Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) FindActiveByUserID(userID uint) (*model.LearningGoal, error) {
	var goal model.LearningGoal
	err := r.DB.Where("user_id = ? AND status = ?", userID, model.GoalActive).
		Order("deadline").First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrGoalNotFound
	}
	return &goal, err
}

// UpdateProgress 事务内更新进度与状态，只由清单 advance 触发
// 终态目标不再回写
func (r *GoalRepository) UpdateProgress(tx *gorm.DB, goalID uint, progress int, status model.GoalStatus) error {
	return tx.Model(&model.LearningGoal{}).
		Where("id = ? AND status = ?", goalID, model.GoalActive).
		Updates(map[string]interface{}{
			"progress":   progress,
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *GoalRepository) UpdateStatus(goalID uint, status model.GoalStatus) error {
	return r.DB.Model(&model.LearningGoal{}).
		Where("id = ?", goalID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}
