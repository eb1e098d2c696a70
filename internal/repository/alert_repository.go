package repository

import (
	"errors"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/util"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AlertRepository 学习预警的数据访问

type AlertRepository struct {
	DB *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{DB: db}
}

// CreateIfAbsent 靠 active_key 唯一索引完成"查重+插入"的原子化
// 同 (userId, type) 已有 ACTIVE 告警时插入被忽略并返回 false
func (r *AlertRepository) CreateIfAbsent(alert *model.EarlyAlert) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(alert)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AlertRepository) FindByIDAndUserID(id, userID uint) (*model.EarlyAlert, error) {
	var alert model.EarlyAlert
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&alert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAlertNotFound
	}
	return &alert, err
}

func (r *AlertRepository) FindByUserID(userID uint) ([]model.EarlyAlert, error) {
	var alerts []model.EarlyAlert
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

func (r *AlertRepository) FindActiveByUserID(userID uint) ([]model.EarlyAlert, error) {
	var alerts []model.EarlyAlert
	err := r.DB.Where("user_id = ? AND status = ?", userID, model.AlertActive).
		Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

func (r *AlertRepository) CountActiveByUserID(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.EarlyAlert{}).
		Where("user_id = ? AND status = ?", userID, model.AlertActive).
		Count(&count).Error
	return count, err
}

// Transition 告警状态迁移，离开 ACTIVE 时必须清空 active_key
func (r *AlertRepository) Transition(id uint, status model.AlertStatus, resolvedAt *time.Time) error {
	return r.DB.Model(&model.EarlyAlert{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"active_key":  nil,
			"resolved_at": resolvedAt,
			"updated_at":  time.Now(),
		}).Error
}
