package model

import (
	"fmt"
	"time"
)

type AlertType string

const (
	AlertProgressLag      AlertType = "PROGRESS_LAG"
	AlertLowEngagement    AlertType = "LOW_ENGAGEMENT"
	AlertDifficultySpike  AlertType = "DIFFICULTY_SPIKE"
	AlertMissingDeadline  AlertType = "MISSING_DEADLINE"
	AlertPredictedFailure AlertType = "PREDICTED_FAILURE"
)

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "LOW"
	SeverityMedium   AlertSeverity = "MEDIUM"
	SeverityHigh     AlertSeverity = "HIGH"
	SeverityCritical AlertSeverity = "CRITICAL"
)

type AlertStatus string

const (
	AlertActive       AlertStatus = "ACTIVE"
	AlertAcknowledged AlertStatus = "ACKNOWLEDGED"
	AlertResolved     AlertStatus = "RESOLVED"
)

// EarlyAlert 学习预警
// ActiveKey 在 ACTIVE 状态下取 "{userId}:{type}" 并带唯一索引，
// 离开 ACTIVE 状态后置空；(userId, type) 至多一条 ACTIVE 由此在存储层保证
type EarlyAlert struct {
	BaseModel
	UserID          uint          `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	AlertType       AlertType     `gorm:"size:50;not null" json:"alertType"`
	Severity        AlertSeverity `gorm:"size:20;not null" json:"severity"`
	Title           string        `gorm:"size:300;not null" json:"title"`
	Description     string        `gorm:"type:text" json:"description"`
	SuggestedAction string        `gorm:"type:text" json:"suggestedAction"`
	Status          AlertStatus   `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	ActiveKey       *string       `gorm:"uniqueIndex;size:80" json:"-"`
	ResolvedAt      *time.Time    `json:"resolvedAt,omitempty"`
}

func (EarlyAlert) TableName() string {
	return "early_alerts"
}

// AlertActiveKey ACTIVE 告警的去重键
func AlertActiveKey(userID uint, alertType AlertType) string {
	return fmt.Sprintf("%d:%s", userID, alertType)
}
