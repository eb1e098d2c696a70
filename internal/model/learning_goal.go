package model

import "time"

type GoalStatus string

const (
	GoalActive    GoalStatus = "ACTIVE"
	GoalCompleted GoalStatus = "COMPLETED"
	GoalCancelled GoalStatus = "CANCELLED"
)

// LearningGoal SMART 学习目标
// progress 只由播放清单的 advance 操作驱动；COMPLETED/CANCELLED 为终态
type LearningGoal struct {
	BaseModel
	UserID           uint       `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Title            string     `gorm:"size:500;not null" json:"title"`
	Description      string     `gorm:"type:text" json:"description"`
	SuccessCriteria  string     `gorm:"type:text" json:"successCriteria"`
	FeasibilityScore int        `json:"feasibilityScore"`
	RelevanceScore   int        `json:"relevanceScore"`
	Deadline         time.Time  `gorm:"type:date;not null" json:"deadline"`
	Status           GoalStatus `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	Progress         int        `gorm:"not null;default:0" json:"progress"`
	TrackID          *uint      `gorm:"index" json:"trackId,omitempty"`
}

func (LearningGoal) TableName() string {
	return "learning_goals"
}
