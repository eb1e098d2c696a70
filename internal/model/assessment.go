package model

import "time"

type AssessmentType string

const (
	AssessmentCapstoneProject AssessmentType = "CAPSTONE_PROJECT"
	AssessmentFinalExam       AssessmentType = "FINAL_EXAM"
	AssessmentPortfolioReview AssessmentType = "PORTFOLIO_REVIEW"
	AssessmentPeerAssessment  AssessmentType = "PEER_ASSESSMENT"
)

type AssessmentStatus string

const (
	AssessmentPending    AssessmentStatus = "PENDING"
	AssessmentInProgress AssessmentStatus = "IN_PROGRESS"
	AssessmentCompleted  AssessmentStatus = "COMPLETED"
)

// Assessment 结业评估
// CompletedAt 仅在转入 COMPLETED 时写入一次，此后不可变
type Assessment struct {
	BaseModel
	UserID           uint             `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	GoalID           uint             `gorm:"index;not null" json:"goalId"`
	AssessmentType   AssessmentType   `gorm:"size:50;not null" json:"assessmentType"`
	Title            string           `gorm:"size:300;not null" json:"title"`
	Description      string           `gorm:"type:text" json:"description"`
	Score            *int             `json:"score,omitempty"`
	Feedback         string           `gorm:"type:text" json:"feedback"`
	CompetencyScores map[string]int   `gorm:"serializer:json;type:text" json:"competencyScores"`
	NextSteps        []string         `gorm:"serializer:json;type:text" json:"nextSteps"`
	ArtifactURL      string           `gorm:"size:500" json:"artifactUrl,omitempty"`
	Status           AssessmentStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	CompletedAt      *time.Time       `json:"completedAt,omitempty"`
}

func (Assessment) TableName() string {
	return "assessments"
}
