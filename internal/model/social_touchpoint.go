package model

type TouchpointType string

const (
	TouchpointDiscussionGroup TouchpointType = "DISCUSSION_GROUP"
	TouchpointPeerReview      TouchpointType = "PEER_REVIEW"
	TouchpointMentorMatch     TouchpointType = "MENTOR_MATCH"
	TouchpointForumQuestion   TouchpointType = "FORUM_QUESTION"
)

type TouchpointStatus string

const (
	TouchpointPending   TouchpointStatus = "PENDING"
	TouchpointActive    TouchpointStatus = "ACTIVE"
	TouchpointCompleted TouchpointStatus = "COMPLETED"
)

// SocialTouchpoint 学习路径中的社交互动节点
type SocialTouchpoint struct {
	BaseModel
	UserID         uint             `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	PlaylistID     uint             `gorm:"index;not null" json:"playlistId"`
	TouchpointType TouchpointType   `gorm:"size:50;not null" json:"touchpointType"`
	Title          string           `gorm:"size:300;not null" json:"title"`
	Description    string           `gorm:"type:text" json:"description"`
	Status         TouchpointStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
}

func (SocialTouchpoint) TableName() string {
	return "social_touchpoints"
}
