package model

type PersonaType string

const (
	PersonaBeginner     PersonaType = "BEGINNER"
	PersonaIntermediate PersonaType = "INTERMEDIATE"
	PersonaAdvanced     PersonaType = "ADVANCED"
)

// SkillsAudit 技能诊断结果，每个用户至多一份
// 诊断生成后不再被改写，重复触发直接返回已有记录
type SkillsAudit struct {
	BaseModel
	UserID          uint           `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	PersonaType     PersonaType    `gorm:"size:20;not null" json:"personaType"`
	OverallScore    int            `gorm:"not null;default:0" json:"overallScore"`
	SkillScores     map[string]int `gorm:"serializer:json;type:text" json:"skillScores"`
	Strengths       []string       `gorm:"serializer:json;type:text" json:"strengths"`
	KnowledgeGaps   []string       `gorm:"serializer:json;type:text" json:"knowledgeGaps"`
	Recommendations []string       `gorm:"serializer:json;type:text" json:"recommendations"`
}

func (SkillsAudit) TableName() string {
	return "skills_audits"
}
