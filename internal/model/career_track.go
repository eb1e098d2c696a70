package model

// CareerTrack 职业方向，定义该方向要求的技能及分数线
type CareerTrack struct {
	BaseModel
	Code           string         `gorm:"size:64;uniqueIndex;not null" json:"code"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Description    string         `gorm:"type:text" json:"description"`
	Icon           string         `gorm:"size:64" json:"icon"`
	Color          string         `gorm:"size:16" json:"color"`
	RequiredSkills map[string]int `gorm:"serializer:json;type:text" json:"requiredSkills"`
	Enabled        bool           `gorm:"default:true" json:"enabled"`
}

func (CareerTrack) TableName() string {
	return "career_tracks"
}
