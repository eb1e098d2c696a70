package model

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "EASY"
	DifficultyMedium DifficultyLevel = "MEDIUM"
	DifficultyHard   DifficultyLevel = "HARD"
	DifficultyExpert DifficultyLevel = "EXPERT"
)

// PlaylistItem 清单中的单个内容条目
type PlaylistItem struct {
	Order       int    `json:"order"`
	ContentType string `json:"contentType"` // video / reading / project
	ContentID   uint   `json:"contentId"`
	Title       string `json:"title"`
	Completed   bool   `json:"completed"`
}

// LearningPlaylist 自适应学习清单，每个目标至多一份
// 0 <= CurrentIndex <= len(Items)，越界推进属于状态违例
type LearningPlaylist struct {
	BaseModel
	UserID            uint            `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	GoalID            uint            `gorm:"uniqueIndex;not null" json:"goalId"`
	Title             string          `gorm:"size:300;not null" json:"title"`
	CurrentIndex      int             `gorm:"not null;default:0" json:"currentIndex"`
	Items             []PlaylistItem  `gorm:"serializer:json;type:text" json:"items"`
	CurrentDifficulty DifficultyLevel `gorm:"size:20" json:"currentDifficulty"`
}

func (LearningPlaylist) TableName() string {
	return "learning_playlists"
}
