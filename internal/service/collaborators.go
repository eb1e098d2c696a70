package service

import (
	"fmt"
	"pathway_edu_backend/internal/model"
)

// 引擎依赖的外部协作方，全部在组装层注入
// 真实数据源接好前先用这里的占位实现

// SkillSignalSource 技能信号源（考试成绩、课程完成度等）
type SkillSignalSource interface {
	SkillScores(userID uint) (map[string]int, error)
}

// StaticSignalSource 占位信号源
// TODO: 接入考试服务后换成真实成绩聚合
type StaticSignalSource struct{}

func (StaticSignalSource) SkillScores(userID uint) (map[string]int, error) {
	return map[string]int{
		"Java":        75,
		"Spring Boot": 60,
		"React":       40,
		"Database":    70,
		"Algorithms":  55,
	}, nil
}

// ContentCatalog 内容目录协作方
// 按方向与难度返回有序的内容引用，真实课程内容不在本服务内
type ContentCatalog interface {
	NextItems(trackID *uint, difficulty model.DifficultyLevel, count int) ([]model.PlaylistItem, error)
}

// StaticCatalog 占位目录，生成循环的 video/reading/project 条目
type StaticCatalog struct{}

var staticContentTypes = []string{"video", "reading", "project"}

func (StaticCatalog) NextItems(trackID *uint, difficulty model.DifficultyLevel, count int) ([]model.PlaylistItem, error) {
	items := make([]model.PlaylistItem, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, model.PlaylistItem{
			Order:       i,
			ContentType: staticContentTypes[i%len(staticContentTypes)],
			ContentID:   uint(1000 + i),
			Title:       fmt.Sprintf("第 %d 课", i+1),
			Completed:   false,
		})
	}
	return items, nil
}

// Notifier 通知协作方，投递语义由对方负责
type Notifier interface {
	AlertCreated(alert *model.EarlyAlert)
	TouchpointCreated(tp *model.SocialTouchpoint)
}

// NopNotifier 测试与降级场景使用
type NopNotifier struct{}

func (NopNotifier) AlertCreated(*model.EarlyAlert)            {}
func (NopNotifier) TouchpointCreated(*model.SocialTouchpoint) {}
