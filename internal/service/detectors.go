package service

import (
	"pathway_edu_backend/internal/model"
	"time"
)

// Signals 巡检时的信号快照，探测器只读
type Signals struct {
	UserID   uint
	Goal     *model.LearningGoal
	Playlist *model.LearningPlaylist
	Now      time.Time
}

// AlertCandidate 探测器产出的候选告警
// EaseDifficulty 置位时引擎会对清单做一次降档（监控反馈边）
type AlertCandidate struct {
	Type            model.AlertType
	Severity        model.AlertSeverity
	Title           string
	Description     string
	SuggestedAction string
	EaseDifficulty  bool
}

// AlertDetector 探测器契约：一次快照产出至多一条候选告警
type AlertDetector interface {
	Detect(sig Signals) *AlertCandidate
}

// ExpectedProgressFunc 期望进度（应完成的条目数），在组装层注入
type ExpectedProgressFunc func(sig Signals) float64

// LinearExpectedProgress 在清单创建时间与目标 deadline 之间线性插值
func LinearExpectedProgress(sig Signals) float64 {
	if sig.Playlist == nil || sig.Goal == nil || len(sig.Playlist.Items) == 0 {
		return 0
	}
	total := sig.Goal.Deadline.Sub(sig.Playlist.CreatedAt)
	if total <= 0 {
		return float64(len(sig.Playlist.Items))
	}
	elapsed := sig.Now.Sub(sig.Playlist.CreatedAt)
	fraction := float64(elapsed) / float64(total)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return fraction * float64(len(sig.Playlist.Items))
}

// 实际进度低于期望的七成即判定掉队
const progressLagRatio = 0.7

// ProgressLagDetector 进度滞后探测
type ProgressLagDetector struct {
	Expected ExpectedProgressFunc
}

func (d ProgressLagDetector) Detect(sig Signals) *AlertCandidate {
	if sig.Playlist == nil || sig.Goal == nil {
		return nil
	}
	// 期望不足一个条目时不判定，避免清单刚建就报警
	expected := d.Expected(sig)
	if expected < 1 {
		return nil
	}
	actual := float64(sig.Playlist.CurrentIndex)
	if actual >= expected*progressLagRatio {
		return nil
	}
	return &AlertCandidate{
		Type:            model.AlertProgressLag,
		Severity:        model.SeverityMedium,
		Title:           "学习进度落后于计划",
		Description:     "当前完成的条目数明显低于按 deadline 推算的期望进度",
		SuggestedAction: "安排补课时间赶上进度，或降低当前内容难度",
		EaseDifficulty:  true,
	}
}

// 以下三个探测器的阈值上游从未定义过，接入真实遥测前保持静默

// LowEngagementDetector 低参与度探测
// TODO: 接入登录频次/学习时长遥测后补阈值
type LowEngagementDetector struct{}

func (LowEngagementDetector) Detect(Signals) *AlertCandidate { return nil }

// DifficultySpikeDetector 难度骤升探测
type DifficultySpikeDetector struct{}

func (DifficultySpikeDetector) Detect(Signals) *AlertCandidate { return nil }

// PredictedFailureDetector 失败预测
type PredictedFailureDetector struct{}

func (PredictedFailureDetector) Detect(Signals) *AlertCandidate { return nil }
