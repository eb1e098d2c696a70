package service

import (
	"testing"
	"time"

	"pathway_edu_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lagSignals(created time.Time, deadline time.Time, currentIndex, items int) Signals {
	playlistItems := make([]model.PlaylistItem, items)
	return Signals{
		UserID: 1,
		Goal: &model.LearningGoal{
			Deadline: deadline,
			Status:   model.GoalActive,
		},
		Playlist: &model.LearningPlaylist{
			BaseModel:    model.BaseModel{CreatedAt: created},
			CurrentIndex: currentIndex,
			Items:        playlistItems,
		},
		Now: time.Now(),
	}
}

func TestLinearExpectedProgressMidway(t *testing.T) {
	// 20 天周期过半，10 个条目应完成约 5 个
	sig := lagSignals(time.Now().AddDate(0, 0, -10), time.Now().AddDate(0, 0, 10), 0, 10)
	expected := LinearExpectedProgress(sig)
	assert.InDelta(t, 5.0, expected, 0.1)
}

func TestLinearExpectedProgressPastDeadline(t *testing.T) {
	sig := lagSignals(time.Now().AddDate(0, 0, -20), time.Now().AddDate(0, 0, -1), 0, 10)
	assert.Equal(t, 10.0, LinearExpectedProgress(sig))
}

func TestProgressLagDetectorFiresWhenBehind(t *testing.T) {
	detector := ProgressLagDetector{Expected: LinearExpectedProgress}

	// 期望约 5，实际 0，低于七成阈值
	sig := lagSignals(time.Now().AddDate(0, 0, -10), time.Now().AddDate(0, 0, 10), 0, 10)
	candidate := detector.Detect(sig)
	require.NotNil(t, candidate)
	assert.Equal(t, model.AlertProgressLag, candidate.Type)
	assert.Equal(t, model.SeverityMedium, candidate.Severity)
	assert.True(t, candidate.EaseDifficulty)
}

func TestProgressLagDetectorQuietWhenOnTrack(t *testing.T) {
	detector := ProgressLagDetector{Expected: LinearExpectedProgress}

	// 期望约 5，实际 5
	sig := lagSignals(time.Now().AddDate(0, 0, -10), time.Now().AddDate(0, 0, 10), 5, 10)
	assert.Nil(t, detector.Detect(sig))
}

func TestProgressLagDetectorQuietAtStart(t *testing.T) {
	detector := ProgressLagDetector{Expected: LinearExpectedProgress}

	// 刚开始学习时期望为 0，不触发
	sig := lagSignals(time.Now(), time.Now().AddDate(0, 0, 30), 0, 10)
	assert.Nil(t, detector.Detect(sig))
}
