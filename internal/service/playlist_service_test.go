package service

import (
	"testing"

	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlaylist(t *testing.T) {
	env := newTestEnv(t)
	playlist := env.mustCreatePlaylist(t, 1)

	assert.Equal(t, "学习清单: 掌握 Spring Boot 微服务", playlist.Title)
	assert.Len(t, playlist.Items, 10)
	assert.Equal(t, 0, playlist.CurrentIndex)
	// 信号源画像为 INTERMEDIATE，起始 MEDIUM
	assert.Equal(t, model.DifficultyMedium, playlist.CurrentDifficulty)

	// 条目有序且类型循环
	assert.Equal(t, "video", playlist.Items[0].ContentType)
	assert.Equal(t, "reading", playlist.Items[1].ContentType)
	assert.Equal(t, "project", playlist.Items[2].ContentType)
	for i, item := range playlist.Items {
		assert.Equal(t, i, item.Order)
		assert.False(t, item.Completed)
	}
}

func TestCreatePlaylistOncePerGoal(t *testing.T) {
	env := newTestEnv(t)
	goal := env.mustCreateGoal(t, 1)

	_, err := env.playlists.CreatePlaylist(1, goal.ID)
	require.NoError(t, err)

	_, err = env.playlists.CreatePlaylist(1, goal.ID)
	require.ErrorIs(t, err, util.ErrPlaylistExists)
	assert.True(t, util.IsStateViolation(err))
}

func TestCreatePlaylistRequiresActiveGoal(t *testing.T) {
	env := newTestEnv(t)
	goal := env.mustCreateGoal(t, 1)

	_, err := env.goals.CancelGoal(1, goal.ID)
	require.NoError(t, err)

	_, err = env.playlists.CreatePlaylist(1, goal.ID)
	require.ErrorIs(t, err, util.ErrGoalNotActive)
}

func TestAdvanceDrivesGoalProgress(t *testing.T) {
	env := newTestEnv(t)
	playlist := env.mustCreatePlaylist(t, 1)

	updated, err := env.playlists.Advance(playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.CurrentIndex)
	assert.True(t, updated.Items[0].Completed)

	goal, err := env.goalRepo.FindByID(playlist.GoalID)
	require.NoError(t, err)
	assert.Equal(t, 10, goal.Progress)
	assert.Equal(t, model.GoalActive, goal.Status)
}

func TestAdvanceToCompletion(t *testing.T) {
	env := newTestEnv(t)
	playlist := env.mustCreatePlaylist(t, 1)

	for i := 0; i < len(playlist.Items); i++ {
		_, err := env.playlists.Advance(playlist.ID)
		require.NoError(t, err)
	}

	goal, err := env.goalRepo.FindByID(playlist.GoalID)
	require.NoError(t, err)
	assert.Equal(t, 100, goal.Progress)
	assert.Equal(t, model.GoalCompleted, goal.Status)

	// 清单耗尽后继续推进属于状态违例
	_, err = env.playlists.Advance(playlist.ID)
	require.ErrorIs(t, err, util.ErrPlaylistExhausted)
	assert.True(t, util.IsStateViolation(err))
}

func TestAdvancePersistsItemState(t *testing.T) {
	env := newTestEnv(t)
	playlist := env.mustCreatePlaylist(t, 1)

	_, err := env.playlists.Advance(playlist.ID)
	require.NoError(t, err)

	reloaded, err := env.playlistRepo.FindByID(playlist.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Items[0].Completed)
	assert.False(t, reloaded.Items[1].Completed)
	assert.Equal(t, 1, reloaded.CurrentIndex)
}

func TestAdjustDifficultyStepwise(t *testing.T) {
	env := newTestEnv(t)
	playlist := env.mustCreatePlaylist(t, 1)
	require.Equal(t, model.DifficultyMedium, playlist.CurrentDifficulty)

	// 连续表现好：MEDIUM → HARD → EXPERT，之后封顶
	for _, want := range []model.DifficultyLevel{
		model.DifficultyHard,
		model.DifficultyExpert,
		model.DifficultyExpert,
	} {
		updated, err := env.playlists.AdjustDifficulty(playlist.ID, true)
		require.NoError(t, err)
		assert.Equal(t, want, updated.CurrentDifficulty)
	}

	// 表现不佳回落一档
	updated, err := env.playlists.AdjustDifficulty(playlist.ID, false)
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyHard, updated.CurrentDifficulty)
}

func TestGetPlaylistScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	playlist := env.mustCreatePlaylist(t, 1)

	_, err := env.playlists.GetPlaylist(2, playlist.ID)
	require.ErrorIs(t, err, util.ErrPlaylistNotFound)
}

func TestCancelledGoalNotResurrectedByAdvance(t *testing.T) {
	env := newTestEnv(t)
	playlist := env.mustCreatePlaylist(t, 1)

	_, err := env.goals.CancelGoal(1, playlist.GoalID)
	require.NoError(t, err)

	_, err = env.playlists.Advance(playlist.ID)
	require.NoError(t, err)

	goal, err := env.goalRepo.FindByID(playlist.GoalID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalCancelled, goal.Status)
	assert.Equal(t, 0, goal.Progress)
}
