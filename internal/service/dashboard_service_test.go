package service

import (
	"testing"

	"pathway_edu_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardForNewUser(t *testing.T) {
	env := newTestEnv(t)
	dashboard := NewDashboardService(env.persona, env.goalRepo, env.playlistRepo, env.alertRepo)

	summary, err := dashboard.GetSummary(1)
	require.NoError(t, err)

	assert.Empty(t, summary.PersonaType)
	assert.Nil(t, summary.ActiveGoal)
	assert.Nil(t, summary.Playlist)
	assert.Zero(t, summary.ActiveAlerts)
}

func TestDashboardAggregatesState(t *testing.T) {
	env := newTestEnv(t)
	dashboard := NewDashboardService(env.persona, env.goalRepo, env.playlistRepo, env.alertRepo)

	playlist := env.mustCreatePlaylist(t, 1)

	_, err := env.playlists.Advance(playlist.ID)
	require.NoError(t, err)

	m := newMonitoring(env, fixedDetector{candidate: lagCandidate()})
	_, err = m.Evaluate(1)
	require.NoError(t, err)

	summary, err := dashboard.GetSummary(1)
	require.NoError(t, err)

	assert.Equal(t, model.PersonaIntermediate, summary.PersonaType)
	assert.Equal(t, 60, summary.OverallScore)
	assert.Equal(t, []string{"Java", "Database"}, summary.Strengths)
	assert.Equal(t, []string{"React"}, summary.Gaps)
	require.NotNil(t, summary.ActiveGoal)
	assert.Equal(t, 10, summary.ActiveGoal.Progress)
	require.NotNil(t, summary.Playlist)
	assert.Equal(t, 1, summary.Playlist.CurrentIndex)
	assert.Equal(t, 10, summary.Playlist.TotalItems)
	assert.Equal(t, model.DifficultyMedium, summary.Playlist.CurrentDifficulty)
	assert.EqualValues(t, 1, summary.ActiveAlerts)
}
