package service

import (
	"testing"

	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTouchpointTemplates(t *testing.T) {
	env := newTestEnv(t)
	playlist := env.mustCreatePlaylist(t, 1)

	cases := []struct {
		tpType model.TouchpointType
		title  string
	}{
		{model.TouchpointDiscussionGroup, "加入讨论小组"},
		{model.TouchpointPeerReview, "互评同学的作业"},
		{model.TouchpointMentorMatch, "匹配一位导师"},
		{model.TouchpointForumQuestion, "在论坛提一个问题"},
	}

	for _, tc := range cases {
		tp, err := env.touchpoint.CreateTouchpoint(1, playlist.ID, tc.tpType)
		require.NoError(t, err)
		assert.Equal(t, tc.title, tp.Title)
		assert.Equal(t, model.TouchpointPending, tp.Status)
		assert.NotEmpty(t, tp.Description)
	}

	touchpoints, err := env.touchpoint.ListTouchpoints(1)
	require.NoError(t, err)
	assert.Len(t, touchpoints, len(cases))
}

func TestCreateTouchpointUnknownType(t *testing.T) {
	env := newTestEnv(t)
	playlist := env.mustCreatePlaylist(t, 1)

	_, err := env.touchpoint.CreateTouchpoint(1, playlist.ID, model.TouchpointType("KARAOKE_NIGHT"))
	require.ErrorIs(t, err, util.ErrInvalidTouchpointType)
	assert.True(t, util.IsValidation(err))
}

func TestCreateTouchpointRequiresOwnPlaylist(t *testing.T) {
	env := newTestEnv(t)
	playlist := env.mustCreatePlaylist(t, 1)

	_, err := env.touchpoint.CreateTouchpoint(2, playlist.ID, model.TouchpointDiscussionGroup)
	require.ErrorIs(t, err, util.ErrPlaylistNotFound)
}

func TestCreateTouchpointMissingPlaylist(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.touchpoint.CreateTouchpoint(1, 999, model.TouchpointDiscussionGroup)
	require.ErrorIs(t, err, util.ErrPlaylistNotFound)
}
