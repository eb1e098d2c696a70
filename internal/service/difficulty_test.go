package service

import (
	"testing"

	"pathway_edu_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNextDifficultyLadder(t *testing.T) {
	cases := []struct {
		current       model.DifficultyLevel
		performedWell bool
		want          model.DifficultyLevel
	}{
		{model.DifficultyEasy, true, model.DifficultyMedium},
		{model.DifficultyMedium, true, model.DifficultyHard},
		{model.DifficultyHard, true, model.DifficultyExpert},
		{model.DifficultyExpert, true, model.DifficultyExpert},
		{model.DifficultyEasy, false, model.DifficultyEasy},
		{model.DifficultyMedium, false, model.DifficultyEasy},
		{model.DifficultyHard, false, model.DifficultyMedium},
		{model.DifficultyExpert, false, model.DifficultyHard},
	}
	for _, tc := range cases {
		got := NextDifficulty(tc.current, tc.performedWell)
		assert.Equal(t, tc.want, got, "%s performedWell=%v", tc.current, tc.performedWell)
	}
}

func TestNextDifficultyUnknownLevel(t *testing.T) {
	got := NextDifficulty(model.DifficultyLevel("NIGHTMARE"), true)
	assert.Equal(t, model.DifficultyLevel("NIGHTMARE"), got)
}

func TestInitialDifficultyByPersona(t *testing.T) {
	assert.Equal(t, model.DifficultyEasy, InitialDifficulty(model.PersonaBeginner))
	assert.Equal(t, model.DifficultyMedium, InitialDifficulty(model.PersonaIntermediate))
	assert.Equal(t, model.DifficultyHard, InitialDifficulty(model.PersonaAdvanced))
	assert.Equal(t, model.DifficultyMedium, InitialDifficulty(model.PersonaType("")))
}
