package service

import (
	"testing"

	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAuditFromPlatformSignals(t *testing.T) {
	env := newTestEnv(t)

	audit, err := env.persona.ComputeAudit(1, nil)
	require.NoError(t, err)

	// 信号源均值 (75+60+40+70+55)/5 = 60
	assert.Equal(t, 60, audit.OverallScore)
	assert.Equal(t, model.PersonaIntermediate, audit.PersonaType)
	assert.Equal(t, []string{"Java", "Database"}, audit.Strengths)
	assert.Equal(t, []string{"React"}, audit.KnowledgeGaps)
	assert.Contains(t, audit.Recommendations, "优先补齐知识短板")
	assert.Contains(t, audit.Recommendations, "优先学习以下技能: React")
}

func TestComputeAuditRoundsMean(t *testing.T) {
	env := newTestEnv(t)

	// (50+51+51)/3 = 50.67 → 51
	audit, err := env.persona.ComputeAudit(1, map[string]int{"A": 50, "B": 51, "C": 51})
	require.NoError(t, err)
	assert.Equal(t, 51, audit.OverallScore)
}

func TestClassifyPersonaBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  model.PersonaType
	}{
		{0, model.PersonaBeginner},
		{39, model.PersonaBeginner},
		{40, model.PersonaIntermediate},
		{69, model.PersonaIntermediate},
		{70, model.PersonaAdvanced},
		{100, model.PersonaAdvanced},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyPersona(tc.score), "score %d", tc.score)
	}
}

func TestStrengthAndGapBoundaries(t *testing.T) {
	scores := map[string]int{
		"Exactly70": 70,
		"Just69":    69,
		"Exactly50": 50,
		"Just49":    49,
	}

	assert.Equal(t, []string{"Exactly70"}, identifyStrengths(scores))
	assert.Equal(t, []string{"Just49"}, identifyGaps(scores))
}

func TestGapsOrderedWeakestFirst(t *testing.T) {
	scores := map[string]int{"A": 30, "B": 10, "C": 45, "D": 90}
	assert.Equal(t, []string{"B", "A", "C"}, identifyGaps(scores))
}

func TestComputeAuditIdempotent(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.persona.ComputeAudit(1, map[string]int{"Java": 90})
	require.NoError(t, err)

	// 第二次带不同分数也不会改写已有诊断
	second, err := env.persona.ComputeAudit(1, map[string]int{"Java": 10})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.OverallScore, second.OverallScore)
}

func TestComputeAuditEmptyScores(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.persona.ComputeAudit(1, map[string]int{})
	require.ErrorIs(t, err, util.ErrEmptySkillScores)
	assert.True(t, util.IsValidation(err))
}

func TestGetAuditMissing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.persona.GetAudit(404)
	require.ErrorIs(t, err, util.ErrAuditNotFound)
	assert.True(t, util.IsNotFound(err))
}
