package service

import (
	"testing"
	"time"

	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeasibilityScore(t *testing.T) {
	intermediate := &model.SkillsAudit{PersonaType: model.PersonaIntermediate, OverallScore: 60}
	advanced := &model.SkillsAudit{PersonaType: model.PersonaAdvanced, OverallScore: 90}
	beginner := &model.SkillsAudit{PersonaType: model.PersonaBeginner, OverallScore: 30}

	days := func(n int) time.Time { return time.Now().AddDate(0, 0, n) }

	// 充裕时间加 20 分，封顶 100
	assert.Equal(t, 80, feasibilityScore(intermediate, days(100)))
	assert.Equal(t, 100, feasibilityScore(advanced, days(100)))

	// 60-89 天按总分原值
	assert.Equal(t, 60, feasibilityScore(intermediate, days(70)))

	// 不足 60 天减 20 分，下限 30
	assert.Equal(t, 40, feasibilityScore(intermediate, days(40)))
	assert.Equal(t, 30, feasibilityScore(beginner, days(45)))

	// 新手短期冲刺直接判 40
	assert.Equal(t, 40, feasibilityScore(beginner, days(20)))
}

func TestFeasibilityScoreCalendarBoundaries(t *testing.T) {
	intermediate := &model.SkillsAudit{PersonaType: model.PersonaIntermediate, OverallScore: 60}
	beginner := &model.SkillsAudit{PersonaType: model.PersonaBeginner, OverallScore: 30}

	days := func(n int) time.Time { return time.Now().AddDate(0, 0, n) }

	// 剩余天数按日历日计，当天什么时刻提交都不影响档位
	assert.Equal(t, 80, feasibilityScore(intermediate, days(90)))
	assert.Equal(t, 60, feasibilityScore(intermediate, days(60)))
	assert.Equal(t, 40, feasibilityScore(intermediate, days(59)))
	assert.Equal(t, 30, feasibilityScore(beginner, days(30)))
	assert.Equal(t, 40, feasibilityScore(beginner, days(29)))
}

func TestCreateGoalRejectsPastDeadline(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.goals.CreateGoal(1, CreateGoalRequest{
		Title:    "来不及的目标",
		Deadline: time.Now().AddDate(0, 0, -1),
	})
	require.ErrorIs(t, err, util.ErrInvalidDeadline)
	assert.True(t, util.IsValidation(err))
}

func TestCreateGoalComputesAuditWhenMissing(t *testing.T) {
	env := newTestEnv(t)

	goal, err := env.goals.CreateGoal(1, CreateGoalRequest{
		Title:    "掌握 Spring Boot 微服务",
		Deadline: time.Now().AddDate(0, 0, 100),
	})
	require.NoError(t, err)

	// 诊断被自动补跑：信号源均值 60，100 天加 20
	assert.Equal(t, 80, goal.FeasibilityScore)
	assert.Equal(t, model.GoalActive, goal.Status)
	assert.Equal(t, 0, goal.Progress)
	assert.Equal(t, "完成《掌握 Spring Boot 微服务》学习清单中至少 80% 的内容，并在结业评估中取得 70 分以上", goal.SuccessCriteria)

	audit, err := env.persona.GetAudit(1)
	require.NoError(t, err)
	assert.Equal(t, model.PersonaIntermediate, audit.PersonaType)
}

func TestRelevanceWithoutTrackFallsBack(t *testing.T) {
	env := newTestEnv(t)

	goal := env.mustCreateGoal(t, 1)
	assert.Equal(t, defaultRelevance, goal.RelevanceScore)
}

func TestTrackRelevanceComparesRequiredSkills(t *testing.T) {
	env := newTestEnv(t)

	track := &model.CareerTrack{
		Code: "fullstack-java",
		Name: "Java 全栈开发",
		RequiredSkills: map[string]int{
			"Java":  50, // 75/50 → 封顶 100
			"React": 80, // 40/80 → 50
		},
		Enabled: true,
	}
	require.NoError(t, env.db.Create(track).Error)

	_, err := env.persona.ComputeAudit(1, nil)
	require.NoError(t, err)

	goal, err := env.goals.CreateGoal(1, CreateGoalRequest{
		Title:    "转型全栈",
		Deadline: time.Now().AddDate(0, 0, 60),
		TrackID:  &track.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 75, goal.RelevanceScore)
}

func TestCancelGoal(t *testing.T) {
	env := newTestEnv(t)
	goal := env.mustCreateGoal(t, 1)

	cancelled, err := env.goals.CancelGoal(1, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalCancelled, cancelled.Status)

	// 终态不可再迁移
	_, err = env.goals.CancelGoal(1, goal.ID)
	require.ErrorIs(t, err, util.ErrGoalNotActive)
	assert.True(t, util.IsStateViolation(err))
}

func TestGetGoalScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	goal := env.mustCreateGoal(t, 1)

	_, err := env.goals.GetGoal(2, goal.ID)
	require.ErrorIs(t, err, util.ErrGoalNotFound)
}
