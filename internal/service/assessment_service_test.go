package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"pathway_edu_backend/internal/config"
	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFinalAssessment(t *testing.T) {
	env := newTestEnv(t)
	goal := env.mustCreateGoal(t, 1)

	assessment, err := env.assessment.CreateFinalAssessment(1, goal.ID)
	require.NoError(t, err)

	assert.Equal(t, model.AssessmentCapstoneProject, assessment.AssessmentType)
	assert.Equal(t, "结业评估: 掌握 Spring Boot 微服务", assessment.Title)
	assert.Equal(t, model.AssessmentPending, assessment.Status)
	assert.Nil(t, assessment.Score)
	assert.Nil(t, assessment.CompletedAt)
}

func TestCreateFinalAssessmentRequiresOwnGoal(t *testing.T) {
	env := newTestEnv(t)
	goal := env.mustCreateGoal(t, 1)

	_, err := env.assessment.CreateFinalAssessment(2, goal.ID)
	require.ErrorIs(t, err, util.ErrGoalNotFound)
}

func TestCompleteAssessmentFeedbackBuckets(t *testing.T) {
	cases := []struct {
		score    int
		feedback string
	}{
		{85, "出色！你已经牢固掌握了本目标所需的核心技能。"},
		{80, "出色！你已经牢固掌握了本目标所需的核心技能。"},
		{65, "不错！你已达成基本目标，请继续深入练习。"},
		{60, "不错！你已达成基本目标，请继续深入练习。"},
		{40, "仍需加强。建议回顾未掌握的部分并增加练习量。"},
	}

	for _, tc := range cases {
		env := newTestEnv(t)
		goal := env.mustCreateGoal(t, 1)
		assessment, err := env.assessment.CreateFinalAssessment(1, goal.ID)
		require.NoError(t, err)

		completed, err := env.assessment.CompleteAssessment(1, assessment.ID, tc.score, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, tc.feedback, completed.Feedback, "score %d", tc.score)
		require.NotNil(t, completed.Score)
		assert.Equal(t, tc.score, *completed.Score)
	}
}

func TestCompleteAssessmentOnce(t *testing.T) {
	env := newTestEnv(t)
	goal := env.mustCreateGoal(t, 1)
	assessment, err := env.assessment.CreateFinalAssessment(1, goal.ID)
	require.NoError(t, err)

	completed, err := env.assessment.CompleteAssessment(1, assessment.ID, 85, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
	firstCompletedAt := *completed.CompletedAt

	// 再次提交属于状态违例，completedAt 不被改写
	_, err = env.assessment.CompleteAssessment(1, assessment.ID, 90, nil, nil)
	require.ErrorIs(t, err, util.ErrAssessmentCompleted)
	assert.True(t, util.IsStateViolation(err))

	reloaded, err := env.assessment.GetAssessment(1, assessment.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.CompletedAt)
	assert.WithinDuration(t, firstCompletedAt, *reloaded.CompletedAt, time.Second)
	assert.Equal(t, 85, *reloaded.Score)
}

func TestCompleteAssessmentScoreRange(t *testing.T) {
	env := newTestEnv(t)
	goal := env.mustCreateGoal(t, 1)
	assessment, err := env.assessment.CreateFinalAssessment(1, goal.ID)
	require.NoError(t, err)

	_, err = env.assessment.CompleteAssessment(1, assessment.ID, -1, nil, nil)
	require.ErrorIs(t, err, util.ErrScoreOutOfRange)

	_, err = env.assessment.CompleteAssessment(1, assessment.ID, 101, nil, nil)
	require.ErrorIs(t, err, util.ErrScoreOutOfRange)

	_, err = env.assessment.CompleteAssessment(1, assessment.ID, 80, map[string]int{"Java": 120}, nil)
	require.ErrorIs(t, err, util.ErrScoreOutOfRange)
}

func TestCompleteAssessmentStoresCallerNextSteps(t *testing.T) {
	env := newTestEnv(t)
	goal := env.mustCreateGoal(t, 1)
	assessment, err := env.assessment.CreateFinalAssessment(1, goal.ID)
	require.NoError(t, err)

	steps := []string{"完成一个生产级部署", "补充端到端测试"}
	completed, err := env.assessment.CompleteAssessment(1, assessment.ID, 75, map[string]int{"React": 50}, steps)
	require.NoError(t, err)

	// 评审方给出的建议原样保存，不被短板推导覆盖
	assert.Equal(t, steps, completed.NextSteps)

	reloaded, err := env.assessment.GetAssessment(1, assessment.ID)
	require.NoError(t, err)
	assert.Equal(t, steps, reloaded.NextSteps)
}

func TestCompleteAssessmentDerivesNextSteps(t *testing.T) {
	env := newTestEnv(t)
	goal := env.mustCreateGoal(t, 1)
	assessment, err := env.assessment.CreateFinalAssessment(1, goal.ID)
	require.NoError(t, err)

	completed, err := env.assessment.CompleteAssessment(1, assessment.ID, 75, map[string]int{
		"Java":     85,
		"React":    50,
		"Database": 60,
	}, nil)
	require.NoError(t, err)

	// 缺省时按短板能力生成建议，字母序排列
	require.Len(t, completed.NextSteps, 2)
	assert.Contains(t, completed.NextSteps[0], "Database")
	assert.Contains(t, completed.NextSteps[1], "React")
}

func TestCompleteAssessmentNextStepsWithoutGaps(t *testing.T) {
	env := newTestEnv(t)
	goal := env.mustCreateGoal(t, 1)
	assessment, err := env.assessment.CreateFinalAssessment(1, goal.ID)
	require.NoError(t, err)

	completed, err := env.assessment.CompleteAssessment(1, assessment.ID, 95, map[string]int{"Java": 90}, nil)
	require.NoError(t, err)
	require.Len(t, completed.NextSteps, 1)
	assert.Contains(t, completed.NextSteps[0], "进阶")
}

func TestAttachArtifact(t *testing.T) {
	env := newTestEnv(t)
	env.assessment.Storage = &StorageService{Provider: &LocalStorageProvider{
		Config: &config.StorageConfig{LocalPath: t.TempDir()},
	}}

	goal := env.mustCreateGoal(t, 1)
	assessment, err := env.assessment.CreateFinalAssessment(1, goal.ID)
	require.NoError(t, err)

	body := strings.NewReader("capstone submission")
	updated, err := env.assessment.AttachArtifact(context.Background(), 1, assessment.ID, "report.pdf", body, int64(body.Len()), "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, model.AssessmentInProgress, updated.Status)
	assert.NotEmpty(t, updated.ArtifactURL)
	assert.True(t, strings.HasSuffix(updated.ArtifactURL, ".pdf"))
}

func TestAttachArtifactAfterCompletion(t *testing.T) {
	env := newTestEnv(t)
	env.assessment.Storage = &StorageService{Provider: &LocalStorageProvider{
		Config: &config.StorageConfig{LocalPath: t.TempDir()},
	}}

	goal := env.mustCreateGoal(t, 1)
	assessment, err := env.assessment.CreateFinalAssessment(1, goal.ID)
	require.NoError(t, err)

	_, err = env.assessment.CompleteAssessment(1, assessment.ID, 80, nil, nil)
	require.NoError(t, err)

	body := strings.NewReader("late submission")
	_, err = env.assessment.AttachArtifact(context.Background(), 1, assessment.ID, "late.zip", body, int64(body.Len()), "application/zip")
	require.ErrorIs(t, err, util.ErrAssessmentCompleted)
}
