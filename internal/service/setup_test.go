package service

import (
	"testing"
	"time"

	"pathway_edu_backend/internal/model"
	"pathway_edu_backend/internal/repository"
	"pathway_edu_backend/pkg/database"
	"pathway_edu_backend/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 每个测试独立的内存库，结构与生产迁移一致
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// 内存库在多连接下各自独立，限制为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

type testEnv struct {
	db         *gorm.DB
	persona    *PersonaService
	goals      *GoalService
	playlists  *PlaylistService
	touchpoint *TouchpointService
	assessment *AssessmentService

	auditRepo      *repository.SkillsAuditRepository
	goalRepo       *repository.GoalRepository
	playlistRepo   *repository.PlaylistRepository
	touchpointRepo *repository.TouchpointRepository
	alertRepo      *repository.AlertRepository
	assessmentRepo *repository.AssessmentRepository
	trackRepo      *repository.CareerTrackRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	env := &testEnv{
		db:             db,
		auditRepo:      repository.NewSkillsAuditRepository(db),
		goalRepo:       repository.NewGoalRepository(db),
		playlistRepo:   repository.NewPlaylistRepository(db),
		touchpointRepo: repository.NewTouchpointRepository(db),
		alertRepo:      repository.NewAlertRepository(db),
		assessmentRepo: repository.NewAssessmentRepository(db),
		trackRepo:      repository.NewCareerTrackRepository(db),
	}

	env.persona = NewPersonaService(env.auditRepo, StaticSignalSource{})
	env.goals = NewGoalService(env.goalRepo, env.persona, TrackRelevance{Tracks: env.trackRepo})
	env.playlists = NewPlaylistService(env.playlistRepo, env.goalRepo, env.persona, StaticCatalog{}, 10, db)
	env.touchpoint = NewTouchpointService(env.touchpointRepo, env.playlistRepo, NopNotifier{})
	env.assessment = NewAssessmentService(env.assessmentRepo, env.goalRepo, nil, db)

	return env
}

// mustCreateGoal 先保证有诊断，再建一个 60 天后截止的目标
func (env *testEnv) mustCreateGoal(t *testing.T, userID uint) *model.LearningGoal {
	t.Helper()
	_, err := env.persona.ComputeAudit(userID, nil)
	require.NoError(t, err)

	goal, err := env.goals.CreateGoal(userID, CreateGoalRequest{
		Title:    "掌握 Spring Boot 微服务",
		Deadline: time.Now().AddDate(0, 0, 60),
	})
	require.NoError(t, err)
	return goal
}

func (env *testEnv) mustCreatePlaylist(t *testing.T, userID uint) *model.LearningPlaylist {
	t.Helper()
	goal := env.mustCreateGoal(t, userID)
	playlist, err := env.playlists.CreatePlaylist(userID, goal.ID)
	require.NoError(t, err)
	return playlist
}
