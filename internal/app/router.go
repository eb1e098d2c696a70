package app

import (
	"pathway_edu_backend/docs"
	"pathway_edu_backend/internal/config"
	"pathway_edu_backend/internal/middleware"
	"pathway_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/tracks", c.track.ListTracks)
		public.GET("/tracks/:id", c.track.GetTrack)
	}

	// 需要授权的路由
	authGroup := router.Group("/api/pathway")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.POST("/audit", c.audit.ComputeAudit)
		authGroup.GET("/audit", c.audit.GetAudit)

		authGroup.POST("/goals", c.goal.CreateGoal)
		authGroup.GET("/goals", c.goal.ListGoals)
		authGroup.GET("/goals/:id", c.goal.GetGoal)
		authGroup.POST("/goals/:id/cancel", c.goal.CancelGoal)

		authGroup.POST("/playlists", c.playlist.CreatePlaylist)
		authGroup.GET("/playlists/:id", c.playlist.GetPlaylist)
		authGroup.POST("/playlists/:id/advance", c.playlist.Advance)
		authGroup.POST("/playlists/:id/difficulty", c.playlist.AdjustDifficulty)

		authGroup.POST("/touchpoints", c.touchpoint.CreateTouchpoint)
		authGroup.GET("/touchpoints", c.touchpoint.ListTouchpoints)

		authGroup.GET("/alerts", c.alert.ListAlerts)
		authGroup.POST("/alerts/evaluate", c.alert.Evaluate)
		authGroup.POST("/alerts/:id/acknowledge", c.alert.Acknowledge)
		authGroup.POST("/alerts/:id/resolve", c.alert.Resolve)

		authGroup.POST("/assessments", c.assessment.CreateAssessment)
		authGroup.GET("/assessments/:id", c.assessment.GetAssessment)
		authGroup.POST("/assessments/:id/artifact", c.assessment.AttachArtifact)
		authGroup.POST("/assessments/:id/complete", c.assessment.CompleteAssessment)

		authGroup.GET("/dashboard", c.dashboard.GetSummary)
	}
}
