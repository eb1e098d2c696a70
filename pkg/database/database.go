package database

import (
	"fmt"
	"log"
	"pathway_edu_backend/internal/config"
	"pathway_edu_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	SeedCareerTracks(db)

	return db, nil
}

// Migrate 建表/加列，测试环境也走同一份结构
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.SkillsAudit{},
		&model.LearningGoal{},
		&model.LearningPlaylist{},
		&model.SocialTouchpoint{},
		&model.EarlyAlert{},
		&model.Assessment{},
		&model.CareerTrack{},
	)
}

// SeedCareerTracks 职业方向为空时写入默认数据
func SeedCareerTracks(db *gorm.DB) {
	var count int64
	db.Model(&model.CareerTrack{}).Count(&count)
	if count > 0 {
		return
	}

	defaultTracks := []model.CareerTrack{
		{
			Code:        "fullstack-java",
			Name:        "Java 全栈开发",
			Description: "后端 Java 加前端 React 的全栈方向",
			Icon:        "coffee",
			Color:       "#e76f00",
			RequiredSkills: map[string]int{
				"Java": 70, "Spring Boot": 65, "React": 60, "Database": 60,
			},
			Enabled: true,
		},
		{
			Code:        "backend-go",
			Name:        "Go 后端开发",
			Description: "高并发服务端方向",
			Icon:        "server",
			Color:       "#00add8",
			RequiredSkills: map[string]int{
				"Go": 70, "Database": 65, "Algorithms": 60,
			},
			Enabled: true,
		},
		{
			Code:        "ai-data-science",
			Name:        "AI 与数据科学",
			Description: "数据分析与机器学习方向",
			Icon:        "chart",
			Color:       "#7b61ff",
			RequiredSkills: map[string]int{
				"Python": 70, "Algorithms": 70, "Database": 55,
			},
			Enabled: true,
		},
	}
	for _, t := range defaultTracks {
		db.Create(&t)
	}
}
