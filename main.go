// @title 自适应学习路径引擎 API
// @version 1.0
// @description 学习平台的自适应路径后端服务：技能诊断、目标规划、学习清单、预警与结业评估。

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"
	"pathway_edu_backend/internal/app"
	"pathway_edu_backend/internal/config"
	"pathway_edu_backend/pkg/configwatcher"
	"pathway_edu_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置文件热更新
	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
