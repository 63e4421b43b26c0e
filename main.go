package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BUka228/ProgressQuestWeb/dao"
	"github.com/BUka228/ProgressQuestWeb/internal"
	"github.com/BUka228/ProgressQuestWeb/internal/handler"
	"github.com/BUka228/ProgressQuestWeb/pkg/alert"
	"github.com/BUka228/ProgressQuestWeb/pkg/config"
	"github.com/BUka228/ProgressQuestWeb/pkg/cronjob"
	"github.com/BUka228/ProgressQuestWeb/pkg/listcache"
	"github.com/BUka228/ProgressQuestWeb/pkg/logutils"
)

const listCacheTTL = time.Minute

// @title ProgressQuest API
// @version 1.0.0
// @description Task and workspace management backend with XP-based gamification.
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Sign in via /auth/login and prefix the token with 'Bearer '
func main() {
	// set global timezone
	time.Local = time.UTC

	backendConfig := config.GetConfig()

	// variable changes in local development
	if gin.Mode() == gin.DebugMode {
		if err := godotenv.Load(".debug.env"); err != nil {
			logutils.Log.Warn("no .debug.env file: ", err)
		}
		if be := os.Getenv("PQ_BE_PORT"); be != "" {
			backendConfig.ServerAddr = ":" + be
		}
	}

	db := dao.GetDB()
	if err := dao.Migrate(db); err != nil {
		logutils.Log.Error("migration failed: ", err)
		panic(err)
	}

	alerter := alert.GetAlertMgr()

	cronMgr := cronjob.NewCronJobManager(db, alerter)
	cronMgr.Start()
	defer cronMgr.StopCron()

	backend := internal.Register(&handler.RegisterConfig{
		DB:      db,
		Alerter: alerter,
		Cache:   listcache.New(listCacheTTL),
	})

	logutils.Log.Info("listening on ", backendConfig.ServerAddr)
	if err := backend.R.Run(backendConfig.ServerAddr); err != nil {
		logutils.Log.Error("server stopped: ", err)
		panic(err)
	}
}
