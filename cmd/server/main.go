package main

import (
	"flag"
	"log/slog"
	"os"

	"ops-tracker/internal/config"
	"ops-tracker/internal/handler"
	"ops-tracker/internal/logger"
	"ops-tracker/internal/middleware"
	"ops-tracker/internal/model"
	"ops-tracker/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	middleware.JWTSecret = []byte(cfg.Auth.JWTSecret)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.DailyUpdate{}, &model.UpdateTask{},
		&model.MissedTask{}, &model.Blocker{},
		&model.ProjectTask{}, &model.TaskCollaborator{},
		&model.TaskFolder{}, &model.FolderAccess{},
	); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	llm := service.NewAIClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)
	authSvc := service.NewAuthService(db)
	userSvc := service.NewUserService(db)
	dailySvc := service.NewDailyService(db)
	taskSvc := service.NewTaskService(db)
	reportSvc := service.NewReportService(llm)

	authH := handler.NewAuthHandler(authSvc)
	dailyH := handler.NewDailyHandler(dailySvc)
	userH := handler.NewUserHandler(userSvc, dailySvc)
	taskH := handler.NewTaskHandler(taskSvc)
	reportH := handler.NewReportHandler(reportSvc, userSvc, dailySvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/auth/login", authH.Login)
	r.POST("/api/auth/register-admin", authH.RegisterAdmin)

	api := r.Group("/api", middleware.JWTAuth())
	api.POST("/updates", dailyH.Submit)
	api.GET("/updates", dailyH.ListMine)
	api.GET("/tasks", taskH.List)
	api.POST("/tasks", taskH.Create)
	api.PUT("/tasks/:id", taskH.Update)
	api.DELETE("/tasks/:id", taskH.Delete)
	api.GET("/folders", taskH.ListFolders)
	api.POST("/folders", taskH.CreateFolder)
	api.DELETE("/folders/:id", taskH.DeleteFolder)

	admin := api.Group("/admin", middleware.RequireAdmin())
	admin.GET("/users", userH.List)
	admin.POST("/users", userH.Create)
	admin.PUT("/users/:id", userH.Update)
	admin.DELETE("/users/:id", userH.Delete)
	admin.GET("/users/:id/updates", userH.Updates)
	admin.GET("/users/:id/summary", reportH.Summary)
	admin.GET("/stats", reportH.Stats)
	admin.POST("/reports", reportH.Generate)
	admin.POST("/reports/stream", reportH.Stream)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
