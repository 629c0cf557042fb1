package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ops-tracker/internal/middleware"
	"ops-tracker/internal/model"
	"ops-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// a stub generator so handler tests never touch the network
type stubGenerator struct{ reply string }

func (s stubGenerator) Chat(context.Context, string, string) (string, error) { return s.reply, nil }
func (s stubGenerator) Stream(_ context.Context, _, _ string, flush func(string)) (string, error) {
	for _, word := range strings.SplitAfter(s.reply, " ") {
		flush(word)
	}
	return s.reply, nil
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

// newTestEnv wires the full route table over an in-memory database, mirroring
// the production setup in cmd/server.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.DailyUpdate{}, &model.UpdateTask{}, &model.MissedTask{},
		&model.Blocker{}, &model.ProjectTask{}, &model.TaskCollaborator{},
		&model.TaskFolder{}, &model.FolderAccess{},
	))

	authSvc := service.NewAuthService(db)
	userSvc := service.NewUserService(db)
	dailySvc := service.NewDailyService(db)
	taskSvc := service.NewTaskService(db)
	reportSvc := service.NewReportService(stubGenerator{reply: "## Executive Summary\n- steady month"})

	authH := NewAuthHandler(authSvc)
	dailyH := NewDailyHandler(dailySvc)
	userH := NewUserHandler(userSvc, dailySvc)
	taskH := NewTaskHandler(taskSvc)
	reportH := NewReportHandler(reportSvc, userSvc, dailySvc)

	r := gin.New()
	r.POST("/api/auth/login", authH.Login)
	r.POST("/api/auth/register-admin", authH.RegisterAdmin)

	api := r.Group("/api", middleware.JWTAuth())
	api.GET("/updates", dailyH.ListMine)
	api.POST("/updates", dailyH.Submit)
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

	return &testEnv{db: db, router: r}
}

func (e *testEnv) addUser(t *testing.T, name, email string, role model.Role) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := model.User{
		ID: uuid.NewString(), Name: name, Email: email,
		PasswordHash: string(hash), Role: role, IsActive: true, CreatedAt: time.Now(),
	}
	require.NoError(t, e.db.Create(&u).Error)
	return &u
}

func (e *testEnv) tokenFor(t *testing.T, u *model.User) string {
	t.Helper()
	token, err := middleware.IssueToken(u)
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
