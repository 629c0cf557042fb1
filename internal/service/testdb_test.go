package service

import (
	"testing"
	"time"

	"ops-tracker/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB opens an in-memory database migrated to the full schema. Each
// call gets a fresh database, so tests stay independent.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.DailyUpdate{},
		&model.UpdateTask{},
		&model.MissedTask{},
		&model.Blocker{},
		&model.ProjectTask{},
		&model.TaskCollaborator{},
		&model.TaskFolder{},
		&model.FolderAccess{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email, password string, role model.Role) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}
