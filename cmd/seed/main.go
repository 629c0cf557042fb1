package main

import (
	"flag"
	"log"
	"time"

	"ops-tracker/internal/config"
	"ops-tracker/internal/logger"
	"ops-tracker/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds demo users, updates, folders and tasks for demo/test environments.
// Safe to re-run: existing emails and already-seeded dates are skipped.
func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	flag.Parse()

	logger.Init(config.LogConfig{Level: "info", Console: true})

	cfg := config.Load(*configFile)
	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal("db connect failed: ", err)
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.DailyUpdate{}, &model.UpdateTask{},
		&model.MissedTask{}, &model.Blocker{},
		&model.ProjectTask{}, &model.TaskCollaborator{},
		&model.TaskFolder{}, &model.FolderAccess{},
	); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	admin := ensureUser(db, "admin@example.com", "Ops Admin", model.RoleAdmin, "")
	member := ensureUser(db, "sanyam@example.com", "Sanyam Golechha", model.RoleUser, "Operations Associate")

	seeded := 0
	for _, entry := range demoUpdates {
		if seedUpdate(db, member, entry) {
			seeded++
		}
	}
	logger.Info("updates seeded", "inserted", seeded, "total", len(demoUpdates))

	seedFoldersAndTasks(db, admin, member)
	logger.Info("=== seed done ===")
}

func ensureUser(db *gorm.DB, email, name string, role model.Role, jobTitle string) *model.User {
	var u model.User
	if err := db.Where("email = ?", email).First(&u).Error; err == nil {
		logger.Info("user exists", "email", email)
		return &u
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hash password: ", err)
	}
	u = model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		JobTitle:     jobTitle,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatal("create user: ", err)
	}
	logger.Info("user created", "email", email, "role", role)
	return &u
}

func seedUpdate(db *gorm.DB, u *model.User, entry demoUpdate) bool {
	var count int64
	db.Model(&model.DailyUpdate{}).Where("user_id = ? AND date = ?", u.ID, entry.date).Count(&count)
	if count > 0 {
		return false
	}

	update := model.DailyUpdate{
		ID:                uuid.NewString(),
		UserID:            u.ID,
		UserName:          u.Name,
		Date:              entry.date,
		Month:             entry.date[:7],
		ProductivityScore: entry.score,
		SubmittedAt:       time.Now(),
	}
	for _, t := range entry.tasks {
		update.Tasks = append(update.Tasks, model.UpdateTask{
			ID: uuid.NewString(), Description: t.description, TimeSpent: t.hours, Category: t.category,
		})
		update.TotalTime += t.hours
	}
	for _, m := range entry.missed {
		update.MissedTasks = append(update.MissedTasks, model.MissedTask{
			ID: uuid.NewString(), Description: m.description, Reason: m.reason,
		})
	}
	for _, b := range entry.blockers {
		update.Blockers = append(update.Blockers, model.Blocker{
			ID: uuid.NewString(), Description: b.description, Reason: b.reason,
		})
	}
	if err := db.Create(&update).Error; err != nil {
		logger.Warn("insert update failed", "date", entry.date, "err", err)
		return false
	}
	return true
}

func seedFoldersAndTasks(db *gorm.DB, admin, member *model.User) {
	var count int64
	db.Model(&model.TaskFolder{}).Count(&count)
	if count > 0 {
		logger.Info("folders exist, skipping")
		return
	}

	public := model.TaskFolder{
		ID: uuid.NewString(), Name: "Client Delivery", OwnerID: admin.ID,
		Visibility: model.VisibilityPublic, Type: model.FolderTypeAdmin, CreatedAt: time.Now(),
	}
	selective := model.TaskFolder{
		ID: uuid.NewString(), Name: "Leadership Planning", OwnerID: admin.ID,
		Visibility: model.VisibilitySelective, Type: model.FolderTypeAdmin, CreatedAt: time.Now(),
	}
	selective.Access = []model.FolderAccess{{TaskFolderID: selective.ID, UserID: member.ID}}
	for _, f := range []*model.TaskFolder{&public, &selective} {
		if err := db.Create(f).Error; err != nil {
			log.Fatal("create folder: ", err)
		}
	}

	start := time.Now().Format("2006-01-02")
	end := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	tasks := []model.ProjectTask{
		{
			ID: uuid.NewString(), Title: "Q1 outreach campaign", Client: "Acme",
			AssignedUserID: member.ID, FolderID: &public.ID,
			StartDate: start, EndDate: end, TimeEstimate: 12,
			Status: model.StatusInProgress, Priority: model.PriorityHigh, CreatedAt: time.Now(),
		},
		{
			ID: uuid.NewString(), Title: "Lead database cleanup", Client: "Internal",
			AssignedUserID: member.ID, FolderID: &public.ID,
			StartDate: start, EndDate: end, TimeEstimate: 6,
			Status: model.StatusNotStarted, Priority: model.PriorityMedium, CreatedAt: time.Now(),
		},
		{
			ID: uuid.NewString(), Title: "Hiring plan review", Client: "Internal",
			AssignedUserID: admin.ID, FolderID: &selective.ID, IsCollaborative: true,
			StartDate: start, EndDate: end, TimeEstimate: 4,
			Status: model.StatusNotStarted, Priority: model.PriorityLow, CreatedAt: time.Now(),
		},
	}
	tasks[2].Collaborators = []model.TaskCollaborator{{ProjectTaskID: tasks[2].ID, UserID: member.ID}}
	for i := range tasks {
		if err := db.Create(&tasks[i]).Error; err != nil {
			log.Fatal("create task: ", err)
		}
	}
	logger.Info("folders and tasks seeded", "folders", 2, "tasks", len(tasks))
}
