package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ops-tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DailyService struct{ db *gorm.DB }

func NewDailyService(db *gorm.DB) *DailyService { return &DailyService{db: db} }

// Submit stores one update per user per date. Uniqueness is enforced by the
// composite key on (user_id, date): the insert itself is the check, so two
// near-simultaneous submissions cannot both land.
func (s *DailyService) Submit(ctx context.Context, user *model.User, req model.SubmitUpdateRequest) (*model.DailyUpdate, error) {
	update := model.DailyUpdate{
		ID:                uuid.NewString(),
		UserID:            user.ID,
		UserName:          user.Name,
		Date:              req.Date,
		Month:             req.Date[:7],
		ProductivityScore: req.ProductivityScore,
		SubmittedAt:       time.Now(),
	}
	for _, t := range req.Tasks {
		update.Tasks = append(update.Tasks, model.UpdateTask{
			ID:            uuid.NewString(),
			Description:   t.Description,
			TimeSpent:     t.TimeSpent,
			Category:      t.Category,
			ProjectTaskID: t.ProjectTaskID,
		})
		update.TotalTime += t.TimeSpent
	}
	for _, m := range req.MissedTasks {
		update.MissedTasks = append(update.MissedTasks, model.MissedTask{
			ID: uuid.NewString(), Description: m.Description, Reason: m.Reason,
		})
	}
	for _, b := range req.Blockers {
		update.Blockers = append(update.Blockers, model.Blocker{
			ID: uuid.NewString(), Description: b.Description, Reason: b.Reason,
		})
	}

	if err := s.db.WithContext(ctx).Create(&update).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, model.ErrDuplicateSubmission
		}
		return nil, fmt.Errorf("insert update: %w", err)
	}
	return &update, nil
}

// ListForUser returns a user's updates newest first, optionally restricted to a
// single YYYY-MM month.
func (s *DailyService) ListForUser(ctx context.Context, userID, month string) ([]model.DailyUpdate, error) {
	q := s.db.WithContext(ctx).
		Preload("Tasks").Preload("MissedTasks").Preload("Blockers").
		Where("user_id = ?", userID)
	if month != "" {
		q = q.Where("month = ?", month)
	}
	var updates []model.DailyUpdate
	if err := q.Order("date DESC").Find(&updates).Error; err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	return updates, nil
}

// ListForMonth returns every user's updates for the month, for the admin
// dashboard aggregation.
func (s *DailyService) ListForMonth(ctx context.Context, month string) ([]model.DailyUpdate, error) {
	var updates []model.DailyUpdate
	err := s.db.WithContext(ctx).
		Preload("Tasks").Preload("MissedTasks").Preload("Blockers").
		Where("month = ?", month).
		Order("date").Find(&updates).Error
	if err != nil {
		return nil, fmt.Errorf("list month updates: %w", err)
	}
	return updates, nil
}
