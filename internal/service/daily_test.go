package service

import (
	"context"
	"testing"

	"ops-tracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitReq(date string) model.SubmitUpdateRequest {
	return model.SubmitUpdateRequest{
		Date: date,
		Tasks: []model.TaskEntry{
			{Description: "Reviewing inbound inmails", TimeSpent: 1.5, Category: model.CategoryCTA},
			{Description: "Ops planning", TimeSpent: 2, Category: model.CategoryLPA},
		},
		MissedTasks:       []model.MissedEntry{{Description: "Analytics review", Reason: "Ran out of time"}},
		Blockers:          []model.BlockerEntry{{Description: "Dashboard access", Reason: "Permissions pending"}},
		ProductivityScore: 7,
	}
}

func TestSubmitDerivesFields(t *testing.T) {
	db := openTestDB(t)
	u := seedUser(t, db, "Sanyam", "sanyam@example.com", "secret123", model.RoleUser)
	svc := NewDailyService(db)

	up, err := svc.Submit(context.Background(), u, submitReq("2026-01-06"))
	require.NoError(t, err)

	assert.Equal(t, "2026-01", up.Month)
	assert.InDelta(t, 3.5, up.TotalTime, 1e-9)
	assert.Equal(t, u.ID, up.UserID)
	assert.Equal(t, u.Name, up.UserName)
	assert.NotEmpty(t, up.ID)
	assert.Len(t, up.Tasks, 2)
	assert.Len(t, up.MissedTasks, 1)
	assert.Len(t, up.Blockers, 1)
}

func TestSubmitRejectsSecondUpdateSameDay(t *testing.T) {
	db := openTestDB(t)
	u := seedUser(t, db, "Sanyam", "sanyam@example.com", "secret123", model.RoleUser)
	svc := NewDailyService(db)
	ctx := context.Background()

	first, err := svc.Submit(ctx, u, submitReq("2026-01-06"))
	require.NoError(t, err)

	_, err = svc.Submit(ctx, u, submitReq("2026-01-06"))
	assert.ErrorIs(t, err, model.ErrDuplicateSubmission)

	// the first submission stays intact
	var stored model.DailyUpdate
	require.NoError(t, db.First(&stored, "user_id = ? AND date = ?", u.ID, "2026-01-06").Error)
	assert.Equal(t, first.ID, stored.ID)

	// another day and another user are both fine
	_, err = svc.Submit(ctx, u, submitReq("2026-01-07"))
	assert.NoError(t, err)
	other := seedUser(t, db, "Other", "other@example.com", "secret123", model.RoleUser)
	_, err = svc.Submit(ctx, other, submitReq("2026-01-06"))
	assert.NoError(t, err)
}

func TestListForUser(t *testing.T) {
	db := openTestDB(t)
	u := seedUser(t, db, "Sanyam", "sanyam@example.com", "secret123", model.RoleUser)
	other := seedUser(t, db, "Other", "other@example.com", "secret123", model.RoleUser)
	svc := NewDailyService(db)
	ctx := context.Background()

	for _, date := range []string{"2026-01-06", "2026-01-09", "2026-02-03"} {
		_, err := svc.Submit(ctx, u, submitReq(date))
		require.NoError(t, err)
	}
	_, err := svc.Submit(ctx, other, submitReq("2026-01-06"))
	require.NoError(t, err)

	t.Run("all months, newest first", func(t *testing.T) {
		updates, err := svc.ListForUser(ctx, u.ID, "")
		require.NoError(t, err)
		require.Len(t, updates, 3)
		assert.Equal(t, "2026-02-03", updates[0].Date)
		assert.Equal(t, "2026-01-06", updates[2].Date)
		assert.Len(t, updates[0].Tasks, 2, "children are preloaded")
	})

	t.Run("month filter", func(t *testing.T) {
		updates, err := svc.ListForUser(ctx, u.ID, "2026-01")
		require.NoError(t, err)
		assert.Len(t, updates, 2)
	})
}

func TestListForMonth(t *testing.T) {
	db := openTestDB(t)
	u := seedUser(t, db, "Sanyam", "sanyam@example.com", "secret123", model.RoleUser)
	other := seedUser(t, db, "Other", "other@example.com", "secret123", model.RoleUser)
	svc := NewDailyService(db)
	ctx := context.Background()

	_, err := svc.Submit(ctx, u, submitReq("2026-01-09"))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, other, submitReq("2026-01-06"))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, u, submitReq("2026-02-03"))
	require.NoError(t, err)

	updates, err := svc.ListForMonth(ctx, "2026-01")
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "2026-01-06", updates[0].Date, "month listing is date ascending")
}
