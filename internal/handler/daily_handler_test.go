package handler

import (
	"net/http"
	"testing"

	"ops-tracker/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitBody(date string) gin.H {
	return gin.H{
		"date": date,
		"tasks": []gin.H{
			{"description": "Reviewing inmails", "timeSpent": 1.5, "category": "CTA"},
			{"description": "Ops planning", "timeSpent": 2, "category": "LPA"},
		},
		"missedTasks":       []gin.H{{"description": "Analytics review", "reason": "Ran out of time"}},
		"blockers":          []gin.H{},
		"productivityScore": 7,
	}
}

func TestSubmitEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := env.addUser(t, "Sanyam", "sanyam@example.com", model.RoleUser)
	token := env.tokenFor(t, user)

	w := env.request(t, "POST", "/api/updates", token, submitBody("2026-01-06"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[model.DailyUpdate](t, w)
	assert.Equal(t, "2026-01", created.Month)
	assert.InDelta(t, 3.5, created.TotalTime, 1e-9)

	t.Run("second submission same day", func(t *testing.T) {
		w := env.request(t, "POST", "/api/updates", token, submitBody("2026-01-06"))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("no tasks", func(t *testing.T) {
		body := submitBody("2026-01-07")
		body["tasks"] = []gin.H{}
		w := env.request(t, "POST", "/api/updates", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		w := env.request(t, "POST", "/api/updates", token, submitBody("06/01/2026"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("score out of range", func(t *testing.T) {
		body := submitBody("2026-01-08")
		body["productivityScore"] = 11
		w := env.request(t, "POST", "/api/updates", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := env.request(t, "POST", "/api/updates", "", submitBody("2026-01-09"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestListMineEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := env.addUser(t, "Sanyam", "sanyam@example.com", model.RoleUser)
	other := env.addUser(t, "Other", "other@example.com", model.RoleUser)
	token := env.tokenFor(t, user)

	t.Run("empty history is an empty array", func(t *testing.T) {
		w := env.request(t, "GET", "/api/updates", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	require.Equal(t, http.StatusCreated, env.request(t, "POST", "/api/updates", token, submitBody("2026-01-06")).Code)
	require.Equal(t, http.StatusCreated, env.request(t, "POST", "/api/updates", token, submitBody("2026-02-03")).Code)
	require.Equal(t, http.StatusCreated,
		env.request(t, "POST", "/api/updates", env.tokenFor(t, other), submitBody("2026-01-06")).Code)

	t.Run("only own updates", func(t *testing.T) {
		w := env.request(t, "GET", "/api/updates", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		updates := decode[[]model.DailyUpdate](t, w)
		require.Len(t, updates, 2)
		assert.Equal(t, "2026-02-03", updates[0].Date, "newest first")
	})

	t.Run("month filter", func(t *testing.T) {
		w := env.request(t, "GET", "/api/updates?month=2026-01", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]model.DailyUpdate](t, w), 1)
	})
}
