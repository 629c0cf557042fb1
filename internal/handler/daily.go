package handler

import (
	"net/http"

	"ops-tracker/internal/logger"
	"ops-tracker/internal/model"
	"ops-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type DailyHandler struct{ daily *service.DailyService }

func NewDailyHandler(daily *service.DailyService) *DailyHandler {
	return &DailyHandler{daily: daily}
}

// POST /api/updates
func (h *DailyHandler) Submit(c *gin.Context) {
	var req model.SubmitUpdateRequest
	if !bind(c, &req) {
		return
	}

	user := currentUser(c)
	update, err := h.daily.Submit(c.Request.Context(), user, req)
	if err != nil {
		writeError(c, err)
		return
	}
	logger.Info("update.submitted", "uid", user.ID, "date", update.Date, "tasks", len(update.Tasks), "hours", update.TotalTime)
	c.JSON(http.StatusCreated, update)
}

// GET /api/updates?month=YYYY-MM
func (h *DailyHandler) ListMine(c *gin.Context) {
	updates, err := h.daily.ListForUser(c.Request.Context(), c.GetString("user_id"), c.Query("month"))
	if err != nil {
		writeError(c, err)
		return
	}
	if updates == nil {
		updates = []model.DailyUpdate{}
	}
	c.JSON(http.StatusOK, updates)
}
