package handler

import (
	"net/http"

	"ops-tracker/internal/logger"
	"ops-tracker/internal/model"
	"ops-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler covers the admin personnel screens: member CRUD plus the
// per-user log viewer.
type UserHandler struct {
	users *service.UserService
	daily *service.DailyService
}

func NewUserHandler(users *service.UserService, daily *service.DailyService) *UserHandler {
	return &UserHandler{users: users, daily: daily}
}

// GET /api/admin/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}
	c.JSON(http.StatusOK, users)
}

// POST /api/admin/users
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if !bind(c, &req) {
		return
	}
	u, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	logger.Info("user.created", "uid", u.ID, "email", u.Email, "role", u.Role)
	c.JSON(http.StatusCreated, u)
}

// PUT /api/admin/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req model.UpdateUserRequest
	if !bind(c, &req) {
		return
	}
	u, err := h.users.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DELETE /api/admin/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	logger.Info("user.deleted", "uid", id)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/admin/users/:id/updates?month=YYYY-MM
func (h *UserHandler) Updates(c *gin.Context) {
	updates, err := h.daily.ListForUser(c.Request.Context(), c.Param("id"), c.Query("month"))
	if err != nil {
		writeError(c, err)
		return
	}
	if updates == nil {
		updates = []model.DailyUpdate{}
	}
	c.JSON(http.StatusOK, updates)
}
