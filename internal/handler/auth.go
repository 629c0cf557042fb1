package handler

import (
	"net/http"

	"ops-tracker/internal/logger"
	"ops-tracker/internal/middleware"
	"ops-tracker/internal/model"
	"ops-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ auth *service.AuthService }

func NewAuthHandler(auth *service.AuthService) *AuthHandler { return &AuthHandler{auth: auth} }

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !bind(c, &req) {
		return
	}

	u, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, req.Portal)
	if err != nil {
		logger.Warn("login.failed", "email", req.Email, "portal", req.Portal)
		writeError(c, err)
		return
	}

	token, err := middleware.IssueToken(u)
	if err != nil {
		writeError(c, err)
		return
	}
	logger.Info("login.ok", "uid", u.ID, "name", u.Name, "portal", req.Portal)
	c.JSON(http.StatusOK, model.LoginResponse{Token: token, User: *u})
}

// POST /api/auth/register-admin
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req model.RegisterAdminRequest
	if !bind(c, &req) {
		return
	}

	u, err := h.auth.RegisterAdmin(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	logger.Info("admin.registered", "uid", u.ID, "email", u.Email)
	c.JSON(http.StatusCreated, u)
}
