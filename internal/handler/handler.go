package handler

import (
	"errors"
	"net/http"

	"ops-tracker/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// currentUser rebuilds the acting user from the JWT claims the middleware set.
func currentUser(c *gin.Context) *model.User {
	return &model.User{
		ID:   c.GetString("user_id"),
		Name: c.GetString("user_name"),
		Role: model.Role(c.GetString("user_role")),
	}
}

// writeError maps service errors onto HTTP statuses. Everything here is
// recoverable from the caller's point of view; nothing is fatal to the server.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, model.ErrAccountDisabled),
		errors.Is(err, model.ErrRoleMismatch),
		errors.Is(err, model.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrDuplicateSubmission),
		errors.Is(err, model.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, model.ErrNoDataForPeriod):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// bind decodes and validates a request body; on failure it answers 400 and
// returns false.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
