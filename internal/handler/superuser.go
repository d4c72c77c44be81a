package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/Ramzi-dr/peoplecounting/internal/model"
	"github.com/Ramzi-dr/peoplecounting/internal/service"

	"github.com/gin-gonic/gin"
)

// SuperUserHandler handles the privileged password-reset path
type SuperUserHandler struct {
	users *service.UserService
}

// NewSuperUserHandler creates a new SuperUser handler
func NewSuperUserHandler(users *service.UserService) *SuperUserHandler {
	return &SuperUserHandler{users: users}
}

// ResetPassword force-resets a user's password, bypassing old-password
// verification. All five fields must be present and force must be true.
// @Router /api/superuser/reset-password [put]
func (h *SuperUserHandler) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Email == "" || req.NewPassword == "" ||
		req.SuperUserEmail == "" || req.SuperUserPassword == "" || !req.Force {
		c.String(http.StatusBadRequest, "Missing required fields or force flag")
		return
	}

	if err := h.users.ResetPassword(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrSuperUserUnauthorized):
			c.String(http.StatusUnauthorized, "Unauthorized superUser credentials")
		case errors.Is(err, service.ErrWeakPassword):
			c.String(http.StatusBadRequest, "New password must be 8+ chars, have 1 uppercase letter and 1 number")
		case errors.Is(err, service.ErrUserNotFound):
			c.String(http.StatusNotFound, "User not found")
		default:
			log.Printf("SuperUser reset error: %v", err)
			c.String(http.StatusInternalServerError, "DB error")
		}
		return
	}
	c.String(http.StatusOK, "Password reset successfully")
}
