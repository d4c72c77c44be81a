package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Ramzi-dr/peoplecounting/internal/model"
	"github.com/Ramzi-dr/peoplecounting/internal/service"
	"github.com/Ramzi-dr/peoplecounting/pkg/util"

	"github.com/gin-gonic/gin"
)

// UserHandler handles the user directory CRUD surface
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new User handler
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles user registration
// @Router /api/users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	} else if !util.IsStrongPassword(req.Password) {
		// A present but weak password is reported before the missing-field
		// listing.
		c.String(http.StatusBadRequest, "Password must be at least 8 characters, include one uppercase letter and one number")
		return
	}
	if len(missing) > 0 {
		c.String(http.StatusBadRequest, "Missing required field(s): %s", strings.Join(missing, ", "))
		return
	}

	if _, err := h.users.Register(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			c.String(http.StatusConflict, "Email already exists")
		case errors.Is(err, service.ErrWeakPassword):
			c.String(http.StatusBadRequest, "Password must be at least 8 characters, include one uppercase letter and one number")
		default:
			log.Printf("Register error: %v", err)
			c.String(http.StatusInternalServerError, "DB error")
		}
		return
	}
	c.String(http.StatusCreated, "User created")
}

// List returns all users, passwords excluded
// @Router /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		log.Printf("Fetch users error: %v", err)
		c.String(http.StatusInternalServerError, "DB error")
		return
	}
	c.JSON(http.StatusOK, users)
}

// Update applies a merge-patch to the user matched by email
// @Router /api/users [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req model.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Updates == nil {
		c.String(http.StatusBadRequest, "Invalid payload. Expected email and updates object.")
		return
	}

	if err := h.users.Update(c.Request.Context(), req.Email, req.Updates); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.String(http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrOldPasswordRequired):
			c.String(http.StatusBadRequest, "Old password required for update")
		case errors.Is(err, service.ErrOldPasswordIncorrect):
			c.String(http.StatusForbidden, "Old password incorrect")
		case errors.Is(err, service.ErrWeakPassword):
			c.String(http.StatusBadRequest, "New password must be 8+ chars, with uppercase and number")
		default:
			log.Printf("Update error: %v", err)
			c.String(http.StatusInternalServerError, "DB error")
		}
		return
	}
	c.String(http.StatusOK, "User updated")
}

// Delete removes the user matched by email
// @Router /api/users [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	var req model.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.String(http.StatusBadRequest, "Email required to delete user")
		return
	}

	if err := h.users.Delete(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.String(http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Delete error: %v", err)
		c.String(http.StatusInternalServerError, "DB error")
		return
	}
	c.String(http.StatusOK, "User deleted")
}
