package handler

import (
	"net/http"
	"testing"

	"github.com/Ramzi-dr/peoplecounting/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetPassword(t *testing.T) {
	repo := newFakeUserRepo()
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/users", map[string]any{
		"name": "Test User", "email": "test@user.ch", "password": "Password1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/superuser/reset-password", map[string]any{
		"email":             "test@user.ch",
		"newPassword":       "ResetPass123",
		"superUserEmail":    "root@admin.ch",
		"superUserPassword": "RootSecret9",
		"force":             true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Password reset successfully", w.Body.String())
	assert.True(t, util.VerifyPassword("ResetPass123", repo.users["test@user.ch"].Password))
}

func TestResetPasswordMissingForce(t *testing.T) {
	r := newTestRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodPut, "/api/superuser/reset-password", map[string]any{
		"email":             "test@user.ch",
		"newPassword":       "ResetPass123",
		"superUserEmail":    "root@admin.ch",
		"superUserPassword": "RootSecret9",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields or force flag", w.Body.String())
}

func TestResetPasswordBadSuperUserCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/users", map[string]any{
		"name": "Test User", "email": "test@user.ch", "password": "Password1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	before := repo.users["test@user.ch"].Password

	w = doJSON(t, r, http.MethodPut, "/api/superuser/reset-password", map[string]any{
		"email":             "test@user.ch",
		"newPassword":       "ResetPass123",
		"superUserEmail":    "root@admin.ch",
		"superUserPassword": "WrongSecret",
		"force":             true,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized superUser credentials", w.Body.String())
	assert.Equal(t, before, repo.users["test@user.ch"].Password)
}

func TestResetPasswordWeakNewPassword(t *testing.T) {
	repo := newFakeUserRepo()
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/users", map[string]any{
		"name": "Test User", "email": "test@user.ch", "password": "Password1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	before := repo.users["test@user.ch"].Password

	w = doJSON(t, r, http.MethodPut, "/api/superuser/reset-password", map[string]any{
		"email":             "test@user.ch",
		"newPassword":       "weak",
		"superUserEmail":    "root@admin.ch",
		"superUserPassword": "RootSecret9",
		"force":             true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "8+ chars")
	assert.Equal(t, before, repo.users["test@user.ch"].Password)
}

func TestResetPasswordUnknownEmail(t *testing.T) {
	r := newTestRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodPut, "/api/superuser/reset-password", map[string]any{
		"email":             "nobody@user.ch",
		"newPassword":       "ResetPass123",
		"superUserEmail":    "root@admin.ch",
		"superUserPassword": "RootSecret9",
		"force":             true,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", w.Body.String())
}
