package service

import (
	"context"
	"fmt"

	"github.com/Ramzi-dr/peoplecounting/internal/config"
	"github.com/Ramzi-dr/peoplecounting/internal/model"
	"github.com/Ramzi-dr/peoplecounting/internal/repository"
	"github.com/Ramzi-dr/peoplecounting/pkg/util"
)

// UserService owns the user-directory business rules: the uniqueness gate
// before insert, password hashing, old-password verification on
// self-update, and the superuser reset path.
type UserService struct {
	repo repository.IUserRepository
	cfg  *config.Config
}

// NewUserService creates a new user service
func NewUserService(repo repository.IUserRepository, cfg *config.Config) *UserService {
	return &UserService{repo: repo, cfg: cfg}
}

// Register creates a user. The email must not exist yet; the plaintext
// password is strength-checked and stored only as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if !util.IsStrongPassword(req.Password) {
		return nil, ErrWeakPassword
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		Company:   req.Company,
		Telnr:     req.Telnr,
		ClientID:  req.ClientID,
		CreatedAt: util.SwissDateTime(),
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// List returns all users; the password hash is already projected out at
// the store level.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.ListAll(ctx)
}

// Update applies a merge-patch to the user matched by email. A password
// change requires the correct oldPassword and a strong replacement; the
// oldPassword key is stripped from the patch on every path. Success is
// reported even when the patch changes nothing.
func (s *UserService) Update(ctx context.Context, email string, updates map[string]any) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if raw, ok := updates["password"]; ok && jsonTruthy(raw) {
		// Any truthy password value goes through the verification path.
		// A non-string never reaches the store: it fails the strength
		// check after the old password is verified.
		oldPassword, _ := updates["oldPassword"].(string)
		if oldPassword == "" {
			return ErrOldPasswordRequired
		}
		if !util.VerifyPassword(oldPassword, user.Password) {
			return ErrOldPasswordIncorrect
		}
		newPassword, _ := raw.(string)
		if !util.IsStrongPassword(newPassword) {
			return ErrWeakPassword
		}
		hash, err := util.HashPassword(newPassword)
		if err != nil {
			return err
		}
		updates["password"] = hash
	}

	delete(updates, "oldPassword")

	if len(updates) == 0 {
		// Matched but nothing to write; existence was already verified.
		return nil
	}

	if _, err := s.repo.UpdateByEmail(ctx, email, updates); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// jsonTruthy reports whether a decoded JSON value is truthy in the
// JavaScript sense: false, 0, "" and null are falsy, everything else
// (including objects and arrays) is truthy.
func jsonTruthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	default:
		return true
	}
}

// Delete removes the user matched by email.
func (s *UserService) Delete(ctx context.Context, email string) error {
	deleted, err := s.repo.DeleteByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if deleted == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ResetPassword force-overwrites a user's password hash, bypassing
// old-password verification. The caller-supplied superuser pair must match
// the configured secrets exactly; this layer is independent of the access
// gate's basic auth.
func (s *UserService) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error {
	if req.SuperUserEmail != s.cfg.SuperUser.Email || req.SuperUserPassword != s.cfg.SuperUser.Password {
		return ErrSuperUserUnauthorized
	}
	if !util.IsStrongPassword(req.NewPassword) {
		return ErrWeakPassword
	}

	hash, err := util.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	matched, err := s.repo.UpdateByEmail(ctx, req.Email, map[string]any{"password": hash})
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if matched == 0 {
		return ErrUserNotFound
	}
	return nil
}
