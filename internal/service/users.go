package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/fitgym/backend/internal/models"
	"github.com/fitgym/backend/internal/mykafka"
	"github.com/fitgym/backend/internal/repo"
	pkg_hash "github.com/fitgym/backend/pkg/hash"
	"github.com/fitgym/backend/pkg/logging"
	"github.com/fitgym/backend/pkg/tokens"
)

// bcrypt ignores input past 72 bytes
const maxPasswordBytes = 72

type UserService struct {
	Repo         *repo.GormRepo
	Events       mykafka.Publisher
	Secret       []byte
	TTL          time.Duration
	AutoActivate bool
}

type LoginResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email && strings.Contains(email, "@")
}

func (s *UserService) publish(ctx context.Context, eventType string, u *models.User, extra map[string]any) {
	event := map[string]any{
		"type":   eventType,
		"userID": u.ID,
		"email":  u.Email,
	}
	for k, v := range extra {
		event[k] = v
	}
	mykafka.Publish(ctx, s.Events, mykafka.TopicUserEvents, u.ID, event)
}

// Register creates a local account. The email doubles as the user id.
func (s *UserService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "users.register")

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}
	if !validEmail(email) {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password is too long", ErrValidation)
	}

	pwHash, err := pkg_hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{
		ID:           email,
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: pwHash,
		Role:         models.RoleUser,
		IsActive:     s.AutoActivate,
	}
	if err := s.Repo.CreateUserIfNotExists(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			l.Warn("register_error", "status", 400, "reason", "user already exists")
			return nil, fmt.Errorf("%w: user already exists", ErrConflict)
		}
		l.Error("register_error", "status", 500, "reason", "db error", "error", err)
		return nil, err
	}

	s.publish(ctx, "user_registered", user, map[string]any{"active": user.IsActive})
	l.Info("register_success", "user_id", user.ID, "active", user.IsActive)
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := s.Repo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	l := logging.FromContext(ctx).With("svc", "users.login", "email", email)

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "not_found")
		}
		return nil, err
	}
	if !pkg_hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "wrong_password")
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		l.Warn("login_failed", "status", 403, "reason", "inactive")
		return nil, ErrInactive
	}

	res, err := s.IssueSession(user)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign session", "error", err)
		return nil, err
	}

	s.publish(ctx, "user_logged_in", user, nil)
	return res, nil
}

func (s *UserService) IssueSession(user *models.User) (*LoginResult, error) {
	sess, err := tokens.NewSession(user.ID, user.Email, user.Role, s.TTL, s.Secret)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, Token: sess.Token, ExpiresAt: sess.ExpiresAt}, nil
}

// SessionRole reports the stored role for a signed-in user. Removed and
// deactivated accounts are refused.
func (s *UserService) SessionRole(ctx context.Context, id string) (string, error) {
	u, err := s.Repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if !u.IsActive {
		return "", ErrInactive
	}
	return u.Role, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

// SetActive toggles a user's account. actorID is the admin making the change
// and may not target their own account.
func (s *UserService) SetActive(ctx context.Context, actorID, id string, active bool) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "users.set_active", "user_id", id)

	if actorID == id {
		return nil, fmt.Errorf("%w: cannot change your own account status", ErrValidation)
	}

	u, err := s.Repo.SetUserActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		l.Error("set_active_failed", "status", 500, "error", err)
		return nil, err
	}

	eventType := "user_deactivated"
	if active {
		eventType = "user_activated"
	}
	s.publish(ctx, eventType, u, nil)
	return u, nil
}

// Remove deletes a user. actorID is the admin performing the removal.
func (s *UserService) Remove(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return fmt.Errorf("%w: cannot remove your own account", ErrValidation)
	}
	u, err := s.Repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.publish(ctx, "user_removed", u, nil)
	return nil
}

// EnsureAdmin seeds an active admin account when the store has none that can
// sign in. A deactivated admin registered under email is reactivated instead.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	l := logging.FromContext(ctx).With("svc", "users.ensure_admin")

	has, err := s.Repo.HasAdmin(ctx)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	email = normalizeEmail(email)
	pwHash, err := pkg_hash.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &models.User{
		ID:           email,
		Email:        email,
		Name:         "Administrator",
		PasswordHash: pwHash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := s.Repo.CreateUserIfNotExists(ctx, admin); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return s.reactivateAdmin(ctx, email)
		}
		return err
	}
	l.Info("admin_seeded", "email", email)
	return nil
}

func (s *UserService) reactivateAdmin(ctx context.Context, email string) error {
	l := logging.FromContext(ctx).With("svc", "users.ensure_admin", "email", email)

	u, err := s.Repo.GetUserByID(ctx, email)
	if err != nil {
		return err
	}
	if u.Role != models.RoleAdmin {
		l.Warn("admin_seed_skipped", "reason", "email already registered as a regular user")
		return nil
	}
	if _, err := s.Repo.SetUserActive(ctx, u.ID, true); err != nil {
		return err
	}
	s.publish(ctx, "user_activated", u, nil)
	l.Info("admin_reactivated")
	return nil
}
