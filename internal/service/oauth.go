package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fitgym/backend/internal/models"
	"github.com/fitgym/backend/internal/oauth"
	"github.com/fitgym/backend/internal/repo"
	"github.com/fitgym/backend/pkg/logging"
)

type OAuthService struct {
	Users  *UserService
	Google oauth.Provider
}

func (s *OAuthService) Configured() bool { return s.Google != nil }

func (s *OAuthService) AuthURL(state, redirectURI string) (string, error) {
	if s.Google == nil {
		return "", ErrNotConfigured
	}
	return s.Google.AuthURL(state, redirectURI), nil
}

// LoginWithCode completes the authorization-code flow and issues a session.
func (s *OAuthService) LoginWithCode(ctx context.Context, code, redirectURI string) (*LoginResult, error) {
	if s.Google == nil {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: authorization code is required", ErrValidation)
	}

	profile, err := s.Google.Exchange(ctx, code, redirectURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return s.login(ctx, profile)
}

// LoginWithIDToken verifies a Google ID token issued to this client.
func (s *OAuthService) LoginWithIDToken(ctx context.Context, idToken string) (*LoginResult, error) {
	if s.Google == nil {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(idToken) == "" {
		return nil, fmt.Errorf("%w: id token is required", ErrValidation)
	}

	profile, err := s.Google.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return s.login(ctx, profile)
}

func (s *OAuthService) login(ctx context.Context, p *oauth.Profile) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "oauth.login")

	user, created, err := s.findOrCreate(ctx, p)
	if errors.Is(err, ErrConflict) {
		l.Warn("google_login_failed", "status", 409, "reason", "unverified email", "error", err)
		return nil, err
	}
	if err != nil {
		l.Error("google_login_failed", "status", 500, "reason", "cannot store user", "error", err)
		return nil, err
	}
	if !user.IsActive {
		l.Warn("google_login_failed", "status", 403, "reason", "inactive", "user_id", user.ID)
		return nil, ErrInactive
	}

	res, err := s.Users.IssueSession(user)
	if err != nil {
		return nil, err
	}
	s.Users.publish(ctx, "user_google_login", user, map[string]any{"created": created})
	l.Info("google_login_success", "user_id", user.ID, "created", created)
	return res, nil
}

// findOrCreate resolves the Google account by its subject, then by email
// (linking the account), and creates an active user otherwise. Linking needs
// an address Google has verified.
func (s *OAuthService) findOrCreate(ctx context.Context, p *oauth.Profile) (*models.User, bool, error) {
	rp := s.Users.Repo

	u, err := rp.GetUserByGoogleID(ctx, p.ID)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, false, err
	}

	email := normalizeEmail(p.Email)
	u, err = rp.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if !p.VerifiedEmail {
			return nil, false, fmt.Errorf("%w: google email %s is not verified", ErrConflict, email)
		}
		u, err = rp.LinkGoogle(ctx, u.ID, p.ID, p.Picture)
		return u, false, err
	case !errors.Is(err, repo.ErrNotFound):
		return nil, false, err
	}

	googleID := p.ID
	u = &models.User{
		ID:       email,
		Email:    email,
		Name:     p.Name,
		Role:     models.RoleUser,
		IsActive: true,
		GoogleID: &googleID,
		Picture:  p.Picture,
	}
	if err := rp.CreateUserIfNotExists(ctx, u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}
