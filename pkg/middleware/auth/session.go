package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/fitgym/backend/pkg/logging"
	"github.com/fitgym/backend/pkg/tokens"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxUserID  = "user_id"
	CtxRole    = "role"
	CtxEmail   = "email"
	CtxSession = "session"

	SessionCookie = "session"
)

// AccountLookup resolves the current role of a session subject. It returns an
// error for accounts that were removed or deactivated after sign-in.
type AccountLookup interface {
	SessionRole(ctx context.Context, userID string) (string, error)
}

type SessionAuth struct {
	Secret []byte
	Secure bool

	// Accounts, when set, is consulted on every request and overrides the
	// role carried in the token.
	Accounts AccountLookup
}

func NewSessionAuth(secret []byte, secure bool) *SessionAuth {
	return &SessionAuth{Secret: secret, Secure: secure}
}

func (m *SessionAuth) config(optional bool) echojwt.Config {
	return echojwt.Config{
		ContextKey:  CtxSession,
		TokenLookup: "header:Authorization:Bearer ,cookie:" + SessionCookie,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			claims, err := tokens.SessionClaimsFromToken(auth, m.Secret)
			if err != nil {
				return nil, err
			}
			return m.refresh(c.Request().Context(), claims)
		},
		SuccessHandler: func(c echo.Context) {
			if claims, ok := c.Get(CtxSession).(*tokens.SessionClaims); ok {
				setUserContext(c, claims)
			}
		},
		ContinueOnIgnoredError: optional,
		ErrorHandler: func(c echo.Context, err error) error {
			if optional {
				return nil
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
		},
	}
}

// RequireSession rejects requests without a valid session token.
func (m *SessionAuth) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return echojwt.WithConfig(m.config(false))(next)
}

// OptionalSession fills the user context when a valid token is present and
// lets the request through either way.
func (m *SessionAuth) OptionalSession(next echo.HandlerFunc) echo.HandlerFunc {
	return echojwt.WithConfig(m.config(true))(next)
}

func (m *SessionAuth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireSession(func(c echo.Context) error {
		if role, _ := c.Get(CtxRole).(string); role != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	})
}

func (m *SessionAuth) refresh(ctx context.Context, claims *tokens.SessionClaims) (*tokens.SessionClaims, error) {
	if m.Accounts == nil {
		return claims, nil
	}
	role, err := m.Accounts.SessionRole(ctx, claims.Subject)
	if err != nil {
		logging.FromContext(ctx).Warn("session_rejected", "user_id", claims.Subject, "error", err)
		return nil, err
	}
	claims.Role = role
	return claims, nil
}

func (m *SessionAuth) SetSessionCookie(c echo.Context, token string, exp time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *SessionAuth) ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func setUserContext(c echo.Context, claims *tokens.SessionClaims) {
	c.Set(CtxUserID, claims.Subject)
	c.Set(CtxRole, claims.Role)
	c.Set(CtxEmail, claims.Email)
}
