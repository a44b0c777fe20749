package httpserver

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fitgym/backend/internal/models"
	"github.com/fitgym/backend/internal/service"
	"github.com/fitgym/backend/internal/transport"
	"github.com/fitgym/backend/pkg/logging"
	middleware "github.com/fitgym/backend/pkg/middleware/auth"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	stateCookie   = "oauth_state"
	stateLifetime = 10 * time.Minute
	callbackPath  = "/auth/google/callback"
)

type OAuthHTTP struct {
	Svc         *service.OAuthService
	Session     *middleware.SessionAuth
	FrontendURL string
	BackendURL  string
}

func userView(u *models.User) transport.UserView {
	return transport.UserView{ID: u.ID, Email: u.Email, Name: u.Name, Picture: u.Picture, Role: u.Role}
}

func (h *OAuthHTTP) frontendRedirect(c echo.Context, q url.Values) error {
	return c.Redirect(http.StatusFound, h.FrontendURL+callbackPath+"?"+q.Encode())
}

// Start sends the browser to Google's consent screen.
func (h *OAuthHTTP) Start(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "oauth.start")

	state := uuid.NewString()
	target, err := h.Svc.AuthURL(state, h.BackendURL+callbackPath)
	if err != nil {
		l.Warn("oauth_start_failed", "status", 503, "reason", "google not configured")
		return fail(c, http.StatusServiceUnavailable, "Google OAuth not configured")
	}

	c.SetCookie(&http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   int(stateLifetime.Seconds()),
		HttpOnly: true,
		Secure:   h.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, target)
}

func (h *OAuthHTTP) clearState(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     stateCookie,
		Path:     "/auth/google",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Callback finishes the redirect flow and hands the session to the SPA.
func (h *OAuthHTTP) Callback(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "oauth.callback")

	if e := c.QueryParam("error"); e != "" {
		l.Warn("oauth_callback_failed", "reason", "provider error", "error", e)
		return h.frontendRedirect(c, url.Values{"error": {e}})
	}

	code := c.QueryParam("code")
	if code == "" {
		return c.String(http.StatusBadRequest, "Authorization code is required")
	}

	ck, err := c.Cookie(stateCookie)
	if err != nil || ck.Value == "" || ck.Value != c.QueryParam("state") {
		l.Warn("oauth_callback_failed", "reason", "invalid_state")
		return h.frontendRedirect(c, url.Values{"error": {"invalid_state"}})
	}
	h.clearState(c)

	res, err := h.Svc.LoginWithCode(ctx, code, h.BackendURL+callbackPath)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInactive):
			return h.frontendRedirect(c, url.Values{"error": {"Account is inactive"}})
		case errors.Is(err, service.ErrConflict):
			return h.frontendRedirect(c, url.Values{"error": {"Google email is not verified"}})
		}
		l.Error("oauth_callback_failed", "reason", "exchange failed", "error", err)
		return h.frontendRedirect(c, url.Values{"error": {"Authentication failed"}})
	}

	h.Session.SetSessionCookie(c, res.Token, res.ExpiresAt)
	return h.frontendRedirect(c, url.Values{
		"token": {res.Token},
		"email": {res.User.Email},
		"name":  {res.User.Name},
	})
}

// ExchangeCode serves SPAs that receive the code on their own callback page.
func (h *OAuthHTTP) ExchangeCode(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "oauth.exchange_code")

	var req transport.GoogleCodeRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Code) == "" {
		return fail(c, http.StatusBadRequest, "Authorization code is required")
	}

	res, err := h.Svc.LoginWithCode(ctx, req.Code, h.FrontendURL+callbackPath)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotConfigured):
			return fail(c, http.StatusServiceUnavailable, "Google OAuth not configured")
		case errors.Is(err, service.ErrInactive):
			return fail(c, http.StatusForbidden, "Account is inactive")
		case errors.Is(err, service.ErrConflict):
			return fail(c, http.StatusConflict, "Google email is not verified")
		}
		l.Error("oauth_exchange_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Authentication failed", "details": err.Error()})
	}

	h.Session.SetSessionCookie(c, res.Token, res.ExpiresAt)
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"user":         userView(res.User),
		"sessionToken": res.Token,
	})
}

func (h *OAuthHTTP) VerifyIDToken(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "oauth.verify")

	var req transport.GoogleVerifyRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.IDToken) == "" {
		return fail(c, http.StatusBadRequest, "ID token is required")
	}

	res, err := h.Svc.LoginWithIDToken(ctx, req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotConfigured):
			return fail(c, http.StatusServiceUnavailable, "Google OAuth not configured")
		case errors.Is(err, service.ErrInactive):
			return fail(c, http.StatusForbidden, "Account is inactive")
		case errors.Is(err, service.ErrConflict):
			return fail(c, http.StatusConflict, "Google email is not verified")
		}
		l.Error("oauth_verify_failed", "status", 500, "error", err)
		return fail(c, http.StatusInternalServerError, "Token verification failed")
	}

	h.Session.SetSessionCookie(c, res.Token, res.ExpiresAt)
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"user":         userView(res.User),
		"sessionToken": res.Token,
	})
}
