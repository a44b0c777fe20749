package httpserver

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/fitgym/backend/internal/service"
	"github.com/fitgym/backend/internal/transport"
	"github.com/fitgym/backend/pkg/logging"
	middleware "github.com/fitgym/backend/pkg/middleware/auth"
	"github.com/labstack/echo/v4"
)

type UserHTTP struct {
	Svc     *service.UserService
	Session *middleware.SessionAuth
}

func (h *UserHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.signup")

	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_error", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			return fail(c, http.StatusBadRequest, "User already exists")
		case errors.Is(err, service.ErrValidation):
			l.Warn("signup_error", "status", 400, "reason", "invalid input", "error", err)
			return fail(c, http.StatusBadRequest, "Valid email and password are required")
		}
		l.Error("signup_error", "status", 500, "reason", "cannot create user", "error", err)
		return fail(c, http.StatusInternalServerError, "Failed to create user")
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.get")

	email, err := url.PathUnescape(c.Param("email"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid email")
	}

	user, err := h.Svc.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fail(c, http.StatusNotFound, "User not found")
		}
		l.Error("get_user_error", "status", 500, "error", err)
		return fail(c, http.StatusInternalServerError, "Failed to load user")
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

func (h *UserHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return fail(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "User not found", "reason": "not_found"})
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid password", "reason": "wrong_password"})
		case errors.Is(err, service.ErrInactive):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "Account is inactive", "reason": "inactive"})
		}
		l.Error("login_error", "status", 500, "error", err)
		return fail(c, http.StatusInternalServerError, "Login failed")
	}

	h.Session.SetSessionCookie(c, res.Token, res.ExpiresAt)
	l.Info("login_success", "user_id", res.User.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"user":         res.User,
		"sessionToken": res.Token,
	})
}

func (h *UserHTTP) Logout(c echo.Context) error {
	h.Session.ClearSessionCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

func (h *UserHTTP) SessionView(c echo.Context) error {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return c.JSON(http.StatusOK, echo.Map{"isAuthenticated": false, "role": nil})
	}
	role, _ := c.Get(middleware.CtxRole).(string)
	return c.JSON(http.StatusOK, echo.Map{
		"isAuthenticated": true,
		"role":            role,
		"userId":          userID,
	})
}

func (h *UserHTTP) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.list_users")

	users, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("list_users_error", "status", 500, "error", err)
		return fail(c, http.StatusInternalServerError, "Failed to load users")
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

func (h *UserHTTP) SetActive(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.set_active")

	var req transport.SetActiveRequest
	if err := c.Bind(&req); err != nil || req.IsActive == nil {
		l.Warn("set_active_error", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, http.StatusBadRequest, "isActive is required")
	}

	actor, _ := c.Get(middleware.CtxUserID).(string)
	user, err := h.Svc.SetActive(ctx, actor, c.Param("id"), *req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return fail(c, http.StatusBadRequest, "Cannot change your own account status")
		case errors.Is(err, service.ErrNotFound):
			return fail(c, http.StatusNotFound, "User not found")
		}
		l.Error("set_active_error", "status", 500, "error", err)
		return fail(c, http.StatusInternalServerError, "Failed to update user")
	}

	l.Info("set_active_success", "user_id", user.ID, "active", user.IsActive)
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

func (h *UserHTTP) RemoveUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.remove_user")

	actor, _ := c.Get(middleware.CtxUserID).(string)
	if err := h.Svc.Remove(ctx, actor, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return fail(c, http.StatusBadRequest, "Cannot remove your own account")
		case errors.Is(err, service.ErrNotFound):
			return fail(c, http.StatusNotFound, "User not found")
		}
		l.Error("remove_user_error", "status", 500, "error", err)
		return fail(c, http.StatusInternalServerError, "Failed to remove user")
	}

	l.Info("remove_user_success", "user_id", c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
