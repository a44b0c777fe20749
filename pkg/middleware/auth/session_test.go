package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fitgym/backend/pkg/tokens"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-session-secret")

func newSession(t *testing.T, role string) string {
	t.Helper()
	s, err := tokens.NewSession("u1@example.com", "u1@example.com", role, time.Hour, secret)
	require.NoError(t, err)
	return s.Token
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newEcho(m *SessionAuth) *echo.Echo {
	e := echo.New()
	whoami := func(c echo.Context) error {
		uid, _ := c.Get(CtxUserID).(string)
		role, _ := c.Get(CtxRole).(string)
		return c.JSON(http.StatusOK, echo.Map{"user_id": uid, "role": role})
	}
	e.GET("/private", whoami, m.RequireSession)
	e.GET("/admin", whoami, m.RequireAdmin)
	e.GET("/optional", whoami, m.OptionalSession)
	return e
}

func TestRequireSession(t *testing.T) {
	e := newEcho(NewSessionAuth(secret, false))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+newSession(t, "user"))
	rec = serve(e, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "u1@example.com")

	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: newSession(t, "user")})
	rec = serve(e, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})
	rec = serve(e, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	e := newEcho(NewSessionAuth(secret, false))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+newSession(t, "user"))
	assert.Equal(t, http.StatusForbidden, serve(e, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+newSession(t, "admin"))
	assert.Equal(t, http.StatusOK, serve(e, req).Code)
}

func TestOptionalSession(t *testing.T) {
	e := newEcho(NewSessionAuth(secret, false))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/optional", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":""`)

	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+newSession(t, "admin"))
	rec = serve(e, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"admin"`)
}

type accounts map[string]string

func (a accounts) SessionRole(_ context.Context, id string) (string, error) {
	role, ok := a[id]
	if !ok {
		return "", errors.New("account gone")
	}
	return role, nil
}

func TestSessionAuth_Accounts(t *testing.T) {
	m := NewSessionAuth(secret, false)
	m.Accounts = accounts{"u1@example.com": "user"}
	e := newEcho(m)

	bearer := func(path, role string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+newSession(t, role))
		return req
	}

	rec := serve(e, bearer("/private", "user"))
	require.Equal(t, http.StatusOK, rec.Code)

	// the stored role wins over the one in the token
	assert.Equal(t, http.StatusForbidden, serve(e, bearer("/admin", "admin")).Code)

	m.Accounts = accounts{}
	assert.Equal(t, http.StatusUnauthorized, serve(e, bearer("/private", "user")).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, bearer("/admin", "admin")).Code)

	rec = serve(e, bearer("/optional", "user"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":""`)
}
