package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/fitgym/backend/internal/config"
	"github.com/fitgym/backend/internal/service"
	pkgdb "github.com/fitgym/backend/pkg/db"
	"github.com/fitgym/backend/pkg/logging"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthHTTP struct {
	DB      *gorm.DB
	Config  config.Config
	Catalog *service.CatalogService
}

func (h *HealthHTTP) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "OK",
		"message": "Server is running",
		"services": echo.Map{
			"googleOAuth": h.Config.GoogleConfigured(),
			"razorpay":    h.Config.RazorpayConfigured(),
			"stripe":      h.Config.StripeConfigured(),
			"aiChat":      h.Config.ChatConfigured(),
			"search":      h.Catalog != nil && h.Catalog.SearchEnabled(),
			"events":      h.Config.EventsConfigured(),
		},
	})
}

func (h *HealthHTTP) Test(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":             "OK",
		"message":            "Server is working",
		"googleClientSecret": h.Config.GoogleClientSecret != "",
		"port":               h.Config.Port,
	})
}

func (h *HealthHTTP) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := pkgdb.Ping(ctx, h.DB); err != nil {
		logging.FromContext(ctx).Warn("readiness_failed", "status", 503, "error", err)
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
