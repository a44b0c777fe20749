package httpserver

import (
	"net/http"

	"github.com/fitgym/backend/internal/config"
	middleware "github.com/fitgym/backend/pkg/middleware/auth"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type Deps struct {
	DB      *gorm.DB
	Config  config.Config
	Session *middleware.SessionAuth

	UserHandler    *UserHTTP
	OAuthHandler   *OAuthHTTP
	CatalogHandler *CatalogHTTP
	PaymentHandler *PaymentHTTP
	ChatHandler    *ChatHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler(e)

	health := &HealthHTTP{DB: d.DB, Config: d.Config, Catalog: d.CatalogHandler.Svc}
	e.GET("/health", health.Status)
	e.GET("/test", health.Test)
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", health.Ready)

	api := e.Group("/api")

	api.POST("/users", d.UserHandler.Signup)
	api.GET("/users/:email", d.UserHandler.GetUser)

	auth := api.Group("/auth")
	auth.POST("/login", d.UserHandler.Login)
	auth.POST("/logout", d.UserHandler.Logout)
	auth.GET("/session", d.UserHandler.SessionView, d.Session.OptionalSession)

	admin := api.Group("/admin", d.Session.RequireAdmin)
	admin.GET("/users", d.UserHandler.ListUsers)
	admin.PATCH("/users/:id/active", d.UserHandler.SetActive)
	admin.DELETE("/users/:id", d.UserHandler.RemoveUser)

	api.GET("/plans", d.CatalogHandler.GetPlans)
	api.GET("/plans/:slug/quote", d.CatalogHandler.GetQuote)

	products := api.Group("/products")
	products.GET("/search", d.CatalogHandler.SearchProducts)
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)

	google := e.Group("/auth/google")
	google.GET("", d.OAuthHandler.Start)
	google.GET("/callback", d.OAuthHandler.Callback)
	google.POST("/callback", d.OAuthHandler.ExchangeCode)
	google.POST("/verify", d.OAuthHandler.VerifyIDToken)

	e.POST("/create-order", d.PaymentHandler.CreateOrder)
	e.POST("/verify-payment", d.PaymentHandler.VerifyPayment)
	e.POST("/create-payment-intent", d.PaymentHandler.CreateIntent)
	e.POST("/confirm-payment", d.PaymentHandler.ConfirmPayment)

	e.POST("/chat", d.ChatHandler.Chat)
	e.GET("/chat/providers", d.ChatHandler.Providers)
	e.GET("/chat/ws", d.ChatHandler.Socket)
}
