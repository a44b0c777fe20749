package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	pkgdb "github.com/fitgym/backend/pkg/db"
	"github.com/fitgym/backend/pkg/logging"
	middleware "github.com/fitgym/backend/pkg/middleware/auth"
	loggingmw "github.com/fitgym/backend/pkg/middleware/logging"

	"github.com/fitgym/backend/internal/config"
	"github.com/fitgym/backend/internal/es"
	"github.com/fitgym/backend/internal/fitbot"
	"github.com/fitgym/backend/internal/httpserver"
	"github.com/fitgym/backend/internal/mykafka"
	"github.com/fitgym/backend/internal/oauth"
	"github.com/fitgym/backend/internal/payment"
	"github.com/fitgym/backend/internal/repo"
	"github.com/fitgym/backend/internal/service"
)

func newBot(cfg config.Config) *fitbot.Bot {
	bot := &fitbot.Bot{ProviderID: fitbot.ProviderMock, Fallback: cfg.ChatFallback}
	switch {
	case cfg.AIProvider == config.ProviderGroq && cfg.GroqAPIKey != "":
		bot.Provider = fitbot.NewGroq(cfg.GroqAPIKey, cfg.AIModel)
		bot.ProviderID = config.ProviderGroq
	case cfg.AIProvider == config.ProviderTogether && cfg.TogetherAPIKey != "":
		bot.Provider = fitbot.NewTogether(cfg.TogetherAPIKey, cfg.AIModel)
		bot.ProviderID = config.ProviderTogether
	case cfg.AIProvider != config.ProviderMock:
		// a remote provider without a key answers from the rules or 503s
		bot.ProviderID = cfg.AIProvider
	}
	return bot
}

func main() {
	cfg := config.Load()

	logger := logging.New("fitgym", cfg.LogLevel)
	slog.SetDefault(logger)
	ctx := logging.IntoContext(context.Background(), logger)

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	db, err := pkgdb.Open(openCtx, cfg.DatabaseURL, cfg.DBDriver)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	rp := &repo.GormRepo{DB: db}
	if err := rp.Migrate(ctx); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	events := mykafka.New(cfg.KafkaBrokers, logger)

	users := &service.UserService{
		Repo:         rp,
		Events:       events,
		Secret:       cfg.SessionSecret,
		TTL:          cfg.SessionTTL,
		AutoActivate: cfg.AutoActivateSignups,
	}
	if err := users.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	catalogSvc := &service.CatalogService{Repo: rp}
	if cfg.SearchConfigured() {
		esCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		client, err := es.NewClient(esCtx, es.Config{
			URL:      cfg.ESURL,
			Username: cfg.ESUser,
			Password: cfg.ESPassword,
			Index:    cfg.ESIndex,
		})
		cancel()
		if err != nil {
			logger.Warn("search_disabled", "reason", "elasticsearch unreachable", "error", err)
		} else {
			catalogSvc.Search = client
		}
	}
	if err := catalogSvc.Seed(ctx); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	oauthSvc := &service.OAuthService{Users: users}
	if cfg.GoogleConfigured() {
		oauthSvc.Google = oauth.NewGoogle(cfg.GoogleClientID, cfg.GoogleClientSecret)
	}

	payments := &service.PaymentService{Repo: rp, Events: events}
	if cfg.RazorpayConfigured() {
		payments.Razorpay = payment.NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	}
	if cfg.StripeConfigured() {
		payments.Stripe = payment.NewStripe(cfg.StripeSecretKey)
	}

	bot := newBot(cfg)
	session := middleware.NewSessionAuth(cfg.SessionSecret, cfg.SecureCookies())
	session.Accounts = users

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	httpserver.Register(e, &httpserver.Deps{
		DB:             db,
		Config:         cfg,
		Session:        session,
		UserHandler:    &httpserver.UserHTTP{Svc: users, Session: session},
		OAuthHandler:   &httpserver.OAuthHTTP{Svc: oauthSvc, Session: session, FrontendURL: cfg.FrontendURL, BackendURL: cfg.BackendURL},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
		PaymentHandler: &httpserver.PaymentHTTP{Svc: payments},
		ChatHandler: &httpserver.ChatHTTP{
			Bot: bot,
			ProviderKeys: map[string]bool{
				config.ProviderGroq:     cfg.GroqAPIKey != "",
				config.ProviderTogether: cfg.TogetherAPIKey != "",
			},
			AllowedOrigins: cfg.CORSOrigins,
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("server_started",
			"addr", srv.Addr,
			"google_oauth", cfg.GoogleConfigured(),
			"razorpay", cfg.RazorpayConfigured(),
			"stripe", cfg.StripeConfigured(),
			"ai_provider", bot.ProviderID,
			"ai_configured", bot.Configured(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_failed", "error", err)
	}
	if err := events.Close(); err != nil {
		logger.Error("events_close_failed", "error", err)
	}
	if err := pkgdb.Close(db); err != nil {
		logger.Error("db_close_failed", "error", err)
	}

	logger.Info("server_stopped")
}
