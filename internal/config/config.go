package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/fitgym/backend/pkg/config"
)

const (
	ProviderGroq     = "groq"
	ProviderTogether = "together"
	ProviderMock     = "mock"
)

type Config struct {
	Port        string
	FrontendURL string
	BackendURL  string
	CORSOrigins []string

	DatabaseURL string
	DBDriver    string

	SessionSecret []byte
	SessionTTL    time.Duration

	GoogleClientID     string
	GoogleClientSecret string

	RazorpayKeyID     string
	RazorpayKeySecret string
	StripeSecretKey   string

	AIProvider     string
	AIModel        string
	GroqAPIKey     string
	TogetherAPIKey string
	ChatFallback   bool

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	AdminEmail          string
	AdminPassword       string
	AutoActivateSignups bool

	LogLevel string
}

// Read builds the configuration from the process environment.
func Read() Config {
	cfg := Config{
		Port:        config.EnvDefault("PORT", "5000"),
		FrontendURL: strings.TrimRight(config.EnvDefault("FRONTEND_URL", "http://localhost:5173"), "/"),
		BackendURL:  strings.TrimRight(config.EnvDefault("BACKEND_URL", "http://localhost:5000"), "/"),

		DatabaseURL: config.EnvDefault("DATABASE_URL", ""),
		DBDriver:    config.EnvDefault("DB_DRIVER", "pgx"),

		SessionSecret: []byte(config.EnvDefault("SESSION_SECRET", "")),
		SessionTTL:    config.EnvDurationDefault("SESSION_TTL", 24*time.Hour),

		GoogleClientID:     config.EnvDefault("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: config.EnvDefault("GOOGLE_CLIENT_SECRET", ""),

		RazorpayKeyID:     config.EnvDefault("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: config.EnvDefault("RAZORPAY_KEY_SECRET", ""),
		StripeSecretKey:   config.EnvDefault("STRIPE_SECRET_KEY", ""),

		AIModel:        config.EnvDefault("AI_MODEL", ""),
		GroqAPIKey:     config.EnvDefault("GROQ_API_KEY", ""),
		TogetherAPIKey: config.EnvDefault("TOGETHER_API_KEY", ""),
		ChatFallback:   config.EnvBoolDefault("CHAT_FALLBACK", true),

		KafkaBrokers: config.CSV(config.EnvDefault("KAFKA_BROKERS", "")),

		ESURL:      config.EnvDefault("ES_URL", ""),
		ESUser:     config.EnvDefault("ES_USER", ""),
		ESPassword: config.EnvDefault("ES_PASSWORD", ""),
		ESIndex:    config.EnvDefault("ES_INDEX", "products"),

		AdminEmail:          strings.ToLower(config.EnvDefault("ADMIN_EMAIL", "admin@local")),
		AdminPassword:       config.EnvDefault("ADMIN_PASSWORD", "admin123"),
		AutoActivateSignups: config.EnvBoolDefault("AUTO_ACTIVATE_SIGNUPS", true),

		LogLevel: config.EnvDefault("LOG_LEVEL", "info"),
	}

	cfg.CORSOrigins = config.CSV(config.EnvDefault("CORS_ORIGINS", ""))
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{cfg.FrontendURL}
	}

	cfg.AIProvider = strings.ToLower(config.EnvDefault("AI_PROVIDER", ""))
	if cfg.AIProvider == "" {
		cfg.AIProvider = ProviderMock
		if cfg.GroqAPIKey != "" {
			cfg.AIProvider = ProviderGroq
		}
	}
	return cfg
}

// Load reads .env when present, then the environment, and exits when a
// required variable is missing.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("notice: .env not loaded: %v, using process environment", err)
	}

	cfg := Read()
	config.MustNonEmptyBytes(cfg.SessionSecret, "SESSION_SECRET")
	config.MustNonEmpty(cfg.Port, "PORT")
	return cfg
}

func (c Config) GoogleConfigured() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

func (c Config) RazorpayConfigured() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

func (c Config) StripeConfigured() bool {
	return c.StripeSecretKey != ""
}

func (c Config) SearchConfigured() bool {
	return c.ESURL != ""
}

func (c Config) EventsConfigured() bool {
	return len(c.KafkaBrokers) > 0
}

// ChatKey returns the API key of the selected provider.
func (c Config) ChatKey() string {
	switch c.AIProvider {
	case ProviderGroq:
		return c.GroqAPIKey
	case ProviderTogether:
		return c.TogetherAPIKey
	}
	return ""
}

func (c Config) ChatConfigured() bool {
	return c.ChatKey() != ""
}

// SecureCookies reports whether cookies should carry the Secure flag.
func (c Config) SecureCookies() bool {
	return strings.HasPrefix(c.BackendURL, "https://")
}
