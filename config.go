package cmsconsole

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the console.
type Config struct {
	Addr string // Listen address (default ":3000")

	APIBaseURL string        // Required: root of the CMS REST API
	APIKey     string        // Sent as x-api-key on every CMS call
	APITimeout time.Duration // CMS request timeout (default 15s)

	SessionSecret string // Required: session cookie secret
	CookieSecure  bool   // Set true for HTTPS

	MetricsToken string // Bearer token for /metrics; the endpoint is off when empty

	ActivityDatabasePath string        // SQLite path (default "data/activity.db")
	ActivityRetention    time.Duration // How long activity is kept (default 90 days)

	BlogsPageSize int           // Blogs per page (default 20)
	StatsCacheTTL time.Duration // Dashboard counter TTL (default 30s)
	LogLevel      string        // debug, info, warn, error (default "info")
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.APITimeout == 0 {
		c.APITimeout = 15 * time.Second
	}
	if c.ActivityDatabasePath == "" {
		c.ActivityDatabasePath = "data/activity.db"
	}
	if c.ActivityRetention == 0 {
		c.ActivityRetention = 90 * 24 * time.Hour
	}
	if c.BlogsPageSize == 0 {
		c.BlogsPageSize = 20
	}
	if c.StatsCacheTTL == 0 {
		c.StatsCacheTTL = 30 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when present.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Addr:                 EnvOr("ADDR", ":3000"),
		APIBaseURL:           strings.TrimRight(os.Getenv("API_BASE_URL"), "/"),
		APIKey:               os.Getenv("API_KEY"),
		APITimeout:           envDuration("API_TIMEOUT", 15*time.Second),
		SessionSecret:        os.Getenv("SESSION_SECRET"),
		CookieSecure:         envBool("COOKIE_SECURE", false),
		MetricsToken:         os.Getenv("METRICS_TOKEN"),
		ActivityDatabasePath: EnvOr("ACTIVITY_DATABASE_PATH", "data/activity.db"),
		ActivityRetention:    envDuration("ACTIVITY_RETENTION", 90*24*time.Hour),
		BlogsPageSize:        envInt("BLOGS_PAGE_SIZE", 20),
		StatsCacheTTL:        envDuration("STATS_CACHE_TTL", 30*time.Second),
		LogLevel:             EnvOr("LOG_LEVEL", "info"),
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// NewLogger returns a JSON logger on stdout at the given level.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// Option configures additional App behavior.
type Option func(*App)

// WithHTTPClient sets the client used for CMS calls, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *App) {
		a.httpClient = hc
	}
}

// WithLogger replaces the JSON logger built from Config.LogLevel.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}
