package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort  string
	GinMode     string
	LogLevel    string
	LogFormat   string
	DatabaseURL string
	MaxDBConns  int32
	RedisURL    string
	JWTSecret   string
	JWTExpiry   time.Duration
	BcryptCost  int
	// CookieName is the name of the HTTP-only session cookie. The same token
	// is also accepted via the Authorization header; the cookie wins when
	// both are present.
	CookieName   string
	CookieSecure bool
	// CourseSemesters maps a course name to its number of semesters.
	// Fixed configuration, never derived from stored records.
	CourseSemesters map[string]int
	// DashboardCacheTTL bounds staleness of the cached admin dashboard counts.
	DashboardCacheTTL time.Duration
	// AllowedOrigins controls HTTP CORS. Empty slice means all origins are
	// permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
// DATABASE_URL has no default: Load returns an error so the process can
// abort before serving any traffic.
func Load() (*Config, error) {
	_ = godotenv.Load() // Ignore error, .env is optional

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	courseSemesters, err := parseCourseSemesters(getEnv("COURSE_SEMESTERS", "BCA:6,B.Tech:8"))
	if err != nil {
		return nil, fmt.Errorf("parse COURSE_SEMESTERS: %w", err)
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "pretty"),
		DatabaseURL:       dbURL,
		MaxDBConns:        int32(getEnvInt("MAX_DB_CONNS", 16)),
		RedisURL:          getEnv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:         getEnv("JWT_SECRET", "change-this-to-a-secure-random-string"),
		JWTExpiry:         time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 168)) * time.Hour,
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),
		CookieName:        getEnv("COOKIE_NAME", "token"),
		CookieSecure:      getEnv("COOKIE_SECURE", "false") == "true",
		CourseSemesters:   courseSemesters,
		DashboardCacheTTL: time.Duration(getEnvInt("DASHBOARD_CACHE_TTL_SECONDS", 60)) * time.Second,
		AllowedOrigins:    parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}, nil
}

// Courses returns the configured course names in a stable order.
func (c *Config) Courses() []string {
	names := make([]string, 0, len(c.CourseSemesters))
	for name := range c.CourseSemesters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseCourseSemesters parses "BCA:6,B.Tech:8" into {"BCA": 6, "B.Tech": 8}.
func parseCourseSemesters(raw string) (map[string]int, error) {
	out := make(map[string]int)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, count, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("malformed entry %q", pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid semester count in %q", pair)
		}
		out[strings.TrimSpace(name)] = n
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no courses configured")
	}
	return out, nil
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
