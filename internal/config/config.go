package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string
	Environment  string
	MySQLDSN     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	JWTSecret    string
	CookieDomain string
	SwaggerHost  string

	// External geo providers.
	GeocoderURL string
	RouterURL   string

	// Fallback map center used when the client has no geolocation fix.
	DefaultCenterLat float64
	DefaultCenterLon float64
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "5000"),
		Environment:      getEnv("APP_ENV", "development"),
		MySQLDSN:         getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		CookieDomain:     os.Getenv("COOKIE_DOMAIN"),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
		GeocoderURL:      getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		RouterURL:        getEnv("ROUTER_URL", "https://router.project-osrm.org"),
		DefaultCenterLat: getEnvFloat("DEFAULT_CENTER_LAT", 12.9716),
		DefaultCenterLon: getEnvFloat("DEFAULT_CENTER_LON", 77.5946),
	}
}

// IsProduction reports whether production cookie settings apply.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}
