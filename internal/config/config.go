package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI       string
	DBName         string
	JWTSecret      string
	AccessTokenTTL time.Duration
	RequestTimeout time.Duration
	Port           string
	AllowedOrigins []string
	// StoreLocation is the zone the deal-of-the-day countdown ends in.
	StoreLocation     *time.Location
	TrendingThreshold int
	NewProductDays    int
	// DismissalCapacity bounds the popup dismissals kept in memory.
	DismissalCapacity int
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = FromEnv()
}

// FromEnv reads the configuration from the process environment.
func FromEnv() Config {
	return Config{
		MongoURI:       getEnvOrDefault("MONGO_URI", ""),
		DBName:         getEnvOrDefault("DB_NAME", "storefront"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 20, time.Minute),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", 5, time.Second),
		Port:           getEnvOrDefault("PORT", "8080"),
		AllowedOrigins: getListEnv("ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		StoreLocation:  getLocationEnv("STORE_TIMEZONE", time.UTC),

		TrendingThreshold: getIntEnv("TRENDING_THRESHOLD", 50),
		NewProductDays:    getIntEnv("NEW_PRODUCT_DAYS", 7),
		DismissalCapacity: getIntEnv("DISMISSAL_CAPACITY", 10000),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getIntEnv(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func getLocationEnv(key string, defaultValue *time.Location) *time.Location {
	name := strings.TrimSpace(os.Getenv(key))
	if name == "" {
		return defaultValue
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("%s=%q not usable, falling back to %s: %v", key, name, defaultValue, err)
		return defaultValue
	}
	return loc
}
