package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort           string
	AppMode           string
	DBHost            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBPort            string
	JWTSecret         string
	JWTAlgorithm      string
	JWTExpiryDays     int
	LichessBaseURL    string
	UpstreamTimeout   int
	TopPlayersLimit   int
	HistoryWindowDays int
	CSVWorkers        int
}

// LoadConfig reads configuration from the environment. The JWT signing key
// and algorithm have no defaults: both must be set or startup fails.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		AppMode:           getEnv("APP_MODE", "debug"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "lichess_gateway"),
		DBPort:            getEnv("DB_PORT", "5432"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTAlgorithm:      getEnv("JWT_ALGORITHM", ""),
		JWTExpiryDays:     getEnvAsInt("JWT_EXPIRY_DAYS", 80),
		LichessBaseURL:    getEnv("LICHESS_BASE_URL", "https://lichess.org/api"),
		UpstreamTimeout:   getEnvAsInt("UPSTREAM_TIMEOUT_SEC", 30),
		TopPlayersLimit:   getEnvAsInt("TOP_PLAYERS_LIMIT", 50),
		HistoryWindowDays: getEnvAsInt("HISTORY_WINDOW_DAYS", 30),
		CSVWorkers:        getEnvAsInt("CSV_WORKERS", 8),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if cfg.JWTAlgorithm == "" {
		return nil, errors.New("JWT_ALGORITHM must be set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
