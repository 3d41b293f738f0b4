package config

import (
	"fmt"
	"os"

	"contributorkpi/kpi"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI      string
	Database      string
	JWTSecret     string
	Port          string
	LogLevel      string
	LogFormat     string
	DefaultWindow kpi.TimeWindow
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:  os.Getenv("MONGO_URI"),
		Database:  getenv("MONGO_DATABASE", "kpi_project"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Port:      getenv("PORT", "8081"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),
	}

	if cfg.MongoURI == "" {
		uri, err := atlasURI()
		if err != nil {
			return nil, err
		}
		cfg.MongoURI = uri
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	window, err := kpi.ParseTimeWindow(getenv("KPI_DEFAULT_WINDOW", string(kpi.Window30Days)))
	if err != nil {
		return nil, fmt.Errorf("KPI_DEFAULT_WINDOW: %w", err)
	}
	cfg.DefaultWindow = window

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT: %s. Must be 'text' or 'json'", cfg.LogFormat)
	}

	return cfg, nil
}

// atlasURI builds a MongoDB Atlas connection string from its parts.
func atlasURI() (string, error) {
	username := os.Getenv("MONGO_USERNAME")
	password := os.Getenv("MONGO_PASSWORD")
	cluster := os.Getenv("MONGO_CLUSTER")
	appName := os.Getenv("MONGO_APP_NAME")

	if username == "" || password == "" || cluster == "" || appName == "" {
		return "", fmt.Errorf("missing MongoDB settings: set MONGO_URI or MONGO_USERNAME, MONGO_PASSWORD, MONGO_CLUSTER and MONGO_APP_NAME")
	}

	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=%s",
		username, password, cluster, appName), nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
