package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		UI
		CORS
		GoogleBooks
		Backup
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	CORS struct {
		AllowedOrigins []string
	}
	GoogleBooks struct {
		BaseURL    string
		Timeout    time.Duration
		MaxResults int
	}
	Backup struct {
		Dir       string // empty disables scheduled backups
		Schedule  string // standard 5-field cron spec
		Retention int    // snapshots to keep
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 5000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")
	v.SetDefault("cors_allowed_origins", "*")

	// Google Books proxy defaults
	v.SetDefault("google_books_base_url", DefaultGoogleBooksBaseURL)
	v.SetDefault("google_books_timeout", "10s")
	v.SetDefault("google_books_max_results", 5)

	// Backup defaults
	v.SetDefault("backup_dir", "")
	v.SetDefault("backup_schedule", "0 3 * * *") // Daily at 03:00
	v.SetDefault("backup_retention", 14)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		CORS: CORS{
			AllowedOrigins: splitOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		GoogleBooks: GoogleBooks{
			BaseURL:    v.GetString("GOOGLE_BOOKS_BASE_URL"),
			Timeout:    v.GetDuration("GOOGLE_BOOKS_TIMEOUT"),
			MaxResults: v.GetInt("GOOGLE_BOOKS_MAX_RESULTS"),
		},
		Backup: Backup{
			Dir:       v.GetString("BACKUP_DIR"),
			Schedule:  v.GetString("BACKUP_SCHEDULE"),
			Retention: v.GetInt("BACKUP_RETENTION"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
