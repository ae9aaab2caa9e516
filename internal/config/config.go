package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Rename RenameConfig
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// UploadConfig holds upload validation settings.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	MaxBatchSize  int   `mapstructure:"max_batch_size"`
}

// RenameConfig holds naming and packaging settings.
type RenameConfig struct {
	ArchiveName   string `mapstructure:"archive_name"`
	IncludeLedger bool   `mapstructure:"include_ledger"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the REFILE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("REFILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 50)
	v.SetDefault("upload.max_batch_size", 200)

	// Rename defaults
	v.SetDefault("rename.archive_name", "renamed_invoices.zip")
	v.SetDefault("rename.include_ledger", true)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "REFILE_SERVER_PORT",
		"server.read_timeout":     "REFILE_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "REFILE_SERVER_WRITE_TIMEOUT",
		"server.environment":      "REFILE_SERVER_ENVIRONMENT",
		"upload.max_file_size_mb": "REFILE_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.max_batch_size":   "REFILE_UPLOAD_MAX_BATCH_SIZE",
		"rename.archive_name":     "REFILE_RENAME_ARCHIVE_NAME",
		"rename.include_ledger":   "REFILE_RENAME_INCLUDE_LEDGER",
		"log.level":               "REFILE_LOG_LEVEL",
		"log.format":              "REFILE_LOG_FORMAT",
		"cors.allowed_origins":    "REFILE_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if REFILE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("REFILE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		MaxBatchSize:  v.GetInt("upload.max_batch_size"),
	}
	cfg.Rename = RenameConfig{
		ArchiveName:   v.GetString("rename.archive_name"),
		IncludeLedger: v.GetBool("rename.include_ledger"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
