// Package app carries runtime configuration and logger setup for the CLI.
package app

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel      string
	ExportDir     string
	Person        string
	GenerateDelay time.Duration
}

// LoadConfig reads config.yml from the working directory when present and
// falls back to TRACKER_* environment variables otherwise. A .env file is
// loaded first so either source can supply the variables.
func LoadConfig() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.SetDefault("log.level", "info")
	v.SetDefault("export.dir", ".")
	v.SetDefault("person", "")
	v.SetDefault("generate_delay_ms", 0)

	// A missing config.yml is fine; env vars and defaults cover everything.
	_ = v.ReadInConfig()

	v.SetEnvPrefix("TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return Config{
		LogLevel:      v.GetString("log.level"),
		ExportDir:     v.GetString("export.dir"),
		Person:        v.GetString("person"),
		GenerateDelay: time.Duration(v.GetInt("generate_delay_ms")) * time.Millisecond,
	}
}
