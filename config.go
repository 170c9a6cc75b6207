package lambdapi

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultFunctionTimeout matches the platform's default invocation budget.
const DefaultFunctionTimeout = 30 * time.Second

// Config holds the process-level settings of the dispatch engine.
type Config struct {
	// FunctionTimeout bounds each handler invocation.
	FunctionTimeout time.Duration
	// LogLevel is the minimum level flushed by invocation scopes.
	LogLevel string
	// ServiceName tags every flushed record; empty disables the tag.
	ServiceName string
}

// LoadConfig loads settings from environment variables, reading a .env
// file first when one is present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("FUNCTION_TIMEOUT", int(DefaultFunctionTimeout/time.Second))
	viper.SetDefault("LOG_LEVEL", "info")

	return &Config{
		FunctionTimeout: time.Duration(viper.GetInt("FUNCTION_TIMEOUT")) * time.Second,
		LogLevel:        viper.GetString("LOG_LEVEL"),
		ServiceName:     viper.GetString("SERVICE_NAME"),
	}
}
