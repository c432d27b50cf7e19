package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"surfplan-api/core/constants"
	"surfplan-api/core/logger"
)

type ServerConfig struct {
	Port         int
	LogLevel     string
	AllowOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret           string
	AccessTTLMinutes int
	RefreshTTLHours  int
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type ForecastConfig struct {
	MarineBaseURL   string
	WeatherBaseURL  string
	CacheTTLMinutes int
	RefreshCron     string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Google   GoogleOAuthConfig
	Forecast ForecastConfig
	Gemini   GeminiConfig
}

// Load reads configuration from the environment, with .env as a convenience
// for local development. Missing keys fall back to defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOW_ORIGINS", []string{"*"})

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "surfplan")
	v.SetDefault("DB_SSL_MODE", constants.DatabaseSSLMode)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ACCESS_TTL_MINUTES", 30)
	v.SetDefault("JWT_REFRESH_TTL_HOURS", 24*7)

	v.SetDefault("FORECAST_MARINE_BASE_URL", "https://marine-api.open-meteo.com/v1/marine")
	v.SetDefault("FORECAST_WEATHER_BASE_URL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("FORECAST_CACHE_TTL_MINUTES", 180)
	v.SetDefault("FORECAST_REFRESH_CRON", "@every 1h")

	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")

	return &Config{
		Server: ServerConfig{
			Port:         v.GetInt("SERVER_PORT"),
			LogLevel:     v.GetString("LOG_LEVEL"),
			AllowOrigins: v.GetStringSlice("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:           v.GetString("JWT_SECRET"),
			AccessTTLMinutes: v.GetInt("JWT_ACCESS_TTL_MINUTES"),
			RefreshTTLHours:  v.GetInt("JWT_REFRESH_TTL_HOURS"),
		},
		Google: GoogleOAuthConfig{
			ClientID:     v.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  v.GetString("GOOGLE_REDIRECT_URL"),
		},
		Forecast: ForecastConfig{
			MarineBaseURL:   v.GetString("FORECAST_MARINE_BASE_URL"),
			WeatherBaseURL:  v.GetString("FORECAST_WEATHER_BASE_URL"),
			CacheTTLMinutes: v.GetInt("FORECAST_CACHE_TTL_MINUTES"),
			RefreshCron:     v.GetString("FORECAST_REFRESH_CRON"),
		},
		Gemini: GeminiConfig{
			APIKey: v.GetString("GEMINI_API_KEY"),
			Model:  v.GetString("GEMINI_MODEL"),
		},
	}
}

// Validate checks the settings the server cannot run without.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}
