package constants

const (
	// Context keys set by the auth middleware
	ContextTokenData   = "token_data"
	ContextBearerToken = "bearer_token"

	// Redis key prefixes
	RedisKeyTokenBlacklist = "surfplan:auth:blacklist:"
	RedisKeyOAuthState     = "surfplan:auth:oauth-state:"
	RedisKeyForecast       = "surfplan:forecast:"

	// Database defaults
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes

	// Planner horizon bounds (days)
	MinWindowDays = 1
	MaxWindowDays = 7

	// Horizon used by the background refresh when evaluating alerts
	AlertHorizonHours = 48
)
