package config

// Environment variable names
const (
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvAPIKey          = "API_KEY"
	EnvRewardTablePath = "REWARD_TABLE_PATH"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
)

// DefaultRewardTablePath is where the versioned queue reward tables live
// relative to the working directory.
const DefaultRewardTablePath = "configs/reward_tables.json"
