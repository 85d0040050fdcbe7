package constants

const (
	AppName      = "notifications"
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "NOTIFICATIONS"

	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)
