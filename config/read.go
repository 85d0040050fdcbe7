package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/Alijeyrad/notifications/pkg/constants"
)

// SetDefaults registers the values used when neither the config file nor the
// environment provides a key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.addr", "localhost:6379")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.timeout_seconds", 30)
	v.SetDefault("server.environment", constants.EnvDevelopment)
	v.SetDefault("server.base_path", "/inbox/notifications")
	v.SetDefault("server.login_url", "/accounts/login/")
	v.SetDefault("server.rate_limit.max", 60)
	v.SetDefault("server.rate_limit.expiration_seconds", 30)

	v.SetDefault("authentication.cookie_name", "access_token")
	v.SetDefault("authentication.paseto.mode", "local")
	v.SetDefault("authentication.paseto.access_ttl_minutes", 15)

	v.SetDefault("nats.notify_subject", "notifications.notify")
	v.SetDefault("nats.queue_group", "notifications")

	v.SetDefault("observability.service_name", constants.AppName)
	v.SetDefault("logging.level", "info")

	v.SetDefault("notifications.paginate_by", 20)
	v.SetDefault("notifications.soft_delete", false)
	v.SetDefault("notifications.num_to_fetch", 10)
	v.SetDefault("notifications.slug_offset", 110909)
	v.SetDefault("notifications.resolver_cache_ttl_seconds", 60)
}

func ReadConfig(configPath string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetConfigName(constants.ConfigName)
	v.SetConfigType(constants.ConfigFormat)
	v.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. NOTIFICATIONS_DATABASE_HOST overrides database.host
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read the config file (optional in Docker environments)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if os.Getenv(constants.EnvPrefix+"_DATABASE_HOST") == "" && os.Getenv(constants.EnvPrefix+"_DATABASE_PATH") == "" {
			return nil, fmt.Errorf("no config file in %q and no database settings in the environment: %w", configPath, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}
