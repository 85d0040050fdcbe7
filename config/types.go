package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Alijeyrad/notifications/pkg/constants"
)

type Config struct {
	Database       DatabaseConfig       `mapstructure:"database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Server         ServerConfig         `mapstructure:"server"`
	Authentication AuthenticationConfig `mapstructure:"authentication"`
	Email          EmailConfig          `mapstructure:"email"`
	Nats           NatsConfig           `mapstructure:"nats"`
	Observability  ObservabilityConfig  `mapstructure:"observability"`
	Logging        LoggingConfig        `mapstructure:"logging"`
	Notifications  NotificationsConfig  `mapstructure:"notifications"`
}

type NatsConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	URL           string `mapstructure:"url" yaml:"url"`
	NotifySubject string `mapstructure:"notify_subject"`
	QueueGroup    string `mapstructure:"queue_group"`
}

type DatabaseConfig struct {
	// Driver is either "postgres" or "sqlite".
	Driver     string                  `mapstructure:"driver"`
	Path       string                  `mapstructure:"path"` // sqlite only
	Host       string                  `mapstructure:"host"`
	Port       int                     `mapstructure:"port"`
	User       string                  `mapstructure:"user"`
	Password   string                  `mapstructure:"password"`
	DBName     string                  `mapstructure:"dbname"`
	SSLMode    string                  `mapstructure:"sslmode"`
	Pool       DatabasePoolConfig      `mapstructure:"pool"`
	Migrations DatabaseMigrationConfig `mapstructure:"migrations"`
	// Debug logs every SQL statement at debug level.
	Debug bool `mapstructure:"debug"`
}

type DatabasePoolConfig struct {
	MaxOpenConns       int `mapstructure:"max_open_conns"`
	MaxIdleConns       int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMin int `mapstructure:"conn_max_lifetime_minutes"`
}

type DatabaseMigrationConfig struct {
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	// Enabled turns on session checks and the shared rate-limit store.
	Enabled             bool   `mapstructure:"enabled"`
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type ServerConfig struct {
	Port           int    `mapstructure:"port"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	Environment    string `mapstructure:"environment"`
	// Databases lists the database names `system init` creates.
	Databases []string `mapstructure:"databases"`
	// BasePath is where the notification routes are mounted.
	BasePath string `mapstructure:"base_path"`
	// LoginURL receives unauthenticated page requests, with ?next=<path>.
	LoginURL string `mapstructure:"login_url"`
	// AllowedHosts are the hosts a `next` redirect may point at.
	AllowedHosts []string   `mapstructure:"allowed_hosts"`
	RequireHTTPS bool       `mapstructure:"require_https"`
	CORS         CORSConfig `mapstructure:"cors"`
	RateLimit    RateLimit  `mapstructure:"rate_limit"`
}

type RateLimit struct {
	Max               int `mapstructure:"max"`
	ExpirationSeconds int `mapstructure:"expiration_seconds"`
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type AuthenticationConfig struct {
	Paseto PasetoConfig `mapstructure:"paseto"`
	// CookieName is checked when no Authorization header is sent, so that
	// browser page requests can authenticate.
	CookieName string `mapstructure:"cookie_name"`
}

type PasetoConfig struct {
	Mode             string `mapstructure:"mode"`
	LocalKeyHex      string `mapstructure:"local_key_hex"`
	SecretKeyHex     string `mapstructure:"secret_key_hex"`
	PublicKeyHex     string `mapstructure:"public_key_hex"`
	Issuer           string `mapstructure:"issuer"`
	Audience         string `mapstructure:"audience"`
	AccessTTLMinutes int    `mapstructure:"access_ttl_minutes"`
}

type EmailConfig struct {
	Enabled bool       `mapstructure:"enabled"`
	From    string     `mapstructure:"from"`
	BaseURL string     `mapstructure:"base_url"`
	SMTP    SMTPConfig `mapstructure:"smtp"`
}

type SMTPConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	UseTLS         bool   `mapstructure:"use_tls"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`        // e.g. "logs/app.log"
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after N MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"` // e.g. "http://localhost:3100"
	Username string `mapstructure:"username"` // for Grafana Cloud basic auth
	Password string `mapstructure:"password"`
}

// NotificationsConfig is resolved once per process and handed to the
// notification service and handlers.
type NotificationsConfig struct {
	PaginateBy int  `mapstructure:"paginate_by"`
	SoftDelete bool `mapstructure:"soft_delete"`
	// NumToFetch is the default size of the live lists (?max= overrides it).
	NumToFetch              int                `mapstructure:"num_to_fetch"`
	SlugOffset              int64              `mapstructure:"slug_offset"`
	ResolverCacheTTLSeconds int                `mapstructure:"resolver_cache_ttl_seconds"`
	ObjectTypes             []ObjectTypeConfig `mapstructure:"object_types"`
}

// ObjectTypeConfig describes how to render references of one type.
// Templates may use {type}, {id} and, for NotificationURL, {slug}.
type ObjectTypeConfig struct {
	Name            string `mapstructure:"name"`
	Label           string `mapstructure:"label"`
	URL             string `mapstructure:"url"`
	NotificationURL string `mapstructure:"notification_url"`
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Server.Environment {
	case "", constants.EnvDevelopment, constants.EnvProduction, constants.EnvTest:
	default:
		errs = append(errs, fmt.Errorf("server.environment: unknown value %q", c.Server.Environment))
	}

	switch strings.ToLower(c.Database.Driver) {
	case "", "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("database.driver: unsupported driver %q", c.Database.Driver))
	}

	if c.Notifications.PaginateBy <= 0 {
		errs = append(errs, errors.New("notifications.paginate_by must be positive"))
	}
	if c.Notifications.NumToFetch <= 0 {
		errs = append(errs, errors.New("notifications.num_to_fetch must be positive"))
	}
	if c.Notifications.SlugOffset < 0 {
		errs = append(errs, errors.New("notifications.slug_offset must not be negative"))
	}

	seen := make(map[string]bool, len(c.Notifications.ObjectTypes))
	for i, ot := range c.Notifications.ObjectTypes {
		if ot.Name == "" {
			errs = append(errs, fmt.Errorf("notifications.object_types[%d]: name is required", i))
			continue
		}
		if seen[ot.Name] {
			errs = append(errs, fmt.Errorf("notifications.object_types: duplicate type %q", ot.Name))
		}
		seen[ot.Name] = true
	}

	return errors.Join(errs...)
}

// InboxURL is the absolute URL of the "all notifications" page, used in
// emails.
func (c *Config) InboxURL() string {
	return strings.TrimRight(c.Email.BaseURL, "/") + strings.TrimRight(c.Server.BasePath, "/") + "/"
}
