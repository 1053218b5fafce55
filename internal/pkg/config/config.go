package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, mailer credentials)
// - default: Values common across all environments (sweep cadence, flag window)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Mailer MailerConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	SweepInterval time.Duration `envconfig:"STORE_SWEEP_INTERVAL" default:"1s"`
	FlagWindow    time.Duration `envconfig:"STORE_FLAG_WINDOW" default:"3s"`
	SeedDemoData  bool          `envconfig:"STORE_SEED_DEMO_DATA" default:"true"`
}

type MailerConfig struct {
	BaseURL    string        `envconfig:"MAILER_BASE_URL" default:"https://api.emailjs.com"`
	ServiceID  string        `envconfig:"MAILER_SERVICE_ID" default:""`
	TemplateID string        `envconfig:"MAILER_TEMPLATE_ID" default:""`
	PublicKey  string        `envconfig:"MAILER_PUBLIC_KEY" default:""`
	Timeout    time.Duration `envconfig:"MAILER_TIMEOUT" default:"5s"`
}

// Enabled reports whether the transactional-email side channel is configured.
// An unconfigured mailer is not an error; claims simply skip the dispatch.
func (c *MailerConfig) Enabled() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Indiana/Indianapolis"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-14400"` // -4*60*60 (EDT)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			SweepInterval: 10 * time.Millisecond,
			FlagWindow:    50 * time.Millisecond,
			SeedDemoData:  false,
		},
		Mailer: MailerConfig{
			BaseURL: "http://localhost:0", // Never dialed unless a test configures keys
			Timeout: time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Indiana/Indianapolis",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -14400,
		},
	}
}
