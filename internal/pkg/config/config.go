package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, mail account)
// - default: Values common across all environments (timeouts, policy constants)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Mail    MailConfig
	Overdue OverdueConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type MailConfig struct {
	Host     string `envconfig:"MAIL_HOST" required:"true"`
	Port     int    `envconfig:"MAIL_PORT" default:"587"`
	Username string `envconfig:"MAIL_USERNAME" required:"true"`
	Password string `envconfig:"MAIL_PASSWORD" required:"true"`
	From     string `envconfig:"MAIL_FROM" required:"true"`
}

// OverdueConfig drives the periodic late-loan scan. A loan is overdue once its
// loan date is strictly older than ThresholdDays before the scan day.
type OverdueConfig struct {
	ThresholdDays int           `envconfig:"OVERDUE_THRESHOLD_DAYS" default:"4"`
	ScanInterval  time.Duration `envconfig:"OVERDUE_SCAN_INTERVAL" default:"24h"`
	Subject       string        `envconfig:"OVERDUE_MAIL_SUBJECT" default:"Livro com empréstimo atrasado."`
	Message       string        `envconfig:"OVERDUE_MAIL_MESSAGE" default:"Você tem um empréstimo atrasado. Favor devolver o livro."`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
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
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		Overdue: OverdueConfig{
			ThresholdDays: 4,
			ScanInterval:  24 * time.Hour,
			Subject:       "Livro com empréstimo atrasado.",
			Message:       "Você tem um empréstimo atrasado. Favor devolver o livro.",
		},
	}
}
