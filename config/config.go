package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config is assembled once at startup and passed by value.
type Config struct {
	App  AppConfig
	DB   DatabaseConfig
	MQTT MQTTConfig
}

type AppConfig struct {
	Port            string        `env:"PORT" env-default:"3000"`
	SeedFile        string        `env:"SEED_FILE" env-default:"users.csv"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds the store connection parameters. URI, when set,
// takes precedence over the discrete fields.
type DatabaseConfig struct {
	Driver   string `env:"DB_DRIVER" env-default:"postgres"`
	URI      string `env:"DB_URI" env-default:""`
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Name     string `env:"DB_NAME" env-default:"todoapp"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD" env-default:"postgres"`
	Port     int    `env:"DB_PORT" env-default:"0"`
}

type MQTTConfig struct {
	URL      string `env:"MQTT_URL" env-default:""`
	ClientID string `env:"MQTT_CLIENT_ID" env-default:"go-todo"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	cfg.DB.Driver = strings.ToLower(strings.TrimSpace(cfg.DB.Driver))
	if cfg.DB.Driver == "pgx" {
		cfg.DB.Driver = DriverPostgres
	}
	if cfg.DB.Driver != DriverPostgres && cfg.DB.Driver != DriverMySQL {
		return Config{}, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMySQL, cfg.DB.Driver)
	}
	if cfg.DB.Port < 0 || cfg.DB.Port > 65535 {
		return Config{}, fmt.Errorf("DB_PORT out of range: %d", cfg.DB.Port)
	}
	return cfg, nil
}

// Addr returns host:port, filling in the driver's default port when unset.
func (d DatabaseConfig) Addr() string {
	port := d.Port
	if port == 0 {
		port = 5432
		if d.Driver == DriverMySQL {
			port = 3306
		}
	}
	return net.JoinHostPort(d.Host, strconv.Itoa(port))
}
