package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"pawfect-match/internal/adapters/storage"
	"pawfect-match/internal/platform/logger"
)

// Config se arma desde variables de entorno, con defaults para desarrollo local.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string

	LogLevel  logger.Level
	LogFormat logger.Format

	// Store
	StoreDriver    string // sqlite (default) | postgres | memory (solo desarrollo/tests, no persiste)
	DBDSN          string
	SQLitePath     string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnMaxLife  time.Duration

	// HTTP
	AuthRequired    bool
	MetricsEnabled  bool
	SwaggerEnabled  bool
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// valores que no se pudieron interpretar; Validate los reporta
	invalid []error
}

// Load no falla: los valores mal formados quedan registrados y los devuelve Validate.
func Load() *Config {
	l := &loader{}
	cfg := &Config{
		AppName: l.getenv("APP_NAME", "pawfect-match"),
		Env:     l.getenv("APP_ENV", "development"),
		Port:    l.getenv("PORT", "8080"),

		LogLevel:  logger.ParseLevel(l.getenv("LOG_LEVEL", "info")),
		LogFormat: logger.ParseFormat(l.getenv("LOG_FORMAT", "text")),

		StoreDriver:    strings.ToLower(l.getenv("STORE_DRIVER", storage.DriverSQLite)),
		DBDSN:          l.getenv("DB_DSN", ""),
		SQLitePath:     l.getenv("SQLITE_PATH", "data/pawfect.db"),
		DBMaxOpenConns: l.getint("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: l.getint("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLife:  l.getdur("DB_CONN_MAX_LIFETIME", 30*time.Minute),

		AuthRequired:    l.getbool("AUTH_REQUIRED", false),
		MetricsEnabled:  l.getbool("METRICS_ENABLED", true),
		SwaggerEnabled:  l.getbool("SWAGGER_ENABLED", true),
		ReadTimeout:     l.getdur("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    l.getdur("HTTP_WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: l.getdur("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	cfg.invalid = l.errs
	return cfg
}

// Validate rechaza drivers desconocidos, DSN faltantes y valores mal formados.
func (c *Config) Validate() error {
	errs := append([]error(nil), c.invalid...)

	switch c.StoreDriver {
	case storage.DriverMemory:
	case storage.DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for sqlite store"))
		}
	case storage.DriverPostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			errs = append(errs, errors.New("DB_DSN is required for postgres store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}

	if _, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("invalid PORT %q", c.Port))
	}

	return errors.Join(errs...)
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// Storage traduce la configuración al formato del paquete storage.
func (c *Config) Storage() storage.Config {
	return storage.Config{
		Driver:          c.StoreDriver,
		DSN:             c.DBDSN,
		SQLitePath:      c.SQLitePath,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLife,
	}
}

// Logger traduce la configuración a opciones de logger.
func (c *Config) Logger() logger.Options {
	return logger.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		App:    c.AppName,
		Env:    c.Env,
	}
}

type loader struct {
	errs []error
}

func (l *loader) getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (l *loader) getbool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			l.errs = append(l.errs, fmt.Errorf("invalid boolean for %s: %q", key, v))
			return def
		}
		return b
	}
	return def
}

func (l *loader) getint(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			l.errs = append(l.errs, fmt.Errorf("invalid int for %s: %q", key, v))
			return def
		}
		return i
	}
	return def
}

func (l *loader) getdur(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			l.errs = append(l.errs, fmt.Errorf("invalid duration for %s: %q", key, v))
			return def
		}
		return d
	}
	return def
}
