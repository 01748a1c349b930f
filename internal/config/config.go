package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // часовые пояса доступны и в образах без системной tzdata

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Виды источника бронирований
const (
	SourceAPI      = "api"
	SourcePostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server" yaml:"server"`
	Logs       LogsConfig       `toml:"logs" yaml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics" yaml:"metrics"`
	Database   DatabaseConfig   `toml:"database" yaml:"database"`
	Source     SourceConfig     `toml:"source" yaml:"source"`
	BookingAPI BookingAPIConfig `toml:"booking_api" yaml:"booking_api"`
	Auth       AuthConfig       `toml:"auth" yaml:"auth"`
	Refresh    RefreshConfig    `toml:"refresh" yaml:"refresh"`
	Calendar   CalendarConfig   `toml:"calendar" yaml:"calendar"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" yaml:"http_port"`
	ReadTimeout     int `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file" yaml:"file"`
	Level string `toml:"level" yaml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" yaml:"enabled"`
	Path        string `toml:"path" yaml:"path"`
	ServiceName string `toml:"service_name" yaml:"service_name"`
}

// DatabaseConfig используется только при source.kind = "postgres"
type DatabaseConfig struct {
	Host            string `toml:"host" yaml:"host"`
	Port            int    `toml:"port" yaml:"port"`
	User            string `toml:"user" yaml:"user"`
	Password        string `toml:"password" yaml:"password"`
	DBName          string `toml:"dbname" yaml:"dbname"`
	SSLMode         string `toml:"sslmode" yaml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" yaml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type SourceConfig struct {
	Kind string `toml:"kind" yaml:"kind"`
}

// BookingAPIConfig REST бэкенд бронирований, таймаут в секундах
type BookingAPIConfig struct {
	URL          string `toml:"url" yaml:"url"`
	Timeout      int    `toml:"timeout" yaml:"timeout"`
	ServiceToken string `toml:"service_token" yaml:"service_token"`
}

type AuthConfig struct {
	JWTSecret  string   `toml:"jwt_secret" yaml:"jwt_secret"`
	AdminRoles []string `toml:"admin_roles" yaml:"admin_roles"`
}

// RefreshConfig фоновая перезагрузка бронирований, таймаут в секундах
type RefreshConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Cron    string `toml:"cron" yaml:"cron"`
	Timeout int    `toml:"timeout" yaml:"timeout"`
}

type CalendarConfig struct {
	Timezone string `toml:"timezone" yaml:"timezone"`
	FeedName string `toml:"feed_name" yaml:"feed_name"`
}

// Location часовой пояс, в котором определяется "сегодня"
func (c CalendarConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Default конфигурация по умолчанию. Значения из файла накладываются поверх неё
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc-booking-calendar",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Source: SourceConfig{
			Kind: SourceAPI,
		},
		BookingAPI: BookingAPIConfig{
			Timeout: 10,
		},
		Auth: AuthConfig{
			AdminRoles: []string{"admin"},
		},
		Refresh: RefreshConfig{
			Enabled: true,
			Cron:    "*/5 * * * *",
			Timeout: 30,
		},
		Calendar: CalendarConfig{
			Timezone: "UTC",
			FeedName: "Bookings",
		},
	}
}

// Load загружает конфигурацию: .env (если есть), файл TOML или YAML (по расширению),
// затем переменные окружения SMC_* поверх файла
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrInvalidConfig, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse разбирает содержимое файла поверх Default. ext - расширение файла (.toml, .yaml, .yml)
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: yaml: %v", ErrInvalidConfig, err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("%w: toml: %v", ErrInvalidConfig, err)
		}
	}

	return cfg, nil
}

// applyEnv переопределяет секреты и адреса из окружения
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strVars := map[string]*string{
		"SMC_DB_PASSWORD":       &c.Database.Password,
		"SMC_DB_HOST":           &c.Database.Host,
		"SMC_JWT_SECRET":        &c.Auth.JWTSecret,
		"SMC_BOOKING_API_URL":   &c.BookingAPI.URL,
		"SMC_BOOKING_API_TOKEN": &c.BookingAPI.ServiceToken,
		"SMC_SOURCE_KIND":       &c.Source.Kind,
		"SMC_LOG_LEVEL":         &c.Logs.Level,
	}
	for name, target := range strVars {
		if v, ok := lookup(name); ok && v != "" {
			*target = v
		}
	}

	if v, ok := lookup("SMC_HTTP_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SMC_HTTP_PORT=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Server.HTTPPort = port
	}

	return nil
}

// normalize заполняет пустые значения, обнулённые в файле
func (c *Config) normalize() {
	def := Default()

	c.Source.Kind = strings.ToLower(strings.TrimSpace(c.Source.Kind))
	if c.Source.Kind == "" {
		c.Source.Kind = def.Source.Kind
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = def.Metrics.Path
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = def.Metrics.ServiceName
	}
	if c.Refresh.Cron == "" {
		c.Refresh.Cron = def.Refresh.Cron
	}
	if c.Calendar.Timezone == "" {
		c.Calendar.Timezone = def.Calendar.Timezone
	}
	if len(c.Auth.AdminRoles) == 0 {
		c.Auth.AdminRoles = def.Auth.AdminRoles
	}
	c.BookingAPI.URL = strings.TrimRight(c.BookingAPI.URL, "/")
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port %d out of range", c.Server.HTTPPort))
	}

	switch c.Source.Kind {
	case SourceAPI:
		if c.BookingAPI.URL == "" {
			problems = append(problems, "booking_api.url is required for source.kind=api")
		}
	case SourcePostgres:
		if c.Database.DBName == "" {
			problems = append(problems, "database.dbname is required for source.kind=postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("source.kind %q is not one of api, postgres", c.Source.Kind))
	}

	if c.Auth.JWTSecret == "" {
		problems = append(problems, "auth.jwt_secret is required")
	}

	if c.Refresh.Enabled {
		if _, err := cron.ParseStandard(c.Refresh.Cron); err != nil {
			problems = append(problems, fmt.Sprintf("refresh.cron %q: %v", c.Refresh.Cron, err))
		}
	}

	if _, err := c.Calendar.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("calendar.timezone %q: %v", c.Calendar.Timezone, err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
