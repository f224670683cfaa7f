package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	App       AppConfig       `toml:"app"`
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	Booking   BookingConfig   `toml:"booking"`
	Mail      MailConfig      `toml:"mail"`
	Uploads   UploadsConfig   `toml:"uploads"`
	Admin     AdminConfig     `toml:"admin"`
}

// AppConfig общие параметры приложения
type AppConfig struct {
	Name     string `toml:"name"`
	Env      string `toml:"env"`      // production включает rate limiting
	Timezone string `toml:"timezone"` // часовой пояс студии, например Europe/Berlin
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`

	// Прокси, которым доверяем X-Forwarded-For (IP или CIDR).
	// Пусто - клиентом считается адрес соединения
	TrustedProxies []string `toml:"trusted_proxies"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки хранилища счётчиков rate limiter
type RedisConfig struct {
	Addr     string `toml:"addr"` // пусто - rate limiting выключен
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Timeout  int    `toml:"timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
	JSON  bool   `toml:"json"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PolicyConfig лимит действий в окне
type PolicyConfig struct {
	Limit         int `toml:"limit"`
	WindowSeconds int `toml:"window_seconds"`
}

// Window возвращает длительность окна
func (p PolicyConfig) Window() time.Duration {
	return time.Duration(p.WindowSeconds) * time.Second
}

// RateLimitConfig политики для публичных форм
type RateLimitConfig struct {
	Booking PolicyConfig `toml:"booking"`
	Contact PolicyConfig `toml:"contact"`
	Upload  PolicyConfig `toml:"upload"`
}

// BookingConfig правила записи
type BookingConfig struct {
	MinNoticeMinutes int `toml:"min_notice_minutes"` // 0 - без ограничения
	MaxAttempts      int `toml:"max_attempts"`       // попытки serializable транзакции
}

// MailConfig настройки SMTP
type MailConfig struct {
	Enabled     bool   `toml:"enabled"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Username    string `toml:"username"`
	Password    string `toml:"password"`
	From        string `toml:"from"`
	StudioEmail string `toml:"studio_email"`
	Timeout     int    `toml:"timeout"` // секунды на одно письмо, включая соединение
}

// UploadsConfig настройки загрузки референсов
type UploadsConfig struct {
	CloudinaryURL string `toml:"cloudinary_url"` // пусто - загрузки выключены
	Folder        string `toml:"folder"`
	MaxBytes      int64  `toml:"max_bytes"`
}

// AdminConfig доступ к админке
type AdminConfig struct {
	Token string `toml:"token"` // пусто - маршруты админки не регистрируются
}

// IsProduction returns true if the service runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

// Location returns the studio time zone
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

// Load загружает конфигурацию из TOML файла, затем .env и переменные окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"APP_ENV":           &c.App.Env,
		"DATABASE_PASSWORD": &c.Database.Password,
		"REDIS_ADDR":        &c.Redis.Addr,
		"REDIS_PASSWORD":    &c.Redis.Password,
		"ADMIN_TOKEN":       &c.Admin.Token,
		"CLOUDINARY_URL":    &c.Uploads.CloudinaryURL,
		"SMTP_PASSWORD":     &c.Mail.Password,
	}
	for name, field := range overrides {
		if v, ok := os.LookupEnv(name); ok {
			*field = strings.TrimSpace(v)
		}
	}
}

func (c *Config) applyDefaults() {
	setString(&c.App.Name, "inkline-studio")
	setString(&c.App.Env, "development")
	setString(&c.App.Timezone, "UTC")

	setInt(&c.Server.HTTPPort, 8080)
	setInt(&c.Server.ReadTimeout, 10)
	setInt(&c.Server.WriteTimeout, 30)
	setInt(&c.Server.IdleTimeout, 60)
	setInt(&c.Server.ShutdownTimeout, 10)

	setString(&c.Database.Host, "localhost")
	setInt(&c.Database.Port, 5432)
	setString(&c.Database.SSLMode, "disable")
	setInt(&c.Database.MaxOpenConns, 20)
	setInt(&c.Database.MaxIdleConns, 5)
	setInt(&c.Database.ConnMaxLifetime, 300)

	setInt(&c.Redis.Timeout, 2)

	setString(&c.Logs.Level, "info")

	setString(&c.Metrics.Path, "/metrics")
	setString(&c.Metrics.ServiceName, c.App.Name)

	setPolicy(&c.RateLimit.Booking, 5, 3600)
	setPolicy(&c.RateLimit.Contact, 3, 3600)
	setPolicy(&c.RateLimit.Upload, 10, 3600)

	setInt(&c.Booking.MaxAttempts, 3)

	setInt(&c.Mail.Port, 587)
	setInt(&c.Mail.Timeout, 10)

	setString(&c.Uploads.Folder, "references")
	if c.Uploads.MaxBytes == 0 {
		c.Uploads.MaxBytes = 10 << 20
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port %d out of range", c.Server.HTTPPort))
	}
	for _, proxy := range c.Server.TrustedProxies {
		if !isIPOrCIDR(proxy) {
			problems = append(problems, fmt.Sprintf("server.trusted_proxies: %q is not an IP or CIDR", proxy))
		}
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}
	if c.Database.User == "" {
		problems = append(problems, "database.user is required")
	}
	if _, err := c.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("app.timezone %q: %v", c.App.Timezone, err))
	}
	for name, p := range map[string]PolicyConfig{
		"booking": c.RateLimit.Booking,
		"contact": c.RateLimit.Contact,
		"upload":  c.RateLimit.Upload,
	} {
		if p.Limit <= 0 || p.WindowSeconds <= 0 {
			problems = append(problems, fmt.Sprintf("ratelimit.%s: limit and window_seconds must be positive", name))
		}
	}
	if c.Booking.MinNoticeMinutes < 0 {
		problems = append(problems, "booking.min_notice_minutes must not be negative")
	}
	if c.Mail.Enabled {
		if c.Mail.Host == "" || c.Mail.From == "" || c.Mail.StudioEmail == "" {
			problems = append(problems, "mail: host, from and studio_email are required when enabled")
		}
	}
	if c.Uploads.MaxBytes < 0 {
		problems = append(problems, "uploads.max_bytes must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func isIPOrCIDR(v string) bool {
	v = strings.TrimSpace(v)
	if strings.Contains(v, "/") {
		_, _, err := net.ParseCIDR(v)
		return err == nil
	}
	return net.ParseIP(v) != nil
}

func setString(field *string, def string) {
	if strings.TrimSpace(*field) == "" {
		*field = def
	}
}

func setInt(field *int, def int) {
	if *field == 0 {
		*field = def
	}
}

func setPolicy(p *PolicyConfig, limit, windowSeconds int) {
	setInt(&p.Limit, limit)
	setInt(&p.WindowSeconds, windowSeconds)
}
