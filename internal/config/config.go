package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	StoreDriverXLSX     = "xlsx"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	CacheDriverNone   = "none"
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"

	LockNone  = "none"
	LockLocal = "local"
	LockRedis = "redis"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Store      StoreConfig      `toml:"store"`
	Database   DatabaseConfig   `toml:"database"`
	Redis      RedisConfig      `toml:"redis"`
	Mail       MailConfig       `toml:"mail"`
	Attachment AttachmentConfig `toml:"attachment"`
	Session    SessionConfig    `toml:"session"`
	Booking    BookingConfig    `toml:"booking"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования.
// В имени файла можно указать {date}, например "logs/booking_app_{date}.log".
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StoreConfig параметры таблицы бронирований
type StoreConfig struct {
	Driver            string      `toml:"driver"`
	XLSXPath          string      `toml:"xlsx_path"`
	ReservationsSheet string      `toml:"reservations_sheet"`
	CredentialsSheet  string      `toml:"credentials_sheet"`
	ManagementSheet   string      `toml:"management_sheet"`
	Cache             string      `toml:"cache"`
	CacheTTL          int         `toml:"cache_ttl"` // секунды
	Lock              string      `toml:"lock"`
	LockTimeout       int         `toml:"lock_timeout"` // секунды
	SettleDelayMs     int         `toml:"settle_delay_ms"`
	Retry             RetryConfig `toml:"retry"`
}

type RetryConfig struct {
	MaxAttempts int `toml:"max_attempts"`
	BaseDelayMs int `toml:"base_delay_ms"`
}

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

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// MailConfig параметры SMTP для писем-подтверждений
type MailConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	Subject  string `toml:"subject"`
}

// AttachmentConfig источник вложения письма: URL или путь к файлу
type AttachmentConfig struct {
	Source  string `toml:"source"`
	Name    string `toml:"name"`
	Timeout int    `toml:"timeout"` // секунды
}

type SessionConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

type BookingConfig struct {
	Timezone string `toml:"timezone"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Location возвращает часовой пояс склада
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load читает конфигурацию из TOML файла и переменных окружения.
// Переменные окружения (и файл .env, если есть) имеют приоритет над файлом.
// Отсутствующий файл не ошибка: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Mail.Host, "EMAIL_HOST")
	setString(&c.Mail.Username, "EMAIL_USER")
	setString(&c.Mail.Password, "EMAIL_PASSWORD")
	setString(&c.Store.Driver, "STORE_DRIVER")
	setString(&c.Store.XLSXPath, "XLSX_PATH")
	setString(&c.Database.Host, "DATABASE_HOST")
	setString(&c.Database.User, "DATABASE_USER")
	setString(&c.Database.Password, "DATABASE_PASSWORD")
	setString(&c.Database.DBName, "DATABASE_NAME")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Attachment.Source, "ATTACHMENT_URL")

	if err := setInt(&c.Mail.Port, "EMAIL_PORT"); err != nil {
		return err
	}
	if err := setInt(&c.Database.Port, "DATABASE_PORT"); err != nil {
		return err
	}
	return nil
}

func (c *Config) applyDefaults() {
	defaultInt(&c.Server.HTTPPort, 8080)
	defaultInt(&c.Server.ReadTimeout, 15)
	defaultInt(&c.Server.WriteTimeout, 30)
	defaultInt(&c.Server.IdleTimeout, 60)
	defaultInt(&c.Server.ShutdownTimeout, 10)

	defaultString(&c.Logs.File, "logs/booking_app_{date}.log")
	defaultString(&c.Logs.Level, "info")

	defaultString(&c.Metrics.Path, "/metrics")
	defaultString(&c.Metrics.ServiceName, "delivery_booking")

	defaultString(&c.Store.Driver, StoreDriverXLSX)
	defaultString(&c.Store.XLSXPath, "data/proveedores.xlsx")
	defaultString(&c.Store.ReservationsSheet, "proveedor_reservas")
	defaultString(&c.Store.CredentialsSheet, "proveedor_credencial")
	defaultString(&c.Store.ManagementSheet, "proveedor_gestion")
	defaultString(&c.Store.Cache, CacheDriverMemory)
	defaultInt(&c.Store.CacheTTL, 60)
	defaultString(&c.Store.Lock, LockNone)
	defaultInt(&c.Store.LockTimeout, 10)
	defaultInt(&c.Store.SettleDelayMs, 1000)
	defaultInt(&c.Store.Retry.MaxAttempts, 3)
	defaultInt(&c.Store.Retry.BaseDelayMs, 1000)

	defaultString(&c.Database.Host, "localhost")
	defaultInt(&c.Database.Port, 5432)
	defaultString(&c.Database.SSLMode, "disable")
	defaultInt(&c.Database.MaxOpenConns, 10)
	defaultInt(&c.Database.MaxIdleConns, 5)
	defaultInt(&c.Database.ConnMaxLifetime, 300)

	defaultString(&c.Redis.Addr, "localhost:6379")
	defaultString(&c.Redis.KeyPrefix, "delivery_booking:")

	defaultInt(&c.Mail.Port, 587)
	defaultString(&c.Mail.From, c.Mail.Username)

	defaultString(&c.Attachment.Name, "instructivo.pdf")
	defaultInt(&c.Attachment.Timeout, 10)

	defaultInt(&c.Session.TTLMinutes, 60)

	defaultString(&c.Booking.Timezone, "Local")
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	var problems []string

	switch c.Store.Driver {
	case StoreDriverXLSX, StoreDriverPostgres, StoreDriverMemory:
	default:
		problems = append(problems, fmt.Sprintf("store.driver %q is not one of xlsx, postgres, memory", c.Store.Driver))
	}

	switch c.Store.Cache {
	case CacheDriverNone, CacheDriverMemory, CacheDriverRedis:
	default:
		problems = append(problems, fmt.Sprintf("store.cache %q is not one of none, memory, redis", c.Store.Cache))
	}

	switch c.Store.Lock {
	case LockNone, LockLocal, LockRedis:
	default:
		problems = append(problems, fmt.Sprintf("store.lock %q is not one of none, local, redis", c.Store.Lock))
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port %d is out of range", c.Server.HTTPPort))
	}
	if c.Mail.Port <= 0 || c.Mail.Port > 65535 {
		problems = append(problems, fmt.Sprintf("mail.port %d is out of range", c.Mail.Port))
	}
	if c.Store.Driver == StoreDriverPostgres && c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required for the postgres driver")
	}
	if c.Store.Retry.MaxAttempts < 1 {
		problems = append(problems, "store.retry.max_attempts must be positive")
	}
	if _, err := c.Booking.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("booking.timezone: %v", err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	*dst = n
	return nil
}

func defaultString(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

func defaultInt(dst *int, value int) {
	if *dst == 0 {
		*dst = value
	}
}
