package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrLoad возвращается, когда файл конфигурации не удалось прочитать или разобрать
	ErrLoad = errors.New("config: failed to load")

	// ErrInvalid возвращается, когда значения конфигурации некорректны
	ErrInvalid = errors.New("config: invalid value")
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

type Config struct {
	Salon    SalonConfig    `toml:"salon"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Random   RandomConfig   `toml:"random"`
}

type SalonConfig struct {
	// Name ключ снимка в PostgreSQL; пустое значение заменяется на DefaultName
	Name string `toml:"name"`
	// DefaultName имя нового салона, если сохраненного состояния нет
	DefaultName string `toml:"default_name"`
}

type StorageConfig struct {
	Driver   string `toml:"driver"`
	FilePath string `toml:"file_path"`
	Autosave bool   `toml:"autosave"`
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RandomConfig struct {
	// Seed 0 означает зерно от текущего времени
	Seed int64 `toml:"seed"`
}

// Default конфигурация без файла: салон в salon_data.json, HTTP на 8080
func Default() *Config {
	return &Config{
		Salon: SalonConfig{
			DefaultName: domain.DefaultSalonName,
		},
		Storage: StorageConfig{
			Driver:   DriverFile,
			FilePath: "salon_data.json",
			Autosave: true,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "salon",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
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
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "salon",
		},
	}
}

// Load читает TOML поверх значений по умолчанию и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения и нормализует драйвер хранилища
func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))

	switch c.Storage.Driver {
	case DriverFile:
		if strings.TrimSpace(c.Storage.FilePath) == "" {
			return fmt.Errorf("%w: storage.file_path is required for the file driver", ErrInvalid)
		}
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for the postgres driver", ErrInvalid)
		}
		if c.Database.Port <= 0 || c.Database.Port > 65535 {
			return fmt.Errorf("%w: database.port %d out of range", ErrInvalid, c.Database.Port)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalid, c.Storage.Driver)
	}

	if err := domain.ValidateName(c.Salon.DefaultName); err != nil {
		return fmt.Errorf("%w: salon.default_name: %v", ErrInvalid, err)
	}
	if strings.TrimSpace(c.Salon.Name) == "" {
		c.Salon.Name = c.Salon.DefaultName
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalid, c.Server.HTTPPort)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with '/'", ErrInvalid)
	}
	return nil
}
