package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Logger     LoggerConfig
	Scheduling SchedulingConfig
	Editor     EditorConfig
	Queue      QueueConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Issuer string
}

type LoggerConfig struct {
	Level  string
	File   string
	Format string
}

type SchedulingConfig struct {
	StepMinutes     int
	DefaultTimezone string
	MaxResults      int
}

type EditorConfig struct {
	FirstHour   int
	LastHour    int
	Days        int
	SaveLockTTL time.Duration
}

type QueueConfig struct {
	Concurrency int
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Init loads .env (if present) and the environment into the global config.
func Init() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("db.host"),
			Port:            v.GetInt("db.port"),
			User:            v.GetString("db.user"),
			Password:        v.GetString("db.password"),
			DBName:          v.GetString("db.name"),
			SSLMode:         v.GetString("db.sslmode"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("db.conn_max_lifetime"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("jwt.secret"),
			Issuer: v.GetString("jwt.issuer"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("log.level"),
			File:   v.GetString("log.file"),
			Format: v.GetString("log.format"),
		},
		Scheduling: SchedulingConfig{
			StepMinutes:     v.GetInt("scheduling.step_minutes"),
			DefaultTimezone: v.GetString("scheduling.default_timezone"),
			MaxResults:      v.GetInt("scheduling.max_results"),
		},
		Editor: EditorConfig{
			FirstHour:   v.GetInt("editor.first_hour"),
			LastHour:    v.GetInt("editor.last_hour"),
			Days:        v.GetInt("editor.days"),
			SaveLockTTL: v.GetDuration("editor.save_lock_ttl"),
		},
		Queue: QueueConfig{
			Concurrency: v.GetInt("queue.concurrency"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7070)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.name", "recruit")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", 30)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("jwt.issuer", "recruit-api")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("scheduling.step_minutes", 15)
	v.SetDefault("scheduling.default_timezone", "UTC")
	v.SetDefault("scheduling.max_results", 0)

	v.SetDefault("editor.first_hour", 0)
	v.SetDefault("editor.last_hour", 24)
	v.SetDefault("editor.days", 7)
	v.SetDefault("editor.save_lock_ttl", 30*time.Second)

	v.SetDefault("queue.concurrency", 5)
}

// Validate checks values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return ErrJWTSecretMissing
	}
	if c.Scheduling.StepMinutes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStep, c.Scheduling.StepMinutes)
	}
	if _, err := time.LoadLocation(c.Scheduling.DefaultTimezone); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimezone, c.Scheduling.DefaultTimezone)
	}
	if c.Editor.FirstHour < 0 || c.Editor.LastHour > 24 || c.Editor.FirstHour >= c.Editor.LastHour {
		return fmt.Errorf("%w: %d-%d", ErrInvalidEditorHours, c.Editor.FirstHour, c.Editor.LastHour)
	}
	if c.Editor.Days <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidEditorDays, c.Editor.Days)
	}
	return nil
}

// Get returns the loaded config; it panics if Init has not run.
func Get() *Config {
	cfg, ok := GetSafe()
	if !ok {
		panic("config: Get called before Init")
	}
	return cfg
}

// GetSafe returns the loaded config and whether Init has run.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}
