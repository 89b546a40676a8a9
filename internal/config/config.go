package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddress string
	PostgresConn  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load читает конфигурацию из переменных окружения.
// POSTGRES_CONN обязателен, остальное имеет дефолты.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("SERVER_IDLE_TIMEOUT", "60s")

	cfg := &Config{
		ServerAddress:   viper.GetString("SERVER_ADDRESS"),
		PostgresConn:    viper.GetString("POSTGRES_CONN"),
		MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: viper.GetDuration("DB_CONN_MAX_LIFETIME"),
		ReadTimeout:     viper.GetDuration("SERVER_READ_TIMEOUT"),
		WriteTimeout:    viper.GetDuration("SERVER_WRITE_TIMEOUT"),
		IdleTimeout:     viper.GetDuration("SERVER_IDLE_TIMEOUT"),
	}

	if cfg.PostgresConn == "" {
		return nil, errors.New("POSTGRES_CONN env variable is not set")
	}
	return cfg, nil
}
