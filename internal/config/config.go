package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	DB       *DBconfig
	RabbitMq *RabbitMqconfig
	Srv      *Serviceconfig
	Auth     *Authconfig
	Log      *Loggerconfig
}

type DBconfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	Database   string
	MaxRetries int
}

type RabbitMqconfig struct {
	Host     string
	Port     int
	User     string
	Password string
	VHost    string
}

type Serviceconfig struct {
	DispatchServicePort string
}

// Authconfig holds the process-wide signing secret and algorithm identifier.
// Both are read once at startup and treated as immutable; an empty secret
// aborts startup before the server accepts a single request.
type Authconfig struct {
	JwtSecret    string
	JwtAlgorithm string
}

type Loggerconfig struct {
	Level string
}

var ErrEmptyJwtSecret = errors.New("JWT_SECRET is not set")

func New() (*Config, error) {
	getEnv := func(key, def string) string {
		val := os.Getenv(key)
		if val == "" {
			return def
		}
		return val
	}

	getEnvInt := func(key string, def int) int {
		valStr := os.Getenv(key)
		if valStr == "" {
			return def
		}
		val, err := strconv.Atoi(valStr)
		if err != nil {
			fmt.Printf("invalid %v, using default %v\n", key, def)
			return def
		}
		return val
	}

	cnf := &Config{
		DB: &DBconfig{
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnvInt("DB_PORT", 5432),
			User:       getEnv("DB_USER", "dispatch_user"),
			Password:   getEnv("DB_PASSWORD", "dispatch_pass"),
			Database:   getEnv("DB_NAME", "dispatch_db"),
			MaxRetries: getEnvInt("DB_MAX_RETRIES", 5),
		},
		RabbitMq: &RabbitMqconfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
			VHost:    getEnv("RABBITMQ_VHOST", ""),
		},
		Srv: &Serviceconfig{
			DispatchServicePort: getEnv("DISPATCH_SERVICE_PORT", "3000"),
		},
		Auth: &Authconfig{
			JwtSecret:    os.Getenv("JWT_SECRET"),
			JwtAlgorithm: getEnv("JWT_ALGORITHM", "HS256"),
		},
		Log: &Loggerconfig{
			Level: getEnv("LOG_LEVEL", "INFO"),
		},
	}

	if cnf.Auth.JwtSecret == "" {
		return nil, ErrEmptyJwtSecret
	}

	return cnf, nil
}
