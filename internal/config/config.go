package config

import (
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/pricing"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Redis Redis `validate:"required"`

	Auth Auth `validate:"required"`

	Cache Cache

	Email Email

	Rates Rates `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	ConnectAttempts int `validate:"gte=1"`
	MigrateOnStart  bool
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`

	WorkerConcurrency int `validate:"gte=1"`
}

type Auth struct {
	JWTSecret string `validate:"required,min=16"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

// Email is optional: notifications are only persisted when Region is empty.
type Email struct {
	Region string
	From   string `validate:"required_with=Region,omitempty,email"`
}

// Rates are required at start so the fee calculator never reads a missing value.
type Rates struct {
	DeliveryFeePerMile     float64 `validate:"gte=0"`
	ApplicationFeeRate     float64 `validate:"gte=0,lte=1"`
	InstantTransferFeeRate float64 `validate:"gte=0,lte=1"`
	CustomerCCRate         float64 `validate:"gte=0,lte=1"`
}

func (r Rates) Pricing() pricing.Rates {
	return pricing.Rates{
		DeliveryFeePerMile:     r.DeliveryFeePerMile,
		ApplicationFeeRate:     r.ApplicationFeeRate,
		InstantTransferFeeRate: r.InstantTransferFeeRate,
		CustomerCCRate:         r.CustomerCCRate,
	}
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "booking-service"),
			Topic:   env("KAFKA_TOPIC", "payments"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "booking"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			ConnectAttempts: envInt("POSTGRES_CONNECT_ATTEMPTS", 5),
			MigrateOnStart:  envBool("POSTGRES_MIGRATE_ON_START", true),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),

			WorkerConcurrency: envInt("NOTIFY_WORKER_CONCURRENCY", 5),
		},

		Auth: Auth{
			JWTSecret: env("JWT_SECRET", ""),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Email: Email{
			Region: env("SES_REGION", ""),
			From:   env("SES_FROM", ""),
		},

		Rates: Rates{
			DeliveryFeePerMile:     envFloat("DELIVERY_FEE_PER_MILE", -1),
			ApplicationFeeRate:     envFloat("APPLICATION_FEE_RATE", -1),
			InstantTransferFeeRate: envFloat("INSTANT_TRANSFER_FEE_RATE", -1),
			CustomerCCRate:         envFloat("CUSTOMER_CC_RATE", -1),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

// envFloat falls back when the variable is missing, not numeric or not finite;
// rates use a negative fallback so that validation rejects them.
func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
