package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	HTTP HTTP

	Cors CORS `validate:"required"`

	Kafka Kafka

	Postgres Postgres `validate:"required"`

	Cache Cache `validate:"required"`

	Payment Payment `validate:"required"`
}

type HTTP struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`
}

type Kafka struct {
	Enabled bool

	GroupID       string   `validate:"required_if=Enabled true"`
	Brokers       []string `validate:"required_if=Enabled true,dive,hostname_port"`
	PaymentsTopic string   `validate:"required_if=Enabled true"`
	EventsTopic   string   `validate:"required_if=Enabled true"`

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

	Migrate bool
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Driver    string        `validate:"required,oneof=memory redis"`
	Capacity  int           `validate:"gte=1"`
	TTL       time.Duration `validate:"gt=0"`
	RedisAddr string        `validate:"required_if=Driver redis"`
}

type Payment struct {
	Provider   string `validate:"required"`
	BaseURL    string `validate:"required,url"`
	SecretKey  string
	Currency   string        `validate:"required,len=3"`
	Timeout    time.Duration `validate:"gt=0"`
	VerifySkip bool

	// Шаблоны с {id} на месте идентификатора заказа
	CallbackURL string `validate:"required,contains={id}"`
	ReturnURL   string `validate:"required,contains={id}"`
}

var ErrUnverifiedPayments = errors.New("payment verification must be enabled in production")

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		HTTP: HTTP{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "5000"),
		},

		Cors: CORS{
			AllowedOrigins: envList("CLIENT_URL", "http://localhost:3000"),
		},

		Kafka: Kafka{
			Enabled:       envBool("KAFKA_ENABLED", false),
			GroupID:       env("KAFKA_GROUP_ID", "storefront-order-service"),
			PaymentsTopic: env("KAFKA_PAYMENTS_TOPIC", "payments"),
			EventsTopic:   env("KAFKA_EVENTS_TOPIC", "order-events"),
			Brokers:       envList("KAFKA_BROKERS", "localhost:9092"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			Migrate: envBool("POSTGRES_MIGRATE", true),
		},

		Cache: Cache{
			Driver:    env("CACHE_DRIVER", "memory"),
			Capacity:  envInt("CACHE_CAPACITY", 1000),
			TTL:       envDuration("CACHE_TTL", 10*time.Minute),
			RedisAddr: env("REDIS_ADDR", ""),
		},

		Payment: Payment{
			Provider:    env("PAYMENT_PROVIDER", "chapa"),
			BaseURL:     env("CHAPA_BASE_URL", "https://api.chapa.co"),
			SecretKey:   env("CHAPA_SECRET_KEY", ""),
			Currency:    env("PAYMENT_CURRENCY", "ETB"),
			Timeout:     envDuration("PAYMENT_TIMEOUT", 10*time.Second),
			VerifySkip:  envBool("PAYMENT_VERIFY_SKIP", false),
			CallbackURL: env("PAYMENT_CALLBACK_URL", "http://localhost:5000/api/payments/callback?trx_ref={id}"),
			ReturnURL:   env("PAYMENT_RETURN_URL", "http://localhost:3000/order-success/{id}"),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Env == "production" && (c.Payment.VerifySkip || c.Payment.SecretKey == "") {
		return ErrUnverifiedPayments
	}
	return nil
}

// envParse возвращает fallback, если переменная не задана, пуста или не разбирается.
func envParse[T any](key string, fallback T, parse func(string) (T, error)) T {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	v, err := parse(value)
	if err != nil {
		return fallback
	}
	return v
}

func env(key, fallback string) string {
	return envParse(key, fallback, func(s string) (string, error) { return s, nil })
}

func envInt(key string, fallback int) int {
	return envParse(key, fallback, strconv.Atoi)
}

func envBool(key string, fallback bool) bool {
	return envParse(key, fallback, strconv.ParseBool)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	return envParse(key, fallback, time.ParseDuration)
}

// envList список через запятую, пустые элементы отбрасываются
func envList(key, fallback string) []string {
	var res []string
	for _, part := range strings.Split(env(key, fallback), ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}
