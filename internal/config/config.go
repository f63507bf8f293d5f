package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultAdminPassword is hashed at start-up when ADMIN_PASSWORD_HASH is unset.
const DefaultAdminPassword = "kriuke123"

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Store  StoreConfig
	Admin  AdminConfig
	JWT    JWTConfig
	Shop   ShopConfig
	Kafka  KafkaConfig
}

type ServerConfig struct {
	Addr   string
	AppEnv string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// StoreConfig selects the key/value backend. Driver is one of memory, file,
// postgres or redis.
type StoreConfig struct {
	Driver        string
	Dir           string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type AdminConfig struct {
	Username     string
	PasswordHash string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type ShopConfig struct {
	WhatsApp string
	BaseURL  string
}

// KafkaConfig enables order event publishing when Brokers is non-empty.
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	Producer string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Addr:   getEnv("KRIUKE_ADDR", ":8080"),
			AppEnv: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Store: StoreConfig{
			Driver:        getEnv("STORE_DRIVER", "file"),
			Dir:           getEnv("STORE_DIR", "./data"),
			DatabaseURL:   getEnv("DATABASE_URL", ""),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "arjune"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "kriuke-dev-secret"),
			TTL:    time.Duration(getEnvInt("JWT_TTL_HOURS", 72)) * time.Hour,
		},
		Shop: ShopConfig{
			WhatsApp: getEnv("SHOP_WHATSAPP", "6282349786916"),
			BaseURL:  getEnv("SHOP_BASE_URL", "https://kriuke.example"),
		},
		Kafka: KafkaConfig{
			Brokers:  splitCSV(getEnv("KAFKA_BROKERS", "")),
			Topic:    getEnv("KAFKA_TOPIC_ORDERS", "storefront.order.submitted"),
			Producer: getEnv("SERVICE_NAME", "kriuke-storefront"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
