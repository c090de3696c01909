package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment string
	Port        string

	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	DBSSLMode     string
	DBMaxRetries  int
	DBAutoMigrate bool

	RedisAddr string

	KafkaBroker        string
	KafkaGroupID       string
	OutboxPollInterval time.Duration

	JWTSecret     string
	RBACModelPath string

	Timezone        string
	GraceMinutes    int
	ShiftMatinStart string
	ShiftMatinEnd   string
	ShiftSoirStart  string
	ShiftSoirEnd    string

	RateLimitPerSecond float64
	RateLimitBurst     int
}

func Load() Config {
	return Config{
		Environment: getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "3000"),

		DBHost:        getEnv("DB_HOST", "localhost"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "bey"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		DBMaxRetries:  getEnvInt("DB_MAX_RETRIES", 5),
		DBAutoMigrate: getEnvBool("DB_AUTO_MIGRATE", false),

		RedisAddr: getEnv("REDIS_ADDR", ""),

		KafkaBroker:        getEnv("KAFKA_BROKER", ""),
		KafkaGroupID:       getEnv("KAFKA_GROUP_ID", "bey-attendance"),
		OutboxPollInterval: getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		RBACModelPath: getEnv("RBAC_MODEL_PATH", "internal/rbac/infra/model.conf"),

		Timezone:        getEnv("APP_TIMEZONE", "Africa/Tunis"),
		GraceMinutes:    getEnvInt("ATTENDANCE_GRACE_MINUTES", 10),
		ShiftMatinStart: getEnv("SHIFT_MATIN_START", "08:00"),
		ShiftMatinEnd:   getEnv("SHIFT_MATIN_END", "16:00"),
		ShiftSoirStart:  getEnv("SHIFT_SOIR_START", "16:00"),
		ShiftSoirEnd:    getEnv("SHIFT_SOIR_END", "00:00"),

		RateLimitPerSecond: getEnvFloat("RATE_LIMIT_PER_SECOND", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate checks the settings the HTTP server needs. Worker and consumer
// processes additionally call RequireKafka.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DBHost) == "" || strings.TrimSpace(c.DBName) == "" {
		return fmt.Errorf("DB_HOST and DB_NAME are required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.IsProduction() && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters in production")
	}
	if c.GraceMinutes < 0 || c.GraceMinutes > 120 {
		return fmt.Errorf("ATTENDANCE_GRACE_MINUTES must be between 0 and 120")
	}
	if c.DBMaxRetries <= 0 {
		return fmt.Errorf("DB_MAX_RETRIES must be positive")
	}
	if c.RateLimitPerSecond <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

func (c Config) RequireKafka() error {
	if strings.TrimSpace(c.KafkaBroker) == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

func (c Config) Grace() time.Duration {
	return time.Duration(c.GraceMinutes) * time.Minute
}
