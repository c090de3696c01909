package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "")
	t.Setenv("ATTENDANCE_GRACE_MINUTES", "")

	cfg := Load()

	assert.Equal(t, "Africa/Tunis", cfg.Timezone)
	assert.Equal(t, 10, cfg.GraceMinutes)
	assert.Equal(t, 10*time.Minute, cfg.Grace())
	assert.Equal(t, "08:00", cfg.ShiftMatinStart)
	assert.Equal(t, 3*time.Second, cfg.OutboxPollInterval)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ATTENDANCE_GRACE_MINUTES", "5")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("OUTBOX_POLL_INTERVAL", "500ms")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("DB_MAX_RETRIES", "not-a-number")

	cfg := Load()

	assert.Equal(t, 5, cfg.GraceMinutes)
	assert.True(t, cfg.DBAutoMigrate)
	assert.Equal(t, 500*time.Millisecond, cfg.OutboxPollInterval)
	assert.Equal(t, 2.5, cfg.RateLimitPerSecond)
	assert.Equal(t, 5, cfg.DBMaxRetries)
}

func TestValidate(t *testing.T) {
	base := Config{
		DBHost:             "localhost",
		DBName:             "bey",
		JWTSecret:          "secret",
		GraceMinutes:       10,
		DBMaxRetries:       5,
		RateLimitPerSecond: 10,
		RateLimitBurst:     20,
	}
	assert.NoError(t, base.Validate())

	noSecret := base
	noSecret.JWTSecret = ""
	assert.Error(t, noSecret.Validate())

	prod := base
	prod.Environment = "production"
	assert.Error(t, prod.Validate())

	badGrace := base
	badGrace.GraceMinutes = -1
	assert.Error(t, badGrace.Validate())

	assert.Error(t, base.RequireKafka())
	base.KafkaBroker = "localhost:9092"
	assert.NoError(t, base.RequireKafka())
}
