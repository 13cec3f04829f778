package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 100*time.Millisecond, cfg.Extraction.Timeout)
	assert.Equal(t, 0.3, cfg.Extraction.MinConfidence)
	assert.Equal(t, StoreMemory, cfg.Review.Store)
	assert.Equal(t, []int{30, 10}, cfg.Review.ReminderMinutes)
	assert.Equal(t, 24*time.Hour, cfg.Review.TTL)
	assert.Equal(t, "primary", cfg.GoogleCalendar.CalendarID)
}

func TestLoadFromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("REVIEW_STORE", "redis")
	t.Setenv("EXTRACTION_TIMEOUT", "250ms")
	t.Setenv("EXTRACTION_CATEGORIES", "work, health ,")
	t.Setenv("MEMOS_URL", "http://memos:5230")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreRedis, cfg.Review.Store)
	assert.Equal(t, 250*time.Millisecond, cfg.Extraction.Timeout)
	assert.Equal(t, []string{"work", "health"}, cfg.Extraction.Categories)
	assert.Equal(t, "http://memos:5230", cfg.Memos.ExternalURL)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown store", key: "REVIEW_STORE", val: "postgres"},
		{name: "confidence above one", key: "EXTRACTION_MIN_CONFIDENCE", val: "1.5"},
		{name: "bad reminder minutes", key: "REVIEW_REMINDER_MINUTES", val: "30,soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
