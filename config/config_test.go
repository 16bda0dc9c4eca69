package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("falls back when unset", func(t *testing.T) {
		assert.Equal(t, "8080", getEnv("BLOGAPI_TEST_UNSET", "8080"))
	})

	t.Run("empty value counts as set", func(t *testing.T) {
		t.Setenv("BLOGAPI_TEST_EMPTY", "")
		assert.Equal(t, "", getEnv("BLOGAPI_TEST_EMPTY", "fallback"))
	})
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_PATH", "/tmp/blog")

	cfg := Load()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "/tmp/blog", cfg.DBPath)
}
