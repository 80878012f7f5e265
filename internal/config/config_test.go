package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:     AppConfig{Environment: "development"},
		Logger:  LoggerConfig{Level: "info"},
		Storage: StorageConfig{BasePath: "/tmp/academie-test"},
		Server: ServerConfig{
			Port:           "8080",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			IdleTimeout:    60 * time.Second,
			AllowedOrigins: []string{"*"},
		},
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadEnvironment(t *testing.T) {
	cfg := validConfig()
	cfg.App.Environment = "testing"
	assert.Error(t, cfg.Validate())

	cfg.App.Environment = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logger.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestValidateLogLevelCaseInsensitive(t *testing.T) {
	cfg := validConfig()
	cfg.Logger.Level = "DEBUG"
	assert.NoError(t, cfg.Validate())
}

func TestValidateRequiresStoragePath(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.BasePath = ""
	assert.Error(t, cfg.Validate())
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, splitOrigins("*"))
	assert.Equal(t,
		[]string{"https://a.example", "https://b.example"},
		splitOrigins("https://a.example, https://b.example"))
	assert.Empty(t, splitOrigins(" , "))
}

func TestDefaultStoragePath(t *testing.T) {
	got, err := DefaultStoragePath()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.True(t, strings.HasSuffix(got, filepath.Join("LOAcademie", "data")),
		"unexpected default storage path %q", got)
}

func TestExpandPathDefault(t *testing.T) {
	got, err := expandPath("", "/srv/default")
	require.NoError(t, err)
	assert.Equal(t, "/srv/default", got)
}

func TestExpandPathMakesAbsolute(t *testing.T) {
	got, err := expandPath("relative/dir", "")
	require.NoError(t, err)
	assert.True(t, len(got) > 0 && got[0] == '/', "expected absolute path, got %q", got)
}

func TestParseDurationValue(t *testing.T) {
	d, err := parseDurationValue("", "ACADEMIE_TEST_UNSET_DURATION", "45s")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, d)

	d, err = parseDurationValue("2m", "ACADEMIE_TEST_UNSET_DURATION", "45s")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, d)

	_, err = parseDurationValue("soon", "ACADEMIE_TEST_UNSET_DURATION", "45s")
	assert.Error(t, err)
}
