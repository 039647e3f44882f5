package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvPrefersLoadedEnvFile(t *testing.T) {
	Env = map[string]string{"APP_PORT": "1234"}
	t.Cleanup(func() { Env = nil })
	t.Setenv("APP_PORT", "9999")

	assert.Equal(t, "1234", GetEnv("APP_PORT", "8000"))
}

func TestGetEnvFallsBackToOSEnvironment(t *testing.T) {
	Env = nil
	t.Setenv("APP_PORT", "9999")

	assert.Equal(t, "9999", GetEnv("APP_PORT", "8000"))
}

func TestGetEnvDefault(t *testing.T) {
	Env = nil

	assert.Equal(t, "8000", GetEnv("SOCIALFOX_DOES_NOT_EXIST", "8000"))
}

func TestIsDev(t *testing.T) {
	Env = map[string]string{"APP_ENV": "dev"}
	t.Cleanup(func() { Env = nil })

	assert.True(t, IsDev())

	Env["APP_ENV"] = "prod"
	assert.False(t, IsDev())
}
