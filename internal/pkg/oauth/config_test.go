package oauth

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSessionSecret() string {
	return base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x42}, 32))
}

func validTestConfig() *Config {
	return &Config{
		BaseURL:              "http://localhost:8000",
		Google:               ProviderCredentials{Key: "g-id", Secret: "g-secret"},
		Facebook:             ProviderCredentials{Key: "f-id", Secret: "f-secret"},
		Microsoft:            ProviderCredentials{Key: "m-id", Secret: "m-secret"},
		MicrosoftTenant:      "common",
		MicrosoftRedirectURI: "http://localhost:8000/auth/redirect",
		SessionSecret:        testSessionSecret(),
	}
}

func TestConfigValidateOK(t *testing.T) {
	require.NoError(t, validTestConfig().Validate())
}

func TestConfigValidateReportsAllMissingVars(t *testing.T) {
	cfg := validTestConfig()
	cfg.Google.Secret = ""
	cfg.Facebook.Key = ""
	cfg.Microsoft.Secret = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_CLIENT_SECRET")
	assert.Contains(t, err.Error(), "FACEBOOK_CLIENT_ID")
	assert.Contains(t, err.Error(), "AZURE_CLIENT_SECRET")
}

func TestConfigValidateSessionSecretNotBase64(t *testing.T) {
	cfg := validTestConfig()
	cfg.SessionSecret = "not-base-64!!"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64")
}

func TestConfigValidateSessionSecretWrongLength(t *testing.T) {
	cfg := validTestConfig()
	cfg.SessionSecret = base64.StdEncoding.EncodeToString([]byte("short"))

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "g-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "g-secret")
	t.Setenv("FACEBOOK_CLIENT_ID", "f-id")
	t.Setenv("FACEBOOK_CLIENT_SECRET", "f-secret")
	t.Setenv("AZURE_CLIENT_ID", "m-id")
	t.Setenv("AZURE_CLIENT_SECRET", "m-secret")
	t.Setenv("SESSION_SECRET", testSessionSecret())
	t.Setenv("PUBLIC_DOMAIN", "https://login.example.com/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://login.example.com", cfg.BaseURL)
	assert.Equal(t, "common", cfg.MicrosoftTenant)
	assert.Equal(t, "https://login.example.com/auth/redirect", cfg.MicrosoftRedirectURI)
	assert.Equal(t, "g-id", cfg.Google.Key)
}

func TestLoadConfigFailsFastOnMissingCredentials(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "g-id")
	// everything else left unset

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
}
