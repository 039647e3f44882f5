package oauth

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/FelixBrandt/SocialFox/internal/pkg/env"
)

// ProviderCredentials holds one provider's OAuth client credentials.
type ProviderCredentials struct {
	Key    string
	Secret string
}

// Config carries everything the auth layer needs at startup. It is built
// once in main and passed down explicitly instead of living in hidden
// package globals.
type Config struct {
	// BaseURL is the public origin used to build provider callback URLs,
	// e.g. "https://login.example.com".
	BaseURL string

	Google    ProviderCredentials
	Facebook  ProviderCredentials
	Microsoft ProviderCredentials

	// MicrosoftTenant selects the Azure AD tenant ("common" for multi-tenant).
	MicrosoftTenant string
	// MicrosoftRedirectURI overrides the computed callback URL when the Azure
	// app registration uses a fixed redirect.
	MicrosoftRedirectURI string

	// SessionSecret is the base64-encoded 32-byte key used to encrypt
	// session cookies.
	SessionSecret string
}

// LoadConfig reads the auth configuration from the environment and fails
// loudly when any selected provider's credentials are incomplete. Deferring
// these errors to the first login attempt only produces broken redirects.
func LoadConfig() (*Config, error) {
	base := strings.TrimRight(env.GetEnv("PUBLIC_DOMAIN", ""), "/")
	if base == "" {
		base = "http://localhost:" + env.GetEnv("APP_PORT", "8000")
	}

	cfg := &Config{
		BaseURL: base,
		Google: ProviderCredentials{
			Key:    env.GetEnv("GOOGLE_CLIENT_ID", ""),
			Secret: env.GetEnv("GOOGLE_CLIENT_SECRET", ""),
		},
		Facebook: ProviderCredentials{
			Key:    env.GetEnv("FACEBOOK_CLIENT_ID", ""),
			Secret: env.GetEnv("FACEBOOK_CLIENT_SECRET", ""),
		},
		Microsoft: ProviderCredentials{
			Key:    env.GetEnv("AZURE_CLIENT_ID", ""),
			Secret: env.GetEnv("AZURE_CLIENT_SECRET", ""),
		},
		MicrosoftTenant:      env.GetEnv("AZURE_TENANT_ID", "common"),
		MicrosoftRedirectURI: env.GetEnv("AZURE_REDIRECT_URI", base+"/auth/redirect"),
		SessionSecret:        env.GetEnv("SESSION_SECRET", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every missing or malformed setting at once so a broken
// deployment can be fixed in a single pass.
func (c *Config) Validate() error {
	var missing []string
	require := func(name, val string) {
		if val == "" {
			missing = append(missing, name)
		}
	}

	require("GOOGLE_CLIENT_ID", c.Google.Key)
	require("GOOGLE_CLIENT_SECRET", c.Google.Secret)
	require("FACEBOOK_CLIENT_ID", c.Facebook.Key)
	require("FACEBOOK_CLIENT_SECRET", c.Facebook.Secret)
	require("AZURE_CLIENT_ID", c.Microsoft.Key)
	require("AZURE_CLIENT_SECRET", c.Microsoft.Secret)
	require("SESSION_SECRET", c.SessionSecret)

	if len(missing) > 0 {
		return fmt.Errorf("oauth config: missing required environment variables: %s", strings.Join(missing, ", "))
	}

	key, err := base64.StdEncoding.DecodeString(c.SessionSecret)
	if err != nil {
		return fmt.Errorf("oauth config: SESSION_SECRET must be base64 encoded: %w", err)
	}
	if len(key) != 32 {
		return fmt.Errorf("oauth config: SESSION_SECRET must decode to 32 bytes, got %d", len(key))
	}

	return nil
}
