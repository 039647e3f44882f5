package oauth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/azureadv2"
	"github.com/markbates/goth/providers/facebook"
	"github.com/markbates/goth/providers/google"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/FelixBrandt/SocialFox/internal/pkg/env"
)

// Setup registers the three Goth providers and installs the session store
// Goth uses for its anti-forgery state cookie. The state value written on
// /login/:provider is verified by goth_fiber during CompleteUserAuth, so a
// callback with a forged or missing state fails before any token exchange.
//
// storage may be nil; the fiber session middleware then falls back to its
// in-memory store, which is what tests use.
func Setup(cfg *Config, storage fiber.Storage) {
	goth.UseProviders(
		google.New(
			cfg.Google.Key,
			cfg.Google.Secret,
			cfg.BaseURL+"/auth/google",
			"email", "profile",
		),
		facebook.New(
			cfg.Facebook.Key,
			cfg.Facebook.Secret,
			cfg.BaseURL+"/auth/facebook",
			"email", "public_profile",
		),
		newMicrosoftProvider(cfg),
	)

	gothfiber.SessionStore = session.New(session.Config{
		Storage:        storage,
		KeyLookup:      "cookie:" + gothic.SessionName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   !env.IsDev(),
		Expiration:     10 * time.Minute,
	})
}

// newMicrosoftProvider builds the Azure AD provider under the public name
// "microsoft". The provider fetches the profile from Microsoft Graph /me.
func newMicrosoftProvider(cfg *Config) goth.Provider {
	p := azureadv2.New(
		cfg.Microsoft.Key,
		cfg.Microsoft.Secret,
		cfg.MicrosoftRedirectURI,
		azureadv2.ProviderOptions{
			Tenant: azureadv2.TenantType(cfg.MicrosoftTenant),
			Scopes: []azureadv2.ScopeType{"User.Read"},
		},
	)
	p.SetName(ProviderMicrosoft)
	return p
}
