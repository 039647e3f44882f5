package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FelixBrandt/SocialFox/internal/pkg/oauth"
)

func TestHomeAnonymous(t *testing.T) {
	env := newOAuthTestApp(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := bodyString(t, resp)
	assert.Contains(t, body, "Sign in with Google")
	assert.Contains(t, body, "/login/facebook")
	assert.Contains(t, body, "/login/microsoft")
	assert.NotContains(t, body, "Welcome")
}

func registerTestProviders(t *testing.T) {
	t.Helper()
	oauth.Setup(&oauth.Config{
		BaseURL:              "http://localhost:8000",
		Google:               oauth.ProviderCredentials{Key: "g-id", Secret: "g-secret"},
		Facebook:             oauth.ProviderCredentials{Key: "f-id", Secret: "f-secret"},
		Microsoft:            oauth.ProviderCredentials{Key: "m-id", Secret: "m-secret"},
		MicrosoftTenant:      "common",
		MicrosoftRedirectURI: "http://localhost:8000/auth/redirect",
	}, nil)
}

func TestLoginRedirectsToGoogleConsent(t *testing.T) {
	env := newOAuthTestApp(t)
	registerTestProviders(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/login/google", nil))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, resp.StatusCode, 300)
	assert.Less(t, resp.StatusCode, 400)

	location := resp.Header.Get("Location")
	assert.Contains(t, location, "accounts.google.com")
	assert.Contains(t, location, "client_id=g-id")
	assert.Contains(t, location, "state=", "the anti-forgery state parameter must be present")
}

func TestLoginRedirectsToMicrosoftConsent(t *testing.T) {
	env := newOAuthTestApp(t)
	registerTestProviders(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/login/microsoft", nil))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, resp.StatusCode, 300)
	assert.Less(t, resp.StatusCode, 400)

	location := resp.Header.Get("Location")
	assert.Contains(t, location, "login.microsoftonline.com")
	assert.Contains(t, location, "state=")
}

func TestLoginUnknownProviderIs404(t *testing.T) {
	env := newOAuthTestApp(t)
	registerTestProviders(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/login/twitter", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "Unknown identity provider")
}
