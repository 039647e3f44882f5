package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/markbates/goth"
	gothfiber "github.com/shareed2k/goth_fiber"
	"github.com/sujit-baniya/flash"

	"github.com/FelixBrandt/SocialFox/app/models"
	"github.com/FelixBrandt/SocialFox/app/repository"
	"github.com/FelixBrandt/SocialFox/internal/pkg/oauth"
	"github.com/FelixBrandt/SocialFox/internal/pkg/session"
)

// OAuthController owns the login, callback and logout routes. Dependencies
// are injected at construction so the handlers never reach for process
// globals.
type OAuthController struct {
	identities repository.IdentityRepository
	sessions   *fibersession.Store

	// completeAuth finishes the provider handshake: state verification,
	// token exchange and profile fetch. Swappable in tests.
	completeAuth func(*fiber.Ctx) (goth.User, error)
}

func NewOAuthController(identities repository.IdentityRepository, sessions *fibersession.Store) *OAuthController {
	return &OAuthController{
		identities: identities,
		sessions:   sessions,
		completeAuth: func(c *fiber.Ctx) (goth.User, error) {
			return gothfiber.CompleteUserAuth(c)
		},
	}
}

// HandleLogin starts a provider flow by redirecting to the consent screen.
// The underlying library stores an anti-forgery state value that the
// callback verifies.
func (oc *OAuthController) HandleLogin(c *fiber.Ctx) error {
	name := c.Params("provider")
	if _, err := goth.GetProvider(name); err != nil {
		return oc.renderError(c, fiber.StatusNotFound, name, "Unknown identity provider.")
	}

	if err := gothfiber.BeginAuthHandler(c); err != nil {
		log.Printf("[oauth] begin auth failed for %s: %v", name, err)
		return oc.renderError(c, fiber.StatusOK, name, "Could not start the sign-in flow. Please try again.")
	}
	return nil
}

// HandleCallback completes the provider flow for any provider: exchange the
// code, normalize the profile, upsert the identity record and establish the
// session. Every failure renders the same error page; the session and the
// identity store are only written after all previous steps succeeded.
func (oc *OAuthController) HandleCallback(c *fiber.Ctx) error {
	provider := providerName(c)

	u, err := oc.completeAuth(c)
	if err != nil {
		log.Printf("[oauth] provider error on %s callback: %v", provider, err)
		return oc.renderError(c, fiber.StatusOK, provider, "The identity provider rejected the sign-in. Please try again.")
	}

	p, err := oauth.Normalize(u)
	if err != nil {
		log.Printf("[oauth] cannot normalize %s profile: %v", provider, err)
		return oc.renderError(c, fiber.StatusOK, provider, "The identity provider returned an unusable profile.")
	}

	if err := oc.identities.Upsert(models.IdentityFromProfile(p)); err != nil {
		log.Printf("[storage] upsert failed for %s/%s: %v", p.Provider, p.UserID, err)
		return oc.renderError(c, fiber.StatusOK, provider, "We could not save your profile. Please try again.")
	}

	if err := session.SetUser(c, oc.sessions, p); err != nil {
		log.Printf("[session] write failed for %s/%s: %v", p.Provider, p.UserID, err)
		return oc.renderError(c, fiber.StatusOK, provider, "We could not establish your session. Please try again.")
	}

	return c.Redirect("/")
}

// HandleMicrosoftCallback adapts the fixed /auth/redirect path used by the
// Azure app registration onto the generic callback.
func (oc *OAuthController) HandleMicrosoftCallback(c *fiber.Ctx) error {
	c.Locals("provider", oauth.ProviderMicrosoft)
	c.Request().URI().QueryArgs().Set("provider", oauth.ProviderMicrosoft)
	return oc.HandleCallback(c)
}

// HandleLogout clears the whole session and returns to the home page.
// Identity records are never deleted here.
func (oc *OAuthController) HandleLogout(c *fiber.Ctx) error {
	if err := session.Clear(c, oc.sessions); err != nil {
		log.Printf("[session] logout destroy failed: %v", err)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "You have been signed out.",
	}
	return flash.WithSuccess(c, fm).Redirect("/")
}

// renderError is the one error contract for every provider: an HTML error
// page instead of per-provider ad-hoc responses.
func (oc *OAuthController) renderError(c *fiber.Ctx, status int, provider, message string) error {
	return c.Status(status).Render("error", fiber.Map{
		"Provider": provider,
		"Message":  message,
	})
}

// providerName resolves which provider a callback belongs to, for logging
// and the error page. The lookup order matches what the OAuth library uses
// to complete the handshake.
func providerName(c *fiber.Ctx) string {
	if p := c.Params("provider"); p != "" {
		return p
	}
	if p := c.Query("provider"); p != "" {
		return p
	}
	if p, ok := c.Locals("provider").(string); ok && p != "" {
		return p
	}
	return "unknown"
}
