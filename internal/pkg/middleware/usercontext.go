package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"

	"github.com/FelixBrandt/SocialFox/internal/pkg/session"
	"github.com/FelixBrandt/SocialFox/internal/pkg/usercontext"
)

// UserContext resolves the browser session into a per-request user context.
// OAuth callback routes are skipped: Goth drives its own state cookie there
// and the callback handler writes the app session itself.
func UserContext(store *fibersession.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/auth/") {
			return c.Next()
		}

		if p, ok := session.CurrentUser(c, store); ok {
			c.Locals(usercontext.ContextKey, usercontext.UserContext{
				IsLoggedIn: true,
				Profile:    p,
			})
		} else {
			c.Locals(usercontext.ContextKey, usercontext.UserContext{})
		}

		return c.Next()
	}
}
