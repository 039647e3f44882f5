package usercontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FelixBrandt/SocialFox/internal/pkg/oauth"
)

// ContextKey is the fiber Locals key the user context middleware writes.
const ContextKey = "USER_CONTEXT"

// UserContext is the per-request view of the browser session: either an
// anonymous visitor or the normalized profile of the signed-in user.
type UserContext struct {
	IsLoggedIn bool
	Profile    oauth.Profile
}

// FromCtx reads the user context set by the middleware. A request that
// bypassed the middleware is treated as anonymous.
func FromCtx(c *fiber.Ctx) UserContext {
	if uc, ok := c.Locals(ContextKey).(UserContext); ok {
		return uc
	}
	return UserContext{}
}
