package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FelixBrandt/SocialFox/app/controllers"
	"github.com/FelixBrandt/SocialFox/internal/pkg/middleware"
)

type HttpRouter struct {
	deps Deps
}

func NewHttpRouter(deps Deps) *HttpRouter {
	return &HttpRouter{deps: deps}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// Resolve the session user for every request before any handler runs
	app.Use(middleware.UserContext(h.deps.Sessions))

	oauthController := controllers.NewOAuthController(h.deps.Repos.Identities, h.deps.Sessions)

	app.Get("/", controllers.HandleHome)

	// Social sign-in. /auth/redirect must be registered before the
	// parameterized callback route so Azure's fixed redirect URI does not
	// match :provider as the literal "redirect".
	app.Get("/login/:provider", oauthController.HandleLogin)
	app.Get("/auth/redirect", oauthController.HandleMicrosoftCallback)
	app.Get("/auth/:provider", oauthController.HandleCallback)
	app.Get("/logout", oauthController.HandleLogout)
}
