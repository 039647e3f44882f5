package router

import (
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"

	"github.com/FelixBrandt/SocialFox/app/repository"
)

// Router is anything that can hang routes off the fiber app.
type Router interface {
	InstallRouter(app *fiber.App)
}

// Deps carries the dependencies the routers hand to their controllers.
// Constructed once in main; nothing here is a package global.
type Deps struct {
	Repos    *repository.Repositories
	Sessions *fibersession.Store
}

func InstallRouter(app *fiber.App, deps Deps) {
	setup(app, NewHttpRouter(deps))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
