package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/FelixBrandt/SocialFox/internal/pkg/usercontext"
)

// HandleHome renders the landing page with the signed-in user, if any.
func HandleHome(c *fiber.Ctx) error {
	uc := usercontext.FromCtx(c)

	return c.Render("home", fiber.Map{
		"IsLoggedIn": uc.IsLoggedIn,
		"User":       uc.Profile,
		"Flash":      flash.Get(c),
	})
}
