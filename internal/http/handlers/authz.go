package handlers

import (
	"strings"

	applog "sbsoverseas/internal/log"
	"sbsoverseas/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin resolves the sid cookie to a profile and blocks anyone whose
// profile does not carry the admin flag. API paths get a JSON 403; page
// requests are sent to the login form.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return denyAdmin(c, "")
		}
		p, err := auth.CurrentProfile(sid)
		if err != nil || p == nil || !p.IsAdmin {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return denyAdmin(c, sid)
		}
		c.Locals("profile", p)
		return c.Next()
	}
}

func denyAdmin(c *fiber.Ctx, sid string) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
	}
	if sid == "" {
		return c.Redirect("/login")
	}
	return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
}

// RequireUser enforces that a user is logged in; otherwise redirect to login.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return c.Redirect("/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}
