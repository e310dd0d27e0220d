package handlers

import (
	"zosswater/internal/domain"
	applog "zosswater/internal/log"
	"zosswater/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireUser enforces a logged-in session and stashes the user in Locals.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return fail(c, fiber.StatusUnauthorized, "Authentication required")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil || !u.Active {
			return fail(c, fiber.StatusUnauthorized, "Authentication required")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireAdmin additionally enforces the admin role.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return fail(c, fiber.StatusUnauthorized, "Authentication required")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil || !u.Active {
			return fail(c, fiber.StatusUnauthorized, "Authentication required")
		}
		if !u.IsAdmin() {
			applog.Security(c, "access.denied.admin", map[string]any{"user_id": u.ID})
			return fail(c, fiber.StatusForbidden, "Access denied")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}
