package handlers

import (
	"time"

	applog "zosswater/internal/log"
	"zosswater/internal/services"
	"zosswater/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	name, ok := validate.Name(body.Name)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "enter a valid name")
	}
	email, ok := validate.Email(body.Email)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "enter a valid email")
	}
	if !validate.Password(body.Password) {
		return fail(c, fiber.StatusBadRequest, "password must be 8-72 characters with upper, lower, digit and symbol")
	}

	u, err := h.Auth.Register(name, email, body.Phone, body.Password)
	if err != nil {
		return failErr(c, "auth.register.fail", err)
	}
	applog.Audit(c, "auth.register", map[string]any{"email": email})
	return created(c, "Account created successfully", fiber.Map{"user": u})
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	email, okEmail := validate.Email(body.Email)
	if !okEmail {
		applog.Security(c, "auth.login.fail", map[string]any{"email": body.Email, "reason": "bad_format"})
		return fail(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	sid := ensureSID(c)
	u, err := h.Auth.Login(sid, email, body.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return fail(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return ok(c, fiber.Map{"user": u})
}

// POST /api/v1/auth/oauth/google
// Receives a profile already verified by the external identity provider;
// the OAuth handshake itself happens outside this service.
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	email, okEmail := validate.Email(body.Email)
	if !okEmail {
		return fail(c, fiber.StatusBadRequest, "enter a valid email")
	}

	u, err := h.Auth.OAuthUpsert(body.Name, email)
	if err != nil {
		return failErr(c, "auth.oauth.fail", err)
	}
	sid := ensureSID(c)
	if err := h.Auth.Users.BindSession(sid, u.ID); err != nil {
		return failErr(c, "auth.oauth.fail", err)
	}
	applog.Audit(c, "auth.oauth.success", map[string]any{"email": email})
	return ok(c, fiber.Map{"user": u})
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", nil)
	return okMsg(c, "Logged out", nil)
}

// GET /api/v1/auth/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	return ok(c, fiber.Map{"user": currentUser(c)})
}

// PUT /api/v1/auth/profile
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var body struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	name, okName := validate.Name(body.Name)
	if !okName {
		return fail(c, fiber.StatusBadRequest, "enter a valid name")
	}

	u, err := h.Auth.UpdateProfile(currentUser(c).ID, name, body.Phone)
	if err != nil {
		return failErr(c, "auth.profile.update.fail", err)
	}
	applog.Audit(c, "auth.profile.update", nil)
	return ok(c, fiber.Map{"user": u})
}

// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if !validate.Password(body.NewPassword) {
		return fail(c, fiber.StatusBadRequest, "password must be 8-72 characters with upper, lower, digit and symbol")
	}

	if err := h.Auth.ChangePassword(currentUser(c).ID, body.CurrentPassword, body.NewPassword); err != nil {
		if err == services.ErrBadCreds {
			applog.Security(c, "auth.password.fail", nil)
			return fail(c, fiber.StatusUnauthorized, "Current password is incorrect")
		}
		return failErr(c, "auth.password.fail", err)
	}
	applog.Audit(c, "auth.password.change", nil)
	return okMsg(c, "Password updated", nil)
}

// GET /api/v1/users  (admin)
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.Auth.ListUsers()
	if err != nil {
		return failErr(c, "admin.users.list.fail", err)
	}
	return ok(c, fiber.Map{"users": users})
}
