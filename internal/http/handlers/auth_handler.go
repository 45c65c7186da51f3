package handlers

import (
	"errors"
	"time"

	applog "sbsoverseas/internal/log"
	"sbsoverseas/internal/services"
	"sbsoverseas/internal/validate"

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

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return render(c, "signup", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	_, err := h.Auth.SignIn(sid, email, pass)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/admin")
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	name, _ := validate.Name(c.FormValue("name"))
	if _, ok := validate.Email(email); !ok {
		return c.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{"Err": "Enter a valid email", "CSRFToken": c.Cookies("csrf_")})
	}
	if !validate.Password(pass) {
		return c.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{"Err": "Password needs 8+ characters with upper, lower, and digit", "CSRFToken": c.Cookies("csrf_")})
	}

	_, err := h.Auth.SignUp(sid, email, pass, name)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).Render("signup", fiber.Map{"Err": "That email is already registered", "CSRFToken": c.Cookies("csrf_")})
		}
		applog.Error(c, "auth.signup.fail", err, map[string]any{"email": email})
		return c.Status(fiber.StatusInternalServerError).Render("signup", fiber.Map{"Err": "Could not create the account", "CSRFToken": c.Cookies("csrf_")})
	}

	applog.Audit(c, "auth.signup.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.SignOut(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
