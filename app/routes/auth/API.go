package auth

import (
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"studentdesk/app/config"
	"studentdesk/app/database"
	"studentdesk/app/flash"

	"github.com/gofiber/fiber/v2"
)

func LoginAPI(c *fiber.Ctx) error {
	if CurrentPrincipal(c).Authenticated() {
		return c.Redirect("/home")
	}

	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	user, err := database.GetUserByUsername(config.GetDB(), username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			flash.Set(c, "error", "Login failed. Check your username.")
			return c.Redirect("/login")
		}
		log.Printf("login: look up user %q: %v", username, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	if !CheckPasswordHash(password, user.Password) {
		flash.Set(c, "error", "Login failed. Check your password.")
		return c.Redirect("/login")
	}

	token, err := GenerateJWT(user.ID)
	if err != nil {
		log.Printf("login: sign session token: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to establish session")
	}

	setSessionCookie(c, token)

	// A persistent token outlives the signed cookie and is revoked
	// server-side on logout.
	if c.FormValue("remember") == "on" {
		rememberToken := GenerateRememberToken()
		if err := database.CreateSession(config.GetDB(), rememberToken, user.ID, RememberExpiry()); err != nil {
			log.Printf("login: persist remember token: %v", err)
		} else {
			c.Cookie(&fiber.Cookie{
				Name:     rememberCookie,
				Value:    rememberToken,
				Expires:  RememberExpiry(),
				HTTPOnly: true,
				SameSite: "Lax",
				Path:     "/",
			})
		}
	}

	flash.Set(c, "success", "Login successful!")
	return c.Redirect("/home")
}

func LogoutAPI(c *fiber.Ctx) error {
	if token := c.Cookies(rememberCookie); token != "" {
		if err := database.DeleteSession(config.GetDB(), token); err != nil {
			log.Printf("logout: revoke remember token: %v", err)
		}
		clearCookie(c, rememberCookie)
	}
	clearCookie(c, sessionCookie)

	return c.Redirect("/info")
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  time.Now().Add(sessionLifetime),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}
