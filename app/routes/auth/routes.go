package auth

import (
	"strings"

	"studentdesk/app/config"
	"studentdesk/app/database"
	"studentdesk/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/login", ShowLoginPage)
	app.Post("/login", LoginAPI)
	app.Get("/logout", AuthMiddleware, LogoutAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies(sessionCookie); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/home")
		}
	}

	return c.Render("login", fiber.Map{
		"Title": "Login - StudentDesk",
	}, "")
}

// AuthMiddleware resolves the session principal and rejects anonymous
// requests: API paths get a 401, web pages redirect to the login form.
func AuthMiddleware(c *fiber.Ctx) error {
	// Get the session token from cookie or Authorization header
	tokenString := c.Cookies(sessionCookie)
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString != "" {
		if claims, err := ValidateJWT(tokenString); err == nil {
			setPrincipal(c, claims.UserID)
			return c.Next()
		}
	}

	// No valid session cookie; a remember token can re-establish the
	// session without prompting.
	if remember := c.Cookies(rememberCookie); remember != "" {
		if session, err := database.GetSessionByID(config.GetDB(), remember); err == nil {
			if token, err := GenerateJWT(session.UserID); err == nil {
				setSessionCookie(c, token)
				setPrincipal(c, session.UserID)
				return c.Next()
			}
		}
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(401).JSON(fiber.Map{"error": "Authentication required"})
	}
	return c.Redirect("/login")
}

func setPrincipal(c *fiber.Ctx, userID string) {
	c.Locals("user_id", userID)
	c.Locals("principal", models.Principal{UserID: userID})
}

// CurrentPrincipal returns the identity attached by AuthMiddleware, or
// the anonymous principal when the request carries no valid session.
func CurrentPrincipal(c *fiber.Ctx) models.Principal {
	if p, ok := c.Locals("principal").(models.Principal); ok {
		return p
	}
	if tokenString := c.Cookies(sessionCookie); tokenString != "" {
		if claims, err := ValidateJWT(tokenString); err == nil {
			return models.Principal{UserID: claims.UserID}
		}
	}
	return models.Principal{}
}
