// Package flash stores one-shot notifications in a short-lived cookie:
// a message survives exactly one redirect and is cleared when read.
package flash

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const cookieName = "flash"

// Set queues a message for the next rendered page. Category is one of
// "success" or "error" and selects the styling in the layout.
func Set(c *fiber.Ctx, category, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(category) + "|" + url.QueryEscape(message),
		Expires:  time.Now().Add(5 * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// Take returns the pending message, if any, and clears it.
func Take(c *fiber.Ctx) (category, message string, ok bool) {
	raw := c.Cookies(cookieName)
	if raw == "" {
		return "", "", false
	}

	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	parts := strings.SplitN(raw, "|", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	category, err := url.QueryUnescape(parts[0])
	if err != nil {
		return "", "", false
	}
	message, err = url.QueryUnescape(parts[1])
	if err != nil {
		return "", "", false
	}
	return category, message, true
}
