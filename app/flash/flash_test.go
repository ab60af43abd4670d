package flash_test

import (
	"io"
	"net/http/httptest"
	"net/url"
	"testing"

	"studentdesk/app/flash"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newFlashApp() *fiber.App {
	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		flash.Set(c, "success", "Student added successfully!")
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/take", func(c *fiber.Ctx) error {
		category, message, ok := flash.Take(c)
		if !ok {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendString(category + ":" + message)
	})
	return app
}

func TestFlashRoundTrip(t *testing.T) {
	app := newFlashApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/set", nil))
	require.NoError(t, err)

	var flashValue string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "flash" {
			flashValue = cookie.Value
		}
	}
	require.NotEmpty(t, flashValue, "set should write a flash cookie")

	req := httptest.NewRequest("GET", "/take", nil)
	req.Header.Set("Cookie", "flash="+flashValue)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "success:Student added successfully!", string(body))

	// Take must clear the cookie so the message shows exactly once.
	cleared := false
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "flash" && cookie.Value == "" {
			cleared = true
		}
	}
	require.True(t, cleared, "take should expire the flash cookie")
}

func TestFlashEscapesDelimiter(t *testing.T) {
	value := url.QueryEscape("error") + "|" + url.QueryEscape("pipes | are | fine")

	app := fiber.New()
	app.Get("/take", func(c *fiber.Ctx) error {
		category, message, ok := flash.Take(c)
		require.True(t, ok)
		require.Equal(t, "error", category)
		require.Equal(t, "pipes | are | fine", message)
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/take", nil)
	req.Header.Set("Cookie", "flash="+value)
	_, err := app.Test(req)
	require.NoError(t, err)
}

func TestFlashAbsent(t *testing.T) {
	app := newFlashApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/take", nil))
	require.NoError(t, err)
	require.Equal(t, 404, resp.StatusCode)
}
