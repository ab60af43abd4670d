package main

import (
	"log"
	"strings"

	"studentdesk/app/config"
	"studentdesk/app/database"
	"studentdesk/app/flash"
	"studentdesk/app/routes/archive"
	"studentdesk/app/routes/auth"
	"studentdesk/app/routes/students"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Check if this is an API request
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	// Handle different error codes for web requests
	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - StudentDesk",
			"CurrentPage": "",
		})
	case 403:
		return c.Status(403).Render("403", fiber.Map{
			"Title":       "Access Forbidden - StudentDesk",
			"CurrentPage": "",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":       "Server Error - StudentDesk",
			"CurrentPage": "",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - StudentDesk",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Initialize configuration and database
	if err := config.Init(); err != nil {
		log.Fatal(err)
	}
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Expose any pending flash message to the next rendered view
	app.Use(func(c *fiber.Ctx) error {
		if category, message, ok := flash.Take(c); ok {
			c.Locals("FlashCategory", category)
			c.Locals("Flash", message)
		}
		return c.Next()
	})

	// Static pages
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Title":       "Welcome - StudentDesk",
			"CurrentPage": "index",
		})
	})
	app.Get("/about", func(c *fiber.Ctx) error {
		return c.Render("about", fiber.Map{
			"Title":       "About - StudentDesk",
			"CurrentPage": "about",
		})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup archive routes
	archive.SetupArchiveRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	log.Printf("Server starting on %s", config.AppConfig.ListenAddr)
	log.Fatal(app.Listen(config.AppConfig.ListenAddr))
}
