package archive

import (
	"log"

	"studentdesk/app/config"
	"studentdesk/app/database"
	"studentdesk/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupArchiveRoutes(app *fiber.App) {
	app.Get("/archived_students", ArchivedStudentsPage)

	api := app.Group("/api/archived_students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetArchivedStudentsAPI)
}

// ArchivedStudentsPage lists historical copies of deleted students.
// Like the other read views it is public and degrades to an empty list
// on a storage fault.
func ArchivedStudentsPage(c *fiber.Ctx) error {
	students, err := database.GetAllArchivedStudents(config.GetDB())
	if err != nil {
		log.Printf("archive: load archived students: %v", err)
	}

	return c.Render("archived_students", fiber.Map{
		"Title":       "Archived Students - StudentDesk",
		"CurrentPage": "archived_students",
		"students":    students,
	})
}

func GetArchivedStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetAllArchivedStudents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch archived students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}
