package students

import (
	"database/sql"
	"errors"
	"log"
	"strings"

	"studentdesk/app/config"
	"studentdesk/app/database"
	"studentdesk/app/flash"
	"studentdesk/app/models"
	"studentdesk/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	// Page routes
	app.Get("/home", auth.AuthMiddleware, HomePage)
	app.Get("/info", InfoPage)
	app.Get("/add_student", auth.AuthMiddleware, AddStudentPage)
	app.Post("/add_student", auth.AuthMiddleware, AddStudentSubmit)
	app.Get("/edit/:id", auth.AuthMiddleware, EditStudentPage)
	app.Post("/edit/:id", auth.AuthMiddleware, EditStudentSubmit)
	app.Post("/delete/:id", auth.AuthMiddleware, DeleteStudentSubmit)

	// API routes
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetStudentsAPI)         // Get all students
	api.Get("/:id", GetStudentByIDAPI)   // Get single student by ID
	api.Post("/", CreateStudentAPI)      // Create new student
	api.Put("/:id", UpdateStudentAPI)    // Update existing student
	api.Delete("/:id", DeleteStudentAPI) // Archive and delete student
}

// HomePage is the staff view of the student list. A read fault degrades
// to an empty list rather than an error page.
func HomePage(c *fiber.Ctx) error {
	students, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		log.Printf("home: load students: %v", err)
	}

	return c.Render("home", fiber.Map{
		"Title":       "Students - StudentDesk",
		"CurrentPage": "home",
		"students":    students,
	})
}

// InfoPage is the public read-only view of the same list.
func InfoPage(c *fiber.Ctx) error {
	students, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		log.Printf("info: load students: %v", err)
	}

	return c.Render("info", fiber.Map{
		"Title":       "Student Directory - StudentDesk",
		"CurrentPage": "info",
		"students":    students,
	})
}

func AddStudentPage(c *fiber.Ctx) error {
	return c.Render("add_student", fiber.Map{
		"Title":       "Add Student - StudentDesk",
		"CurrentPage": "add_student",
	})
}

func AddStudentSubmit(c *fiber.Ctx) error {
	student, message := studentFromForm(c)
	if student == nil {
		flash.Set(c, "error", message)
		return c.Redirect("/add_student")
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		log.Printf("add student: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save student")
	}

	flash.Set(c, "success", "Student added successfully!")
	return c.Redirect("/home")
}

func EditStudentPage(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.ErrNotFound
		}
		log.Printf("edit: load student %s: %v", c.Params("id"), err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}

	return c.Render("edit", fiber.Map{
		"Title":       "Edit Student - StudentDesk",
		"CurrentPage": "home",
		"student":     student,
	})
}

func EditStudentSubmit(c *fiber.Ctx) error {
	studentID := c.Params("id")

	student, message := studentFromForm(c)
	if student == nil {
		flash.Set(c, "error", message)
		return c.Redirect("/edit/" + studentID)
	}
	student.ID = studentID

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.ErrNotFound
		}
		log.Printf("edit: update student %s: %v", studentID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	flash.Set(c, "success", "Student information updated successfully!")
	return c.Redirect("/home")
}

func DeleteStudentSubmit(c *fiber.Ctx) error {
	studentID := c.Params("id")

	err := database.ArchiveStudent(config.GetDB(), studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			flash.Set(c, "error", "Student not found")
			return c.Redirect("/home")
		}
		log.Printf("delete: archive student %s: %v", studentID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}

	flash.Set(c, "success", "Student deleted successfully!")
	return c.Redirect("/home")
}

// studentFromForm trims and validates the submitted fields. On a
// validation failure it returns nil and a field-specific message.
func studentFromForm(c *fiber.Ctx) (*models.Student, string) {
	name := strings.TrimSpace(c.FormValue("name"))
	phoneNumber := strings.TrimSpace(c.FormValue("phone_number"))
	email := strings.TrimSpace(c.FormValue("email"))

	if name == "" {
		return nil, "Name cannot be empty!"
	}
	if phoneNumber == "" {
		return nil, "Phone Number cannot be empty!"
	}
	if email == "" {
		return nil, "Email cannot be empty!"
	}

	return &models.Student{
		Name:        name,
		PhoneNumber: phoneNumber,
		Email:       email,
	}, ""
}
