package students

import (
	"database/sql"
	"errors"
	"strings"

	"studentdesk/app/config"
	"studentdesk/app/database"
	"studentdesk/app/models"

	"github.com/gofiber/fiber/v2"
)

type studentRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

func (r *studentRequest) validate() (*models.Student, string) {
	name := strings.TrimSpace(r.Name)
	phoneNumber := strings.TrimSpace(r.PhoneNumber)
	email := strings.TrimSpace(r.Email)

	if name == "" {
		return nil, "name is required"
	}
	if phoneNumber == "" {
		return nil, "phone_number is required"
	}
	if email == "" {
		return nil, "email is required"
	}

	return &models.Student{
		Name:        name,
		PhoneNumber: phoneNumber,
		Email:       email,
	}, ""
}

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	return c.JSON(student)
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	student, message := req.validate()
	if student == nil {
		return c.Status(400).JSON(fiber.Map{"error": message})
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(student)
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	student, message := req.validate()
	if student == nil {
		return c.Status(400).JSON(fiber.Map{"error": message})
	}
	student.ID = c.Params("id")

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(student)
}

// DeleteStudentAPI archives the student before removing the live row,
// same as the web delete.
func DeleteStudentAPI(c *fiber.Ctx) error {
	err := database.ArchiveStudent(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"message": "Student archived and deleted"})
}
