package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-extractor/internal/models"
	"alfredoptarigan/resume-extractor/internal/repositories"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type StudentHandler struct {
	studentRepo  repositories.StudentRepository
	documentRepo repositories.StudentDocumentRepository
}

func NewStudentHandler(
	studentRepo repositories.StudentRepository,
	documentRepo repositories.StudentDocumentRepository,
) *StudentHandler {
	return &StudentHandler{
		studentRepo:  studentRepo,
		documentRepo: documentRepo,
	}
}

// HandleListStudents handles GET /students
func (h *StudentHandler) HandleListStudents(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultPageSize)
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	students, err := h.studentRepo.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list students",
		})
	}
	if students == nil {
		students = []models.Student{}
	}

	return c.JSON(models.StudentListResponse{
		Students: students,
		Limit:    limit,
		Offset:   offset,
	})
}

// HandleSaveStudent handles POST /students. A reviewed record is stored by
// email; an existing student keeps its hiring status.
func (h *StudentHandler) HandleSaveStudent(c *fiber.Ctx) error {
	var req models.SaveStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMessage(err),
		})
	}

	student, err := h.studentRepo.SaveProfile(models.NewStudentFromResult(req.Result()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save student",
		})
	}

	return c.JSON(models.SaveStudentResponse{
		Message: "Data saved successfully!",
		Student: student,
	})
}

// HandleGetStudent handles GET /students/:id
func (h *StudentHandler) HandleGetStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student ID format",
		})
	}

	student, err := h.studentRepo.FindByID(id)
	if err != nil {
		return h.lookupError(c, err)
	}

	return c.JSON(student)
}

// HandleListDocuments handles GET /students/:id/documents
func (h *StudentHandler) HandleListDocuments(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student ID format",
		})
	}

	if _, err := h.studentRepo.FindByID(id); err != nil {
		return h.lookupError(c, err)
	}

	docs, err := h.documentRepo.FindByStudentID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list documents",
		})
	}
	if docs == nil {
		docs = []models.StudentDocument{}
	}

	return c.JSON(fiber.Map{
		"documents": docs,
	})
}

// HandleUpdateHiringStatus handles PATCH /students/:id/hiring_status
func (h *StudentHandler) HandleUpdateHiringStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student ID format",
		})
	}

	var req models.HiringStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMessage(err),
		})
	}

	status := models.HiringStatus(req.HiringStatus)
	if err := h.studentRepo.UpdateHiringStatus(id, status); err != nil {
		return h.lookupError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":            id.String(),
		"hiring_status": status,
	})
}

func (h *StudentHandler) lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrStudentNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Student not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to load student",
	})
}
