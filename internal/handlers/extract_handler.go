package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-extractor/internal/models"
	"alfredoptarigan/resume-extractor/internal/services"
)

type ExtractHandler struct {
	extractor services.ResumeExtractor
}

func NewExtractHandler(extractor services.ResumeExtractor) *ExtractHandler {
	return &ExtractHandler{extractor: extractor}
}

// HandleExtract handles POST /extract. Nothing is stored.
func (h *ExtractHandler) HandleExtract(c *fiber.Ctx) error {
	var req models.ExtractRequest

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

	return c.JSON(h.extractor.Extract(req.Text))
}
