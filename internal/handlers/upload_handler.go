package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-extractor/internal/models"
	"alfredoptarigan/resume-extractor/internal/services"
)

type UploadHandler struct {
	resumeService  services.ResumeService
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(
	resumeService services.ResumeService,
	storageService services.StorageService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		resumeService:  resumeService,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUploadResume handles POST /upload_resume
func (h *UploadHandler) HandleUploadResume(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	files, exists := form.File["resume"]
	if !exists || len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file part",
		})
	}
	file := files[0]

	if file.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No selected file",
		})
	}

	if _, err := services.FormatOf(file.Filename); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	documentType := strings.TrimSpace(c.FormValue("document_type"))
	if documentType == "" {
		documentType = models.DefaultDocumentType
	}

	atsScore := 0.0
	if raw := strings.TrimSpace(c.FormValue("ats_score")); raw != "" {
		atsScore, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "ats_score must be a number",
			})
		}
	}

	// Save file
	filename, filePath, err := h.storageService.SaveFile(file, "resume")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	result, err := h.resumeService.Ingest(c.UserContext(), services.IngestRequest{
		FilePath:     filePath,
		Filename:     filename,
		OriginalName: file.Filename,
		DocumentType: documentType,
		ATSScore:     atsScore,
	})
	if err != nil {
		// Cleanup uploaded file if processing fails
		if delErr := h.storageService.DeleteFile(filename); delErr != nil {
			log.Printf("⚠️  Failed to remove %s after error: %v\n", filename, delErr)
		}

		if errors.Is(err, services.ErrTextExtraction) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to process resume: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		Message:    "Resume uploaded and processed successfully!",
		StudentID:  result.Student.ID.String(),
		DocumentID: result.Document.ID.String(),
		Data:       result.Extraction,
	})
}
