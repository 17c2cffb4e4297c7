package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-extractor/internal/extraction"
	"alfredoptarigan/resume-extractor/internal/models"
	"alfredoptarigan/resume-extractor/internal/repositories"
)

// ErrTextExtraction wraps failures to read text out of a stored document.
var ErrTextExtraction = errors.New("failed to extract document text")

// ResumeExtractor turns résumé text into a candidate record.
type ResumeExtractor interface {
	Extract(text string) extraction.Result
}

type IngestRequest struct {
	FilePath     string
	Filename     string
	OriginalName string
	DocumentType string
	ATSScore     float64
}

type IngestResult struct {
	Student    *models.Student
	Document   *models.StudentDocument
	Extraction extraction.Result
}

type ResumeService interface {
	Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error)
}

type resumeService struct {
	studentRepo repositories.StudentRepository
	parser      DocumentParserService
	extractor   ResumeExtractor
}

func NewResumeService(
	studentRepo repositories.StudentRepository,
	parser DocumentParserService,
	extractor ResumeExtractor,
) ResumeService {
	return &resumeService{
		studentRepo: studentRepo,
		parser:      parser,
		extractor:   extractor,
	}
}

// Ingest reads the stored document, extracts the candidate record and saves
// it together with a document row pointing at the file. Nothing is written
// when either row fails.
func (s *resumeService) Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ingest cancelled: %w", err)
	}

	if req.DocumentType == "" {
		req.DocumentType = models.DefaultDocumentType
	}
	if req.Filename == "" {
		req.Filename = filepath.Base(req.FilePath)
	}
	if req.OriginalName == "" {
		req.OriginalName = req.Filename
	}

	// Step 1: Read text
	log.Printf("📄 Parsing %s...\n", req.OriginalName)
	content, err := s.parser.ExtractTextWithMetaData(req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTextExtraction, err)
	}

	// Step 2: Extract fields
	result := s.extractor.Extract(content.Text)
	log.Printf("🔍 Extracted %s (%d pages, %d characters): name=%q email=%q\n",
		content.Format, content.PageCount, len(content.Text),
		strings.TrimSpace(result.FirstName+" "+result.LastName), result.Email)

	// Step 3: Save student and document in one transaction
	doc := &models.StudentDocument{
		ID:               uuid.New(),
		DocumentType:     req.DocumentType,
		Filename:         req.Filename,
		OriginalFileName: req.OriginalName,
		FileType:         content.Format,
		FilePath:         req.FilePath,
		ATSScore:         req.ATSScore,
		UploadDate:       time.Now(),
	}
	student, err := s.studentRepo.UpsertWithDocument(models.NewStudentFromResult(result), doc)
	if err != nil {
		return nil, fmt.Errorf("failed to save student: %w", err)
	}

	log.Printf("✅ Résumé %s stored for student %s\n", req.OriginalName, student.ID)

	return &IngestResult{
		Student:    student,
		Document:   doc,
		Extraction: result,
	}, nil
}
