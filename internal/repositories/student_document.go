package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-extractor/internal/models"
)

type StudentDocumentRepository interface {
	FindByStudentID(studentID uuid.UUID) ([]models.StudentDocument, error)
}

type studentDocumentRepository struct {
	db *gorm.DB
}

func NewStudentDocumentRepository(db *gorm.DB) StudentDocumentRepository {
	return &studentDocumentRepository{db: db}
}

// FindByStudentID implements StudentDocumentRepository.
func (r *studentDocumentRepository) FindByStudentID(studentID uuid.UUID) ([]models.StudentDocument, error) {
	var docs []models.StudentDocument
	err := r.db.
		Where("student_id = ?", studentID).
		Order("upload_date DESC").
		Find(&docs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find student documents: %w", err)
	}

	return docs, nil
}
