package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-extractor/internal/models"
)

var ErrStudentNotFound = errors.New("student not found")

type StudentRepository interface {
	UpsertWithDocument(student *models.Student, document *models.StudentDocument) (*models.Student, error)
	SaveProfile(student *models.Student) (*models.Student, error)
	FindByID(id uuid.UUID) (*models.Student, error)
	List(limit, offset int) ([]models.Student, error)
	UpdateHiringStatus(id uuid.UUID, status models.HiringStatus) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// UpsertWithDocument implements StudentRepository. An existing student with
// the same email gets every extracted field and the hiring status
// overwritten; the student and the document commit together or not at all.
func (r *studentRepository) UpsertWithDocument(student *models.Student, document *models.StudentDocument) (*models.Student, error) {
	var saved *models.Student

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		saved, err = upsertStudent(tx, student, true)
		if err != nil {
			return err
		}

		document.StudentID = saved.ID
		if err := tx.Create(document).Error; err != nil {
			return fmt.Errorf("failed to create student document: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// SaveProfile implements StudentRepository. It stores reviewed fields for the
// email; an existing student keeps its hiring status.
func (r *studentRepository) SaveProfile(student *models.Student) (*models.Student, error) {
	var saved *models.Student

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		saved, err = upsertStudent(tx, student, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

func upsertStudent(tx *gorm.DB, student *models.Student, overwriteStatus bool) (*models.Student, error) {
	var existing models.Student
	err := tx.Where("email = ?", student.Email).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.Create(student).Error; err != nil {
			return nil, fmt.Errorf("failed to create student: %w", err)
		}
		saved := *student
		return &saved, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find student by email: %w", err)
	}

	if err := tx.Model(&existing).Updates(studentUpdates(student, overwriteStatus)).Error; err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	var saved models.Student
	if err := tx.Where("id = ?", existing.ID).First(&saved).Error; err != nil {
		return nil, fmt.Errorf("failed to reload student: %w", err)
	}
	return &saved, nil
}

func studentUpdates(student *models.Student, overwriteStatus bool) map[string]interface{} {
	updates := map[string]interface{}{
		"first_name":          student.FirstName,
		"last_name":           student.LastName,
		"university":          student.University,
		"major":               student.Major,
		"expected_graduation": student.ExpectedGraduation,
		"updated_at":          time.Now(),
	}
	if overwriteStatus {
		updates["hiring_status"] = student.HiringStatus
	}
	return updates
}

// FindByID implements StudentRepository.
func (r *studentRepository) FindByID(id uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := r.db.Preload("Documents").Where("id = ?", id).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	return &student, nil
}

// List implements StudentRepository.
func (r *studentRepository) List(limit, offset int) ([]models.Student, error) {
	var students []models.Student
	err := r.db.
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&students).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	return students, nil
}

// UpdateHiringStatus implements StudentRepository.
func (r *studentRepository) UpdateHiringStatus(id uuid.UUID, status models.HiringStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid hiring status: %q", status)
	}

	result := r.db.Model(&models.Student{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"hiring_status": status,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update hiring status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrStudentNotFound
	}

	return nil
}
