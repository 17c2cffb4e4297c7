package models

import (
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-extractor/internal/extraction"
)

type HiringStatus string

const (
	HiringPending      HiringStatus = extraction.StatusPending
	HiringInterviewing HiringStatus = "interviewing"
	HiringOffered      HiringStatus = "offered"
	HiringHired        HiringStatus = "hired"
	HiringRejected     HiringStatus = "rejected"
)

func (s HiringStatus) Valid() bool {
	switch s {
	case HiringPending, HiringInterviewing, HiringOffered, HiringHired, HiringRejected:
		return true
	}
	return false
}

// Student is keyed by email: a later résumé with the same address updates
// the existing row. Fields without evidence hold extraction.Unknown.
type Student struct {
	ID                 uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email              string       `gorm:"type:text;uniqueIndex;not null" json:"email"`
	FirstName          string       `gorm:"type:text" json:"first_name"`
	LastName           string       `gorm:"type:text" json:"last_name"`
	University         string       `gorm:"type:text" json:"university"`
	Major              string       `gorm:"type:text" json:"major"`
	ExpectedGraduation string       `gorm:"type:text" json:"expected_graduation"`
	HiringStatus       HiringStatus `gorm:"type:text;not null;default:'pending'" json:"hiring_status"`
	CreatedAt          time.Time    `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt          time.Time    `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Relations
	Documents []StudentDocument `gorm:"foreignKey:StudentID" json:"documents,omitempty"`
}

func (Student) TableName() string {
	return "students"
}

// NewStudentFromResult maps an extraction record onto a new student row.
func NewStudentFromResult(result extraction.Result) *Student {
	now := time.Now()
	return &Student{
		ID:                 uuid.New(),
		Email:              result.Email,
		FirstName:          result.FirstName,
		LastName:           result.LastName,
		University:         result.University,
		Major:              result.Major,
		ExpectedGraduation: result.ExpectedGraduation,
		HiringStatus:       HiringStatus(result.HiringStatus),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
