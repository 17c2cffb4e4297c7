package models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultDocumentType = "Resume"

type StudentDocument struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID        uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	DocumentType     string    `gorm:"type:text;not null" json:"document_type"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	FileType         string    `gorm:"type:text" json:"file_type"`
	FilePath         string    `gorm:"type:text" json:"file_path"`
	ATSScore         float64   `gorm:"type:decimal(5,2);default:0" json:"ats_score"`
	UploadDate       time.Time `gorm:"type:timestamp;default:now()" json:"upload_date"`
}

func (d *StudentDocument) TableName() string {
	return "student_documents"
}
