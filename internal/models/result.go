package models

import (
	"strings"

	"alfredoptarigan/resume-extractor/internal/extraction"
)

type UploadResponse struct {
	Message    string            `json:"message"`
	StudentID  string            `json:"student_id"`
	DocumentID string            `json:"document_id"`
	Data       extraction.Result `json:"data"`
}

type ExtractRequest struct {
	Text string `json:"text" validate:"required"`
}

type HiringStatusRequest struct {
	HiringStatus string `json:"hiring_status" validate:"required,oneof=pending interviewing offered hired rejected"`
}

type StudentListResponse struct {
	Students []Student `json:"students"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}

// SaveStudentRequest carries a reviewed extraction record. It binds from JSON
// or from a form post.
type SaveStudentRequest struct {
	Email              string `json:"email" form:"email" validate:"required,email"`
	FirstName          string `json:"first_name" form:"first_name"`
	LastName           string `json:"last_name" form:"last_name"`
	University         string `json:"university" form:"university"`
	Major              string `json:"major" form:"major"`
	ExpectedGraduation string `json:"expected_graduation" form:"expected_graduation"`
}

// Result maps the request onto an extraction record; blank fields stay
// extraction.Unknown.
func (r SaveStudentRequest) Result() extraction.Result {
	result := extraction.Defaults()
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}

	set(&result.Email, r.Email)
	set(&result.FirstName, r.FirstName)
	set(&result.LastName, r.LastName)
	set(&result.University, r.University)
	set(&result.Major, r.Major)
	set(&result.ExpectedGraduation, r.ExpectedGraduation)
	return result
}

type SaveStudentResponse struct {
	Message string   `json:"message"`
	Student *Student `json:"student"`
}
