package repositories

import (
	"testing"

	"alfredoptarigan/resume-extractor/internal/models"
)

func TestStudentUpdates(t *testing.T) {
	student := &models.Student{
		Email:              "jane@doe.io",
		FirstName:          "Jane",
		LastName:           "Doe",
		University:         "State University",
		Major:              "Bachelor of Computer Science",
		ExpectedGraduation: "2020-12-31",
		HiringStatus:       models.HiringPending,
	}

	t.Run("resume ingest resets hiring status", func(t *testing.T) {
		updates := studentUpdates(student, true)
		if updates["hiring_status"] != models.HiringPending {
			t.Errorf("hiring_status = %v, want pending", updates["hiring_status"])
		}
	})

	t.Run("profile save keeps hiring status", func(t *testing.T) {
		updates := studentUpdates(student, false)
		if _, ok := updates["hiring_status"]; ok {
			t.Errorf("hiring_status must not be updated, got %v", updates["hiring_status"])
		}
	})

	updates := studentUpdates(student, false)
	for column, want := range map[string]string{
		"first_name":          "Jane",
		"last_name":           "Doe",
		"university":          "State University",
		"major":               "Bachelor of Computer Science",
		"expected_graduation": "2020-12-31",
	} {
		if updates[column] != want {
			t.Errorf("%s = %v, want %q", column, updates[column], want)
		}
	}
	if _, ok := updates["email"]; ok {
		t.Error("email is the upsert key and must not be updated")
	}
	if _, ok := updates["updated_at"]; !ok {
		t.Error("updated_at missing")
	}
}
