package extraction

import "testing"

func TestDefaultRecognizerIsShared(t *testing.T) {
	first, err := DefaultRecognizer()
	if err != nil {
		t.Fatalf("DefaultRecognizer() error = %v", err)
	}
	second, err := DefaultRecognizer()
	if err != nil {
		t.Fatalf("DefaultRecognizer() error = %v", err)
	}
	if first != second {
		t.Error("DefaultRecognizer() returned different instances")
	}
}

func TestProseRecognizerEmptyText(t *testing.T) {
	rec, err := DefaultRecognizer()
	if err != nil {
		t.Fatalf("DefaultRecognizer() error = %v", err)
	}

	entities, err := rec.Entities("")
	if err != nil {
		t.Fatalf("Entities() error = %v", err)
	}
	if len(entities) != 0 {
		t.Errorf("Entities(\"\") = %v, want none", entities)
	}
}

func TestProseRecognizerThroughExtractor(t *testing.T) {
	rec, err := DefaultRecognizer()
	if err != nil {
		t.Fatalf("DefaultRecognizer() error = %v", err)
	}

	got := NewExtractor(rec, nil).Extract("Contact: jane@example.com\nEducation\nState University 2024")
	if got.Email != "jane@example.com" {
		t.Errorf("Email = %q", got.Email)
	}
	if got.University != "State University" || got.ExpectedGraduation != "2024-12-31" {
		t.Errorf("education fields = %q, %q", got.University, got.ExpectedGraduation)
	}
	if got.HiringStatus != StatusPending {
		t.Errorf("HiringStatus = %q", got.HiringStatus)
	}
}
