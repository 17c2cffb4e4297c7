package extraction

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubRecognizer struct {
	entities []Entity
	err      error
	panics   bool
	calls    int
}

func (s *stubRecognizer) Entities(text string) ([]Entity, error) {
	s.calls++
	if s.panics {
		panic("model exploded")
	}
	return s.entities, s.err
}

func person(text string) Entity {
	return Entity{Text: text, Label: LabelPerson}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		entities []Entity
		want     Result
	}{
		{
			name:     "complete resume",
			text:     "John Smith\njohn.smith@example.com\nEducation\nBachelor of Computer Science\nState University\nExpected graduation 2025",
			entities: []Entity{person("John Smith")},
			want: Result{
				FirstName:          "John",
				LastName:           "Smith",
				Email:              "john.smith@example.com",
				University:         "State University",
				Major:              "Bachelor of Computer Science",
				ExpectedGraduation: "2025-12-31",
				HiringStatus:       StatusPending,
			},
		},
		{
			name:     "no education heading",
			text:     "Jane Doe\njane@doe.io\nBachelor of Arts\nCity College 2019",
			entities: []Entity{person("Jane Doe")},
			want: Result{
				FirstName:          "Jane",
				LastName:           "Doe",
				Email:              "jane@doe.io",
				University:         Unknown,
				Major:              Unknown,
				ExpectedGraduation: Unknown,
				HiringStatus:       StatusPending,
			},
		},
		{
			name: "two email addresses",
			text: "contact: first@mail.com or second@mail.com",
			want: Result{
				FirstName:          Unknown,
				LastName:           Unknown,
				Email:              "first@mail.com",
				University:         Unknown,
				Major:              Unknown,
				ExpectedGraduation: Unknown,
				HiringStatus:       StatusPending,
			},
		},
		{
			name: "empty text",
			text: "",
			want: Defaults(),
		},
		{
			name:     "decorated education heading is a different label",
			text:     "Alex Kim\nEducation:\nMaster of Data Science\nTech Institute 2024",
			entities: []Entity{person("alex kim")},
			want: Result{
				FirstName:          "Alex",
				LastName:           "Kim",
				Email:              Unknown,
				University:         Unknown,
				Major:              Unknown,
				ExpectedGraduation: Unknown,
				HiringStatus:       StatusPending,
			},
		},
		{
			name: "text extraction error message",
			text: "Error extracting text from PDF: malformed xref table",
			want: Defaults(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(&stubRecognizer{entities: tt.entities}, nil)
			got := e.Extract(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractRecognizerFailureFallsBackToDefaults(t *testing.T) {
	text := "John Smith\njohn@example.com\nEducation\nBachelor of Law\nState University 2020"

	t.Run("error", func(t *testing.T) {
		e := NewExtractor(&stubRecognizer{err: errors.New("bad input")}, nil)
		if diff := cmp.Diff(Defaults(), e.Extract(text)); diff != "" {
			t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("panic", func(t *testing.T) {
		e := NewExtractor(&stubRecognizer{panics: true}, nil)
		if diff := cmp.Diff(Defaults(), e.Extract(text)); diff != "" {
			t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestExtractIsIdempotent(t *testing.T) {
	rec := &stubRecognizer{entities: []Entity{person("Maria Lopez Garcia")}}
	e := NewExtractor(rec, NewSegmenter(ReducedHeadings))
	text := "Maria Lopez Garcia\nmaria@uni.edu\n\nEDUCATION\n  PhD of Chemistry  \nNorthern Institute\n2021 - 2026\nSkills\nGo"

	first := e.Extract(text)
	second := e.Extract(text)
	if first != second {
		t.Fatalf("Extract() not idempotent: %+v vs %+v", first, second)
	}
	if rec.calls != 2 {
		t.Errorf("recognizer called %d times, want 2", rec.calls)
	}

	want := Result{
		FirstName:          "Maria",
		LastName:           "Lopez garcia",
		Email:              "maria@uni.edu",
		University:         "Northern Institute",
		Major:              "PhD of Chemistry",
		ExpectedGraduation: "2021-12-31",
		HiringStatus:       StatusPending,
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}
