package extraction

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name     string
		headings []string
		text     string
		want     []Section
	}{
		{
			name:     "no headings",
			headings: FullHeadings,
			text:     "John Smith\n\n   john@example.com  \n",
			want:     []Section{{Label: "other", Text: "John Smith\njohn@example.com"}},
		},
		{
			name:     "empty text",
			headings: FullHeadings,
			text:     " \n\n\t",
			want:     []Section{},
		},
		{
			name:     "headings become labels",
			headings: FullHeadings,
			text:     "John Smith\nEducation\nBSc Physics\nState University\nWork Experience\nAcme Corp",
			want: []Section{
				{Label: "other", Text: "John Smith"},
				{Label: "education", Text: "BSc Physics\nState University"},
				{Label: "work experience", Text: "Acme Corp"},
			},
		},
		{
			name:     "label is the whole heading line",
			headings: FullHeadings,
			text:     "EDUCATION & TRAINING\nMaster of Arts",
			want:     []Section{{Label: "education & training", Text: "Master of Arts"}},
		},
		{
			name:     "keyword inside a sentence starts a section",
			headings: FullHeadings,
			text:     "Education\nState University\nLed projects for the lab\nPublished two papers",
			want: []Section{
				{Label: "education", Text: "State University"},
				{Label: "led projects for the lab", Text: "Published two papers"},
			},
		},
		{
			name:     "empty sections are not stored",
			headings: FullHeadings,
			text:     "Skills\nEducation\nState College",
			want:     []Section{{Label: "education", Text: "State College"}},
		},
		{
			name:     "reduced vocabulary ignores awards",
			headings: ReducedHeadings,
			text:     "Skills\nGo\nAwards\nDean's list",
			want:     []Section{{Label: "skills", Text: "Go\nAwards\nDean's list"}},
		},
		{
			name:     "full vocabulary splits awards",
			headings: FullHeadings,
			text:     "Skills\nGo\nAwards\nDean's list",
			want: []Section{
				{Label: "skills", Text: "Go"},
				{Label: "awards", Text: "Dean's list"},
			},
		},
		{
			name:     "repeated label keeps first position",
			headings: FullHeadings,
			text:     "Skills\nGo\nProjects\nCompiler\nSkills\nRust",
			want: []Section{
				{Label: "skills", Text: "Go\nRust"},
				{Label: "projects", Text: "Compiler"},
			},
		},
		{
			name:     "windows line endings",
			headings: FullHeadings,
			text:     "Jane\r\nEducation\r\nCity College\r\n",
			want: []Section{
				{Label: "other", Text: "Jane"},
				{Label: "education", Text: "City College"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSegmenter(tt.headings).Segment(tt.text).Sections()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Segment() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSegmentIsTotal(t *testing.T) {
	text := `  Ada Lovelace
ada@engine.org

Education
University of London
Mathematics 1835

Projects
Analytical Engine notes
Certifications
Royal Society
`
	s := NewSegmenter(FullHeadings)
	sections := s.Segment(text)

	var want []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || s.isHeading(strings.ToLower(line)) {
			continue
		}
		want = append(want, line)
	}

	var got []string
	for _, sec := range sections.Sections() {
		got = append(got, strings.Split(sec.Text, "\n")...)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("segmented lines mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionMapGet(t *testing.T) {
	sections := NewSegmenter(nil).Segment("Intro\nEducation\nState University")

	if got, ok := sections.Get("education"); !ok || got != "State University" {
		t.Errorf("Get(education) = %q, %v", got, ok)
	}
	if _, ok := sections.Get("skills"); ok {
		t.Errorf("Get(skills) found a missing section")
	}
	if diff := cmp.Diff([]string{"other", "education"}, sections.Labels()); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}
	if sections.Len() != 2 {
		t.Errorf("Len() = %d, want 2", sections.Len())
	}
}

func TestHeadingsFor(t *testing.T) {
	if got, err := HeadingsFor("full"); err != nil || len(got) != len(FullHeadings) {
		t.Errorf("HeadingsFor(full) = %v, %v", got, err)
	}
	if got, err := HeadingsFor(" Reduced "); err != nil || len(got) != len(ReducedHeadings) {
		t.Errorf("HeadingsFor(reduced) = %v, %v", got, err)
	}
	if got, err := HeadingsFor(""); err != nil || len(got) != len(FullHeadings) {
		t.Errorf("HeadingsFor(\"\") = %v, %v", got, err)
	}
	if _, err := HeadingsFor("extended"); err == nil {
		t.Error("HeadingsFor(extended) expected error")
	}
}
