package extraction

import (
	"fmt"
	"strings"
)

// OtherSection labels lines that precede the first recognized heading.
const OtherSection = "other"

// EducationSection is the label the orchestrator reads the education block from.
const EducationSection = "education"

var (
	FullHeadings = []string{
		"education", "work experience", "skills", "projects",
		"certifications", "languages", "awards", "hobbies",
	}

	ReducedHeadings = []string{"education", "work experience", "skills", "projects"}
)

// HeadingsFor resolves a vocabulary policy name ("full" or "reduced").
func HeadingsFor(policy string) ([]string, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", "full":
		return FullHeadings, nil
	case "reduced":
		return ReducedHeadings, nil
	default:
		return nil, fmt.Errorf("unknown section vocabulary: %q", policy)
	}
}

type Section struct {
	Label string
	Text  string
}

// SectionMap keeps section blocks in the order their labels first appeared.
type SectionMap struct {
	sections []Section
	index    map[string]int
}

func newSectionMap() SectionMap {
	return SectionMap{index: make(map[string]int)}
}

func (m *SectionMap) put(label string, lines []string) {
	text := strings.Join(lines, "\n")
	if i, ok := m.index[label]; ok {
		m.sections[i].Text += "\n" + text
		return
	}
	m.index[label] = len(m.sections)
	m.sections = append(m.sections, Section{Label: label, Text: text})
}

// Get returns the block stored under label.
func (m SectionMap) Get(label string) (string, bool) {
	i, ok := m.index[label]
	if !ok {
		return "", false
	}
	return m.sections[i].Text, true
}

func (m SectionMap) Len() int {
	return len(m.sections)
}

func (m SectionMap) Labels() []string {
	labels := make([]string, 0, len(m.sections))
	for _, s := range m.sections {
		labels = append(labels, s.Label)
	}
	return labels
}

// Sections returns a copy of the blocks in order.
func (m SectionMap) Sections() []Section {
	out := make([]Section, len(m.sections))
	copy(out, m.sections)
	return out
}

type Segmenter struct {
	headings []string
}

func NewSegmenter(headings []string) *Segmenter {
	if len(headings) == 0 {
		headings = FullHeadings
	}
	return &Segmenter{headings: headings}
}

// Segment splits text into blocks keyed by the lowercased heading line that
// opened them. A line is a heading when it contains any vocabulary keyword,
// even as part of a longer sentence.
func (s *Segmenter) Segment(text string) SectionMap {
	sections := newSectionMap()
	current := OtherSection
	var buffer []string

	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		if s.isHeading(lower) {
			if len(buffer) > 0 {
				sections.put(current, buffer)
			}
			current = lower
			buffer = nil
			continue
		}

		buffer = append(buffer, line)
	}

	if len(buffer) > 0 {
		sections.put(current, buffer)
	}

	return sections
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

func (s *Segmenter) isHeading(lower string) bool {
	for _, h := range s.headings {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}
