package extraction

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Name struct {
	FirstName string
	LastName  string
}

// NameExtractor takes the first person entity in the document as the
// candidate's own name.
type NameExtractor struct {
	recognizer EntityRecognizer
}

func NewNameExtractor(recognizer EntityRecognizer) *NameExtractor {
	return &NameExtractor{recognizer: recognizer}
}

func (n *NameExtractor) Extract(text string) (Name, error) {
	entities, err := n.recognizer.Entities(text)
	if err != nil {
		return Name{FirstName: Unknown, LastName: Unknown}, err
	}

	for _, ent := range entities {
		if ent.Label == LabelPerson {
			return SplitName(ent.Text), nil
		}
	}

	return Name{FirstName: Unknown, LastName: Unknown}, nil
}

// SplitName turns a person entity into first and last name. Everything after
// the first token is the last name.
func SplitName(full string) Name {
	tokens := strings.Fields(full)
	if len(tokens) == 0 {
		return Name{FirstName: Unknown, LastName: Unknown}
	}

	name := Name{FirstName: capitalize(tokens[0]), LastName: Unknown}
	if len(tokens) > 1 {
		name.LastName = capitalize(strings.Join(tokens[1:], " "))
	}
	return name
}

// capitalize upper-cases the first rune and lower-cases the rest, so
// "mcDONALD" becomes "Mcdonald" and "van der berg" becomes "Van der berg".
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}
