package extraction

import (
	"fmt"
	"log"
	"sync"

	"github.com/jdkato/prose/v2"
)

// LabelPerson is the entity label assigned to person names.
const LabelPerson = "PERSON"

type Entity struct {
	Text  string
	Label string
}

// EntityRecognizer labels spans of text. Implementations must be safe for
// concurrent use.
type EntityRecognizer interface {
	Entities(text string) ([]Entity, error)
}

// ProseRecognizer runs prose's named-entity model. The model is loaded once
// and shared read-only by every call.
type ProseRecognizer struct {
	model *prose.Model
}

var (
	defaultRecognizer     *ProseRecognizer
	defaultRecognizerErr  error
	defaultRecognizerOnce sync.Once
)

// DefaultRecognizer returns the process-wide recognizer, loading the model on
// first use.
func DefaultRecognizer() (*ProseRecognizer, error) {
	defaultRecognizerOnce.Do(func() {
		defaultRecognizer, defaultRecognizerErr = NewProseRecognizer()
		if defaultRecognizerErr == nil {
			log.Println("✅ Entity recognition model loaded")
		}
	})
	return defaultRecognizer, defaultRecognizerErr
}

// NewProseRecognizer loads a fresh copy of the bundled English model.
// Prefer DefaultRecognizer outside tests.
func NewProseRecognizer() (*ProseRecognizer, error) {
	doc, err := prose.NewDocument("", prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to load entity model: %w", err)
	}
	if doc.Model == nil {
		return nil, fmt.Errorf("failed to load entity model: no model attached")
	}

	return &ProseRecognizer{model: doc.Model}, nil
}

// Entities implements EntityRecognizer.
func (r *ProseRecognizer) Entities(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(
		text,
		prose.UsingModel(r.model),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to recognize entities: %w", err)
	}

	found := doc.Entities()
	entities := make([]Entity, 0, len(found))
	for _, ent := range found {
		entities = append(entities, Entity{Text: ent.Text, Label: ent.Label})
	}

	return entities, nil
}
