package extraction

import (
	"log"
	"runtime/debug"
)

// Extractor composes segmentation and the field extractors into a Result.
// It holds no per-call state and may be shared between goroutines.
type Extractor struct {
	segmenter *Segmenter
	names     *NameExtractor
}

func NewExtractor(recognizer EntityRecognizer, segmenter *Segmenter) *Extractor {
	if segmenter == nil {
		segmenter = NewSegmenter(FullHeadings)
	}
	return &Extractor{
		segmenter: segmenter,
		names:     NewNameExtractor(recognizer),
	}
}

// Extract never fails: fields without evidence stay Unknown, and a failing
// entity recognizer yields the all-default record.
func (e *Extractor) Extract(text string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Extraction panicked, falling back to defaults: %v\n%s", r, debug.Stack())
			result = Defaults()
		}
	}()

	result = Defaults()
	sections := e.segmenter.Segment(text)

	name, err := e.names.Extract(text)
	if err != nil {
		log.Printf("⚠️  Entity recognition failed, falling back to defaults: %v", err)
		return Defaults()
	}
	result.FirstName = name.FirstName
	result.LastName = name.LastName

	result.Email = ExtractEmail(text)

	block, _ := sections.Get(EducationSection)
	edu := ExtractEducation(block)
	result.University = edu.University
	result.Major = edu.Major
	result.ExpectedGraduation = edu.ExpectedGraduation

	return result
}
