package extraction

import (
	"regexp"
	"strings"
)

// Letter runs use horizontal whitespace only so that a match never spans
// two lines of the block.
var (
	degreePattern = regexp.MustCompile(
		`(Bachelor|Master|PhD|Associate|Doctorate|B\.Sc\.|M\.Sc\.|M\.A\.|B\.A\.)[ \t]*(?:of)?[ \t]*([A-Za-z \t]+)?`,
	)
	institutionPattern = regexp.MustCompile(`[A-Za-z \t]+(?:University|Institute|College)`)
	yearPattern        = regexp.MustCompile(`\d{4}`)
)

// graduationDay is a fixed placeholder; résumés rarely state a day.
const graduationDay = "-12-31"

type Education struct {
	University         string
	Major              string
	ExpectedGraduation string
}

// ExtractEducation scans an education block for degree, institution and
// graduation year. Each field is found independently.
func ExtractEducation(block string) Education {
	return Education{
		University:         extractUniversity(block),
		Major:              extractMajor(block),
		ExpectedGraduation: extractGraduation(block),
	}
}

func extractMajor(block string) string {
	m := degreePattern.FindStringSubmatch(block)
	if m == nil {
		return Unknown
	}

	return strings.TrimSpace(m[1] + " of " + strings.TrimSpace(m[2]))
}

func extractUniversity(block string) string {
	if match := institutionPattern.FindString(block); match != "" {
		return strings.TrimSpace(match)
	}
	return Unknown
}

func extractGraduation(block string) string {
	if year := yearPattern.FindString(block); year != "" {
		return year + graduationDay
	}
	return Unknown
}
