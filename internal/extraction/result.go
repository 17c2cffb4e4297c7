// Package extraction turns raw résumé text into a candidate record using
// section segmentation, entity recognition and pattern matching.
package extraction

// Unknown marks a field for which no evidence was found in the text.
const Unknown = "Unknown"

// StatusPending is the hiring status every freshly extracted record starts with.
const StatusPending = "pending"

type Result struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	University         string `json:"university"`
	Major              string `json:"major"`
	ExpectedGraduation string `json:"expected_graduation"`
	HiringStatus       string `json:"hiring_status"`
}

// Defaults returns a Result with every field set to its sentinel.
func Defaults() Result {
	return Result{
		FirstName:          Unknown,
		LastName:           Unknown,
		Email:              Unknown,
		University:         Unknown,
		Major:              Unknown,
		ExpectedGraduation: Unknown,
		HiringStatus:       StatusPending,
	}
}
