package models

import "strings"

// ValidationStatus is the closed set of labels a point can carry.
type ValidationStatus string

const (
	StatusNotValidated ValidationStatus = "Not Validated"
	StatusCorrect      ValidationStatus = "Correct"
	StatusIncorrect    ValidationStatus = "Incorrect"
)

// DefaultCategory is assigned when source data has no crop attribute.
const DefaultCategory = "Unknown"

// CategoryAll selects every record regardless of category.
const CategoryAll = "All"

// CoerceStatus maps a raw source value onto the closed status set.
// Boolean-valued inputs map true→Correct and false→Incorrect; the three
// canonical labels map to themselves. The second return value reports
// whether the input was recognized — unrecognized values coerce to
// Not Validated so the ingest layer can count and log them.
func CoerceStatus(raw string) (ValidationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "correct":
		return StatusCorrect, true
	case "false", "incorrect":
		return StatusIncorrect, true
	case "", "not validated":
		return StatusNotValidated, true
	default:
		return StatusNotValidated, false
	}
}

// Validated reports whether the record has been labeled either way.
func (s ValidationStatus) Validated() bool {
	return s == StatusCorrect || s == StatusIncorrect
}

// Record represents one annotated geospatial point. Coordinates are
// geographic (EPSG:4326). Only Status mutates after load.
type Record struct {
	SerialID  int64            `json:"serialId"`
	Category  string           `json:"category"`
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Status    ValidationStatus `json:"status"`
}
