package models

// Navigation actions accepted by POST /navigate.
const (
	ActionNextPoint = "next_point"
	ActionPrevPoint = "prev_point"
	ActionNextBatch = "next_batch"
	ActionPrevBatch = "prev_batch"
	ActionJumpToID  = "jump_to_id"
)

// Validation targets accepted by POST /validate.
const (
	TargetCurrent = "current"
	TargetByID    = "id"
	TargetBulk    = "bulk"
)

// FilterRequest sets the active category filter.
type FilterRequest struct {
	Category string `json:"category" binding:"required"`
}

// NavigateRequest moves the cursor. SerialID is only consulted for the
// jump_to_id action.
type NavigateRequest struct {
	Action   string `json:"action" binding:"required"`
	SerialID int64  `json:"serialId"`
}

// ValidateRequest applies a validation label to one or more points.
type ValidateRequest struct {
	Target    string  `json:"target" binding:"required"`
	Status    string  `json:"status" binding:"required"`
	SerialID  int64   `json:"serialId"`
	SerialIDs []int64 `json:"serialIds"`
}

// SelectionRequest carries the vertex list of a user-drawn shape.
// Vertices are [longitude, latitude] pairs, GeoJSON ring order; a
// closing vertex equal to the first is accepted and ignored.
type SelectionRequest struct {
	Vertices [][2]float64 `json:"vertices" binding:"required"`
}

// BatchSnapshot is the read model handed to the rendering layer: the
// records of the current batch plus everything needed to draw the
// progress indicators and the map focus.
type BatchSnapshot struct {
	Records      []Record `json:"records"`
	Cursor       Cursor   `json:"cursor"`
	Focus        Focus    `json:"focus"`
	TotalBatches int      `json:"totalBatches"`
	TotalPoints  int      `json:"totalPoints"`
	Category     string   `json:"category"`
}

// NavigateResult is returned by every cursor transition.
type NavigateResult struct {
	Cursor Cursor `json:"cursor"`
	Focus  Focus  `json:"focus"`
}

// ValidateResult reports the outcome of a validation write.
type ValidateResult struct {
	Updated []Record `json:"updated"`
	Count   int      `json:"count"`
	Cursor  Cursor   `json:"cursor"`
	Focus   Focus    `json:"focus"`
	// Done is set when a ValidateCurrent could not advance because the
	// cursor was already on the last point of the last batch.
	Done bool `json:"done"`
}

// SelectionResult lists the points of the current batch contained in a
// drawn shape.
type SelectionResult struct {
	SerialIDs []int64  `json:"serialIds"`
	Records   []Record `json:"records"`
}

// LoadResult summarizes a completed upload.
type LoadResult struct {
	TotalPoints       int      `json:"totalPoints"`
	DuplicatesRemoved int      `json:"duplicatesRemoved"`
	Categories        []string `json:"categories"`
}

// ValidationSummary counts progress within the current view.
type ValidationSummary struct {
	Validated int `json:"validated"`
	Total     int `json:"total"`
}

// ExportRow is one line of the CSV export: every record field, with
// coordinates flattened to plain latitude/longitude columns.
type ExportRow struct {
	SerialID  int64
	Category  string
	Latitude  float64
	Longitude float64
	Status    ValidationStatus
}
