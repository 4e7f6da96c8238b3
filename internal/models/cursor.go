package models

// Cursor is the (batch, point-in-batch) position currently presented
// to the user. Both indexes are zero-based and always clamped to the
// bounds of the active view.
type Cursor struct {
	Batch int `json:"batch"`
	Point int `json:"point"`
}

// Focus is the map center and zoom derived from the cursor position.
type Focus struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// FocusZoom is the fixed zoom level applied whenever focus follows the
// cursor onto a point.
const FocusZoom = 18

// DefaultFocus is the map position shown before any data is loaded.
func DefaultFocus() Focus {
	return Focus{Latitude: 10.5, Longitude: 78.5, Zoom: FocusZoom}
}
