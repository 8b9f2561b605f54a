package model

// Tag is a cross-cutting label attached to todos. Names are unique across
// all tags.
type Tag struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
