package model

// Category is a grouping label for todos. Names are unique across all
// categories; color is an optional display hint (e.g. a hex code).
type Category struct {
	ID    string  `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Color *string `json:"color,omitempty" db:"color"`
}
