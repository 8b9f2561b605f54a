package model

// Memo is a freeform note with an ordered list of attachment URLs.
type Memo struct {
	ID      string  `json:"id" db:"id"`
	Content *string `json:"content,omitempty" db:"content"`

	// Attachments is populated from the memo_attachments table, ordered by
	// position.
	Attachments []string `json:"attachments,omitempty" db:"-"`
}
