package model

import "time"

// Request is an aid request created by a recipient. RecipientID must
// reference an existing recipient row at creation time.
type Request struct {
	ID          int64   `json:"id"`
	RecipientID int64   `json:"recipient_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Location    string  `json:"location"`
	Address     string  `json:"address"`
	Type        string  `json:"type"` // e.g. veg, non-veg
	Photo       string  `json:"photo"`

	Status  string `json:"status"`
	Remarks string `json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
