package model

import "time"

// Donation is an offered donation created by a donor.
type Donation struct {
	ID          int64  `json:"id"`
	DonorID     int64  `json:"donor_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
	Location    string `json:"location"`
	Type        string `json:"type"`

	Status  string `json:"status"`
	Remarks string `json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
