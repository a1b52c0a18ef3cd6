package model

import "time"

// Volunteer represents a registered volunteer profile.
type Volunteer struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Location string `json:"location"`
	Aadhaar  string `json:"aadhaar"`
	PAN      string `json:"pan"`

	Availability          string `json:"availability"` // e.g. "Mon-Fri, 2pm-6pm"
	Skills                string `json:"skills"`       // e.g. "Delivery, Packing"
	Reason                string `json:"reason"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`

	Photo string `json:"photo"`

	Status  string `json:"status"`
	Remarks string `json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
