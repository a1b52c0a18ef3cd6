package model

import "time"

// Donor represents a registered donor profile.
// This is a pure domain model with no database-specific dependencies or tags.
// Attachment fields hold relative paths (e.g. "/uploads/donors/12/photo_...jpg"),
// never binary content.
type Donor struct {
	ID                        int64  `json:"id"`
	UserID                    int64  `json:"user_id"`
	Name                      string `json:"name"`
	Age                       int    `json:"age"`
	Address                   string `json:"address"`
	OrganizationName          string `json:"organization_name"`
	OrganizationCertificateID string `json:"organization_certificate_id"`
	PAN                       string `json:"pan"`
	Aadhaar                   string `json:"aadhaar"`
	Phone                     string `json:"phone"`
	Email                     string `json:"email"`
	Location                  string `json:"location"`

	OrganizationCertificate string `json:"organization_certificate"`
	Photo                   string `json:"photo"`
	Signature               string `json:"signature"`

	Status  string `json:"status"`
	Remarks string `json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
