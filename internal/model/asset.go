package model

import "time"

// Asset represents a physical item type (quantity-based, not serial-tracked).
// OwnedCount is the hard ceiling on simultaneous reservations.
type Asset struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Manufacturer string     `json:"manufacturer,omitempty"`
	Model        string     `json:"model,omitempty"`
	Type         string     `json:"type,omitempty"`
	OwnedCount   int        `json:"owned_count"`
	ImageMime    string     `json:"image_mime,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}
