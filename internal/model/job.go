package model

import "time"

// Job is a reservation of assets and/or sets over the half-open interval
// [StartTime, EndTime). Draft and confirmed jobs both count as demand.
type Job struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Customer   string      `json:"customer,omitempty"`
	StartTime  time.Time   `json:"start_time"`
	EndTime    time.Time   `json:"end_time"`
	Confirmed  bool        `json:"confirmed"`
	Notes      string      `json:"notes,omitempty"`
	AssetLines []AssetLine `json:"asset_lines"`
	SetLines   []SetLine   `json:"set_lines"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	DeletedAt  *time.Time  `json:"deleted_at,omitempty"`
}

// AssetLine reserves Quantity units of an asset directly on a job.
// DaysOverride replaces the billed day count for the line when set; it has
// no effect on availability.
type AssetLine struct {
	AssetID      string `json:"asset_id"`
	Quantity     int    `json:"quantity"`
	DaysOverride *int   `json:"days_override,omitempty"`
}

// SetLine reserves Quantity units of a set on a job. The same asset may be
// reachable both directly and through a set line; both count as demand.
type SetLine struct {
	SetID        string `json:"set_id"`
	Quantity     int    `json:"quantity"`
	DaysOverride *int   `json:"days_override,omitempty"`
}
