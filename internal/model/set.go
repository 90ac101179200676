package model

import "time"

// AssetSet is a named bundle of assets. Composition is one level deep:
// sets never contain other sets.
type AssetSet struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Assets      []SetAssetLine `json:"assets"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   *time.Time     `json:"deleted_at,omitempty"`
}

// SetAssetLine is one constituent of a set: Quantity units of the asset
// are consumed by one unit of the set.
type SetAssetLine struct {
	AssetID  string `json:"asset_id"`
	Quantity int    `json:"quantity"`

	// Joined field (not always populated).
	AssetName string `json:"asset_name,omitempty"`
}
