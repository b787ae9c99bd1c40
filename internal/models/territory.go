package models

import "time"

// TerritoryBlockDB represents a territory_blocks row in the database
type TerritoryBlockDB struct {
	BlockID     string    `json:"block_id" db:"block_id"`         // Spatial cell key, primary key
	OwnerID     int64     `json:"owner_id" db:"owner_id"`         // Current owner (users.id)
	LastUpdated time.Time `json:"last_updated" db:"last_updated"` // Time of the most recent capture
}

// CaptureRequest represents the JSON body for capturing a block
// swagger:model CaptureRequest
type CaptureRequest struct {
	// Block identifier
	// required: true
	// example: u09tvw0
	BlockID string `json:"block_id"`

	// Capturing user
	// required: true
	// example: 42
	UserID int64 `json:"user_id"`
}

// Territory is a single ownership entry returned by the territories endpoint
// swagger:model Territory
type Territory struct {
	// Block identifier
	// example: u09tvw0
	BlockID string `json:"block_id" db:"block_id"`

	// Owner identifier
	// example: 42
	OwnerID int64 `json:"owner_id" db:"owner_id"`
}
