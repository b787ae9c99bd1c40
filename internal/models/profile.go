package models

// UpdateProfileRequest represents the JSON body for a profile update.
// Omitted fields are stored as null.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// User identifier
	// required: true
	// example: 42
	UserID int64 `json:"user_id"`

	// Bio
	// example: Runner and map nerd
	Bio *string `json:"bio"`

	// Phone
	// example: +1-555-0100
	Phone *string `json:"phone"`

	// Hometown
	// example: Paris
	Hometown *string `json:"hometown"`
}
