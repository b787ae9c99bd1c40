package models

// UserDB represents a user record in the database
type UserDB struct {
	UserID   int64   `json:"id" db:"id"`             // Primary key, assigned by the database
	Username string  `json:"username" db:"username"` // Unique username, used as login key
	Bio      *string `json:"bio" db:"bio"`           // Optional free-form bio
	Phone    *string `json:"phone" db:"phone"`       // Optional phone number
	Hometown *string `json:"hometown" db:"hometown"` // Optional hometown
}

// Profile is the public view of a user returned by the profile endpoint.
// swagger:model Profile
type Profile struct {
	// Username
	// example: john_doe
	Username string `json:"username"`

	// Bio, null when never set
	// example: Runner and map nerd
	Bio *string `json:"bio"`

	// Phone, null when never set
	// example: +1-555-0100
	Phone *string `json:"phone"`

	// Hometown, null when never set
	// example: Paris
	Hometown *string `json:"hometown"`
}

// ProfileFromUser builds the public profile of a stored user.
func ProfileFromUser(u *UserDB) *Profile {
	return &Profile{
		Username: u.Username,
		Bio:      u.Bio,
		Phone:    u.Phone,
		Hometown: u.Hometown,
	}
}
