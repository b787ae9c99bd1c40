package models

// LeaderboardEntry is one row of the leaderboard
// swagger:model LeaderboardEntry
type LeaderboardEntry struct {
	// Username
	// example: john_doe
	Username string `json:"username" db:"username"`

	// Number of blocks currently owned
	// example: 3
	Blocks int64 `json:"blocks" db:"blocks"`
}
