package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Identifier of the user, stable across logins
	// example: 42
	UserID int64 `json:"user_id"`
}

// ErrorResponse represents an error response shared by all endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// StatusResponse represents a successful write response
// swagger:model StatusResponse
type StatusResponse struct {
	// Status message
	// example: captured
	Status string `json:"status"`
}
