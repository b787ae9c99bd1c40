package services

import "errors"

// Error variables
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUserNotFound      = errors.New("user not found")
	ErrNewsNotConfigured = errors.New("news api key is not configured")
	ErrUpstreamFailure   = errors.New("news provider failure")
)
