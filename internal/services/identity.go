package services

//go:generate mockgen -source=identity.go -destination=mock_identity.go -package=services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username string) (int64, error)
	UpdateProfile(ctx context.Context, userID int64, bio, phone, hometown *string) (int64, error)
}

// IdentityService handles username login and profiles.
type IdentityService struct {
	reader UserReader
	writer UserWriter
}

// NewIdentityService creates a new IdentityService instance.
func NewIdentityService(reader UserReader, writer UserWriter) *IdentityService {
	return &IdentityService{
		reader: reader,
		writer: writer,
	}
}

// Login returns the id of the user with the given username, creating the
// user on first login.
func (svc *IdentityService) Login(ctx context.Context, username string) (int64, error) {
	if username == "" {
		return 0, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return 0, err
	}
	if user != nil {
		return user.UserID, nil
	}

	userID, err := svc.writer.Create(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to create user", "username", username, "err", err)
		return 0, err
	}

	logger.Log.Infow("user created", "username", username, "user_id", userID)
	return userID, nil
}

// UpdateProfile overwrites bio, phone and hometown. Nil values clear the field.
// Updating an unknown user returns ErrUserNotFound.
func (svc *IdentityService) UpdateProfile(ctx context.Context, userID int64, bio, phone, hometown *string) error {
	rows, err := svc.writer.UpdateProfile(ctx, userID, bio, phone, hometown)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, userID)
	}
	return nil
}

// GetProfile returns nil without an error for an unknown user.
func (svc *IdentityService) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return models.ProfileFromUser(user), nil
}
