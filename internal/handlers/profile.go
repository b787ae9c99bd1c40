package handlers

//go:generate mockgen -source=profile.go -destination=mock_profile.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
	"github.com/sbilibin2017/gw-territory-capture/internal/services"
)

// ProfileUpdater defines the interface that the profile update service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID int64, bio, phone, hometown *string) error
}

// ProfileGetter defines the interface that the profile read service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)
}

// NewUpdateProfileHandler returns an HTTP handler for profile updates.
// @Summary Update profile
// @Description Overwrites bio, phone and hometown. Omitted fields are cleared.
// @Tags profile
// @Accept json
// @Produce json
// @Param updateProfileRequest body models.UpdateProfileRequest true "Profile"
// @Success 200 {object} models.StatusResponse "Profile updated"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /update_profile [post]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UpdateProfileRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		err := svc.UpdateProfile(r.Context(), req.UserID, req.Bio, req.Phone, req.Hometown)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "user not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, models.StatusResponse{Status: "updated"})
	}
}

// NewGetProfileHandler returns an HTTP handler for reading a profile.
// Unknown users yield an empty object.
// @Summary Get profile
// @Description Returns the profile of a user, or {} when the user is unknown
// @Tags profile
// @Produce json
// @Param user_id path int true "User id"
// @Success 200 {object} models.Profile "Profile"
// @Failure 400 {object} models.ErrorResponse "Invalid user id"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /get_profile/{user_id} [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		profile, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if profile == nil {
			writeJSON(w, http.StatusOK, struct{}{})
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}
