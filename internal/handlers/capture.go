package handlers

//go:generate mockgen -source=capture.go -destination=mock_capture.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
	"github.com/sbilibin2017/gw-territory-capture/internal/services"
)

// Capturer defines the interface that the capture service must implement.
type Capturer interface {
	Capture(ctx context.Context, blockID string, userID int64) error
}

// TerritoryLister defines the interface that the territory listing service must implement.
type TerritoryLister interface {
	ListTerritories(ctx context.Context) ([]models.Territory, error)
}

// NewCaptureHandler returns an HTTP handler for capturing a block.
// @Summary Capture block
// @Description Assigns a block to a user, overwriting the previous owner
// @Tags territory
// @Accept json
// @Produce json
// @Param captureRequest body models.CaptureRequest true "Capture"
// @Success 200 {object} models.StatusResponse "Block captured"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /capture [post]
func NewCaptureHandler(svc Capturer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CaptureRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.Capture(r.Context(), req.BlockID, req.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "block_id is required")
			default:
				logger.Log.Errorw("failed to capture block", "block_id", req.BlockID, "user_id", req.UserID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, models.StatusResponse{Status: "captured"})
	}
}

// NewTerritoriesHandler returns an HTTP handler listing all captured blocks.
// @Summary List territories
// @Description Returns every captured block with its owner
// @Tags territory
// @Produce json
// @Success 200 {array} models.Territory "Territories"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /territories [get]
func NewTerritoriesHandler(svc TerritoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		territories, err := svc.ListTerritories(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list territories", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if territories == nil {
			territories = []models.Territory{}
		}

		writeJSON(w, http.StatusOK, territories)
	}
}
