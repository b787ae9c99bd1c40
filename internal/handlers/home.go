package handlers

import (
	"fmt"
	"net/http"
)

// NewHomeHandler returns the liveness handler.
// @Summary Liveness
// @Description Plain text liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "Backend running"
// @Router / [get]
func NewHomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Backend running")
	}
}
