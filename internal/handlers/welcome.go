package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/datanexus/crm-service/internal/middlewares"
	"github.com/datanexus/crm-service/internal/models"
)

// WelcomeResponse is the landing page payload.
// swagger:model
type WelcomeResponse struct {
	Message string         `json:"message"`
	User    *models.UserDB `json:"user,omitempty"`
}

// NewWelcomeHandler returns the public landing page handler. The current
// user is included when the request carries a valid session.
// @Summary Landing page
// @Tags pages
// @Produce json
// @Success 200 {object} WelcomeResponse "Welcome payload"
// @Router / [get]
func NewWelcomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := WelcomeResponse{
			Message: "Welcome to CRM",
			User:    middlewares.GetUserFromContext(r.Context()),
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
