package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/datanexus/crm-service/internal/logger"
	"github.com/datanexus/crm-service/internal/middlewares"
	"github.com/datanexus/crm-service/internal/models"
)

// CustomerLister defines the interface that the customer service must implement.
type CustomerLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]models.CustomerDB, error)
}

// HomeResponse represents the dashboard payload
// swagger:model HomeResponse
type HomeResponse struct {
	// Current account
	User *models.UserDB `json:"user"`

	// Records owned by the current account, in creation order
	Customers []models.CustomerDB `json:"customers"`
}

// HomeErrorResponse represents an error response for the dashboard
// swagger:model HomeErrorResponse
type HomeErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewHomeHandler returns an HTTP handler for the dashboard.
// @Summary Dashboard
// @Description Returns the current account and every customer record it owns.
// @Tags customers
// @Produce json
// @Success 200 {object} handlers.HomeResponse "Current account and its records"
// @Failure 401 {object} handlers.HomeErrorResponse "No session"
// @Router /home [get]
func NewHomeHandler(svc CustomerLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(HomeErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		customers, err := svc.List(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HomeErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if customers == nil {
			customers = []models.CustomerDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HomeResponse{
			User:      user,
			Customers: customers,
		})
	}
}
