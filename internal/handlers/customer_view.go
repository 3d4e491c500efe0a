package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/datanexus/crm-service/internal/logger"
	"github.com/datanexus/crm-service/internal/middlewares"
	"github.com/datanexus/crm-service/internal/models"
	"github.com/datanexus/crm-service/internal/services"
)

// CustomerGetter defines the interface that the customer service must implement.
type CustomerGetter interface {
	Get(ctx context.Context, ownerID, customerID uuid.UUID) (*models.CustomerDB, error)
}

// CustomerViewResponse represents a single record payload
// swagger:model CustomerViewResponse
type CustomerViewResponse struct {
	// The requested record
	Customer *models.CustomerDB `json:"customer"`
}

// CustomerErrorResponse represents an error response for record operations
// swagger:model CustomerErrorResponse
type CustomerErrorResponse struct {
	// Error message
	// default: Customer not found
	Error string `json:"error"`
}

// NewCustomerViewHandler returns an HTTP handler for reading a single record.
// Serves both the detail view and the edit form payload.
// @Summary View a customer record
// @Description Returns one record owned by the current account.
// @Tags customers
// @Produce json
// @Param id path string true "Customer id"
// @Success 200 {object} handlers.CustomerViewResponse "The record"
// @Failure 400 {object} handlers.CustomerErrorResponse "Malformed id"
// @Failure 404 {object} handlers.CustomerErrorResponse "No such record for this account"
// @Router /view/{id} [get]
func NewCustomerViewHandler(svc CustomerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CustomerErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		customerID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CustomerErrorResponse{
				Error: "Invalid customer id",
			})
			return
		}

		customer, err := svc.Get(r.Context(), user.UserID, customerID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCustomerNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CustomerErrorResponse{
					Error: "Customer not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CustomerErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CustomerViewResponse{
			Customer: customer,
		})
	}
}
