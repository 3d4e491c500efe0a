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

// CustomerUpdater defines the interface that the customer service must implement.
type CustomerUpdater interface {
	Update(ctx context.Context, ownerID, customerID uuid.UUID, fields *models.CustomerFields) error
}

// CustomerUpdateResponse represents a successful record update response
// swagger:model CustomerUpdateResponse
type CustomerUpdateResponse struct {
	// Success message
	// default: Customer updated successfully
	Message string `json:"message"`
}

// NewCustomerUpdateHandler returns an HTTP handler for updating a record.
// @Summary Update a customer record
// @Description Replaces the attributes of a record owned by the current account.
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer id"
// @Param customer body models.CustomerFields true "Replacement attributes"
// @Success 200 {object} handlers.CustomerUpdateResponse "Record updated"
// @Failure 400 {object} handlers.CustomerErrorResponse "Malformed id or body"
// @Failure 404 {object} handlers.CustomerErrorResponse "No such record for this account"
// @Router /edit/{id} [put]
func NewCustomerUpdateHandler(svc CustomerUpdater) http.HandlerFunc {
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

		var fields models.CustomerFields
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CustomerErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if err := svc.Update(r.Context(), user.UserID, customerID, &fields); err != nil {
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
		json.NewEncoder(w).Encode(CustomerUpdateResponse{
			Message: "Customer updated successfully",
		})
	}
}
