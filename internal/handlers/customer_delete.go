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
	"github.com/datanexus/crm-service/internal/services"
)

// CustomerDeleter defines the interface that the customer service must implement.
type CustomerDeleter interface {
	Delete(ctx context.Context, ownerID, customerID uuid.UUID) error
}

// CustomerDeleteResponse represents a successful record deletion response
// swagger:model CustomerDeleteResponse
type CustomerDeleteResponse struct {
	// Success message
	// default: Customer deleted successfully
	Message string `json:"message"`
}

// NewCustomerDeleteHandler returns an HTTP handler for deleting a record.
// @Summary Delete a customer record
// @Description Removes a record owned by the current account.
// @Tags customers
// @Produce json
// @Param id path string true "Customer id"
// @Success 200 {object} handlers.CustomerDeleteResponse "Record deleted"
// @Failure 400 {object} handlers.CustomerErrorResponse "Malformed id"
// @Failure 404 {object} handlers.CustomerErrorResponse "No such record for this account"
// @Router /edit/{id} [delete]
func NewCustomerDeleteHandler(svc CustomerDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), user.UserID, customerID); err != nil {
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
		json.NewEncoder(w).Encode(CustomerDeleteResponse{
			Message: "Customer deleted successfully",
		})
	}
}
