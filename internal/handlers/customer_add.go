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

// CustomerAdder defines the interface that the customer service must implement.
type CustomerAdder interface {
	Add(ctx context.Context, ownerID uuid.UUID, fields *models.CustomerFields) (uuid.UUID, error)
}

// CustomerAddResponse represents a successful record creation response
// swagger:model CustomerAddResponse
type CustomerAddResponse struct {
	// New record id
	ID string `json:"id"`
}

// NewCustomerAddHandler returns an HTTP handler for creating a record.
// @Summary Add a customer record
// @Description Creates a record owned by the current account.
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body models.CustomerFields true "Record attributes"
// @Success 201 {object} handlers.CustomerAddResponse "Record created"
// @Failure 400 {object} handlers.CustomerErrorResponse "Invalid request body"
// @Router /user/add [post]
func NewCustomerAddHandler(svc CustomerAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CustomerErrorResponse{
				Error: "Unauthorized",
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

		id, err := svc.Add(r.Context(), user.UserID, &fields)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CustomerErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CustomerAddResponse{
			ID: id.String(),
		})
	}
}
