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

// CustomerSearcher defines the interface that the customer service must implement.
type CustomerSearcher interface {
	Search(ctx context.Context, ownerID uuid.UUID, name string) ([]models.CustomerDB, error)
}

// CustomerSearchRequest represents the JSON body for a name search
// swagger:model CustomerSearchRequest
type CustomerSearchRequest struct {
	// Exact first or last name to match
	// required: true
	// default: John
	SearchText string `json:"searchText"`
}

// CustomerSearchResponse represents the search result payload
// swagger:model CustomerSearchResponse
type CustomerSearchResponse struct {
	// Matching records owned by the current account
	Customers []models.CustomerDB `json:"customers"`
}

// NewCustomerSearchHandler returns an HTTP handler for searching records by name.
// @Summary Search customer records
// @Description Returns the current account's records whose first or last name matches the search text exactly. An empty result is a normal response.
// @Tags customers
// @Accept json
// @Produce json
// @Param searchRequest body handlers.CustomerSearchRequest true "Search request"
// @Success 200 {object} handlers.CustomerSearchResponse "Matching records, possibly empty"
// @Failure 400 {object} handlers.CustomerErrorResponse "Invalid request body"
// @Router /search [post]
func NewCustomerSearchHandler(svc CustomerSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CustomerErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req CustomerSearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CustomerErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		customers, err := svc.Search(r.Context(), user.UserID, req.SearchText)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CustomerErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if customers == nil {
			customers = []models.CustomerDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CustomerSearchResponse{
			Customers: customers,
		})
	}
}
