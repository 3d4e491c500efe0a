package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/datanexus/crm-service/internal/logger"
	"github.com/datanexus/crm-service/internal/services"
)

// Signuper defines the interface that the auth service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, email, password string) (uuid.UUID, string, error)
}

// SessionCookier issues the session cookie carrying a token.
type SessionCookier interface {
	SessionCookie(token string) *http.Cookie
}

// SignupRequest represents the JSON body for account registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: Secret123!
	Password string `json:"password"`
}

// SignupResponse represents a successful registration response
// swagger:model SignupResponse
type SignupResponse struct {
	// New account id
	ID string `json:"id"`
}

// SignupErrorResponse represents an error response for registration
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Error message
	// default: User with this email already exists
	Error string `json:"error,omitempty"`

	// Per-field validation failures
	ValidationErrors []services.FieldError `json:"validationErrors,omitempty"`
}

// NewSignupHandler returns an HTTP handler for account registration.
// @Summary Register a new account
// @Description Creates a new account and starts a session. The email must be unique and the password must satisfy the complexity rules.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Account registration request"
// @Success 201 {object} handlers.SignupResponse "Account created, session cookie set"
// @Failure 400 {object} handlers.SignupErrorResponse "Invalid email or weak password"
// @Failure 409 {object} handlers.SignupErrorResponse "Email already taken"
// @Router /signup [post]
func NewSignupHandler(svc Signuper, cookies SessionCookier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		id, token, err := svc.Signup(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			var validationErrs services.ValidationErrors
			switch {
			case errors.As(err, &validationErrs):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					ValidationErrors: validationErrs,
				})
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "User with this email already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		http.SetCookie(w, cookies.SessionCookie(token))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SignupResponse{
			ID: id.String(),
		})
	}
}
