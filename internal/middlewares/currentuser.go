package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/datanexus/crm-service/internal/logger"
	"github.com/datanexus/crm-service/internal/models"
)

// UserGetter resolves a full user entity by id.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// CurrentUserMiddleware resolves the current user from the session token,
// best effort. Requests without a token, with an invalid token, or whose
// user cannot be resolved proceed with no user attached; the middleware
// never blocks a request.
func CurrentUserMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByID(ctx, userID)
			if err != nil {
				logger.Log.Errorw("failed to resolve current user", "user_id", userID, "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

// userKey is an unexported context key for the resolved current user.
type userKeyType struct{}

var userKey = userKeyType{}

// SetUserToContext stores the resolved user in the context.
func SetUserToContext(ctx context.Context, u *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// GetUserFromContext retrieves the current user from the context.
// Returns nil when the request is anonymous.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	u, _ := ctx.Value(userKey).(*models.UserDB)
	return u
}
