package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/datanexus/crm-service/internal/logger"
)

// LoginPath is where unauthenticated requests to gated routes are sent.
const LoginPath = "/login"

// Tokener defines the minimal token interface needed by the middlewares.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// AuthMiddleware returns a middleware that gates a route group behind a
// valid session token. A missing or unverifiable token short-circuits the
// request with a redirect to the login page; the wrapped handler never runs.
//
// The gate only verifies. Identity is attached separately by
// CurrentUserMiddleware, which runs on every request.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			if _, err := tokener.GetUserID(ctx, tokenString); err != nil {
				logger.Log.Errorw("session token rejected", "err", err)
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
