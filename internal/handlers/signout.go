package handlers

import (
	"net/http"

	"github.com/datanexus/crm-service/internal/jwt"
)

// NewSignoutHandler returns an HTTP handler that ends the session.
// @Summary End the current session
// @Description Clears the session cookie and redirects to the landing page.
// @Tags auth
// @Success 302 "Session cleared, redirect to /"
// @Router /signout [get]
func NewSignoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, jwt.ClearedSessionCookie())
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
