package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/datanexus/crm-service/internal/jwt"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockTokener)
		expectedCode int
		wantNext     bool
	}{
		{
			name: "valid token passes through",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
				m.EXPECT().GetUserID(gomock.Any(), "token123").Return(userID, nil)
			},
			expectedCode: http.StatusOK,
			wantNext:     true,
		},
		{
			name: "missing token redirects to login",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrNoToken)
			},
			expectedCode: http.StatusFound,
		},
		{
			name: "invalid token redirects to login",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("bad-token", nil)
				m.EXPECT().GetUserID(gomock.Any(), "bad-token").Return(uuid.Nil, errors.New("token is invalid"))
			},
			expectedCode: http.StatusFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockTokener)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener)(next)

			req := httptest.NewRequest(http.MethodGet, "/home", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if !tt.wantNext {
				assert.Equal(t, LoginPath, rr.Header().Get("Location"))
			}
		})
	}
}
