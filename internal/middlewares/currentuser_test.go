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
	"github.com/datanexus/crm-service/internal/models"
)

func TestCurrentUserMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice"}

	tests := []struct {
		name      string
		mockSetup func(tok *MockTokener, users *MockUserGetter)
		wantUser  *models.UserDB
	}{
		{
			name: "attaches resolved user",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
				tok.EXPECT().GetUserID(gomock.Any(), "token123").Return(userID, nil)
				users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
			},
			wantUser: user,
		},
		{
			name: "no token proceeds anonymously",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrNoToken)
			},
		},
		{
			name: "invalid token proceeds anonymously",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("bad", nil)
				tok.EXPECT().GetUserID(gomock.Any(), "bad").Return(uuid.Nil, errors.New("token is invalid"))
			},
		},
		{
			name: "lookup failure proceeds anonymously",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
				tok.EXPECT().GetUserID(gomock.Any(), "token123").Return(userID, nil)
				users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errors.New("db error"))
			},
		},
		{
			name: "deleted user proceeds anonymously",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
				tok.EXPECT().GetUserID(gomock.Any(), "token123").Return(userID, nil)
				users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockUsers := NewMockUserGetter(ctrl)
			tt.mockSetup(mockTokener, mockUsers)

			var gotUser *models.UserDB
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = GetUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := CurrentUserMiddleware(mockTokener, mockUsers)(next)

			req := httptest.NewRequest(http.MethodGet, "/home", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantUser, gotUser)
		})
	}
}
