package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/datanexus/crm-service/internal/services"
)

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		rawBody      string
		reqBody      *SignupRequest
		mockSetup    func(svc *MockSignuper, cookies *MockSessionCookier)
		expectedCode int
		wantCookie   bool
		checkBody    func(t *testing.T, body map[string]any)
	}{
		{
			name:    "success",
			reqBody: &SignupRequest{Username: "john", Email: "john@example.com", Password: "Secret123!"},
			mockSetup: func(svc *MockSignuper, cookies *MockSessionCookier) {
				svc.EXPECT().
					Signup(gomock.Any(), "john", "john@example.com", "Secret123!").
					Return(userID, "token123", nil)
				cookies.EXPECT().
					SessionCookie("token123").
					Return(&http.Cookie{Name: "jwt", Value: "token123", Path: "/"})
			},
			expectedCode: http.StatusCreated,
			wantCookie:   true,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, userID.String(), body["id"])
			},
		},
		{
			name:    "validation failure",
			reqBody: &SignupRequest{Username: "john", Email: "bad", Password: "bad"},
			mockSetup: func(svc *MockSignuper, cookies *MockSessionCookier) {
				svc.EXPECT().
					Signup(gomock.Any(), "john", "bad", "bad").
					Return(uuid.Nil, "", services.ValidationErrors{
						{Field: "email", Message: "Please provide a valid email"},
					})
			},
			expectedCode: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.NotEmpty(t, body["validationErrors"])
			},
		},
		{
			name:    "email already exists",
			reqBody: &SignupRequest{Username: "john", Email: "john@example.com", Password: "Secret123!"},
			mockSetup: func(svc *MockSignuper, cookies *MockSessionCookier) {
				svc.EXPECT().
					Signup(gomock.Any(), "john", "john@example.com", "Secret123!").
					Return(uuid.Nil, "", services.ErrEmailAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "User with this email already exists", body["error"])
			},
		},
		{
			name:    "internal server error",
			reqBody: &SignupRequest{Username: "john", Email: "john@example.com", Password: "Secret123!"},
			mockSetup: func(svc *MockSignuper, cookies *MockSessionCookier) {
				svc.EXPECT().
					Signup(gomock.Any(), "john", "john@example.com", "Secret123!").
					Return(uuid.Nil, "", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Internal server error", body["error"])
			},
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Invalid request body", body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSignuper(ctrl)
			mockCookies := NewMockSessionCookier(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc, mockCookies)
			}

			handler := NewSignupHandler(mockSvc, mockCookies)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			cookies := rr.Result().Cookies()
			if tt.wantCookie {
				assert.Len(t, cookies, 1)
				assert.Equal(t, "jwt", cookies[0].Name)
			} else {
				assert.Empty(t, cookies)
			}

			var body map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			tt.checkBody(t, body)
		})
	}
}
