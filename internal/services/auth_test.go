package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/datanexus/crm-service/internal/models"
	"github.com/datanexus/crm-service/internal/services"
)

func TestAuthService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		username     string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		jwtErr       error
		wantErr      error
		skipReader   bool
	}{
		{
			name:     "successful signup",
			username: "alice",
			email:    "alice@example.com",
			password: "Str0ng!pass",
		},
		{
			name:       "invalid email",
			username:   "bob",
			email:      "not-an-email",
			password:   "Str0ng!pass",
			skipReader: true,
			wantErr:    services.ValidationErrors{},
		},
		{
			name:       "weak password",
			username:   "carol",
			email:      "carol@example.com",
			password:   "weak",
			skipReader: true,
			wantErr:    services.ValidationErrors{},
		},
		{
			name:         "email already exists",
			username:     "dave",
			email:        "dave@example.com",
			password:     "Str0ng!pass",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrEmailAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			email:     "eve@example.com",
			password:  "Str0ng!pass",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "frank",
			email:     "frank@example.com",
			password:  "Str0ng!pass",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			name:     "token error",
			username: "grace",
			email:    "grace@example.com",
			password: "Str0ng!pass",
			jwtErr:   errors.New("sign error"),
			wantErr:  errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.skipReader {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), tt.email).
					Return(tt.existingUser, tt.readerErr)
			}
			if !tt.skipReader && tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(tt.writerErr)
			}
			if !tt.skipReader && tt.existingUser == nil && tt.readerErr == nil && tt.writerErr == nil {
				mockJWT.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return("token123", tt.jwtErr)
			}

			id, token, err := svc.Signup(context.Background(), tt.username, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.Error(t, err)
				var validationErrs services.ValidationErrors
				if errors.As(tt.wantErr, &validationErrs) {
					assert.ErrorAs(t, err, &validationErrs)
					assert.NotEmpty(t, validationErrs)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Equal(t, uuid.Nil, id)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, id)
			assert.Equal(t, "token123", token)
		})
	}
}

func TestAuthService_Signup_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "Str0ng!pass"

	mockReader.EXPECT().
		GetByEmail(gomock.Any(), "alice@example.com").
		Return(nil, nil)

	var saved *models.UserDB
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.UserDB) error {
			saved = user
			return nil
		})

	mockJWT.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("token123", nil)

	_, _, err := svc.Signup(context.Background(), "alice", "alice@example.com", password)
	assert.NoError(t, err)

	assert.NotNil(t, saved)
	assert.NotEqual(t, password, saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte(password)))
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "Str0ng!pass"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	tests := []struct {
		name      string
		email     string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Email: "alice@example.com", PasswordHash: string(hashed)},
		},
		{
			name:      "user not registered",
			email:     "ghost@example.com",
			loginPass: password,
			wantErr:   services.ErrUserNotRegistered,
		},
		{
			name:      "invalid password",
			email:     "alice@example.com",
			loginPass: "Wr0ng!pass",
			user:      &models.UserDB{UserID: userID, Email: "alice@example.com", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidPassword,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "token error",
			email:     "alice@example.com",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Email: "alice@example.com", PasswordHash: string(hashed)},
			jwtErr:    errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID).
					Return("token123", tt.jwtErr)
			}

			id, token, err := svc.Login(context.Background(), tt.email, tt.loginPass)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, uuid.Nil, id)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, userID, id)
			assert.Equal(t, "token123", token)
		})
	}
}
