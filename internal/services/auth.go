package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/datanexus/crm-service/internal/logger"
	"github.com/datanexus/crm-service/internal/models"
)

var (
	// ErrEmailAlreadyExists is returned on signup when the email is taken.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	// ErrUserNotRegistered is returned on login when no account matches the email.
	ErrUserNotRegistered = errors.New("user is not registered")
	// ErrInvalidPassword is returned on login when the password does not match.
	ErrInvalidPassword = errors.New("invalid password")
)

// UserReader looks up stored accounts.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter persists new accounts.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// JWTGenerator issues session tokens for authenticated users.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles signup and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

func NewAuthService(
	reader UserReader,
	writer UserWriter,
	jwt JWTGenerator,
) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Signup registers a new account and returns its id with a session token.
// Returns ValidationErrors when the email or password fails validation and
// ErrEmailAlreadyExists when the email is taken.
func (svc *AuthService) Signup(
	ctx context.Context,
	username string,
	email string,
	password string,
) (uuid.UUID, string, error) {
	if errs := validateSignup(email, password); errs != nil {
		return uuid.Nil, "", errs
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check existing user", "error", err)
		return uuid.Nil, "", err
	}
	if existing != nil {
		return uuid.Nil, "", ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return uuid.Nil, "", err
	}

	now := time.Now()
	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index on email backstops the read above: two concurrent
	// signups for the same email cannot both insert.
	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "error", err)
		return uuid.Nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "error", err)
		return uuid.Nil, "", err
	}

	logger.Log.Infow("user signed up", "user_id", user.UserID)
	return user.UserID, token, nil
}

// Login authenticates by email and password and returns the account id with
// a fresh session token. Returns ErrUserNotRegistered when no account matches
// the email and ErrInvalidPassword when the password does not match.
func (svc *AuthService) Login(
	ctx context.Context,
	email string,
	password string,
) (uuid.UUID, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user by email", "error", err)
		return uuid.Nil, "", err
	}
	if user == nil {
		return uuid.Nil, "", ErrUserNotRegistered
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return uuid.Nil, "", ErrInvalidPassword
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "error", err)
		return uuid.Nil, "", err
	}

	logger.Log.Infow("user logged in", "user_id", user.UserID)
	return user.UserID, token, nil
}
