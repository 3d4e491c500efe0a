package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/datanexus/crm-service/internal/logger"
	"github.com/datanexus/crm-service/internal/models"
)

// UserIDReader looks up an account by its id.
type UserIDReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserCache is a read-through cache of account rows.
type UserCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	Set(ctx context.Context, user *models.UserDB) error
}

// CurrentUserService resolves the account behind a session token.
// Lookups go through the cache; misses fall back to storage and backfill.
type CurrentUserService struct {
	reader UserIDReader
	cache  UserCache
}

// NewCurrentUserService builds the service. The cache may be nil, in which
// case every lookup hits storage.
func NewCurrentUserService(reader UserIDReader, cache UserCache) *CurrentUserService {
	return &CurrentUserService{
		reader: reader,
		cache:  cache,
	}
}

// GetByID returns the account with the given id, or (nil, nil) when it does
// not exist. Cache failures degrade to storage lookups.
func (svc *CurrentUserService) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	if svc.cache != nil {
		user, err := svc.cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Errorw("user cache lookup failed", "error", err)
		} else if user != nil {
			return user, nil
		}
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Errorw("user cache backfill failed", "error", err)
		}
	}

	return user, nil
}
