package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/datanexus/crm-service/internal/logger"
	"github.com/datanexus/crm-service/internal/models"
)

// UserCacheRepository keeps recently resolved user rows in Redis so the
// per-request current-user lookup does not hit PostgreSQL every time.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached users
}

// NewUserCacheRepository creates a new repository instance with the given TTL.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s", userID)
}

// Get returns the cached user, or (nil, nil) on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	key := userCacheKey(userID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Errorw("user cache get failed", "key", key, "error", err)
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal(val, &user); err != nil {
		logger.Log.Errorw("user cache decode failed", "key", key, "error", err)
		return nil, err
	}

	return &user, nil
}

// Set caches the user with the repository TTL.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.UserDB) error {
	key := userCacheKey(user.UserID)

	val, err := json.Marshal(user)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, key, val, r.exp).Err(); err != nil {
		logger.Log.Errorw("user cache set failed", "key", key, "error", err)
		return err
	}

	return nil
}
