package services

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/datanexus/crm-service/internal/logger"
)

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}

// ProfileImageWriter records an account's profile image URL.
type ProfileImageWriter interface {
	SetProfileImage(ctx context.Context, userID uuid.UUID, url string) error
}

// ProfileService uploads profile images and records their URLs.
type ProfileService struct {
	uploader Uploader
	writer   ProfileImageWriter
	cache    UserCache
	reader   UserIDReader
}

// NewProfileService builds the service. The cache may be nil.
func NewProfileService(
	uploader Uploader,
	writer ProfileImageWriter,
	reader UserIDReader,
	cache UserCache,
) *ProfileService {
	return &ProfileService{
		uploader: uploader,
		writer:   writer,
		reader:   reader,
		cache:    cache,
	}
}

// SetProfileImage uploads the image under a per-user key, stores the
// resulting URL on the account and refreshes the cached row.
func (svc *ProfileService) SetProfileImage(
	ctx context.Context,
	userID uuid.UUID,
	contentType string,
	body io.Reader,
) (string, error) {
	key := "avatars/" + userID.String()

	url, err := svc.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		logger.Log.Errorw("failed to upload profile image", "error", err)
		return "", err
	}

	if err := svc.writer.SetProfileImage(ctx, userID, url); err != nil {
		logger.Log.Errorw("failed to store profile image url", "error", err)
		return "", err
	}

	if svc.cache != nil {
		svc.refreshCache(ctx, userID)
	}

	logger.Log.Infow("profile image updated", "user_id", userID)
	return url, nil
}

func (svc *ProfileService) refreshCache(ctx context.Context, userID uuid.UUID) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil || user == nil {
		return
	}
	if err := svc.cache.Set(ctx, user); err != nil {
		logger.Log.Errorw("user cache refresh failed", "error", err)
	}
}
