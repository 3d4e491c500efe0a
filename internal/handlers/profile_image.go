package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/datanexus/crm-service/internal/logger"
	"github.com/datanexus/crm-service/internal/middlewares"
)

// maxProfileImageSize caps profile image uploads at 5 MiB.
const maxProfileImageSize = 5 << 20

// ProfileImageSetter defines the interface that the profile service must implement.
type ProfileImageSetter interface {
	SetProfileImage(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader) (string, error)
}

// ProfileImageResponse represents a successful profile image update response
// swagger:model ProfileImageResponse
type ProfileImageResponse struct {
	// Public URL of the uploaded image
	ProfileImage string `json:"profileImage"`
}

// ProfileImageErrorResponse represents an error response for profile image upload
// swagger:model ProfileImageErrorResponse
type ProfileImageErrorResponse struct {
	// Error message
	// default: Missing avatar file
	Error string `json:"error"`
}

// NewProfileImageHandler returns an HTTP handler for profile image upload.
// @Summary Update the profile image
// @Description Accepts a multipart form with an "avatar" file, stores it and records its public URL on the current account.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Image file"
// @Success 200 {object} handlers.ProfileImageResponse "Image stored"
// @Failure 400 {object} handlers.ProfileImageErrorResponse "Missing or oversized file"
// @Router /update-profile [post]
func NewProfileImageHandler(svc ProfileImageSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileImageErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		if err := r.ParseMultipartForm(maxProfileImageSize); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileImageErrorResponse{
				Error: "Invalid multipart form",
			})
			return
		}

		file, header, err := r.FormFile("avatar")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileImageErrorResponse{
				Error: "Missing avatar file",
			})
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		url, err := svc.SetProfileImage(r.Context(), user.UserID, contentType, file)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileImageErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileImageResponse{
			ProfileImage: url,
		})
	}
}
