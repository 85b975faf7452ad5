package users

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"artworld-app/config"
	"artworld-app/internal/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxAvatarSize = 5 << 20 // 5 MiB

var allowedAvatarExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// saveAvatar validates and stores an uploaded avatar. The file is renamed on
// store, so the client-supplied name can neither collide nor traverse paths.
func saveAvatar(c *gin.Context, userID uint, file *multipart.FileHeader) (string, error) {
	if file.Size > maxAvatarSize {
		return "", apperrors.ValidationError([]string{"Avatar file must not exceed 5 MB"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedAvatarExts[ext] {
		return "", apperrors.ValidationError([]string{"Only JPG, PNG and GIF images are supported"})
	}

	name := fmt.Sprintf("avatar_%d_%s%s", userID, uuid.NewString()[:8], ext)

	dir := filepath.Join(config.UPLOAD_DIR, "avatars")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.Internal(err)
	}

	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", apperrors.Internal(err)
	}
	return name, nil
}
