package domain

import (
	"time"

	"github.com/google/uuid"
)

// Upload is a reference image stored in the media store
type Upload struct {
	ID           uuid.UUID
	PublicID     string
	URL          string
	ContentType  string
	SizeBytes    int64
	OriginalName string
	CreatedAt    time.Time
}

// AllowedImageTypes content types accepted for reference images
var AllowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// IsAllowedImageType returns true if contentType may be uploaded
func IsAllowedImageType(contentType string) bool {
	_, ok := AllowedImageTypes[contentType]
	return ok
}
