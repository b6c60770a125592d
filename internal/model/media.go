package model

import "errors"

// Avatar upload constraints
const (
	MaxAvatarSizeBytes = 5 * 1024 * 1024
	AvatarWidth        = 320
	AvatarHeight       = 320
	AvatarFolder       = "avatars"
	AvatarExt          = ".jpg"
	ContentTypeJPEG    = "image/jpeg"
	AvatarCacheControl = "public, max-age=31536000"
)

// UploadResult is returned after a successful avatar upload.
type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

var (
	// ErrFileTooLarge is returned when an upload exceeds the size limit
	ErrFileTooLarge = errors.New("file too large")

	// ErrUnsupportedImage is returned when the upload is not a decodable image
	ErrUnsupportedImage = errors.New("unsupported image format")
)
