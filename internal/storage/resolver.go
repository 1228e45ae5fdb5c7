package storage

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// ErrUnsupportedType is returned when an upload's extension is outside
// the media allow-list. Callers surface it as MediaUploadFailed.
var ErrUnsupportedType = errors.New("unsupported media type")

// Resolver turns uploaded file content into a stable URL. Validation
// never sees file bytes, only the URL a resolver hands back.
type Resolver interface {
	Resolve(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
}

func screenExtension(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}
	return ext, nil
}
