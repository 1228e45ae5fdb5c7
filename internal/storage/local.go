package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalResolver writes uploads to a directory served under /uploads/
// and returns their public URL.
type LocalResolver struct {
	SaveDir string
	BaseURL string // e.g. "http://localhost:8000/uploads"
}

// NewLocalResolver creates a resolver storing files in saveDir.
func NewLocalResolver(saveDir, baseURL string) *LocalResolver {
	return &LocalResolver{
		SaveDir: saveDir,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Resolve saves the uploaded file under a unique name and returns its URL.
func (lr *LocalResolver) Resolve(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	ext, err := screenExtension(fileHeader.Filename)
	if err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	if err := os.MkdirAll(lr.SaveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(lr.SaveDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return lr.BaseURL + "/" + filename, nil
}
