package storage

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to build form file: %v", err)
	}
	part.Write([]byte(content))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("failed to parse multipart form: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestLocalResolverSavesFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	resolver := NewLocalResolver(dir, "http://localhost:8000/uploads/")

	url, err := resolver.Resolve(context.Background(), uploadHeader(t, "photo.JPG", "image-bytes"))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !strings.HasPrefix(url, "http://localhost:8000/uploads/") {
		t.Errorf("url missing base prefix: %s", url)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Errorf("url should keep a lowercased extension: %s", url)
	}

	saved, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	if string(saved) != "image-bytes" {
		t.Errorf("saved content mismatch: %q", saved)
	}
}

func TestLocalResolverUniqueNames(t *testing.T) {
	resolver := NewLocalResolver(t.TempDir(), "http://localhost:8000/uploads")

	first, err := resolver.Resolve(context.Background(), uploadHeader(t, "a.png", "one"))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	second, err := resolver.Resolve(context.Background(), uploadHeader(t, "a.png", "two"))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if first == second {
		t.Errorf("two uploads of the same filename must not collide: %s", first)
	}
}

func TestLocalResolverRejectsUnsupportedType(t *testing.T) {
	resolver := NewLocalResolver(t.TempDir(), "http://localhost:8000/uploads")

	_, err := resolver.Resolve(context.Background(), uploadHeader(t, "malware.exe", "nope"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestScreenExtension(t *testing.T) {
	cases := []struct {
		filename string
		ext      string
		ok       bool
	}{
		{"clip.MP4", ".mp4", true},
		{"pic.webp", ".webp", true},
		{"doc.pdf", "", false},
		{"noext", "", false},
	}
	for _, tc := range cases {
		ext, err := screenExtension(tc.filename)
		if tc.ok && (err != nil || ext != tc.ext) {
			t.Errorf("screenExtension(%q) = %q, %v; want %q", tc.filename, ext, err, tc.ext)
		}
		if !tc.ok && !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("screenExtension(%q) should fail, got %q, %v", tc.filename, ext, err)
		}
	}
}
