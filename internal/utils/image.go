package utils

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MediaRoot is the directory decoded images are written to.
func MediaRoot() string {
	if root := os.Getenv("MEDIA_ROOT"); root != "" {
		return root
	}
	return "media"
}

// IsDataURI reports whether the value is an inline base64 image payload.
func IsDataURI(value string) bool {
	return strings.HasPrefix(value, "data:image")
}

// SaveDataURI decodes a `data:image/...;base64,...` payload into the media
// directory under subdir, using a random filename with the original
// extension, and returns the stored relative path (e.g. "/media/blog/<uuid>.png").
// Plain strings should be stored verbatim instead of going through here.
func SaveDataURI(dataURI, subdir string) (string, error) {
	header, encoded, found := strings.Cut(dataURI, ";base64,")
	if !found {
		return "", fmt.Errorf("not a base64 data URI")
	}

	ext := "png"
	if _, mime, ok := strings.Cut(header, "data:image/"); ok && mime != "" {
		ext = mime
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode image data: %w", err)
	}

	dir := filepath.Join(MediaRoot(), subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	name := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return "/media/" + subdir + "/" + name, nil
}
