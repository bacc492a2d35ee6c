package media

import (
	"context"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"fitoapteka.kz/app/internal/shared/apperr"
)

const (
	MaxMB    = 10
	MaxBytes = MaxMB << 20
)

// Storage tags returned to clients.
const (
	StorageLocal  = "local"
	StorageRemote = "remote"
)

type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type Result struct {
	URL         string `json:"url"`
	Storage     string `json:"storage"`
	OriginalURL string `json:"originalUrl,omitempty"`
}

// Sink stores one image and returns its public URL.
type Sink interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (Result, error)
}

// File is one uploaded form part. Body is read at most once.
type File struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ValidateType rejects anything that is not declared as an image. It runs
// before the body is read.
func ValidateType(contentType string) error {
	if !strings.HasPrefix(strings.TrimSpace(contentType), "image/") {
		return apperr.InvalidErr("only_images_allowed", nil)
	}
	return nil
}

func tooLarge() error {
	return apperr.InvalidErr("file_too_large", map[string]string{"maxMB": strconv.Itoa(MaxMB)})
}

var extByMIME = map[string]string{
	"image/jpeg":    "jpg",
	"image/png":     "png",
	"image/webp":    "webp",
	"image/gif":     "gif",
	"image/avif":    "avif",
	"image/svg+xml": "svg",
}

// Extension picks the stored file extension (without dot): known image MIME
// types first, then the sanitised filename extension, then "jpg".
func Extension(mime, filename string) string {
	if ext, ok := extByMIME[mime]; ok {
		return ext
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	ext = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, ext)
	if ext == "" {
		return "jpg"
	}
	return ext
}
