package menu

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"katering/internal/config"
	apperrors "katering/internal/errors"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Uploader stores menu photos on disk under a random filename. Content type
// is sniffed from the file bytes, not trusted from the request.
type Uploader struct {
	dir     string
	maxSize int64
}

func NewUploader(cfg config.UploadConfig) *Uploader {
	return &Uploader{
		dir:     cfg.Dir,
		maxSize: cfg.MaxSizeBytes,
	}
}

func (u *Uploader) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > u.maxSize {
		return "", apperrors.NewValidationError("file too large", apperrors.ValidationDetail{
			Field:   "foto",
			Message: fmt.Sprintf("photo must be at most %d bytes", u.maxSize),
		})
	}

	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", apperrors.NewInternalError("reading uploaded file", err)
	}
	sniff = sniff[:n]

	ext, ok := imageExtensions[http.DetectContentType(sniff)]
	if !ok {
		return "", apperrors.NewValidationError("unsupported file type", apperrors.ValidationDetail{
			Field:   "foto",
			Message: "photo must be a jpeg, png, gif or webp image",
		})
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", apperrors.NewInternalError("creating upload directory", err)
	}

	filename := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(u.dir, filename))
	if err != nil {
		return "", apperrors.NewInternalError("creating uploaded file", err)
	}
	defer dst.Close()

	if _, err := dst.Write(sniff); err != nil {
		os.Remove(dst.Name())
		return "", apperrors.NewInternalError("writing uploaded file", err)
	}
	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return "", apperrors.NewInternalError("writing uploaded file", err)
	}

	return filename, nil
}

func (u *Uploader) Remove(filename string) error {
	if filename == "" {
		return nil
	}
	err := os.Remove(filepath.Join(u.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// URL is the public path the static file handler serves the photo from.
func (u *Uploader) URL(filename string) string {
	return "/" + path.Join(u.dir, filename)
}

// Dir is the on-disk directory photos live in, for the static route.
func (u *Uploader) Dir() string {
	return u.dir
}
