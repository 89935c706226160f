package menu

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"katering/internal/config"
	apperrors "katering/internal/errors"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func testUploader(t *testing.T) *Uploader {
	return NewUploader(config.UploadConfig{
		Dir:          t.TempDir(),
		MaxSizeBytes: 1024,
	})
}

func multipartFile(t *testing.T, fieldName, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile(fieldName)
	if err != nil {
		t.Fatalf("reading form file back: %v", err)
	}
	return file, header
}

func TestUploader_SavePNG(t *testing.T) {
	u := testUploader(t)

	file, header := multipartFile(t, "foto", "menu.png", pngBytes)
	defer file.Close()

	filename, err := u.Save(file, header)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.HasSuffix(filename, ".png") {
		t.Errorf("expected a .png filename, got %s", filename)
	}
	if filename == "menu.png" {
		t.Error("stored filename must not be the client-supplied name")
	}

	stored, err := os.ReadFile(filepath.Join(u.Dir(), filename))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if !bytes.Equal(stored, pngBytes) {
		t.Error("stored bytes differ from the upload")
	}
}

func TestUploader_RejectsNonImage(t *testing.T) {
	u := testUploader(t)

	file, header := multipartFile(t, "foto", "notes.txt", []byte("plain text, not an image"))
	defer file.Close()

	_, err := u.Save(file, header)

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %v", err)
	}

	entries, readErr := os.ReadDir(u.Dir())
	if readErr == nil && len(entries) != 0 {
		t.Errorf("expected no file written for a rejected upload, found %d", len(entries))
	}
}

func TestUploader_RejectsOversizedFile(t *testing.T) {
	u := testUploader(t)

	big := append([]byte{}, pngBytes...)
	big = append(big, bytes.Repeat([]byte{0}, 2048)...)

	file, header := multipartFile(t, "foto", "big.png", big)
	defer file.Close()

	_, err := u.Save(file, header)

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError for oversized file, got %v", err)
	}
}

func TestUploader_SavePreservesLargerContent(t *testing.T) {
	u := NewUploader(config.UploadConfig{Dir: t.TempDir(), MaxSizeBytes: 1 << 20})

	// payload longer than the sniff window exercises the two-phase write
	content := append([]byte{}, pngBytes...)
	content = append(content, bytes.Repeat([]byte{0xAB}, 4096)...)

	file, header := multipartFile(t, "foto", "menu.png", content)
	defer file.Close()

	filename, err := u.Save(file, header)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	stored, err := os.Open(filepath.Join(u.Dir(), filename))
	if err != nil {
		t.Fatalf("opening stored file: %v", err)
	}
	defer stored.Close()

	got, err := io.ReadAll(stored)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("stored %d bytes, expected %d identical bytes", len(got), len(content))
	}
}

func TestUploader_Remove(t *testing.T) {
	u := testUploader(t)

	file, header := multipartFile(t, "foto", "menu.png", pngBytes)
	defer file.Close()

	filename, err := u.Save(file, header)
	if err != nil {
		t.Fatalf("saving: %v", err)
	}

	if err := u.Remove(filename); err != nil {
		t.Fatalf("expected no error removing, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(u.Dir(), filename)); !os.IsNotExist(err) {
		t.Error("expected file to be gone")
	}

	// removing twice is not an error
	if err := u.Remove(filename); err != nil {
		t.Errorf("expected idempotent remove, got %v", err)
	}
	if err := u.Remove(""); err != nil {
		t.Errorf("expected empty filename to be a no-op, got %v", err)
	}
}

func TestUploader_URL(t *testing.T) {
	u := NewUploader(config.UploadConfig{Dir: "uploads/menu", MaxSizeBytes: 1024})

	if got := u.URL("abc.png"); got != "/uploads/menu/abc.png" {
		t.Errorf("expected /uploads/menu/abc.png, got %s", got)
	}
}
