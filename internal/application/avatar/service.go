package avatar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/Evanshango/chatty-backend/internal/domain"
	"github.com/Evanshango/chatty-backend/internal/pkg/callctx"
	"github.com/Evanshango/chatty-backend/internal/pkg/id"
	"github.com/gabriel-vasile/mimetype"
)

// keyPrefix is the object prefix all avatars are stored under.
const keyPrefix = "avatars"

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

type UploadInput struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Handle      string
}

type Service interface {
	// Upload stores the image and points the user's imageUrl at it,
	// returning the new URL.
	Upload(ctx context.Context, input UploadInput) (string, error)
}

type blobStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type userStore interface {
	SetImageURL(ctx context.Context, handle, imageURL string) error
}

type service struct {
	blob        blobStore
	users       userStore
	tempDir     string
	callTimeout time.Duration
}

type ServiceDeps struct {
	Blob     blobStore
	UserRepo userStore
	// TempDir defaults to os.TempDir().
	TempDir     string
	CallTimeout time.Duration
}

func NewService(deps ServiceDeps) Service {
	return &service{
		blob:        deps.Blob,
		users:       deps.UserRepo,
		tempDir:     deps.TempDir,
		callTimeout: deps.CallTimeout,
	}
}

// AllowedType reports whether contentType is an accepted avatar type.
func AllowedType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && allowedTypes[mediaType]
}

func (s *service) Upload(ctx context.Context, input UploadInput) (string, error) {
	contentType, _, err := mime.ParseMediaType(input.ContentType)
	if err != nil || !allowedTypes[contentType] {
		return "", fmt.Errorf("content type %q: %w", input.ContentType, domain.ErrUnsupportedMediaType)
	}

	tmp, err := os.CreateTemp(s.tempDir, "avatar-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, input.Reader); err != nil {
		return "", fmt.Errorf("buffer upload: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	detected, err := mimetype.DetectReader(tmp)
	if err != nil {
		return "", fmt.Errorf("detect content type: %w", err)
	}
	if !detected.Is(contentType) {
		return "", fmt.Errorf("declared %s but content is %s: %w", contentType, detected.String(), domain.ErrUnsupportedMediaType)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	key := path.Join(keyPrefix, id.NewFileName(extension(input.Filename, detected)))

	callCtx, cancel := callctx.WithTimeout(ctx, s.callTimeout)
	err = s.blob.Upload(callCtx, key, tmp, contentType)
	cancel()
	if err != nil {
		return "", err
	}

	imageURL := s.blob.PublicURL(key)
	callCtx, cancel = callctx.WithTimeout(ctx, s.callTimeout)
	err = s.users.SetImageURL(callCtx, input.Handle, imageURL)
	cancel()
	if err != nil {
		s.discardObject(ctx, key)
		return "", err
	}
	return imageURL, nil
}

// discardObject removes an uploaded avatar no user record points at.
func (s *service) discardObject(ctx context.Context, key string) {
	ctx, cancel := callctx.WithTimeout(context.WithoutCancel(ctx), s.callTimeout)
	defer cancel()

	if err := s.blob.Delete(ctx, key); err != nil {
		slog.Error("orphaned avatar object", "key", key, "err", err)
	}
}

// extension keeps the client's file extension, falling back to the one
// matching the detected content.
func extension(filename string, detected *mimetype.MIME) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" || strings.ContainsAny(ext, `/\ `) {
		ext = strings.TrimPrefix(detected.Extension(), ".")
	}
	return ext
}
