package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path"
	"strings"
	"time"

	gateway_errors "kakao-gateway/pkg/errors"
)

// MaxUploadSize is the inbound file size cap.
const MaxUploadSize = 5 << 20

// randomKeyRange bounds the random component of a storage key. Wide
// enough that two uploads in the same millisecond collide with
// negligible probability.
const randomKeyRange = 1_000_000_000

var allowedImageExts = map[string]struct{}{
	"jpeg": {},
	"jpg":  {},
	"png":  {},
	"gif":  {},
}

// ObjectStorage is the storage surface the upload service needs.
type ObjectStorage interface {
	PutObject(ctx context.Context, key, contentType string, body []byte) error
	ObjectURL(key string) string
}

type UploadService struct {
	storage ObjectStorage
}

func NewUploadService(storage ObjectStorage) *UploadService {
	return &UploadService{storage: storage}
}

// UploadInput is one inbound image file.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

// ValidateImage checks size, MIME type and filename extension. Both the
// type and the extension must be an allowed image format; either failing
// rejects the upload before any network call.
func ValidateImage(fileName, contentType string, size int64) error {
	if size > MaxUploadSize {
		return gateway_errors.ErrTooLarge
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(fileName)), ".")
	if _, ok := allowedImageExts[ext]; !ok {
		return gateway_errors.ErrUnsupportedMediaType
	}
	mime := strings.ToLower(strings.TrimSpace(contentType))
	sub, ok := strings.CutPrefix(mime, "image/")
	if !ok {
		return gateway_errors.ErrUnsupportedMediaType
	}
	if _, ok := allowedImageExts[sub]; !ok {
		return gateway_errors.ErrUnsupportedMediaType
	}
	return nil
}

// NewStorageKey derives the object key for an upload from the current
// time, a random component and the original file's extension.
func NewStorageKey(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.IntN(randomKeyRange), ext)
}

// Upload validates the file, stores it under a fresh key and returns the
// public object URL.
func (s *UploadService) Upload(ctx context.Context, input UploadInput) (string, error) {
	if err := ValidateImage(input.FileName, input.ContentType, input.Size); err != nil {
		return "", err
	}

	key := NewStorageKey(input.FileName)
	if err := s.storage.PutObject(ctx, key, input.ContentType, input.Data); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.storage.ObjectURL(key), nil
}
