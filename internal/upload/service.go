// Package upload issues pre-signed direct-upload grants for video files.
package upload

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/highlighthero/backend/internal/storage"
)

// DefaultContentType is assumed when the caller does not name one.
const DefaultContentType = "video/mp4"

// keyPrefix is the top-level folder every upload key lives under.
const keyPrefix = "uploads/"

// ErrBucketNotConfigured is returned when no target bucket is configured.
var ErrBucketNotConfigured = errors.New("S3 bucket not configured")

// ErrFilenameRequired is returned when the filename is missing.
var ErrFilenameRequired = errors.New("filename is required")

// ErrUnsupportedMediaType is returned for content types outside the allow-list.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// BackendError wraps a failure reported by the object-store signer.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("failed to generate upload URL: %v", e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Grant is a single-use authorization to PUT one object directly into storage.
type Grant struct {
	UploadURL   string `json:"uploadUrl"   example:"https://highlights.s3.us-east-1.amazonaws.com/uploads/5f0c3e5e-8f1b-4c55-9a3c-2a1b7f0e9d11/clip.mp4?X-Amz-Expires=900"`
	ObjectKey   string `json:"objectKey"   example:"uploads/5f0c3e5e-8f1b-4c55-9a3c-2a1b7f0e9d11/clip.mp4"`
	ContentType string `json:"contentType" example:"video/mp4"`
}

// Options configure an Issuer.
type Options struct {
	Bucket              string
	AllowedContentTypes []string
	TTL                 time.Duration
}

// Issuer mints object keys and asks the signer for upload URLs. It holds only
// read-only configuration and is safe for concurrent use.
type Issuer struct {
	signer  storage.URLSigner
	bucket  string
	allowed map[string]struct{}
	ttl     time.Duration
	log     *zap.Logger
	newID   func() string
}

// NewIssuer creates an Issuer backed by signer.
func NewIssuer(signer storage.URLSigner, opts Options, log *zap.Logger) *Issuer {
	allowed := make(map[string]struct{}, len(opts.AllowedContentTypes))
	for _, ct := range opts.AllowedContentTypes {
		allowed[normalizeContentType(ct)] = struct{}{}
	}
	return &Issuer{
		signer:  signer,
		bucket:  opts.Bucket,
		allowed: allowed,
		ttl:     opts.TTL,
		log:     log,
		newID:   func() string { return uuid.NewString() },
	}
}

// Issue validates the request and returns a fresh grant. The bucket check runs
// first so a misconfigured service fails the same way for every input.
func (s *Issuer) Issue(ctx context.Context, filename, contentType string) (*Grant, error) {
	if s.bucket == "" {
		return nil, ErrBucketNotConfigured
	}
	if filename == "" {
		return nil, ErrFilenameRequired
	}

	contentType = normalizeContentType(contentType)
	if contentType == "" {
		contentType = DefaultContentType
	}
	if !s.IsAllowed(contentType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, contentType)
	}

	key := ObjectKey(s.newID(), filename)

	uploadURL, err := s.signer.SignPutURL(ctx, s.bucket, key, contentType, s.ttl)
	if err != nil {
		s.log.Error("sign upload url", zap.String("object_key", key), zap.Error(err))
		return nil, &BackendError{Err: err}
	}

	s.log.Info("upload url issued",
		zap.String("object_key", key),
		zap.String("content_type", contentType),
		zap.Duration("ttl", s.ttl),
	)

	return &Grant{
		UploadURL:   uploadURL,
		ObjectKey:   key,
		ContentType: contentType,
	}, nil
}

// IsAllowed reports whether contentType is on the allow-list.
func (s *Issuer) IsAllowed(contentType string) bool {
	_, ok := s.allowed[normalizeContentType(contentType)]
	return ok
}

// ObjectKey builds the storage key for an upload session.
func ObjectKey(id, filename string) string {
	return keyPrefix + id + "/" + filename
}

func normalizeContentType(ct string) string {
	return strings.ToLower(strings.TrimSpace(ct))
}
