package storage

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioSigner implements URLSigner against a MinIO (or any S3-compatible) endpoint.
type MinioSigner struct {
	client *minio.Client
}

// NewMinioSigner creates a MinIO client for endpoint. The region is pinned so
// presigning never issues a bucket-location request. An http:// or https://
// prefix on endpoint overrides useSSL.
func NewMinioSigner(endpoint, accessKey, secretKey, region string, useSSL bool) (*MinioSigner, error) {
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		endpoint, useSSL = strings.TrimPrefix(endpoint, "https://"), true
	case strings.HasPrefix(endpoint, "http://"):
		endpoint, useSSL = strings.TrimPrefix(endpoint, "http://"), false
	}
	endpoint = strings.TrimRight(endpoint, "/")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &MinioSigner{client: client}, nil
}

// SignPutURL presigns a PUT for key with Content-Type bound into the signature.
func (s *MinioSigner) SignPutURL(ctx context.Context, bucket, key, contentType string, ttl time.Duration) (string, error) {
	if err := checkSignArgs(bucket, ttl); err != nil {
		return "", err
	}

	headers := http.Header{}
	if contentType != "" {
		headers.Set("Content-Type", contentType)
	}

	u, err := s.client.PresignHeader(ctx, http.MethodPut, bucket, key, ttl, nil, headers)
	if err != nil {
		return "", fmt.Errorf("presign put %q: %w", key, err)
	}
	return u.String(), nil
}
