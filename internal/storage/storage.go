// Package storage defines the object-store signing capability used to hand out
// direct-upload URLs. The MinIO implementation works with any S3-compatible
// server; the S3 implementation targets AWS through the SDK credential chain.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidTTL is returned when a URL validity window is not positive.
var ErrInvalidTTL = errors.New("presign ttl must be positive")

// ErrEmptyBucket is returned when a signer is asked to sign for no bucket.
var ErrEmptyBucket = errors.New("bucket name is empty")

// URLSigner produces pre-signed URLs. Signing is a local computation; no
// object is created and no bytes move.
type URLSigner interface {
	// SignPutURL returns a URL that authorizes a single PUT of key into bucket
	// with the given Content-Type, valid for ttl.
	SignPutURL(ctx context.Context, bucket, key, contentType string, ttl time.Duration) (string, error)
}

func checkSignArgs(bucket string, ttl time.Duration) error {
	if bucket == "" {
		return ErrEmptyBucket
	}
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	return nil
}
