package storage

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"
)

// SignCall records the arguments of one SignPutURL invocation.
type SignCall struct {
	Bucket      string
	Key         string
	ContentType string
	TTL         time.Duration
}

// FakeSigner is an in-memory URLSigner for tests. It never contacts a backend.
type FakeSigner struct {
	// BaseURL prefixes every returned URL. Defaults to https://storage.example.com.
	BaseURL string
	// Err, when set, is returned by every SignPutURL call.
	Err error

	mu    sync.Mutex
	calls []SignCall
}

// SignPutURL returns a deterministic URL derived from its arguments.
func (f *FakeSigner) SignPutURL(_ context.Context, bucket, key, contentType string, ttl time.Duration) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, SignCall{Bucket: bucket, Key: key, ContentType: contentType, TTL: ttl})
	f.mu.Unlock()

	if f.Err != nil {
		return "", f.Err
	}
	if err := checkSignArgs(bucket, ttl); err != nil {
		return "", err
	}

	base := f.BaseURL
	if base == "" {
		base = "https://storage.example.com"
	}
	q := url.Values{}
	q.Set("X-Amz-Expires", fmt.Sprintf("%d", int(ttl.Seconds())))
	return fmt.Sprintf("%s/%s/%s?%s", base, bucket, key, q.Encode()), nil
}

// Calls returns a copy of every recorded invocation.
func (f *FakeSigner) Calls() []SignCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SignCall(nil), f.calls...)
}
