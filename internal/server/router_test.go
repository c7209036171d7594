package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/highlighthero/backend/internal/config"
	"github.com/highlighthero/backend/internal/storage"
	"github.com/highlighthero/backend/internal/upload"
	"github.com/highlighthero/backend/internal/video"
)

var objectKeyPattern = regexp.MustCompile(
	`^uploads/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}/clip\.mp4$`)

func testConfig(bucket string) *config.Config {
	return &config.Config{
		CORSAllowedOrigin:   "http://localhost:3000",
		StorageBucket:       bucket,
		AllowedContentTypes: config.DefaultAllowedContentTypes,
		UploadURLTTL:        config.UploadURLTTL,
	}
}

func newTestRouter(cfg *config.Config, signer storage.URLSigner) http.Handler {
	log := zap.NewNop()
	issuer := upload.NewIssuer(signer, upload.Options{
		Bucket:              cfg.StorageBucket,
		AllowedContentTypes: cfg.AllowedContentTypes,
		TTL:                 cfg.UploadURLTTL,
	}, log)
	return NewRouter(cfg, upload.NewHandler(issuer), video.NewHandler(log), log)
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func presignTarget(filename, contentType string) string {
	q := url.Values{"filename": {filename}}
	if contentType != "" {
		q.Set("content_type", contentType)
	}
	return "/upload/presigned-url?" + q.Encode()
}

func TestHealth_IgnoresConfiguration(t *testing.T) {
	for _, bucket := range []string{"", "highlights"} {
		h := newTestRouter(testConfig(bucket), &storage.FakeSigner{})

		rec := serve(h, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","service":"highlight-hero-backend"}`, rec.Body.String())
	}
}

func TestRoot(t *testing.T) {
	h := newTestRouter(testConfig("highlights"), &storage.FakeSigner{})

	rec := serve(h, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"HighlightHero API","docs":"/docs"}`, rec.Body.String())
}

func TestPresignedURL_AllowList(t *testing.T) {
	h := newTestRouter(testConfig("highlights"), &storage.FakeSigner{})

	for _, ct := range config.DefaultAllowedContentTypes {
		rec := serve(h, http.MethodGet, presignTarget("clip.mp4", ct), "")
		require.Equal(t, http.StatusOK, rec.Code, ct)

		var grant upload.Grant
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grant))
		assert.NotEmpty(t, grant.UploadURL)
		assert.Regexp(t, objectKeyPattern, grant.ObjectKey)
		assert.Equal(t, ct, grant.ContentType)
	}
}

func TestPresignedURL_RejectsOtherTypes(t *testing.T) {
	h := newTestRouter(testConfig("highlights"), &storage.FakeSigner{})

	for _, ct := range []string{"text/plain", "image/png", "video/ogg"} {
		rec := serve(h, http.MethodGet, presignTarget("clip.mp4", ct), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, ct)
	}
}

func TestPresignedURL_UniqueKeys(t *testing.T) {
	h := newTestRouter(testConfig("highlights"), &storage.FakeSigner{})

	var keys []string
	for i := 0; i < 2; i++ {
		rec := serve(h, http.MethodGet, presignTarget("clip.mp4", ""), "")
		require.Equal(t, http.StatusOK, rec.Code)
		var grant upload.Grant
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grant))
		keys = append(keys, grant.ObjectKey)
	}

	assert.NotEqual(t, keys[0], keys[1])
}

func TestPresignedURL_MissingBucket(t *testing.T) {
	h := newTestRouter(testConfig(""), &storage.FakeSigner{})

	for _, target := range []string{
		presignTarget("clip.mp4", "video/mp4"),
		presignTarget("clip.mp4", "text/plain"),
		"/upload/presigned-url",
	} {
		rec := serve(h, http.MethodGet, target, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code, target)
	}
}

func TestRegisterVideo_Echo(t *testing.T) {
	h := newTestRouter(testConfig("highlights"), &storage.FakeSigner{})

	rec := serve(h, http.MethodPost, "/videos",
		`{"object_key":"uploads/abc/x.mp4","user_id":"u1","filename":"x.mp4"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"status": "success",
		"message": "Video registered successfully",
		"objectKey": "uploads/abc/x.mp4",
		"userId": "u1",
		"filename": "x.mp4"
	}`, rec.Body.String())
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	h := newTestRouter(testConfig("highlights"), &storage.FakeSigner{})

	rec := serve(h, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/videos", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	h := newTestRouter(testConfig("highlights"), &storage.FakeSigner{})

	preflight := httptest.NewRequest(http.MethodOptions, "/videos", nil)
	preflight.Header.Set("Origin", "http://localhost:3000")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	preflight.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, preflight)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	other := httptest.NewRequest(http.MethodGet, "/health", nil)
	other.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestDocs(t *testing.T) {
	h := newTestRouter(testConfig("highlights"), &storage.FakeSigner{})

	rec := serve(h, http.MethodGet, "/docs", "")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/docs/index.html", rec.Header().Get("Location"))

	rec = serve(h, http.MethodGet, "/docs/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/upload/presigned-url")
}
