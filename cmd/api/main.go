//	@title			HighlightHero API
//	@version		0.1.0
//	@description	Video upload backend for stylized sports highlight animations.
//
//	@BasePath	/

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/highlighthero/backend/internal/config"
	"github.com/highlighthero/backend/internal/logging"
	"github.com/highlighthero/backend/internal/server"
	"github.com/highlighthero/backend/internal/storage"
	"github.com/highlighthero/backend/internal/upload"
	"github.com/highlighthero/backend/internal/video"
)

func main() {
	cfg := config.Load()

	log, err := logging.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	if !cfg.EnvFileLoaded {
		log.Info("no .env file found, reading from environment")
	}
	if cfg.StorageBucket == "" {
		log.Warn("S3_BUCKET_NAME is not set; presigned-url requests will fail")
	}

	signer, err := newSigner(context.Background(), cfg)
	if err != nil {
		log.Fatal("object storage init failed", zap.Error(err))
	}

	// Wire dependencies: signer → issuer → handler
	issuer := upload.NewIssuer(signer, upload.Options{
		Bucket:              cfg.StorageBucket,
		AllowedContentTypes: cfg.AllowedContentTypes,
		TTL:                 cfg.UploadURLTTL,
	}, log.Named("upload"))
	uploadHandler := upload.NewHandler(issuer)
	videoHandler := video.NewHandler(log.Named("video"))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.NewRouter(cfg, uploadHandler, videoHandler, log.Named("http")),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.AppEnv),
			zap.String("docs", "http://localhost:"+cfg.Port+"/docs/"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}

// newSigner picks MinIO for a custom S3-compatible endpoint and AWS S3 otherwise.
func newSigner(ctx context.Context, cfg *config.Config) (storage.URLSigner, error) {
	if cfg.UsesCustomEndpoint() {
		return storage.NewMinioSigner(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageRegion,
			cfg.StorageUseSSL,
		)
	}
	return storage.NewS3Signer(ctx, cfg.StorageRegion, cfg.StorageAccessKey, cfg.StorageSecretKey)
}
