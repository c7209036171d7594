// Package server assembles the HTTP router for the API.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/highlighthero/backend/internal/config"
	appMiddleware "github.com/highlighthero/backend/internal/middleware"
	"github.com/highlighthero/backend/internal/response"
	"github.com/highlighthero/backend/internal/upload"
	"github.com/highlighthero/backend/internal/video"

	_ "github.com/highlighthero/backend/docs/swagger"
)

// ServiceName is reported by the health probe.
const ServiceName = "highlight-hero-backend"

// HealthStatus is the health probe body.
type HealthStatus struct {
	Status  string `json:"status"  example:"ok"`
	Service string `json:"service" example:"highlight-hero-backend"`
}

// RootInfo is the root probe body.
type RootInfo struct {
	Message string `json:"message" example:"HighlightHero API"`
	Docs    string `json:"docs"    example:"/docs"`
}

// NewRouter wires middleware, probes, docs and API routes.
func NewRouter(cfg *config.Config, uploads *upload.Handler, videos *video.Handler, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSAllowedOrigin},
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, "Method Not Allowed")
	})

	r.Get("/health", health)
	r.Get("/", root)

	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	r.Get("/upload/presigned-url", uploads.PresignedURL)
	r.Post("/videos", videos.Register)

	return r
}

// health godoc
//
//	@Summary	Health check
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	HealthStatus
//	@Router		/health [get]
func health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, HealthStatus{Status: "ok", Service: ServiceName})
}

// root godoc
//
//	@Summary	API root
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	RootInfo
//	@Router		/ [get]
func root(w http.ResponseWriter, r *http.Request) {
	response.OK(w, RootInfo{Message: "HighlightHero API", Docs: "/docs"})
}
