//	@title			filedrop API
//	@version		1.0
//	@description	Minimal file-sharing service. Upload a file, get a short shareable link that previews or downloads it.
//
//	@host		localhost:8080
//	@BasePath	/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/filedrop/service/internal/config"
	appMiddleware "github.com/filedrop/service/internal/middleware"
	"github.com/filedrop/service/internal/preview"
	"github.com/filedrop/service/internal/share"
	"github.com/filedrop/service/internal/storage"
	"github.com/filedrop/service/web"

	_ "github.com/filedrop/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	thumbs, err := preview.NewThumbnailer(store, filepath.Join(cfg.DataDir, "thumbs"))
	if err != nil {
		log.Fatalf("thumbnail cache init failed: %v", err)
	}

	// Wire dependencies: storage → registry → service → handler
	registry := share.NewRegistry()
	svc := share.NewService(registry, store)
	presenter := preview.NewPresenter(store, cfg.MaxPreviewBytes)
	handler := share.NewHandler(svc, presenter, thumbs, cfg.PublicBaseURL)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Share endpoints
	r.Post("/upload", handler.Upload)
	r.Get("/f/{id}", handler.Preview)
	r.Get("/download/{id}", handler.Download)
	r.Get("/thumbnail/{id}", handler.Thumbnail)
	r.Get("/api/files", handler.ListFiles)

	// Upload form and assets at the root; explicit routes take precedence
	r.Handle("/*", http.FileServer(web.GetFileSystem()))

	// No global read/write deadlines: uploads and downloads of large files
	// can legitimately outlive any fixed timeout.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		if !cfg.IsProduction() {
			log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageBackend == "minio" {
		return storage.NewMinioStorage(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageBucket,
			cfg.StorageUseSSL,
		)
	}
	return storage.NewLocal(cfg.DataDir)
}
