// Command hirescoped is the Hirescope platform service.
// It serves the form-platform webhook endpoint, the REST API, and a health check.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/hirescope/hirescope/internal/account"
	"github.com/hirescope/hirescope/internal/api"
	"github.com/hirescope/hirescope/internal/intake"
	"github.com/hirescope/hirescope/internal/platform"
	"github.com/hirescope/hirescope/internal/webhook"
	"github.com/hirescope/hirescope/pkg/scoring"
)

type config struct {
	Port          string
	DatabaseURL   string
	APIKey        string
	WebhookSecret string
	CatalogPath   string
	ScoringPath   string

	LocalStoragePath string
	S3Bucket         string
	S3Region         string
	S3Endpoint       string
	GCSBucket        string
}

func loadConfig() config {
	return config{
		Port:          envOrDefault("PORT", "8080"),
		DatabaseURL:   envOrDefault("DATABASE_URL", "postgres://localhost:5432/hirescope?sslmode=disable"),
		APIKey:        os.Getenv("API_KEY"),
		WebhookSecret: os.Getenv("FORM_WEBHOOK_SECRET"),
		CatalogPath:   os.Getenv("CATALOG_PATH"),
		ScoringPath:   os.Getenv("SCORING_PATH"),

		LocalStoragePath: envOrDefault("LOCAL_STORAGE_PATH", "/tmp/hirescope-data"),
		S3Bucket:         os.Getenv("S3_BUCKET"),
		S3Region:         os.Getenv("S3_REGION"),
		S3Endpoint:       os.Getenv("S3_ENDPOINT"),
		GCSBucket:        os.Getenv("GCS_BUCKET"),
	}
}

func main() {
	cfg := loadConfig()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if err := platform.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		log.Fatalf("build engine: %v", err)
	}

	storage, err := buildStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("build storage: %v", err)
	}

	accountSvc := account.NewService(db)
	intakeSvc := intake.NewService(accountSvc, storage, engine)

	webhookHandler := webhook.NewHandler([]byte(cfg.WebhookSecret), intakeSvc)
	apiHandler := api.NewHandler(db, accountSvc, intakeSvc, engine)

	apiMux := http.NewServeMux()
	apiHandler.RegisterRoutes(apiMux)

	mux := http.NewServeMux()
	mux.Handle("POST /v1/webhooks/form", webhookHandler)
	mux.Handle("/api/", api.APIKeyAuth(cfg.APIKey)(apiMux))
	mux.HandleFunc("GET /healthz", healthHandler(db))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.CORS(mux),
	}

	go func() {
		log.Printf("starting hirescoped on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// buildEngine assembles the rule engine from the configured overrides.
// Missing override files fall back to the built-in tables.
func buildEngine(cfg config) (*scoring.Engine, error) {
	catalog := scoring.DefaultCatalog()
	if cfg.CatalogPath != "" {
		var err error
		catalog, err = scoring.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
	}

	scoringCfg := scoring.DefaultConfig()
	if cfg.ScoringPath != "" {
		var err error
		scoringCfg, err = scoring.LoadConfig(cfg.ScoringPath)
		if err != nil {
			return nil, err
		}
	}

	return scoring.NewEngine(scoringCfg, catalog)
}

// buildStorage picks the blob backend: GCS, S3, or local filesystem.
func buildStorage(ctx context.Context, cfg config) (intake.StorageClient, error) {
	switch {
	case cfg.GCSBucket != "":
		return intake.NewGCSStorage(ctx, cfg.GCSBucket)
	case cfg.S3Bucket != "":
		return intake.NewS3Storage(ctx, intake.S3Config{
			Bucket:   cfg.S3Bucket,
			Region:   cfg.S3Region,
			Endpoint: cfg.S3Endpoint,
		})
	default:
		return intake.NewLocalStorage(cfg.LocalStoragePath), nil
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
