package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/axento/books/ent"
	"github.com/axento/books/internal/auth"
	"github.com/axento/books/internal/blob"
	"github.com/axento/books/internal/enrich"
	"github.com/axento/books/internal/eventbus"
	"github.com/axento/books/internal/ingest"
	"github.com/axento/books/internal/server"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/axento/books/ent/runtime"
	_ "modernc.org/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "file:books.db?_pragma=foreign_keys(1)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	db.SetMaxOpenConns(1)

	// Enable foreign keys explicitly, required for SQLite.
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		log.Fatalf("enabling foreign keys: %v", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	defer client.Close()

	if err := client.Schema.Create(ctx); err != nil {
		log.Fatalf("running schema migration: %v", err)
	}
	log.Println("database migrated successfully")

	port := 8080
	if p := os.Getenv("PORT"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	blobs, err := openBlobStore(ctx)
	if err != nil {
		log.Fatalf("opening blob store: %v", err)
	}

	// The enricher is optional. Without an API key the classifier's
	// deterministic rule does all the work.
	var enricher ingest.Enricher
	if os.Getenv("GEMINI_API_KEY") != "" || os.Getenv("GOOGLE_API_KEY") != "" {
		e, err := enrich.New(ctx, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("creating enricher: %v", err)
		}
		enricher = e
		log.Println("gemini enrichment enabled")
	}

	if err := server.Run(ctx, server.Config{
		Port:       port,
		DBClient:   client,
		Ledger:     ingest.NewLedger(client),
		Classifier: ingest.NewClassifier(enricher, 2*time.Second),
		Blobs:      blobs,
		Identity:   auth.HeaderIdentity{},
		Bus:        eventbus.New(256),
	}); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// openBlobStore picks GCS when a bucket is configured, local disk
// otherwise.
func openBlobStore(ctx context.Context) (blob.Store, error) {
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		log.Printf("storing uploads in gs://%s", bucket)
		return blob.NewGCSStore(ctx, bucket)
	}
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return blob.NewLocalStore(dir)
}
