// Package server assembles all HTTP handlers and starts the server.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/axento/books/ent"
	"github.com/axento/books/internal/auth"
	"github.com/axento/books/internal/blob"
	"github.com/axento/books/internal/event"
	"github.com/axento/books/internal/eventbus"
	"github.com/axento/books/internal/handler"
	"github.com/axento/books/internal/ingest"
)

// Config holds server configuration and collaborators.
type Config struct {
	Port       int
	DBClient   *ent.Client
	Ledger     *ingest.Ledger
	Classifier *ingest.Classifier
	Blobs      blob.Store
	Identity   auth.Identity
	Bus        *eventbus.Bus
}

// Run starts the HTTP server with all routes registered. It owns the
// event bus lifecycle: subscribers are registered here, the bus starts
// before the listener and drains after it stops.
func Run(ctx context.Context, cfg Config) error {
	recent := event.NewRecentStore(512)
	eh := handler.NewEventsHandler(recent, cfg.Identity)

	cfg.Bus.Subscribe("log", eventbus.NewLogConsumer())
	cfg.Bus.Subscribe("recent", recent)
	cfg.Bus.Subscribe("ws-feed", eh)
	cfg.Bus.Start(ctx)

	bh := handler.NewBusinessHandler(cfg.DBClient, cfg.Ledger, cfg.Identity, cfg.Bus)
	sh := handler.NewStatementHandler(cfg.DBClient, cfg.Ledger, cfg.Classifier, cfg.Blobs, cfg.Identity, cfg.Bus)
	th := handler.NewTransactionHandler(cfg.DBClient, cfg.Ledger, cfg.Identity, cfg.Bus)

	r := chi.NewRouter()
	r.Use(handler.Recovery, handler.Logging)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/businesses", bh.CreateBusiness)
		r.Get("/businesses", bh.ListBusinesses)
		r.Get("/businesses/{id}", bh.GetBusiness)
		r.Put("/businesses/{id}/baseline", bh.UpdateBaseline)
		r.Get("/businesses/{id}/position", bh.GetPosition)

		r.Post("/businesses/{id}/statements", sh.Upload)
		r.Get("/businesses/{id}/statements", sh.ListStatements)
		r.Get("/statements/{id}", sh.GetStatement)
		r.Get("/statements/{id}/download", sh.Download)
		r.Delete("/statements/{id}", sh.DeleteStatement)

		r.Post("/businesses/{id}/transactions", th.CreateTransaction)
		r.Get("/businesses/{id}/transactions", th.ListTransactions)
		r.Delete("/transactions/{id}", th.DeleteTransaction)

		r.Get("/events", eh.ListEvents)
		r.Get("/events/ws", eh.Feed)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("starting server on %s", addr)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	err := srv.ListenAndServe()
	cfg.Bus.Stop()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
