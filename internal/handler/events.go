package handler

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/axento/books/internal/auth"
	"github.com/axento/books/internal/event"
)

// EventsHandler serves the recent-events feed over plain HTTP and as a
// live WebSocket stream. It implements the bus Handler interface so new
// events fan out to connected clients; subscribe it once at startup.
type EventsHandler struct {
	recent   *event.RecentStore
	identity auth.Identity

	mu      sync.Mutex
	clients map[chan event.DomainEvent]struct{}
}

// NewEventsHandler creates a new EventsHandler over the given store.
func NewEventsHandler(recent *event.RecentStore, identity auth.Identity) *EventsHandler {
	return &EventsHandler{
		recent:   recent,
		identity: identity,
		clients:  make(map[chan event.DomainEvent]struct{}),
	}
}

// HandleEvent fans the event out to connected WebSocket clients. A slow
// client's event is dropped rather than blocking the bus.
func (h *EventsHandler) HandleEvent(_ context.Context, evt event.DomainEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- evt:
		default:
		}
	}
	return nil
}

// eventView is the wire shape of one event.
type eventView struct {
	ID         string `json:"id"`
	EventType  string `json:"event_type"`
	OccurredAt string `json:"occurred_at"`
	BusinessID string `json:"business_id"`
	Summary    string `json:"summary"`
	Category   string `json:"category"`
	Weight     string `json:"weight"`
	Polarity   string `json:"polarity"`
	Payload    any    `json:"payload"`
}

func toView(evt event.DomainEvent) eventView {
	return eventView{
		ID:         evt.ID,
		EventType:  evt.EventType,
		OccurredAt: evt.OccurredAt.Format(time.RFC3339Nano),
		BusinessID: evt.BusinessID,
		Summary:    evt.Summary,
		Category:   evt.Category,
		Weight:     evt.Weight,
		Polarity:   evt.Polarity,
		Payload:    evt.Payload,
	}
}

// ListEvents returns recent events, newest first. Optional business_id
// and limit query parameters narrow the result.
func (h *EventsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireActor(w, r, h.identity); !ok {
		return
	}
	p := parsePagination(r)
	events := h.recent.Recent(r.URL.Query().Get("business_id"), p.Limit)
	views := make([]eventView, len(events))
	for i, evt := range events {
		views[i] = toView(evt)
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": views})
}

// Feed upgrades to WebSocket and streams events as they are published.
func (h *EventsHandler) Feed(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireActor(w, r, h.identity); !ok {
		return
	}
	businessID := r.URL.Query().Get("business_id")

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("events: websocket accept: %v", err)
		return
	}
	defer conn.CloseNow()

	ch := make(chan event.DomainEvent, 64)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		delete(h.clients, ch)
		h.mu.Unlock()
	}()

	// The client never sends application messages; CloseRead watches for
	// the close frame and cancels the context.
	ctx := conn.CloseRead(r.Context())

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case evt := <-ch:
			if businessID != "" && evt.BusinessID != businessID {
				continue
			}
			if err := wsjson.Write(ctx, conn, toView(evt)); err != nil {
				if websocket.CloseStatus(err) != -1 {
					log.Printf("events: connection closed: %v", websocket.CloseStatus(err))
				}
				return
			}
		}
	}
}
