package handler

import (
	"net/http"
	"time"

	"github.com/axento/books/ent"
	"github.com/axento/books/ent/business"
	"github.com/axento/books/ent/transaction"
	"github.com/axento/books/internal/auth"
	"github.com/axento/books/internal/event"
	"github.com/axento/books/internal/ingest"
)

// TransactionHandler implements HTTP handlers for manual transactions.
type TransactionHandler struct {
	client   *ent.Client
	ledger   *ingest.Ledger
	identity auth.Identity
	bus      event.Publisher
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(client *ent.Client, ledger *ingest.Ledger, identity auth.Identity, bus event.Publisher) *TransactionHandler {
	return &TransactionHandler{client: client, ledger: ledger, identity: identity, bus: bus}
}

type createTransactionRequest struct {
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.identity)
	if !ok {
		return
	}
	businessID, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.Type != ingest.TypeIncome && req.Type != ingest.TypeExpense {
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", "type must be income or expense")
		return
	}

	tr, err := h.ledger.AddEntry(r.Context(), businessID, ingest.ManualEntry{
		Date:        req.Date,
		Type:        req.Type,
		AmountCents: req.AmountCents,
		Category:    req.Category,
		Description: req.Description,
		Actor:       actor,
	})
	if err != nil {
		ingestErrorToHTTP(w, err)
		return
	}

	h.bus.Publish(r.Context(), event.NewTransactionCreated(event.TransactionCreatedPayload{
		TransactionID: tr.ID.String(),
		BusinessID:    businessID.String(),
		Date:          tr.Date,
		Type:          string(tr.Type),
		AmountCents:   tr.AmountCents,
		Category:      tr.Category,
	}))
	writeJSON(w, http.StatusCreated, tr)
}

func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireActor(w, r, h.identity); !ok {
		return
	}
	businessID, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	p := parsePagination(r)
	q := h.client.Transaction.Query().
		Where(transaction.HasBusinessWith(business.ID(businessID)))
	if t := r.URL.Query().Get("type"); t != "" {
		q = q.Where(transaction.TypeEQ(transaction.Type(t)))
	}
	items, err := q.
		Order(ent.Desc(transaction.FieldDate)).
		Limit(p.Limit).
		Offset(p.Offset).
		All(r.Context())
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": items})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.identity)
	if !ok {
		return
	}
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	// Fetch before delete for the event payload.
	tr, err := h.client.Transaction.Get(r.Context(), id)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	bizID, err := h.client.Transaction.QueryBusiness(tr).OnlyID(r.Context())
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}

	if err := h.ledger.DeleteEntry(r.Context(), id, actor); err != nil {
		ingestErrorToHTTP(w, err)
		return
	}

	h.bus.Publish(r.Context(), event.NewTransactionDeleted(event.TransactionDeletedPayload{
		TransactionID: tr.ID.String(),
		BusinessID:    bizID.String(),
		Type:          string(tr.Type),
		AmountCents:   tr.AmountCents,
	}))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
