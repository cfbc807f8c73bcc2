package handler

import (
	"net/http"

	"github.com/axento/books/ent"
	"github.com/axento/books/ent/business"
	"github.com/axento/books/internal/auth"
	"github.com/axento/books/internal/event"
	"github.com/axento/books/internal/ingest"
)

// BusinessHandler implements HTTP handlers for businesses and their
// financial positions.
type BusinessHandler struct {
	client   *ent.Client
	ledger   *ingest.Ledger
	identity auth.Identity
	bus      event.Publisher
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(client *ent.Client, ledger *ingest.Ledger, identity auth.Identity, bus event.Publisher) *BusinessHandler {
	return &BusinessHandler{client: client, ledger: ledger, identity: identity, bus: bus}
}

type baselineRequest struct {
	CurrentAssetsCents       int64 `json:"current_assets_cents"`
	FixedAssetsCents         int64 `json:"fixed_assets_cents"`
	CurrentLiabilitiesCents  int64 `json:"current_liabilities_cents"`
	LongTermLiabilitiesCents int64 `json:"long_term_liabilities_cents"`
	CommonStockCents         int64 `json:"common_stock_cents"`
}

func (b baselineRequest) toBaseline() ingest.Baseline {
	return ingest.Baseline{
		CurrentAssetsCents:       b.CurrentAssetsCents,
		FixedAssetsCents:         b.FixedAssetsCents,
		CurrentLiabilitiesCents:  b.CurrentLiabilitiesCents,
		LongTermLiabilitiesCents: b.LongTermLiabilitiesCents,
		CommonStockCents:         b.CommonStockCents,
	}
}

type createBusinessRequest struct {
	Name     string          `json:"name"`
	Currency string          `json:"currency,omitempty"`
	Baseline baselineRequest `json:"baseline"`
}

func (h *BusinessHandler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.identity)
	if !ok {
		return
	}
	var req createBusinessRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	biz, err := h.ledger.CreateBusiness(r.Context(), ingest.CreateBusinessParams{
		Name:     req.Name,
		Currency: req.Currency,
		Baseline: req.Baseline.toBaseline(),
		Actor:    actor,
	})
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}

	h.bus.Publish(r.Context(), event.NewBusinessCreated(event.BusinessCreatedPayload{
		BusinessID: biz.ID.String(),
		Name:       biz.Name,
		Currency:   biz.Currency,
	}))
	writeJSON(w, http.StatusCreated, biz)
}

func (h *BusinessHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireActor(w, r, h.identity); !ok {
		return
	}
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	biz, err := h.client.Business.Get(r.Context(), id)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, biz)
}

func (h *BusinessHandler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireActor(w, r, h.identity); !ok {
		return
	}
	p := parsePagination(r)
	items, err := h.client.Business.Query().
		Order(ent.Desc(business.FieldCreatedAt)).
		Limit(p.Limit).
		Offset(p.Offset).
		All(r.Context())
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"businesses": items})
}

// UpdateBaseline replaces the opening balances and recomputes the
// financial position.
func (h *BusinessHandler) UpdateBaseline(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.identity)
	if !ok {
		return
	}
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	var req baselineRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	biz, err := h.ledger.UpdateBaseline(r.Context(), id, req.toBaseline(), actor)
	if err != nil {
		ingestErrorToHTTP(w, err)
		return
	}

	h.bus.Publish(r.Context(), event.NewBaselineUpdated(event.BaselineUpdatedPayload{
		BusinessID: biz.ID.String(),
		UpdatedBy:  actor,
	}))
	writeJSON(w, http.StatusOK, biz)
}

func (h *BusinessHandler) GetPosition(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireActor(w, r, h.identity); !ok {
		return
	}
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	pos, err := h.ledger.Position(r.Context(), id)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pos)
}
