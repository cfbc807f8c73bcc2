package handler

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/axento/books/ent"
	"github.com/axento/books/ent/business"
	"github.com/axento/books/ent/statement"
	"github.com/axento/books/internal/auth"
	"github.com/axento/books/internal/blob"
	"github.com/axento/books/internal/event"
	"github.com/axento/books/internal/ingest"
)

// maxUploadBytes caps statement uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// StatementHandler implements HTTP handlers for statement uploads and
// lifecycle.
type StatementHandler struct {
	client     *ent.Client
	ledger     *ingest.Ledger
	classifier *ingest.Classifier
	blobs      blob.Store
	identity   auth.Identity
	bus        event.Publisher
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(client *ent.Client, ledger *ingest.Ledger, classifier *ingest.Classifier, blobs blob.Store, identity auth.Identity, bus event.Publisher) *StatementHandler {
	return &StatementHandler{
		client:     client,
		ledger:     ledger,
		classifier: classifier,
		blobs:      blobs,
		identity:   identity,
		bus:        bus,
	}
}

type uploadResponse struct {
	StatementID         string `json:"statementId"`
	Status              string `json:"status"`
	TransactionsCreated int    `json:"transactionsCreated"`
	Skipped             int    `json:"skipped"`
	TotalRevenue        int64  `json:"totalRevenue"`
	TotalExpenses       int64  `json:"totalExpenses"`
	Balance             int64  `json:"balance"`
}

// Upload ingests one statement file for a business. The whole pipeline
// runs synchronously: the response reflects the committed outcome.
func (h *StatementHandler) Upload(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.identity)
	if !ok {
		return
	}
	businessID, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "MISSING_FILE", "multipart field 'file' is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "UNREADABLE_FILE", err.Error())
		return
	}

	sum := sha256.Sum256(data)
	checksum := hex.EncodeToString(sum[:])

	rows, skipped, err := ingest.ReadAll(bytes.NewReader(data))
	if err != nil {
		ingestErrorToHTTP(w, err)
		return
	}
	classified := h.classifier.ClassifyAll(r.Context(), rows)

	storedName := uuid.New().String() + filepath.Ext(header.Filename)
	if err := h.blobs.Put(r.Context(), storedName, data); err != nil {
		entErrorToHTTP(w, fmt.Errorf("storing upload: %w", err))
		return
	}

	res, err := h.ledger.Process(r.Context(), businessID, ingest.Upload{
		OriginalName: header.Filename,
		StoredName:   storedName,
		Checksum:     checksum,
		Rows:         classified,
		Skipped:      skipped,
		Force:        r.URL.Query().Get("force") == "true",
		Actor:        actor,
	})
	if err != nil {
		h.bus.Publish(r.Context(), event.NewStatementFailed(event.StatementFailedPayload{
			BusinessID:   businessID.String(),
			OriginalName: header.Filename,
			Reason:       err.Error(),
		}))
		ingestErrorToHTTP(w, err)
		return
	}

	h.bus.Publish(r.Context(), event.NewStatementCompleted(event.StatementCompletedPayload{
		StatementID:         res.Statement.ID.String(),
		BusinessID:          businessID.String(),
		OriginalName:        header.Filename,
		TransactionsCreated: res.TransactionsCreated,
		SkippedRows:         res.Skipped,
		BalanceCents:        res.BalanceCents,
		Forced:              r.URL.Query().Get("force") == "true",
	}))
	h.publishPosition(r, businessID.String())

	writeJSON(w, http.StatusCreated, uploadResponse{
		StatementID:         res.Statement.ID.String(),
		Status:              string(res.Statement.Status),
		TransactionsCreated: res.TransactionsCreated,
		Skipped:             res.Skipped,
		TotalRevenue:        res.TotalRevenueCents,
		TotalExpenses:       res.TotalExpensesCents,
		Balance:             res.BalanceCents,
	})
}

func (h *StatementHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireActor(w, r, h.identity); !ok {
		return
	}
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	stmt, err := h.client.Statement.Get(r.Context(), id)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stmt)
}

func (h *StatementHandler) ListStatements(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireActor(w, r, h.identity); !ok {
		return
	}
	businessID, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	p := parsePagination(r)
	items, err := h.client.Statement.Query().
		Where(statement.HasBusinessWith(business.ID(businessID))).
		Order(ent.Desc(statement.FieldCreatedAt)).
		Limit(p.Limit).
		Offset(p.Offset).
		All(r.Context())
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"statements": items})
}

// Download streams the raw uploaded file back.
func (h *StatementHandler) Download(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireActor(w, r, h.identity); !ok {
		return
	}
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	stmt, err := h.client.Statement.Get(r.Context(), id)
	if err != nil {
		entErrorToHTTP(w, err)
		return
	}
	data, err := h.blobs.Get(r.Context(), stmt.StoredName)
	if err != nil {
		writeError(w, http.StatusNotFound, "FILE_NOT_FOUND", "stored file is missing")
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", stmt.OriginalName))
	w.Write(data)
}

// DeleteStatement removes the statement, its transactions, and its stored
// file, and recomputes the financial position.
func (h *StatementHandler) DeleteStatement(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, h.identity)
	if !ok {
		return
	}
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	stmt, removed, err := h.ledger.Delete(r.Context(), id, actor)
	if err != nil {
		ingestErrorToHTTP(w, err)
		return
	}

	// The database delete already committed; a leftover blob is only
	// disk noise.
	if err := h.blobs.Delete(r.Context(), stmt.StoredName); err != nil {
		log.Printf("statement %s: deleting stored file %s: %v", stmt.ID, stmt.StoredName, err)
	}

	h.bus.Publish(r.Context(), event.NewStatementDeleted(event.StatementDeletedPayload{
		StatementID:         stmt.ID.String(),
		BusinessID:          stmt.Edges.Business.ID.String(),
		OriginalName:        stmt.OriginalName,
		TransactionsRemoved: removed,
	}))
	h.publishPosition(r, stmt.Edges.Business.ID.String())

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// publishPosition emits the freshly recomputed position so feed clients
// can show live net worth. Best-effort.
func (h *StatementHandler) publishPosition(r *http.Request, businessID string) {
	id, err := uuid.Parse(businessID)
	if err != nil {
		return
	}
	pos, err := h.ledger.Position(r.Context(), id)
	if err != nil {
		log.Printf("statement: reading position for event: %v", err)
		return
	}
	h.bus.Publish(r.Context(), event.NewPositionRecomputed(event.PositionRecomputedPayload{
		BusinessID:       businessID,
		TotalAssets:      pos.TotalAssetsCents,
		TotalLiabilities: pos.TotalLiabilitiesCents,
		NetWorth:         pos.NetWorthCents,
	}))
}
