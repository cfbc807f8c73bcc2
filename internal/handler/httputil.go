package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/axento/books/ent"
	"github.com/axento/books/internal/auth"
	"github.com/axento/books/internal/ingest"
)

// writeJSON marshals v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON encode error: %v", err)
	}
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
		"code":  code,
	})
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// parseUUID extracts and validates a UUID path parameter.
func parseUUID(w http.ResponseWriter, r *http.Request, paramName string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, paramName)
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "invalid UUID: "+raw)
		return uuid.Nil, false
	}
	return id, true
}

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Limit  int
	Offset int
}

// parsePagination extracts page_size and offset from query params.
func parsePagination(r *http.Request) Pagination {
	p := Pagination{Limit: 20, Offset: 0}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Limit = n
		}
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			p.Offset = n
		}
	}
	return p
}

// requireActor resolves the acting user or writes a 401.
func requireActor(w http.ResponseWriter, r *http.Request, id auth.Identity) (string, bool) {
	actor, err := id.UserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
		return "", false
	}
	return actor, true
}

// entErrorToHTTP maps Ent errors to appropriate HTTP responses.
func entErrorToHTTP(w http.ResponseWriter, err error) {
	if ent.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	if ent.IsValidationError(err) {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if ent.IsConstraintError(err) {
		writeError(w, http.StatusConflict, "CONSTRAINT_ERROR", err.Error())
		return
	}
	log.Printf("internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ingestErrorToHTTP maps ledger and parser errors, falling back to the
// Ent mapping for everything else.
func ingestErrorToHTTP(w http.ResponseWriter, err error) {
	var parseErr *ingest.ParseError
	if errors.As(err, &parseErr) {
		writeError(w, http.StatusBadRequest, "PARSE_ERROR", parseErr.Error())
		return
	}
	if errors.Is(err, ingest.ErrDuplicateStatement) {
		writeError(w, http.StatusConflict, "DUPLICATE_STATEMENT", err.Error())
		return
	}
	if errors.Is(err, ingest.ErrImportedTransaction) {
		writeError(w, http.StatusConflict, "IMPORTED_TRANSACTION", err.Error())
		return
	}
	entErrorToHTTP(w, err)
}
