package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axento/books/ent"
	"github.com/axento/books/internal/auth"
	"github.com/axento/books/internal/blob"
	"github.com/axento/books/internal/event"
	"github.com/axento/books/internal/ingest"

	_ "github.com/axento/books/ent/runtime"
	_ "modernc.org/sqlite"
)

func newTestRouter(t *testing.T) (http.Handler, *ent.Client) {
	t.Helper()

	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))

	blobs, err := blob.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ledger := ingest.NewLedger(client)
	classifier := ingest.NewClassifier(nil, 0)
	identity := auth.HeaderIdentity{}
	bus := event.NopPublisher{}

	bh := NewBusinessHandler(client, ledger, identity, bus)
	sh := NewStatementHandler(client, ledger, classifier, blobs, identity, bus)
	th := NewTransactionHandler(client, ledger, identity, bus)

	r := chi.NewRouter()
	r.Use(Recovery, Logging)
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
	})
	return r, client
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("X-User-ID", "tester")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func createBusiness(t *testing.T, h http.Handler) string {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/v1/businesses", map[string]any{
		"name": "Acme Consulting",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var got struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &got)
	require.NotEmpty(t, got.ID)
	return got.ID
}

func uploadCSV(t *testing.T, h http.Handler, businessID, filename, csv, query string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/businesses/"+businessID+"/statements"+query, &buf)
	req.Header.Set("X-User-ID", "tester")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

const sampleCSV = "Date,Description,Amount\n" +
	"2024-01-15,Client payment,100.00\n" +
	"2024-01-16,Office rent,-40.00\n" +
	"bad-date,Mystery,10.00\n"

func TestHandlers_RequireIdentity(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/businesses", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "UNAUTHENTICATED", body["code"])
}

func TestHandlers_UploadLifecycle(t *testing.T) {
	h, _ := newTestRouter(t)
	bizID := createBusiness(t, h)

	w := uploadCSV(t, h, bizID, "jan.csv", sampleCSV, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var up struct {
		StatementID         string `json:"statementId"`
		Status              string `json:"status"`
		TransactionsCreated int    `json:"transactionsCreated"`
		Skipped             int    `json:"skipped"`
		TotalRevenue        int64  `json:"totalRevenue"`
		TotalExpenses       int64  `json:"totalExpenses"`
		Balance             int64  `json:"balance"`
	}
	decodeBody(t, w, &up)
	assert.Equal(t, "completed", up.Status)
	assert.Equal(t, 2, up.TransactionsCreated)
	assert.Equal(t, 1, up.Skipped)
	assert.Equal(t, int64(10000), up.TotalRevenue)
	assert.Equal(t, int64(4000), up.TotalExpenses)
	assert.Equal(t, int64(6000), up.Balance)

	// Position reflects the committed import.
	w = doJSON(t, h, http.MethodGet, "/v1/businesses/"+bizID+"/position", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pos struct {
		NetWorthCents int64 `json:"net_worth_cents"`
	}
	decodeBody(t, w, &pos)
	assert.Equal(t, int64(6000), pos.NetWorthCents)

	// Same bytes again: rejected as a duplicate.
	w = uploadCSV(t, h, bizID, "jan-again.csv", sampleCSV, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "DUPLICATE_STATEMENT", body["code"])

	// Forced: replaces the prior import instead.
	w = uploadCSV(t, h, bizID, "jan-forced.csv", sampleCSV, "?force=true")
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Download returns the original bytes under the original name.
	w = doJSON(t, h, http.MethodGet, "/v1/statements/"+up.StatementID+"/download", nil)
	// The first statement was replaced by the forced upload.
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodGet, "/v1/businesses/"+bizID+"/statements", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Statements []struct {
			ID string `json:"id"`
		} `json:"statements"`
	}
	decodeBody(t, w, &list)
	require.Len(t, list.Statements, 1)

	w = doJSON(t, h, http.MethodGet, "/v1/statements/"+list.Statements[0].ID+"/download", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sampleCSV, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "jan-forced.csv")

	// Imported transactions cannot be deleted one by one; the statement
	// they came from stays intact until it is deleted whole.
	w = doJSON(t, h, http.MethodGet, "/v1/businesses/"+bizID+"/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var txList struct {
		Transactions []struct {
			ID string `json:"id"`
		} `json:"transactions"`
	}
	decodeBody(t, w, &txList)
	require.Len(t, txList.Transactions, 2)

	w = doJSON(t, h, http.MethodDelete, "/v1/transactions/"+txList.Transactions[0].ID, nil)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	decodeBody(t, w, &body)
	assert.Equal(t, "IMPORTED_TRANSACTION", body["code"])

	w = doJSON(t, h, http.MethodGet, "/v1/businesses/"+bizID+"/position", nil)
	decodeBody(t, w, &pos)
	assert.Equal(t, int64(6000), pos.NetWorthCents)

	// Delete cascades and resets the position.
	w = doJSON(t, h, http.MethodDelete, "/v1/statements/"+list.Statements[0].ID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, h, http.MethodGet, "/v1/businesses/"+bizID+"/position", nil)
	// Zero-valued fields are omitted from the JSON, so decode into a
	// fresh struct rather than the one still holding the prior value.
	var resetPos struct {
		NetWorthCents int64 `json:"net_worth_cents"`
	}
	decodeBody(t, w, &resetPos)
	assert.Equal(t, int64(0), resetPos.NetWorthCents)
}

func TestHandlers_UploadMalformed(t *testing.T) {
	h, _ := newTestRouter(t)
	bizID := createBusiness(t, h)

	// No usable columns.
	w := uploadCSV(t, h, bizID, "junk.csv", "Who,What\nfoo,bar\n", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "PARSE_ERROR", body["code"])

	// Missing multipart field.
	req := httptest.NewRequest(http.MethodPost, "/v1/businesses/"+bizID+"/statements", bytes.NewReader(nil))
	req.Header.Set("X-User-ID", "tester")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown business.
	w = uploadCSV(t, h, "00000000-0000-0000-0000-000000000000", "jan.csv", sampleCSV, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Not a UUID at all.
	w = uploadCSV(t, h, "not-a-uuid", "jan.csv", sampleCSV, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlers_ManualTransactions(t *testing.T) {
	h, _ := newTestRouter(t)
	bizID := createBusiness(t, h)

	w := doJSON(t, h, http.MethodPost, "/v1/businesses/"+bizID+"/transactions", map[string]any{
		"date":         "2024-02-01T00:00:00Z",
		"type":         "income",
		"amount_cents": 2500,
		"category":     "Consulting",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var tr struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &tr)

	w = doJSON(t, h, http.MethodGet, "/v1/businesses/"+bizID+"/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Transactions []json.RawMessage `json:"transactions"`
	}
	decodeBody(t, w, &list)
	assert.Len(t, list.Transactions, 1)

	// Bad type is rejected before it reaches the ledger.
	w = doJSON(t, h, http.MethodPost, "/v1/businesses/"+bizID+"/transactions", map[string]any{
		"date":         "2024-02-01T00:00:00Z",
		"type":         "transfer",
		"amount_cents": 100,
		"category":     "X",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, h, http.MethodDelete, "/v1/transactions/"+tr.ID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, h, http.MethodGet, "/v1/businesses/"+bizID+"/position", nil)
	var pos struct {
		NetWorthCents int64 `json:"net_worth_cents"`
	}
	decodeBody(t, w, &pos)
	assert.Equal(t, int64(0), pos.NetWorthCents)
}

func TestHandlers_BaselineUpdate(t *testing.T) {
	h, _ := newTestRouter(t)
	bizID := createBusiness(t, h)

	w := doJSON(t, h, http.MethodPut, "/v1/businesses/"+bizID+"/baseline", map[string]any{
		"current_assets_cents":  10000,
		"fixed_assets_cents":    50000,
		"common_stock_cents":    20000,
		"current_liabilities_cents": 5000,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, h, http.MethodGet, "/v1/businesses/"+bizID+"/position", nil)
	var pos struct {
		TotalAssetsCents      int64 `json:"total_assets_cents"`
		TotalLiabilitiesCents int64 `json:"total_liabilities_cents"`
		NetWorthCents         int64 `json:"net_worth_cents"`
	}
	decodeBody(t, w, &pos)
	assert.Equal(t, int64(60000), pos.TotalAssetsCents)
	assert.Equal(t, int64(5000), pos.TotalLiabilitiesCents)
	assert.Equal(t, int64(55000), pos.NetWorthCents)
}

func TestHandlers_GetUnknownIDs(t *testing.T) {
	h, _ := newTestRouter(t)
	createBusiness(t, h)

	missing := "11111111-1111-1111-1111-111111111111"
	for _, path := range []string{
		"/v1/businesses/" + missing,
		"/v1/statements/" + missing,
	} {
		w := doJSON(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestHandlers_ListBusinesses(t *testing.T) {
	h, _ := newTestRouter(t)
	for i := 0; i < 3; i++ {
		w := doJSON(t, h, http.MethodPost, "/v1/businesses", map[string]any{
			"name": fmt.Sprintf("Business %d", i),
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, h, http.MethodGet, "/v1/businesses?page_size=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Businesses []json.RawMessage `json:"businesses"`
	}
	decodeBody(t, w, &list)
	assert.Len(t, list.Businesses, 2)
}
