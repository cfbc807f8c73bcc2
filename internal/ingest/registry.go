package ingest

import (
	"context"

	"github.com/google/uuid"

	"github.com/axento/books/ent"
	"github.com/axento/books/ent/business"
	"github.com/axento/books/ent/schema"
	"github.com/axento/books/ent/statement"
)

// Registry tracks uploaded statements: identity lookups for idempotent
// re-processing, creation, and forward-only status transitions. It is a
// thin layer over the ent client so the ledger can run it inside a
// transaction via tx.Client().
type Registry struct {
	client *ent.Client
}

// NewRegistry creates a Registry over the given client.
func NewRegistry(client *ent.Client) *Registry {
	return &Registry{client: client}
}

// FindCompleted returns the completed statement with the given checksum
// for the business, or nil when none exists.
func (r *Registry) FindCompleted(ctx context.Context, businessID uuid.UUID, checksum string) (*ent.Statement, error) {
	stmt, err := r.client.Statement.Query().
		Where(
			statement.ChecksumEQ(checksum),
			statement.StatusEQ(statement.StatusCompleted),
			statement.HasBusinessWith(business.ID(businessID)),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// CreateParams describe a new statement record.
type CreateParams struct {
	OriginalName string
	StoredName   string
	Checksum     string
	Currency     string
	Actor        string
}

// Create inserts a pending statement row.
func (r *Registry) Create(ctx context.Context, businessID uuid.UUID, p CreateParams) (*ent.Statement, error) {
	return r.client.Statement.Create().
		SetBusinessID(businessID).
		SetOriginalName(p.OriginalName).
		SetStoredName(p.StoredName).
		SetChecksum(p.Checksum).
		SetCurrency(p.Currency).
		SetStatus(statement.StatusPending).
		SetCreatedBy(p.Actor).
		SetUpdatedBy(p.Actor).
		SetSource(statement.SourceImport).
		Save(ctx)
}

// Transition moves a statement to the target status after validating the
// move against the state machine. mutate, when non-nil, may set
// additional fields (balance, skipped count, failure reason) on the same
// update.
func (r *Registry) Transition(ctx context.Context, stmt *ent.Statement, target statement.Status, actor string, mutate func(*ent.StatementUpdateOne)) (*ent.Statement, error) {
	if !transitionAllowed(string(stmt.Status), string(target)) {
		return nil, transitionError(string(stmt.Status), string(target))
	}
	b := r.client.Statement.UpdateOneID(stmt.ID).
		SetStatus(target).
		SetUpdatedBy(actor).
		SetSource(statement.SourceImport)
	if mutate != nil {
		mutate(b)
	}
	return b.Save(ctx)
}

func transitionAllowed(current, target string) bool {
	for _, t := range schema.ValidStatementTransitions[current] {
		if t == target {
			return true
		}
	}
	return false
}
