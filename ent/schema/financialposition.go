package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FinancialPosition is the cached aggregate of assets, liabilities and
// equity for one business. It is recomputed in full by the ledger writer
// on every mutation, never patched field by field, so the accounting
// identity (assets = liabilities + equity) cannot drift.
type FinancialPosition struct {
	ent.Schema
}

// Mixin of the FinancialPosition.
func (FinancialPosition) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the FinancialPosition.
func (FinancialPosition) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable().Comment("Primary key"),
		field.Int64("current_assets_cents").Default(0),
		field.Int64("fixed_assets_cents").Default(0),
		field.Int64("current_liabilities_cents").Default(0),
		field.Int64("long_term_liabilities_cents").Default(0),
		field.Int64("common_stock_cents").Default(0),
		field.Int64("retained_earnings_cents").Default(0),
		field.Int64("total_assets_cents").Default(0),
		field.Int64("total_liabilities_cents").Default(0),
		field.Int64("total_equity_cents").Default(0),
		field.Int64("net_worth_cents").Default(0),
	}
}

// Edges of the FinancialPosition.
func (FinancialPosition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("business", Business.Type).Ref("position").Unique().Required(),
	}
}
