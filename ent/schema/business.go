package schema

import (
	"regexp"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Business is the tenant root. It owns transactions, statements and exactly
// one financial position. The baseline_* fields hold the opening balances
// captured at onboarding; the position recompute starts from them.
type Business struct {
	ent.Schema
}

// Mixin of the Business.
func (Business) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Business.
func (Business) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable().Comment("Primary key"),
		field.String("name").NotEmpty(),
		field.String("currency").
			Default("USD").
			Match(regexp.MustCompile(`^[A-Z]{3}$`)).
			Comment("ISO 4217 base currency code"),
		field.Int64("baseline_current_assets_cents").Default(0),
		field.Int64("baseline_fixed_assets_cents").Default(0),
		field.Int64("baseline_current_liabilities_cents").Default(0),
		field.Int64("baseline_long_term_liabilities_cents").Default(0),
		field.Int64("baseline_common_stock_cents").Default(0),
	}
}

// Edges of the Business.
func (Business) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("transactions", Transaction.Type).Comment("Monetary events owned by this business"),
		edge.To("statements", Statement.Type).Comment("Uploaded bank statements"),
		edge.To("position", FinancialPosition.Type).Unique().Comment("The single cached financial position"),
	}
}
