package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Transaction is one classified monetary event. The amount is always a
// non-negative magnitude in cents; the sign is carried by the type enum.
// Committed transactions are immutable; corrections happen by deleting
// and re-entering, never by editing in place.
type Transaction struct {
	ent.Schema
}

// Mixin of the Transaction.
func (Transaction) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Transaction.
func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable().Comment("Primary key"),
		field.Time("date").Immutable(),
		field.Enum("type").Values("income", "expense").Immutable(),
		field.Int64("amount_cents").Min(0).Immutable().Comment("Magnitude in cents; sign lives in type"),
		field.String("category").NotEmpty(),
		field.String("description").Optional(),
		field.Float("confidence").Default(0.8).Min(0).Max(1).Comment("Classification quality, 0..1"),
	}
}

// Edges of the Transaction.
func (Transaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("business", Business.Type).Ref("transactions").Unique().Required(),
		edge.From("statement", Statement.Type).Ref("transactions").Unique().
			Comment("Source statement; manual entries have none"),
	}
}
