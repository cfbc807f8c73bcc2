package schema

import (
	"regexp"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Statement is an uploaded bank export and its processing lifecycle record.
// The checksum is the statement's identity for idempotent re-processing:
// two uploads with the same checksum for the same business are the same
// statement.
type Statement struct {
	ent.Schema
}

// Mixin of the Statement.
func (Statement) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Statement.
func (Statement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable().Comment("Primary key"),
		field.String("original_name").NotEmpty().Comment("Filename as uploaded"),
		field.String("stored_name").NotEmpty().Comment("Blob store key for the raw bytes"),
		field.String("checksum").
			Match(regexp.MustCompile(`^[a-f0-9]{64}$`)).
			Comment("SHA-256 of the raw upload, hex encoded"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.String("failure_reason").Optional().Nillable(),
		field.Int64("balance_cents").Default(0).Comment("Sum of signed amounts in the batch"),
		field.String("currency").Default("USD").Match(regexp.MustCompile(`^[A-Z]{3}$`)),
		field.Int("skipped").NonNegative().Default(0).Comment("Rows dropped during parsing"),
	}
}

// Edges of the Statement.
func (Statement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("business", Business.Type).Ref("statements").Unique().Required(),
		edge.To("transactions", Transaction.Type).Comment("Transactions derived from this statement"),
	}
}

// ValidStatementTransitions defines the allowed state machine transitions.
// Status only moves forward: completed and failed are terminal.
var ValidStatementTransitions = map[string][]string{
	"pending":    {"processing", "failed"},
	"processing": {"completed", "failed"},
	"completed":  {},
	"failed":     {},
}
