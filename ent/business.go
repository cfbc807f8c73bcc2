// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/axento/books/ent/business"
	"github.com/axento/books/ent/financialposition"
	"github.com/google/uuid"
)

// Business is the model entity for the Business schema.
type Business struct {
	config `json:"-"`
	// ID of the ent.
	// Primary key
	ID uuid.UUID `json:"id,omitempty"`
	// When the entity was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the entity was last updated
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// User ID or 'system' who created this entity
	CreatedBy string `json:"created_by,omitempty"`
	// User ID or 'system' who last updated this entity
	UpdatedBy string `json:"updated_by,omitempty"`
	// Origin of the change
	Source business.Source `json:"source,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// ISO 4217 base currency code
	Currency string `json:"currency,omitempty"`
	// BaselineCurrentAssetsCents holds the value of the "baseline_current_assets_cents" field.
	BaselineCurrentAssetsCents int64 `json:"baseline_current_assets_cents,omitempty"`
	// BaselineFixedAssetsCents holds the value of the "baseline_fixed_assets_cents" field.
	BaselineFixedAssetsCents int64 `json:"baseline_fixed_assets_cents,omitempty"`
	// BaselineCurrentLiabilitiesCents holds the value of the "baseline_current_liabilities_cents" field.
	BaselineCurrentLiabilitiesCents int64 `json:"baseline_current_liabilities_cents,omitempty"`
	// BaselineLongTermLiabilitiesCents holds the value of the "baseline_long_term_liabilities_cents" field.
	BaselineLongTermLiabilitiesCents int64 `json:"baseline_long_term_liabilities_cents,omitempty"`
	// BaselineCommonStockCents holds the value of the "baseline_common_stock_cents" field.
	BaselineCommonStockCents int64 `json:"baseline_common_stock_cents,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BusinessQuery when eager-loading is set.
	Edges        BusinessEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BusinessEdges holds the relations/edges for other nodes in the graph.
type BusinessEdges struct {
	// Monetary events owned by this business
	Transactions []*Transaction `json:"transactions,omitempty"`
	// Uploaded bank statements
	Statements []*Statement `json:"statements,omitempty"`
	// The single cached financial position
	Position *FinancialPosition `json:"position,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TransactionsOrErr returns the Transactions value or an error if the edge
// was not loaded in eager-loading.
func (e BusinessEdges) TransactionsOrErr() ([]*Transaction, error) {
	if e.loadedTypes[0] {
		return e.Transactions, nil
	}
	return nil, &NotLoadedError{edge: "transactions"}
}

// StatementsOrErr returns the Statements value or an error if the edge
// was not loaded in eager-loading.
func (e BusinessEdges) StatementsOrErr() ([]*Statement, error) {
	if e.loadedTypes[1] {
		return e.Statements, nil
	}
	return nil, &NotLoadedError{edge: "statements"}
}

// PositionOrErr returns the Position value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BusinessEdges) PositionOrErr() (*FinancialPosition, error) {
	if e.Position != nil {
		return e.Position, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: financialposition.Label}
	}
	return nil, &NotLoadedError{edge: "position"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Business) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case business.FieldBaselineCurrentAssetsCents, business.FieldBaselineFixedAssetsCents, business.FieldBaselineCurrentLiabilitiesCents, business.FieldBaselineLongTermLiabilitiesCents, business.FieldBaselineCommonStockCents:
			values[i] = new(sql.NullInt64)
		case business.FieldCreatedBy, business.FieldUpdatedBy, business.FieldSource, business.FieldName, business.FieldCurrency:
			values[i] = new(sql.NullString)
		case business.FieldCreatedAt, business.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case business.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Business fields.
func (_m *Business) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case business.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case business.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case business.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case business.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case business.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				_m.UpdatedBy = value.String
			}
		case business.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = business.Source(value.String)
			}
		case business.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case business.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case business.FieldBaselineCurrentAssetsCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_current_assets_cents", values[i])
			} else if value.Valid {
				_m.BaselineCurrentAssetsCents = value.Int64
			}
		case business.FieldBaselineFixedAssetsCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_fixed_assets_cents", values[i])
			} else if value.Valid {
				_m.BaselineFixedAssetsCents = value.Int64
			}
		case business.FieldBaselineCurrentLiabilitiesCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_current_liabilities_cents", values[i])
			} else if value.Valid {
				_m.BaselineCurrentLiabilitiesCents = value.Int64
			}
		case business.FieldBaselineLongTermLiabilitiesCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_long_term_liabilities_cents", values[i])
			} else if value.Valid {
				_m.BaselineLongTermLiabilitiesCents = value.Int64
			}
		case business.FieldBaselineCommonStockCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_common_stock_cents", values[i])
			} else if value.Valid {
				_m.BaselineCommonStockCents = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Business.
// This includes values selected through modifiers, order, etc.
func (_m *Business) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTransactions queries the "transactions" edge of the Business entity.
func (_m *Business) QueryTransactions() *TransactionQuery {
	return NewBusinessClient(_m.config).QueryTransactions(_m)
}

// QueryStatements queries the "statements" edge of the Business entity.
func (_m *Business) QueryStatements() *StatementQuery {
	return NewBusinessClient(_m.config).QueryStatements(_m)
}

// QueryPosition queries the "position" edge of the Business entity.
func (_m *Business) QueryPosition() *FinancialPositionQuery {
	return NewBusinessClient(_m.config).QueryPosition(_m)
}

// Update returns a builder for updating this Business.
// Note that you need to call Business.Unwrap() before calling this method if this Business
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Business) Update() *BusinessUpdateOne {
	return NewBusinessClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Business entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Business) Unwrap() *Business {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Business is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Business) String() string {
	var builder strings.Builder
	builder.WriteString("Business(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(_m.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("baseline_current_assets_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaselineCurrentAssetsCents))
	builder.WriteString(", ")
	builder.WriteString("baseline_fixed_assets_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaselineFixedAssetsCents))
	builder.WriteString(", ")
	builder.WriteString("baseline_current_liabilities_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaselineCurrentLiabilitiesCents))
	builder.WriteString(", ")
	builder.WriteString("baseline_long_term_liabilities_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaselineLongTermLiabilitiesCents))
	builder.WriteString(", ")
	builder.WriteString("baseline_common_stock_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaselineCommonStockCents))
	builder.WriteByte(')')
	return builder.String()
}

// Businesses is a parsable slice of Business.
type Businesses []*Business
