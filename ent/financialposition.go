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

// FinancialPosition is the model entity for the FinancialPosition schema.
type FinancialPosition struct {
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
	Source financialposition.Source `json:"source,omitempty"`
	// CurrentAssetsCents holds the value of the "current_assets_cents" field.
	CurrentAssetsCents int64 `json:"current_assets_cents,omitempty"`
	// FixedAssetsCents holds the value of the "fixed_assets_cents" field.
	FixedAssetsCents int64 `json:"fixed_assets_cents,omitempty"`
	// CurrentLiabilitiesCents holds the value of the "current_liabilities_cents" field.
	CurrentLiabilitiesCents int64 `json:"current_liabilities_cents,omitempty"`
	// LongTermLiabilitiesCents holds the value of the "long_term_liabilities_cents" field.
	LongTermLiabilitiesCents int64 `json:"long_term_liabilities_cents,omitempty"`
	// CommonStockCents holds the value of the "common_stock_cents" field.
	CommonStockCents int64 `json:"common_stock_cents,omitempty"`
	// RetainedEarningsCents holds the value of the "retained_earnings_cents" field.
	RetainedEarningsCents int64 `json:"retained_earnings_cents,omitempty"`
	// TotalAssetsCents holds the value of the "total_assets_cents" field.
	TotalAssetsCents int64 `json:"total_assets_cents,omitempty"`
	// TotalLiabilitiesCents holds the value of the "total_liabilities_cents" field.
	TotalLiabilitiesCents int64 `json:"total_liabilities_cents,omitempty"`
	// TotalEquityCents holds the value of the "total_equity_cents" field.
	TotalEquityCents int64 `json:"total_equity_cents,omitempty"`
	// NetWorthCents holds the value of the "net_worth_cents" field.
	NetWorthCents int64 `json:"net_worth_cents,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FinancialPositionQuery when eager-loading is set.
	Edges             FinancialPositionEdges `json:"edges"`
	business_position *uuid.UUID
	selectValues      sql.SelectValues
}

// FinancialPositionEdges holds the relations/edges for other nodes in the graph.
type FinancialPositionEdges struct {
	// Business holds the value of the business edge.
	Business *Business `json:"business,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BusinessOrErr returns the Business value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FinancialPositionEdges) BusinessOrErr() (*Business, error) {
	if e.Business != nil {
		return e.Business, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: business.Label}
	}
	return nil, &NotLoadedError{edge: "business"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FinancialPosition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case financialposition.FieldCurrentAssetsCents, financialposition.FieldFixedAssetsCents, financialposition.FieldCurrentLiabilitiesCents, financialposition.FieldLongTermLiabilitiesCents, financialposition.FieldCommonStockCents, financialposition.FieldRetainedEarningsCents, financialposition.FieldTotalAssetsCents, financialposition.FieldTotalLiabilitiesCents, financialposition.FieldTotalEquityCents, financialposition.FieldNetWorthCents:
			values[i] = new(sql.NullInt64)
		case financialposition.FieldCreatedBy, financialposition.FieldUpdatedBy, financialposition.FieldSource:
			values[i] = new(sql.NullString)
		case financialposition.FieldCreatedAt, financialposition.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case financialposition.FieldID:
			values[i] = new(uuid.UUID)
		case financialposition.ForeignKeys[0]: // business_position
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FinancialPosition fields.
func (_m *FinancialPosition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case financialposition.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case financialposition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case financialposition.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case financialposition.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case financialposition.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				_m.UpdatedBy = value.String
			}
		case financialposition.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = financialposition.Source(value.String)
			}
		case financialposition.FieldCurrentAssetsCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_assets_cents", values[i])
			} else if value.Valid {
				_m.CurrentAssetsCents = value.Int64
			}
		case financialposition.FieldFixedAssetsCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fixed_assets_cents", values[i])
			} else if value.Valid {
				_m.FixedAssetsCents = value.Int64
			}
		case financialposition.FieldCurrentLiabilitiesCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_liabilities_cents", values[i])
			} else if value.Valid {
				_m.CurrentLiabilitiesCents = value.Int64
			}
		case financialposition.FieldLongTermLiabilitiesCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field long_term_liabilities_cents", values[i])
			} else if value.Valid {
				_m.LongTermLiabilitiesCents = value.Int64
			}
		case financialposition.FieldCommonStockCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field common_stock_cents", values[i])
			} else if value.Valid {
				_m.CommonStockCents = value.Int64
			}
		case financialposition.FieldRetainedEarningsCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retained_earnings_cents", values[i])
			} else if value.Valid {
				_m.RetainedEarningsCents = value.Int64
			}
		case financialposition.FieldTotalAssetsCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_assets_cents", values[i])
			} else if value.Valid {
				_m.TotalAssetsCents = value.Int64
			}
		case financialposition.FieldTotalLiabilitiesCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_liabilities_cents", values[i])
			} else if value.Valid {
				_m.TotalLiabilitiesCents = value.Int64
			}
		case financialposition.FieldTotalEquityCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_equity_cents", values[i])
			} else if value.Valid {
				_m.TotalEquityCents = value.Int64
			}
		case financialposition.FieldNetWorthCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field net_worth_cents", values[i])
			} else if value.Valid {
				_m.NetWorthCents = value.Int64
			}
		case financialposition.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field business_position", values[i])
			} else if value.Valid {
				_m.business_position = new(uuid.UUID)
				*_m.business_position = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FinancialPosition.
// This includes values selected through modifiers, order, etc.
func (_m *FinancialPosition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBusiness queries the "business" edge of the FinancialPosition entity.
func (_m *FinancialPosition) QueryBusiness() *BusinessQuery {
	return NewFinancialPositionClient(_m.config).QueryBusiness(_m)
}

// Update returns a builder for updating this FinancialPosition.
// Note that you need to call FinancialPosition.Unwrap() before calling this method if this FinancialPosition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FinancialPosition) Update() *FinancialPositionUpdateOne {
	return NewFinancialPositionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FinancialPosition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FinancialPosition) Unwrap() *FinancialPosition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FinancialPosition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FinancialPosition) String() string {
	var builder strings.Builder
	builder.WriteString("FinancialPosition(")
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
	builder.WriteString("current_assets_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentAssetsCents))
	builder.WriteString(", ")
	builder.WriteString("fixed_assets_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.FixedAssetsCents))
	builder.WriteString(", ")
	builder.WriteString("current_liabilities_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentLiabilitiesCents))
	builder.WriteString(", ")
	builder.WriteString("long_term_liabilities_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.LongTermLiabilitiesCents))
	builder.WriteString(", ")
	builder.WriteString("common_stock_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommonStockCents))
	builder.WriteString(", ")
	builder.WriteString("retained_earnings_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetainedEarningsCents))
	builder.WriteString(", ")
	builder.WriteString("total_assets_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAssetsCents))
	builder.WriteString(", ")
	builder.WriteString("total_liabilities_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalLiabilitiesCents))
	builder.WriteString(", ")
	builder.WriteString("total_equity_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalEquityCents))
	builder.WriteString(", ")
	builder.WriteString("net_worth_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.NetWorthCents))
	builder.WriteByte(')')
	return builder.String()
}

// FinancialPositions is a parsable slice of FinancialPosition.
type FinancialPositions []*FinancialPosition
