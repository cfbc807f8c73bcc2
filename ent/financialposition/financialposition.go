// Code generated by ent, DO NOT EDIT.

package financialposition

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the financialposition type in the database.
	Label = "financial_position"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldUpdatedBy holds the string denoting the updated_by field in the database.
	FieldUpdatedBy = "updated_by"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldCurrentAssetsCents holds the string denoting the current_assets_cents field in the database.
	FieldCurrentAssetsCents = "current_assets_cents"
	// FieldFixedAssetsCents holds the string denoting the fixed_assets_cents field in the database.
	FieldFixedAssetsCents = "fixed_assets_cents"
	// FieldCurrentLiabilitiesCents holds the string denoting the current_liabilities_cents field in the database.
	FieldCurrentLiabilitiesCents = "current_liabilities_cents"
	// FieldLongTermLiabilitiesCents holds the string denoting the long_term_liabilities_cents field in the database.
	FieldLongTermLiabilitiesCents = "long_term_liabilities_cents"
	// FieldCommonStockCents holds the string denoting the common_stock_cents field in the database.
	FieldCommonStockCents = "common_stock_cents"
	// FieldRetainedEarningsCents holds the string denoting the retained_earnings_cents field in the database.
	FieldRetainedEarningsCents = "retained_earnings_cents"
	// FieldTotalAssetsCents holds the string denoting the total_assets_cents field in the database.
	FieldTotalAssetsCents = "total_assets_cents"
	// FieldTotalLiabilitiesCents holds the string denoting the total_liabilities_cents field in the database.
	FieldTotalLiabilitiesCents = "total_liabilities_cents"
	// FieldTotalEquityCents holds the string denoting the total_equity_cents field in the database.
	FieldTotalEquityCents = "total_equity_cents"
	// FieldNetWorthCents holds the string denoting the net_worth_cents field in the database.
	FieldNetWorthCents = "net_worth_cents"
	// EdgeBusiness holds the string denoting the business edge name in mutations.
	EdgeBusiness = "business"
	// Table holds the table name of the financialposition in the database.
	Table = "financial_positions"
	// BusinessTable is the table that holds the business relation/edge.
	BusinessTable = "financial_positions"
	// BusinessInverseTable is the table name for the Business entity.
	// It exists in this package in order to avoid circular dependency with the "business" package.
	BusinessInverseTable = "businesses"
	// BusinessColumn is the table column denoting the business relation/edge.
	BusinessColumn = "business_position"
)

// Columns holds all SQL columns for financialposition fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCreatedBy,
	FieldUpdatedBy,
	FieldSource,
	FieldCurrentAssetsCents,
	FieldFixedAssetsCents,
	FieldCurrentLiabilitiesCents,
	FieldLongTermLiabilitiesCents,
	FieldCommonStockCents,
	FieldRetainedEarningsCents,
	FieldTotalAssetsCents,
	FieldTotalLiabilitiesCents,
	FieldTotalEquityCents,
	FieldNetWorthCents,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "financial_positions"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"business_position",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
	// UpdatedByValidator is a validator for the "updated_by" field. It is called by the builders before save.
	UpdatedByValidator func(string) error
	// DefaultCurrentAssetsCents holds the default value on creation for the "current_assets_cents" field.
	DefaultCurrentAssetsCents int64
	// DefaultFixedAssetsCents holds the default value on creation for the "fixed_assets_cents" field.
	DefaultFixedAssetsCents int64
	// DefaultCurrentLiabilitiesCents holds the default value on creation for the "current_liabilities_cents" field.
	DefaultCurrentLiabilitiesCents int64
	// DefaultLongTermLiabilitiesCents holds the default value on creation for the "long_term_liabilities_cents" field.
	DefaultLongTermLiabilitiesCents int64
	// DefaultCommonStockCents holds the default value on creation for the "common_stock_cents" field.
	DefaultCommonStockCents int64
	// DefaultRetainedEarningsCents holds the default value on creation for the "retained_earnings_cents" field.
	DefaultRetainedEarningsCents int64
	// DefaultTotalAssetsCents holds the default value on creation for the "total_assets_cents" field.
	DefaultTotalAssetsCents int64
	// DefaultTotalLiabilitiesCents holds the default value on creation for the "total_liabilities_cents" field.
	DefaultTotalLiabilitiesCents int64
	// DefaultTotalEquityCents holds the default value on creation for the "total_equity_cents" field.
	DefaultTotalEquityCents int64
	// DefaultNetWorthCents holds the default value on creation for the "net_worth_cents" field.
	DefaultNetWorthCents int64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Source defines the type for the "source" enum field.
type Source string

// Source values.
const (
	SourceUser   Source = "user"
	SourceImport Source = "import"
	SourceSystem Source = "system"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceUser, SourceImport, SourceSystem:
		return nil
	default:
		return fmt.Errorf("financialposition: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the FinancialPosition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByUpdatedBy orders the results by the updated_by field.
func ByUpdatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedBy, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByCurrentAssetsCents orders the results by the current_assets_cents field.
func ByCurrentAssetsCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentAssetsCents, opts...).ToFunc()
}

// ByFixedAssetsCents orders the results by the fixed_assets_cents field.
func ByFixedAssetsCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFixedAssetsCents, opts...).ToFunc()
}

// ByCurrentLiabilitiesCents orders the results by the current_liabilities_cents field.
func ByCurrentLiabilitiesCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentLiabilitiesCents, opts...).ToFunc()
}

// ByLongTermLiabilitiesCents orders the results by the long_term_liabilities_cents field.
func ByLongTermLiabilitiesCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongTermLiabilitiesCents, opts...).ToFunc()
}

// ByCommonStockCents orders the results by the common_stock_cents field.
func ByCommonStockCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommonStockCents, opts...).ToFunc()
}

// ByRetainedEarningsCents orders the results by the retained_earnings_cents field.
func ByRetainedEarningsCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetainedEarningsCents, opts...).ToFunc()
}

// ByTotalAssetsCents orders the results by the total_assets_cents field.
func ByTotalAssetsCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAssetsCents, opts...).ToFunc()
}

// ByTotalLiabilitiesCents orders the results by the total_liabilities_cents field.
func ByTotalLiabilitiesCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalLiabilitiesCents, opts...).ToFunc()
}

// ByTotalEquityCents orders the results by the total_equity_cents field.
func ByTotalEquityCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalEquityCents, opts...).ToFunc()
}

// ByNetWorthCents orders the results by the net_worth_cents field.
func ByNetWorthCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetWorthCents, opts...).ToFunc()
}

// ByBusinessField orders the results by business field.
func ByBusinessField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBusinessStep(), sql.OrderByField(field, opts...))
	}
}
func newBusinessStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BusinessInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, BusinessTable, BusinessColumn),
	)
}
