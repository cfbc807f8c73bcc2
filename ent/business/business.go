// Code generated by ent, DO NOT EDIT.

package business

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the business type in the database.
	Label = "business"
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
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldBaselineCurrentAssetsCents holds the string denoting the baseline_current_assets_cents field in the database.
	FieldBaselineCurrentAssetsCents = "baseline_current_assets_cents"
	// FieldBaselineFixedAssetsCents holds the string denoting the baseline_fixed_assets_cents field in the database.
	FieldBaselineFixedAssetsCents = "baseline_fixed_assets_cents"
	// FieldBaselineCurrentLiabilitiesCents holds the string denoting the baseline_current_liabilities_cents field in the database.
	FieldBaselineCurrentLiabilitiesCents = "baseline_current_liabilities_cents"
	// FieldBaselineLongTermLiabilitiesCents holds the string denoting the baseline_long_term_liabilities_cents field in the database.
	FieldBaselineLongTermLiabilitiesCents = "baseline_long_term_liabilities_cents"
	// FieldBaselineCommonStockCents holds the string denoting the baseline_common_stock_cents field in the database.
	FieldBaselineCommonStockCents = "baseline_common_stock_cents"
	// EdgeTransactions holds the string denoting the transactions edge name in mutations.
	EdgeTransactions = "transactions"
	// EdgeStatements holds the string denoting the statements edge name in mutations.
	EdgeStatements = "statements"
	// EdgePosition holds the string denoting the position edge name in mutations.
	EdgePosition = "position"
	// Table holds the table name of the business in the database.
	Table = "businesses"
	// TransactionsTable is the table that holds the transactions relation/edge.
	TransactionsTable = "transactions"
	// TransactionsInverseTable is the table name for the Transaction entity.
	// It exists in this package in order to avoid circular dependency with the "transaction" package.
	TransactionsInverseTable = "transactions"
	// TransactionsColumn is the table column denoting the transactions relation/edge.
	TransactionsColumn = "business_transactions"
	// StatementsTable is the table that holds the statements relation/edge.
	StatementsTable = "statements"
	// StatementsInverseTable is the table name for the Statement entity.
	// It exists in this package in order to avoid circular dependency with the "statement" package.
	StatementsInverseTable = "statements"
	// StatementsColumn is the table column denoting the statements relation/edge.
	StatementsColumn = "business_statements"
	// PositionTable is the table that holds the position relation/edge.
	PositionTable = "financial_positions"
	// PositionInverseTable is the table name for the FinancialPosition entity.
	// It exists in this package in order to avoid circular dependency with the "financialposition" package.
	PositionInverseTable = "financial_positions"
	// PositionColumn is the table column denoting the position relation/edge.
	PositionColumn = "business_position"
)

// Columns holds all SQL columns for business fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCreatedBy,
	FieldUpdatedBy,
	FieldSource,
	FieldName,
	FieldCurrency,
	FieldBaselineCurrentAssetsCents,
	FieldBaselineFixedAssetsCents,
	FieldBaselineCurrentLiabilitiesCents,
	FieldBaselineLongTermLiabilitiesCents,
	FieldBaselineCommonStockCents,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultBaselineCurrentAssetsCents holds the default value on creation for the "baseline_current_assets_cents" field.
	DefaultBaselineCurrentAssetsCents int64
	// DefaultBaselineFixedAssetsCents holds the default value on creation for the "baseline_fixed_assets_cents" field.
	DefaultBaselineFixedAssetsCents int64
	// DefaultBaselineCurrentLiabilitiesCents holds the default value on creation for the "baseline_current_liabilities_cents" field.
	DefaultBaselineCurrentLiabilitiesCents int64
	// DefaultBaselineLongTermLiabilitiesCents holds the default value on creation for the "baseline_long_term_liabilities_cents" field.
	DefaultBaselineLongTermLiabilitiesCents int64
	// DefaultBaselineCommonStockCents holds the default value on creation for the "baseline_common_stock_cents" field.
	DefaultBaselineCommonStockCents int64
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
		return fmt.Errorf("business: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the Business queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByBaselineCurrentAssetsCents orders the results by the baseline_current_assets_cents field.
func ByBaselineCurrentAssetsCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineCurrentAssetsCents, opts...).ToFunc()
}

// ByBaselineFixedAssetsCents orders the results by the baseline_fixed_assets_cents field.
func ByBaselineFixedAssetsCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineFixedAssetsCents, opts...).ToFunc()
}

// ByBaselineCurrentLiabilitiesCents orders the results by the baseline_current_liabilities_cents field.
func ByBaselineCurrentLiabilitiesCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineCurrentLiabilitiesCents, opts...).ToFunc()
}

// ByBaselineLongTermLiabilitiesCents orders the results by the baseline_long_term_liabilities_cents field.
func ByBaselineLongTermLiabilitiesCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineLongTermLiabilitiesCents, opts...).ToFunc()
}

// ByBaselineCommonStockCents orders the results by the baseline_common_stock_cents field.
func ByBaselineCommonStockCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineCommonStockCents, opts...).ToFunc()
}

// ByTransactionsCount orders the results by transactions count.
func ByTransactionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTransactionsStep(), opts...)
	}
}

// ByTransactions orders the results by transactions terms.
func ByTransactions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTransactionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStatementsCount orders the results by statements count.
func ByStatementsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStatementsStep(), opts...)
	}
}

// ByStatements orders the results by statements terms.
func ByStatements(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStatementsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPositionField orders the results by position field.
func ByPositionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPositionStep(), sql.OrderByField(field, opts...))
	}
}
func newTransactionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TransactionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
	)
}
func newStatementsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StatementsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StatementsTable, StatementsColumn),
	)
}
func newPositionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PositionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, PositionTable, PositionColumn),
	)
}
