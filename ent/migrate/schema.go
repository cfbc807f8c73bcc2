// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BusinessesColumns holds the columns for the "businesses" table.
	BusinessesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString},
		{Name: "updated_by", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"user", "import", "system"}},
		{Name: "name", Type: field.TypeString},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "baseline_current_assets_cents", Type: field.TypeInt64, Default: 0},
		{Name: "baseline_fixed_assets_cents", Type: field.TypeInt64, Default: 0},
		{Name: "baseline_current_liabilities_cents", Type: field.TypeInt64, Default: 0},
		{Name: "baseline_long_term_liabilities_cents", Type: field.TypeInt64, Default: 0},
		{Name: "baseline_common_stock_cents", Type: field.TypeInt64, Default: 0},
	}
	// BusinessesTable holds the schema information for the "businesses" table.
	BusinessesTable = &schema.Table{
		Name:       "businesses",
		Columns:    BusinessesColumns,
		PrimaryKey: []*schema.Column{BusinessesColumns[0]},
	}
	// FinancialPositionsColumns holds the columns for the "financial_positions" table.
	FinancialPositionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString},
		{Name: "updated_by", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"user", "import", "system"}},
		{Name: "current_assets_cents", Type: field.TypeInt64, Default: 0},
		{Name: "fixed_assets_cents", Type: field.TypeInt64, Default: 0},
		{Name: "current_liabilities_cents", Type: field.TypeInt64, Default: 0},
		{Name: "long_term_liabilities_cents", Type: field.TypeInt64, Default: 0},
		{Name: "common_stock_cents", Type: field.TypeInt64, Default: 0},
		{Name: "retained_earnings_cents", Type: field.TypeInt64, Default: 0},
		{Name: "total_assets_cents", Type: field.TypeInt64, Default: 0},
		{Name: "total_liabilities_cents", Type: field.TypeInt64, Default: 0},
		{Name: "total_equity_cents", Type: field.TypeInt64, Default: 0},
		{Name: "net_worth_cents", Type: field.TypeInt64, Default: 0},
		{Name: "business_position", Type: field.TypeUUID, Unique: true},
	}
	// FinancialPositionsTable holds the schema information for the "financial_positions" table.
	FinancialPositionsTable = &schema.Table{
		Name:       "financial_positions",
		Columns:    FinancialPositionsColumns,
		PrimaryKey: []*schema.Column{FinancialPositionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "financial_positions_businesses_position",
				Columns:    []*schema.Column{FinancialPositionsColumns[16]},
				RefColumns: []*schema.Column{BusinessesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// StatementsColumns holds the columns for the "statements" table.
	StatementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString},
		{Name: "updated_by", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"user", "import", "system"}},
		{Name: "original_name", Type: field.TypeString},
		{Name: "stored_name", Type: field.TypeString},
		{Name: "checksum", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "balance_cents", Type: field.TypeInt64, Default: 0},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "skipped", Type: field.TypeInt, Default: 0},
		{Name: "business_statements", Type: field.TypeUUID},
	}
	// StatementsTable holds the schema information for the "statements" table.
	StatementsTable = &schema.Table{
		Name:       "statements",
		Columns:    StatementsColumns,
		PrimaryKey: []*schema.Column{StatementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "statements_businesses_statements",
				Columns:    []*schema.Column{StatementsColumns[14]},
				RefColumns: []*schema.Column{BusinessesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString},
		{Name: "updated_by", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"user", "import", "system"}},
		{Name: "date", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"income", "expense"}},
		{Name: "amount_cents", Type: field.TypeInt64},
		{Name: "category", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0.8},
		{Name: "business_transactions", Type: field.TypeUUID},
		{Name: "statement_transactions", Type: field.TypeUUID, Nullable: true},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transactions_businesses_transactions",
				Columns:    []*schema.Column{TransactionsColumns[12]},
				RefColumns: []*schema.Column{BusinessesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "transactions_statements_transactions",
				Columns:    []*schema.Column{TransactionsColumns[13]},
				RefColumns: []*schema.Column{StatementsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BusinessesTable,
		FinancialPositionsTable,
		StatementsTable,
		TransactionsTable,
	}
)

func init() {
	FinancialPositionsTable.ForeignKeys[0].RefTable = BusinessesTable
	StatementsTable.ForeignKeys[0].RefTable = BusinessesTable
	TransactionsTable.ForeignKeys[0].RefTable = BusinessesTable
	TransactionsTable.ForeignKeys[1].RefTable = StatementsTable
}
