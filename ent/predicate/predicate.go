// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Business is the predicate function for business builders.
type Business func(*sql.Selector)

// FinancialPosition is the predicate function for financialposition builders.
type FinancialPosition func(*sql.Selector)

// Statement is the predicate function for statement builders.
type Statement func(*sql.Selector)

// Transaction is the predicate function for transaction builders.
type Transaction func(*sql.Selector)
