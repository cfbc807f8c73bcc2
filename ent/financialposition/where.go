// Code generated by ent, DO NOT EDIT.

package financialposition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/axento/books/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldUpdatedBy, v))
}

// CurrentAssetsCents applies equality check predicate on the "current_assets_cents" field. It's identical to CurrentAssetsCentsEQ.
func CurrentAssetsCents(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldCurrentAssetsCents, v))
}

// FixedAssetsCents applies equality check predicate on the "fixed_assets_cents" field. It's identical to FixedAssetsCentsEQ.
func FixedAssetsCents(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldFixedAssetsCents, v))
}

// CurrentLiabilitiesCents applies equality check predicate on the "current_liabilities_cents" field. It's identical to CurrentLiabilitiesCentsEQ.
func CurrentLiabilitiesCents(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldCurrentLiabilitiesCents, v))
}

// LongTermLiabilitiesCents applies equality check predicate on the "long_term_liabilities_cents" field. It's identical to LongTermLiabilitiesCentsEQ.
func LongTermLiabilitiesCents(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldLongTermLiabilitiesCents, v))
}

// CommonStockCents applies equality check predicate on the "common_stock_cents" field. It's identical to CommonStockCentsEQ.
func CommonStockCents(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldCommonStockCents, v))
}

// RetainedEarningsCents applies equality check predicate on the "retained_earnings_cents" field. It's identical to RetainedEarningsCentsEQ.
func RetainedEarningsCents(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldRetainedEarningsCents, v))
}

// TotalAssetsCents applies equality check predicate on the "total_assets_cents" field. It's identical to TotalAssetsCentsEQ.
func TotalAssetsCents(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldTotalAssetsCents, v))
}

// TotalLiabilitiesCents applies equality check predicate on the "total_liabilities_cents" field. It's identical to TotalLiabilitiesCentsEQ.
func TotalLiabilitiesCents(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldTotalLiabilitiesCents, v))
}

// TotalEquityCents applies equality check predicate on the "total_equity_cents" field. It's identical to TotalEquityCentsEQ.
func TotalEquityCents(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldTotalEquityCents, v))
}

// NetWorthCents applies equality check predicate on the "net_worth_cents" field. It's identical to NetWorthCentsEQ.
func NetWorthCents(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldNetWorthCents, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldSource, vs...))
}

// CurrentAssetsCentsEQ applies the EQ predicate on the "current_assets_cents" field.
func CurrentAssetsCentsEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldCurrentAssetsCents, v))
}

// CurrentAssetsCentsNEQ applies the NEQ predicate on the "current_assets_cents" field.
func CurrentAssetsCentsNEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldCurrentAssetsCents, v))
}

// CurrentAssetsCentsIn applies the In predicate on the "current_assets_cents" field.
func CurrentAssetsCentsIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldCurrentAssetsCents, vs...))
}

// CurrentAssetsCentsNotIn applies the NotIn predicate on the "current_assets_cents" field.
func CurrentAssetsCentsNotIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldCurrentAssetsCents, vs...))
}

// CurrentAssetsCentsGT applies the GT predicate on the "current_assets_cents" field.
func CurrentAssetsCentsGT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldCurrentAssetsCents, v))
}

// CurrentAssetsCentsGTE applies the GTE predicate on the "current_assets_cents" field.
func CurrentAssetsCentsGTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldCurrentAssetsCents, v))
}

// CurrentAssetsCentsLT applies the LT predicate on the "current_assets_cents" field.
func CurrentAssetsCentsLT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldCurrentAssetsCents, v))
}

// CurrentAssetsCentsLTE applies the LTE predicate on the "current_assets_cents" field.
func CurrentAssetsCentsLTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldCurrentAssetsCents, v))
}

// FixedAssetsCentsEQ applies the EQ predicate on the "fixed_assets_cents" field.
func FixedAssetsCentsEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldFixedAssetsCents, v))
}

// FixedAssetsCentsNEQ applies the NEQ predicate on the "fixed_assets_cents" field.
func FixedAssetsCentsNEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldFixedAssetsCents, v))
}

// FixedAssetsCentsIn applies the In predicate on the "fixed_assets_cents" field.
func FixedAssetsCentsIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldFixedAssetsCents, vs...))
}

// FixedAssetsCentsNotIn applies the NotIn predicate on the "fixed_assets_cents" field.
func FixedAssetsCentsNotIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldFixedAssetsCents, vs...))
}

// FixedAssetsCentsGT applies the GT predicate on the "fixed_assets_cents" field.
func FixedAssetsCentsGT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldFixedAssetsCents, v))
}

// FixedAssetsCentsGTE applies the GTE predicate on the "fixed_assets_cents" field.
func FixedAssetsCentsGTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldFixedAssetsCents, v))
}

// FixedAssetsCentsLT applies the LT predicate on the "fixed_assets_cents" field.
func FixedAssetsCentsLT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldFixedAssetsCents, v))
}

// FixedAssetsCentsLTE applies the LTE predicate on the "fixed_assets_cents" field.
func FixedAssetsCentsLTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldFixedAssetsCents, v))
}

// CurrentLiabilitiesCentsEQ applies the EQ predicate on the "current_liabilities_cents" field.
func CurrentLiabilitiesCentsEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldCurrentLiabilitiesCents, v))
}

// CurrentLiabilitiesCentsNEQ applies the NEQ predicate on the "current_liabilities_cents" field.
func CurrentLiabilitiesCentsNEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldCurrentLiabilitiesCents, v))
}

// CurrentLiabilitiesCentsIn applies the In predicate on the "current_liabilities_cents" field.
func CurrentLiabilitiesCentsIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldCurrentLiabilitiesCents, vs...))
}

// CurrentLiabilitiesCentsNotIn applies the NotIn predicate on the "current_liabilities_cents" field.
func CurrentLiabilitiesCentsNotIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldCurrentLiabilitiesCents, vs...))
}

// CurrentLiabilitiesCentsGT applies the GT predicate on the "current_liabilities_cents" field.
func CurrentLiabilitiesCentsGT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldCurrentLiabilitiesCents, v))
}

// CurrentLiabilitiesCentsGTE applies the GTE predicate on the "current_liabilities_cents" field.
func CurrentLiabilitiesCentsGTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldCurrentLiabilitiesCents, v))
}

// CurrentLiabilitiesCentsLT applies the LT predicate on the "current_liabilities_cents" field.
func CurrentLiabilitiesCentsLT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldCurrentLiabilitiesCents, v))
}

// CurrentLiabilitiesCentsLTE applies the LTE predicate on the "current_liabilities_cents" field.
func CurrentLiabilitiesCentsLTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldCurrentLiabilitiesCents, v))
}

// LongTermLiabilitiesCentsEQ applies the EQ predicate on the "long_term_liabilities_cents" field.
func LongTermLiabilitiesCentsEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldLongTermLiabilitiesCents, v))
}

// LongTermLiabilitiesCentsNEQ applies the NEQ predicate on the "long_term_liabilities_cents" field.
func LongTermLiabilitiesCentsNEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldLongTermLiabilitiesCents, v))
}

// LongTermLiabilitiesCentsIn applies the In predicate on the "long_term_liabilities_cents" field.
func LongTermLiabilitiesCentsIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldLongTermLiabilitiesCents, vs...))
}

// LongTermLiabilitiesCentsNotIn applies the NotIn predicate on the "long_term_liabilities_cents" field.
func LongTermLiabilitiesCentsNotIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldLongTermLiabilitiesCents, vs...))
}

// LongTermLiabilitiesCentsGT applies the GT predicate on the "long_term_liabilities_cents" field.
func LongTermLiabilitiesCentsGT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldLongTermLiabilitiesCents, v))
}

// LongTermLiabilitiesCentsGTE applies the GTE predicate on the "long_term_liabilities_cents" field.
func LongTermLiabilitiesCentsGTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldLongTermLiabilitiesCents, v))
}

// LongTermLiabilitiesCentsLT applies the LT predicate on the "long_term_liabilities_cents" field.
func LongTermLiabilitiesCentsLT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldLongTermLiabilitiesCents, v))
}

// LongTermLiabilitiesCentsLTE applies the LTE predicate on the "long_term_liabilities_cents" field.
func LongTermLiabilitiesCentsLTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldLongTermLiabilitiesCents, v))
}

// CommonStockCentsEQ applies the EQ predicate on the "common_stock_cents" field.
func CommonStockCentsEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldCommonStockCents, v))
}

// CommonStockCentsNEQ applies the NEQ predicate on the "common_stock_cents" field.
func CommonStockCentsNEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldCommonStockCents, v))
}

// CommonStockCentsIn applies the In predicate on the "common_stock_cents" field.
func CommonStockCentsIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldCommonStockCents, vs...))
}

// CommonStockCentsNotIn applies the NotIn predicate on the "common_stock_cents" field.
func CommonStockCentsNotIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldCommonStockCents, vs...))
}

// CommonStockCentsGT applies the GT predicate on the "common_stock_cents" field.
func CommonStockCentsGT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldCommonStockCents, v))
}

// CommonStockCentsGTE applies the GTE predicate on the "common_stock_cents" field.
func CommonStockCentsGTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldCommonStockCents, v))
}

// CommonStockCentsLT applies the LT predicate on the "common_stock_cents" field.
func CommonStockCentsLT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldCommonStockCents, v))
}

// CommonStockCentsLTE applies the LTE predicate on the "common_stock_cents" field.
func CommonStockCentsLTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldCommonStockCents, v))
}

// RetainedEarningsCentsEQ applies the EQ predicate on the "retained_earnings_cents" field.
func RetainedEarningsCentsEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldRetainedEarningsCents, v))
}

// RetainedEarningsCentsNEQ applies the NEQ predicate on the "retained_earnings_cents" field.
func RetainedEarningsCentsNEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldRetainedEarningsCents, v))
}

// RetainedEarningsCentsIn applies the In predicate on the "retained_earnings_cents" field.
func RetainedEarningsCentsIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldRetainedEarningsCents, vs...))
}

// RetainedEarningsCentsNotIn applies the NotIn predicate on the "retained_earnings_cents" field.
func RetainedEarningsCentsNotIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldRetainedEarningsCents, vs...))
}

// RetainedEarningsCentsGT applies the GT predicate on the "retained_earnings_cents" field.
func RetainedEarningsCentsGT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldRetainedEarningsCents, v))
}

// RetainedEarningsCentsGTE applies the GTE predicate on the "retained_earnings_cents" field.
func RetainedEarningsCentsGTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldRetainedEarningsCents, v))
}

// RetainedEarningsCentsLT applies the LT predicate on the "retained_earnings_cents" field.
func RetainedEarningsCentsLT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldRetainedEarningsCents, v))
}

// RetainedEarningsCentsLTE applies the LTE predicate on the "retained_earnings_cents" field.
func RetainedEarningsCentsLTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldRetainedEarningsCents, v))
}

// TotalAssetsCentsEQ applies the EQ predicate on the "total_assets_cents" field.
func TotalAssetsCentsEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldTotalAssetsCents, v))
}

// TotalAssetsCentsNEQ applies the NEQ predicate on the "total_assets_cents" field.
func TotalAssetsCentsNEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldTotalAssetsCents, v))
}

// TotalAssetsCentsIn applies the In predicate on the "total_assets_cents" field.
func TotalAssetsCentsIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldTotalAssetsCents, vs...))
}

// TotalAssetsCentsNotIn applies the NotIn predicate on the "total_assets_cents" field.
func TotalAssetsCentsNotIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldTotalAssetsCents, vs...))
}

// TotalAssetsCentsGT applies the GT predicate on the "total_assets_cents" field.
func TotalAssetsCentsGT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldTotalAssetsCents, v))
}

// TotalAssetsCentsGTE applies the GTE predicate on the "total_assets_cents" field.
func TotalAssetsCentsGTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldTotalAssetsCents, v))
}

// TotalAssetsCentsLT applies the LT predicate on the "total_assets_cents" field.
func TotalAssetsCentsLT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldTotalAssetsCents, v))
}

// TotalAssetsCentsLTE applies the LTE predicate on the "total_assets_cents" field.
func TotalAssetsCentsLTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldTotalAssetsCents, v))
}

// TotalLiabilitiesCentsEQ applies the EQ predicate on the "total_liabilities_cents" field.
func TotalLiabilitiesCentsEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldTotalLiabilitiesCents, v))
}

// TotalLiabilitiesCentsNEQ applies the NEQ predicate on the "total_liabilities_cents" field.
func TotalLiabilitiesCentsNEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldTotalLiabilitiesCents, v))
}

// TotalLiabilitiesCentsIn applies the In predicate on the "total_liabilities_cents" field.
func TotalLiabilitiesCentsIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldTotalLiabilitiesCents, vs...))
}

// TotalLiabilitiesCentsNotIn applies the NotIn predicate on the "total_liabilities_cents" field.
func TotalLiabilitiesCentsNotIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldTotalLiabilitiesCents, vs...))
}

// TotalLiabilitiesCentsGT applies the GT predicate on the "total_liabilities_cents" field.
func TotalLiabilitiesCentsGT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldTotalLiabilitiesCents, v))
}

// TotalLiabilitiesCentsGTE applies the GTE predicate on the "total_liabilities_cents" field.
func TotalLiabilitiesCentsGTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldTotalLiabilitiesCents, v))
}

// TotalLiabilitiesCentsLT applies the LT predicate on the "total_liabilities_cents" field.
func TotalLiabilitiesCentsLT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldTotalLiabilitiesCents, v))
}

// TotalLiabilitiesCentsLTE applies the LTE predicate on the "total_liabilities_cents" field.
func TotalLiabilitiesCentsLTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldTotalLiabilitiesCents, v))
}

// TotalEquityCentsEQ applies the EQ predicate on the "total_equity_cents" field.
func TotalEquityCentsEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldTotalEquityCents, v))
}

// TotalEquityCentsNEQ applies the NEQ predicate on the "total_equity_cents" field.
func TotalEquityCentsNEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldTotalEquityCents, v))
}

// TotalEquityCentsIn applies the In predicate on the "total_equity_cents" field.
func TotalEquityCentsIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldTotalEquityCents, vs...))
}

// TotalEquityCentsNotIn applies the NotIn predicate on the "total_equity_cents" field.
func TotalEquityCentsNotIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldTotalEquityCents, vs...))
}

// TotalEquityCentsGT applies the GT predicate on the "total_equity_cents" field.
func TotalEquityCentsGT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldTotalEquityCents, v))
}

// TotalEquityCentsGTE applies the GTE predicate on the "total_equity_cents" field.
func TotalEquityCentsGTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldTotalEquityCents, v))
}

// TotalEquityCentsLT applies the LT predicate on the "total_equity_cents" field.
func TotalEquityCentsLT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldTotalEquityCents, v))
}

// TotalEquityCentsLTE applies the LTE predicate on the "total_equity_cents" field.
func TotalEquityCentsLTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldTotalEquityCents, v))
}

// NetWorthCentsEQ applies the EQ predicate on the "net_worth_cents" field.
func NetWorthCentsEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldEQ(FieldNetWorthCents, v))
}

// NetWorthCentsNEQ applies the NEQ predicate on the "net_worth_cents" field.
func NetWorthCentsNEQ(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNEQ(FieldNetWorthCents, v))
}

// NetWorthCentsIn applies the In predicate on the "net_worth_cents" field.
func NetWorthCentsIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldIn(FieldNetWorthCents, vs...))
}

// NetWorthCentsNotIn applies the NotIn predicate on the "net_worth_cents" field.
func NetWorthCentsNotIn(vs ...int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldNotIn(FieldNetWorthCents, vs...))
}

// NetWorthCentsGT applies the GT predicate on the "net_worth_cents" field.
func NetWorthCentsGT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGT(FieldNetWorthCents, v))
}

// NetWorthCentsGTE applies the GTE predicate on the "net_worth_cents" field.
func NetWorthCentsGTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldGTE(FieldNetWorthCents, v))
}

// NetWorthCentsLT applies the LT predicate on the "net_worth_cents" field.
func NetWorthCentsLT(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLT(FieldNetWorthCents, v))
}

// NetWorthCentsLTE applies the LTE predicate on the "net_worth_cents" field.
func NetWorthCentsLTE(v int64) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.FieldLTE(FieldNetWorthCents, v))
}

// HasBusiness applies the HasEdge predicate on the "business" edge.
func HasBusiness() predicate.FinancialPosition {
	return predicate.FinancialPosition(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, BusinessTable, BusinessColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBusinessWith applies the HasEdge predicate on the "business" edge with a given conditions (other predicates).
func HasBusinessWith(preds ...predicate.Business) predicate.FinancialPosition {
	return predicate.FinancialPosition(func(s *sql.Selector) {
		step := newBusinessStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FinancialPosition) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FinancialPosition) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FinancialPosition) predicate.FinancialPosition {
	return predicate.FinancialPosition(sql.NotPredicates(p))
}
