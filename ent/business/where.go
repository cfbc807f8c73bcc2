// Code generated by ent, DO NOT EDIT.

package business

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/axento/books/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldUpdatedBy, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldName, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCurrency, v))
}

// BaselineCurrentAssetsCents applies equality check predicate on the "baseline_current_assets_cents" field. It's identical to BaselineCurrentAssetsCentsEQ.
func BaselineCurrentAssetsCents(v int64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldBaselineCurrentAssetsCents, v))
}

// BaselineFixedAssetsCents applies equality check predicate on the "baseline_fixed_assets_cents" field. It's identical to BaselineFixedAssetsCentsEQ.
func BaselineFixedAssetsCents(v int64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldBaselineFixedAssetsCents, v))
}

// BaselineCurrentLiabilitiesCents applies equality check predicate on the "baseline_current_liabilities_cents" field. It's identical to BaselineCurrentLiabilitiesCentsEQ.
func BaselineCurrentLiabilitiesCents(v int64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldBaselineCurrentLiabilitiesCents, v))
}

// BaselineLongTermLiabilitiesCents applies equality check predicate on the "baseline_long_term_liabilities_cents" field. It's identical to BaselineLongTermLiabilitiesCentsEQ.
func BaselineLongTermLiabilitiesCents(v int64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldBaselineLongTermLiabilitiesCents, v))
}

// BaselineCommonStockCents applies equality check predicate on the "baseline_common_stock_cents" field. It's identical to BaselineCommonStockCentsEQ.
func BaselineCommonStockCents(v int64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldBaselineCommonStockCents, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldSource, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldName, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldCurrency, v))
}

// BaselineCurrentAssetsCentsEQ applies the EQ predicate on the "baseline_current_assets_cents" field.
func BaselineCurrentAssetsCentsEQ(v int64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldBaselineCurrentAssetsCents, v))
}

// BaselineCurrentAssetsCentsNEQ applies the NEQ predicate on the "baseline_current_assets_cents" field.
func BaselineCurrentAssetsCentsNEQ(v int64) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldBaselineCurrentAssetsCents, v))
}

// BaselineCurrentAssetsCentsIn applies the In predicate on the "baseline_current_assets_cents" field.
func BaselineCurrentAssetsCentsIn(vs ...int64) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldBaselineCurrentAssetsCents, vs...))
}

// BaselineCurrentAssetsCentsNotIn applies the NotIn predicate on the "baseline_current_assets_cents" field.
func BaselineCurrentAssetsCentsNotIn(vs ...int64) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldBaselineCurrentAssetsCents, vs...))
}

// BaselineCurrentAssetsCentsGT applies the GT predicate on the "baseline_current_assets_cents" field.
func BaselineCurrentAssetsCentsGT(v int64) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldBaselineCurrentAssetsCents, v))
}

// BaselineCurrentAssetsCentsGTE applies the GTE predicate on the "baseline_current_assets_cents" field.
func BaselineCurrentAssetsCentsGTE(v int64) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldBaselineCurrentAssetsCents, v))
}

// BaselineCurrentAssetsCentsLT applies the LT predicate on the "baseline_current_assets_cents" field.
func BaselineCurrentAssetsCentsLT(v int64) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldBaselineCurrentAssetsCents, v))
}

// BaselineCurrentAssetsCentsLTE applies the LTE predicate on the "baseline_current_assets_cents" field.
func BaselineCurrentAssetsCentsLTE(v int64) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldBaselineCurrentAssetsCents, v))
}

// BaselineFixedAssetsCentsEQ applies the EQ predicate on the "baseline_fixed_assets_cents" field.
func BaselineFixedAssetsCentsEQ(v int64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldBaselineFixedAssetsCents, v))
}

// BaselineFixedAssetsCentsNEQ applies the NEQ predicate on the "baseline_fixed_assets_cents" field.
func BaselineFixedAssetsCentsNEQ(v int64) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldBaselineFixedAssetsCents, v))
}

// BaselineFixedAssetsCentsIn applies the In predicate on the "baseline_fixed_assets_cents" field.
func BaselineFixedAssetsCentsIn(vs ...int64) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldBaselineFixedAssetsCents, vs...))
}

// BaselineFixedAssetsCentsNotIn applies the NotIn predicate on the "baseline_fixed_assets_cents" field.
func BaselineFixedAssetsCentsNotIn(vs ...int64) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldBaselineFixedAssetsCents, vs...))
}

// BaselineFixedAssetsCentsGT applies the GT predicate on the "baseline_fixed_assets_cents" field.
func BaselineFixedAssetsCentsGT(v int64) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldBaselineFixedAssetsCents, v))
}

// BaselineFixedAssetsCentsGTE applies the GTE predicate on the "baseline_fixed_assets_cents" field.
func BaselineFixedAssetsCentsGTE(v int64) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldBaselineFixedAssetsCents, v))
}

// BaselineFixedAssetsCentsLT applies the LT predicate on the "baseline_fixed_assets_cents" field.
func BaselineFixedAssetsCentsLT(v int64) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldBaselineFixedAssetsCents, v))
}

// BaselineFixedAssetsCentsLTE applies the LTE predicate on the "baseline_fixed_assets_cents" field.
func BaselineFixedAssetsCentsLTE(v int64) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldBaselineFixedAssetsCents, v))
}

// BaselineCurrentLiabilitiesCentsEQ applies the EQ predicate on the "baseline_current_liabilities_cents" field.
func BaselineCurrentLiabilitiesCentsEQ(v int64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldBaselineCurrentLiabilitiesCents, v))
}

// BaselineCurrentLiabilitiesCentsNEQ applies the NEQ predicate on the "baseline_current_liabilities_cents" field.
func BaselineCurrentLiabilitiesCentsNEQ(v int64) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldBaselineCurrentLiabilitiesCents, v))
}

// BaselineCurrentLiabilitiesCentsIn applies the In predicate on the "baseline_current_liabilities_cents" field.
func BaselineCurrentLiabilitiesCentsIn(vs ...int64) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldBaselineCurrentLiabilitiesCents, vs...))
}

// BaselineCurrentLiabilitiesCentsNotIn applies the NotIn predicate on the "baseline_current_liabilities_cents" field.
func BaselineCurrentLiabilitiesCentsNotIn(vs ...int64) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldBaselineCurrentLiabilitiesCents, vs...))
}

// BaselineCurrentLiabilitiesCentsGT applies the GT predicate on the "baseline_current_liabilities_cents" field.
func BaselineCurrentLiabilitiesCentsGT(v int64) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldBaselineCurrentLiabilitiesCents, v))
}

// BaselineCurrentLiabilitiesCentsGTE applies the GTE predicate on the "baseline_current_liabilities_cents" field.
func BaselineCurrentLiabilitiesCentsGTE(v int64) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldBaselineCurrentLiabilitiesCents, v))
}

// BaselineCurrentLiabilitiesCentsLT applies the LT predicate on the "baseline_current_liabilities_cents" field.
func BaselineCurrentLiabilitiesCentsLT(v int64) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldBaselineCurrentLiabilitiesCents, v))
}

// BaselineCurrentLiabilitiesCentsLTE applies the LTE predicate on the "baseline_current_liabilities_cents" field.
func BaselineCurrentLiabilitiesCentsLTE(v int64) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldBaselineCurrentLiabilitiesCents, v))
}

// BaselineLongTermLiabilitiesCentsEQ applies the EQ predicate on the "baseline_long_term_liabilities_cents" field.
func BaselineLongTermLiabilitiesCentsEQ(v int64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldBaselineLongTermLiabilitiesCents, v))
}

// BaselineLongTermLiabilitiesCentsNEQ applies the NEQ predicate on the "baseline_long_term_liabilities_cents" field.
func BaselineLongTermLiabilitiesCentsNEQ(v int64) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldBaselineLongTermLiabilitiesCents, v))
}

// BaselineLongTermLiabilitiesCentsIn applies the In predicate on the "baseline_long_term_liabilities_cents" field.
func BaselineLongTermLiabilitiesCentsIn(vs ...int64) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldBaselineLongTermLiabilitiesCents, vs...))
}

// BaselineLongTermLiabilitiesCentsNotIn applies the NotIn predicate on the "baseline_long_term_liabilities_cents" field.
func BaselineLongTermLiabilitiesCentsNotIn(vs ...int64) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldBaselineLongTermLiabilitiesCents, vs...))
}

// BaselineLongTermLiabilitiesCentsGT applies the GT predicate on the "baseline_long_term_liabilities_cents" field.
func BaselineLongTermLiabilitiesCentsGT(v int64) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldBaselineLongTermLiabilitiesCents, v))
}

// BaselineLongTermLiabilitiesCentsGTE applies the GTE predicate on the "baseline_long_term_liabilities_cents" field.
func BaselineLongTermLiabilitiesCentsGTE(v int64) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldBaselineLongTermLiabilitiesCents, v))
}

// BaselineLongTermLiabilitiesCentsLT applies the LT predicate on the "baseline_long_term_liabilities_cents" field.
func BaselineLongTermLiabilitiesCentsLT(v int64) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldBaselineLongTermLiabilitiesCents, v))
}

// BaselineLongTermLiabilitiesCentsLTE applies the LTE predicate on the "baseline_long_term_liabilities_cents" field.
func BaselineLongTermLiabilitiesCentsLTE(v int64) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldBaselineLongTermLiabilitiesCents, v))
}

// BaselineCommonStockCentsEQ applies the EQ predicate on the "baseline_common_stock_cents" field.
func BaselineCommonStockCentsEQ(v int64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldBaselineCommonStockCents, v))
}

// BaselineCommonStockCentsNEQ applies the NEQ predicate on the "baseline_common_stock_cents" field.
func BaselineCommonStockCentsNEQ(v int64) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldBaselineCommonStockCents, v))
}

// BaselineCommonStockCentsIn applies the In predicate on the "baseline_common_stock_cents" field.
func BaselineCommonStockCentsIn(vs ...int64) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldBaselineCommonStockCents, vs...))
}

// BaselineCommonStockCentsNotIn applies the NotIn predicate on the "baseline_common_stock_cents" field.
func BaselineCommonStockCentsNotIn(vs ...int64) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldBaselineCommonStockCents, vs...))
}

// BaselineCommonStockCentsGT applies the GT predicate on the "baseline_common_stock_cents" field.
func BaselineCommonStockCentsGT(v int64) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldBaselineCommonStockCents, v))
}

// BaselineCommonStockCentsGTE applies the GTE predicate on the "baseline_common_stock_cents" field.
func BaselineCommonStockCentsGTE(v int64) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldBaselineCommonStockCents, v))
}

// BaselineCommonStockCentsLT applies the LT predicate on the "baseline_common_stock_cents" field.
func BaselineCommonStockCentsLT(v int64) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldBaselineCommonStockCents, v))
}

// BaselineCommonStockCentsLTE applies the LTE predicate on the "baseline_common_stock_cents" field.
func BaselineCommonStockCentsLTE(v int64) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldBaselineCommonStockCents, v))
}

// HasTransactions applies the HasEdge predicate on the "transactions" edge.
func HasTransactions() predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransactionsWith applies the HasEdge predicate on the "transactions" edge with a given conditions (other predicates).
func HasTransactionsWith(preds ...predicate.Transaction) predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := newTransactionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStatements applies the HasEdge predicate on the "statements" edge.
func HasStatements() predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StatementsTable, StatementsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStatementsWith applies the HasEdge predicate on the "statements" edge with a given conditions (other predicates).
func HasStatementsWith(preds ...predicate.Statement) predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := newStatementsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPosition applies the HasEdge predicate on the "position" edge.
func HasPosition() predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, PositionTable, PositionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPositionWith applies the HasEdge predicate on the "position" edge with a given conditions (other predicates).
func HasPositionWith(preds ...predicate.FinancialPosition) predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := newPositionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Business) predicate.Business {
	return predicate.Business(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Business) predicate.Business {
	return predicate.Business(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Business) predicate.Business {
	return predicate.Business(sql.NotPredicates(p))
}
