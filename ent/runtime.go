// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/axento/books/ent/business"
	"github.com/axento/books/ent/financialposition"
	"github.com/axento/books/ent/schema"
	"github.com/axento/books/ent/statement"
	"github.com/axento/books/ent/transaction"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	businessMixin := schema.Business{}.Mixin()
	businessMixinFields0 := businessMixin[0].Fields()
	_ = businessMixinFields0
	businessFields := schema.Business{}.Fields()
	_ = businessFields
	// businessDescCreatedAt is the schema descriptor for created_at field.
	businessDescCreatedAt := businessMixinFields0[0].Descriptor()
	// business.DefaultCreatedAt holds the default value on creation for the created_at field.
	business.DefaultCreatedAt = businessDescCreatedAt.Default.(func() time.Time)
	// businessDescUpdatedAt is the schema descriptor for updated_at field.
	businessDescUpdatedAt := businessMixinFields0[1].Descriptor()
	// business.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	business.DefaultUpdatedAt = businessDescUpdatedAt.Default.(func() time.Time)
	// business.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	business.UpdateDefaultUpdatedAt = businessDescUpdatedAt.UpdateDefault.(func() time.Time)
	// businessDescCreatedBy is the schema descriptor for created_by field.
	businessDescCreatedBy := businessMixinFields0[2].Descriptor()
	// business.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	business.CreatedByValidator = businessDescCreatedBy.Validators[0].(func(string) error)
	// businessDescUpdatedBy is the schema descriptor for updated_by field.
	businessDescUpdatedBy := businessMixinFields0[3].Descriptor()
	// business.UpdatedByValidator is a validator for the "updated_by" field. It is called by the builders before save.
	business.UpdatedByValidator = businessDescUpdatedBy.Validators[0].(func(string) error)
	// businessDescName is the schema descriptor for name field.
	businessDescName := businessFields[1].Descriptor()
	// business.NameValidator is a validator for the "name" field. It is called by the builders before save.
	business.NameValidator = businessDescName.Validators[0].(func(string) error)
	// businessDescCurrency is the schema descriptor for currency field.
	businessDescCurrency := businessFields[2].Descriptor()
	// business.DefaultCurrency holds the default value on creation for the currency field.
	business.DefaultCurrency = businessDescCurrency.Default.(string)
	// business.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	business.CurrencyValidator = businessDescCurrency.Validators[0].(func(string) error)
	// businessDescBaselineCurrentAssetsCents is the schema descriptor for baseline_current_assets_cents field.
	businessDescBaselineCurrentAssetsCents := businessFields[3].Descriptor()
	// business.DefaultBaselineCurrentAssetsCents holds the default value on creation for the baseline_current_assets_cents field.
	business.DefaultBaselineCurrentAssetsCents = businessDescBaselineCurrentAssetsCents.Default.(int64)
	// businessDescBaselineFixedAssetsCents is the schema descriptor for baseline_fixed_assets_cents field.
	businessDescBaselineFixedAssetsCents := businessFields[4].Descriptor()
	// business.DefaultBaselineFixedAssetsCents holds the default value on creation for the baseline_fixed_assets_cents field.
	business.DefaultBaselineFixedAssetsCents = businessDescBaselineFixedAssetsCents.Default.(int64)
	// businessDescBaselineCurrentLiabilitiesCents is the schema descriptor for baseline_current_liabilities_cents field.
	businessDescBaselineCurrentLiabilitiesCents := businessFields[5].Descriptor()
	// business.DefaultBaselineCurrentLiabilitiesCents holds the default value on creation for the baseline_current_liabilities_cents field.
	business.DefaultBaselineCurrentLiabilitiesCents = businessDescBaselineCurrentLiabilitiesCents.Default.(int64)
	// businessDescBaselineLongTermLiabilitiesCents is the schema descriptor for baseline_long_term_liabilities_cents field.
	businessDescBaselineLongTermLiabilitiesCents := businessFields[6].Descriptor()
	// business.DefaultBaselineLongTermLiabilitiesCents holds the default value on creation for the baseline_long_term_liabilities_cents field.
	business.DefaultBaselineLongTermLiabilitiesCents = businessDescBaselineLongTermLiabilitiesCents.Default.(int64)
	// businessDescBaselineCommonStockCents is the schema descriptor for baseline_common_stock_cents field.
	businessDescBaselineCommonStockCents := businessFields[7].Descriptor()
	// business.DefaultBaselineCommonStockCents holds the default value on creation for the baseline_common_stock_cents field.
	business.DefaultBaselineCommonStockCents = businessDescBaselineCommonStockCents.Default.(int64)
	// businessDescID is the schema descriptor for id field.
	businessDescID := businessFields[0].Descriptor()
	// business.DefaultID holds the default value on creation for the id field.
	business.DefaultID = businessDescID.Default.(func() uuid.UUID)
	financialpositionMixin := schema.FinancialPosition{}.Mixin()
	financialpositionMixinFields0 := financialpositionMixin[0].Fields()
	_ = financialpositionMixinFields0
	financialpositionFields := schema.FinancialPosition{}.Fields()
	_ = financialpositionFields
	// financialpositionDescCreatedAt is the schema descriptor for created_at field.
	financialpositionDescCreatedAt := financialpositionMixinFields0[0].Descriptor()
	// financialposition.DefaultCreatedAt holds the default value on creation for the created_at field.
	financialposition.DefaultCreatedAt = financialpositionDescCreatedAt.Default.(func() time.Time)
	// financialpositionDescUpdatedAt is the schema descriptor for updated_at field.
	financialpositionDescUpdatedAt := financialpositionMixinFields0[1].Descriptor()
	// financialposition.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	financialposition.DefaultUpdatedAt = financialpositionDescUpdatedAt.Default.(func() time.Time)
	// financialposition.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	financialposition.UpdateDefaultUpdatedAt = financialpositionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// financialpositionDescCreatedBy is the schema descriptor for created_by field.
	financialpositionDescCreatedBy := financialpositionMixinFields0[2].Descriptor()
	// financialposition.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	financialposition.CreatedByValidator = financialpositionDescCreatedBy.Validators[0].(func(string) error)
	// financialpositionDescUpdatedBy is the schema descriptor for updated_by field.
	financialpositionDescUpdatedBy := financialpositionMixinFields0[3].Descriptor()
	// financialposition.UpdatedByValidator is a validator for the "updated_by" field. It is called by the builders before save.
	financialposition.UpdatedByValidator = financialpositionDescUpdatedBy.Validators[0].(func(string) error)
	// financialpositionDescCurrentAssetsCents is the schema descriptor for current_assets_cents field.
	financialpositionDescCurrentAssetsCents := financialpositionFields[1].Descriptor()
	// financialposition.DefaultCurrentAssetsCents holds the default value on creation for the current_assets_cents field.
	financialposition.DefaultCurrentAssetsCents = financialpositionDescCurrentAssetsCents.Default.(int64)
	// financialpositionDescFixedAssetsCents is the schema descriptor for fixed_assets_cents field.
	financialpositionDescFixedAssetsCents := financialpositionFields[2].Descriptor()
	// financialposition.DefaultFixedAssetsCents holds the default value on creation for the fixed_assets_cents field.
	financialposition.DefaultFixedAssetsCents = financialpositionDescFixedAssetsCents.Default.(int64)
	// financialpositionDescCurrentLiabilitiesCents is the schema descriptor for current_liabilities_cents field.
	financialpositionDescCurrentLiabilitiesCents := financialpositionFields[3].Descriptor()
	// financialposition.DefaultCurrentLiabilitiesCents holds the default value on creation for the current_liabilities_cents field.
	financialposition.DefaultCurrentLiabilitiesCents = financialpositionDescCurrentLiabilitiesCents.Default.(int64)
	// financialpositionDescLongTermLiabilitiesCents is the schema descriptor for long_term_liabilities_cents field.
	financialpositionDescLongTermLiabilitiesCents := financialpositionFields[4].Descriptor()
	// financialposition.DefaultLongTermLiabilitiesCents holds the default value on creation for the long_term_liabilities_cents field.
	financialposition.DefaultLongTermLiabilitiesCents = financialpositionDescLongTermLiabilitiesCents.Default.(int64)
	// financialpositionDescCommonStockCents is the schema descriptor for common_stock_cents field.
	financialpositionDescCommonStockCents := financialpositionFields[5].Descriptor()
	// financialposition.DefaultCommonStockCents holds the default value on creation for the common_stock_cents field.
	financialposition.DefaultCommonStockCents = financialpositionDescCommonStockCents.Default.(int64)
	// financialpositionDescRetainedEarningsCents is the schema descriptor for retained_earnings_cents field.
	financialpositionDescRetainedEarningsCents := financialpositionFields[6].Descriptor()
	// financialposition.DefaultRetainedEarningsCents holds the default value on creation for the retained_earnings_cents field.
	financialposition.DefaultRetainedEarningsCents = financialpositionDescRetainedEarningsCents.Default.(int64)
	// financialpositionDescTotalAssetsCents is the schema descriptor for total_assets_cents field.
	financialpositionDescTotalAssetsCents := financialpositionFields[7].Descriptor()
	// financialposition.DefaultTotalAssetsCents holds the default value on creation for the total_assets_cents field.
	financialposition.DefaultTotalAssetsCents = financialpositionDescTotalAssetsCents.Default.(int64)
	// financialpositionDescTotalLiabilitiesCents is the schema descriptor for total_liabilities_cents field.
	financialpositionDescTotalLiabilitiesCents := financialpositionFields[8].Descriptor()
	// financialposition.DefaultTotalLiabilitiesCents holds the default value on creation for the total_liabilities_cents field.
	financialposition.DefaultTotalLiabilitiesCents = financialpositionDescTotalLiabilitiesCents.Default.(int64)
	// financialpositionDescTotalEquityCents is the schema descriptor for total_equity_cents field.
	financialpositionDescTotalEquityCents := financialpositionFields[9].Descriptor()
	// financialposition.DefaultTotalEquityCents holds the default value on creation for the total_equity_cents field.
	financialposition.DefaultTotalEquityCents = financialpositionDescTotalEquityCents.Default.(int64)
	// financialpositionDescNetWorthCents is the schema descriptor for net_worth_cents field.
	financialpositionDescNetWorthCents := financialpositionFields[10].Descriptor()
	// financialposition.DefaultNetWorthCents holds the default value on creation for the net_worth_cents field.
	financialposition.DefaultNetWorthCents = financialpositionDescNetWorthCents.Default.(int64)
	// financialpositionDescID is the schema descriptor for id field.
	financialpositionDescID := financialpositionFields[0].Descriptor()
	// financialposition.DefaultID holds the default value on creation for the id field.
	financialposition.DefaultID = financialpositionDescID.Default.(func() uuid.UUID)
	statementMixin := schema.Statement{}.Mixin()
	statementMixinFields0 := statementMixin[0].Fields()
	_ = statementMixinFields0
	statementFields := schema.Statement{}.Fields()
	_ = statementFields
	// statementDescCreatedAt is the schema descriptor for created_at field.
	statementDescCreatedAt := statementMixinFields0[0].Descriptor()
	// statement.DefaultCreatedAt holds the default value on creation for the created_at field.
	statement.DefaultCreatedAt = statementDescCreatedAt.Default.(func() time.Time)
	// statementDescUpdatedAt is the schema descriptor for updated_at field.
	statementDescUpdatedAt := statementMixinFields0[1].Descriptor()
	// statement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	statement.DefaultUpdatedAt = statementDescUpdatedAt.Default.(func() time.Time)
	// statement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	statement.UpdateDefaultUpdatedAt = statementDescUpdatedAt.UpdateDefault.(func() time.Time)
	// statementDescCreatedBy is the schema descriptor for created_by field.
	statementDescCreatedBy := statementMixinFields0[2].Descriptor()
	// statement.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	statement.CreatedByValidator = statementDescCreatedBy.Validators[0].(func(string) error)
	// statementDescUpdatedBy is the schema descriptor for updated_by field.
	statementDescUpdatedBy := statementMixinFields0[3].Descriptor()
	// statement.UpdatedByValidator is a validator for the "updated_by" field. It is called by the builders before save.
	statement.UpdatedByValidator = statementDescUpdatedBy.Validators[0].(func(string) error)
	// statementDescOriginalName is the schema descriptor for original_name field.
	statementDescOriginalName := statementFields[1].Descriptor()
	// statement.OriginalNameValidator is a validator for the "original_name" field. It is called by the builders before save.
	statement.OriginalNameValidator = statementDescOriginalName.Validators[0].(func(string) error)
	// statementDescStoredName is the schema descriptor for stored_name field.
	statementDescStoredName := statementFields[2].Descriptor()
	// statement.StoredNameValidator is a validator for the "stored_name" field. It is called by the builders before save.
	statement.StoredNameValidator = statementDescStoredName.Validators[0].(func(string) error)
	// statementDescChecksum is the schema descriptor for checksum field.
	statementDescChecksum := statementFields[3].Descriptor()
	// statement.ChecksumValidator is a validator for the "checksum" field. It is called by the builders before save.
	statement.ChecksumValidator = statementDescChecksum.Validators[0].(func(string) error)
	// statementDescBalanceCents is the schema descriptor for balance_cents field.
	statementDescBalanceCents := statementFields[6].Descriptor()
	// statement.DefaultBalanceCents holds the default value on creation for the balance_cents field.
	statement.DefaultBalanceCents = statementDescBalanceCents.Default.(int64)
	// statementDescCurrency is the schema descriptor for currency field.
	statementDescCurrency := statementFields[7].Descriptor()
	// statement.DefaultCurrency holds the default value on creation for the currency field.
	statement.DefaultCurrency = statementDescCurrency.Default.(string)
	// statement.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	statement.CurrencyValidator = statementDescCurrency.Validators[0].(func(string) error)
	// statementDescSkipped is the schema descriptor for skipped field.
	statementDescSkipped := statementFields[8].Descriptor()
	// statement.DefaultSkipped holds the default value on creation for the skipped field.
	statement.DefaultSkipped = statementDescSkipped.Default.(int)
	// statement.SkippedValidator is a validator for the "skipped" field. It is called by the builders before save.
	statement.SkippedValidator = statementDescSkipped.Validators[0].(func(int) error)
	// statementDescID is the schema descriptor for id field.
	statementDescID := statementFields[0].Descriptor()
	// statement.DefaultID holds the default value on creation for the id field.
	statement.DefaultID = statementDescID.Default.(func() uuid.UUID)
	transactionMixin := schema.Transaction{}.Mixin()
	transactionMixinFields0 := transactionMixin[0].Fields()
	_ = transactionMixinFields0
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionMixinFields0[0].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	// transactionDescUpdatedAt is the schema descriptor for updated_at field.
	transactionDescUpdatedAt := transactionMixinFields0[1].Descriptor()
	// transaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	transaction.DefaultUpdatedAt = transactionDescUpdatedAt.Default.(func() time.Time)
	// transaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	transaction.UpdateDefaultUpdatedAt = transactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// transactionDescCreatedBy is the schema descriptor for created_by field.
	transactionDescCreatedBy := transactionMixinFields0[2].Descriptor()
	// transaction.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	transaction.CreatedByValidator = transactionDescCreatedBy.Validators[0].(func(string) error)
	// transactionDescUpdatedBy is the schema descriptor for updated_by field.
	transactionDescUpdatedBy := transactionMixinFields0[3].Descriptor()
	// transaction.UpdatedByValidator is a validator for the "updated_by" field. It is called by the builders before save.
	transaction.UpdatedByValidator = transactionDescUpdatedBy.Validators[0].(func(string) error)
	// transactionDescAmountCents is the schema descriptor for amount_cents field.
	transactionDescAmountCents := transactionFields[3].Descriptor()
	// transaction.AmountCentsValidator is a validator for the "amount_cents" field. It is called by the builders before save.
	transaction.AmountCentsValidator = transactionDescAmountCents.Validators[0].(func(int64) error)
	// transactionDescCategory is the schema descriptor for category field.
	transactionDescCategory := transactionFields[4].Descriptor()
	// transaction.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	transaction.CategoryValidator = transactionDescCategory.Validators[0].(func(string) error)
	// transactionDescConfidence is the schema descriptor for confidence field.
	transactionDescConfidence := transactionFields[6].Descriptor()
	// transaction.DefaultConfidence holds the default value on creation for the confidence field.
	transaction.DefaultConfidence = transactionDescConfidence.Default.(float64)
	// transaction.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	transaction.ConfidenceValidator = func() func(float64) error {
		validators := transactionDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// transactionDescID is the schema descriptor for id field.
	transactionDescID := transactionFields[0].Descriptor()
	// transaction.DefaultID holds the default value on creation for the id field.
	transaction.DefaultID = transactionDescID.Default.(func() uuid.UUID)
}
