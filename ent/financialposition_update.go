// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/axento/books/ent/business"
	"github.com/axento/books/ent/financialposition"
	"github.com/axento/books/ent/predicate"
	"github.com/google/uuid"
)

// FinancialPositionUpdate is the builder for updating FinancialPosition entities.
type FinancialPositionUpdate struct {
	config
	hooks    []Hook
	mutation *FinancialPositionMutation
}

// Where appends a list predicates to the FinancialPositionUpdate builder.
func (_u *FinancialPositionUpdate) Where(ps ...predicate.FinancialPosition) *FinancialPositionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FinancialPositionUpdate) SetUpdatedAt(v time.Time) *FinancialPositionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *FinancialPositionUpdate) SetCreatedBy(v string) *FinancialPositionUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *FinancialPositionUpdate) SetNillableCreatedBy(v *string) *FinancialPositionUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *FinancialPositionUpdate) SetUpdatedBy(v string) *FinancialPositionUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *FinancialPositionUpdate) SetNillableUpdatedBy(v *string) *FinancialPositionUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *FinancialPositionUpdate) SetSource(v financialposition.Source) *FinancialPositionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FinancialPositionUpdate) SetNillableSource(v *financialposition.Source) *FinancialPositionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCurrentAssetsCents sets the "current_assets_cents" field.
func (_u *FinancialPositionUpdate) SetCurrentAssetsCents(v int64) *FinancialPositionUpdate {
	_u.mutation.ResetCurrentAssetsCents()
	_u.mutation.SetCurrentAssetsCents(v)
	return _u
}

// SetNillableCurrentAssetsCents sets the "current_assets_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdate) SetNillableCurrentAssetsCents(v *int64) *FinancialPositionUpdate {
	if v != nil {
		_u.SetCurrentAssetsCents(*v)
	}
	return _u
}

// AddCurrentAssetsCents adds value to the "current_assets_cents" field.
func (_u *FinancialPositionUpdate) AddCurrentAssetsCents(v int64) *FinancialPositionUpdate {
	_u.mutation.AddCurrentAssetsCents(v)
	return _u
}

// SetFixedAssetsCents sets the "fixed_assets_cents" field.
func (_u *FinancialPositionUpdate) SetFixedAssetsCents(v int64) *FinancialPositionUpdate {
	_u.mutation.ResetFixedAssetsCents()
	_u.mutation.SetFixedAssetsCents(v)
	return _u
}

// SetNillableFixedAssetsCents sets the "fixed_assets_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdate) SetNillableFixedAssetsCents(v *int64) *FinancialPositionUpdate {
	if v != nil {
		_u.SetFixedAssetsCents(*v)
	}
	return _u
}

// AddFixedAssetsCents adds value to the "fixed_assets_cents" field.
func (_u *FinancialPositionUpdate) AddFixedAssetsCents(v int64) *FinancialPositionUpdate {
	_u.mutation.AddFixedAssetsCents(v)
	return _u
}

// SetCurrentLiabilitiesCents sets the "current_liabilities_cents" field.
func (_u *FinancialPositionUpdate) SetCurrentLiabilitiesCents(v int64) *FinancialPositionUpdate {
	_u.mutation.ResetCurrentLiabilitiesCents()
	_u.mutation.SetCurrentLiabilitiesCents(v)
	return _u
}

// SetNillableCurrentLiabilitiesCents sets the "current_liabilities_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdate) SetNillableCurrentLiabilitiesCents(v *int64) *FinancialPositionUpdate {
	if v != nil {
		_u.SetCurrentLiabilitiesCents(*v)
	}
	return _u
}

// AddCurrentLiabilitiesCents adds value to the "current_liabilities_cents" field.
func (_u *FinancialPositionUpdate) AddCurrentLiabilitiesCents(v int64) *FinancialPositionUpdate {
	_u.mutation.AddCurrentLiabilitiesCents(v)
	return _u
}

// SetLongTermLiabilitiesCents sets the "long_term_liabilities_cents" field.
func (_u *FinancialPositionUpdate) SetLongTermLiabilitiesCents(v int64) *FinancialPositionUpdate {
	_u.mutation.ResetLongTermLiabilitiesCents()
	_u.mutation.SetLongTermLiabilitiesCents(v)
	return _u
}

// SetNillableLongTermLiabilitiesCents sets the "long_term_liabilities_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdate) SetNillableLongTermLiabilitiesCents(v *int64) *FinancialPositionUpdate {
	if v != nil {
		_u.SetLongTermLiabilitiesCents(*v)
	}
	return _u
}

// AddLongTermLiabilitiesCents adds value to the "long_term_liabilities_cents" field.
func (_u *FinancialPositionUpdate) AddLongTermLiabilitiesCents(v int64) *FinancialPositionUpdate {
	_u.mutation.AddLongTermLiabilitiesCents(v)
	return _u
}

// SetCommonStockCents sets the "common_stock_cents" field.
func (_u *FinancialPositionUpdate) SetCommonStockCents(v int64) *FinancialPositionUpdate {
	_u.mutation.ResetCommonStockCents()
	_u.mutation.SetCommonStockCents(v)
	return _u
}

// SetNillableCommonStockCents sets the "common_stock_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdate) SetNillableCommonStockCents(v *int64) *FinancialPositionUpdate {
	if v != nil {
		_u.SetCommonStockCents(*v)
	}
	return _u
}

// AddCommonStockCents adds value to the "common_stock_cents" field.
func (_u *FinancialPositionUpdate) AddCommonStockCents(v int64) *FinancialPositionUpdate {
	_u.mutation.AddCommonStockCents(v)
	return _u
}

// SetRetainedEarningsCents sets the "retained_earnings_cents" field.
func (_u *FinancialPositionUpdate) SetRetainedEarningsCents(v int64) *FinancialPositionUpdate {
	_u.mutation.ResetRetainedEarningsCents()
	_u.mutation.SetRetainedEarningsCents(v)
	return _u
}

// SetNillableRetainedEarningsCents sets the "retained_earnings_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdate) SetNillableRetainedEarningsCents(v *int64) *FinancialPositionUpdate {
	if v != nil {
		_u.SetRetainedEarningsCents(*v)
	}
	return _u
}

// AddRetainedEarningsCents adds value to the "retained_earnings_cents" field.
func (_u *FinancialPositionUpdate) AddRetainedEarningsCents(v int64) *FinancialPositionUpdate {
	_u.mutation.AddRetainedEarningsCents(v)
	return _u
}

// SetTotalAssetsCents sets the "total_assets_cents" field.
func (_u *FinancialPositionUpdate) SetTotalAssetsCents(v int64) *FinancialPositionUpdate {
	_u.mutation.ResetTotalAssetsCents()
	_u.mutation.SetTotalAssetsCents(v)
	return _u
}

// SetNillableTotalAssetsCents sets the "total_assets_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdate) SetNillableTotalAssetsCents(v *int64) *FinancialPositionUpdate {
	if v != nil {
		_u.SetTotalAssetsCents(*v)
	}
	return _u
}

// AddTotalAssetsCents adds value to the "total_assets_cents" field.
func (_u *FinancialPositionUpdate) AddTotalAssetsCents(v int64) *FinancialPositionUpdate {
	_u.mutation.AddTotalAssetsCents(v)
	return _u
}

// SetTotalLiabilitiesCents sets the "total_liabilities_cents" field.
func (_u *FinancialPositionUpdate) SetTotalLiabilitiesCents(v int64) *FinancialPositionUpdate {
	_u.mutation.ResetTotalLiabilitiesCents()
	_u.mutation.SetTotalLiabilitiesCents(v)
	return _u
}

// SetNillableTotalLiabilitiesCents sets the "total_liabilities_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdate) SetNillableTotalLiabilitiesCents(v *int64) *FinancialPositionUpdate {
	if v != nil {
		_u.SetTotalLiabilitiesCents(*v)
	}
	return _u
}

// AddTotalLiabilitiesCents adds value to the "total_liabilities_cents" field.
func (_u *FinancialPositionUpdate) AddTotalLiabilitiesCents(v int64) *FinancialPositionUpdate {
	_u.mutation.AddTotalLiabilitiesCents(v)
	return _u
}

// SetTotalEquityCents sets the "total_equity_cents" field.
func (_u *FinancialPositionUpdate) SetTotalEquityCents(v int64) *FinancialPositionUpdate {
	_u.mutation.ResetTotalEquityCents()
	_u.mutation.SetTotalEquityCents(v)
	return _u
}

// SetNillableTotalEquityCents sets the "total_equity_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdate) SetNillableTotalEquityCents(v *int64) *FinancialPositionUpdate {
	if v != nil {
		_u.SetTotalEquityCents(*v)
	}
	return _u
}

// AddTotalEquityCents adds value to the "total_equity_cents" field.
func (_u *FinancialPositionUpdate) AddTotalEquityCents(v int64) *FinancialPositionUpdate {
	_u.mutation.AddTotalEquityCents(v)
	return _u
}

// SetNetWorthCents sets the "net_worth_cents" field.
func (_u *FinancialPositionUpdate) SetNetWorthCents(v int64) *FinancialPositionUpdate {
	_u.mutation.ResetNetWorthCents()
	_u.mutation.SetNetWorthCents(v)
	return _u
}

// SetNillableNetWorthCents sets the "net_worth_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdate) SetNillableNetWorthCents(v *int64) *FinancialPositionUpdate {
	if v != nil {
		_u.SetNetWorthCents(*v)
	}
	return _u
}

// AddNetWorthCents adds value to the "net_worth_cents" field.
func (_u *FinancialPositionUpdate) AddNetWorthCents(v int64) *FinancialPositionUpdate {
	_u.mutation.AddNetWorthCents(v)
	return _u
}

// SetBusinessID sets the "business" edge to the Business entity by ID.
func (_u *FinancialPositionUpdate) SetBusinessID(id uuid.UUID) *FinancialPositionUpdate {
	_u.mutation.SetBusinessID(id)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *FinancialPositionUpdate) SetBusiness(v *Business) *FinancialPositionUpdate {
	return _u.SetBusinessID(v.ID)
}

// Mutation returns the FinancialPositionMutation object of the builder.
func (_u *FinancialPositionUpdate) Mutation() *FinancialPositionMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *FinancialPositionUpdate) ClearBusiness() *FinancialPositionUpdate {
	_u.mutation.ClearBusiness()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FinancialPositionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinancialPositionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FinancialPositionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinancialPositionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FinancialPositionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := financialposition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FinancialPositionUpdate) check() error {
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := financialposition.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "FinancialPosition.created_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UpdatedBy(); ok {
		if err := financialposition.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "FinancialPosition.updated_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := financialposition.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FinancialPosition.source": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinancialPosition.business"`)
	}
	return nil
}

func (_u *FinancialPositionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(financialposition.Table, financialposition.Columns, sqlgraph.NewFieldSpec(financialposition.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(financialposition.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(financialposition.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(financialposition.FieldUpdatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(financialposition.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentAssetsCents(); ok {
		_spec.SetField(financialposition.FieldCurrentAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCurrentAssetsCents(); ok {
		_spec.AddField(financialposition.FieldCurrentAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FixedAssetsCents(); ok {
		_spec.SetField(financialposition.FieldFixedAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFixedAssetsCents(); ok {
		_spec.AddField(financialposition.FieldFixedAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CurrentLiabilitiesCents(); ok {
		_spec.SetField(financialposition.FieldCurrentLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCurrentLiabilitiesCents(); ok {
		_spec.AddField(financialposition.FieldCurrentLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LongTermLiabilitiesCents(); ok {
		_spec.SetField(financialposition.FieldLongTermLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLongTermLiabilitiesCents(); ok {
		_spec.AddField(financialposition.FieldLongTermLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CommonStockCents(); ok {
		_spec.SetField(financialposition.FieldCommonStockCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCommonStockCents(); ok {
		_spec.AddField(financialposition.FieldCommonStockCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RetainedEarningsCents(); ok {
		_spec.SetField(financialposition.FieldRetainedEarningsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRetainedEarningsCents(); ok {
		_spec.AddField(financialposition.FieldRetainedEarningsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalAssetsCents(); ok {
		_spec.SetField(financialposition.FieldTotalAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAssetsCents(); ok {
		_spec.AddField(financialposition.FieldTotalAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalLiabilitiesCents(); ok {
		_spec.SetField(financialposition.FieldTotalLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalLiabilitiesCents(); ok {
		_spec.AddField(financialposition.FieldTotalLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalEquityCents(); ok {
		_spec.SetField(financialposition.FieldTotalEquityCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalEquityCents(); ok {
		_spec.AddField(financialposition.FieldTotalEquityCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NetWorthCents(); ok {
		_spec.SetField(financialposition.FieldNetWorthCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNetWorthCents(); ok {
		_spec.AddField(financialposition.FieldNetWorthCents, field.TypeInt64, value)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   financialposition.BusinessTable,
			Columns: []string{financialposition.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   financialposition.BusinessTable,
			Columns: []string{financialposition.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{financialposition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FinancialPositionUpdateOne is the builder for updating a single FinancialPosition entity.
type FinancialPositionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FinancialPositionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FinancialPositionUpdateOne) SetUpdatedAt(v time.Time) *FinancialPositionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *FinancialPositionUpdateOne) SetCreatedBy(v string) *FinancialPositionUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *FinancialPositionUpdateOne) SetNillableCreatedBy(v *string) *FinancialPositionUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *FinancialPositionUpdateOne) SetUpdatedBy(v string) *FinancialPositionUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *FinancialPositionUpdateOne) SetNillableUpdatedBy(v *string) *FinancialPositionUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *FinancialPositionUpdateOne) SetSource(v financialposition.Source) *FinancialPositionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FinancialPositionUpdateOne) SetNillableSource(v *financialposition.Source) *FinancialPositionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCurrentAssetsCents sets the "current_assets_cents" field.
func (_u *FinancialPositionUpdateOne) SetCurrentAssetsCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.ResetCurrentAssetsCents()
	_u.mutation.SetCurrentAssetsCents(v)
	return _u
}

// SetNillableCurrentAssetsCents sets the "current_assets_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdateOne) SetNillableCurrentAssetsCents(v *int64) *FinancialPositionUpdateOne {
	if v != nil {
		_u.SetCurrentAssetsCents(*v)
	}
	return _u
}

// AddCurrentAssetsCents adds value to the "current_assets_cents" field.
func (_u *FinancialPositionUpdateOne) AddCurrentAssetsCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.AddCurrentAssetsCents(v)
	return _u
}

// SetFixedAssetsCents sets the "fixed_assets_cents" field.
func (_u *FinancialPositionUpdateOne) SetFixedAssetsCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.ResetFixedAssetsCents()
	_u.mutation.SetFixedAssetsCents(v)
	return _u
}

// SetNillableFixedAssetsCents sets the "fixed_assets_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdateOne) SetNillableFixedAssetsCents(v *int64) *FinancialPositionUpdateOne {
	if v != nil {
		_u.SetFixedAssetsCents(*v)
	}
	return _u
}

// AddFixedAssetsCents adds value to the "fixed_assets_cents" field.
func (_u *FinancialPositionUpdateOne) AddFixedAssetsCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.AddFixedAssetsCents(v)
	return _u
}

// SetCurrentLiabilitiesCents sets the "current_liabilities_cents" field.
func (_u *FinancialPositionUpdateOne) SetCurrentLiabilitiesCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.ResetCurrentLiabilitiesCents()
	_u.mutation.SetCurrentLiabilitiesCents(v)
	return _u
}

// SetNillableCurrentLiabilitiesCents sets the "current_liabilities_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdateOne) SetNillableCurrentLiabilitiesCents(v *int64) *FinancialPositionUpdateOne {
	if v != nil {
		_u.SetCurrentLiabilitiesCents(*v)
	}
	return _u
}

// AddCurrentLiabilitiesCents adds value to the "current_liabilities_cents" field.
func (_u *FinancialPositionUpdateOne) AddCurrentLiabilitiesCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.AddCurrentLiabilitiesCents(v)
	return _u
}

// SetLongTermLiabilitiesCents sets the "long_term_liabilities_cents" field.
func (_u *FinancialPositionUpdateOne) SetLongTermLiabilitiesCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.ResetLongTermLiabilitiesCents()
	_u.mutation.SetLongTermLiabilitiesCents(v)
	return _u
}

// SetNillableLongTermLiabilitiesCents sets the "long_term_liabilities_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdateOne) SetNillableLongTermLiabilitiesCents(v *int64) *FinancialPositionUpdateOne {
	if v != nil {
		_u.SetLongTermLiabilitiesCents(*v)
	}
	return _u
}

// AddLongTermLiabilitiesCents adds value to the "long_term_liabilities_cents" field.
func (_u *FinancialPositionUpdateOne) AddLongTermLiabilitiesCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.AddLongTermLiabilitiesCents(v)
	return _u
}

// SetCommonStockCents sets the "common_stock_cents" field.
func (_u *FinancialPositionUpdateOne) SetCommonStockCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.ResetCommonStockCents()
	_u.mutation.SetCommonStockCents(v)
	return _u
}

// SetNillableCommonStockCents sets the "common_stock_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdateOne) SetNillableCommonStockCents(v *int64) *FinancialPositionUpdateOne {
	if v != nil {
		_u.SetCommonStockCents(*v)
	}
	return _u
}

// AddCommonStockCents adds value to the "common_stock_cents" field.
func (_u *FinancialPositionUpdateOne) AddCommonStockCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.AddCommonStockCents(v)
	return _u
}

// SetRetainedEarningsCents sets the "retained_earnings_cents" field.
func (_u *FinancialPositionUpdateOne) SetRetainedEarningsCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.ResetRetainedEarningsCents()
	_u.mutation.SetRetainedEarningsCents(v)
	return _u
}

// SetNillableRetainedEarningsCents sets the "retained_earnings_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdateOne) SetNillableRetainedEarningsCents(v *int64) *FinancialPositionUpdateOne {
	if v != nil {
		_u.SetRetainedEarningsCents(*v)
	}
	return _u
}

// AddRetainedEarningsCents adds value to the "retained_earnings_cents" field.
func (_u *FinancialPositionUpdateOne) AddRetainedEarningsCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.AddRetainedEarningsCents(v)
	return _u
}

// SetTotalAssetsCents sets the "total_assets_cents" field.
func (_u *FinancialPositionUpdateOne) SetTotalAssetsCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.ResetTotalAssetsCents()
	_u.mutation.SetTotalAssetsCents(v)
	return _u
}

// SetNillableTotalAssetsCents sets the "total_assets_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdateOne) SetNillableTotalAssetsCents(v *int64) *FinancialPositionUpdateOne {
	if v != nil {
		_u.SetTotalAssetsCents(*v)
	}
	return _u
}

// AddTotalAssetsCents adds value to the "total_assets_cents" field.
func (_u *FinancialPositionUpdateOne) AddTotalAssetsCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.AddTotalAssetsCents(v)
	return _u
}

// SetTotalLiabilitiesCents sets the "total_liabilities_cents" field.
func (_u *FinancialPositionUpdateOne) SetTotalLiabilitiesCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.ResetTotalLiabilitiesCents()
	_u.mutation.SetTotalLiabilitiesCents(v)
	return _u
}

// SetNillableTotalLiabilitiesCents sets the "total_liabilities_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdateOne) SetNillableTotalLiabilitiesCents(v *int64) *FinancialPositionUpdateOne {
	if v != nil {
		_u.SetTotalLiabilitiesCents(*v)
	}
	return _u
}

// AddTotalLiabilitiesCents adds value to the "total_liabilities_cents" field.
func (_u *FinancialPositionUpdateOne) AddTotalLiabilitiesCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.AddTotalLiabilitiesCents(v)
	return _u
}

// SetTotalEquityCents sets the "total_equity_cents" field.
func (_u *FinancialPositionUpdateOne) SetTotalEquityCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.ResetTotalEquityCents()
	_u.mutation.SetTotalEquityCents(v)
	return _u
}

// SetNillableTotalEquityCents sets the "total_equity_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdateOne) SetNillableTotalEquityCents(v *int64) *FinancialPositionUpdateOne {
	if v != nil {
		_u.SetTotalEquityCents(*v)
	}
	return _u
}

// AddTotalEquityCents adds value to the "total_equity_cents" field.
func (_u *FinancialPositionUpdateOne) AddTotalEquityCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.AddTotalEquityCents(v)
	return _u
}

// SetNetWorthCents sets the "net_worth_cents" field.
func (_u *FinancialPositionUpdateOne) SetNetWorthCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.ResetNetWorthCents()
	_u.mutation.SetNetWorthCents(v)
	return _u
}

// SetNillableNetWorthCents sets the "net_worth_cents" field if the given value is not nil.
func (_u *FinancialPositionUpdateOne) SetNillableNetWorthCents(v *int64) *FinancialPositionUpdateOne {
	if v != nil {
		_u.SetNetWorthCents(*v)
	}
	return _u
}

// AddNetWorthCents adds value to the "net_worth_cents" field.
func (_u *FinancialPositionUpdateOne) AddNetWorthCents(v int64) *FinancialPositionUpdateOne {
	_u.mutation.AddNetWorthCents(v)
	return _u
}

// SetBusinessID sets the "business" edge to the Business entity by ID.
func (_u *FinancialPositionUpdateOne) SetBusinessID(id uuid.UUID) *FinancialPositionUpdateOne {
	_u.mutation.SetBusinessID(id)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *FinancialPositionUpdateOne) SetBusiness(v *Business) *FinancialPositionUpdateOne {
	return _u.SetBusinessID(v.ID)
}

// Mutation returns the FinancialPositionMutation object of the builder.
func (_u *FinancialPositionUpdateOne) Mutation() *FinancialPositionMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *FinancialPositionUpdateOne) ClearBusiness() *FinancialPositionUpdateOne {
	_u.mutation.ClearBusiness()
	return _u
}

// Where appends a list predicates to the FinancialPositionUpdate builder.
func (_u *FinancialPositionUpdateOne) Where(ps ...predicate.FinancialPosition) *FinancialPositionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FinancialPositionUpdateOne) Select(field string, fields ...string) *FinancialPositionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FinancialPosition entity.
func (_u *FinancialPositionUpdateOne) Save(ctx context.Context) (*FinancialPosition, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinancialPositionUpdateOne) SaveX(ctx context.Context) *FinancialPosition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FinancialPositionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinancialPositionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FinancialPositionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := financialposition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FinancialPositionUpdateOne) check() error {
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := financialposition.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "FinancialPosition.created_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UpdatedBy(); ok {
		if err := financialposition.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "FinancialPosition.updated_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := financialposition.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FinancialPosition.source": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinancialPosition.business"`)
	}
	return nil
}

func (_u *FinancialPositionUpdateOne) sqlSave(ctx context.Context) (_node *FinancialPosition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(financialposition.Table, financialposition.Columns, sqlgraph.NewFieldSpec(financialposition.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FinancialPosition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, financialposition.FieldID)
		for _, f := range fields {
			if !financialposition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != financialposition.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(financialposition.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(financialposition.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(financialposition.FieldUpdatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(financialposition.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentAssetsCents(); ok {
		_spec.SetField(financialposition.FieldCurrentAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCurrentAssetsCents(); ok {
		_spec.AddField(financialposition.FieldCurrentAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FixedAssetsCents(); ok {
		_spec.SetField(financialposition.FieldFixedAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFixedAssetsCents(); ok {
		_spec.AddField(financialposition.FieldFixedAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CurrentLiabilitiesCents(); ok {
		_spec.SetField(financialposition.FieldCurrentLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCurrentLiabilitiesCents(); ok {
		_spec.AddField(financialposition.FieldCurrentLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LongTermLiabilitiesCents(); ok {
		_spec.SetField(financialposition.FieldLongTermLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLongTermLiabilitiesCents(); ok {
		_spec.AddField(financialposition.FieldLongTermLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CommonStockCents(); ok {
		_spec.SetField(financialposition.FieldCommonStockCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCommonStockCents(); ok {
		_spec.AddField(financialposition.FieldCommonStockCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RetainedEarningsCents(); ok {
		_spec.SetField(financialposition.FieldRetainedEarningsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRetainedEarningsCents(); ok {
		_spec.AddField(financialposition.FieldRetainedEarningsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalAssetsCents(); ok {
		_spec.SetField(financialposition.FieldTotalAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAssetsCents(); ok {
		_spec.AddField(financialposition.FieldTotalAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalLiabilitiesCents(); ok {
		_spec.SetField(financialposition.FieldTotalLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalLiabilitiesCents(); ok {
		_spec.AddField(financialposition.FieldTotalLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalEquityCents(); ok {
		_spec.SetField(financialposition.FieldTotalEquityCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalEquityCents(); ok {
		_spec.AddField(financialposition.FieldTotalEquityCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NetWorthCents(); ok {
		_spec.SetField(financialposition.FieldNetWorthCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNetWorthCents(); ok {
		_spec.AddField(financialposition.FieldNetWorthCents, field.TypeInt64, value)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   financialposition.BusinessTable,
			Columns: []string{financialposition.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   financialposition.BusinessTable,
			Columns: []string{financialposition.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FinancialPosition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{financialposition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
