// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/axento/books/ent/business"
	"github.com/axento/books/ent/financialposition"
	"github.com/google/uuid"
)

// FinancialPositionCreate is the builder for creating a FinancialPosition entity.
type FinancialPositionCreate struct {
	config
	mutation *FinancialPositionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FinancialPositionCreate) SetCreatedAt(v time.Time) *FinancialPositionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FinancialPositionCreate) SetNillableCreatedAt(v *time.Time) *FinancialPositionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FinancialPositionCreate) SetUpdatedAt(v time.Time) *FinancialPositionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FinancialPositionCreate) SetNillableUpdatedAt(v *time.Time) *FinancialPositionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *FinancialPositionCreate) SetCreatedBy(v string) *FinancialPositionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *FinancialPositionCreate) SetUpdatedBy(v string) *FinancialPositionCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *FinancialPositionCreate) SetSource(v financialposition.Source) *FinancialPositionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetCurrentAssetsCents sets the "current_assets_cents" field.
func (_c *FinancialPositionCreate) SetCurrentAssetsCents(v int64) *FinancialPositionCreate {
	_c.mutation.SetCurrentAssetsCents(v)
	return _c
}

// SetNillableCurrentAssetsCents sets the "current_assets_cents" field if the given value is not nil.
func (_c *FinancialPositionCreate) SetNillableCurrentAssetsCents(v *int64) *FinancialPositionCreate {
	if v != nil {
		_c.SetCurrentAssetsCents(*v)
	}
	return _c
}

// SetFixedAssetsCents sets the "fixed_assets_cents" field.
func (_c *FinancialPositionCreate) SetFixedAssetsCents(v int64) *FinancialPositionCreate {
	_c.mutation.SetFixedAssetsCents(v)
	return _c
}

// SetNillableFixedAssetsCents sets the "fixed_assets_cents" field if the given value is not nil.
func (_c *FinancialPositionCreate) SetNillableFixedAssetsCents(v *int64) *FinancialPositionCreate {
	if v != nil {
		_c.SetFixedAssetsCents(*v)
	}
	return _c
}

// SetCurrentLiabilitiesCents sets the "current_liabilities_cents" field.
func (_c *FinancialPositionCreate) SetCurrentLiabilitiesCents(v int64) *FinancialPositionCreate {
	_c.mutation.SetCurrentLiabilitiesCents(v)
	return _c
}

// SetNillableCurrentLiabilitiesCents sets the "current_liabilities_cents" field if the given value is not nil.
func (_c *FinancialPositionCreate) SetNillableCurrentLiabilitiesCents(v *int64) *FinancialPositionCreate {
	if v != nil {
		_c.SetCurrentLiabilitiesCents(*v)
	}
	return _c
}

// SetLongTermLiabilitiesCents sets the "long_term_liabilities_cents" field.
func (_c *FinancialPositionCreate) SetLongTermLiabilitiesCents(v int64) *FinancialPositionCreate {
	_c.mutation.SetLongTermLiabilitiesCents(v)
	return _c
}

// SetNillableLongTermLiabilitiesCents sets the "long_term_liabilities_cents" field if the given value is not nil.
func (_c *FinancialPositionCreate) SetNillableLongTermLiabilitiesCents(v *int64) *FinancialPositionCreate {
	if v != nil {
		_c.SetLongTermLiabilitiesCents(*v)
	}
	return _c
}

// SetCommonStockCents sets the "common_stock_cents" field.
func (_c *FinancialPositionCreate) SetCommonStockCents(v int64) *FinancialPositionCreate {
	_c.mutation.SetCommonStockCents(v)
	return _c
}

// SetNillableCommonStockCents sets the "common_stock_cents" field if the given value is not nil.
func (_c *FinancialPositionCreate) SetNillableCommonStockCents(v *int64) *FinancialPositionCreate {
	if v != nil {
		_c.SetCommonStockCents(*v)
	}
	return _c
}

// SetRetainedEarningsCents sets the "retained_earnings_cents" field.
func (_c *FinancialPositionCreate) SetRetainedEarningsCents(v int64) *FinancialPositionCreate {
	_c.mutation.SetRetainedEarningsCents(v)
	return _c
}

// SetNillableRetainedEarningsCents sets the "retained_earnings_cents" field if the given value is not nil.
func (_c *FinancialPositionCreate) SetNillableRetainedEarningsCents(v *int64) *FinancialPositionCreate {
	if v != nil {
		_c.SetRetainedEarningsCents(*v)
	}
	return _c
}

// SetTotalAssetsCents sets the "total_assets_cents" field.
func (_c *FinancialPositionCreate) SetTotalAssetsCents(v int64) *FinancialPositionCreate {
	_c.mutation.SetTotalAssetsCents(v)
	return _c
}

// SetNillableTotalAssetsCents sets the "total_assets_cents" field if the given value is not nil.
func (_c *FinancialPositionCreate) SetNillableTotalAssetsCents(v *int64) *FinancialPositionCreate {
	if v != nil {
		_c.SetTotalAssetsCents(*v)
	}
	return _c
}

// SetTotalLiabilitiesCents sets the "total_liabilities_cents" field.
func (_c *FinancialPositionCreate) SetTotalLiabilitiesCents(v int64) *FinancialPositionCreate {
	_c.mutation.SetTotalLiabilitiesCents(v)
	return _c
}

// SetNillableTotalLiabilitiesCents sets the "total_liabilities_cents" field if the given value is not nil.
func (_c *FinancialPositionCreate) SetNillableTotalLiabilitiesCents(v *int64) *FinancialPositionCreate {
	if v != nil {
		_c.SetTotalLiabilitiesCents(*v)
	}
	return _c
}

// SetTotalEquityCents sets the "total_equity_cents" field.
func (_c *FinancialPositionCreate) SetTotalEquityCents(v int64) *FinancialPositionCreate {
	_c.mutation.SetTotalEquityCents(v)
	return _c
}

// SetNillableTotalEquityCents sets the "total_equity_cents" field if the given value is not nil.
func (_c *FinancialPositionCreate) SetNillableTotalEquityCents(v *int64) *FinancialPositionCreate {
	if v != nil {
		_c.SetTotalEquityCents(*v)
	}
	return _c
}

// SetNetWorthCents sets the "net_worth_cents" field.
func (_c *FinancialPositionCreate) SetNetWorthCents(v int64) *FinancialPositionCreate {
	_c.mutation.SetNetWorthCents(v)
	return _c
}

// SetNillableNetWorthCents sets the "net_worth_cents" field if the given value is not nil.
func (_c *FinancialPositionCreate) SetNillableNetWorthCents(v *int64) *FinancialPositionCreate {
	if v != nil {
		_c.SetNetWorthCents(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FinancialPositionCreate) SetID(v uuid.UUID) *FinancialPositionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FinancialPositionCreate) SetNillableID(v *uuid.UUID) *FinancialPositionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBusinessID sets the "business" edge to the Business entity by ID.
func (_c *FinancialPositionCreate) SetBusinessID(id uuid.UUID) *FinancialPositionCreate {
	_c.mutation.SetBusinessID(id)
	return _c
}

// SetBusiness sets the "business" edge to the Business entity.
func (_c *FinancialPositionCreate) SetBusiness(v *Business) *FinancialPositionCreate {
	return _c.SetBusinessID(v.ID)
}

// Mutation returns the FinancialPositionMutation object of the builder.
func (_c *FinancialPositionCreate) Mutation() *FinancialPositionMutation {
	return _c.mutation
}

// Save creates the FinancialPosition in the database.
func (_c *FinancialPositionCreate) Save(ctx context.Context) (*FinancialPosition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FinancialPositionCreate) SaveX(ctx context.Context) *FinancialPosition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinancialPositionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinancialPositionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FinancialPositionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := financialposition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := financialposition.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.CurrentAssetsCents(); !ok {
		v := financialposition.DefaultCurrentAssetsCents
		_c.mutation.SetCurrentAssetsCents(v)
	}
	if _, ok := _c.mutation.FixedAssetsCents(); !ok {
		v := financialposition.DefaultFixedAssetsCents
		_c.mutation.SetFixedAssetsCents(v)
	}
	if _, ok := _c.mutation.CurrentLiabilitiesCents(); !ok {
		v := financialposition.DefaultCurrentLiabilitiesCents
		_c.mutation.SetCurrentLiabilitiesCents(v)
	}
	if _, ok := _c.mutation.LongTermLiabilitiesCents(); !ok {
		v := financialposition.DefaultLongTermLiabilitiesCents
		_c.mutation.SetLongTermLiabilitiesCents(v)
	}
	if _, ok := _c.mutation.CommonStockCents(); !ok {
		v := financialposition.DefaultCommonStockCents
		_c.mutation.SetCommonStockCents(v)
	}
	if _, ok := _c.mutation.RetainedEarningsCents(); !ok {
		v := financialposition.DefaultRetainedEarningsCents
		_c.mutation.SetRetainedEarningsCents(v)
	}
	if _, ok := _c.mutation.TotalAssetsCents(); !ok {
		v := financialposition.DefaultTotalAssetsCents
		_c.mutation.SetTotalAssetsCents(v)
	}
	if _, ok := _c.mutation.TotalLiabilitiesCents(); !ok {
		v := financialposition.DefaultTotalLiabilitiesCents
		_c.mutation.SetTotalLiabilitiesCents(v)
	}
	if _, ok := _c.mutation.TotalEquityCents(); !ok {
		v := financialposition.DefaultTotalEquityCents
		_c.mutation.SetTotalEquityCents(v)
	}
	if _, ok := _c.mutation.NetWorthCents(); !ok {
		v := financialposition.DefaultNetWorthCents
		_c.mutation.SetNetWorthCents(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := financialposition.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FinancialPositionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FinancialPosition.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FinancialPosition.updated_at"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "FinancialPosition.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := financialposition.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "FinancialPosition.created_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedBy(); !ok {
		return &ValidationError{Name: "updated_by", err: errors.New(`ent: missing required field "FinancialPosition.updated_by"`)}
	}
	if v, ok := _c.mutation.UpdatedBy(); ok {
		if err := financialposition.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "FinancialPosition.updated_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "FinancialPosition.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := financialposition.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FinancialPosition.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentAssetsCents(); !ok {
		return &ValidationError{Name: "current_assets_cents", err: errors.New(`ent: missing required field "FinancialPosition.current_assets_cents"`)}
	}
	if _, ok := _c.mutation.FixedAssetsCents(); !ok {
		return &ValidationError{Name: "fixed_assets_cents", err: errors.New(`ent: missing required field "FinancialPosition.fixed_assets_cents"`)}
	}
	if _, ok := _c.mutation.CurrentLiabilitiesCents(); !ok {
		return &ValidationError{Name: "current_liabilities_cents", err: errors.New(`ent: missing required field "FinancialPosition.current_liabilities_cents"`)}
	}
	if _, ok := _c.mutation.LongTermLiabilitiesCents(); !ok {
		return &ValidationError{Name: "long_term_liabilities_cents", err: errors.New(`ent: missing required field "FinancialPosition.long_term_liabilities_cents"`)}
	}
	if _, ok := _c.mutation.CommonStockCents(); !ok {
		return &ValidationError{Name: "common_stock_cents", err: errors.New(`ent: missing required field "FinancialPosition.common_stock_cents"`)}
	}
	if _, ok := _c.mutation.RetainedEarningsCents(); !ok {
		return &ValidationError{Name: "retained_earnings_cents", err: errors.New(`ent: missing required field "FinancialPosition.retained_earnings_cents"`)}
	}
	if _, ok := _c.mutation.TotalAssetsCents(); !ok {
		return &ValidationError{Name: "total_assets_cents", err: errors.New(`ent: missing required field "FinancialPosition.total_assets_cents"`)}
	}
	if _, ok := _c.mutation.TotalLiabilitiesCents(); !ok {
		return &ValidationError{Name: "total_liabilities_cents", err: errors.New(`ent: missing required field "FinancialPosition.total_liabilities_cents"`)}
	}
	if _, ok := _c.mutation.TotalEquityCents(); !ok {
		return &ValidationError{Name: "total_equity_cents", err: errors.New(`ent: missing required field "FinancialPosition.total_equity_cents"`)}
	}
	if _, ok := _c.mutation.NetWorthCents(); !ok {
		return &ValidationError{Name: "net_worth_cents", err: errors.New(`ent: missing required field "FinancialPosition.net_worth_cents"`)}
	}
	if len(_c.mutation.BusinessIDs()) == 0 {
		return &ValidationError{Name: "business", err: errors.New(`ent: missing required edge "FinancialPosition.business"`)}
	}
	return nil
}

func (_c *FinancialPositionCreate) sqlSave(ctx context.Context) (*FinancialPosition, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FinancialPositionCreate) createSpec() (*FinancialPosition, *sqlgraph.CreateSpec) {
	var (
		_node = &FinancialPosition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(financialposition.Table, sqlgraph.NewFieldSpec(financialposition.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(financialposition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(financialposition.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(financialposition.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(financialposition.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(financialposition.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CurrentAssetsCents(); ok {
		_spec.SetField(financialposition.FieldCurrentAssetsCents, field.TypeInt64, value)
		_node.CurrentAssetsCents = value
	}
	if value, ok := _c.mutation.FixedAssetsCents(); ok {
		_spec.SetField(financialposition.FieldFixedAssetsCents, field.TypeInt64, value)
		_node.FixedAssetsCents = value
	}
	if value, ok := _c.mutation.CurrentLiabilitiesCents(); ok {
		_spec.SetField(financialposition.FieldCurrentLiabilitiesCents, field.TypeInt64, value)
		_node.CurrentLiabilitiesCents = value
	}
	if value, ok := _c.mutation.LongTermLiabilitiesCents(); ok {
		_spec.SetField(financialposition.FieldLongTermLiabilitiesCents, field.TypeInt64, value)
		_node.LongTermLiabilitiesCents = value
	}
	if value, ok := _c.mutation.CommonStockCents(); ok {
		_spec.SetField(financialposition.FieldCommonStockCents, field.TypeInt64, value)
		_node.CommonStockCents = value
	}
	if value, ok := _c.mutation.RetainedEarningsCents(); ok {
		_spec.SetField(financialposition.FieldRetainedEarningsCents, field.TypeInt64, value)
		_node.RetainedEarningsCents = value
	}
	if value, ok := _c.mutation.TotalAssetsCents(); ok {
		_spec.SetField(financialposition.FieldTotalAssetsCents, field.TypeInt64, value)
		_node.TotalAssetsCents = value
	}
	if value, ok := _c.mutation.TotalLiabilitiesCents(); ok {
		_spec.SetField(financialposition.FieldTotalLiabilitiesCents, field.TypeInt64, value)
		_node.TotalLiabilitiesCents = value
	}
	if value, ok := _c.mutation.TotalEquityCents(); ok {
		_spec.SetField(financialposition.FieldTotalEquityCents, field.TypeInt64, value)
		_node.TotalEquityCents = value
	}
	if value, ok := _c.mutation.NetWorthCents(); ok {
		_spec.SetField(financialposition.FieldNetWorthCents, field.TypeInt64, value)
		_node.NetWorthCents = value
	}
	if nodes := _c.mutation.BusinessIDs(); len(nodes) > 0 {
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
		_node.business_position = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FinancialPositionCreateBulk is the builder for creating many FinancialPosition entities in bulk.
type FinancialPositionCreateBulk struct {
	config
	err      error
	builders []*FinancialPositionCreate
}

// Save creates the FinancialPosition entities in the database.
func (_c *FinancialPositionCreateBulk) Save(ctx context.Context) ([]*FinancialPosition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FinancialPosition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FinancialPositionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FinancialPositionCreateBulk) SaveX(ctx context.Context) []*FinancialPosition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinancialPositionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinancialPositionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
