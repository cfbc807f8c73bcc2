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
	"github.com/axento/books/ent/statement"
	"github.com/axento/books/ent/transaction"
	"github.com/google/uuid"
)

// BusinessCreate is the builder for creating a Business entity.
type BusinessCreate struct {
	config
	mutation *BusinessMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *BusinessCreate) SetCreatedAt(v time.Time) *BusinessCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableCreatedAt(v *time.Time) *BusinessCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BusinessCreate) SetUpdatedAt(v time.Time) *BusinessCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableUpdatedAt(v *time.Time) *BusinessCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *BusinessCreate) SetCreatedBy(v string) *BusinessCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *BusinessCreate) SetUpdatedBy(v string) *BusinessCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *BusinessCreate) SetSource(v business.Source) *BusinessCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetName sets the "name" field.
func (_c *BusinessCreate) SetName(v string) *BusinessCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *BusinessCreate) SetCurrency(v string) *BusinessCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableCurrency(v *string) *BusinessCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetBaselineCurrentAssetsCents sets the "baseline_current_assets_cents" field.
func (_c *BusinessCreate) SetBaselineCurrentAssetsCents(v int64) *BusinessCreate {
	_c.mutation.SetBaselineCurrentAssetsCents(v)
	return _c
}

// SetNillableBaselineCurrentAssetsCents sets the "baseline_current_assets_cents" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableBaselineCurrentAssetsCents(v *int64) *BusinessCreate {
	if v != nil {
		_c.SetBaselineCurrentAssetsCents(*v)
	}
	return _c
}

// SetBaselineFixedAssetsCents sets the "baseline_fixed_assets_cents" field.
func (_c *BusinessCreate) SetBaselineFixedAssetsCents(v int64) *BusinessCreate {
	_c.mutation.SetBaselineFixedAssetsCents(v)
	return _c
}

// SetNillableBaselineFixedAssetsCents sets the "baseline_fixed_assets_cents" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableBaselineFixedAssetsCents(v *int64) *BusinessCreate {
	if v != nil {
		_c.SetBaselineFixedAssetsCents(*v)
	}
	return _c
}

// SetBaselineCurrentLiabilitiesCents sets the "baseline_current_liabilities_cents" field.
func (_c *BusinessCreate) SetBaselineCurrentLiabilitiesCents(v int64) *BusinessCreate {
	_c.mutation.SetBaselineCurrentLiabilitiesCents(v)
	return _c
}

// SetNillableBaselineCurrentLiabilitiesCents sets the "baseline_current_liabilities_cents" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableBaselineCurrentLiabilitiesCents(v *int64) *BusinessCreate {
	if v != nil {
		_c.SetBaselineCurrentLiabilitiesCents(*v)
	}
	return _c
}

// SetBaselineLongTermLiabilitiesCents sets the "baseline_long_term_liabilities_cents" field.
func (_c *BusinessCreate) SetBaselineLongTermLiabilitiesCents(v int64) *BusinessCreate {
	_c.mutation.SetBaselineLongTermLiabilitiesCents(v)
	return _c
}

// SetNillableBaselineLongTermLiabilitiesCents sets the "baseline_long_term_liabilities_cents" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableBaselineLongTermLiabilitiesCents(v *int64) *BusinessCreate {
	if v != nil {
		_c.SetBaselineLongTermLiabilitiesCents(*v)
	}
	return _c
}

// SetBaselineCommonStockCents sets the "baseline_common_stock_cents" field.
func (_c *BusinessCreate) SetBaselineCommonStockCents(v int64) *BusinessCreate {
	_c.mutation.SetBaselineCommonStockCents(v)
	return _c
}

// SetNillableBaselineCommonStockCents sets the "baseline_common_stock_cents" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableBaselineCommonStockCents(v *int64) *BusinessCreate {
	if v != nil {
		_c.SetBaselineCommonStockCents(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BusinessCreate) SetID(v uuid.UUID) *BusinessCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableID(v *uuid.UUID) *BusinessCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_c *BusinessCreate) AddTransactionIDs(ids ...uuid.UUID) *BusinessCreate {
	_c.mutation.AddTransactionIDs(ids...)
	return _c
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_c *BusinessCreate) AddTransactions(v ...*Transaction) *BusinessCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTransactionIDs(ids...)
}

// AddStatementIDs adds the "statements" edge to the Statement entity by IDs.
func (_c *BusinessCreate) AddStatementIDs(ids ...uuid.UUID) *BusinessCreate {
	_c.mutation.AddStatementIDs(ids...)
	return _c
}

// AddStatements adds the "statements" edges to the Statement entity.
func (_c *BusinessCreate) AddStatements(v ...*Statement) *BusinessCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStatementIDs(ids...)
}

// SetPositionID sets the "position" edge to the FinancialPosition entity by ID.
func (_c *BusinessCreate) SetPositionID(id uuid.UUID) *BusinessCreate {
	_c.mutation.SetPositionID(id)
	return _c
}

// SetNillablePositionID sets the "position" edge to the FinancialPosition entity by ID if the given value is not nil.
func (_c *BusinessCreate) SetNillablePositionID(id *uuid.UUID) *BusinessCreate {
	if id != nil {
		_c = _c.SetPositionID(*id)
	}
	return _c
}

// SetPosition sets the "position" edge to the FinancialPosition entity.
func (_c *BusinessCreate) SetPosition(v *FinancialPosition) *BusinessCreate {
	return _c.SetPositionID(v.ID)
}

// Mutation returns the BusinessMutation object of the builder.
func (_c *BusinessCreate) Mutation() *BusinessMutation {
	return _c.mutation
}

// Save creates the Business in the database.
func (_c *BusinessCreate) Save(ctx context.Context) (*Business, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessCreate) SaveX(ctx context.Context) *Business {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusinessCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := business.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := business.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := business.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.BaselineCurrentAssetsCents(); !ok {
		v := business.DefaultBaselineCurrentAssetsCents
		_c.mutation.SetBaselineCurrentAssetsCents(v)
	}
	if _, ok := _c.mutation.BaselineFixedAssetsCents(); !ok {
		v := business.DefaultBaselineFixedAssetsCents
		_c.mutation.SetBaselineFixedAssetsCents(v)
	}
	if _, ok := _c.mutation.BaselineCurrentLiabilitiesCents(); !ok {
		v := business.DefaultBaselineCurrentLiabilitiesCents
		_c.mutation.SetBaselineCurrentLiabilitiesCents(v)
	}
	if _, ok := _c.mutation.BaselineLongTermLiabilitiesCents(); !ok {
		v := business.DefaultBaselineLongTermLiabilitiesCents
		_c.mutation.SetBaselineLongTermLiabilitiesCents(v)
	}
	if _, ok := _c.mutation.BaselineCommonStockCents(); !ok {
		v := business.DefaultBaselineCommonStockCents
		_c.mutation.SetBaselineCommonStockCents(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := business.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Business.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Business.updated_at"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Business.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := business.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Business.created_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedBy(); !ok {
		return &ValidationError{Name: "updated_by", err: errors.New(`ent: missing required field "Business.updated_by"`)}
	}
	if v, ok := _c.mutation.UpdatedBy(); ok {
		if err := business.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "Business.updated_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Business.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := business.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Business.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Business.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := business.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Business.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Business.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := business.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Business.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaselineCurrentAssetsCents(); !ok {
		return &ValidationError{Name: "baseline_current_assets_cents", err: errors.New(`ent: missing required field "Business.baseline_current_assets_cents"`)}
	}
	if _, ok := _c.mutation.BaselineFixedAssetsCents(); !ok {
		return &ValidationError{Name: "baseline_fixed_assets_cents", err: errors.New(`ent: missing required field "Business.baseline_fixed_assets_cents"`)}
	}
	if _, ok := _c.mutation.BaselineCurrentLiabilitiesCents(); !ok {
		return &ValidationError{Name: "baseline_current_liabilities_cents", err: errors.New(`ent: missing required field "Business.baseline_current_liabilities_cents"`)}
	}
	if _, ok := _c.mutation.BaselineLongTermLiabilitiesCents(); !ok {
		return &ValidationError{Name: "baseline_long_term_liabilities_cents", err: errors.New(`ent: missing required field "Business.baseline_long_term_liabilities_cents"`)}
	}
	if _, ok := _c.mutation.BaselineCommonStockCents(); !ok {
		return &ValidationError{Name: "baseline_common_stock_cents", err: errors.New(`ent: missing required field "Business.baseline_common_stock_cents"`)}
	}
	return nil
}

func (_c *BusinessCreate) sqlSave(ctx context.Context) (*Business, error) {
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

func (_c *BusinessCreate) createSpec() (*Business, *sqlgraph.CreateSpec) {
	var (
		_node = &Business{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(business.Table, sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(business.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(business.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(business.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(business.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(business.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(business.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(business.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.BaselineCurrentAssetsCents(); ok {
		_spec.SetField(business.FieldBaselineCurrentAssetsCents, field.TypeInt64, value)
		_node.BaselineCurrentAssetsCents = value
	}
	if value, ok := _c.mutation.BaselineFixedAssetsCents(); ok {
		_spec.SetField(business.FieldBaselineFixedAssetsCents, field.TypeInt64, value)
		_node.BaselineFixedAssetsCents = value
	}
	if value, ok := _c.mutation.BaselineCurrentLiabilitiesCents(); ok {
		_spec.SetField(business.FieldBaselineCurrentLiabilitiesCents, field.TypeInt64, value)
		_node.BaselineCurrentLiabilitiesCents = value
	}
	if value, ok := _c.mutation.BaselineLongTermLiabilitiesCents(); ok {
		_spec.SetField(business.FieldBaselineLongTermLiabilitiesCents, field.TypeInt64, value)
		_node.BaselineLongTermLiabilitiesCents = value
	}
	if value, ok := _c.mutation.BaselineCommonStockCents(); ok {
		_spec.SetField(business.FieldBaselineCommonStockCents, field.TypeInt64, value)
		_node.BaselineCommonStockCents = value
	}
	if nodes := _c.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   business.TransactionsTable,
			Columns: []string{business.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StatementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   business.StatementsTable,
			Columns: []string{business.StatementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PositionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   business.PositionTable,
			Columns: []string{business.PositionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialposition.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BusinessCreateBulk is the builder for creating many Business entities in bulk.
type BusinessCreateBulk struct {
	config
	err      error
	builders []*BusinessCreate
}

// Save creates the Business entities in the database.
func (_c *BusinessCreateBulk) Save(ctx context.Context) ([]*Business, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Business, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessMutation)
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
func (_c *BusinessCreateBulk) SaveX(ctx context.Context) []*Business {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
