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
	"github.com/axento/books/ent/statement"
	"github.com/axento/books/ent/transaction"
	"github.com/google/uuid"
)

// StatementCreate is the builder for creating a Statement entity.
type StatementCreate struct {
	config
	mutation *StatementMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *StatementCreate) SetCreatedAt(v time.Time) *StatementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StatementCreate) SetNillableCreatedAt(v *time.Time) *StatementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StatementCreate) SetUpdatedAt(v time.Time) *StatementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StatementCreate) SetNillableUpdatedAt(v *time.Time) *StatementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *StatementCreate) SetCreatedBy(v string) *StatementCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *StatementCreate) SetUpdatedBy(v string) *StatementCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *StatementCreate) SetSource(v statement.Source) *StatementCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetOriginalName sets the "original_name" field.
func (_c *StatementCreate) SetOriginalName(v string) *StatementCreate {
	_c.mutation.SetOriginalName(v)
	return _c
}

// SetStoredName sets the "stored_name" field.
func (_c *StatementCreate) SetStoredName(v string) *StatementCreate {
	_c.mutation.SetStoredName(v)
	return _c
}

// SetChecksum sets the "checksum" field.
func (_c *StatementCreate) SetChecksum(v string) *StatementCreate {
	_c.mutation.SetChecksum(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StatementCreate) SetStatus(v statement.Status) *StatementCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StatementCreate) SetNillableStatus(v *statement.Status) *StatementCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *StatementCreate) SetFailureReason(v string) *StatementCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *StatementCreate) SetNillableFailureReason(v *string) *StatementCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetBalanceCents sets the "balance_cents" field.
func (_c *StatementCreate) SetBalanceCents(v int64) *StatementCreate {
	_c.mutation.SetBalanceCents(v)
	return _c
}

// SetNillableBalanceCents sets the "balance_cents" field if the given value is not nil.
func (_c *StatementCreate) SetNillableBalanceCents(v *int64) *StatementCreate {
	if v != nil {
		_c.SetBalanceCents(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *StatementCreate) SetCurrency(v string) *StatementCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *StatementCreate) SetNillableCurrency(v *string) *StatementCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *StatementCreate) SetSkipped(v int) *StatementCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_c *StatementCreate) SetNillableSkipped(v *int) *StatementCreate {
	if v != nil {
		_c.SetSkipped(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StatementCreate) SetID(v uuid.UUID) *StatementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StatementCreate) SetNillableID(v *uuid.UUID) *StatementCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBusinessID sets the "business" edge to the Business entity by ID.
func (_c *StatementCreate) SetBusinessID(id uuid.UUID) *StatementCreate {
	_c.mutation.SetBusinessID(id)
	return _c
}

// SetBusiness sets the "business" edge to the Business entity.
func (_c *StatementCreate) SetBusiness(v *Business) *StatementCreate {
	return _c.SetBusinessID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_c *StatementCreate) AddTransactionIDs(ids ...uuid.UUID) *StatementCreate {
	_c.mutation.AddTransactionIDs(ids...)
	return _c
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_c *StatementCreate) AddTransactions(v ...*Transaction) *StatementCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTransactionIDs(ids...)
}

// Mutation returns the StatementMutation object of the builder.
func (_c *StatementCreate) Mutation() *StatementMutation {
	return _c.mutation
}

// Save creates the Statement in the database.
func (_c *StatementCreate) Save(ctx context.Context) (*Statement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StatementCreate) SaveX(ctx context.Context) *Statement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StatementCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := statement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := statement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := statement.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.BalanceCents(); !ok {
		v := statement.DefaultBalanceCents
		_c.mutation.SetBalanceCents(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := statement.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		v := statement.DefaultSkipped
		_c.mutation.SetSkipped(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := statement.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StatementCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Statement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Statement.updated_at"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Statement.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := statement.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Statement.created_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedBy(); !ok {
		return &ValidationError{Name: "updated_by", err: errors.New(`ent: missing required field "Statement.updated_by"`)}
	}
	if v, ok := _c.mutation.UpdatedBy(); ok {
		if err := statement.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "Statement.updated_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Statement.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := statement.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Statement.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalName(); !ok {
		return &ValidationError{Name: "original_name", err: errors.New(`ent: missing required field "Statement.original_name"`)}
	}
	if v, ok := _c.mutation.OriginalName(); ok {
		if err := statement.OriginalNameValidator(v); err != nil {
			return &ValidationError{Name: "original_name", err: fmt.Errorf(`ent: validator failed for field "Statement.original_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoredName(); !ok {
		return &ValidationError{Name: "stored_name", err: errors.New(`ent: missing required field "Statement.stored_name"`)}
	}
	if v, ok := _c.mutation.StoredName(); ok {
		if err := statement.StoredNameValidator(v); err != nil {
			return &ValidationError{Name: "stored_name", err: fmt.Errorf(`ent: validator failed for field "Statement.stored_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Checksum(); !ok {
		return &ValidationError{Name: "checksum", err: errors.New(`ent: missing required field "Statement.checksum"`)}
	}
	if v, ok := _c.mutation.Checksum(); ok {
		if err := statement.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "Statement.checksum": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Statement.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := statement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Statement.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BalanceCents(); !ok {
		return &ValidationError{Name: "balance_cents", err: errors.New(`ent: missing required field "Statement.balance_cents"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Statement.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := statement.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Statement.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "Statement.skipped"`)}
	}
	if v, ok := _c.mutation.Skipped(); ok {
		if err := statement.SkippedValidator(v); err != nil {
			return &ValidationError{Name: "skipped", err: fmt.Errorf(`ent: validator failed for field "Statement.skipped": %w`, err)}
		}
	}
	if len(_c.mutation.BusinessIDs()) == 0 {
		return &ValidationError{Name: "business", err: errors.New(`ent: missing required edge "Statement.business"`)}
	}
	return nil
}

func (_c *StatementCreate) sqlSave(ctx context.Context) (*Statement, error) {
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

func (_c *StatementCreate) createSpec() (*Statement, *sqlgraph.CreateSpec) {
	var (
		_node = &Statement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(statement.Table, sqlgraph.NewFieldSpec(statement.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(statement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(statement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(statement.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(statement.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(statement.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.OriginalName(); ok {
		_spec.SetField(statement.FieldOriginalName, field.TypeString, value)
		_node.OriginalName = value
	}
	if value, ok := _c.mutation.StoredName(); ok {
		_spec.SetField(statement.FieldStoredName, field.TypeString, value)
		_node.StoredName = value
	}
	if value, ok := _c.mutation.Checksum(); ok {
		_spec.SetField(statement.FieldChecksum, field.TypeString, value)
		_node.Checksum = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(statement.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(statement.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.BalanceCents(); ok {
		_spec.SetField(statement.FieldBalanceCents, field.TypeInt64, value)
		_node.BalanceCents = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(statement.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(statement.FieldSkipped, field.TypeInt, value)
		_node.Skipped = value
	}
	if nodes := _c.mutation.BusinessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   statement.BusinessTable,
			Columns: []string{statement.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.business_statements = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   statement.TransactionsTable,
			Columns: []string{statement.TransactionsColumn},
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
	return _node, _spec
}

// StatementCreateBulk is the builder for creating many Statement entities in bulk.
type StatementCreateBulk struct {
	config
	err      error
	builders []*StatementCreate
}

// Save creates the Statement entities in the database.
func (_c *StatementCreateBulk) Save(ctx context.Context) ([]*Statement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Statement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StatementMutation)
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
func (_c *StatementCreateBulk) SaveX(ctx context.Context) []*Statement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
