// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/axento/books/ent/financialposition"
	"github.com/axento/books/ent/predicate"
)

// FinancialPositionDelete is the builder for deleting a FinancialPosition entity.
type FinancialPositionDelete struct {
	config
	hooks    []Hook
	mutation *FinancialPositionMutation
}

// Where appends a list predicates to the FinancialPositionDelete builder.
func (_d *FinancialPositionDelete) Where(ps ...predicate.FinancialPosition) *FinancialPositionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FinancialPositionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FinancialPositionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FinancialPositionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(financialposition.Table, sqlgraph.NewFieldSpec(financialposition.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FinancialPositionDeleteOne is the builder for deleting a single FinancialPosition entity.
type FinancialPositionDeleteOne struct {
	_d *FinancialPositionDelete
}

// Where appends a list predicates to the FinancialPositionDelete builder.
func (_d *FinancialPositionDeleteOne) Where(ps ...predicate.FinancialPosition) *FinancialPositionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FinancialPositionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{financialposition.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FinancialPositionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
