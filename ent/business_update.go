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
	"github.com/axento/books/ent/statement"
	"github.com/axento/books/ent/transaction"
	"github.com/google/uuid"
)

// BusinessUpdate is the builder for updating Business entities.
type BusinessUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessMutation
}

// Where appends a list predicates to the BusinessUpdate builder.
func (_u *BusinessUpdate) Where(ps ...predicate.Business) *BusinessUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessUpdate) SetUpdatedAt(v time.Time) *BusinessUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *BusinessUpdate) SetCreatedBy(v string) *BusinessUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableCreatedBy(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *BusinessUpdate) SetUpdatedBy(v string) *BusinessUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableUpdatedBy(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *BusinessUpdate) SetSource(v business.Source) *BusinessUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableSource(v *business.Source) *BusinessUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BusinessUpdate) SetName(v string) *BusinessUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableName(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *BusinessUpdate) SetCurrency(v string) *BusinessUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableCurrency(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetBaselineCurrentAssetsCents sets the "baseline_current_assets_cents" field.
func (_u *BusinessUpdate) SetBaselineCurrentAssetsCents(v int64) *BusinessUpdate {
	_u.mutation.ResetBaselineCurrentAssetsCents()
	_u.mutation.SetBaselineCurrentAssetsCents(v)
	return _u
}

// SetNillableBaselineCurrentAssetsCents sets the "baseline_current_assets_cents" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableBaselineCurrentAssetsCents(v *int64) *BusinessUpdate {
	if v != nil {
		_u.SetBaselineCurrentAssetsCents(*v)
	}
	return _u
}

// AddBaselineCurrentAssetsCents adds value to the "baseline_current_assets_cents" field.
func (_u *BusinessUpdate) AddBaselineCurrentAssetsCents(v int64) *BusinessUpdate {
	_u.mutation.AddBaselineCurrentAssetsCents(v)
	return _u
}

// SetBaselineFixedAssetsCents sets the "baseline_fixed_assets_cents" field.
func (_u *BusinessUpdate) SetBaselineFixedAssetsCents(v int64) *BusinessUpdate {
	_u.mutation.ResetBaselineFixedAssetsCents()
	_u.mutation.SetBaselineFixedAssetsCents(v)
	return _u
}

// SetNillableBaselineFixedAssetsCents sets the "baseline_fixed_assets_cents" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableBaselineFixedAssetsCents(v *int64) *BusinessUpdate {
	if v != nil {
		_u.SetBaselineFixedAssetsCents(*v)
	}
	return _u
}

// AddBaselineFixedAssetsCents adds value to the "baseline_fixed_assets_cents" field.
func (_u *BusinessUpdate) AddBaselineFixedAssetsCents(v int64) *BusinessUpdate {
	_u.mutation.AddBaselineFixedAssetsCents(v)
	return _u
}

// SetBaselineCurrentLiabilitiesCents sets the "baseline_current_liabilities_cents" field.
func (_u *BusinessUpdate) SetBaselineCurrentLiabilitiesCents(v int64) *BusinessUpdate {
	_u.mutation.ResetBaselineCurrentLiabilitiesCents()
	_u.mutation.SetBaselineCurrentLiabilitiesCents(v)
	return _u
}

// SetNillableBaselineCurrentLiabilitiesCents sets the "baseline_current_liabilities_cents" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableBaselineCurrentLiabilitiesCents(v *int64) *BusinessUpdate {
	if v != nil {
		_u.SetBaselineCurrentLiabilitiesCents(*v)
	}
	return _u
}

// AddBaselineCurrentLiabilitiesCents adds value to the "baseline_current_liabilities_cents" field.
func (_u *BusinessUpdate) AddBaselineCurrentLiabilitiesCents(v int64) *BusinessUpdate {
	_u.mutation.AddBaselineCurrentLiabilitiesCents(v)
	return _u
}

// SetBaselineLongTermLiabilitiesCents sets the "baseline_long_term_liabilities_cents" field.
func (_u *BusinessUpdate) SetBaselineLongTermLiabilitiesCents(v int64) *BusinessUpdate {
	_u.mutation.ResetBaselineLongTermLiabilitiesCents()
	_u.mutation.SetBaselineLongTermLiabilitiesCents(v)
	return _u
}

// SetNillableBaselineLongTermLiabilitiesCents sets the "baseline_long_term_liabilities_cents" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableBaselineLongTermLiabilitiesCents(v *int64) *BusinessUpdate {
	if v != nil {
		_u.SetBaselineLongTermLiabilitiesCents(*v)
	}
	return _u
}

// AddBaselineLongTermLiabilitiesCents adds value to the "baseline_long_term_liabilities_cents" field.
func (_u *BusinessUpdate) AddBaselineLongTermLiabilitiesCents(v int64) *BusinessUpdate {
	_u.mutation.AddBaselineLongTermLiabilitiesCents(v)
	return _u
}

// SetBaselineCommonStockCents sets the "baseline_common_stock_cents" field.
func (_u *BusinessUpdate) SetBaselineCommonStockCents(v int64) *BusinessUpdate {
	_u.mutation.ResetBaselineCommonStockCents()
	_u.mutation.SetBaselineCommonStockCents(v)
	return _u
}

// SetNillableBaselineCommonStockCents sets the "baseline_common_stock_cents" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableBaselineCommonStockCents(v *int64) *BusinessUpdate {
	if v != nil {
		_u.SetBaselineCommonStockCents(*v)
	}
	return _u
}

// AddBaselineCommonStockCents adds value to the "baseline_common_stock_cents" field.
func (_u *BusinessUpdate) AddBaselineCommonStockCents(v int64) *BusinessUpdate {
	_u.mutation.AddBaselineCommonStockCents(v)
	return _u
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *BusinessUpdate) AddTransactionIDs(ids ...uuid.UUID) *BusinessUpdate {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *BusinessUpdate) AddTransactions(v ...*Transaction) *BusinessUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// AddStatementIDs adds the "statements" edge to the Statement entity by IDs.
func (_u *BusinessUpdate) AddStatementIDs(ids ...uuid.UUID) *BusinessUpdate {
	_u.mutation.AddStatementIDs(ids...)
	return _u
}

// AddStatements adds the "statements" edges to the Statement entity.
func (_u *BusinessUpdate) AddStatements(v ...*Statement) *BusinessUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatementIDs(ids...)
}

// SetPositionID sets the "position" edge to the FinancialPosition entity by ID.
func (_u *BusinessUpdate) SetPositionID(id uuid.UUID) *BusinessUpdate {
	_u.mutation.SetPositionID(id)
	return _u
}

// SetNillablePositionID sets the "position" edge to the FinancialPosition entity by ID if the given value is not nil.
func (_u *BusinessUpdate) SetNillablePositionID(id *uuid.UUID) *BusinessUpdate {
	if id != nil {
		_u = _u.SetPositionID(*id)
	}
	return _u
}

// SetPosition sets the "position" edge to the FinancialPosition entity.
func (_u *BusinessUpdate) SetPosition(v *FinancialPosition) *BusinessUpdate {
	return _u.SetPositionID(v.ID)
}

// Mutation returns the BusinessMutation object of the builder.
func (_u *BusinessUpdate) Mutation() *BusinessMutation {
	return _u.mutation
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *BusinessUpdate) ClearTransactions() *BusinessUpdate {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *BusinessUpdate) RemoveTransactionIDs(ids ...uuid.UUID) *BusinessUpdate {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *BusinessUpdate) RemoveTransactions(v ...*Transaction) *BusinessUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// ClearStatements clears all "statements" edges to the Statement entity.
func (_u *BusinessUpdate) ClearStatements() *BusinessUpdate {
	_u.mutation.ClearStatements()
	return _u
}

// RemoveStatementIDs removes the "statements" edge to Statement entities by IDs.
func (_u *BusinessUpdate) RemoveStatementIDs(ids ...uuid.UUID) *BusinessUpdate {
	_u.mutation.RemoveStatementIDs(ids...)
	return _u
}

// RemoveStatements removes "statements" edges to Statement entities.
func (_u *BusinessUpdate) RemoveStatements(v ...*Statement) *BusinessUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatementIDs(ids...)
}

// ClearPosition clears the "position" edge to the FinancialPosition entity.
func (_u *BusinessUpdate) ClearPosition() *BusinessUpdate {
	_u.mutation.ClearPosition()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := business.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessUpdate) check() error {
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := business.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Business.created_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UpdatedBy(); ok {
		if err := business.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "Business.updated_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := business.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Business.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := business.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Business.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := business.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Business.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(business.Table, business.Columns, sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(business.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(business.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(business.FieldUpdatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(business.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(business.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(business.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaselineCurrentAssetsCents(); ok {
		_spec.SetField(business.FieldBaselineCurrentAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBaselineCurrentAssetsCents(); ok {
		_spec.AddField(business.FieldBaselineCurrentAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BaselineFixedAssetsCents(); ok {
		_spec.SetField(business.FieldBaselineFixedAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBaselineFixedAssetsCents(); ok {
		_spec.AddField(business.FieldBaselineFixedAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BaselineCurrentLiabilitiesCents(); ok {
		_spec.SetField(business.FieldBaselineCurrentLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBaselineCurrentLiabilitiesCents(); ok {
		_spec.AddField(business.FieldBaselineCurrentLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BaselineLongTermLiabilitiesCents(); ok {
		_spec.SetField(business.FieldBaselineLongTermLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBaselineLongTermLiabilitiesCents(); ok {
		_spec.AddField(business.FieldBaselineLongTermLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BaselineCommonStockCents(); ok {
		_spec.SetField(business.FieldBaselineCommonStockCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBaselineCommonStockCents(); ok {
		_spec.AddField(business.FieldBaselineCommonStockCents, field.TypeInt64, value)
	}
	if _u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatementsIDs(); len(nodes) > 0 && !_u.mutation.StatementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PositionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PositionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{business.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessUpdateOne is the builder for updating a single Business entity.
type BusinessUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessUpdateOne) SetUpdatedAt(v time.Time) *BusinessUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *BusinessUpdateOne) SetCreatedBy(v string) *BusinessUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableCreatedBy(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *BusinessUpdateOne) SetUpdatedBy(v string) *BusinessUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableUpdatedBy(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *BusinessUpdateOne) SetSource(v business.Source) *BusinessUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableSource(v *business.Source) *BusinessUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BusinessUpdateOne) SetName(v string) *BusinessUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableName(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *BusinessUpdateOne) SetCurrency(v string) *BusinessUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableCurrency(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetBaselineCurrentAssetsCents sets the "baseline_current_assets_cents" field.
func (_u *BusinessUpdateOne) SetBaselineCurrentAssetsCents(v int64) *BusinessUpdateOne {
	_u.mutation.ResetBaselineCurrentAssetsCents()
	_u.mutation.SetBaselineCurrentAssetsCents(v)
	return _u
}

// SetNillableBaselineCurrentAssetsCents sets the "baseline_current_assets_cents" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableBaselineCurrentAssetsCents(v *int64) *BusinessUpdateOne {
	if v != nil {
		_u.SetBaselineCurrentAssetsCents(*v)
	}
	return _u
}

// AddBaselineCurrentAssetsCents adds value to the "baseline_current_assets_cents" field.
func (_u *BusinessUpdateOne) AddBaselineCurrentAssetsCents(v int64) *BusinessUpdateOne {
	_u.mutation.AddBaselineCurrentAssetsCents(v)
	return _u
}

// SetBaselineFixedAssetsCents sets the "baseline_fixed_assets_cents" field.
func (_u *BusinessUpdateOne) SetBaselineFixedAssetsCents(v int64) *BusinessUpdateOne {
	_u.mutation.ResetBaselineFixedAssetsCents()
	_u.mutation.SetBaselineFixedAssetsCents(v)
	return _u
}

// SetNillableBaselineFixedAssetsCents sets the "baseline_fixed_assets_cents" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableBaselineFixedAssetsCents(v *int64) *BusinessUpdateOne {
	if v != nil {
		_u.SetBaselineFixedAssetsCents(*v)
	}
	return _u
}

// AddBaselineFixedAssetsCents adds value to the "baseline_fixed_assets_cents" field.
func (_u *BusinessUpdateOne) AddBaselineFixedAssetsCents(v int64) *BusinessUpdateOne {
	_u.mutation.AddBaselineFixedAssetsCents(v)
	return _u
}

// SetBaselineCurrentLiabilitiesCents sets the "baseline_current_liabilities_cents" field.
func (_u *BusinessUpdateOne) SetBaselineCurrentLiabilitiesCents(v int64) *BusinessUpdateOne {
	_u.mutation.ResetBaselineCurrentLiabilitiesCents()
	_u.mutation.SetBaselineCurrentLiabilitiesCents(v)
	return _u
}

// SetNillableBaselineCurrentLiabilitiesCents sets the "baseline_current_liabilities_cents" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableBaselineCurrentLiabilitiesCents(v *int64) *BusinessUpdateOne {
	if v != nil {
		_u.SetBaselineCurrentLiabilitiesCents(*v)
	}
	return _u
}

// AddBaselineCurrentLiabilitiesCents adds value to the "baseline_current_liabilities_cents" field.
func (_u *BusinessUpdateOne) AddBaselineCurrentLiabilitiesCents(v int64) *BusinessUpdateOne {
	_u.mutation.AddBaselineCurrentLiabilitiesCents(v)
	return _u
}

// SetBaselineLongTermLiabilitiesCents sets the "baseline_long_term_liabilities_cents" field.
func (_u *BusinessUpdateOne) SetBaselineLongTermLiabilitiesCents(v int64) *BusinessUpdateOne {
	_u.mutation.ResetBaselineLongTermLiabilitiesCents()
	_u.mutation.SetBaselineLongTermLiabilitiesCents(v)
	return _u
}

// SetNillableBaselineLongTermLiabilitiesCents sets the "baseline_long_term_liabilities_cents" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableBaselineLongTermLiabilitiesCents(v *int64) *BusinessUpdateOne {
	if v != nil {
		_u.SetBaselineLongTermLiabilitiesCents(*v)
	}
	return _u
}

// AddBaselineLongTermLiabilitiesCents adds value to the "baseline_long_term_liabilities_cents" field.
func (_u *BusinessUpdateOne) AddBaselineLongTermLiabilitiesCents(v int64) *BusinessUpdateOne {
	_u.mutation.AddBaselineLongTermLiabilitiesCents(v)
	return _u
}

// SetBaselineCommonStockCents sets the "baseline_common_stock_cents" field.
func (_u *BusinessUpdateOne) SetBaselineCommonStockCents(v int64) *BusinessUpdateOne {
	_u.mutation.ResetBaselineCommonStockCents()
	_u.mutation.SetBaselineCommonStockCents(v)
	return _u
}

// SetNillableBaselineCommonStockCents sets the "baseline_common_stock_cents" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableBaselineCommonStockCents(v *int64) *BusinessUpdateOne {
	if v != nil {
		_u.SetBaselineCommonStockCents(*v)
	}
	return _u
}

// AddBaselineCommonStockCents adds value to the "baseline_common_stock_cents" field.
func (_u *BusinessUpdateOne) AddBaselineCommonStockCents(v int64) *BusinessUpdateOne {
	_u.mutation.AddBaselineCommonStockCents(v)
	return _u
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *BusinessUpdateOne) AddTransactionIDs(ids ...uuid.UUID) *BusinessUpdateOne {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *BusinessUpdateOne) AddTransactions(v ...*Transaction) *BusinessUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// AddStatementIDs adds the "statements" edge to the Statement entity by IDs.
func (_u *BusinessUpdateOne) AddStatementIDs(ids ...uuid.UUID) *BusinessUpdateOne {
	_u.mutation.AddStatementIDs(ids...)
	return _u
}

// AddStatements adds the "statements" edges to the Statement entity.
func (_u *BusinessUpdateOne) AddStatements(v ...*Statement) *BusinessUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatementIDs(ids...)
}

// SetPositionID sets the "position" edge to the FinancialPosition entity by ID.
func (_u *BusinessUpdateOne) SetPositionID(id uuid.UUID) *BusinessUpdateOne {
	_u.mutation.SetPositionID(id)
	return _u
}

// SetNillablePositionID sets the "position" edge to the FinancialPosition entity by ID if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillablePositionID(id *uuid.UUID) *BusinessUpdateOne {
	if id != nil {
		_u = _u.SetPositionID(*id)
	}
	return _u
}

// SetPosition sets the "position" edge to the FinancialPosition entity.
func (_u *BusinessUpdateOne) SetPosition(v *FinancialPosition) *BusinessUpdateOne {
	return _u.SetPositionID(v.ID)
}

// Mutation returns the BusinessMutation object of the builder.
func (_u *BusinessUpdateOne) Mutation() *BusinessMutation {
	return _u.mutation
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *BusinessUpdateOne) ClearTransactions() *BusinessUpdateOne {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *BusinessUpdateOne) RemoveTransactionIDs(ids ...uuid.UUID) *BusinessUpdateOne {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *BusinessUpdateOne) RemoveTransactions(v ...*Transaction) *BusinessUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// ClearStatements clears all "statements" edges to the Statement entity.
func (_u *BusinessUpdateOne) ClearStatements() *BusinessUpdateOne {
	_u.mutation.ClearStatements()
	return _u
}

// RemoveStatementIDs removes the "statements" edge to Statement entities by IDs.
func (_u *BusinessUpdateOne) RemoveStatementIDs(ids ...uuid.UUID) *BusinessUpdateOne {
	_u.mutation.RemoveStatementIDs(ids...)
	return _u
}

// RemoveStatements removes "statements" edges to Statement entities.
func (_u *BusinessUpdateOne) RemoveStatements(v ...*Statement) *BusinessUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatementIDs(ids...)
}

// ClearPosition clears the "position" edge to the FinancialPosition entity.
func (_u *BusinessUpdateOne) ClearPosition() *BusinessUpdateOne {
	_u.mutation.ClearPosition()
	return _u
}

// Where appends a list predicates to the BusinessUpdate builder.
func (_u *BusinessUpdateOne) Where(ps ...predicate.Business) *BusinessUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessUpdateOne) Select(field string, fields ...string) *BusinessUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Business entity.
func (_u *BusinessUpdateOne) Save(ctx context.Context) (*Business, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessUpdateOne) SaveX(ctx context.Context) *Business {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := business.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessUpdateOne) check() error {
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := business.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Business.created_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UpdatedBy(); ok {
		if err := business.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "Business.updated_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := business.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Business.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := business.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Business.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := business.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Business.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessUpdateOne) sqlSave(ctx context.Context) (_node *Business, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(business.Table, business.Columns, sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Business.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, business.FieldID)
		for _, f := range fields {
			if !business.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != business.FieldID {
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
		_spec.SetField(business.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(business.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(business.FieldUpdatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(business.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(business.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(business.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaselineCurrentAssetsCents(); ok {
		_spec.SetField(business.FieldBaselineCurrentAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBaselineCurrentAssetsCents(); ok {
		_spec.AddField(business.FieldBaselineCurrentAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BaselineFixedAssetsCents(); ok {
		_spec.SetField(business.FieldBaselineFixedAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBaselineFixedAssetsCents(); ok {
		_spec.AddField(business.FieldBaselineFixedAssetsCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BaselineCurrentLiabilitiesCents(); ok {
		_spec.SetField(business.FieldBaselineCurrentLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBaselineCurrentLiabilitiesCents(); ok {
		_spec.AddField(business.FieldBaselineCurrentLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BaselineLongTermLiabilitiesCents(); ok {
		_spec.SetField(business.FieldBaselineLongTermLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBaselineLongTermLiabilitiesCents(); ok {
		_spec.AddField(business.FieldBaselineLongTermLiabilitiesCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BaselineCommonStockCents(); ok {
		_spec.SetField(business.FieldBaselineCommonStockCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBaselineCommonStockCents(); ok {
		_spec.AddField(business.FieldBaselineCommonStockCents, field.TypeInt64, value)
	}
	if _u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatementsIDs(); len(nodes) > 0 && !_u.mutation.StatementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PositionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PositionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Business{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{business.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
