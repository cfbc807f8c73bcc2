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
	"github.com/axento/books/ent/predicate"
	"github.com/axento/books/ent/statement"
	"github.com/axento/books/ent/transaction"
	"github.com/google/uuid"
)

// StatementUpdate is the builder for updating Statement entities.
type StatementUpdate struct {
	config
	hooks    []Hook
	mutation *StatementMutation
}

// Where appends a list predicates to the StatementUpdate builder.
func (_u *StatementUpdate) Where(ps ...predicate.Statement) *StatementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StatementUpdate) SetUpdatedAt(v time.Time) *StatementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *StatementUpdate) SetCreatedBy(v string) *StatementUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *StatementUpdate) SetNillableCreatedBy(v *string) *StatementUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *StatementUpdate) SetUpdatedBy(v string) *StatementUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *StatementUpdate) SetNillableUpdatedBy(v *string) *StatementUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *StatementUpdate) SetSource(v statement.Source) *StatementUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *StatementUpdate) SetNillableSource(v *statement.Source) *StatementUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOriginalName sets the "original_name" field.
func (_u *StatementUpdate) SetOriginalName(v string) *StatementUpdate {
	_u.mutation.SetOriginalName(v)
	return _u
}

// SetNillableOriginalName sets the "original_name" field if the given value is not nil.
func (_u *StatementUpdate) SetNillableOriginalName(v *string) *StatementUpdate {
	if v != nil {
		_u.SetOriginalName(*v)
	}
	return _u
}

// SetStoredName sets the "stored_name" field.
func (_u *StatementUpdate) SetStoredName(v string) *StatementUpdate {
	_u.mutation.SetStoredName(v)
	return _u
}

// SetNillableStoredName sets the "stored_name" field if the given value is not nil.
func (_u *StatementUpdate) SetNillableStoredName(v *string) *StatementUpdate {
	if v != nil {
		_u.SetStoredName(*v)
	}
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *StatementUpdate) SetChecksum(v string) *StatementUpdate {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *StatementUpdate) SetNillableChecksum(v *string) *StatementUpdate {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StatementUpdate) SetStatus(v statement.Status) *StatementUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StatementUpdate) SetNillableStatus(v *statement.Status) *StatementUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *StatementUpdate) SetFailureReason(v string) *StatementUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *StatementUpdate) SetNillableFailureReason(v *string) *StatementUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *StatementUpdate) ClearFailureReason() *StatementUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetBalanceCents sets the "balance_cents" field.
func (_u *StatementUpdate) SetBalanceCents(v int64) *StatementUpdate {
	_u.mutation.ResetBalanceCents()
	_u.mutation.SetBalanceCents(v)
	return _u
}

// SetNillableBalanceCents sets the "balance_cents" field if the given value is not nil.
func (_u *StatementUpdate) SetNillableBalanceCents(v *int64) *StatementUpdate {
	if v != nil {
		_u.SetBalanceCents(*v)
	}
	return _u
}

// AddBalanceCents adds value to the "balance_cents" field.
func (_u *StatementUpdate) AddBalanceCents(v int64) *StatementUpdate {
	_u.mutation.AddBalanceCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *StatementUpdate) SetCurrency(v string) *StatementUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *StatementUpdate) SetNillableCurrency(v *string) *StatementUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *StatementUpdate) SetSkipped(v int) *StatementUpdate {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *StatementUpdate) SetNillableSkipped(v *int) *StatementUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *StatementUpdate) AddSkipped(v int) *StatementUpdate {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetBusinessID sets the "business" edge to the Business entity by ID.
func (_u *StatementUpdate) SetBusinessID(id uuid.UUID) *StatementUpdate {
	_u.mutation.SetBusinessID(id)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *StatementUpdate) SetBusiness(v *Business) *StatementUpdate {
	return _u.SetBusinessID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *StatementUpdate) AddTransactionIDs(ids ...uuid.UUID) *StatementUpdate {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *StatementUpdate) AddTransactions(v ...*Transaction) *StatementUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the StatementMutation object of the builder.
func (_u *StatementUpdate) Mutation() *StatementMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *StatementUpdate) ClearBusiness() *StatementUpdate {
	_u.mutation.ClearBusiness()
	return _u
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *StatementUpdate) ClearTransactions() *StatementUpdate {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *StatementUpdate) RemoveTransactionIDs(ids ...uuid.UUID) *StatementUpdate {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *StatementUpdate) RemoveTransactions(v ...*Transaction) *StatementUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StatementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StatementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StatementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := statement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StatementUpdate) check() error {
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := statement.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Statement.created_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UpdatedBy(); ok {
		if err := statement.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "Statement.updated_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := statement.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Statement.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalName(); ok {
		if err := statement.OriginalNameValidator(v); err != nil {
			return &ValidationError{Name: "original_name", err: fmt.Errorf(`ent: validator failed for field "Statement.original_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoredName(); ok {
		if err := statement.StoredNameValidator(v); err != nil {
			return &ValidationError{Name: "stored_name", err: fmt.Errorf(`ent: validator failed for field "Statement.stored_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Checksum(); ok {
		if err := statement.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "Statement.checksum": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := statement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Statement.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := statement.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Statement.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skipped(); ok {
		if err := statement.SkippedValidator(v); err != nil {
			return &ValidationError{Name: "skipped", err: fmt.Errorf(`ent: validator failed for field "Statement.skipped": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Statement.business"`)
	}
	return nil
}

func (_u *StatementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(statement.Table, statement.Columns, sqlgraph.NewFieldSpec(statement.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(statement.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(statement.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(statement.FieldUpdatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(statement.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OriginalName(); ok {
		_spec.SetField(statement.FieldOriginalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoredName(); ok {
		_spec.SetField(statement.FieldStoredName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(statement.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(statement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(statement.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(statement.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.BalanceCents(); ok {
		_spec.SetField(statement.FieldBalanceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBalanceCents(); ok {
		_spec.AddField(statement.FieldBalanceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(statement.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(statement.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(statement.FieldSkipped, field.TypeInt, value)
	}
	if _u.mutation.BusinessCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StatementUpdateOne is the builder for updating a single Statement entity.
type StatementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StatementMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StatementUpdateOne) SetUpdatedAt(v time.Time) *StatementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *StatementUpdateOne) SetCreatedBy(v string) *StatementUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *StatementUpdateOne) SetNillableCreatedBy(v *string) *StatementUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *StatementUpdateOne) SetUpdatedBy(v string) *StatementUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *StatementUpdateOne) SetNillableUpdatedBy(v *string) *StatementUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *StatementUpdateOne) SetSource(v statement.Source) *StatementUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *StatementUpdateOne) SetNillableSource(v *statement.Source) *StatementUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOriginalName sets the "original_name" field.
func (_u *StatementUpdateOne) SetOriginalName(v string) *StatementUpdateOne {
	_u.mutation.SetOriginalName(v)
	return _u
}

// SetNillableOriginalName sets the "original_name" field if the given value is not nil.
func (_u *StatementUpdateOne) SetNillableOriginalName(v *string) *StatementUpdateOne {
	if v != nil {
		_u.SetOriginalName(*v)
	}
	return _u
}

// SetStoredName sets the "stored_name" field.
func (_u *StatementUpdateOne) SetStoredName(v string) *StatementUpdateOne {
	_u.mutation.SetStoredName(v)
	return _u
}

// SetNillableStoredName sets the "stored_name" field if the given value is not nil.
func (_u *StatementUpdateOne) SetNillableStoredName(v *string) *StatementUpdateOne {
	if v != nil {
		_u.SetStoredName(*v)
	}
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *StatementUpdateOne) SetChecksum(v string) *StatementUpdateOne {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *StatementUpdateOne) SetNillableChecksum(v *string) *StatementUpdateOne {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StatementUpdateOne) SetStatus(v statement.Status) *StatementUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StatementUpdateOne) SetNillableStatus(v *statement.Status) *StatementUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *StatementUpdateOne) SetFailureReason(v string) *StatementUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *StatementUpdateOne) SetNillableFailureReason(v *string) *StatementUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *StatementUpdateOne) ClearFailureReason() *StatementUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetBalanceCents sets the "balance_cents" field.
func (_u *StatementUpdateOne) SetBalanceCents(v int64) *StatementUpdateOne {
	_u.mutation.ResetBalanceCents()
	_u.mutation.SetBalanceCents(v)
	return _u
}

// SetNillableBalanceCents sets the "balance_cents" field if the given value is not nil.
func (_u *StatementUpdateOne) SetNillableBalanceCents(v *int64) *StatementUpdateOne {
	if v != nil {
		_u.SetBalanceCents(*v)
	}
	return _u
}

// AddBalanceCents adds value to the "balance_cents" field.
func (_u *StatementUpdateOne) AddBalanceCents(v int64) *StatementUpdateOne {
	_u.mutation.AddBalanceCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *StatementUpdateOne) SetCurrency(v string) *StatementUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *StatementUpdateOne) SetNillableCurrency(v *string) *StatementUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *StatementUpdateOne) SetSkipped(v int) *StatementUpdateOne {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *StatementUpdateOne) SetNillableSkipped(v *int) *StatementUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *StatementUpdateOne) AddSkipped(v int) *StatementUpdateOne {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetBusinessID sets the "business" edge to the Business entity by ID.
func (_u *StatementUpdateOne) SetBusinessID(id uuid.UUID) *StatementUpdateOne {
	_u.mutation.SetBusinessID(id)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *StatementUpdateOne) SetBusiness(v *Business) *StatementUpdateOne {
	return _u.SetBusinessID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *StatementUpdateOne) AddTransactionIDs(ids ...uuid.UUID) *StatementUpdateOne {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *StatementUpdateOne) AddTransactions(v ...*Transaction) *StatementUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the StatementMutation object of the builder.
func (_u *StatementUpdateOne) Mutation() *StatementMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *StatementUpdateOne) ClearBusiness() *StatementUpdateOne {
	_u.mutation.ClearBusiness()
	return _u
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *StatementUpdateOne) ClearTransactions() *StatementUpdateOne {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *StatementUpdateOne) RemoveTransactionIDs(ids ...uuid.UUID) *StatementUpdateOne {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *StatementUpdateOne) RemoveTransactions(v ...*Transaction) *StatementUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Where appends a list predicates to the StatementUpdate builder.
func (_u *StatementUpdateOne) Where(ps ...predicate.Statement) *StatementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StatementUpdateOne) Select(field string, fields ...string) *StatementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Statement entity.
func (_u *StatementUpdateOne) Save(ctx context.Context) (*Statement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatementUpdateOne) SaveX(ctx context.Context) *Statement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StatementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StatementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := statement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StatementUpdateOne) check() error {
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := statement.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Statement.created_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UpdatedBy(); ok {
		if err := statement.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "Statement.updated_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := statement.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Statement.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalName(); ok {
		if err := statement.OriginalNameValidator(v); err != nil {
			return &ValidationError{Name: "original_name", err: fmt.Errorf(`ent: validator failed for field "Statement.original_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoredName(); ok {
		if err := statement.StoredNameValidator(v); err != nil {
			return &ValidationError{Name: "stored_name", err: fmt.Errorf(`ent: validator failed for field "Statement.stored_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Checksum(); ok {
		if err := statement.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "Statement.checksum": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := statement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Statement.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := statement.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Statement.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skipped(); ok {
		if err := statement.SkippedValidator(v); err != nil {
			return &ValidationError{Name: "skipped", err: fmt.Errorf(`ent: validator failed for field "Statement.skipped": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Statement.business"`)
	}
	return nil
}

func (_u *StatementUpdateOne) sqlSave(ctx context.Context) (_node *Statement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(statement.Table, statement.Columns, sqlgraph.NewFieldSpec(statement.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Statement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, statement.FieldID)
		for _, f := range fields {
			if !statement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != statement.FieldID {
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
		_spec.SetField(statement.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(statement.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(statement.FieldUpdatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(statement.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OriginalName(); ok {
		_spec.SetField(statement.FieldOriginalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoredName(); ok {
		_spec.SetField(statement.FieldStoredName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(statement.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(statement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(statement.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(statement.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.BalanceCents(); ok {
		_spec.SetField(statement.FieldBalanceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBalanceCents(); ok {
		_spec.AddField(statement.FieldBalanceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(statement.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(statement.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(statement.FieldSkipped, field.TypeInt, value)
	}
	if _u.mutation.BusinessCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Statement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
