// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/axento/books/ent/business"
	"github.com/axento/books/ent/financialposition"
	"github.com/axento/books/ent/predicate"
	"github.com/axento/books/ent/statement"
	"github.com/axento/books/ent/transaction"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBusiness          = "Business"
	TypeFinancialPosition = "FinancialPosition"
	TypeStatement         = "Statement"
	TypeTransaction       = "Transaction"
)

// BusinessMutation represents an operation that mutates the Business nodes in the graph.
type BusinessMutation struct {
	config
	op                                      Op
	typ                                     string
	id                                      *uuid.UUID
	created_at                              *time.Time
	updated_at                              *time.Time
	created_by                              *string
	updated_by                              *string
	source                                  *business.Source
	name                                    *string
	currency                                *string
	baseline_current_assets_cents           *int64
	addbaseline_current_assets_cents        *int64
	baseline_fixed_assets_cents             *int64
	addbaseline_fixed_assets_cents          *int64
	baseline_current_liabilities_cents      *int64
	addbaseline_current_liabilities_cents   *int64
	baseline_long_term_liabilities_cents    *int64
	addbaseline_long_term_liabilities_cents *int64
	baseline_common_stock_cents             *int64
	addbaseline_common_stock_cents          *int64
	clearedFields                           map[string]struct{}
	transactions                            map[uuid.UUID]struct{}
	removedtransactions                     map[uuid.UUID]struct{}
	clearedtransactions                     bool
	statements                              map[uuid.UUID]struct{}
	removedstatements                       map[uuid.UUID]struct{}
	clearedstatements                       bool
	position                                *uuid.UUID
	clearedposition                         bool
	done                                    bool
	oldValue                                func(context.Context) (*Business, error)
	predicates                              []predicate.Business
}

var _ ent.Mutation = (*BusinessMutation)(nil)

// businessOption allows management of the mutation configuration using functional options.
type businessOption func(*BusinessMutation)

// newBusinessMutation creates new mutation for the Business entity.
func newBusinessMutation(c config, op Op, opts ...businessOption) *BusinessMutation {
	m := &BusinessMutation{
		config:        c,
		op:            op,
		typ:           TypeBusiness,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusinessID sets the ID field of the mutation.
func withBusinessID(id uuid.UUID) businessOption {
	return func(m *BusinessMutation) {
		var (
			err   error
			once  sync.Once
			value *Business
		)
		m.oldValue = func(ctx context.Context) (*Business, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Business.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusiness sets the old Business of the mutation.
func withBusiness(node *Business) businessOption {
	return func(m *BusinessMutation) {
		m.oldValue = func(context.Context) (*Business, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusinessMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusinessMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Business entities.
func (m *BusinessMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusinessMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusinessMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Business.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BusinessMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BusinessMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BusinessMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BusinessMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BusinessMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BusinessMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *BusinessMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *BusinessMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *BusinessMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *BusinessMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *BusinessMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *BusinessMutation) ResetUpdatedBy() {
	m.updated_by = nil
}

// SetSource sets the "source" field.
func (m *BusinessMutation) SetSource(b business.Source) {
	m.source = &b
}

// Source returns the value of the "source" field in the mutation.
func (m *BusinessMutation) Source() (r business.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldSource(ctx context.Context) (v business.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *BusinessMutation) ResetSource() {
	m.source = nil
}

// SetName sets the "name" field.
func (m *BusinessMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BusinessMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BusinessMutation) ResetName() {
	m.name = nil
}

// SetCurrency sets the "currency" field.
func (m *BusinessMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *BusinessMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *BusinessMutation) ResetCurrency() {
	m.currency = nil
}

// SetBaselineCurrentAssetsCents sets the "baseline_current_assets_cents" field.
func (m *BusinessMutation) SetBaselineCurrentAssetsCents(i int64) {
	m.baseline_current_assets_cents = &i
	m.addbaseline_current_assets_cents = nil
}

// BaselineCurrentAssetsCents returns the value of the "baseline_current_assets_cents" field in the mutation.
func (m *BusinessMutation) BaselineCurrentAssetsCents() (r int64, exists bool) {
	v := m.baseline_current_assets_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineCurrentAssetsCents returns the old "baseline_current_assets_cents" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldBaselineCurrentAssetsCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineCurrentAssetsCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineCurrentAssetsCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineCurrentAssetsCents: %w", err)
	}
	return oldValue.BaselineCurrentAssetsCents, nil
}

// AddBaselineCurrentAssetsCents adds i to the "baseline_current_assets_cents" field.
func (m *BusinessMutation) AddBaselineCurrentAssetsCents(i int64) {
	if m.addbaseline_current_assets_cents != nil {
		*m.addbaseline_current_assets_cents += i
	} else {
		m.addbaseline_current_assets_cents = &i
	}
}

// AddedBaselineCurrentAssetsCents returns the value that was added to the "baseline_current_assets_cents" field in this mutation.
func (m *BusinessMutation) AddedBaselineCurrentAssetsCents() (r int64, exists bool) {
	v := m.addbaseline_current_assets_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaselineCurrentAssetsCents resets all changes to the "baseline_current_assets_cents" field.
func (m *BusinessMutation) ResetBaselineCurrentAssetsCents() {
	m.baseline_current_assets_cents = nil
	m.addbaseline_current_assets_cents = nil
}

// SetBaselineFixedAssetsCents sets the "baseline_fixed_assets_cents" field.
func (m *BusinessMutation) SetBaselineFixedAssetsCents(i int64) {
	m.baseline_fixed_assets_cents = &i
	m.addbaseline_fixed_assets_cents = nil
}

// BaselineFixedAssetsCents returns the value of the "baseline_fixed_assets_cents" field in the mutation.
func (m *BusinessMutation) BaselineFixedAssetsCents() (r int64, exists bool) {
	v := m.baseline_fixed_assets_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineFixedAssetsCents returns the old "baseline_fixed_assets_cents" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldBaselineFixedAssetsCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineFixedAssetsCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineFixedAssetsCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineFixedAssetsCents: %w", err)
	}
	return oldValue.BaselineFixedAssetsCents, nil
}

// AddBaselineFixedAssetsCents adds i to the "baseline_fixed_assets_cents" field.
func (m *BusinessMutation) AddBaselineFixedAssetsCents(i int64) {
	if m.addbaseline_fixed_assets_cents != nil {
		*m.addbaseline_fixed_assets_cents += i
	} else {
		m.addbaseline_fixed_assets_cents = &i
	}
}

// AddedBaselineFixedAssetsCents returns the value that was added to the "baseline_fixed_assets_cents" field in this mutation.
func (m *BusinessMutation) AddedBaselineFixedAssetsCents() (r int64, exists bool) {
	v := m.addbaseline_fixed_assets_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaselineFixedAssetsCents resets all changes to the "baseline_fixed_assets_cents" field.
func (m *BusinessMutation) ResetBaselineFixedAssetsCents() {
	m.baseline_fixed_assets_cents = nil
	m.addbaseline_fixed_assets_cents = nil
}

// SetBaselineCurrentLiabilitiesCents sets the "baseline_current_liabilities_cents" field.
func (m *BusinessMutation) SetBaselineCurrentLiabilitiesCents(i int64) {
	m.baseline_current_liabilities_cents = &i
	m.addbaseline_current_liabilities_cents = nil
}

// BaselineCurrentLiabilitiesCents returns the value of the "baseline_current_liabilities_cents" field in the mutation.
func (m *BusinessMutation) BaselineCurrentLiabilitiesCents() (r int64, exists bool) {
	v := m.baseline_current_liabilities_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineCurrentLiabilitiesCents returns the old "baseline_current_liabilities_cents" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldBaselineCurrentLiabilitiesCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineCurrentLiabilitiesCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineCurrentLiabilitiesCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineCurrentLiabilitiesCents: %w", err)
	}
	return oldValue.BaselineCurrentLiabilitiesCents, nil
}

// AddBaselineCurrentLiabilitiesCents adds i to the "baseline_current_liabilities_cents" field.
func (m *BusinessMutation) AddBaselineCurrentLiabilitiesCents(i int64) {
	if m.addbaseline_current_liabilities_cents != nil {
		*m.addbaseline_current_liabilities_cents += i
	} else {
		m.addbaseline_current_liabilities_cents = &i
	}
}

// AddedBaselineCurrentLiabilitiesCents returns the value that was added to the "baseline_current_liabilities_cents" field in this mutation.
func (m *BusinessMutation) AddedBaselineCurrentLiabilitiesCents() (r int64, exists bool) {
	v := m.addbaseline_current_liabilities_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaselineCurrentLiabilitiesCents resets all changes to the "baseline_current_liabilities_cents" field.
func (m *BusinessMutation) ResetBaselineCurrentLiabilitiesCents() {
	m.baseline_current_liabilities_cents = nil
	m.addbaseline_current_liabilities_cents = nil
}

// SetBaselineLongTermLiabilitiesCents sets the "baseline_long_term_liabilities_cents" field.
func (m *BusinessMutation) SetBaselineLongTermLiabilitiesCents(i int64) {
	m.baseline_long_term_liabilities_cents = &i
	m.addbaseline_long_term_liabilities_cents = nil
}

// BaselineLongTermLiabilitiesCents returns the value of the "baseline_long_term_liabilities_cents" field in the mutation.
func (m *BusinessMutation) BaselineLongTermLiabilitiesCents() (r int64, exists bool) {
	v := m.baseline_long_term_liabilities_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineLongTermLiabilitiesCents returns the old "baseline_long_term_liabilities_cents" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldBaselineLongTermLiabilitiesCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineLongTermLiabilitiesCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineLongTermLiabilitiesCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineLongTermLiabilitiesCents: %w", err)
	}
	return oldValue.BaselineLongTermLiabilitiesCents, nil
}

// AddBaselineLongTermLiabilitiesCents adds i to the "baseline_long_term_liabilities_cents" field.
func (m *BusinessMutation) AddBaselineLongTermLiabilitiesCents(i int64) {
	if m.addbaseline_long_term_liabilities_cents != nil {
		*m.addbaseline_long_term_liabilities_cents += i
	} else {
		m.addbaseline_long_term_liabilities_cents = &i
	}
}

// AddedBaselineLongTermLiabilitiesCents returns the value that was added to the "baseline_long_term_liabilities_cents" field in this mutation.
func (m *BusinessMutation) AddedBaselineLongTermLiabilitiesCents() (r int64, exists bool) {
	v := m.addbaseline_long_term_liabilities_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaselineLongTermLiabilitiesCents resets all changes to the "baseline_long_term_liabilities_cents" field.
func (m *BusinessMutation) ResetBaselineLongTermLiabilitiesCents() {
	m.baseline_long_term_liabilities_cents = nil
	m.addbaseline_long_term_liabilities_cents = nil
}

// SetBaselineCommonStockCents sets the "baseline_common_stock_cents" field.
func (m *BusinessMutation) SetBaselineCommonStockCents(i int64) {
	m.baseline_common_stock_cents = &i
	m.addbaseline_common_stock_cents = nil
}

// BaselineCommonStockCents returns the value of the "baseline_common_stock_cents" field in the mutation.
func (m *BusinessMutation) BaselineCommonStockCents() (r int64, exists bool) {
	v := m.baseline_common_stock_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineCommonStockCents returns the old "baseline_common_stock_cents" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldBaselineCommonStockCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineCommonStockCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineCommonStockCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineCommonStockCents: %w", err)
	}
	return oldValue.BaselineCommonStockCents, nil
}

// AddBaselineCommonStockCents adds i to the "baseline_common_stock_cents" field.
func (m *BusinessMutation) AddBaselineCommonStockCents(i int64) {
	if m.addbaseline_common_stock_cents != nil {
		*m.addbaseline_common_stock_cents += i
	} else {
		m.addbaseline_common_stock_cents = &i
	}
}

// AddedBaselineCommonStockCents returns the value that was added to the "baseline_common_stock_cents" field in this mutation.
func (m *BusinessMutation) AddedBaselineCommonStockCents() (r int64, exists bool) {
	v := m.addbaseline_common_stock_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaselineCommonStockCents resets all changes to the "baseline_common_stock_cents" field.
func (m *BusinessMutation) ResetBaselineCommonStockCents() {
	m.baseline_common_stock_cents = nil
	m.addbaseline_common_stock_cents = nil
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by ids.
func (m *BusinessMutation) AddTransactionIDs(ids ...uuid.UUID) {
	if m.transactions == nil {
		m.transactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the Transaction entity.
func (m *BusinessMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the Transaction entity was cleared.
func (m *BusinessMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the Transaction entity by IDs.
func (m *BusinessMutation) RemoveTransactionIDs(ids ...uuid.UUID) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the Transaction entity.
func (m *BusinessMutation) RemovedTransactionsIDs() (ids []uuid.UUID) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *BusinessMutation) TransactionsIDs() (ids []uuid.UUID) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *BusinessMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// AddStatementIDs adds the "statements" edge to the Statement entity by ids.
func (m *BusinessMutation) AddStatementIDs(ids ...uuid.UUID) {
	if m.statements == nil {
		m.statements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.statements[ids[i]] = struct{}{}
	}
}

// ClearStatements clears the "statements" edge to the Statement entity.
func (m *BusinessMutation) ClearStatements() {
	m.clearedstatements = true
}

// StatementsCleared reports if the "statements" edge to the Statement entity was cleared.
func (m *BusinessMutation) StatementsCleared() bool {
	return m.clearedstatements
}

// RemoveStatementIDs removes the "statements" edge to the Statement entity by IDs.
func (m *BusinessMutation) RemoveStatementIDs(ids ...uuid.UUID) {
	if m.removedstatements == nil {
		m.removedstatements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.statements, ids[i])
		m.removedstatements[ids[i]] = struct{}{}
	}
}

// RemovedStatements returns the removed IDs of the "statements" edge to the Statement entity.
func (m *BusinessMutation) RemovedStatementsIDs() (ids []uuid.UUID) {
	for id := range m.removedstatements {
		ids = append(ids, id)
	}
	return
}

// StatementsIDs returns the "statements" edge IDs in the mutation.
func (m *BusinessMutation) StatementsIDs() (ids []uuid.UUID) {
	for id := range m.statements {
		ids = append(ids, id)
	}
	return
}

// ResetStatements resets all changes to the "statements" edge.
func (m *BusinessMutation) ResetStatements() {
	m.statements = nil
	m.clearedstatements = false
	m.removedstatements = nil
}

// SetPositionID sets the "position" edge to the FinancialPosition entity by id.
func (m *BusinessMutation) SetPositionID(id uuid.UUID) {
	m.position = &id
}

// ClearPosition clears the "position" edge to the FinancialPosition entity.
func (m *BusinessMutation) ClearPosition() {
	m.clearedposition = true
}

// PositionCleared reports if the "position" edge to the FinancialPosition entity was cleared.
func (m *BusinessMutation) PositionCleared() bool {
	return m.clearedposition
}

// PositionID returns the "position" edge ID in the mutation.
func (m *BusinessMutation) PositionID() (id uuid.UUID, exists bool) {
	if m.position != nil {
		return *m.position, true
	}
	return
}

// PositionIDs returns the "position" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PositionID instead. It exists only for internal usage by the builders.
func (m *BusinessMutation) PositionIDs() (ids []uuid.UUID) {
	if id := m.position; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPosition resets all changes to the "position" edge.
func (m *BusinessMutation) ResetPosition() {
	m.position = nil
	m.clearedposition = false
}

// Where appends a list predicates to the BusinessMutation builder.
func (m *BusinessMutation) Where(ps ...predicate.Business) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusinessMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusinessMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Business, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusinessMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusinessMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Business).
func (m *BusinessMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusinessMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, business.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, business.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, business.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, business.FieldUpdatedBy)
	}
	if m.source != nil {
		fields = append(fields, business.FieldSource)
	}
	if m.name != nil {
		fields = append(fields, business.FieldName)
	}
	if m.currency != nil {
		fields = append(fields, business.FieldCurrency)
	}
	if m.baseline_current_assets_cents != nil {
		fields = append(fields, business.FieldBaselineCurrentAssetsCents)
	}
	if m.baseline_fixed_assets_cents != nil {
		fields = append(fields, business.FieldBaselineFixedAssetsCents)
	}
	if m.baseline_current_liabilities_cents != nil {
		fields = append(fields, business.FieldBaselineCurrentLiabilitiesCents)
	}
	if m.baseline_long_term_liabilities_cents != nil {
		fields = append(fields, business.FieldBaselineLongTermLiabilitiesCents)
	}
	if m.baseline_common_stock_cents != nil {
		fields = append(fields, business.FieldBaselineCommonStockCents)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusinessMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case business.FieldCreatedAt:
		return m.CreatedAt()
	case business.FieldUpdatedAt:
		return m.UpdatedAt()
	case business.FieldCreatedBy:
		return m.CreatedBy()
	case business.FieldUpdatedBy:
		return m.UpdatedBy()
	case business.FieldSource:
		return m.Source()
	case business.FieldName:
		return m.Name()
	case business.FieldCurrency:
		return m.Currency()
	case business.FieldBaselineCurrentAssetsCents:
		return m.BaselineCurrentAssetsCents()
	case business.FieldBaselineFixedAssetsCents:
		return m.BaselineFixedAssetsCents()
	case business.FieldBaselineCurrentLiabilitiesCents:
		return m.BaselineCurrentLiabilitiesCents()
	case business.FieldBaselineLongTermLiabilitiesCents:
		return m.BaselineLongTermLiabilitiesCents()
	case business.FieldBaselineCommonStockCents:
		return m.BaselineCommonStockCents()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusinessMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case business.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case business.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case business.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case business.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case business.FieldSource:
		return m.OldSource(ctx)
	case business.FieldName:
		return m.OldName(ctx)
	case business.FieldCurrency:
		return m.OldCurrency(ctx)
	case business.FieldBaselineCurrentAssetsCents:
		return m.OldBaselineCurrentAssetsCents(ctx)
	case business.FieldBaselineFixedAssetsCents:
		return m.OldBaselineFixedAssetsCents(ctx)
	case business.FieldBaselineCurrentLiabilitiesCents:
		return m.OldBaselineCurrentLiabilitiesCents(ctx)
	case business.FieldBaselineLongTermLiabilitiesCents:
		return m.OldBaselineLongTermLiabilitiesCents(ctx)
	case business.FieldBaselineCommonStockCents:
		return m.OldBaselineCommonStockCents(ctx)
	}
	return nil, fmt.Errorf("unknown Business field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessMutation) SetField(name string, value ent.Value) error {
	switch name {
	case business.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case business.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case business.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case business.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case business.FieldSource:
		v, ok := value.(business.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case business.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case business.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case business.FieldBaselineCurrentAssetsCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineCurrentAssetsCents(v)
		return nil
	case business.FieldBaselineFixedAssetsCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineFixedAssetsCents(v)
		return nil
	case business.FieldBaselineCurrentLiabilitiesCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineCurrentLiabilitiesCents(v)
		return nil
	case business.FieldBaselineLongTermLiabilitiesCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineLongTermLiabilitiesCents(v)
		return nil
	case business.FieldBaselineCommonStockCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineCommonStockCents(v)
		return nil
	}
	return fmt.Errorf("unknown Business field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusinessMutation) AddedFields() []string {
	var fields []string
	if m.addbaseline_current_assets_cents != nil {
		fields = append(fields, business.FieldBaselineCurrentAssetsCents)
	}
	if m.addbaseline_fixed_assets_cents != nil {
		fields = append(fields, business.FieldBaselineFixedAssetsCents)
	}
	if m.addbaseline_current_liabilities_cents != nil {
		fields = append(fields, business.FieldBaselineCurrentLiabilitiesCents)
	}
	if m.addbaseline_long_term_liabilities_cents != nil {
		fields = append(fields, business.FieldBaselineLongTermLiabilitiesCents)
	}
	if m.addbaseline_common_stock_cents != nil {
		fields = append(fields, business.FieldBaselineCommonStockCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusinessMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case business.FieldBaselineCurrentAssetsCents:
		return m.AddedBaselineCurrentAssetsCents()
	case business.FieldBaselineFixedAssetsCents:
		return m.AddedBaselineFixedAssetsCents()
	case business.FieldBaselineCurrentLiabilitiesCents:
		return m.AddedBaselineCurrentLiabilitiesCents()
	case business.FieldBaselineLongTermLiabilitiesCents:
		return m.AddedBaselineLongTermLiabilitiesCents()
	case business.FieldBaselineCommonStockCents:
		return m.AddedBaselineCommonStockCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessMutation) AddField(name string, value ent.Value) error {
	switch name {
	case business.FieldBaselineCurrentAssetsCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaselineCurrentAssetsCents(v)
		return nil
	case business.FieldBaselineFixedAssetsCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaselineFixedAssetsCents(v)
		return nil
	case business.FieldBaselineCurrentLiabilitiesCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaselineCurrentLiabilitiesCents(v)
		return nil
	case business.FieldBaselineLongTermLiabilitiesCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaselineLongTermLiabilitiesCents(v)
		return nil
	case business.FieldBaselineCommonStockCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaselineCommonStockCents(v)
		return nil
	}
	return fmt.Errorf("unknown Business numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusinessMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusinessMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusinessMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Business nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusinessMutation) ResetField(name string) error {
	switch name {
	case business.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case business.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case business.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case business.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case business.FieldSource:
		m.ResetSource()
		return nil
	case business.FieldName:
		m.ResetName()
		return nil
	case business.FieldCurrency:
		m.ResetCurrency()
		return nil
	case business.FieldBaselineCurrentAssetsCents:
		m.ResetBaselineCurrentAssetsCents()
		return nil
	case business.FieldBaselineFixedAssetsCents:
		m.ResetBaselineFixedAssetsCents()
		return nil
	case business.FieldBaselineCurrentLiabilitiesCents:
		m.ResetBaselineCurrentLiabilitiesCents()
		return nil
	case business.FieldBaselineLongTermLiabilitiesCents:
		m.ResetBaselineLongTermLiabilitiesCents()
		return nil
	case business.FieldBaselineCommonStockCents:
		m.ResetBaselineCommonStockCents()
		return nil
	}
	return fmt.Errorf("unknown Business field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusinessMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.transactions != nil {
		edges = append(edges, business.EdgeTransactions)
	}
	if m.statements != nil {
		edges = append(edges, business.EdgeStatements)
	}
	if m.position != nil {
		edges = append(edges, business.EdgePosition)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusinessMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case business.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	case business.EdgeStatements:
		ids := make([]ent.Value, 0, len(m.statements))
		for id := range m.statements {
			ids = append(ids, id)
		}
		return ids
	case business.EdgePosition:
		if id := m.position; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusinessMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtransactions != nil {
		edges = append(edges, business.EdgeTransactions)
	}
	if m.removedstatements != nil {
		edges = append(edges, business.EdgeStatements)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusinessMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case business.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	case business.EdgeStatements:
		ids := make([]ent.Value, 0, len(m.removedstatements))
		for id := range m.removedstatements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusinessMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtransactions {
		edges = append(edges, business.EdgeTransactions)
	}
	if m.clearedstatements {
		edges = append(edges, business.EdgeStatements)
	}
	if m.clearedposition {
		edges = append(edges, business.EdgePosition)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusinessMutation) EdgeCleared(name string) bool {
	switch name {
	case business.EdgeTransactions:
		return m.clearedtransactions
	case business.EdgeStatements:
		return m.clearedstatements
	case business.EdgePosition:
		return m.clearedposition
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusinessMutation) ClearEdge(name string) error {
	switch name {
	case business.EdgePosition:
		m.ClearPosition()
		return nil
	}
	return fmt.Errorf("unknown Business unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusinessMutation) ResetEdge(name string) error {
	switch name {
	case business.EdgeTransactions:
		m.ResetTransactions()
		return nil
	case business.EdgeStatements:
		m.ResetStatements()
		return nil
	case business.EdgePosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown Business edge %s", name)
}

// FinancialPositionMutation represents an operation that mutates the FinancialPosition nodes in the graph.
type FinancialPositionMutation struct {
	config
	op                             Op
	typ                            string
	id                             *uuid.UUID
	created_at                     *time.Time
	updated_at                     *time.Time
	created_by                     *string
	updated_by                     *string
	source                         *financialposition.Source
	current_assets_cents           *int64
	addcurrent_assets_cents        *int64
	fixed_assets_cents             *int64
	addfixed_assets_cents          *int64
	current_liabilities_cents      *int64
	addcurrent_liabilities_cents   *int64
	long_term_liabilities_cents    *int64
	addlong_term_liabilities_cents *int64
	common_stock_cents             *int64
	addcommon_stock_cents          *int64
	retained_earnings_cents        *int64
	addretained_earnings_cents     *int64
	total_assets_cents             *int64
	addtotal_assets_cents          *int64
	total_liabilities_cents        *int64
	addtotal_liabilities_cents     *int64
	total_equity_cents             *int64
	addtotal_equity_cents          *int64
	net_worth_cents                *int64
	addnet_worth_cents             *int64
	clearedFields                  map[string]struct{}
	business                       *uuid.UUID
	clearedbusiness                bool
	done                           bool
	oldValue                       func(context.Context) (*FinancialPosition, error)
	predicates                     []predicate.FinancialPosition
}

var _ ent.Mutation = (*FinancialPositionMutation)(nil)

// financialpositionOption allows management of the mutation configuration using functional options.
type financialpositionOption func(*FinancialPositionMutation)

// newFinancialPositionMutation creates new mutation for the FinancialPosition entity.
func newFinancialPositionMutation(c config, op Op, opts ...financialpositionOption) *FinancialPositionMutation {
	m := &FinancialPositionMutation{
		config:        c,
		op:            op,
		typ:           TypeFinancialPosition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFinancialPositionID sets the ID field of the mutation.
func withFinancialPositionID(id uuid.UUID) financialpositionOption {
	return func(m *FinancialPositionMutation) {
		var (
			err   error
			once  sync.Once
			value *FinancialPosition
		)
		m.oldValue = func(ctx context.Context) (*FinancialPosition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FinancialPosition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFinancialPosition sets the old FinancialPosition of the mutation.
func withFinancialPosition(node *FinancialPosition) financialpositionOption {
	return func(m *FinancialPositionMutation) {
		m.oldValue = func(context.Context) (*FinancialPosition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FinancialPositionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FinancialPositionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FinancialPosition entities.
func (m *FinancialPositionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FinancialPositionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FinancialPositionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FinancialPosition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FinancialPositionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FinancialPositionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FinancialPositionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FinancialPositionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FinancialPositionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FinancialPositionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *FinancialPositionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *FinancialPositionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *FinancialPositionMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *FinancialPositionMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *FinancialPositionMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *FinancialPositionMutation) ResetUpdatedBy() {
	m.updated_by = nil
}

// SetSource sets the "source" field.
func (m *FinancialPositionMutation) SetSource(f financialposition.Source) {
	m.source = &f
}

// Source returns the value of the "source" field in the mutation.
func (m *FinancialPositionMutation) Source() (r financialposition.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldSource(ctx context.Context) (v financialposition.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *FinancialPositionMutation) ResetSource() {
	m.source = nil
}

// SetCurrentAssetsCents sets the "current_assets_cents" field.
func (m *FinancialPositionMutation) SetCurrentAssetsCents(i int64) {
	m.current_assets_cents = &i
	m.addcurrent_assets_cents = nil
}

// CurrentAssetsCents returns the value of the "current_assets_cents" field in the mutation.
func (m *FinancialPositionMutation) CurrentAssetsCents() (r int64, exists bool) {
	v := m.current_assets_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentAssetsCents returns the old "current_assets_cents" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldCurrentAssetsCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentAssetsCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentAssetsCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentAssetsCents: %w", err)
	}
	return oldValue.CurrentAssetsCents, nil
}

// AddCurrentAssetsCents adds i to the "current_assets_cents" field.
func (m *FinancialPositionMutation) AddCurrentAssetsCents(i int64) {
	if m.addcurrent_assets_cents != nil {
		*m.addcurrent_assets_cents += i
	} else {
		m.addcurrent_assets_cents = &i
	}
}

// AddedCurrentAssetsCents returns the value that was added to the "current_assets_cents" field in this mutation.
func (m *FinancialPositionMutation) AddedCurrentAssetsCents() (r int64, exists bool) {
	v := m.addcurrent_assets_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentAssetsCents resets all changes to the "current_assets_cents" field.
func (m *FinancialPositionMutation) ResetCurrentAssetsCents() {
	m.current_assets_cents = nil
	m.addcurrent_assets_cents = nil
}

// SetFixedAssetsCents sets the "fixed_assets_cents" field.
func (m *FinancialPositionMutation) SetFixedAssetsCents(i int64) {
	m.fixed_assets_cents = &i
	m.addfixed_assets_cents = nil
}

// FixedAssetsCents returns the value of the "fixed_assets_cents" field in the mutation.
func (m *FinancialPositionMutation) FixedAssetsCents() (r int64, exists bool) {
	v := m.fixed_assets_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldFixedAssetsCents returns the old "fixed_assets_cents" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldFixedAssetsCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFixedAssetsCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFixedAssetsCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFixedAssetsCents: %w", err)
	}
	return oldValue.FixedAssetsCents, nil
}

// AddFixedAssetsCents adds i to the "fixed_assets_cents" field.
func (m *FinancialPositionMutation) AddFixedAssetsCents(i int64) {
	if m.addfixed_assets_cents != nil {
		*m.addfixed_assets_cents += i
	} else {
		m.addfixed_assets_cents = &i
	}
}

// AddedFixedAssetsCents returns the value that was added to the "fixed_assets_cents" field in this mutation.
func (m *FinancialPositionMutation) AddedFixedAssetsCents() (r int64, exists bool) {
	v := m.addfixed_assets_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetFixedAssetsCents resets all changes to the "fixed_assets_cents" field.
func (m *FinancialPositionMutation) ResetFixedAssetsCents() {
	m.fixed_assets_cents = nil
	m.addfixed_assets_cents = nil
}

// SetCurrentLiabilitiesCents sets the "current_liabilities_cents" field.
func (m *FinancialPositionMutation) SetCurrentLiabilitiesCents(i int64) {
	m.current_liabilities_cents = &i
	m.addcurrent_liabilities_cents = nil
}

// CurrentLiabilitiesCents returns the value of the "current_liabilities_cents" field in the mutation.
func (m *FinancialPositionMutation) CurrentLiabilitiesCents() (r int64, exists bool) {
	v := m.current_liabilities_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentLiabilitiesCents returns the old "current_liabilities_cents" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldCurrentLiabilitiesCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentLiabilitiesCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentLiabilitiesCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentLiabilitiesCents: %w", err)
	}
	return oldValue.CurrentLiabilitiesCents, nil
}

// AddCurrentLiabilitiesCents adds i to the "current_liabilities_cents" field.
func (m *FinancialPositionMutation) AddCurrentLiabilitiesCents(i int64) {
	if m.addcurrent_liabilities_cents != nil {
		*m.addcurrent_liabilities_cents += i
	} else {
		m.addcurrent_liabilities_cents = &i
	}
}

// AddedCurrentLiabilitiesCents returns the value that was added to the "current_liabilities_cents" field in this mutation.
func (m *FinancialPositionMutation) AddedCurrentLiabilitiesCents() (r int64, exists bool) {
	v := m.addcurrent_liabilities_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentLiabilitiesCents resets all changes to the "current_liabilities_cents" field.
func (m *FinancialPositionMutation) ResetCurrentLiabilitiesCents() {
	m.current_liabilities_cents = nil
	m.addcurrent_liabilities_cents = nil
}

// SetLongTermLiabilitiesCents sets the "long_term_liabilities_cents" field.
func (m *FinancialPositionMutation) SetLongTermLiabilitiesCents(i int64) {
	m.long_term_liabilities_cents = &i
	m.addlong_term_liabilities_cents = nil
}

// LongTermLiabilitiesCents returns the value of the "long_term_liabilities_cents" field in the mutation.
func (m *FinancialPositionMutation) LongTermLiabilitiesCents() (r int64, exists bool) {
	v := m.long_term_liabilities_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldLongTermLiabilitiesCents returns the old "long_term_liabilities_cents" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldLongTermLiabilitiesCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongTermLiabilitiesCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongTermLiabilitiesCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongTermLiabilitiesCents: %w", err)
	}
	return oldValue.LongTermLiabilitiesCents, nil
}

// AddLongTermLiabilitiesCents adds i to the "long_term_liabilities_cents" field.
func (m *FinancialPositionMutation) AddLongTermLiabilitiesCents(i int64) {
	if m.addlong_term_liabilities_cents != nil {
		*m.addlong_term_liabilities_cents += i
	} else {
		m.addlong_term_liabilities_cents = &i
	}
}

// AddedLongTermLiabilitiesCents returns the value that was added to the "long_term_liabilities_cents" field in this mutation.
func (m *FinancialPositionMutation) AddedLongTermLiabilitiesCents() (r int64, exists bool) {
	v := m.addlong_term_liabilities_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongTermLiabilitiesCents resets all changes to the "long_term_liabilities_cents" field.
func (m *FinancialPositionMutation) ResetLongTermLiabilitiesCents() {
	m.long_term_liabilities_cents = nil
	m.addlong_term_liabilities_cents = nil
}

// SetCommonStockCents sets the "common_stock_cents" field.
func (m *FinancialPositionMutation) SetCommonStockCents(i int64) {
	m.common_stock_cents = &i
	m.addcommon_stock_cents = nil
}

// CommonStockCents returns the value of the "common_stock_cents" field in the mutation.
func (m *FinancialPositionMutation) CommonStockCents() (r int64, exists bool) {
	v := m.common_stock_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldCommonStockCents returns the old "common_stock_cents" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldCommonStockCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommonStockCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommonStockCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommonStockCents: %w", err)
	}
	return oldValue.CommonStockCents, nil
}

// AddCommonStockCents adds i to the "common_stock_cents" field.
func (m *FinancialPositionMutation) AddCommonStockCents(i int64) {
	if m.addcommon_stock_cents != nil {
		*m.addcommon_stock_cents += i
	} else {
		m.addcommon_stock_cents = &i
	}
}

// AddedCommonStockCents returns the value that was added to the "common_stock_cents" field in this mutation.
func (m *FinancialPositionMutation) AddedCommonStockCents() (r int64, exists bool) {
	v := m.addcommon_stock_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommonStockCents resets all changes to the "common_stock_cents" field.
func (m *FinancialPositionMutation) ResetCommonStockCents() {
	m.common_stock_cents = nil
	m.addcommon_stock_cents = nil
}

// SetRetainedEarningsCents sets the "retained_earnings_cents" field.
func (m *FinancialPositionMutation) SetRetainedEarningsCents(i int64) {
	m.retained_earnings_cents = &i
	m.addretained_earnings_cents = nil
}

// RetainedEarningsCents returns the value of the "retained_earnings_cents" field in the mutation.
func (m *FinancialPositionMutation) RetainedEarningsCents() (r int64, exists bool) {
	v := m.retained_earnings_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldRetainedEarningsCents returns the old "retained_earnings_cents" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldRetainedEarningsCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetainedEarningsCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetainedEarningsCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetainedEarningsCents: %w", err)
	}
	return oldValue.RetainedEarningsCents, nil
}

// AddRetainedEarningsCents adds i to the "retained_earnings_cents" field.
func (m *FinancialPositionMutation) AddRetainedEarningsCents(i int64) {
	if m.addretained_earnings_cents != nil {
		*m.addretained_earnings_cents += i
	} else {
		m.addretained_earnings_cents = &i
	}
}

// AddedRetainedEarningsCents returns the value that was added to the "retained_earnings_cents" field in this mutation.
func (m *FinancialPositionMutation) AddedRetainedEarningsCents() (r int64, exists bool) {
	v := m.addretained_earnings_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetainedEarningsCents resets all changes to the "retained_earnings_cents" field.
func (m *FinancialPositionMutation) ResetRetainedEarningsCents() {
	m.retained_earnings_cents = nil
	m.addretained_earnings_cents = nil
}

// SetTotalAssetsCents sets the "total_assets_cents" field.
func (m *FinancialPositionMutation) SetTotalAssetsCents(i int64) {
	m.total_assets_cents = &i
	m.addtotal_assets_cents = nil
}

// TotalAssetsCents returns the value of the "total_assets_cents" field in the mutation.
func (m *FinancialPositionMutation) TotalAssetsCents() (r int64, exists bool) {
	v := m.total_assets_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAssetsCents returns the old "total_assets_cents" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldTotalAssetsCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAssetsCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAssetsCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAssetsCents: %w", err)
	}
	return oldValue.TotalAssetsCents, nil
}

// AddTotalAssetsCents adds i to the "total_assets_cents" field.
func (m *FinancialPositionMutation) AddTotalAssetsCents(i int64) {
	if m.addtotal_assets_cents != nil {
		*m.addtotal_assets_cents += i
	} else {
		m.addtotal_assets_cents = &i
	}
}

// AddedTotalAssetsCents returns the value that was added to the "total_assets_cents" field in this mutation.
func (m *FinancialPositionMutation) AddedTotalAssetsCents() (r int64, exists bool) {
	v := m.addtotal_assets_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAssetsCents resets all changes to the "total_assets_cents" field.
func (m *FinancialPositionMutation) ResetTotalAssetsCents() {
	m.total_assets_cents = nil
	m.addtotal_assets_cents = nil
}

// SetTotalLiabilitiesCents sets the "total_liabilities_cents" field.
func (m *FinancialPositionMutation) SetTotalLiabilitiesCents(i int64) {
	m.total_liabilities_cents = &i
	m.addtotal_liabilities_cents = nil
}

// TotalLiabilitiesCents returns the value of the "total_liabilities_cents" field in the mutation.
func (m *FinancialPositionMutation) TotalLiabilitiesCents() (r int64, exists bool) {
	v := m.total_liabilities_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalLiabilitiesCents returns the old "total_liabilities_cents" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldTotalLiabilitiesCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalLiabilitiesCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalLiabilitiesCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalLiabilitiesCents: %w", err)
	}
	return oldValue.TotalLiabilitiesCents, nil
}

// AddTotalLiabilitiesCents adds i to the "total_liabilities_cents" field.
func (m *FinancialPositionMutation) AddTotalLiabilitiesCents(i int64) {
	if m.addtotal_liabilities_cents != nil {
		*m.addtotal_liabilities_cents += i
	} else {
		m.addtotal_liabilities_cents = &i
	}
}

// AddedTotalLiabilitiesCents returns the value that was added to the "total_liabilities_cents" field in this mutation.
func (m *FinancialPositionMutation) AddedTotalLiabilitiesCents() (r int64, exists bool) {
	v := m.addtotal_liabilities_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalLiabilitiesCents resets all changes to the "total_liabilities_cents" field.
func (m *FinancialPositionMutation) ResetTotalLiabilitiesCents() {
	m.total_liabilities_cents = nil
	m.addtotal_liabilities_cents = nil
}

// SetTotalEquityCents sets the "total_equity_cents" field.
func (m *FinancialPositionMutation) SetTotalEquityCents(i int64) {
	m.total_equity_cents = &i
	m.addtotal_equity_cents = nil
}

// TotalEquityCents returns the value of the "total_equity_cents" field in the mutation.
func (m *FinancialPositionMutation) TotalEquityCents() (r int64, exists bool) {
	v := m.total_equity_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalEquityCents returns the old "total_equity_cents" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldTotalEquityCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalEquityCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalEquityCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalEquityCents: %w", err)
	}
	return oldValue.TotalEquityCents, nil
}

// AddTotalEquityCents adds i to the "total_equity_cents" field.
func (m *FinancialPositionMutation) AddTotalEquityCents(i int64) {
	if m.addtotal_equity_cents != nil {
		*m.addtotal_equity_cents += i
	} else {
		m.addtotal_equity_cents = &i
	}
}

// AddedTotalEquityCents returns the value that was added to the "total_equity_cents" field in this mutation.
func (m *FinancialPositionMutation) AddedTotalEquityCents() (r int64, exists bool) {
	v := m.addtotal_equity_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalEquityCents resets all changes to the "total_equity_cents" field.
func (m *FinancialPositionMutation) ResetTotalEquityCents() {
	m.total_equity_cents = nil
	m.addtotal_equity_cents = nil
}

// SetNetWorthCents sets the "net_worth_cents" field.
func (m *FinancialPositionMutation) SetNetWorthCents(i int64) {
	m.net_worth_cents = &i
	m.addnet_worth_cents = nil
}

// NetWorthCents returns the value of the "net_worth_cents" field in the mutation.
func (m *FinancialPositionMutation) NetWorthCents() (r int64, exists bool) {
	v := m.net_worth_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldNetWorthCents returns the old "net_worth_cents" field's value of the FinancialPosition entity.
// If the FinancialPosition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialPositionMutation) OldNetWorthCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetWorthCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetWorthCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetWorthCents: %w", err)
	}
	return oldValue.NetWorthCents, nil
}

// AddNetWorthCents adds i to the "net_worth_cents" field.
func (m *FinancialPositionMutation) AddNetWorthCents(i int64) {
	if m.addnet_worth_cents != nil {
		*m.addnet_worth_cents += i
	} else {
		m.addnet_worth_cents = &i
	}
}

// AddedNetWorthCents returns the value that was added to the "net_worth_cents" field in this mutation.
func (m *FinancialPositionMutation) AddedNetWorthCents() (r int64, exists bool) {
	v := m.addnet_worth_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetNetWorthCents resets all changes to the "net_worth_cents" field.
func (m *FinancialPositionMutation) ResetNetWorthCents() {
	m.net_worth_cents = nil
	m.addnet_worth_cents = nil
}

// SetBusinessID sets the "business" edge to the Business entity by id.
func (m *FinancialPositionMutation) SetBusinessID(id uuid.UUID) {
	m.business = &id
}

// ClearBusiness clears the "business" edge to the Business entity.
func (m *FinancialPositionMutation) ClearBusiness() {
	m.clearedbusiness = true
}

// BusinessCleared reports if the "business" edge to the Business entity was cleared.
func (m *FinancialPositionMutation) BusinessCleared() bool {
	return m.clearedbusiness
}

// BusinessID returns the "business" edge ID in the mutation.
func (m *FinancialPositionMutation) BusinessID() (id uuid.UUID, exists bool) {
	if m.business != nil {
		return *m.business, true
	}
	return
}

// BusinessIDs returns the "business" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BusinessID instead. It exists only for internal usage by the builders.
func (m *FinancialPositionMutation) BusinessIDs() (ids []uuid.UUID) {
	if id := m.business; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBusiness resets all changes to the "business" edge.
func (m *FinancialPositionMutation) ResetBusiness() {
	m.business = nil
	m.clearedbusiness = false
}

// Where appends a list predicates to the FinancialPositionMutation builder.
func (m *FinancialPositionMutation) Where(ps ...predicate.FinancialPosition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FinancialPositionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FinancialPositionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FinancialPosition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FinancialPositionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FinancialPositionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FinancialPosition).
func (m *FinancialPositionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FinancialPositionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, financialposition.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, financialposition.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, financialposition.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, financialposition.FieldUpdatedBy)
	}
	if m.source != nil {
		fields = append(fields, financialposition.FieldSource)
	}
	if m.current_assets_cents != nil {
		fields = append(fields, financialposition.FieldCurrentAssetsCents)
	}
	if m.fixed_assets_cents != nil {
		fields = append(fields, financialposition.FieldFixedAssetsCents)
	}
	if m.current_liabilities_cents != nil {
		fields = append(fields, financialposition.FieldCurrentLiabilitiesCents)
	}
	if m.long_term_liabilities_cents != nil {
		fields = append(fields, financialposition.FieldLongTermLiabilitiesCents)
	}
	if m.common_stock_cents != nil {
		fields = append(fields, financialposition.FieldCommonStockCents)
	}
	if m.retained_earnings_cents != nil {
		fields = append(fields, financialposition.FieldRetainedEarningsCents)
	}
	if m.total_assets_cents != nil {
		fields = append(fields, financialposition.FieldTotalAssetsCents)
	}
	if m.total_liabilities_cents != nil {
		fields = append(fields, financialposition.FieldTotalLiabilitiesCents)
	}
	if m.total_equity_cents != nil {
		fields = append(fields, financialposition.FieldTotalEquityCents)
	}
	if m.net_worth_cents != nil {
		fields = append(fields, financialposition.FieldNetWorthCents)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FinancialPositionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case financialposition.FieldCreatedAt:
		return m.CreatedAt()
	case financialposition.FieldUpdatedAt:
		return m.UpdatedAt()
	case financialposition.FieldCreatedBy:
		return m.CreatedBy()
	case financialposition.FieldUpdatedBy:
		return m.UpdatedBy()
	case financialposition.FieldSource:
		return m.Source()
	case financialposition.FieldCurrentAssetsCents:
		return m.CurrentAssetsCents()
	case financialposition.FieldFixedAssetsCents:
		return m.FixedAssetsCents()
	case financialposition.FieldCurrentLiabilitiesCents:
		return m.CurrentLiabilitiesCents()
	case financialposition.FieldLongTermLiabilitiesCents:
		return m.LongTermLiabilitiesCents()
	case financialposition.FieldCommonStockCents:
		return m.CommonStockCents()
	case financialposition.FieldRetainedEarningsCents:
		return m.RetainedEarningsCents()
	case financialposition.FieldTotalAssetsCents:
		return m.TotalAssetsCents()
	case financialposition.FieldTotalLiabilitiesCents:
		return m.TotalLiabilitiesCents()
	case financialposition.FieldTotalEquityCents:
		return m.TotalEquityCents()
	case financialposition.FieldNetWorthCents:
		return m.NetWorthCents()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FinancialPositionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case financialposition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case financialposition.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case financialposition.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case financialposition.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case financialposition.FieldSource:
		return m.OldSource(ctx)
	case financialposition.FieldCurrentAssetsCents:
		return m.OldCurrentAssetsCents(ctx)
	case financialposition.FieldFixedAssetsCents:
		return m.OldFixedAssetsCents(ctx)
	case financialposition.FieldCurrentLiabilitiesCents:
		return m.OldCurrentLiabilitiesCents(ctx)
	case financialposition.FieldLongTermLiabilitiesCents:
		return m.OldLongTermLiabilitiesCents(ctx)
	case financialposition.FieldCommonStockCents:
		return m.OldCommonStockCents(ctx)
	case financialposition.FieldRetainedEarningsCents:
		return m.OldRetainedEarningsCents(ctx)
	case financialposition.FieldTotalAssetsCents:
		return m.OldTotalAssetsCents(ctx)
	case financialposition.FieldTotalLiabilitiesCents:
		return m.OldTotalLiabilitiesCents(ctx)
	case financialposition.FieldTotalEquityCents:
		return m.OldTotalEquityCents(ctx)
	case financialposition.FieldNetWorthCents:
		return m.OldNetWorthCents(ctx)
	}
	return nil, fmt.Errorf("unknown FinancialPosition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FinancialPositionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case financialposition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case financialposition.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case financialposition.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case financialposition.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case financialposition.FieldSource:
		v, ok := value.(financialposition.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case financialposition.FieldCurrentAssetsCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentAssetsCents(v)
		return nil
	case financialposition.FieldFixedAssetsCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFixedAssetsCents(v)
		return nil
	case financialposition.FieldCurrentLiabilitiesCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentLiabilitiesCents(v)
		return nil
	case financialposition.FieldLongTermLiabilitiesCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongTermLiabilitiesCents(v)
		return nil
	case financialposition.FieldCommonStockCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommonStockCents(v)
		return nil
	case financialposition.FieldRetainedEarningsCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetainedEarningsCents(v)
		return nil
	case financialposition.FieldTotalAssetsCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAssetsCents(v)
		return nil
	case financialposition.FieldTotalLiabilitiesCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalLiabilitiesCents(v)
		return nil
	case financialposition.FieldTotalEquityCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalEquityCents(v)
		return nil
	case financialposition.FieldNetWorthCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetWorthCents(v)
		return nil
	}
	return fmt.Errorf("unknown FinancialPosition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FinancialPositionMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_assets_cents != nil {
		fields = append(fields, financialposition.FieldCurrentAssetsCents)
	}
	if m.addfixed_assets_cents != nil {
		fields = append(fields, financialposition.FieldFixedAssetsCents)
	}
	if m.addcurrent_liabilities_cents != nil {
		fields = append(fields, financialposition.FieldCurrentLiabilitiesCents)
	}
	if m.addlong_term_liabilities_cents != nil {
		fields = append(fields, financialposition.FieldLongTermLiabilitiesCents)
	}
	if m.addcommon_stock_cents != nil {
		fields = append(fields, financialposition.FieldCommonStockCents)
	}
	if m.addretained_earnings_cents != nil {
		fields = append(fields, financialposition.FieldRetainedEarningsCents)
	}
	if m.addtotal_assets_cents != nil {
		fields = append(fields, financialposition.FieldTotalAssetsCents)
	}
	if m.addtotal_liabilities_cents != nil {
		fields = append(fields, financialposition.FieldTotalLiabilitiesCents)
	}
	if m.addtotal_equity_cents != nil {
		fields = append(fields, financialposition.FieldTotalEquityCents)
	}
	if m.addnet_worth_cents != nil {
		fields = append(fields, financialposition.FieldNetWorthCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FinancialPositionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case financialposition.FieldCurrentAssetsCents:
		return m.AddedCurrentAssetsCents()
	case financialposition.FieldFixedAssetsCents:
		return m.AddedFixedAssetsCents()
	case financialposition.FieldCurrentLiabilitiesCents:
		return m.AddedCurrentLiabilitiesCents()
	case financialposition.FieldLongTermLiabilitiesCents:
		return m.AddedLongTermLiabilitiesCents()
	case financialposition.FieldCommonStockCents:
		return m.AddedCommonStockCents()
	case financialposition.FieldRetainedEarningsCents:
		return m.AddedRetainedEarningsCents()
	case financialposition.FieldTotalAssetsCents:
		return m.AddedTotalAssetsCents()
	case financialposition.FieldTotalLiabilitiesCents:
		return m.AddedTotalLiabilitiesCents()
	case financialposition.FieldTotalEquityCents:
		return m.AddedTotalEquityCents()
	case financialposition.FieldNetWorthCents:
		return m.AddedNetWorthCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FinancialPositionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case financialposition.FieldCurrentAssetsCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentAssetsCents(v)
		return nil
	case financialposition.FieldFixedAssetsCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFixedAssetsCents(v)
		return nil
	case financialposition.FieldCurrentLiabilitiesCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentLiabilitiesCents(v)
		return nil
	case financialposition.FieldLongTermLiabilitiesCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongTermLiabilitiesCents(v)
		return nil
	case financialposition.FieldCommonStockCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommonStockCents(v)
		return nil
	case financialposition.FieldRetainedEarningsCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetainedEarningsCents(v)
		return nil
	case financialposition.FieldTotalAssetsCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAssetsCents(v)
		return nil
	case financialposition.FieldTotalLiabilitiesCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalLiabilitiesCents(v)
		return nil
	case financialposition.FieldTotalEquityCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalEquityCents(v)
		return nil
	case financialposition.FieldNetWorthCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetWorthCents(v)
		return nil
	}
	return fmt.Errorf("unknown FinancialPosition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FinancialPositionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FinancialPositionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FinancialPositionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FinancialPosition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FinancialPositionMutation) ResetField(name string) error {
	switch name {
	case financialposition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case financialposition.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case financialposition.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case financialposition.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case financialposition.FieldSource:
		m.ResetSource()
		return nil
	case financialposition.FieldCurrentAssetsCents:
		m.ResetCurrentAssetsCents()
		return nil
	case financialposition.FieldFixedAssetsCents:
		m.ResetFixedAssetsCents()
		return nil
	case financialposition.FieldCurrentLiabilitiesCents:
		m.ResetCurrentLiabilitiesCents()
		return nil
	case financialposition.FieldLongTermLiabilitiesCents:
		m.ResetLongTermLiabilitiesCents()
		return nil
	case financialposition.FieldCommonStockCents:
		m.ResetCommonStockCents()
		return nil
	case financialposition.FieldRetainedEarningsCents:
		m.ResetRetainedEarningsCents()
		return nil
	case financialposition.FieldTotalAssetsCents:
		m.ResetTotalAssetsCents()
		return nil
	case financialposition.FieldTotalLiabilitiesCents:
		m.ResetTotalLiabilitiesCents()
		return nil
	case financialposition.FieldTotalEquityCents:
		m.ResetTotalEquityCents()
		return nil
	case financialposition.FieldNetWorthCents:
		m.ResetNetWorthCents()
		return nil
	}
	return fmt.Errorf("unknown FinancialPosition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FinancialPositionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.business != nil {
		edges = append(edges, financialposition.EdgeBusiness)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FinancialPositionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case financialposition.EdgeBusiness:
		if id := m.business; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FinancialPositionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FinancialPositionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FinancialPositionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbusiness {
		edges = append(edges, financialposition.EdgeBusiness)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FinancialPositionMutation) EdgeCleared(name string) bool {
	switch name {
	case financialposition.EdgeBusiness:
		return m.clearedbusiness
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FinancialPositionMutation) ClearEdge(name string) error {
	switch name {
	case financialposition.EdgeBusiness:
		m.ClearBusiness()
		return nil
	}
	return fmt.Errorf("unknown FinancialPosition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FinancialPositionMutation) ResetEdge(name string) error {
	switch name {
	case financialposition.EdgeBusiness:
		m.ResetBusiness()
		return nil
	}
	return fmt.Errorf("unknown FinancialPosition edge %s", name)
}

// StatementMutation represents an operation that mutates the Statement nodes in the graph.
type StatementMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	created_by          *string
	updated_by          *string
	source              *statement.Source
	original_name       *string
	stored_name         *string
	checksum            *string
	status              *statement.Status
	failure_reason      *string
	balance_cents       *int64
	addbalance_cents    *int64
	currency            *string
	skipped             *int
	addskipped          *int
	clearedFields       map[string]struct{}
	business            *uuid.UUID
	clearedbusiness     bool
	transactions        map[uuid.UUID]struct{}
	removedtransactions map[uuid.UUID]struct{}
	clearedtransactions bool
	done                bool
	oldValue            func(context.Context) (*Statement, error)
	predicates          []predicate.Statement
}

var _ ent.Mutation = (*StatementMutation)(nil)

// statementOption allows management of the mutation configuration using functional options.
type statementOption func(*StatementMutation)

// newStatementMutation creates new mutation for the Statement entity.
func newStatementMutation(c config, op Op, opts ...statementOption) *StatementMutation {
	m := &StatementMutation{
		config:        c,
		op:            op,
		typ:           TypeStatement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStatementID sets the ID field of the mutation.
func withStatementID(id uuid.UUID) statementOption {
	return func(m *StatementMutation) {
		var (
			err   error
			once  sync.Once
			value *Statement
		)
		m.oldValue = func(ctx context.Context) (*Statement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Statement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStatement sets the old Statement of the mutation.
func withStatement(node *Statement) statementOption {
	return func(m *StatementMutation) {
		m.oldValue = func(context.Context) (*Statement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StatementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StatementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Statement entities.
func (m *StatementMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StatementMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StatementMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Statement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StatementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StatementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Statement entity.
// If the Statement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StatementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StatementMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StatementMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Statement entity.
// If the Statement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatementMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StatementMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *StatementMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *StatementMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Statement entity.
// If the Statement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatementMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *StatementMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *StatementMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *StatementMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the Statement entity.
// If the Statement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatementMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *StatementMutation) ResetUpdatedBy() {
	m.updated_by = nil
}

// SetSource sets the "source" field.
func (m *StatementMutation) SetSource(s statement.Source) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *StatementMutation) Source() (r statement.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Statement entity.
// If the Statement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatementMutation) OldSource(ctx context.Context) (v statement.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *StatementMutation) ResetSource() {
	m.source = nil
}

// SetOriginalName sets the "original_name" field.
func (m *StatementMutation) SetOriginalName(s string) {
	m.original_name = &s
}

// OriginalName returns the value of the "original_name" field in the mutation.
func (m *StatementMutation) OriginalName() (r string, exists bool) {
	v := m.original_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalName returns the old "original_name" field's value of the Statement entity.
// If the Statement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatementMutation) OldOriginalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalName: %w", err)
	}
	return oldValue.OriginalName, nil
}

// ResetOriginalName resets all changes to the "original_name" field.
func (m *StatementMutation) ResetOriginalName() {
	m.original_name = nil
}

// SetStoredName sets the "stored_name" field.
func (m *StatementMutation) SetStoredName(s string) {
	m.stored_name = &s
}

// StoredName returns the value of the "stored_name" field in the mutation.
func (m *StatementMutation) StoredName() (r string, exists bool) {
	v := m.stored_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStoredName returns the old "stored_name" field's value of the Statement entity.
// If the Statement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatementMutation) OldStoredName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoredName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoredName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoredName: %w", err)
	}
	return oldValue.StoredName, nil
}

// ResetStoredName resets all changes to the "stored_name" field.
func (m *StatementMutation) ResetStoredName() {
	m.stored_name = nil
}

// SetChecksum sets the "checksum" field.
func (m *StatementMutation) SetChecksum(s string) {
	m.checksum = &s
}

// Checksum returns the value of the "checksum" field in the mutation.
func (m *StatementMutation) Checksum() (r string, exists bool) {
	v := m.checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldChecksum returns the old "checksum" field's value of the Statement entity.
// If the Statement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatementMutation) OldChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecksum: %w", err)
	}
	return oldValue.Checksum, nil
}

// ResetChecksum resets all changes to the "checksum" field.
func (m *StatementMutation) ResetChecksum() {
	m.checksum = nil
}

// SetStatus sets the "status" field.
func (m *StatementMutation) SetStatus(s statement.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StatementMutation) Status() (r statement.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Statement entity.
// If the Statement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatementMutation) OldStatus(ctx context.Context) (v statement.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StatementMutation) ResetStatus() {
	m.status = nil
}

// SetFailureReason sets the "failure_reason" field.
func (m *StatementMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *StatementMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Statement entity.
// If the Statement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatementMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *StatementMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[statement.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *StatementMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[statement.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *StatementMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, statement.FieldFailureReason)
}

// SetBalanceCents sets the "balance_cents" field.
func (m *StatementMutation) SetBalanceCents(i int64) {
	m.balance_cents = &i
	m.addbalance_cents = nil
}

// BalanceCents returns the value of the "balance_cents" field in the mutation.
func (m *StatementMutation) BalanceCents() (r int64, exists bool) {
	v := m.balance_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceCents returns the old "balance_cents" field's value of the Statement entity.
// If the Statement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatementMutation) OldBalanceCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceCents: %w", err)
	}
	return oldValue.BalanceCents, nil
}

// AddBalanceCents adds i to the "balance_cents" field.
func (m *StatementMutation) AddBalanceCents(i int64) {
	if m.addbalance_cents != nil {
		*m.addbalance_cents += i
	} else {
		m.addbalance_cents = &i
	}
}

// AddedBalanceCents returns the value that was added to the "balance_cents" field in this mutation.
func (m *StatementMutation) AddedBalanceCents() (r int64, exists bool) {
	v := m.addbalance_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalanceCents resets all changes to the "balance_cents" field.
func (m *StatementMutation) ResetBalanceCents() {
	m.balance_cents = nil
	m.addbalance_cents = nil
}

// SetCurrency sets the "currency" field.
func (m *StatementMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *StatementMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Statement entity.
// If the Statement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatementMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *StatementMutation) ResetCurrency() {
	m.currency = nil
}

// SetSkipped sets the "skipped" field.
func (m *StatementMutation) SetSkipped(i int) {
	m.skipped = &i
	m.addskipped = nil
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *StatementMutation) Skipped() (r int, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the Statement entity.
// If the Statement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatementMutation) OldSkipped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// AddSkipped adds i to the "skipped" field.
func (m *StatementMutation) AddSkipped(i int) {
	if m.addskipped != nil {
		*m.addskipped += i
	} else {
		m.addskipped = &i
	}
}

// AddedSkipped returns the value that was added to the "skipped" field in this mutation.
func (m *StatementMutation) AddedSkipped() (r int, exists bool) {
	v := m.addskipped
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *StatementMutation) ResetSkipped() {
	m.skipped = nil
	m.addskipped = nil
}

// SetBusinessID sets the "business" edge to the Business entity by id.
func (m *StatementMutation) SetBusinessID(id uuid.UUID) {
	m.business = &id
}

// ClearBusiness clears the "business" edge to the Business entity.
func (m *StatementMutation) ClearBusiness() {
	m.clearedbusiness = true
}

// BusinessCleared reports if the "business" edge to the Business entity was cleared.
func (m *StatementMutation) BusinessCleared() bool {
	return m.clearedbusiness
}

// BusinessID returns the "business" edge ID in the mutation.
func (m *StatementMutation) BusinessID() (id uuid.UUID, exists bool) {
	if m.business != nil {
		return *m.business, true
	}
	return
}

// BusinessIDs returns the "business" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BusinessID instead. It exists only for internal usage by the builders.
func (m *StatementMutation) BusinessIDs() (ids []uuid.UUID) {
	if id := m.business; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBusiness resets all changes to the "business" edge.
func (m *StatementMutation) ResetBusiness() {
	m.business = nil
	m.clearedbusiness = false
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by ids.
func (m *StatementMutation) AddTransactionIDs(ids ...uuid.UUID) {
	if m.transactions == nil {
		m.transactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the Transaction entity.
func (m *StatementMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the Transaction entity was cleared.
func (m *StatementMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the Transaction entity by IDs.
func (m *StatementMutation) RemoveTransactionIDs(ids ...uuid.UUID) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the Transaction entity.
func (m *StatementMutation) RemovedTransactionsIDs() (ids []uuid.UUID) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *StatementMutation) TransactionsIDs() (ids []uuid.UUID) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *StatementMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// Where appends a list predicates to the StatementMutation builder.
func (m *StatementMutation) Where(ps ...predicate.Statement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StatementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StatementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Statement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StatementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StatementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Statement).
func (m *StatementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StatementMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, statement.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, statement.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, statement.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, statement.FieldUpdatedBy)
	}
	if m.source != nil {
		fields = append(fields, statement.FieldSource)
	}
	if m.original_name != nil {
		fields = append(fields, statement.FieldOriginalName)
	}
	if m.stored_name != nil {
		fields = append(fields, statement.FieldStoredName)
	}
	if m.checksum != nil {
		fields = append(fields, statement.FieldChecksum)
	}
	if m.status != nil {
		fields = append(fields, statement.FieldStatus)
	}
	if m.failure_reason != nil {
		fields = append(fields, statement.FieldFailureReason)
	}
	if m.balance_cents != nil {
		fields = append(fields, statement.FieldBalanceCents)
	}
	if m.currency != nil {
		fields = append(fields, statement.FieldCurrency)
	}
	if m.skipped != nil {
		fields = append(fields, statement.FieldSkipped)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StatementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case statement.FieldCreatedAt:
		return m.CreatedAt()
	case statement.FieldUpdatedAt:
		return m.UpdatedAt()
	case statement.FieldCreatedBy:
		return m.CreatedBy()
	case statement.FieldUpdatedBy:
		return m.UpdatedBy()
	case statement.FieldSource:
		return m.Source()
	case statement.FieldOriginalName:
		return m.OriginalName()
	case statement.FieldStoredName:
		return m.StoredName()
	case statement.FieldChecksum:
		return m.Checksum()
	case statement.FieldStatus:
		return m.Status()
	case statement.FieldFailureReason:
		return m.FailureReason()
	case statement.FieldBalanceCents:
		return m.BalanceCents()
	case statement.FieldCurrency:
		return m.Currency()
	case statement.FieldSkipped:
		return m.Skipped()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StatementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case statement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case statement.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case statement.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case statement.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case statement.FieldSource:
		return m.OldSource(ctx)
	case statement.FieldOriginalName:
		return m.OldOriginalName(ctx)
	case statement.FieldStoredName:
		return m.OldStoredName(ctx)
	case statement.FieldChecksum:
		return m.OldChecksum(ctx)
	case statement.FieldStatus:
		return m.OldStatus(ctx)
	case statement.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case statement.FieldBalanceCents:
		return m.OldBalanceCents(ctx)
	case statement.FieldCurrency:
		return m.OldCurrency(ctx)
	case statement.FieldSkipped:
		return m.OldSkipped(ctx)
	}
	return nil, fmt.Errorf("unknown Statement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case statement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case statement.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case statement.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case statement.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case statement.FieldSource:
		v, ok := value.(statement.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case statement.FieldOriginalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalName(v)
		return nil
	case statement.FieldStoredName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoredName(v)
		return nil
	case statement.FieldChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecksum(v)
		return nil
	case statement.FieldStatus:
		v, ok := value.(statement.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case statement.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case statement.FieldBalanceCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceCents(v)
		return nil
	case statement.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case statement.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	}
	return fmt.Errorf("unknown Statement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StatementMutation) AddedFields() []string {
	var fields []string
	if m.addbalance_cents != nil {
		fields = append(fields, statement.FieldBalanceCents)
	}
	if m.addskipped != nil {
		fields = append(fields, statement.FieldSkipped)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StatementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case statement.FieldBalanceCents:
		return m.AddedBalanceCents()
	case statement.FieldSkipped:
		return m.AddedSkipped()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case statement.FieldBalanceCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalanceCents(v)
		return nil
	case statement.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipped(v)
		return nil
	}
	return fmt.Errorf("unknown Statement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StatementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(statement.FieldFailureReason) {
		fields = append(fields, statement.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StatementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StatementMutation) ClearField(name string) error {
	switch name {
	case statement.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown Statement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StatementMutation) ResetField(name string) error {
	switch name {
	case statement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case statement.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case statement.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case statement.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case statement.FieldSource:
		m.ResetSource()
		return nil
	case statement.FieldOriginalName:
		m.ResetOriginalName()
		return nil
	case statement.FieldStoredName:
		m.ResetStoredName()
		return nil
	case statement.FieldChecksum:
		m.ResetChecksum()
		return nil
	case statement.FieldStatus:
		m.ResetStatus()
		return nil
	case statement.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case statement.FieldBalanceCents:
		m.ResetBalanceCents()
		return nil
	case statement.FieldCurrency:
		m.ResetCurrency()
		return nil
	case statement.FieldSkipped:
		m.ResetSkipped()
		return nil
	}
	return fmt.Errorf("unknown Statement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StatementMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.business != nil {
		edges = append(edges, statement.EdgeBusiness)
	}
	if m.transactions != nil {
		edges = append(edges, statement.EdgeTransactions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StatementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case statement.EdgeBusiness:
		if id := m.business; id != nil {
			return []ent.Value{*id}
		}
	case statement.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StatementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtransactions != nil {
		edges = append(edges, statement.EdgeTransactions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StatementMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case statement.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StatementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbusiness {
		edges = append(edges, statement.EdgeBusiness)
	}
	if m.clearedtransactions {
		edges = append(edges, statement.EdgeTransactions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StatementMutation) EdgeCleared(name string) bool {
	switch name {
	case statement.EdgeBusiness:
		return m.clearedbusiness
	case statement.EdgeTransactions:
		return m.clearedtransactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StatementMutation) ClearEdge(name string) error {
	switch name {
	case statement.EdgeBusiness:
		m.ClearBusiness()
		return nil
	}
	return fmt.Errorf("unknown Statement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StatementMutation) ResetEdge(name string) error {
	switch name {
	case statement.EdgeBusiness:
		m.ResetBusiness()
		return nil
	case statement.EdgeTransactions:
		m.ResetTransactions()
		return nil
	}
	return fmt.Errorf("unknown Statement edge %s", name)
}

// TransactionMutation represents an operation that mutates the Transaction nodes in the graph.
type TransactionMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	created_by       *string
	updated_by       *string
	source           *transaction.Source
	date             *time.Time
	_type            *transaction.Type
	amount_cents     *int64
	addamount_cents  *int64
	category         *string
	description      *string
	confidence       *float64
	addconfidence    *float64
	clearedFields    map[string]struct{}
	business         *uuid.UUID
	clearedbusiness  bool
	statement        *uuid.UUID
	clearedstatement bool
	done             bool
	oldValue         func(context.Context) (*Transaction, error)
	predicates       []predicate.Transaction
}

var _ ent.Mutation = (*TransactionMutation)(nil)

// transactionOption allows management of the mutation configuration using functional options.
type transactionOption func(*TransactionMutation)

// newTransactionMutation creates new mutation for the Transaction entity.
func newTransactionMutation(c config, op Op, opts ...transactionOption) *TransactionMutation {
	m := &TransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransactionID sets the ID field of the mutation.
func withTransactionID(id uuid.UUID) transactionOption {
	return func(m *TransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *Transaction
		)
		m.oldValue = func(ctx context.Context) (*Transaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransaction sets the old Transaction of the mutation.
func withTransaction(node *Transaction) transactionOption {
	return func(m *TransactionMutation) {
		m.oldValue = func(context.Context) (*Transaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transaction entities.
func (m *TransactionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransactionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransactionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TransactionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TransactionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TransactionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *TransactionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *TransactionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *TransactionMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *TransactionMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *TransactionMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *TransactionMutation) ResetUpdatedBy() {
	m.updated_by = nil
}

// SetSource sets the "source" field.
func (m *TransactionMutation) SetSource(t transaction.Source) {
	m.source = &t
}

// Source returns the value of the "source" field in the mutation.
func (m *TransactionMutation) Source() (r transaction.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldSource(ctx context.Context) (v transaction.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *TransactionMutation) ResetSource() {
	m.source = nil
}

// SetDate sets the "date" field.
func (m *TransactionMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *TransactionMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *TransactionMutation) ResetDate() {
	m.date = nil
}

// SetType sets the "type" field.
func (m *TransactionMutation) SetType(t transaction.Type) {
	m._type = &t
}

// GetType returns the value of the "type" field in the mutation.
func (m *TransactionMutation) GetType() (r transaction.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldType(ctx context.Context) (v transaction.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *TransactionMutation) ResetType() {
	m._type = nil
}

// SetAmountCents sets the "amount_cents" field.
func (m *TransactionMutation) SetAmountCents(i int64) {
	m.amount_cents = &i
	m.addamount_cents = nil
}

// AmountCents returns the value of the "amount_cents" field in the mutation.
func (m *TransactionMutation) AmountCents() (r int64, exists bool) {
	v := m.amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountCents returns the old "amount_cents" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldAmountCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountCents: %w", err)
	}
	return oldValue.AmountCents, nil
}

// AddAmountCents adds i to the "amount_cents" field.
func (m *TransactionMutation) AddAmountCents(i int64) {
	if m.addamount_cents != nil {
		*m.addamount_cents += i
	} else {
		m.addamount_cents = &i
	}
}

// AddedAmountCents returns the value that was added to the "amount_cents" field in this mutation.
func (m *TransactionMutation) AddedAmountCents() (r int64, exists bool) {
	v := m.addamount_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountCents resets all changes to the "amount_cents" field.
func (m *TransactionMutation) ResetAmountCents() {
	m.amount_cents = nil
	m.addamount_cents = nil
}

// SetCategory sets the "category" field.
func (m *TransactionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *TransactionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *TransactionMutation) ResetCategory() {
	m.category = nil
}

// SetDescription sets the "description" field.
func (m *TransactionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TransactionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TransactionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[transaction.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TransactionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[transaction.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TransactionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, transaction.FieldDescription)
}

// SetConfidence sets the "confidence" field.
func (m *TransactionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *TransactionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *TransactionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *TransactionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *TransactionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetBusinessID sets the "business" edge to the Business entity by id.
func (m *TransactionMutation) SetBusinessID(id uuid.UUID) {
	m.business = &id
}

// ClearBusiness clears the "business" edge to the Business entity.
func (m *TransactionMutation) ClearBusiness() {
	m.clearedbusiness = true
}

// BusinessCleared reports if the "business" edge to the Business entity was cleared.
func (m *TransactionMutation) BusinessCleared() bool {
	return m.clearedbusiness
}

// BusinessID returns the "business" edge ID in the mutation.
func (m *TransactionMutation) BusinessID() (id uuid.UUID, exists bool) {
	if m.business != nil {
		return *m.business, true
	}
	return
}

// BusinessIDs returns the "business" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BusinessID instead. It exists only for internal usage by the builders.
func (m *TransactionMutation) BusinessIDs() (ids []uuid.UUID) {
	if id := m.business; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBusiness resets all changes to the "business" edge.
func (m *TransactionMutation) ResetBusiness() {
	m.business = nil
	m.clearedbusiness = false
}

// SetStatementID sets the "statement" edge to the Statement entity by id.
func (m *TransactionMutation) SetStatementID(id uuid.UUID) {
	m.statement = &id
}

// ClearStatement clears the "statement" edge to the Statement entity.
func (m *TransactionMutation) ClearStatement() {
	m.clearedstatement = true
}

// StatementCleared reports if the "statement" edge to the Statement entity was cleared.
func (m *TransactionMutation) StatementCleared() bool {
	return m.clearedstatement
}

// StatementID returns the "statement" edge ID in the mutation.
func (m *TransactionMutation) StatementID() (id uuid.UUID, exists bool) {
	if m.statement != nil {
		return *m.statement, true
	}
	return
}

// StatementIDs returns the "statement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StatementID instead. It exists only for internal usage by the builders.
func (m *TransactionMutation) StatementIDs() (ids []uuid.UUID) {
	if id := m.statement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStatement resets all changes to the "statement" edge.
func (m *TransactionMutation) ResetStatement() {
	m.statement = nil
	m.clearedstatement = false
}

// Where appends a list predicates to the TransactionMutation builder.
func (m *TransactionMutation) Where(ps ...predicate.Transaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transaction).
func (m *TransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransactionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, transaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, transaction.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, transaction.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, transaction.FieldUpdatedBy)
	}
	if m.source != nil {
		fields = append(fields, transaction.FieldSource)
	}
	if m.date != nil {
		fields = append(fields, transaction.FieldDate)
	}
	if m._type != nil {
		fields = append(fields, transaction.FieldType)
	}
	if m.amount_cents != nil {
		fields = append(fields, transaction.FieldAmountCents)
	}
	if m.category != nil {
		fields = append(fields, transaction.FieldCategory)
	}
	if m.description != nil {
		fields = append(fields, transaction.FieldDescription)
	}
	if m.confidence != nil {
		fields = append(fields, transaction.FieldConfidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldCreatedAt:
		return m.CreatedAt()
	case transaction.FieldUpdatedAt:
		return m.UpdatedAt()
	case transaction.FieldCreatedBy:
		return m.CreatedBy()
	case transaction.FieldUpdatedBy:
		return m.UpdatedBy()
	case transaction.FieldSource:
		return m.Source()
	case transaction.FieldDate:
		return m.Date()
	case transaction.FieldType:
		return m.GetType()
	case transaction.FieldAmountCents:
		return m.AmountCents()
	case transaction.FieldCategory:
		return m.Category()
	case transaction.FieldDescription:
		return m.Description()
	case transaction.FieldConfidence:
		return m.Confidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case transaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case transaction.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case transaction.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case transaction.FieldSource:
		return m.OldSource(ctx)
	case transaction.FieldDate:
		return m.OldDate(ctx)
	case transaction.FieldType:
		return m.OldType(ctx)
	case transaction.FieldAmountCents:
		return m.OldAmountCents(ctx)
	case transaction.FieldCategory:
		return m.OldCategory(ctx)
	case transaction.FieldDescription:
		return m.OldDescription(ctx)
	case transaction.FieldConfidence:
		return m.OldConfidence(ctx)
	}
	return nil, fmt.Errorf("unknown Transaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case transaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case transaction.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case transaction.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case transaction.FieldSource:
		v, ok := value.(transaction.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case transaction.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case transaction.FieldType:
		v, ok := value.(transaction.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case transaction.FieldAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountCents(v)
		return nil
	case transaction.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case transaction.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case transaction.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransactionMutation) AddedFields() []string {
	var fields []string
	if m.addamount_cents != nil {
		fields = append(fields, transaction.FieldAmountCents)
	}
	if m.addconfidence != nil {
		fields = append(fields, transaction.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldAmountCents:
		return m.AddedAmountCents()
	case transaction.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountCents(v)
		return nil
	case transaction.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transaction.FieldDescription) {
		fields = append(fields, transaction.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransactionMutation) ClearField(name string) error {
	switch name {
	case transaction.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Transaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransactionMutation) ResetField(name string) error {
	switch name {
	case transaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case transaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case transaction.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case transaction.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case transaction.FieldSource:
		m.ResetSource()
		return nil
	case transaction.FieldDate:
		m.ResetDate()
		return nil
	case transaction.FieldType:
		m.ResetType()
		return nil
	case transaction.FieldAmountCents:
		m.ResetAmountCents()
		return nil
	case transaction.FieldCategory:
		m.ResetCategory()
		return nil
	case transaction.FieldDescription:
		m.ResetDescription()
		return nil
	case transaction.FieldConfidence:
		m.ResetConfidence()
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.business != nil {
		edges = append(edges, transaction.EdgeBusiness)
	}
	if m.statement != nil {
		edges = append(edges, transaction.EdgeStatement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transaction.EdgeBusiness:
		if id := m.business; id != nil {
			return []ent.Value{*id}
		}
	case transaction.EdgeStatement:
		if id := m.statement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbusiness {
		edges = append(edges, transaction.EdgeBusiness)
	}
	if m.clearedstatement {
		edges = append(edges, transaction.EdgeStatement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransactionMutation) EdgeCleared(name string) bool {
	switch name {
	case transaction.EdgeBusiness:
		return m.clearedbusiness
	case transaction.EdgeStatement:
		return m.clearedstatement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransactionMutation) ClearEdge(name string) error {
	switch name {
	case transaction.EdgeBusiness:
		m.ClearBusiness()
		return nil
	case transaction.EdgeStatement:
		m.ClearStatement()
		return nil
	}
	return fmt.Errorf("unknown Transaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransactionMutation) ResetEdge(name string) error {
	switch name {
	case transaction.EdgeBusiness:
		m.ResetBusiness()
		return nil
	case transaction.EdgeStatement:
		m.ResetStatement()
		return nil
	}
	return fmt.Errorf("unknown Transaction edge %s", name)
}
