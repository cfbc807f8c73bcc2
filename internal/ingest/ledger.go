package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/axento/books/ent"
	"github.com/axento/books/ent/business"
	"github.com/axento/books/ent/financialposition"
	"github.com/axento/books/ent/statement"
	"github.com/axento/books/ent/transaction"
)

// Ledger is the only writer of transactions, statements and financial
// positions. Every mutation runs under the owning business's lock and
// inside one database transaction, and every mutation ends with a full
// position recompute. The position is derived, never accumulated.
type Ledger struct {
	client *ent.Client
	locks  *keyedMutex
}

// NewLedger creates a Ledger over the given client.
func NewLedger(client *ent.Client) *Ledger {
	return &Ledger{client: client, locks: newKeyedMutex()}
}

// Upload describes one statement import.
type Upload struct {
	OriginalName string
	StoredName   string
	Checksum     string
	Rows         []ClassifiedRow
	Skipped      int
	Force        bool
	Actor        string
}

// Result summarizes a committed import.
type Result struct {
	Statement           *ent.Statement
	TransactionsCreated int
	Skipped             int
	TotalRevenueCents   int64
	TotalExpensesCents  int64
	BalanceCents        int64
}

// Process commits an upload as one atomic unit: statement row,
// transaction rows, and the recomputed financial position all land
// together or not at all. A repeat upload (same checksum, completed)
// returns ErrDuplicateStatement unless forced, in which case the prior
// statement's transactions are reversed inside the same transaction.
//
// Transient store errors are retried once. On any final failure the
// statement is left in failed state with a reason, never stuck in
// processing.
func (l *Ledger) Process(ctx context.Context, businessID uuid.UUID, up Upload) (*Result, error) {
	unlock := l.locks.Lock(businessID)
	defer unlock()

	biz, err := l.client.Business.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}

	reg := NewRegistry(l.client)
	prior, err := reg.FindCompleted(ctx, businessID, up.Checksum)
	if err != nil {
		return nil, err
	}
	if prior != nil && !up.Force {
		return nil, fmt.Errorf("checksum %s: %w", up.Checksum, ErrDuplicateStatement)
	}

	// The pending row is created outside the atomic unit so a failed
	// import has a record to land on.
	stmt, err := reg.Create(ctx, businessID, CreateParams{
		OriginalName: up.OriginalName,
		StoredName:   up.StoredName,
		Checksum:     up.Checksum,
		Currency:     biz.Currency,
		Actor:        up.Actor,
	})
	if err != nil {
		return nil, err
	}

	res, err := l.processOnce(ctx, biz, stmt, prior, up)
	if err != nil && isTransient(err) {
		log.Printf("ledger: transient error on statement %s, retrying once: %v", stmt.ID, err)
		res, err = l.processOnce(ctx, biz, stmt, prior, up)
	}
	if err != nil {
		l.markFailed(ctx, stmt, up.Actor, err)
		return nil, err
	}
	return res, nil
}

func (l *Ledger) processOnce(ctx context.Context, biz *ent.Business, stmt *ent.Statement, prior *ent.Statement, up Upload) (*Result, error) {
	tx, err := l.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	res, err := l.writeBatch(ctx, tx, biz, stmt, prior, up)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

func (l *Ledger) writeBatch(ctx context.Context, tx *ent.Tx, biz *ent.Business, stmt *ent.Statement, prior *ent.Statement, up Upload) (*Result, error) {
	reg := NewRegistry(tx.Client())

	stmt, err := reg.Transition(ctx, stmt, statement.StatusProcessing, up.Actor, nil)
	if err != nil {
		return nil, err
	}

	// Forced reprocessing reverses the prior import inside the same
	// transaction: delete-then-recreate, so the ledger never holds both.
	if prior != nil {
		if _, err := tx.Transaction.Delete().
			Where(transaction.HasStatementWith(statement.ID(prior.ID))).
			Exec(ctx); err != nil {
			return nil, err
		}
		if err := tx.Statement.DeleteOneID(prior.ID).Exec(ctx); err != nil {
			return nil, err
		}
	}

	var revenue, expenses int64
	for _, row := range up.Rows {
		magnitude := row.AmountCents
		if magnitude < 0 {
			magnitude = -magnitude
		}
		_, err := tx.Transaction.Create().
			SetBusinessID(biz.ID).
			SetStatementID(stmt.ID).
			SetDate(row.Date).
			SetType(transaction.Type(row.Type)).
			SetAmountCents(magnitude).
			SetCategory(row.Category).
			SetDescription(row.Description).
			SetConfidence(row.Confidence).
			SetCreatedBy(up.Actor).
			SetUpdatedBy(up.Actor).
			SetSource(transaction.SourceImport).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		switch row.Type {
		case TypeIncome:
			revenue += magnitude
		case TypeExpense:
			expenses += magnitude
		}
	}

	if _, err := l.recomputeTx(ctx, tx, biz, up.Actor); err != nil {
		return nil, err
	}

	balance := revenue - expenses
	stmt, err = reg.Transition(ctx, stmt, statement.StatusCompleted, up.Actor, func(b *ent.StatementUpdateOne) {
		b.SetBalanceCents(balance).SetSkipped(up.Skipped)
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Statement:           stmt,
		TransactionsCreated: len(up.Rows),
		Skipped:             up.Skipped,
		TotalRevenueCents:   revenue,
		TotalExpensesCents:  expenses,
		BalanceCents:        balance,
	}, nil
}

// markFailed records the failure reason on the statement. Best-effort:
// the original error is what matters to the caller.
func (l *Ledger) markFailed(ctx context.Context, stmt *ent.Statement, actor string, cause error) {
	reason := cause.Error()
	if len(reason) > 500 {
		reason = reason[:500]
	}
	_, err := NewRegistry(l.client).Transition(ctx, stmt, statement.StatusFailed, actor, func(b *ent.StatementUpdateOne) {
		b.SetFailureReason(reason)
	})
	if err != nil {
		log.Printf("ledger: marking statement %s failed: %v", stmt.ID, err)
	}
}

// Delete removes a statement and cascades: its transactions are deleted
// and the position recomputed in the same atomic unit. It returns the
// deleted statement, business edge populated, and the number of
// transactions removed, so callers can clean up the stored blob and
// report the deletion.
func (l *Ledger) Delete(ctx context.Context, statementID uuid.UUID, actor string) (*ent.Statement, int, error) {
	stmt, err := l.client.Statement.Get(ctx, statementID)
	if err != nil {
		return nil, 0, err
	}
	biz, err := l.client.Statement.QueryBusiness(stmt).Only(ctx)
	if err != nil {
		return nil, 0, err
	}

	unlock := l.locks.Lock(biz.ID)
	defer unlock()

	var removed int
	err = l.withRetry(ctx, func(tx *ent.Tx) error {
		n, err := tx.Transaction.Delete().
			Where(transaction.HasStatementWith(statement.ID(stmt.ID))).
			Exec(ctx)
		if err != nil {
			return err
		}
		removed = n
		if _, err := l.recomputeTx(ctx, tx, biz, actor); err != nil {
			return err
		}
		return tx.Statement.DeleteOneID(stmt.ID).Exec(ctx)
	})
	if err != nil {
		return nil, 0, err
	}
	stmt.Edges.Business = biz
	return stmt, removed, nil
}

// CreateBusinessParams describe a new business and its opening balances.
type CreateBusinessParams struct {
	Name     string
	Currency string
	Baseline Baseline
	Actor    string
}

// CreateBusiness creates the business together with its zeroed financial
// position, in one transaction. A business never exists without one.
func (l *Ledger) CreateBusiness(ctx context.Context, p CreateBusinessParams) (*ent.Business, error) {
	var biz *ent.Business
	err := l.withRetry(ctx, func(tx *ent.Tx) error {
		b := tx.Business.Create().
			SetName(p.Name).
			SetBaselineCurrentAssetsCents(p.Baseline.CurrentAssetsCents).
			SetBaselineFixedAssetsCents(p.Baseline.FixedAssetsCents).
			SetBaselineCurrentLiabilitiesCents(p.Baseline.CurrentLiabilitiesCents).
			SetBaselineLongTermLiabilitiesCents(p.Baseline.LongTermLiabilitiesCents).
			SetBaselineCommonStockCents(p.Baseline.CommonStockCents).
			SetCreatedBy(p.Actor).
			SetUpdatedBy(p.Actor).
			SetSource(business.SourceUser)
		if p.Currency != "" {
			b.SetCurrency(p.Currency)
		}
		created, err := b.Save(ctx)
		if err != nil {
			return err
		}
		if _, err := l.recomputeTx(ctx, tx, created, p.Actor); err != nil {
			return err
		}
		biz = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return biz, nil
}

// UpdateBaseline replaces a business's opening balances and recomputes
// the position in the same transaction.
func (l *Ledger) UpdateBaseline(ctx context.Context, businessID uuid.UUID, b Baseline, actor string) (*ent.Business, error) {
	unlock := l.locks.Lock(businessID)
	defer unlock()

	var updated *ent.Business
	err := l.withRetry(ctx, func(tx *ent.Tx) error {
		biz, err := tx.Business.UpdateOneID(businessID).
			SetBaselineCurrentAssetsCents(b.CurrentAssetsCents).
			SetBaselineFixedAssetsCents(b.FixedAssetsCents).
			SetBaselineCurrentLiabilitiesCents(b.CurrentLiabilitiesCents).
			SetBaselineLongTermLiabilitiesCents(b.LongTermLiabilitiesCents).
			SetBaselineCommonStockCents(b.CommonStockCents).
			SetUpdatedBy(actor).
			SetSource(business.SourceUser).
			Save(ctx)
		if err != nil {
			return err
		}
		if _, err := l.recomputeTx(ctx, tx, biz, actor); err != nil {
			return err
		}
		updated = biz
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ManualEntry describes a hand-entered transaction. Amount is a
// non-negative magnitude; Type carries the sign.
type ManualEntry struct {
	Date        time.Time
	Type        string
	AmountCents int64
	Category    string
	Description string
	Actor       string
}

// AddEntry inserts a manual transaction and recomputes the position in
// one atomic unit. Manual entries have no source statement.
func (l *Ledger) AddEntry(ctx context.Context, businessID uuid.UUID, e ManualEntry) (*ent.Transaction, error) {
	if e.Type != TypeIncome && e.Type != TypeExpense {
		return nil, fmt.Errorf("unknown transaction type %q", e.Type)
	}
	if e.AmountCents < 0 {
		return nil, errors.New("amount must be a non-negative magnitude")
	}

	unlock := l.locks.Lock(businessID)
	defer unlock()

	biz, err := l.client.Business.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}

	category := e.Category
	if category == "" {
		if e.Type == TypeIncome {
			category = CategoryIncome
		} else {
			category = CategoryExpenses
		}
	}

	var created *ent.Transaction
	err = l.withRetry(ctx, func(tx *ent.Tx) error {
		tr, err := tx.Transaction.Create().
			SetBusinessID(businessID).
			SetDate(e.Date).
			SetType(transaction.Type(e.Type)).
			SetAmountCents(e.AmountCents).
			SetCategory(category).
			SetDescription(e.Description).
			SetConfidence(1).
			SetCreatedBy(e.Actor).
			SetUpdatedBy(e.Actor).
			SetSource(transaction.SourceUser).
			Save(ctx)
		if err != nil {
			return err
		}
		if _, err := l.recomputeTx(ctx, tx, biz, e.Actor); err != nil {
			return err
		}
		created = tr
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteEntry removes a manual transaction and recomputes the position.
// Transactions that came from a statement are refused: a completed
// statement's transaction set stays intact until the statement itself is
// deleted, which cascades.
func (l *Ledger) DeleteEntry(ctx context.Context, transactionID uuid.UUID, actor string) error {
	tr, err := l.client.Transaction.Get(ctx, transactionID)
	if err != nil {
		return err
	}
	imported, err := l.client.Transaction.QueryStatement(tr).Exist(ctx)
	if err != nil {
		return err
	}
	if imported {
		return fmt.Errorf("transaction %s: %w", tr.ID, ErrImportedTransaction)
	}
	biz, err := l.client.Transaction.QueryBusiness(tr).Only(ctx)
	if err != nil {
		return err
	}

	unlock := l.locks.Lock(biz.ID)
	defer unlock()

	return l.withRetry(ctx, func(tx *ent.Tx) error {
		if err := tx.Transaction.DeleteOneID(tr.ID).Exec(ctx); err != nil {
			return err
		}
		_, err := l.recomputeTx(ctx, tx, biz, actor)
		return err
	})
}

// Position returns the business's financial position, or the zero value
// when none has been written yet. An unknown business is an error.
func (l *Ledger) Position(ctx context.Context, businessID uuid.UUID) (*ent.FinancialPosition, error) {
	if _, err := l.client.Business.Get(ctx, businessID); err != nil {
		return nil, err
	}
	pos, err := l.client.FinancialPosition.Query().
		Where(financialposition.HasBusinessWith(business.ID(businessID))).
		Only(ctx)
	if ent.IsNotFound(err) {
		return &ent.FinancialPosition{}, nil
	}
	return pos, err
}

// withRetry runs fn inside a transaction, retrying once on a transient
// store error. fn must be idempotent; it always sees a fresh tx.
func (l *Ledger) withRetry(ctx context.Context, fn func(tx *ent.Tx) error) error {
	attempt := func() error {
		tx, err := l.client.Tx(ctx)
		if err != nil {
			return err
		}
		if err := fn(tx); err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit()
	}
	err := attempt()
	if err != nil && isTransient(err) {
		log.Printf("ledger: transient error, retrying once: %v", err)
		err = attempt()
	}
	return err
}

// recomputeTx rebuilds the financial position from the business's full
// transaction history plus its baseline, validates the accounting
// identity, and writes the row as a whole. Incremental updates are
// deliberately not offered.
func (l *Ledger) recomputeTx(ctx context.Context, tx *ent.Tx, biz *ent.Business, actor string) (*ent.FinancialPosition, error) {
	txns, err := tx.Transaction.Query().
		Where(transaction.HasBusinessWith(business.ID(biz.ID))).
		All(ctx)
	if err != nil {
		return nil, err
	}

	var totals Totals
	for _, tr := range txns {
		switch tr.Type {
		case transaction.TypeIncome:
			totals.IncomeCents += tr.AmountCents
		case transaction.TypeExpense:
			totals.ExpenseCents += tr.AmountCents
		}
	}

	pos := ComputePosition(baselineOf(biz), totals)
	if err := pos.Validate(); err != nil {
		return nil, err
	}
	return writePosition(ctx, tx, biz.ID, pos, actor)
}

func baselineOf(biz *ent.Business) Baseline {
	return Baseline{
		CurrentAssetsCents:       biz.BaselineCurrentAssetsCents,
		FixedAssetsCents:         biz.BaselineFixedAssetsCents,
		CurrentLiabilitiesCents:  biz.BaselineCurrentLiabilitiesCents,
		LongTermLiabilitiesCents: biz.BaselineLongTermLiabilitiesCents,
		CommonStockCents:         biz.BaselineCommonStockCents,
	}
}

// writePosition persists a computed position as a full-row replace.
func writePosition(ctx context.Context, tx *ent.Tx, businessID uuid.UUID, p Position, actor string) (*ent.FinancialPosition, error) {
	existing, err := tx.FinancialPosition.Query().
		Where(financialposition.HasBusinessWith(business.ID(businessID))).
		Only(ctx)
	switch {
	case err == nil:
		return tx.FinancialPosition.UpdateOne(existing).
			SetCurrentAssetsCents(p.CurrentAssetsCents).
			SetFixedAssetsCents(p.FixedAssetsCents).
			SetCurrentLiabilitiesCents(p.CurrentLiabilitiesCents).
			SetLongTermLiabilitiesCents(p.LongTermLiabilitiesCents).
			SetCommonStockCents(p.CommonStockCents).
			SetRetainedEarningsCents(p.RetainedEarningsCents).
			SetTotalAssetsCents(p.TotalAssetsCents).
			SetTotalLiabilitiesCents(p.TotalLiabilitiesCents).
			SetTotalEquityCents(p.TotalEquityCents).
			SetNetWorthCents(p.NetWorthCents).
			SetUpdatedBy(actor).
			SetSource(financialposition.SourceSystem).
			Save(ctx)
	case ent.IsNotFound(err):
		return tx.FinancialPosition.Create().
			SetBusinessID(businessID).
			SetCurrentAssetsCents(p.CurrentAssetsCents).
			SetFixedAssetsCents(p.FixedAssetsCents).
			SetCurrentLiabilitiesCents(p.CurrentLiabilitiesCents).
			SetLongTermLiabilitiesCents(p.LongTermLiabilitiesCents).
			SetCommonStockCents(p.CommonStockCents).
			SetRetainedEarningsCents(p.RetainedEarningsCents).
			SetTotalAssetsCents(p.TotalAssetsCents).
			SetTotalLiabilitiesCents(p.TotalLiabilitiesCents).
			SetTotalEquityCents(p.TotalEquityCents).
			SetNetWorthCents(p.NetWorthCents).
			SetCreatedBy(actor).
			SetUpdatedBy(actor).
			SetSource(financialposition.SourceSystem).
			Save(ctx)
	default:
		return nil, err
	}
}
