package ingest

import "fmt"

// Baseline holds a business's opening balances, captured at onboarding.
// The recompute starts from these and layers transaction activity on top.
type Baseline struct {
	CurrentAssetsCents       int64
	FixedAssetsCents         int64
	CurrentLiabilitiesCents  int64
	LongTermLiabilitiesCents int64
	CommonStockCents         int64
}

// Totals are the aggregate magnitudes of a business's full transaction
// history.
type Totals struct {
	IncomeCents  int64
	ExpenseCents int64
}

// Position is the full financial-position value set. It is always
// produced by ComputePosition and written as a whole row, never patched.
type Position struct {
	CurrentAssetsCents       int64
	FixedAssetsCents         int64
	CurrentLiabilitiesCents  int64
	LongTermLiabilitiesCents int64
	CommonStockCents         int64
	RetainedEarningsCents    int64
	TotalAssetsCents         int64
	TotalLiabilitiesCents    int64
	TotalEquityCents         int64
	NetWorthCents            int64
}

// ComputePosition derives the financial position from the baseline and
// the transaction totals. It is a pure function of its inputs: running
// it twice over the same history yields the same position, which is what
// makes retried writes safe.
//
// Net cash from operations (income minus expenses) accrues to current
// assets and retained earnings; the other baseline components pass
// through unchanged. Derived totals follow the accounting identity.
func ComputePosition(b Baseline, t Totals) Position {
	net := t.IncomeCents - t.ExpenseCents

	p := Position{
		CurrentAssetsCents:       b.CurrentAssetsCents + net,
		FixedAssetsCents:         b.FixedAssetsCents,
		CurrentLiabilitiesCents:  b.CurrentLiabilitiesCents,
		LongTermLiabilitiesCents: b.LongTermLiabilitiesCents,
		CommonStockCents:         b.CommonStockCents,
	}
	p.TotalAssetsCents = p.CurrentAssetsCents + p.FixedAssetsCents
	p.TotalLiabilitiesCents = p.CurrentLiabilitiesCents + p.LongTermLiabilitiesCents
	p.TotalEquityCents = p.TotalAssetsCents - p.TotalLiabilitiesCents
	p.RetainedEarningsCents = p.TotalEquityCents - p.CommonStockCents
	p.NetWorthCents = p.TotalEquityCents
	return p
}

// Validate checks the accounting identity on a computed position. A
// failure here aborts the enclosing transaction; it signals a bug in
// the recompute, never bad user input.
func (p Position) Validate() error {
	if p.TotalAssetsCents != p.CurrentAssetsCents+p.FixedAssetsCents {
		return &InvariantViolationError{Detail: fmt.Sprintf(
			"total assets %d != current %d + fixed %d",
			p.TotalAssetsCents, p.CurrentAssetsCents, p.FixedAssetsCents)}
	}
	if p.TotalLiabilitiesCents != p.CurrentLiabilitiesCents+p.LongTermLiabilitiesCents {
		return &InvariantViolationError{Detail: fmt.Sprintf(
			"total liabilities %d != current %d + long-term %d",
			p.TotalLiabilitiesCents, p.CurrentLiabilitiesCents, p.LongTermLiabilitiesCents)}
	}
	if p.TotalEquityCents != p.TotalAssetsCents-p.TotalLiabilitiesCents {
		return &InvariantViolationError{Detail: fmt.Sprintf(
			"total equity %d != assets %d - liabilities %d",
			p.TotalEquityCents, p.TotalAssetsCents, p.TotalLiabilitiesCents)}
	}
	if p.NetWorthCents != p.TotalEquityCents {
		return &InvariantViolationError{Detail: fmt.Sprintf(
			"net worth %d != total equity %d", p.NetWorthCents, p.TotalEquityCents)}
	}
	return nil
}
