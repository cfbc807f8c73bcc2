package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePosition_ZeroActivity(t *testing.T) {
	p := ComputePosition(Baseline{}, Totals{})
	assert.Zero(t, p.TotalAssetsCents)
	assert.Zero(t, p.TotalLiabilitiesCents)
	assert.Zero(t, p.TotalEquityCents)
	assert.Zero(t, p.NetWorthCents)
	require.NoError(t, p.Validate())
}

func TestComputePosition_NetAccruesToCurrentAssets(t *testing.T) {
	b := Baseline{
		CurrentAssetsCents:       100_00,
		FixedAssetsCents:         500_00,
		CurrentLiabilitiesCents:  50_00,
		LongTermLiabilitiesCents: 200_00,
		CommonStockCents:         100_00,
	}
	p := ComputePosition(b, Totals{IncomeCents: 300_00, ExpenseCents: 120_00})

	assert.Equal(t, int64(280_00), p.CurrentAssetsCents) // 100 + 180 net
	assert.Equal(t, int64(500_00), p.FixedAssetsCents)
	assert.Equal(t, int64(780_00), p.TotalAssetsCents)
	assert.Equal(t, int64(250_00), p.TotalLiabilitiesCents)
	assert.Equal(t, int64(530_00), p.TotalEquityCents)
	assert.Equal(t, int64(430_00), p.RetainedEarningsCents)
	assert.Equal(t, p.TotalEquityCents, p.NetWorthCents)
	require.NoError(t, p.Validate())
}

func TestComputePosition_NegativeNetWorth(t *testing.T) {
	p := ComputePosition(
		Baseline{CurrentLiabilitiesCents: 1000_00},
		Totals{ExpenseCents: 50_00},
	)
	assert.Equal(t, int64(-50_00), p.TotalAssetsCents)
	assert.Equal(t, int64(-1050_00), p.NetWorthCents)
	require.NoError(t, p.Validate())
}

func TestComputePosition_Deterministic(t *testing.T) {
	b := Baseline{CurrentAssetsCents: 42_00, CommonStockCents: 10_00}
	totals := Totals{IncomeCents: 7_77, ExpenseCents: 3_33}
	assert.Equal(t, ComputePosition(b, totals), ComputePosition(b, totals))
}

func TestPositionValidate_CatchesBrokenIdentity(t *testing.T) {
	p := ComputePosition(Baseline{CurrentAssetsCents: 100}, Totals{})

	broken := p
	broken.TotalAssetsCents++
	var iv *InvariantViolationError
	require.ErrorAs(t, broken.Validate(), &iv)

	broken = p
	broken.TotalLiabilitiesCents--
	require.Error(t, broken.Validate())

	broken = p
	broken.NetWorthCents += 5
	require.Error(t, broken.Validate())
}
