package ordermanager

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() *Params {
	return &Params{
		Admin:            "admin",
		FeeManager:       "feemgr",
		EscrowAddress:    "escrow",
		ProtocolFeeBps:   200,
		MakerRewardBps:   4000,
		TakerRewardBps:   1000,
		MaxRoyaltyFeeBps: 1000,
		DefaultDenom:     "ustars",
		TradingEnabled:   true,
		Operators:        []string{"operator"},
		MaxOrdersPruned:  100,
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestFeeBreakdownExactSplit(t *testing.T) {
	p := testParams()
	fees, err := computeFeeBreakdown(p, NewCoin("ustars", 10000), 500, "royalty_addr", true, true)
	require.NoError(t, err)

	assert.True(t, fees.ProtocolFee.Equal(dec(200)))
	assert.True(t, fees.RoyaltyFee.Equal(dec(500)))
	assert.True(t, fees.MakerReward.Equal(dec(80)))
	assert.True(t, fees.TakerReward.Equal(dec(20)))
	assert.True(t, fees.SellerAmount.Equal(dec(9300)))
	assert.True(t, fees.ProtocolResidual().Equal(dec(100)))

	// Legs reassemble to the sale price with nothing lost.
	total := fees.SellerAmount.Add(fees.ProtocolFee).Add(fees.RoyaltyFee)
	assert.True(t, total.Equal(dec(10000)))
}

func TestFeeBreakdownRoundsFeesUp(t *testing.T) {
	p := testParams()
	fees, err := computeFeeBreakdown(p, NewCoin("ustars", 101), 500, "royalty_addr", true, true)
	require.NoError(t, err)

	// 101 * 2% = 2.02 and 101 * 5% = 5.05, both charged rounded up.
	assert.True(t, fees.ProtocolFee.Equal(dec(3)))
	assert.True(t, fees.RoyaltyFee.Equal(dec(6)))
	assert.True(t, fees.SellerAmount.Equal(dec(92)))

	// Rewards round down and never exceed the protocol fee.
	assert.True(t, fees.MakerReward.Equal(dec(0)))
	assert.True(t, fees.TakerReward.Equal(dec(0)))
	assert.False(t, fees.ProtocolResidual().IsNegative())
}

func TestFeeBreakdownCapsRoyalty(t *testing.T) {
	p := testParams()
	fees, err := computeFeeBreakdown(p, NewCoin("ustars", 10000), 2500, "royalty_addr", false, false)
	require.NoError(t, err)

	// 25% royalty capped to the configured 10% maximum.
	assert.True(t, fees.RoyaltyFee.Equal(dec(1000)))
	assert.True(t, fees.MakerReward.IsZero())
	assert.True(t, fees.TakerReward.IsZero())
	assert.True(t, fees.ProtocolResidual().Equal(fees.ProtocolFee))
}

func TestFeeBreakdownNoRoyaltyWithoutRecipient(t *testing.T) {
	p := testParams()
	fees, err := computeFeeBreakdown(p, NewCoin("ustars", 10000), 500, "", true, false)
	require.NoError(t, err)

	assert.True(t, fees.RoyaltyFee.IsZero())
	assert.Empty(t, fees.RoyaltyRecipient)
	assert.True(t, fees.TakerReward.IsZero())
	assert.True(t, fees.MakerReward.Equal(dec(80)))
}

func TestFeeBreakdownRejectsPriceBelowFees(t *testing.T) {
	p := testParams()
	p.ProtocolFeeBps = 9000
	p.MaxRoyaltyFeeBps = 999

	_, err := computeFeeBreakdown(p, NewCoin("ustars", 1), 900, "royalty_addr", false, false)
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestParamsValidate(t *testing.T) {
	p := testParams()
	require.NoError(t, p.Validate())

	bad := *p
	bad.ProtocolFeeBps = MaxBasisPoints
	require.Error(t, bad.Validate())

	bad = *p
	bad.MakerRewardBps = 6000
	bad.TakerRewardBps = 4000
	require.Error(t, bad.Validate())

	bad = *p
	bad.EscrowAddress = ""
	require.Error(t, bad.Validate())

	bad = *p
	bad.MaxOrdersPruned = 0
	require.Error(t, bad.Validate())
}
