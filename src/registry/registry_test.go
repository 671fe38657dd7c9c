package registry

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/public-awesome/marketplace-sub000/src/dao"
	"github.com/public-awesome/marketplace-sub000/src/model"
	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// The in-memory database is per connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dao.Migrate(db))
	return db
}

func TestTokenCustody(t *testing.T) {
	db := newTestDB(t)
	reg := New(db)

	require.NoError(t, reg.MintToken("coll", "1", "alice"))
	require.NoError(t, reg.ApproveToken("coll", "1", "operator"))
	require.NoError(t, reg.ApproveToken("coll", "1", "market"))

	owner, approved, err := reg.OwnerOf("coll", "1")
	require.NoError(t, err)
	assert.Equal(t, "alice", owner)
	assert.Equal(t, []string{"operator", "market"}, approved)

	// Transfer reassigns custody and revokes approvals.
	require.NoError(t, reg.TransferToken("coll", "1", "bob"))
	owner, approved, err = reg.OwnerOf("coll", "1")
	require.NoError(t, err)
	assert.Equal(t, "bob", owner)
	assert.Empty(t, approved)

	_, _, err = reg.OwnerOf("coll", "missing")
	require.Error(t, err)
	assert.Equal(t, ordermanager.KindInvalidInput, ordermanager.KindOf(err))
}

func TestCollectionGating(t *testing.T) {
	db := newTestDB(t)
	reg := New(db)

	ok, err := reg.IsTradable("coll", 100)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, reg.RegisterCollection(&model.Collection{
		Address:          "coll",
		RoyaltyBps:       500,
		RoyaltyRecipient: "creator",
		TradingEnabled:   true,
		TradingStartTime: 200,
	}))

	ok, err = reg.IsTradable("coll", 100)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = reg.IsTradable("coll", 200)
	require.NoError(t, err)
	assert.True(t, ok)

	bps, recipient, err := reg.RoyaltyInfo("coll")
	require.NoError(t, err)
	assert.Equal(t, uint64(500), bps)
	assert.Equal(t, "creator", recipient)

	// Re-registering updates in place.
	require.NoError(t, reg.RegisterCollection(&model.Collection{
		Address:        "coll",
		TradingEnabled: false,
	}))
	ok, err = reg.IsTradable("coll", 500)
	require.NoError(t, err)
	assert.False(t, ok)

	bps, recipient, err = reg.RoyaltyInfo("coll")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), bps)
	assert.Equal(t, "", recipient)

	bps, recipient, err = reg.RoyaltyInfo("unregistered")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), bps)
	assert.Equal(t, "", recipient)
}

func TestLedgerMoves(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)

	require.NoError(t, ledger.Credit("alice", "ustars", decimal.NewFromInt(1000)))
	require.NoError(t, ledger.Credit("alice", "ustars", decimal.NewFromInt(500)))

	amount, err := ledger.Balance("alice", "ustars")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(1500)))

	require.NoError(t, ledger.Debit("alice", "ustars", decimal.NewFromInt(600)))
	amount, err = ledger.Balance("alice", "ustars")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(900)))

	err = ledger.Debit("alice", "ustars", decimal.NewFromInt(10000))
	require.Error(t, err)
	assert.Equal(t, ordermanager.KindInsufficientFunds, ordermanager.KindOf(err))

	err = ledger.Debit("nobody", "ustars", decimal.NewFromInt(1))
	require.Error(t, err)
	assert.Equal(t, ordermanager.KindInsufficientFunds, ordermanager.KindOf(err))

	amount, err = ledger.Balance("nobody", "ustars")
	require.NoError(t, err)
	assert.True(t, amount.IsZero())
}

func TestEscrowFlowConservesTotals(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)

	require.NoError(t, ledger.Credit("buyer", "ustars", decimal.NewFromInt(1000)))

	total := func() decimal.Decimal {
		sum := decimal.Zero
		for _, addr := range []string{"buyer", "escrow", "seller", "feemgr"} {
			amount, err := ledger.Balance(addr, "ustars")
			require.NoError(t, err)
			sum = sum.Add(amount)
		}
		return sum
	}
	before := total()

	funds := ordermanager.NewCoins(ordermanager.NewCoin("ustars", 300))
	require.NoError(t, ledger.CollectFunds("buyer", "escrow", funds))

	escrowed, err := ledger.Balance("escrow", "ustars")
	require.NoError(t, err)
	assert.True(t, escrowed.Equal(decimal.NewFromInt(300)))

	require.NoError(t, ledger.ApplyTransfers("escrow", []ordermanager.Transfer{
		{To: "seller", Coin: ordermanager.NewCoin("ustars", 294), Label: "seller"},
		{To: "feemgr", Coin: ordermanager.NewCoin("ustars", 6), Label: "protocol-fee"},
	}))

	escrowed, err = ledger.Balance("escrow", "ustars")
	require.NoError(t, err)
	assert.True(t, escrowed.IsZero())
	assert.True(t, before.Equal(total()))

	// Paying more than escrow holds must fail.
	err = ledger.ApplyTransfers("escrow", []ordermanager.Transfer{
		{To: "seller", Coin: ordermanager.NewCoin("ustars", 1), Label: "seller"},
	})
	require.Error(t, err)
	assert.Equal(t, ordermanager.KindInsufficientFunds, ordermanager.KindOf(err))
}
