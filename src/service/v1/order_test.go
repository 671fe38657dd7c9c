package service

import (
	"context"
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
	"github.com/public-awesome/marketplace-sub000/src/registry"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
	types "github.com/public-awesome/marketplace-sub000/src/types/v1"
)

func marketParams() *ordermanager.Params {
	return &ordermanager.Params{
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

// newMarket builds an in-memory marketplace with one royalty-bearing
// collection, two minted tokens and funded buyer accounts.
func newMarket(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dao.Migrate(db))
	require.NoError(t, dao.EnsureParams(db, marketParams()))

	reg := registry.New(db)
	require.NoError(t, reg.RegisterCollection(&model.Collection{
		Address:          "coll",
		RoyaltyBps:       500,
		RoyaltyRecipient: "creator",
		TradingEnabled:   true,
	}))
	require.NoError(t, reg.MintToken("coll", "1", "seller"))
	require.NoError(t, reg.MintToken("coll", "2", "seller2"))

	ledger := registry.NewLedger(db)
	require.NoError(t, ledger.Credit("buyer", "ustars", decimal.NewFromInt(100_000)))
	require.NoError(t, ledger.Credit("buyer2", "ustars", decimal.NewFromInt(100_000)))
	require.NoError(t, ledger.Credit("seller", "ustars", decimal.NewFromInt(1_000)))
	return db
}

// exec runs one engine operation the way the service layer does, but with a
// caller-controlled timestamp so expiry behavior is testable.
func exec(t *testing.T, db *gorm.DB, caller string, funds ordermanager.Coins, now int64, op opFunc) (*ordermanager.Outcome, error) {
	t.Helper()
	var out *ordermanager.Outcome
	err := db.Transaction(func(tx *gorm.DB) error {
		store := dao.NewStore(tx)
		reg := registry.New(tx)
		ledger := registry.NewLedger(tx)
		eng := ordermanager.New(store, reg, reg, reg, reg)

		p, err := store.Params()
		if err != nil {
			return err
		}
		seq, err := store.NextSequence()
		if err != nil {
			return err
		}
		call := ordermanager.CallCtx{Caller: caller, Funds: funds, Height: seq, Time: now}

		if err := ledger.CollectFunds(caller, p.EscrowAddress, funds); err != nil {
			return err
		}
		if out, err = op(eng, call); err != nil {
			return err
		}
		if err := ledger.ApplyTransfers(p.EscrowAddress, out.Transfers); err != nil {
			return err
		}
		return store.RecordActivities(seq, out.Events)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func balance(t *testing.T, db *gorm.DB, address string) decimal.Decimal {
	t.Helper()
	amount, err := registry.NewLedger(db).Balance(address, "ustars")
	require.NoError(t, err)
	return amount
}

func totalSupply(t *testing.T, db *gorm.DB) decimal.Decimal {
	t.Helper()
	var rows []model.Balance
	require.NoError(t, db.Where("denom = ?", "ustars").Find(&rows).Error)
	sum := decimal.Zero
	for _, row := range rows {
		sum = sum.Add(row.Amount)
	}
	return sum
}

func ownerOf(t *testing.T, db *gorm.DB, tokenID string) string {
	t.Helper()
	owner, _, err := registry.New(db).OwnerOf("coll", tokenID)
	require.NoError(t, err)
	return owner
}

func coins(amount int64) ordermanager.Coins {
	return ordermanager.NewCoins(ordermanager.NewCoin("ustars", amount))
}

func price(amount int64) ordermanager.OrderDetails {
	return ordermanager.OrderDetails{Price: ordermanager.NewCoin("ustars", amount)}
}

func TestAskThenCrossingBidSettlesAtAskPrice(t *testing.T) {
	db := newMarket(t)
	supply := totalSupply(t, db)

	out, err := exec(t, db, "seller", nil, 10, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetAsk(call, "coll", "1", price(1000), false)
	})
	require.NoError(t, err)
	assert.False(t, out.Matched)
	assert.Equal(t, "escrow", ownerOf(t, db, "1"))

	// The bid crosses above the ask; the sale settles at the resting ask
	// price and the difference comes back to the buyer.
	out, err = exec(t, db, "buyer", coins(1200), 20, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, "coll", "1", price(1200), false)
	})
	require.NoError(t, err)
	assert.True(t, out.Matched)

	assert.Equal(t, "buyer", ownerOf(t, db, "1"))
	assert.True(t, balance(t, db, "buyer").Equal(decimal.NewFromInt(99_000)))
	// 1000 - 20 protocol - 50 royalty.
	assert.True(t, balance(t, db, "seller").Equal(decimal.NewFromInt(1_930)))
	assert.True(t, balance(t, db, "creator").Equal(decimal.NewFromInt(50)))
	assert.True(t, balance(t, db, "feemgr").Equal(decimal.NewFromInt(20)))
	assert.True(t, balance(t, db, "escrow").IsZero())
	assert.True(t, supply.Equal(totalSupply(t, db)))

	// Both sides are gone from the book.
	got, err := dao.NewStore(db).GetOrder(ordermanager.AskID("coll", "1"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFinderRewardsSplitProtocolFee(t *testing.T) {
	db := newMarket(t)

	askDetails := price(10_000)
	askDetails.Finder = "mfinder"
	_, err := exec(t, db, "seller", nil, 10, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetAsk(call, "coll", "1", askDetails, false)
	})
	require.NoError(t, err)

	bidDetails := price(10_000)
	bidDetails.Finder = "tfinder"
	out, err := exec(t, db, "buyer", coins(10_000), 20, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, "coll", "1", bidDetails, true)
	})
	require.NoError(t, err)
	require.True(t, out.Matched)

	// Protocol fee 200 splits 40% maker, 10% taker, residual to the fee
	// manager. Royalty is 500; the seller keeps the rest.
	assert.True(t, balance(t, db, "mfinder").Equal(decimal.NewFromInt(80)))
	assert.True(t, balance(t, db, "tfinder").Equal(decimal.NewFromInt(20)))
	assert.True(t, balance(t, db, "feemgr").Equal(decimal.NewFromInt(100)))
	assert.True(t, balance(t, db, "creator").Equal(decimal.NewFromInt(500)))
	assert.True(t, balance(t, db, "seller").Equal(decimal.NewFromInt(10_300)))
	assert.True(t, balance(t, db, "escrow").IsZero())
}

func TestSpecificBidOutranksCollectionBid(t *testing.T) {
	db := newMarket(t)

	out, err := exec(t, db, "buyer", coins(1000), 10, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, "coll", "2", price(1000), false)
	})
	require.NoError(t, err)
	specificID := out.OrderID

	out, err = exec(t, db, "buyer2", coins(1000), 20, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetCollectionBid(call, "coll", price(1000), false)
	})
	require.NoError(t, err)
	genericID := out.OrderID

	out, err = exec(t, db, "seller2", nil, 30, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetAsk(call, "coll", "2", price(1000), true)
	})
	require.NoError(t, err)
	require.True(t, out.Matched)

	// The token-specific bid wins at equal price; the collection bid stays
	// on the book with its escrow intact.
	assert.Equal(t, "buyer", ownerOf(t, db, "2"))
	store := dao.NewStore(db)
	gone, err := store.GetOrder(specificID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	still, err := store.GetOrder(genericID)
	require.NoError(t, err)
	require.NotNil(t, still)
	assert.Equal(t, "buyer2", still.Creator)
}

func TestSellNowWithoutMatchRollsBack(t *testing.T) {
	db := newMarket(t)
	supply := totalSupply(t, db)

	_, err := exec(t, db, "seller", nil, 10, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetAsk(call, "coll", "1", price(1000), true)
	})
	require.Error(t, err)
	assert.Equal(t, ordermanager.KindNoMatchFound, ordermanager.KindOf(err))

	// Nothing committed: no order, no custody change, no value moved.
	got, gerr := dao.NewStore(db).GetOrder(ordermanager.AskID("coll", "1"))
	require.NoError(t, gerr)
	assert.Nil(t, got)
	assert.Equal(t, "seller", ownerOf(t, db, "1"))
	assert.True(t, supply.Equal(totalSupply(t, db)))

	_, err = exec(t, db, "buyer", coins(500), 10, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, "coll", "1", price(500), true)
	})
	require.Error(t, err)
	assert.Equal(t, ordermanager.KindNoMatchFound, ordermanager.KindOf(err))
	assert.True(t, balance(t, db, "buyer").Equal(decimal.NewFromInt(100_000)))
}

func TestExpiredBidPrunedRewardToOperator(t *testing.T) {
	db := newMarket(t)
	require.NoError(t, dao.NewStore(db).SetMinExpiryReward(ordermanager.NewCoin("ustars", 5)))

	details := price(500)
	details.Expiry = &ordermanager.Expiry{Timestamp: 100, Reward: ordermanager.NewCoin("ustars", 10)}
	out, err := exec(t, db, "buyer", coins(510), 50, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, "coll", "1", details, false)
	})
	require.NoError(t, err)
	bidID := out.OrderID
	assert.True(t, balance(t, db, "buyer").Equal(decimal.NewFromInt(99_490)))

	// Not expired yet.
	_, err = exec(t, db, "operator", nil, 80, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.PruneExpired(call, 0)
	})
	require.NoError(t, err)
	still, err := dao.NewStore(db).GetOrder(bidID)
	require.NoError(t, err)
	require.NotNil(t, still)

	// Only operators may prune.
	_, err = exec(t, db, "buyer2", nil, 150, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.PruneExpired(call, 0)
	})
	require.Error(t, err)
	assert.Equal(t, ordermanager.KindUnauthorized, ordermanager.KindOf(err))

	out, err = exec(t, db, "operator", nil, 150, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.PruneExpired(call, 0)
	})
	require.NoError(t, err)

	gone, err := dao.NewStore(db).GetOrder(bidID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.True(t, balance(t, db, "buyer").Equal(decimal.NewFromInt(99_990)))
	assert.True(t, balance(t, db, "operator").Equal(decimal.NewFromInt(10)))
	assert.True(t, balance(t, db, "escrow").IsZero())

	var sawRemove, sawSummary bool
	for _, ev := range out.Events {
		if ev.Type == "remove-bid" {
			sawRemove = true
		}
		if ev.Type == "prune-expired" {
			sawSummary = true
		}
	}
	assert.True(t, sawRemove)
	assert.True(t, sawSummary)
}

func TestMatchRefundsRestingExpiryReward(t *testing.T) {
	db := newMarket(t)
	require.NoError(t, dao.NewStore(db).SetMinExpiryReward(ordermanager.NewCoin("ustars", 5)))

	details := price(1000)
	details.Expiry = &ordermanager.Expiry{Timestamp: 10_000, Reward: ordermanager.NewCoin("ustars", 10)}
	_, err := exec(t, db, "seller", coins(10), 50, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetAsk(call, "coll", "1", details, false)
	})
	require.NoError(t, err)
	assert.True(t, balance(t, db, "seller").Equal(decimal.NewFromInt(990)))

	_, err = exec(t, db, "buyer", coins(1000), 60, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, "coll", "1", price(1000), true)
	})
	require.NoError(t, err)

	// Proceeds 930 plus the 10 reward escrowed with the resting ask.
	assert.True(t, balance(t, db, "seller").Equal(decimal.NewFromInt(1_930)))
	assert.True(t, balance(t, db, "escrow").IsZero())
}

func TestRemoveBidReturnsEscrowOnce(t *testing.T) {
	db := newMarket(t)

	out, err := exec(t, db, "buyer", coins(700), 10, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, "coll", "1", price(700), false)
	})
	require.NoError(t, err)
	bidID := out.OrderID
	assert.True(t, balance(t, db, "buyer").Equal(decimal.NewFromInt(99_300)))

	// Live order: only the creator may remove it.
	_, err = exec(t, db, "buyer2", nil, 20, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.RemoveBid(call, bidID)
	})
	require.Error(t, err)
	assert.Equal(t, ordermanager.KindUnauthorized, ordermanager.KindOf(err))

	_, err = exec(t, db, "buyer", nil, 20, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.RemoveBid(call, bidID)
	})
	require.NoError(t, err)
	assert.True(t, balance(t, db, "buyer").Equal(decimal.NewFromInt(100_000)))

	_, err = exec(t, db, "buyer", nil, 30, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.RemoveBid(call, bidID)
	})
	require.Error(t, err)
	assert.Equal(t, ordermanager.KindInvalidInput, ordermanager.KindOf(err))
}

func TestUpdateBidCrossesAndSettles(t *testing.T) {
	db := newMarket(t)

	_, err := exec(t, db, "seller", nil, 10, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetAsk(call, "coll", "1", price(1000), false)
	})
	require.NoError(t, err)

	out, err := exec(t, db, "buyer", coins(800), 20, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, "coll", "1", price(800), false)
	})
	require.NoError(t, err)
	require.False(t, out.Matched)
	bidID := out.OrderID

	// Raising the bid above the ask settles immediately at the ask price;
	// the escrowed 800 counts toward the payment.
	out, err = exec(t, db, "buyer", coins(300), 30, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.UpdateBid(call, bidID, price(1100))
	})
	require.NoError(t, err)
	assert.True(t, out.Matched)

	assert.Equal(t, "buyer", ownerOf(t, db, "1"))
	assert.True(t, balance(t, db, "buyer").Equal(decimal.NewFromInt(99_000)))
	assert.True(t, balance(t, db, "seller").Equal(decimal.NewFromInt(1_930)))
	assert.True(t, balance(t, db, "escrow").IsZero())
}

func TestAcceptBidTransfersWithoutFunds(t *testing.T) {
	db := newMarket(t)

	out, err := exec(t, db, "buyer", coins(1000), 10, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, "coll", "1", price(1000), false)
	})
	require.NoError(t, err)
	bidID := out.OrderID

	out, err = exec(t, db, "seller", nil, 20, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.AcceptBid(call, bidID, price(1000))
	})
	require.NoError(t, err)
	assert.True(t, out.Matched)

	assert.Equal(t, "buyer", ownerOf(t, db, "1"))
	assert.True(t, balance(t, db, "seller").Equal(decimal.NewFromInt(1_930)))

	// Accepting below the bid's floor must fail before any effect.
	out2, err := exec(t, db, "buyer2", coins(500), 30, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, "coll", "2", price(500), false)
	})
	require.NoError(t, err)
	_, err = exec(t, db, "seller2", nil, 40, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.AcceptBid(call, out2.OrderID, price(600))
	})
	require.Error(t, err)
	assert.Equal(t, ordermanager.KindInsufficientFunds, ordermanager.KindOf(err))
}

func TestServiceSetAskPersistsOrder(t *testing.T) {
	db := newMarket(t)
	svcCtx := &svc.ServerCtx{
		DB:  db,
		Dao: dao.New(context.Background(), db, nil),
	}

	resp, err := SetAsk(context.Background(), svcCtx, &types.SetAskReq{
		Caller:     "seller",
		Collection: "coll",
		TokenID:    "1",
		Details: types.OrderDetailsPayload{
			Price: types.CoinPayload{Denom: "ustars", Amount: "1000"},
		},
	})
	require.NoError(t, err)
	assert.False(t, resp.Matched)
	assert.Equal(t, ordermanager.AskID("coll", "1"), resp.OrderID)

	got, err := dao.NewStore(db).GetOrder(resp.OrderID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "seller", got.Creator)
	assert.Equal(t, "escrow", ownerOf(t, db, "1"))

	// Malformed amounts never reach the engine.
	_, err = SetBid(context.Background(), svcCtx, &types.SetBidReq{
		Caller:     "buyer",
		Collection: "coll",
		TokenID:    "1",
		Details: types.OrderDetailsPayload{
			Price: types.CoinPayload{Denom: "ustars", Amount: "12.5"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, ordermanager.KindInvalidInput, ordermanager.KindOf(err))
}

func TestSameCreatorBidsRestIndependently(t *testing.T) {
	db := newMarket(t)

	first, err := exec(t, db, "buyer", coins(400), 10, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, "coll", "1", price(400), false)
	})
	require.NoError(t, err)
	second, err := exec(t, db, "buyer", coins(500), 20, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, "coll", "1", price(500), false)
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.OrderID, second.OrderID)

	// Both escrows are held; the higher bid wins the match and the lower
	// one stays on the book.
	assert.True(t, balance(t, db, "buyer").Equal(decimal.NewFromInt(99_100)))

	out, err := exec(t, db, "seller", nil, 30, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetAsk(call, "coll", "1", price(400), true)
	})
	require.NoError(t, err)
	require.True(t, out.Matched)

	store := dao.NewStore(db)
	gone, err := store.GetOrder(second.OrderID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	still, err := store.GetOrder(first.OrderID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestAdminOpsRequireAdmin(t *testing.T) {
	db := newMarket(t)

	_, err := exec(t, db, "buyer", nil, 10, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetCollectionDenom(call, "coll", "uatom")
	})
	require.Error(t, err)
	assert.Equal(t, ordermanager.KindUnauthorized, ordermanager.KindOf(err))

	_, err = exec(t, db, "admin", nil, 20, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetCollectionDenom(call, "coll", "uatom")
	})
	require.NoError(t, err)

	// The collection no longer accepts the default denom.
	_, err = exec(t, db, "buyer", coins(500), 30, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, "coll", "1", price(500), false)
	})
	require.Error(t, err)
	assert.Equal(t, ordermanager.KindInvalidInput, ordermanager.KindOf(err))

	next := *marketParams()
	next.ProtocolFeeBps = 11_000
	_, err = exec(t, db, "admin", nil, 40, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.UpdateParams(call, next)
	})
	require.Error(t, err)
	assert.Equal(t, ordermanager.KindInvalidInput, ordermanager.KindOf(err))
}

func TestImmediateSaleMovesAssetDirectly(t *testing.T) {
	db := newMarket(t)

	_, err := exec(t, db, "buyer", coins(1000), 10, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, "coll", "1", price(1000), false)
	})
	require.NoError(t, err)

	out, err := exec(t, db, "seller", nil, 20, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetAsk(call, "coll", "1", price(1000), true)
	})
	require.NoError(t, err)
	require.True(t, out.Matched)

	// One custody move, seller to buyer. The escrow address never holds
	// the asset on an immediate sale.
	require.Len(t, out.AssetTransfers, 1)
	assert.Equal(t, "buyer", out.AssetTransfers[0].To)
	assert.Equal(t, "buyer", ownerOf(t, db, "1"))
}

func TestUpdateAskRefundsToAssetRecipient(t *testing.T) {
	db := newMarket(t)
	require.NoError(t, dao.NewStore(db).SetMinExpiryReward(ordermanager.NewCoin("ustars", 5)))

	details := price(1000)
	details.Expiry = &ordermanager.Expiry{Timestamp: 10_000, Reward: ordermanager.NewCoin("ustars", 10)}
	_, err := exec(t, db, "seller", coins(10), 50, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetAsk(call, "coll", "1", details, false)
	})
	require.NoError(t, err)

	// Dropping the expiry releases the escrowed reward; the leftover goes
	// to the ask's asset recipient, not the caller.
	updated := price(1200)
	updated.Recipient = "payout"
	_, err = exec(t, db, "seller", nil, 60, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.UpdateAsk(call, "coll", "1", updated)
	})
	require.NoError(t, err)

	assert.True(t, balance(t, db, "payout").Equal(decimal.NewFromInt(10)))
	assert.True(t, balance(t, db, "seller").Equal(decimal.NewFromInt(990)))
	assert.True(t, balance(t, db, "escrow").IsZero())
}
