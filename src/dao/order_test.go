package dao

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
)

func testParams() *ordermanager.Params {
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

	require.NoError(t, Migrate(db))
	require.NoError(t, EnsureParams(db, testParams()))
	return db
}

func TestOrderRoundTrip(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	ask := ordermanager.NewAsk("seller", "coll", "1", ordermanager.OrderDetails{
		Price:      ordermanager.NewCoin("ustars", 100),
		Recipient:  "payout",
		Finder:     "finder",
		ReserveFor: "vip",
		Expiry: &ordermanager.Expiry{
			Timestamp: 12345,
			Reward:    ordermanager.NewCoin("ustars", 5),
		},
	}, 7, 3)
	require.NoError(t, store.CreateOrder(ask))

	got, err := store.GetOrder(ask.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ask.ID, got.ID)
	assert.Equal(t, ordermanager.KindAsk, got.Kind)
	assert.Equal(t, "payout", got.Details.Recipient)
	assert.Equal(t, "vip", got.Details.ReserveFor)
	require.NotNil(t, got.Details.Expiry)
	assert.Equal(t, int64(12345), got.Details.Expiry.Timestamp)
	assert.True(t, got.Details.Expiry.Reward.Amount.Equal(ask.Details.Expiry.Reward.Amount))
	assert.Equal(t, uint64(7), got.Height)
	assert.Equal(t, uint64(3), got.Nonce)

	// Creating the same id again must fail.
	require.Error(t, store.CreateOrder(ask))

	// Save replaces the details in place.
	ask.Details.Price = ordermanager.NewCoin("ustars", 120)
	ask.Details.Expiry = nil
	require.NoError(t, store.SaveOrder(ask))
	got, err = store.GetOrder(ask.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Details.Price.Amount.Equal(ask.Details.Price.Amount))
	assert.Nil(t, got.Details.Expiry)

	// Delete is idempotent.
	require.NoError(t, store.DeleteOrder(ask.ID))
	require.NoError(t, store.DeleteOrder(ask.ID))
	got, err = store.GetOrder(ask.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCandidateQueriesFilterOnKeys(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	bid := ordermanager.NewBid("b1", "coll", "1", ordermanager.OrderDetails{Price: ordermanager.NewCoin("ustars", 100)}, 1, 1)
	otherToken := ordermanager.NewBid("b2", "coll", "2", ordermanager.OrderDetails{Price: ordermanager.NewCoin("ustars", 100)}, 2, 2)
	otherDenom := ordermanager.NewBid("b3", "coll", "1", ordermanager.OrderDetails{Price: ordermanager.NewCoin("uatom", 100)}, 3, 3)
	cbid := ordermanager.NewCollectionBid("b4", "coll", ordermanager.OrderDetails{Price: ordermanager.NewCoin("ustars", 90)}, 4, 4)
	ask := ordermanager.NewAsk("s1", "coll", "9", ordermanager.OrderDetails{Price: ordermanager.NewCoin("ustars", 100)}, 5, 5)

	for _, o := range []*ordermanager.Order{bid, otherToken, otherDenom, cbid, ask} {
		require.NoError(t, store.CreateOrder(o))
	}

	bids, err := store.BidsByTokenDenom("coll", "1", "ustars")
	require.NoError(t, err)
	require.Len(t, bids, 1)
	assert.Equal(t, bid.ID, bids[0].ID)

	cbids, err := store.CollectionBidsByDenom("coll", "ustars")
	require.NoError(t, err)
	require.Len(t, cbids, 1)
	assert.Equal(t, cbid.ID, cbids[0].ID)

	asks, err := store.AsksByCollectionDenom("coll", "ustars")
	require.NoError(t, err)
	require.Len(t, asks, 1)
	assert.Equal(t, ask.ID, asks[0].ID)
}

func TestExpiredOrdersOldestFirst(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	mk := func(creator, token string, expiry int64, height uint64) *ordermanager.Order {
		return ordermanager.NewBid(creator, "coll", token, ordermanager.OrderDetails{
			Price:  ordermanager.NewCoin("ustars", 100),
			Expiry: &ordermanager.Expiry{Timestamp: expiry, Reward: ordermanager.NewCoin("ustars", 1)},
		}, height, height)
	}
	require.NoError(t, store.CreateOrder(mk("a", "1", 300, 1)))
	require.NoError(t, store.CreateOrder(mk("b", "2", 100, 2)))
	require.NoError(t, store.CreateOrder(mk("c", "3", 200, 3)))
	// No expiry, never pruned.
	noExp := ordermanager.NewBid("d", "coll", "4", ordermanager.OrderDetails{Price: ordermanager.NewCoin("ustars", 100)}, 4, 4)
	require.NoError(t, store.CreateOrder(noExp))

	expired, err := store.ExpiredOrders(250, 10)
	require.NoError(t, err)
	require.Len(t, expired, 2)
	assert.Equal(t, "b", expired[0].Creator)
	assert.Equal(t, "c", expired[1].Creator)

	expired, err = store.ExpiredOrders(500, 1)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "b", expired[0].Creator)
}

func TestNonceAndSequenceAdvance(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	n1, err := store.NextNonce()
	require.NoError(t, err)
	n2, err := store.NextNonce()
	require.NoError(t, err)
	assert.Equal(t, n1+1, n2)

	s1, err := store.NextSequence()
	require.NoError(t, err)
	s2, err := store.NextSequence()
	require.NoError(t, err)
	assert.Equal(t, s1+1, s2)
}

func TestParamsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	p, err := store.Params()
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Admin)
	assert.Equal(t, []string{"operator"}, p.Operators)

	p.TradingEnabled = false
	p.Operators = []string{"op1", "op2"}
	require.NoError(t, store.SaveParams(p))

	got, err := store.Params()
	require.NoError(t, err)
	assert.False(t, got.TradingEnabled)
	assert.Equal(t, []string{"op1", "op2"}, got.Operators)
}

func TestFeeTables(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	fees, err := store.ListingFees()
	require.NoError(t, err)
	assert.Empty(t, fees)

	require.NoError(t, store.SetListingFee(ordermanager.NewCoin("ustars", 50)))
	require.NoError(t, store.SetListingFee(ordermanager.NewCoin("uatom", 5)))
	require.NoError(t, store.SetListingFee(ordermanager.NewCoin("ustars", 75)))

	fees, err = store.ListingFees()
	require.NoError(t, err)
	require.Len(t, fees, 2)
	assert.Equal(t, "uatom", fees[0].Denom)
	assert.Equal(t, "ustars", fees[1].Denom)
	assert.True(t, fees[1].Amount.Equal(ordermanager.NewCoin("ustars", 75).Amount))

	require.NoError(t, store.RemoveListingFee("uatom"))
	fees, err = store.ListingFees()
	require.NoError(t, err)
	require.Len(t, fees, 1)

	_, ok, err := store.MinExpiryReward("ustars")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SetMinExpiryReward(ordermanager.NewCoin("ustars", 10)))
	amount, ok, err := store.MinExpiryReward("ustars")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, amount.Equal(ordermanager.NewCoin("ustars", 10).Amount))

	require.NoError(t, store.RemoveMinExpiryReward("ustars"))
	_, ok, err = store.MinExpiryReward("ustars")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SetCollectionDenom("coll", "uatom"))
	denom, err := store.CollectionDenom("coll")
	require.NoError(t, err)
	assert.Equal(t, "uatom", denom)

	denom, err = store.CollectionDenom("unknown")
	require.NoError(t, err)
	assert.Equal(t, "", denom)
}

func TestQueryActivitiesPagesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	for seq := uint64(1); seq <= 3; seq++ {
		require.NoError(t, store.RecordActivities(seq, []ordermanager.Event{
			{Type: "set-ask", Attrs: []ordermanager.Attr{
				{Key: "id", Value: "order-" + string(rune('0'+seq))},
				{Key: "collection", Value: "coll"},
			}},
		}))
	}
	require.NoError(t, store.RecordActivities(4, []ordermanager.Event{
		{Type: "remove-ask", Attrs: []ordermanager.Attr{
			{Key: "collection", Value: "other"},
		}},
	}))

	d := New(context.Background(), db, nil)

	rows, total, err := d.QueryActivities("coll", "", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rows, 2)
	assert.Equal(t, uint64(3), rows[0].Sequence)
	assert.Equal(t, uint64(2), rows[1].Sequence)

	rows, total, err = d.QueryActivities("", "remove-ask", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "other", rows[0].Collection)
}
