package ordermanager

import "github.com/shopspring/decimal"

// Params is the marketplace policy snapshot. It is read by every operation
// and mutated only through the authorized admin path.
type Params struct {
	// Admin may mutate params and the per-denom fee tables.
	Admin string `json:"admin"`
	// FeeManager receives the residual protocol fee and listing fees.
	FeeManager string `json:"fee_manager"`
	// EscrowAddress holds escrowed assets and funds while orders rest.
	EscrowAddress string `json:"escrow_address"`

	ProtocolFeeBps   uint64 `json:"protocol_fee_bps"`
	MakerRewardBps   uint64 `json:"maker_reward_bps"`
	TakerRewardBps   uint64 `json:"taker_reward_bps"`
	MaxRoyaltyFeeBps uint64 `json:"max_royalty_fee_bps"`

	// DefaultDenom applies to collections without an explicit denom entry.
	DefaultDenom string `json:"default_denom"`

	// TradingEnabled gates all order-creating operations.
	TradingEnabled bool `json:"trading_enabled"`

	// Operators may run the bounded expired-order prune.
	Operators []string `json:"operators"`
	// MaxOrdersPruned caps a single prune invocation.
	MaxOrdersPruned int `json:"max_orders_pruned"`
}

func (p *Params) isOperator(addr string) bool {
	for _, op := range p.Operators {
		if op == addr {
			return true
		}
	}
	return false
}

// Store is the persistent order state consumed by the engine. The host runs
// every operation inside one transaction over an implementation of this
// interface; any error aborts the call with no partial effect.
//
// Lookups return (nil, nil) when the record does not exist.
type Store interface {
	GetOrder(id string) (*Order, error)
	// CreateOrder fails when a record with the same id already exists.
	CreateOrder(o *Order) error
	SaveOrder(o *Order) error
	// DeleteOrder is idempotent.
	DeleteOrder(id string) error

	// Candidate enumeration for matching. Implementations filter on the
	// exact key columns only; price comparison and ordering happen in the
	// engine so results are identical across storage backends.
	BidsByTokenDenom(collection, tokenID, denom string) ([]Order, error)
	CollectionBidsByDenom(collection, denom string) ([]Order, error)
	AsksByCollectionDenom(collection, denom string) ([]Order, error)

	// ExpiredOrders lists orders with expiry at or before now, oldest expiry
	// first, id ascending within a timestamp.
	ExpiredOrders(now int64, limit int) ([]Order, error)

	// NextNonce increments and returns the single shared order nonce.
	NextNonce() (uint64, error)

	Params() (*Params, error)
	SaveParams(p *Params) error

	// CollectionDenom returns the accepted denom for a collection, or ""
	// when the default applies.
	CollectionDenom(collection string) (string, error)
	SetCollectionDenom(collection, denom string) error

	// ListingFees returns configured (denom, amount) listing fees sorted by
	// denom. An empty result means listing is free.
	ListingFees() ([]Coin, error)
	SetListingFee(fee Coin) error
	RemoveListingFee(denom string) error

	// MinExpiryReward returns the configured floor for expiry rewards in a
	// denom; ok is false when the denom has no entry (expiry not accepted
	// in that denom).
	MinExpiryReward(denom string) (amount decimal.Decimal, ok bool, err error)
	SetMinExpiryReward(reward Coin) error
	RemoveMinExpiryReward(denom string) error
}

// OwnershipOracle answers who currently owns a token. Approved operators may
// act for the owner where ownership is required.
type OwnershipOracle interface {
	OwnerOf(collection, tokenID string) (owner string, approved []string, err error)
}

// TransferAuthority moves a token between addresses.
type TransferAuthority interface {
	TransferToken(collection, tokenID, to string) error
}

// RoyaltyOracle reports the royalty share and beneficiary for a collection.
// A zero share with no recipient means no royalty.
type RoyaltyOracle interface {
	RoyaltyInfo(collection string) (bps uint64, recipient string, err error)
}

// TradabilityGate reports whether a collection currently trades.
type TradabilityGate interface {
	IsTradable(collection string, now int64) (bool, error)
}
