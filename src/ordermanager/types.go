package ordermanager

// OrderKind discriminates the three order records sharing the unified store.
type OrderKind string

const (
	KindAsk           OrderKind = "ask"
	KindBid           OrderKind = "bid"
	KindCollectionBid OrderKind = "collection_bid"
)

// Expiry is an optional absolute expiry plus the reward pre-paid by the order
// creator. The reward is escrowed with the order and paid to whoever prunes
// the order after it expires unmatched; a normal match refunds it in full.
type Expiry struct {
	Timestamp int64 `json:"timestamp"`
	Reward    Coin  `json:"reward"`
}

// OrderDetails is the embedded value shared by all order kinds.
type OrderDetails struct {
	Price      Coin    `json:"price"`
	Recipient  string  `json:"recipient,omitempty"`
	Finder     string  `json:"finder,omitempty"`
	ReserveFor string  `json:"reserve_for,omitempty"`
	Expiry     *Expiry `json:"expiry,omitempty"`
}

// ExpiryReward returns the escrowed reward coin, or nil when the order
// carries no expiry.
func (d OrderDetails) ExpiryReward() *Coin {
	if d.Expiry == nil {
		return nil
	}
	reward := d.Expiry.Reward
	return &reward
}

// IsExpired reports whether the order passed its expiry at the given time.
// Orders without expiry never expire.
func (d OrderDetails) IsExpired(now int64) bool {
	return d.Expiry != nil && d.Expiry.Timestamp <= now
}

// Order is the unified record for Asks, Bids and Collection Bids. TokenID is
// empty for collection bids. Height and Nonce record submission order and
// break price ties deterministically; for bids and collection bids they are
// also part of the identity hash.
type Order struct {
	ID         string       `json:"id"`
	Kind       OrderKind    `json:"kind"`
	Creator    string       `json:"creator"`
	Collection string       `json:"collection"`
	TokenID    string       `json:"token_id,omitempty"`
	Details    OrderDetails `json:"details"`
	Height     uint64       `json:"height"`
	Nonce      uint64       `json:"nonce"`
}

func NewAsk(creator, collection, tokenID string, details OrderDetails, height, nonce uint64) *Order {
	return &Order{
		ID:         AskID(collection, tokenID),
		Kind:       KindAsk,
		Creator:    creator,
		Collection: collection,
		TokenID:    tokenID,
		Details:    details,
		Height:     height,
		Nonce:      nonce,
	}
}

func NewBid(creator, collection, tokenID string, details OrderDetails, height, nonce uint64) *Order {
	return &Order{
		ID:         BidID(collection, tokenID, height, nonce),
		Kind:       KindBid,
		Creator:    creator,
		Collection: collection,
		TokenID:    tokenID,
		Details:    details,
		Height:     height,
		Nonce:      nonce,
	}
}

func NewCollectionBid(creator, collection string, details OrderDetails, height, nonce uint64) *Order {
	return &Order{
		ID:         CollectionBidID(collection, height, nonce),
		Kind:       KindCollectionBid,
		Creator:    creator,
		Collection: collection,
		Details:    details,
		Height:     height,
		Nonce:      nonce,
	}
}

// AssetRecipient is the address that receives the order's proceeds: the
// designated recipient when set, otherwise the creator.
func (o *Order) AssetRecipient() string {
	if o.Details.Recipient != "" {
		return o.Details.Recipient
	}
	return o.Creator
}

// MatchingBid is the tagged result of matching an ask: exactly one of a
// token-specific bid or a collection bid. Kind is always KindBid or
// KindCollectionBid.
type MatchingBid struct {
	Kind  OrderKind
	Order *Order
}
