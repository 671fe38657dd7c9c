package ordermanager

import "strconv"

// Transfer labels, surfaced on every funds leg for auditability.
const (
	LabelSeller       = "seller"
	LabelProtocol     = "protocol"
	LabelRoyalty      = "royalty"
	LabelMaker        = "maker"
	LabelTaker        = "taker"
	LabelListingFee   = "listing-fee"
	LabelRefund       = "refund"
	LabelEscrowReturn = "escrow-return"
	LabelExpiryReward = "expiry-reward"
	LabelPruneReward  = "prune-reward"
)

// Transfer is one funds leg out of engine escrow.
type Transfer struct {
	To    string `json:"to"`
	Coin  Coin   `json:"coin"`
	Label string `json:"label"`
}

// AssetTransfer is one asset custody move, already executed against the
// transfer authority and recorded here for the caller.
type AssetTransfer struct {
	Collection string `json:"collection"`
	TokenID    string `json:"token_id"`
	To         string `json:"to"`
}

// Outcome lists every side effect of a successful call: all value transfers,
// all custody moves and all structured events. Failed calls have no outcome
// and no partial effect.
type Outcome struct {
	Matched        bool            `json:"matched"`
	OrderID        string          `json:"order_id,omitempty"`
	Transfers      []Transfer      `json:"transfers"`
	AssetTransfers []AssetTransfer `json:"asset_transfers"`
	Events         []Event         `json:"events"`
}

func (out *Outcome) pay(to string, c Coin, label string) {
	if c.IsZero() {
		return
	}
	out.Transfers = append(out.Transfers, Transfer{To: to, Coin: c, Label: label})
}

func (out *Outcome) payAll(to string, cs Coins, label string) {
	for _, c := range cs {
		out.pay(to, c, label)
	}
}

func (out *Outcome) event(ev Event) {
	out.Events = append(out.Events, ev)
}

func itoa64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func utoa64(v uint64) string {
	return strconv.FormatUint(v, 10)
}
