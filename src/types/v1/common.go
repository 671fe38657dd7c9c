package types

// CoinPayload carries an amount as a base-10 integer string, so prices
// survive JSON without float precision loss.
type CoinPayload struct {
	Denom  string `json:"denom" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

type ExpiryPayload struct {
	Timestamp int64       `json:"timestamp" binding:"required"`
	Reward    CoinPayload `json:"reward" binding:"required"`
}

type OrderDetailsPayload struct {
	Price      CoinPayload    `json:"price" binding:"required"`
	Recipient  string         `json:"recipient"`
	Finder     string         `json:"finder"`
	ReserveFor string         `json:"reserve_for"`
	Expiry     *ExpiryPayload `json:"expiry"`
}

type AttrResp struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type EventResp struct {
	Type  string     `json:"type"`
	Attrs []AttrResp `json:"attrs"`
}

type TransferResp struct {
	To     string `json:"to"`
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
	Label  string `json:"label"`
}

type AssetTransferResp struct {
	Collection string `json:"collection"`
	TokenID    string `json:"token_id"`
	To         string `json:"to"`
}

// OutcomeResp is the uniform response body of every state-changing
// operation.
type OutcomeResp struct {
	Matched        bool                `json:"matched"`
	OrderID        string              `json:"order_id,omitempty"`
	Transfers      []TransferResp      `json:"transfers"`
	AssetTransfers []AssetTransferResp `json:"asset_transfers"`
	Events         []EventResp         `json:"events"`
}

type OrderResp struct {
	ID         string              `json:"id"`
	Kind       string              `json:"kind"`
	Creator    string              `json:"creator"`
	Collection string              `json:"collection"`
	TokenID    string              `json:"token_id,omitempty"`
	Details    OrderDetailsPayload `json:"details"`
	Height     uint64              `json:"height"`
	Nonce      uint64              `json:"nonce"`
}

type OrderListResp struct {
	Total  int64       `json:"total"`
	Orders []OrderResp `json:"orders"`
}

type ActivityResp struct {
	Sequence   uint64     `json:"sequence"`
	EventType  string     `json:"event_type"`
	OrderID    string     `json:"order_id,omitempty"`
	Collection string     `json:"collection,omitempty"`
	TokenID    string     `json:"token_id,omitempty"`
	Attrs      []AttrResp `json:"attrs"`
}

type ActivityListResp struct {
	Total      int64          `json:"total"`
	Activities []ActivityResp `json:"activities"`
}
