package types

type SetBidReq struct {
	Caller     string              `json:"caller" binding:"required"`
	Collection string              `json:"collection" binding:"required"`
	TokenID    string              `json:"token_id" binding:"required"`
	Details    OrderDetailsPayload `json:"details" binding:"required"`
	Funds      []CoinPayload       `json:"funds"`
	BuyNow     bool                `json:"buy_now"`
}

type UpdateBidReq struct {
	Caller  string              `json:"caller" binding:"required"`
	Details OrderDetailsPayload `json:"details" binding:"required"`
	Funds   []CoinPayload       `json:"funds"`
}

type RemoveBidReq struct {
	Caller string `json:"caller" binding:"required"`
}

// AcceptBidReq sells the bid's token at the bid's price. Details.Price is
// the least the seller is willing to receive before fees.
type AcceptBidReq struct {
	Caller  string              `json:"caller" binding:"required"`
	Details OrderDetailsPayload `json:"details" binding:"required"`
}

type SetCollectionBidReq struct {
	Caller     string              `json:"caller" binding:"required"`
	Collection string              `json:"collection" binding:"required"`
	Details    OrderDetailsPayload `json:"details" binding:"required"`
	Funds      []CoinPayload       `json:"funds"`
	BuyNow     bool                `json:"buy_now"`
}

// AcceptCollectionBidReq names the token the seller delivers.
type AcceptCollectionBidReq struct {
	Caller  string              `json:"caller" binding:"required"`
	TokenID string              `json:"token_id" binding:"required"`
	Details OrderDetailsPayload `json:"details" binding:"required"`
}

type PruneExpiredReq struct {
	Caller string `json:"caller" binding:"required"`
	Limit  int    `json:"limit"`
}
