package types

type SetAskReq struct {
	Caller     string              `json:"caller" binding:"required"`
	Collection string              `json:"collection" binding:"required"`
	TokenID    string              `json:"token_id" binding:"required"`
	Details    OrderDetailsPayload `json:"details" binding:"required"`
	Funds      []CoinPayload       `json:"funds"`
	SellNow    bool                `json:"sell_now"`
}

type UpdateAskReq struct {
	Caller     string              `json:"caller" binding:"required"`
	Collection string              `json:"collection" binding:"required"`
	TokenID    string              `json:"token_id" binding:"required"`
	Details    OrderDetailsPayload `json:"details" binding:"required"`
	Funds      []CoinPayload       `json:"funds"`
}

type RemoveAskReq struct {
	Caller     string `json:"caller" binding:"required"`
	Collection string `json:"collection" binding:"required"`
	TokenID    string `json:"token_id" binding:"required"`
}

// AcceptAskReq settles a listed token at the ask's price. Details.Price is
// the most the buyer is willing to pay.
type AcceptAskReq struct {
	Caller     string              `json:"caller" binding:"required"`
	Collection string              `json:"collection" binding:"required"`
	TokenID    string              `json:"token_id" binding:"required"`
	Details    OrderDetailsPayload `json:"details" binding:"required"`
	Funds      []CoinPayload       `json:"funds"`
}
