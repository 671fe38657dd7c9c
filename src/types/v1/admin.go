package types

type ParamsPayload struct {
	Admin         string `json:"admin" binding:"required"`
	FeeManager    string `json:"fee_manager" binding:"required"`
	EscrowAddress string `json:"escrow_address" binding:"required"`

	ProtocolFeeBps   uint64 `json:"protocol_fee_bps"`
	MakerRewardBps   uint64 `json:"maker_reward_bps"`
	TakerRewardBps   uint64 `json:"taker_reward_bps"`
	MaxRoyaltyFeeBps uint64 `json:"max_royalty_fee_bps"`

	DefaultDenom    string   `json:"default_denom" binding:"required"`
	TradingEnabled  bool     `json:"trading_enabled"`
	Operators       []string `json:"operators"`
	MaxOrdersPruned int      `json:"max_orders_pruned"`
}

type UpdateParamsReq struct {
	Caller string        `json:"caller" binding:"required"`
	Params ParamsPayload `json:"params" binding:"required"`
}

type SetCollectionDenomReq struct {
	Caller     string `json:"caller" binding:"required"`
	Collection string `json:"collection" binding:"required"`
	Denom      string `json:"denom" binding:"required"`
}

type SetListingFeeReq struct {
	Caller string      `json:"caller" binding:"required"`
	Fee    CoinPayload `json:"fee" binding:"required"`
}

type RemoveListingFeeReq struct {
	Caller string `json:"caller" binding:"required"`
	Denom  string `json:"denom" binding:"required"`
}

type SetMinExpiryRewardReq struct {
	Caller string      `json:"caller" binding:"required"`
	Reward CoinPayload `json:"reward" binding:"required"`
}

type RemoveMinExpiryRewardReq struct {
	Caller string `json:"caller" binding:"required"`
	Denom  string `json:"denom" binding:"required"`
}

type RegisterCollectionReq struct {
	Caller           string `json:"caller" binding:"required"`
	Address          string `json:"address" binding:"required"`
	Name             string `json:"name"`
	RoyaltyBps       uint64 `json:"royalty_bps"`
	RoyaltyRecipient string `json:"royalty_recipient"`
	TradingEnabled   bool   `json:"trading_enabled"`
	TradingStartTime int64  `json:"trading_start_time"`
}
