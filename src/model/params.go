package model

// MarketParams is the single policy row (id = 1). Nonce and Sequence are the
// shared order nonce and the call sequence counter; both are advanced with
// row locks inside the operation transaction.
type MarketParams struct {
	ID int64 `gorm:"column:id;primaryKey"`

	Admin         string `gorm:"column:admin;type:varchar(66);not null"`
	FeeManager    string `gorm:"column:fee_manager;type:varchar(66);not null"`
	EscrowAddress string `gorm:"column:escrow_address;type:varchar(66);not null"`

	ProtocolFeeBps   uint64 `gorm:"column:protocol_fee_bps;not null"`
	MakerRewardBps   uint64 `gorm:"column:maker_reward_bps;not null"`
	TakerRewardBps   uint64 `gorm:"column:taker_reward_bps;not null"`
	MaxRoyaltyFeeBps uint64 `gorm:"column:max_royalty_fee_bps;not null"`

	DefaultDenom   string `gorm:"column:default_denom;type:varchar(32);not null"`
	TradingEnabled bool   `gorm:"column:trading_enabled;not null;default:true"`

	// OperatorList is comma-joined; empty means no operators.
	OperatorList    string `gorm:"column:operator_list;type:varchar(2048)"`
	MaxOrdersPruned int    `gorm:"column:max_orders_pruned;not null"`

	Nonce    uint64 `gorm:"column:nonce;not null;default:0"`
	Sequence uint64 `gorm:"column:sequence;not null;default:0"`

	CreateTime int64 `gorm:"column:create_time;autoCreateTime:milli"`
	UpdateTime int64 `gorm:"column:update_time;autoUpdateTime:milli"`
}

func (MarketParams) TableName() string {
	return "ob_market_params"
}
