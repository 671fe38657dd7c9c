package model

import "github.com/shopspring/decimal"

// Collection is the on-platform registration of an NFT collection: royalty
// policy and trading schedule. Unregistered collections do not trade.
type Collection struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Address string `gorm:"column:address;type:varchar(66);uniqueIndex;not null"`
	Name    string `gorm:"column:name;type:varchar(128)"`

	RoyaltyBps       uint64 `gorm:"column:royalty_bps;not null;default:0"`
	RoyaltyRecipient string `gorm:"column:royalty_recipient;type:varchar(66)"`

	TradingEnabled bool `gorm:"column:trading_enabled;not null;default:true"`
	// TradingStartTime of 0 means tradable immediately.
	TradingStartTime int64 `gorm:"column:trading_start_time;not null;default:0"`

	CreateTime int64 `gorm:"column:create_time;autoCreateTime:milli"`
	UpdateTime int64 `gorm:"column:update_time;autoUpdateTime:milli"`
}

func (Collection) TableName() string {
	return "ob_collection"
}

// Token tracks current custody of one NFT. Approved is a comma-joined
// operator list and clears on every transfer.
type Token struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Collection string `gorm:"column:collection;type:varchar(66);not null;uniqueIndex:idx_coll_token,priority:1"`
	TokenID    string `gorm:"column:token_id;type:varchar(128);not null;uniqueIndex:idx_coll_token,priority:2"`
	Owner      string `gorm:"column:owner;type:varchar(66);not null;index"`
	Approved   string `gorm:"column:approved;type:varchar(2048)"`

	CreateTime int64 `gorm:"column:create_time;autoCreateTime:milli"`
	UpdateTime int64 `gorm:"column:update_time;autoUpdateTime:milli"`
}

func (Token) TableName() string {
	return "ob_token"
}

// Balance is one (address, denom) ledger entry. Escrowed value sits on the
// escrow address's rows, so summing a denom over all rows is conserved by
// every operation.
type Balance struct {
	ID      int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Address string          `gorm:"column:address;type:varchar(66);not null;uniqueIndex:idx_addr_denom,priority:1"`
	Denom   string          `gorm:"column:denom;type:varchar(32);not null;uniqueIndex:idx_addr_denom,priority:2"`
	Amount  decimal.Decimal `gorm:"column:amount;type:decimal(30,0);not null"`

	CreateTime int64 `gorm:"column:create_time;autoCreateTime:milli"`
	UpdateTime int64 `gorm:"column:update_time;autoUpdateTime:milli"`
}

func (Balance) TableName() string {
	return "ob_balance"
}
