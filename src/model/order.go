package model

import (
	"github.com/shopspring/decimal"
)

// Order is the persisted row behind every live ask, bid and collection bid.
// OrderID is the hex digest identity; the engine treats the row as opaque
// state and never orders by the decimal columns in SQL.
type Order struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID    string `gorm:"column:order_id;type:varchar(66);uniqueIndex;not null"`
	OrderKind  string `gorm:"column:order_kind;type:varchar(20);not null;index:idx_kind_coll_token,priority:1"`
	Creator    string `gorm:"column:creator;type:varchar(66);not null;index"`
	Collection string `gorm:"column:collection;type:varchar(66);not null;index:idx_kind_coll_token,priority:2"`
	TokenID    string `gorm:"column:token_id;type:varchar(128);index:idx_kind_coll_token,priority:3"`

	Denom string          `gorm:"column:denom;type:varchar(32);not null"`
	Price decimal.Decimal `gorm:"column:price;type:decimal(30,0);not null"`

	Recipient  string `gorm:"column:recipient;type:varchar(66)"`
	Finder     string `gorm:"column:finder;type:varchar(66)"`
	ReserveFor string `gorm:"column:reserve_for;type:varchar(66)"`

	// ExpiryTime is 0 for orders without expiry; expired-order scans filter
	// on it with an explicit > 0 guard.
	ExpiryTime   int64           `gorm:"column:expiry_time;not null;default:0;index"`
	RewardDenom  string          `gorm:"column:reward_denom;type:varchar(32)"`
	RewardAmount decimal.Decimal `gorm:"column:reward_amount;type:decimal(30,0)"`

	Height uint64 `gorm:"column:height;not null"`
	Nonce  uint64 `gorm:"column:nonce;not null"`

	CreateTime int64 `gorm:"column:create_time;autoCreateTime:milli"`
	UpdateTime int64 `gorm:"column:update_time;autoUpdateTime:milli"`
}

func (Order) TableName() string {
	return "ob_order"
}
