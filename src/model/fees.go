package model

import "github.com/shopspring/decimal"

// CollectionDenom pins a collection to a trading denom, overriding the
// default denom from params.
type CollectionDenom struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Collection string `gorm:"column:collection;type:varchar(66);uniqueIndex;not null"`
	Denom      string `gorm:"column:denom;type:varchar(32);not null"`
	CreateTime int64  `gorm:"column:create_time;autoCreateTime:milli"`
	UpdateTime int64  `gorm:"column:update_time;autoUpdateTime:milli"`
}

func (CollectionDenom) TableName() string {
	return "ob_collection_denom"
}

// ListingFee is the flat fee accepted in a denom for creating an ask. No
// rows means listing is free.
type ListingFee struct {
	ID         int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Denom      string          `gorm:"column:denom;type:varchar(32);uniqueIndex;not null"`
	Amount     decimal.Decimal `gorm:"column:amount;type:decimal(30,0);not null"`
	CreateTime int64           `gorm:"column:create_time;autoCreateTime:milli"`
	UpdateTime int64           `gorm:"column:update_time;autoUpdateTime:milli"`
}

func (ListingFee) TableName() string {
	return "ob_listing_fee"
}

// MinExpiryReward is the floor for expiry rewards in a denom. A denom
// without a row does not accept expiry rewards at all.
type MinExpiryReward struct {
	ID         int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Denom      string          `gorm:"column:denom;type:varchar(32);uniqueIndex;not null"`
	Amount     decimal.Decimal `gorm:"column:amount;type:decimal(30,0);not null"`
	CreateTime int64           `gorm:"column:create_time;autoCreateTime:milli"`
	UpdateTime int64           `gorm:"column:update_time;autoUpdateTime:milli"`
}

func (MinExpiryReward) TableName() string {
	return "ob_min_expiry_reward"
}
