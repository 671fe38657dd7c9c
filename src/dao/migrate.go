package dao

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/public-awesome/marketplace-sub000/src/model"
	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
)

// Migrate creates or updates the engine schema.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Order{},
		&model.MarketParams{},
		&model.CollectionDenom{},
		&model.ListingFee{},
		&model.MinExpiryReward{},
		&model.Activity{},
		&model.Collection{},
		&model.Token{},
		&model.Balance{},
	)
	if err != nil {
		return errors.Wrap(err, "failed on migrate schema")
	}
	return nil
}

// EnsureParams seeds the singleton params row on first boot. An existing row
// wins over the configured defaults; params changes after boot go through
// the admin operation.
func EnsureParams(db *gorm.DB, p *ordermanager.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.MarketParams{}).Where("id = ?", 1).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed on check market params")
		}
		if count > 0 {
			return nil
		}
		row := &model.MarketParams{ID: 1}
		if err := tx.Create(row).Error; err != nil {
			return errors.Wrap(err, "failed on seed market params")
		}
		return NewStore(tx).SaveParams(p)
	})
}
