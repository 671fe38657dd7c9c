package dao

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/public-awesome/marketplace-sub000/src/model"
	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
)

// Read-side queries for the HTTP API. These run outside the operation
// transaction and never mutate state.

func (d *Dao) GetOrderByID(id string) (*ordermanager.Order, error) {
	var row model.Order
	err := d.DB.WithContext(d.ctx).Where("order_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed on get order")
	}
	o := fromModelOrder(&row)
	return &o, nil
}

// GetAskByToken resolves the unique live ask on an asset, if any.
func (d *Dao) GetAskByToken(collection, tokenID string) (*ordermanager.Order, error) {
	return d.GetOrderByID(ordermanager.AskID(collection, tokenID))
}

// QueryOrders pages orders with optional kind / collection / creator
// filters, newest submission first.
func (d *Dao) QueryOrders(kind, collection, creator string, page, pageSize int) ([]ordermanager.Order, int64, error) {
	q := d.DB.WithContext(d.ctx).Model(&model.Order{})
	if kind != "" {
		q = q.Where("order_kind = ?", kind)
	}
	if collection != "" {
		q = q.Where("collection = ?", collection)
	}
	if creator != "" {
		q = q.Where("creator = ?", creator)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed on count orders")
	}

	var rows []model.Order
	err := q.Order("height desc, nonce desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed on query orders")
	}

	out := make([]ordermanager.Order, 0, len(rows))
	for i := range rows {
		out = append(out, fromModelOrder(&rows[i]))
	}
	return out, total, nil
}

func (d *Dao) GetParams() (*ordermanager.Params, error) {
	var p *ordermanager.Params
	err := d.DB.WithContext(d.ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		p, err = NewStore(tx).Params()
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
