package dao

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/public-awesome/marketplace-sub000/src/model"
	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
)

// Store adapts one gorm transaction to the engine's persistence interface.
// Candidate queries filter on exact key columns only; all price comparison
// happens in the engine, so results do not depend on how the backend sorts
// decimals.
type Store struct {
	tx *gorm.DB
}

var _ ordermanager.Store = (*Store)(nil)

func NewStore(tx *gorm.DB) *Store {
	return &Store{tx: tx}
}

func toModelOrder(o *ordermanager.Order) *model.Order {
	row := &model.Order{
		OrderID:    o.ID,
		OrderKind:  string(o.Kind),
		Creator:    o.Creator,
		Collection: o.Collection,
		TokenID:    o.TokenID,
		Denom:      o.Details.Price.Denom,
		Price:      o.Details.Price.Amount,
		Recipient:  o.Details.Recipient,
		Finder:     o.Details.Finder,
		ReserveFor: o.Details.ReserveFor,
		Height:     o.Height,
		Nonce:      o.Nonce,
	}
	if o.Details.Expiry != nil {
		row.ExpiryTime = o.Details.Expiry.Timestamp
		row.RewardDenom = o.Details.Expiry.Reward.Denom
		row.RewardAmount = o.Details.Expiry.Reward.Amount
	}
	return row
}

func fromModelOrder(row *model.Order) ordermanager.Order {
	o := ordermanager.Order{
		ID:         row.OrderID,
		Kind:       ordermanager.OrderKind(row.OrderKind),
		Creator:    row.Creator,
		Collection: row.Collection,
		TokenID:    row.TokenID,
		Details: ordermanager.OrderDetails{
			Price:      ordermanager.Coin{Denom: row.Denom, Amount: row.Price},
			Recipient:  row.Recipient,
			Finder:     row.Finder,
			ReserveFor: row.ReserveFor,
		},
		Height: row.Height,
		Nonce:  row.Nonce,
	}
	if row.ExpiryTime > 0 {
		o.Details.Expiry = &ordermanager.Expiry{
			Timestamp: row.ExpiryTime,
			Reward:    ordermanager.Coin{Denom: row.RewardDenom, Amount: row.RewardAmount},
		}
	}
	return o
}

func (s *Store) GetOrder(id string) (*ordermanager.Order, error) {
	var row model.Order
	err := s.tx.Where("order_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed on get order")
	}
	o := fromModelOrder(&row)
	return &o, nil
}

func (s *Store) CreateOrder(o *ordermanager.Order) error {
	var count int64
	if err := s.tx.Model(&model.Order{}).Where("order_id = ?", o.ID).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed on check order exists")
	}
	if count > 0 {
		return errors.Errorf("order %s already exists", o.ID)
	}
	if err := s.tx.Create(toModelOrder(o)).Error; err != nil {
		return errors.Wrap(err, "failed on create order")
	}
	return nil
}

func (s *Store) SaveOrder(o *ordermanager.Order) error {
	var row model.Order
	err := s.tx.Where("order_id = ?", o.ID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Errorf("order %s not found", o.ID)
	}
	if err != nil {
		return errors.Wrap(err, "failed on load order for save")
	}

	next := toModelOrder(o)
	next.ID = row.ID
	next.CreateTime = row.CreateTime
	if err := s.tx.Save(next).Error; err != nil {
		return errors.Wrap(err, "failed on save order")
	}
	return nil
}

func (s *Store) DeleteOrder(id string) error {
	if err := s.tx.Where("order_id = ?", id).Delete(&model.Order{}).Error; err != nil {
		return errors.Wrap(err, "failed on delete order")
	}
	return nil
}

func (s *Store) listOrders(conds map[string]interface{}) ([]ordermanager.Order, error) {
	var rows []model.Order
	if err := s.tx.Where(conds).Order("id asc").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed on list orders")
	}
	out := make([]ordermanager.Order, 0, len(rows))
	for i := range rows {
		out = append(out, fromModelOrder(&rows[i]))
	}
	return out, nil
}

func (s *Store) BidsByTokenDenom(collection, tokenID, denom string) ([]ordermanager.Order, error) {
	return s.listOrders(map[string]interface{}{
		"order_kind": string(ordermanager.KindBid),
		"collection": collection,
		"token_id":   tokenID,
		"denom":      denom,
	})
}

func (s *Store) CollectionBidsByDenom(collection, denom string) ([]ordermanager.Order, error) {
	return s.listOrders(map[string]interface{}{
		"order_kind": string(ordermanager.KindCollectionBid),
		"collection": collection,
		"denom":      denom,
	})
}

func (s *Store) AsksByCollectionDenom(collection, denom string) ([]ordermanager.Order, error) {
	return s.listOrders(map[string]interface{}{
		"order_kind": string(ordermanager.KindAsk),
		"collection": collection,
		"denom":      denom,
	})
}

func (s *Store) ExpiredOrders(now int64, limit int) ([]ordermanager.Order, error) {
	var rows []model.Order
	err := s.tx.Where("expiry_time > 0 AND expiry_time <= ?", now).
		Order("expiry_time asc, order_id asc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on list expired orders")
	}
	out := make([]ordermanager.Order, 0, len(rows))
	for i := range rows {
		out = append(out, fromModelOrder(&rows[i]))
	}
	return out, nil
}

// paramsRow loads the singleton params row, under a row lock on backends
// that support one, so nonce and sequence draws serialize across concurrent
// transactions. sqlite is single-writer and needs no lock clause.
func (s *Store) paramsRow(lock bool) (*model.MarketParams, error) {
	q := s.tx
	if lock && s.tx.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var row model.MarketParams
	if err := q.Where("id = ?", 1).First(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed on load market params")
	}
	return &row, nil
}

func (s *Store) NextNonce() (uint64, error) {
	row, err := s.paramsRow(true)
	if err != nil {
		return 0, err
	}
	row.Nonce++
	if err := s.tx.Model(&model.MarketParams{}).Where("id = ?", 1).
		Update("nonce", row.Nonce).Error; err != nil {
		return 0, errors.Wrap(err, "failed on advance nonce")
	}
	return row.Nonce, nil
}

// NextSequence draws the call sequence number that operations use as their
// height.
func (s *Store) NextSequence() (uint64, error) {
	row, err := s.paramsRow(true)
	if err != nil {
		return 0, err
	}
	row.Sequence++
	if err := s.tx.Model(&model.MarketParams{}).Where("id = ?", 1).
		Update("sequence", row.Sequence).Error; err != nil {
		return 0, errors.Wrap(err, "failed on advance sequence")
	}
	return row.Sequence, nil
}

func (s *Store) Params() (*ordermanager.Params, error) {
	row, err := s.paramsRow(false)
	if err != nil {
		return nil, err
	}
	p := &ordermanager.Params{
		Admin:            row.Admin,
		FeeManager:       row.FeeManager,
		EscrowAddress:    row.EscrowAddress,
		ProtocolFeeBps:   row.ProtocolFeeBps,
		MakerRewardBps:   row.MakerRewardBps,
		TakerRewardBps:   row.TakerRewardBps,
		MaxRoyaltyFeeBps: row.MaxRoyaltyFeeBps,
		DefaultDenom:     row.DefaultDenom,
		TradingEnabled:   row.TradingEnabled,
		MaxOrdersPruned:  row.MaxOrdersPruned,
	}
	if row.OperatorList != "" {
		p.Operators = strings.Split(row.OperatorList, ",")
	}
	return p, nil
}

func (s *Store) SaveParams(p *ordermanager.Params) error {
	row, err := s.paramsRow(true)
	if err != nil {
		return err
	}
	row.Admin = p.Admin
	row.FeeManager = p.FeeManager
	row.EscrowAddress = p.EscrowAddress
	row.ProtocolFeeBps = p.ProtocolFeeBps
	row.MakerRewardBps = p.MakerRewardBps
	row.TakerRewardBps = p.TakerRewardBps
	row.MaxRoyaltyFeeBps = p.MaxRoyaltyFeeBps
	row.DefaultDenom = p.DefaultDenom
	row.TradingEnabled = p.TradingEnabled
	row.OperatorList = strings.Join(p.Operators, ",")
	row.MaxOrdersPruned = p.MaxOrdersPruned
	if err := s.tx.Save(row).Error; err != nil {
		return errors.Wrap(err, "failed on save market params")
	}
	return nil
}

func (s *Store) CollectionDenom(collection string) (string, error) {
	var row model.CollectionDenom
	err := s.tx.Where("collection = ?", collection).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed on get collection denom")
	}
	return row.Denom, nil
}

func (s *Store) SetCollectionDenom(collection, denom string) error {
	row := model.CollectionDenom{Collection: collection, Denom: denom}
	err := s.tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}},
		DoUpdates: clause.AssignmentColumns([]string{"denom", "update_time"}),
	}).Create(&row).Error
	if err != nil {
		return errors.Wrap(err, "failed on set collection denom")
	}
	return nil
}

func (s *Store) ListingFees() ([]ordermanager.Coin, error) {
	var rows []model.ListingFee
	if err := s.tx.Order("denom asc").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed on list listing fees")
	}
	out := make([]ordermanager.Coin, 0, len(rows))
	for _, row := range rows {
		out = append(out, ordermanager.Coin{Denom: row.Denom, Amount: row.Amount})
	}
	return out, nil
}

func (s *Store) SetListingFee(fee ordermanager.Coin) error {
	row := model.ListingFee{Denom: fee.Denom, Amount: fee.Amount}
	err := s.tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "denom"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "update_time"}),
	}).Create(&row).Error
	if err != nil {
		return errors.Wrap(err, "failed on set listing fee")
	}
	return nil
}

func (s *Store) RemoveListingFee(denom string) error {
	if err := s.tx.Where("denom = ?", denom).Delete(&model.ListingFee{}).Error; err != nil {
		return errors.Wrap(err, "failed on remove listing fee")
	}
	return nil
}

func (s *Store) MinExpiryReward(denom string) (decimal.Decimal, bool, error) {
	var row model.MinExpiryReward
	err := s.tx.Where("denom = ?", denom).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, errors.Wrap(err, "failed on get min expiry reward")
	}
	return row.Amount, true, nil
}

func (s *Store) SetMinExpiryReward(reward ordermanager.Coin) error {
	row := model.MinExpiryReward{Denom: reward.Denom, Amount: reward.Amount}
	err := s.tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "denom"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "update_time"}),
	}).Create(&row).Error
	if err != nil {
		return errors.Wrap(err, "failed on set min expiry reward")
	}
	return nil
}

func (s *Store) RemoveMinExpiryReward(denom string) error {
	if err := s.tx.Where("denom = ?", denom).Delete(&model.MinExpiryReward{}).Error; err != nil {
		return errors.Wrap(err, "failed on remove min expiry reward")
	}
	return nil
}
