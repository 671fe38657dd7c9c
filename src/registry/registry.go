package registry

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/public-awesome/marketplace-sub000/src/model"
	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
)

// Registry backs the engine's collaborator oracles with the platform's
// collection and token tables. Like the order store it is scoped to one
// transaction, so custody changes commit or roll back with the operation.
type Registry struct {
	tx *gorm.DB
}

func New(tx *gorm.DB) *Registry {
	return &Registry{tx: tx}
}

var (
	_ ordermanager.OwnershipOracle   = (*Registry)(nil)
	_ ordermanager.TransferAuthority = (*Registry)(nil)
	_ ordermanager.RoyaltyOracle     = (*Registry)(nil)
	_ ordermanager.TradabilityGate   = (*Registry)(nil)
)

func (r *Registry) token(collection, tokenID string) (*model.Token, error) {
	var row model.Token
	err := r.tx.Where("collection = ? AND token_id = ?", collection, tokenID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ordermanager.ErrInvalidInput("token %s/%s not found", collection, tokenID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed on get token")
	}
	return &row, nil
}

func (r *Registry) OwnerOf(collection, tokenID string) (string, []string, error) {
	row, err := r.token(collection, tokenID)
	if err != nil {
		return "", nil, err
	}
	var approved []string
	if row.Approved != "" {
		approved = strings.Split(row.Approved, ",")
	}
	return row.Owner, approved, nil
}

// TransferToken reassigns custody and revokes all approvals, mirroring
// standard NFT transfer semantics.
func (r *Registry) TransferToken(collection, tokenID, to string) error {
	row, err := r.token(collection, tokenID)
	if err != nil {
		return err
	}
	row.Owner = to
	row.Approved = ""
	if err := r.tx.Save(row).Error; err != nil {
		return errors.Wrap(err, "failed on transfer token")
	}
	return nil
}

func (r *Registry) collection(collection string) (*model.Collection, error) {
	var row model.Collection
	err := r.tx.Where("address = ?", collection).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed on get collection")
	}
	return &row, nil
}

func (r *Registry) RoyaltyInfo(collection string) (uint64, string, error) {
	row, err := r.collection(collection)
	if err != nil {
		return 0, "", err
	}
	if row == nil || row.RoyaltyRecipient == "" {
		return 0, "", nil
	}
	return row.RoyaltyBps, row.RoyaltyRecipient, nil
}

// IsTradable reports false for unregistered collections.
func (r *Registry) IsTradable(collection string, now int64) (bool, error) {
	row, err := r.collection(collection)
	if err != nil {
		return false, err
	}
	if row == nil || !row.TradingEnabled {
		return false, nil
	}
	return row.TradingStartTime == 0 || row.TradingStartTime <= now, nil
}

// RegisterCollection upserts a collection registration.
func (r *Registry) RegisterCollection(c *model.Collection) error {
	existing, err := r.collection(c.Address)
	if err != nil {
		return err
	}
	if existing != nil {
		c.ID = existing.ID
		c.CreateTime = existing.CreateTime
	}
	if err := r.tx.Save(c).Error; err != nil {
		return errors.Wrap(err, "failed on register collection")
	}
	return nil
}

// MintToken records a new token with its initial owner.
func (r *Registry) MintToken(collection, tokenID, owner string) error {
	row := model.Token{Collection: collection, TokenID: tokenID, Owner: owner}
	if err := r.tx.Create(&row).Error; err != nil {
		return errors.Wrap(err, "failed on mint token")
	}
	return nil
}

// ApproveToken grants an operator transfer rights until the next transfer.
func (r *Registry) ApproveToken(collection, tokenID, operator string) error {
	row, err := r.token(collection, tokenID)
	if err != nil {
		return err
	}
	if row.Approved == "" {
		row.Approved = operator
	} else {
		row.Approved = row.Approved + "," + operator
	}
	if err := r.tx.Save(row).Error; err != nil {
		return errors.Wrap(err, "failed on approve token")
	}
	return nil
}
