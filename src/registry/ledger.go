package registry

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/public-awesome/marketplace-sub000/src/model"
	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
)

// Ledger is the per-transaction view of the balance table. Every operation
// moves value as caller debits into escrow plus outcome legs out of escrow,
// so the per-denom total over all rows never changes mid-operation.
type Ledger struct {
	tx *gorm.DB
}

func NewLedger(tx *gorm.DB) *Ledger {
	return &Ledger{tx: tx}
}

func (l *Ledger) row(address, denom string, lock bool) (*model.Balance, error) {
	q := l.tx
	if lock && l.tx.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var row model.Balance
	err := q.Where("address = ? AND denom = ?", address, denom).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed on get balance")
	}
	return &row, nil
}

func (l *Ledger) Balance(address, denom string) (decimal.Decimal, error) {
	row, err := l.row(address, denom, false)
	if err != nil {
		return decimal.Zero, err
	}
	if row == nil {
		return decimal.Zero, nil
	}
	return row.Amount, nil
}

func (l *Ledger) Credit(address, denom string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}
	row, err := l.row(address, denom, true)
	if err != nil {
		return err
	}
	if row == nil {
		row = &model.Balance{Address: address, Denom: denom, Amount: amount}
		if err := l.tx.Create(row).Error; err != nil {
			return errors.Wrap(err, "failed on create balance")
		}
		return nil
	}
	row.Amount = row.Amount.Add(amount)
	if err := l.tx.Save(row).Error; err != nil {
		return errors.Wrap(err, "failed on credit balance")
	}
	return nil
}

func (l *Ledger) Debit(address, denom string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}
	row, err := l.row(address, denom, true)
	if err != nil {
		return err
	}
	if row == nil || row.Amount.LessThan(amount) {
		return ordermanager.ErrInsufficientFunds("balance of %s", address)
	}
	row.Amount = row.Amount.Sub(amount)
	if err := l.tx.Save(row).Error; err != nil {
		return errors.Wrap(err, "failed on debit balance")
	}
	return nil
}

// CollectFunds moves the attached funds from the caller into escrow before
// the engine runs. The engine's outcome then spends out of escrow.
func (l *Ledger) CollectFunds(caller, escrow string, funds ordermanager.Coins) error {
	for _, c := range funds {
		if err := l.Debit(caller, c.Denom, c.Amount); err != nil {
			return err
		}
		if err := l.Credit(escrow, c.Denom, c.Amount); err != nil {
			return err
		}
	}
	return nil
}

// ApplyTransfers pays the outcome legs out of escrow.
func (l *Ledger) ApplyTransfers(escrow string, transfers []ordermanager.Transfer) error {
	for _, t := range transfers {
		if err := l.Debit(escrow, t.Coin.Denom, t.Coin.Amount); err != nil {
			return err
		}
		if err := l.Credit(t.To, t.Coin.Denom, t.Coin.Amount); err != nil {
			return err
		}
	}
	return nil
}
