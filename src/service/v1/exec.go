package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/public-awesome/marketplace-sub000/src/dao"
	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
	"github.com/public-awesome/marketplace-sub000/src/pkg/xzap"
	"github.com/public-awesome/marketplace-sub000/src/registry"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
)

type opFunc func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error)

// runOrderOp executes one engine operation inside a single database
// transaction: draw the call sequence, move the attached funds into escrow,
// run the operation, pay out its transfer legs and record its events. Any
// error rolls the whole call back, so no partial effect ever commits.
func runOrderOp(ctx context.Context, svcCtx *svc.ServerCtx, caller string, funds ordermanager.Coins, op opFunc) (*ordermanager.Outcome, error) {
	// The call timestamp is fixed at the boundary; the engine never reads a
	// clock of its own.
	now := time.Now().Unix()

	var out *ordermanager.Outcome
	err := svcCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		store := dao.NewStore(tx)
		reg := registry.New(tx)
		ledger := registry.NewLedger(tx)
		eng := ordermanager.New(store, reg, reg, reg, reg)

		p, err := store.Params()
		if err != nil {
			return err
		}
		seq, err := store.NextSequence()
		if err != nil {
			return err
		}
		call := ordermanager.CallCtx{
			Caller: caller,
			Funds:  funds,
			Height: seq,
			Time:   now,
		}

		if err := ledger.CollectFunds(caller, p.EscrowAddress, funds); err != nil {
			return err
		}
		if out, err = op(eng, call); err != nil {
			return err
		}
		if err := ledger.ApplyTransfers(p.EscrowAddress, out.Transfers); err != nil {
			return err
		}
		return store.RecordActivities(seq, out.Events)
	})
	if err != nil {
		if ordermanager.KindOf(err) == ordermanager.KindInternal {
			xzap.WithContext(ctx).Error("order operation failed",
				zap.String("caller", caller), zap.Error(err))
		}
		return nil, err
	}
	return out, nil
}
