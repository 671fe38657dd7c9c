package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/public-awesome/marketplace-sub000/src/dao"
	"github.com/public-awesome/marketplace-sub000/src/model"
	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
	"github.com/public-awesome/marketplace-sub000/src/registry"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
	types "github.com/public-awesome/marketplace-sub000/src/types/v1"
)

func UpdateParams(ctx context.Context, svcCtx *svc.ServerCtx, req *types.UpdateParamsReq) (*types.OutcomeResp, error) {
	next := ordermanager.Params{
		Admin:            req.Params.Admin,
		FeeManager:       req.Params.FeeManager,
		EscrowAddress:    req.Params.EscrowAddress,
		ProtocolFeeBps:   req.Params.ProtocolFeeBps,
		MakerRewardBps:   req.Params.MakerRewardBps,
		TakerRewardBps:   req.Params.TakerRewardBps,
		MaxRoyaltyFeeBps: req.Params.MaxRoyaltyFeeBps,
		DefaultDenom:     req.Params.DefaultDenom,
		TradingEnabled:   req.Params.TradingEnabled,
		Operators:        req.Params.Operators,
		MaxOrdersPruned:  req.Params.MaxOrdersPruned,
	}
	out, err := runOrderOp(ctx, svcCtx, req.Caller, nil, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.UpdateParams(call, next)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func SetCollectionDenom(ctx context.Context, svcCtx *svc.ServerCtx, req *types.SetCollectionDenomReq) (*types.OutcomeResp, error) {
	out, err := runOrderOp(ctx, svcCtx, req.Caller, nil, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetCollectionDenom(call, req.Collection, req.Denom)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func SetListingFee(ctx context.Context, svcCtx *svc.ServerCtx, req *types.SetListingFeeReq) (*types.OutcomeResp, error) {
	fee, err := parseCoin(req.Fee)
	if err != nil {
		return nil, err
	}
	out, err := runOrderOp(ctx, svcCtx, req.Caller, nil, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetListingFee(call, fee)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func RemoveListingFee(ctx context.Context, svcCtx *svc.ServerCtx, req *types.RemoveListingFeeReq) (*types.OutcomeResp, error) {
	out, err := runOrderOp(ctx, svcCtx, req.Caller, nil, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.RemoveListingFee(call, req.Denom)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func SetMinExpiryReward(ctx context.Context, svcCtx *svc.ServerCtx, req *types.SetMinExpiryRewardReq) (*types.OutcomeResp, error) {
	reward, err := parseCoin(req.Reward)
	if err != nil {
		return nil, err
	}
	out, err := runOrderOp(ctx, svcCtx, req.Caller, nil, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetMinExpiryReward(call, reward)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func RemoveMinExpiryReward(ctx context.Context, svcCtx *svc.ServerCtx, req *types.RemoveMinExpiryRewardReq) (*types.OutcomeResp, error) {
	out, err := runOrderOp(ctx, svcCtx, req.Caller, nil, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.RemoveMinExpiryReward(call, req.Denom)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

// RegisterCollection is an admin-gated registry write, not an engine
// operation: it admits a collection onto the platform with its royalty
// policy and trading schedule.
func RegisterCollection(ctx context.Context, svcCtx *svc.ServerCtx, req *types.RegisterCollectionReq) error {
	return svcCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := dao.NewStore(tx).Params()
		if err != nil {
			return err
		}
		if req.Caller != p.Admin {
			return ordermanager.ErrUnauthorized("caller is not the admin")
		}
		return registry.New(tx).RegisterCollection(&model.Collection{
			Address:          req.Address,
			Name:             req.Name,
			RoyaltyBps:       req.RoyaltyBps,
			RoyaltyRecipient: req.RoyaltyRecipient,
			TradingEnabled:   req.TradingEnabled,
			TradingStartTime: req.TradingStartTime,
		})
	})
}
