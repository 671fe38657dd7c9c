package service

import (
	"context"

	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
	types "github.com/public-awesome/marketplace-sub000/src/types/v1"
)

func SetBid(ctx context.Context, svcCtx *svc.ServerCtx, req *types.SetBidReq) (*types.OutcomeResp, error) {
	details, err := parseDetails(req.Details)
	if err != nil {
		return nil, err
	}
	funds, err := parseFunds(req.Funds)
	if err != nil {
		return nil, err
	}
	out, err := runOrderOp(ctx, svcCtx, req.Caller, funds, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetBid(call, req.Collection, req.TokenID, details, req.BuyNow)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func UpdateBid(ctx context.Context, svcCtx *svc.ServerCtx, id string, req *types.UpdateBidReq) (*types.OutcomeResp, error) {
	details, err := parseDetails(req.Details)
	if err != nil {
		return nil, err
	}
	funds, err := parseFunds(req.Funds)
	if err != nil {
		return nil, err
	}
	out, err := runOrderOp(ctx, svcCtx, req.Caller, funds, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.UpdateBid(call, id, details)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func RemoveBid(ctx context.Context, svcCtx *svc.ServerCtx, id string, req *types.RemoveBidReq) (*types.OutcomeResp, error) {
	out, err := runOrderOp(ctx, svcCtx, req.Caller, nil, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.RemoveBid(call, id)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func AcceptBid(ctx context.Context, svcCtx *svc.ServerCtx, id string, req *types.AcceptBidReq) (*types.OutcomeResp, error) {
	details, err := parseDetails(req.Details)
	if err != nil {
		return nil, err
	}
	out, err := runOrderOp(ctx, svcCtx, req.Caller, nil, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.AcceptBid(call, id, details)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}
