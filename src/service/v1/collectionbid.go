package service

import (
	"context"

	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
	types "github.com/public-awesome/marketplace-sub000/src/types/v1"
)

func SetCollectionBid(ctx context.Context, svcCtx *svc.ServerCtx, req *types.SetCollectionBidReq) (*types.OutcomeResp, error) {
	details, err := parseDetails(req.Details)
	if err != nil {
		return nil, err
	}
	funds, err := parseFunds(req.Funds)
	if err != nil {
		return nil, err
	}
	out, err := runOrderOp(ctx, svcCtx, req.Caller, funds, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetCollectionBid(call, req.Collection, details, req.BuyNow)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func UpdateCollectionBid(ctx context.Context, svcCtx *svc.ServerCtx, id string, req *types.UpdateBidReq) (*types.OutcomeResp, error) {
	details, err := parseDetails(req.Details)
	if err != nil {
		return nil, err
	}
	funds, err := parseFunds(req.Funds)
	if err != nil {
		return nil, err
	}
	out, err := runOrderOp(ctx, svcCtx, req.Caller, funds, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.UpdateCollectionBid(call, id, details)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func RemoveCollectionBid(ctx context.Context, svcCtx *svc.ServerCtx, id string, req *types.RemoveBidReq) (*types.OutcomeResp, error) {
	out, err := runOrderOp(ctx, svcCtx, req.Caller, nil, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.RemoveCollectionBid(call, id)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func AcceptCollectionBid(ctx context.Context, svcCtx *svc.ServerCtx, id string, req *types.AcceptCollectionBidReq) (*types.OutcomeResp, error) {
	details, err := parseDetails(req.Details)
	if err != nil {
		return nil, err
	}
	out, err := runOrderOp(ctx, svcCtx, req.Caller, nil, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.AcceptCollectionBid(call, id, req.TokenID, details)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}
