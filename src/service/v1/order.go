package service

import (
	"context"

	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
	types "github.com/public-awesome/marketplace-sub000/src/types/v1"
)

func SetAsk(ctx context.Context, svcCtx *svc.ServerCtx, req *types.SetAskReq) (*types.OutcomeResp, error) {
	details, err := parseDetails(req.Details)
	if err != nil {
		return nil, err
	}
	funds, err := parseFunds(req.Funds)
	if err != nil {
		return nil, err
	}
	out, err := runOrderOp(ctx, svcCtx, req.Caller, funds, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.SetAsk(call, req.Collection, req.TokenID, details, req.SellNow)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func UpdateAsk(ctx context.Context, svcCtx *svc.ServerCtx, req *types.UpdateAskReq) (*types.OutcomeResp, error) {
	details, err := parseDetails(req.Details)
	if err != nil {
		return nil, err
	}
	funds, err := parseFunds(req.Funds)
	if err != nil {
		return nil, err
	}
	out, err := runOrderOp(ctx, svcCtx, req.Caller, funds, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.UpdateAsk(call, req.Collection, req.TokenID, details)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func RemoveAsk(ctx context.Context, svcCtx *svc.ServerCtx, req *types.RemoveAskReq) (*types.OutcomeResp, error) {
	out, err := runOrderOp(ctx, svcCtx, req.Caller, nil, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.RemoveAsk(call, req.Collection, req.TokenID)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func AcceptAsk(ctx context.Context, svcCtx *svc.ServerCtx, req *types.AcceptAskReq) (*types.OutcomeResp, error) {
	details, err := parseDetails(req.Details)
	if err != nil {
		return nil, err
	}
	funds, err := parseFunds(req.Funds)
	if err != nil {
		return nil, err
	}
	out, err := runOrderOp(ctx, svcCtx, req.Caller, funds, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.AcceptAsk(call, req.Collection, req.TokenID, details)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}

func PruneExpired(ctx context.Context, svcCtx *svc.ServerCtx, req *types.PruneExpiredReq) (*types.OutcomeResp, error) {
	out, err := runOrderOp(ctx, svcCtx, req.Caller, nil, func(eng *ordermanager.Engine, call ordermanager.CallCtx) (*ordermanager.Outcome, error) {
		return eng.PruneExpired(call, req.Limit)
	})
	if err != nil {
		return nil, err
	}
	return toOutcomeResp(out), nil
}
