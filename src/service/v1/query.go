package service

import (
	"context"

	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
	types "github.com/public-awesome/marketplace-sub000/src/types/v1"
)

func GetOrder(ctx context.Context, svcCtx *svc.ServerCtx, id string) (*types.OrderResp, error) {
	o, err := svcCtx.Dao.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ordermanager.ErrInvalidInput("order not found: %s", id)
	}
	resp := toOrderResp(o)
	return &resp, nil
}

// GetAsk resolves the unique live ask on an asset.
func GetAsk(ctx context.Context, svcCtx *svc.ServerCtx, collection, tokenID string) (*types.OrderResp, error) {
	o, err := svcCtx.Dao.GetAskByToken(collection, tokenID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ordermanager.ErrInvalidInput("ask not found for %s/%s", collection, tokenID)
	}
	resp := toOrderResp(o)
	return &resp, nil
}

func QueryOrders(ctx context.Context, svcCtx *svc.ServerCtx, kind, collection, creator string, page, pageSize int) (*types.OrderListResp, error) {
	orders, total, err := svcCtx.Dao.QueryOrders(kind, collection, creator, page, pageSize)
	if err != nil {
		return nil, err
	}
	resp := &types.OrderListResp{Total: total, Orders: make([]types.OrderResp, 0, len(orders))}
	for i := range orders {
		resp.Orders = append(resp.Orders, toOrderResp(&orders[i]))
	}
	return resp, nil
}

func QueryActivities(ctx context.Context, svcCtx *svc.ServerCtx, collection, eventType string, page, pageSize int) (*types.ActivityListResp, error) {
	rows, total, err := svcCtx.Dao.QueryActivities(collection, eventType, page, pageSize)
	if err != nil {
		return nil, err
	}
	resp := &types.ActivityListResp{Total: total, Activities: make([]types.ActivityResp, 0, len(rows))}
	for _, row := range rows {
		resp.Activities = append(resp.Activities, toActivityResp(row))
	}
	return resp, nil
}

func GetParams(ctx context.Context, svcCtx *svc.ServerCtx) (*types.ParamsPayload, error) {
	p, err := svcCtx.Dao.GetParams()
	if err != nil {
		return nil, err
	}
	return &types.ParamsPayload{
		Admin:            p.Admin,
		FeeManager:       p.FeeManager,
		EscrowAddress:    p.EscrowAddress,
		ProtocolFeeBps:   p.ProtocolFeeBps,
		MakerRewardBps:   p.MakerRewardBps,
		TakerRewardBps:   p.TakerRewardBps,
		MaxRoyaltyFeeBps: p.MaxRoyaltyFeeBps,
		DefaultDenom:     p.DefaultDenom,
		TradingEnabled:   p.TradingEnabled,
		Operators:        p.Operators,
		MaxOrdersPruned:  p.MaxOrdersPruned,
	}, nil
}
