package service

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/public-awesome/marketplace-sub000/src/model"
	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
	types "github.com/public-awesome/marketplace-sub000/src/types/v1"
)

func parseCoin(p types.CoinPayload) (ordermanager.Coin, error) {
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return ordermanager.Coin{}, ordermanager.ErrInvalidInput("invalid amount %q", p.Amount)
	}
	if !amount.IsInteger() || amount.IsNegative() {
		return ordermanager.Coin{}, ordermanager.ErrInvalidInput("amount must be a non-negative integer")
	}
	return ordermanager.Coin{Denom: p.Denom, Amount: amount}, nil
}

func parseFunds(payloads []types.CoinPayload) (ordermanager.Coins, error) {
	coins := make([]ordermanager.Coin, 0, len(payloads))
	for _, p := range payloads {
		c, err := parseCoin(p)
		if err != nil {
			return nil, err
		}
		coins = append(coins, c)
	}
	return ordermanager.NewCoins(coins...), nil
}

func parseDetails(p types.OrderDetailsPayload) (ordermanager.OrderDetails, error) {
	price, err := parseCoin(p.Price)
	if err != nil {
		return ordermanager.OrderDetails{}, err
	}
	details := ordermanager.OrderDetails{
		Price:      price,
		Recipient:  p.Recipient,
		Finder:     p.Finder,
		ReserveFor: p.ReserveFor,
	}
	if p.Expiry != nil {
		reward, err := parseCoin(p.Expiry.Reward)
		if err != nil {
			return ordermanager.OrderDetails{}, err
		}
		details.Expiry = &ordermanager.Expiry{
			Timestamp: p.Expiry.Timestamp,
			Reward:    reward,
		}
	}
	return details, nil
}

func toCoinPayload(c ordermanager.Coin) types.CoinPayload {
	return types.CoinPayload{Denom: c.Denom, Amount: c.Amount.String()}
}

func toDetailsPayload(d ordermanager.OrderDetails) types.OrderDetailsPayload {
	p := types.OrderDetailsPayload{
		Price:      toCoinPayload(d.Price),
		Recipient:  d.Recipient,
		Finder:     d.Finder,
		ReserveFor: d.ReserveFor,
	}
	if d.Expiry != nil {
		p.Expiry = &types.ExpiryPayload{
			Timestamp: d.Expiry.Timestamp,
			Reward:    toCoinPayload(d.Expiry.Reward),
		}
	}
	return p
}

func toOrderResp(o *ordermanager.Order) types.OrderResp {
	return types.OrderResp{
		ID:         o.ID,
		Kind:       string(o.Kind),
		Creator:    o.Creator,
		Collection: o.Collection,
		TokenID:    o.TokenID,
		Details:    toDetailsPayload(o.Details),
		Height:     o.Height,
		Nonce:      o.Nonce,
	}
}

func toEventResp(ev ordermanager.Event) types.EventResp {
	attrs := make([]types.AttrResp, 0, len(ev.Attrs))
	for _, a := range ev.Attrs {
		attrs = append(attrs, types.AttrResp{Key: a.Key, Value: a.Value})
	}
	return types.EventResp{Type: ev.Type, Attrs: attrs}
}

func toOutcomeResp(out *ordermanager.Outcome) *types.OutcomeResp {
	resp := &types.OutcomeResp{
		Matched:        out.Matched,
		OrderID:        out.OrderID,
		Transfers:      make([]types.TransferResp, 0, len(out.Transfers)),
		AssetTransfers: make([]types.AssetTransferResp, 0, len(out.AssetTransfers)),
		Events:         make([]types.EventResp, 0, len(out.Events)),
	}
	for _, t := range out.Transfers {
		resp.Transfers = append(resp.Transfers, types.TransferResp{
			To:     t.To,
			Denom:  t.Coin.Denom,
			Amount: t.Coin.Amount.String(),
			Label:  t.Label,
		})
	}
	for _, t := range out.AssetTransfers {
		resp.AssetTransfers = append(resp.AssetTransfers, types.AssetTransferResp{
			Collection: t.Collection,
			TokenID:    t.TokenID,
			To:         t.To,
		})
	}
	for _, ev := range out.Events {
		resp.Events = append(resp.Events, toEventResp(ev))
	}
	return resp
}

func toActivityResp(row model.Activity) types.ActivityResp {
	return types.ActivityResp{
		Sequence:   row.Sequence,
		EventType:  row.EventType,
		OrderID:    row.OrderID,
		Collection: row.Collection,
		TokenID:    row.TokenID,
		Attrs:      parseAttrsJSON(row.Attrs),
	}
}

func parseAttrsJSON(raw string) []types.AttrResp {
	if raw == "" {
		return nil
	}
	var attrs []ordermanager.Attr
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
		return nil
	}
	out := make([]types.AttrResp, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, types.AttrResp{Key: a.Key, Value: a.Value})
	}
	return out
}
