package ordermanager

import "github.com/shopspring/decimal"

var bpsDivisor = decimal.NewFromInt(MaxBasisPoints)

// FeeBreakdown is the exact split of a sale price. Protocol and royalty fees
// round up (in favor of the fee recipients); the maker/taker rewards are
// carved out of the protocol fee rounding down, so the residual protocol
// amount can never go negative and
// SellerAmount + ProtocolFee + RoyaltyFee == SalePrice holds exactly.
type FeeBreakdown struct {
	SalePrice        Coin
	SellerAmount     decimal.Decimal
	ProtocolFee      decimal.Decimal
	MakerReward      decimal.Decimal
	TakerReward      decimal.Decimal
	RoyaltyFee       decimal.Decimal
	RoyaltyRecipient string
}

// ProtocolResidual is the protocol fee net of finder rewards, the amount the
// fee manager actually receives.
func (f FeeBreakdown) ProtocolResidual() decimal.Decimal {
	return f.ProtocolFee.Sub(f.MakerReward).Sub(f.TakerReward)
}

func bpsOf(amount decimal.Decimal, bps uint64) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(bps))).Div(bpsDivisor)
}

// computeFeeBreakdown splits salePrice per the params. hasMaker/hasTaker
// report whether the ask side / counter-order side carries a finder; a
// missing finder forfeits that reward to the protocol.
func computeFeeBreakdown(p *Params, salePrice Coin, royaltyBps uint64, royaltyRecipient string, hasMaker, hasTaker bool) (FeeBreakdown, error) {
	out := FeeBreakdown{SalePrice: salePrice}

	out.ProtocolFee = bpsOf(salePrice.Amount, p.ProtocolFeeBps).Ceil()

	if royaltyBps > p.MaxRoyaltyFeeBps {
		royaltyBps = p.MaxRoyaltyFeeBps
	}
	if royaltyBps > 0 && royaltyRecipient != "" {
		out.RoyaltyFee = bpsOf(salePrice.Amount, royaltyBps).Ceil()
		out.RoyaltyRecipient = royaltyRecipient
	}

	if out.ProtocolFee.IsPositive() {
		if hasMaker && p.MakerRewardBps > 0 {
			out.MakerReward = bpsOf(bpsOf(salePrice.Amount, p.ProtocolFeeBps), p.MakerRewardBps).Floor()
		}
		if hasTaker && p.TakerRewardBps > 0 {
			out.TakerReward = bpsOf(bpsOf(salePrice.Amount, p.ProtocolFeeBps), p.TakerRewardBps).Floor()
		}
	}

	out.SellerAmount = salePrice.Amount.Sub(out.ProtocolFee).Sub(out.RoyaltyFee)
	if out.SellerAmount.IsNegative() {
		return out, ErrInvalidInput("sale price does not cover fees")
	}
	return out, nil
}

func (f FeeBreakdown) coin(amount decimal.Decimal) Coin {
	return Coin{Denom: f.SalePrice.Denom, Amount: amount}
}

// finalizeSale consumes a matched (ask, counter-order) pair atomically: it
// pays out the fee breakdown, hands the asset to the buyer, deletes both
// records and refunds the resting order's expiry reward. The sale price is
// always the resting order's price; askResting reports which side was
// resting. The aggressor's expiry reward was never escrowed and is returned
// by the caller with the unconsumed funds.
func (e *Engine) finalizeSale(out *Outcome, p *Params, ask *Order, matching *MatchingBid, askResting bool) error {
	bid := matching.Order

	salePrice := bid.Details.Price
	if askResting {
		salePrice = ask.Details.Price
	}

	royaltyBps, royaltyRecipient, err := e.royalty.RoyaltyInfo(ask.Collection)
	if err != nil {
		return err
	}

	// Maker reward goes to the ask-side finder, taker reward to the
	// counter-order-side finder.
	fees, err := computeFeeBreakdown(p, salePrice, royaltyBps, royaltyRecipient,
		ask.Details.Finder != "", bid.Details.Finder != "")
	if err != nil {
		return err
	}

	out.pay(ask.AssetRecipient(), fees.coin(fees.SellerAmount), LabelSeller)
	out.pay(p.FeeManager, fees.coin(fees.ProtocolResidual()), LabelProtocol)
	out.pay(ask.Details.Finder, fees.coin(fees.MakerReward), LabelMaker)
	out.pay(bid.Details.Finder, fees.coin(fees.TakerReward), LabelTaker)
	out.pay(fees.RoyaltyRecipient, fees.coin(fees.RoyaltyFee), LabelRoyalty)

	if err := e.releaseAsset(out, ask.Collection, ask.TokenID, bid.AssetRecipient()); err != nil {
		return err
	}

	// Settlement is the unescrow: deleting the records releases custody.
	// Transient (never persisted) sides delete as no-ops.
	if err := e.store.DeleteOrder(ask.ID); err != nil {
		return err
	}
	if err := e.store.DeleteOrder(bid.ID); err != nil {
		return err
	}

	// The resting order matched before expiring, so its pre-paid reward
	// goes back to its creator in full.
	if askResting {
		if reward := ask.Details.ExpiryReward(); reward != nil {
			out.pay(ask.Creator, *reward, LabelExpiryReward)
		}
	} else {
		if reward := bid.Details.ExpiryReward(); reward != nil {
			out.pay(bid.Creator, *reward, LabelExpiryReward)
		}
	}

	ev := Event{Type: "finalize-sale"}
	ev.add("collection", ask.Collection)
	ev.add("token_id", ask.TokenID)
	ev.add("denom", salePrice.Denom)
	ev.add("price", salePrice.Amount.String())
	ev.add("seller_recipient", ask.AssetRecipient())
	ev.add("asset_recipient", bid.AssetRecipient())
	ev.add("ask", ask.ID)
	switch matching.Kind {
	case KindBid:
		ev.add("bid", bid.ID)
	case KindCollectionBid:
		ev.add("collection_bid", bid.ID)
	}
	ev.add(LabelSeller, fees.SellerAmount.String())
	ev.add(LabelProtocol, fees.ProtocolResidual().String())
	if fees.MakerReward.IsPositive() {
		ev.add(LabelMaker, fees.MakerReward.String())
	}
	if fees.TakerReward.IsPositive() {
		ev.add(LabelTaker, fees.TakerReward.String())
	}
	if fees.RoyaltyFee.IsPositive() {
		ev.add(LabelRoyalty, fees.RoyaltyFee.String())
	}
	out.event(ev)

	out.Matched = true
	return nil
}
