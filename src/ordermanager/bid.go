package ordermanager

import "strings"

// eventType renders an order event name, e.g. ("set", KindCollectionBid)
// becomes "set-collection-bid".
func eventType(verb string, kind OrderKind) string {
	return verb + "-" + strings.ReplaceAll(string(kind), "_", "-")
}

// SetBid places a bid on a specific token. The bid price is escrowed from
// the attached funds while the bid rests; a qualifying live ask settles the
// sale immediately at the ask's price. buyNow demands an immediate match and
// fails with NoMatchFound instead of resting.
func (e *Engine) SetBid(call CallCtx, collection, tokenID string, details OrderDetails, buyNow bool) (*Outcome, error) {
	p, err := e.store.Params()
	if err != nil {
		return nil, err
	}
	if err := e.requireTradable(p, collection, call.Time); err != nil {
		return nil, err
	}
	if err := e.validPrice(p, collection, details.Price); err != nil {
		return nil, err
	}
	if err := validateDetails(call, details, false); err != nil {
		return nil, err
	}
	reward, err := e.validateExpiry(call, details.Expiry)
	if err != nil {
		return nil, err
	}

	funds := call.Funds
	if reward != nil {
		if funds, err = funds.Sub(*reward, "expiry reward"); err != nil {
			return nil, err
		}
	}

	nonce, err := e.store.NextNonce()
	if err != nil {
		return nil, err
	}
	bid := NewBid(call.Caller, collection, tokenID, details, call.Height, nonce)
	out := &Outcome{OrderID: bid.ID}

	ask, err := e.matchBid(bid, call.Time)
	if err != nil {
		return nil, err
	}
	switch {
	case ask != nil:
		// Immediate settle at the resting ask's price.
		if funds, err = funds.Sub(ask.Details.Price, "payment"); err != nil {
			return nil, err
		}
		if err := e.finalizeSale(out, p, ask, &MatchingBid{Kind: KindBid, Order: bid}, true); err != nil {
			return nil, err
		}
		// The bid never rested, so its reward was never escrowed.
		if reward != nil {
			funds = funds.Add(*reward)
		}
	case buyNow:
		return nil, ErrNoMatchFound()
	default:
		if funds, err = funds.Sub(details.Price, "bid price"); err != nil {
			return nil, err
		}
		if existing, err := e.store.GetOrder(bid.ID); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, ErrInternal("id collision on %s", bid.ID)
		}
		if err := e.store.CreateOrder(bid); err != nil {
			return nil, err
		}
		out.event(orderEvent("set-bid", bid, setOrderAttrs...))
	}

	out.payAll(call.Caller, funds, LabelRefund)
	return out, nil
}

// UpdateBid replaces the terms of the caller's live bid. The previously
// escrowed price and expiry reward are released into the funds tracker
// before the new ones are escrowed, so raising a bid only costs the
// difference. A raise that crosses a live ask settles immediately.
func (e *Engine) UpdateBid(call CallCtx, id string, details OrderDetails) (*Outcome, error) {
	p, err := e.store.Params()
	if err != nil {
		return nil, err
	}
	bid, err := e.loadBuyOrder(id, KindBid)
	if err != nil {
		return nil, err
	}
	if bid.Creator != call.Caller {
		return nil, ErrUnauthorized("only the creator can update the bid")
	}
	if bid.Details.IsExpired(call.Time) {
		return nil, ErrInvalidInput("bid has expired")
	}
	if err := e.validPrice(p, bid.Collection, details.Price); err != nil {
		return nil, err
	}
	if err := validateDetails(call, details, false); err != nil {
		return nil, err
	}
	reward, err := e.validateExpiry(call, details.Expiry)
	if err != nil {
		return nil, err
	}

	funds := call.Funds.Add(bid.Details.Price)
	if old := bid.Details.ExpiryReward(); old != nil {
		funds = funds.Add(*old)
	}
	if reward != nil {
		if funds, err = funds.Sub(*reward, "expiry reward"); err != nil {
			return nil, err
		}
	}

	updated := *bid
	updated.Details = details
	out := &Outcome{OrderID: updated.ID}

	ask, err := e.matchBid(&updated, call.Time)
	if err != nil {
		return nil, err
	}
	if ask != nil {
		if funds, err = funds.Sub(ask.Details.Price, "payment"); err != nil {
			return nil, err
		}
		if err := e.finalizeSale(out, p, ask, &MatchingBid{Kind: KindBid, Order: &updated}, true); err != nil {
			return nil, err
		}
		if reward != nil {
			funds = funds.Add(*reward)
		}
	} else {
		if funds, err = funds.Sub(details.Price, "bid price"); err != nil {
			return nil, err
		}
		if err := e.store.SaveOrder(&updated); err != nil {
			return nil, err
		}
		out.event(orderEvent("update-bid", &updated, setOrderAttrs...))
	}

	out.payAll(call.Caller, funds, LabelRefund)
	return out, nil
}

// RemoveBid cancels a bid and returns the escrowed price to its creator.
func (e *Engine) RemoveBid(call CallCtx, id string) (*Outcome, error) {
	return e.removeBuyOrder(call, id, KindBid)
}

// AcceptBid sells the bid's token to the bidder at the bid's price. details
// carries the seller's terms; its price is the floor the seller agreed to
// receive before fees. The caller must own the token, be approved for it, or
// be the creator of the live ask escrowing it.
func (e *Engine) AcceptBid(call CallCtx, id string, details OrderDetails) (*Outcome, error) {
	bid, err := e.loadBuyOrder(id, KindBid)
	if err != nil {
		return nil, err
	}
	return e.acceptBuyOrder(call, bid, bid.TokenID, details)
}

// loadBuyOrder fetches a bid or collection bid by id, rejecting id/kind
// mismatches as invalid input.
func (e *Engine) loadBuyOrder(id string, kind OrderKind) (*Order, error) {
	o, err := e.store.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if o == nil || o.Kind != kind {
		return nil, ErrInvalidInput("%s not found: %s", strings.ReplaceAll(string(kind), "_", " "), id)
	}
	return o, nil
}

func (e *Engine) removeBuyOrder(call CallCtx, id string, kind OrderKind) (*Outcome, error) {
	if err := nonpayable(call); err != nil {
		return nil, err
	}
	o, err := e.loadBuyOrder(id, kind)
	if err != nil {
		return nil, err
	}

	expired := o.Details.IsExpired(call.Time)
	if !expired && o.Creator != call.Caller {
		return nil, ErrUnauthorized("only the creator can remove a live %s", strings.ReplaceAll(string(kind), "_", " "))
	}

	out := &Outcome{OrderID: o.ID}
	out.pay(o.Creator, o.Details.Price, LabelEscrowReturn)
	if reward := o.Details.ExpiryReward(); reward != nil {
		if expired && call.Caller != o.Creator {
			out.pay(call.Caller, *reward, LabelExpiryReward)
		} else {
			out.pay(o.Creator, *reward, LabelExpiryReward)
		}
	}
	if err := e.store.DeleteOrder(o.ID); err != nil {
		return nil, err
	}
	out.event(orderEvent(eventType("remove", kind), o, removeOrderAttrs...))
	return out, nil
}

// acceptBuyOrder is the shared seller-side settlement for AcceptBid and
// AcceptCollectionBid. The buy order's escrowed price funds the sale, so the
// call itself is nonpayable.
func (e *Engine) acceptBuyOrder(call CallCtx, bid *Order, tokenID string, details OrderDetails) (*Outcome, error) {
	if err := nonpayable(call); err != nil {
		return nil, err
	}
	p, err := e.store.Params()
	if err != nil {
		return nil, err
	}
	if err := e.requireTradable(p, bid.Collection, call.Time); err != nil {
		return nil, err
	}
	if bid.Details.IsExpired(call.Time) {
		return nil, ErrInvalidInput("%s has expired", strings.ReplaceAll(string(bid.Kind), "_", " "))
	}
	if err := e.validPrice(p, bid.Collection, details.Price); err != nil {
		return nil, err
	}
	if err := validateDetails(call, details, true); err != nil {
		return nil, err
	}
	details.Expiry = nil
	if bid.Details.Price.Amount.LessThan(details.Price.Amount) {
		return nil, ErrInsufficientFunds("%s price is below the accepted price", strings.ReplaceAll(string(bid.Kind), "_", " "))
	}

	out := &Outcome{OrderID: bid.ID}

	// If a live ask already escrows the asset, only its creator may accept;
	// the old listing dissolves into this sale and its reward is refunded.
	// Otherwise the caller must hold or be approved for the token.
	if existing, err := e.store.GetOrder(AskID(bid.Collection, tokenID)); err != nil {
		return nil, err
	} else if existing != nil && existing.Kind == KindAsk {
		if existing.Creator != call.Caller {
			return nil, ErrUnauthorized("a live ask by another creator exists for %s/%s", bid.Collection, tokenID)
		}
		if r := existing.Details.ExpiryReward(); r != nil {
			out.pay(existing.Creator, *r, LabelExpiryReward)
		}
	} else {
		if err := e.ownerOrApproved(call, bid.Collection, tokenID); err != nil {
			return nil, err
		}
	}

	nonce, err := e.store.NextNonce()
	if err != nil {
		return nil, err
	}
	ask := NewAsk(call.Caller, bid.Collection, tokenID, details, call.Height, nonce)

	if err := e.finalizeSale(out, p, ask, &MatchingBid{Kind: bid.Kind, Order: bid}, false); err != nil {
		return nil, err
	}
	return out, nil
}
