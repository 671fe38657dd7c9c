package ordermanager

// SetCollectionBid places a bid on any token in a collection. The price is
// escrowed while the bid rests; the cheapest qualifying live ask settles
// immediately at that ask's price. buyNow demands an immediate match.
func (e *Engine) SetCollectionBid(call CallCtx, collection string, details OrderDetails, buyNow bool) (*Outcome, error) {
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
	bid := NewCollectionBid(call.Caller, collection, details, call.Height, nonce)
	out := &Outcome{OrderID: bid.ID}

	ask, err := e.matchCollectionBid(bid, call.Time)
	if err != nil {
		return nil, err
	}
	switch {
	case ask != nil:
		if funds, err = funds.Sub(ask.Details.Price, "payment"); err != nil {
			return nil, err
		}
		if err := e.finalizeSale(out, p, ask, &MatchingBid{Kind: KindCollectionBid, Order: bid}, true); err != nil {
			return nil, err
		}
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
		out.event(orderEvent("set-collection-bid", bid, setOrderAttrs...))
	}

	out.payAll(call.Caller, funds, LabelRefund)
	return out, nil
}

// UpdateCollectionBid replaces the terms of the caller's live collection
// bid, releasing the old escrow into the funds tracker first. A raise that
// crosses a live ask settles immediately against the cheapest one.
func (e *Engine) UpdateCollectionBid(call CallCtx, id string, details OrderDetails) (*Outcome, error) {
	p, err := e.store.Params()
	if err != nil {
		return nil, err
	}
	bid, err := e.loadBuyOrder(id, KindCollectionBid)
	if err != nil {
		return nil, err
	}
	if bid.Creator != call.Caller {
		return nil, ErrUnauthorized("only the creator can update the collection bid")
	}
	if bid.Details.IsExpired(call.Time) {
		return nil, ErrInvalidInput("collection bid has expired")
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

	ask, err := e.matchCollectionBid(&updated, call.Time)
	if err != nil {
		return nil, err
	}
	if ask != nil {
		if funds, err = funds.Sub(ask.Details.Price, "payment"); err != nil {
			return nil, err
		}
		if err := e.finalizeSale(out, p, ask, &MatchingBid{Kind: KindCollectionBid, Order: &updated}, true); err != nil {
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
		out.event(orderEvent("update-collection-bid", &updated, setOrderAttrs...))
	}

	out.payAll(call.Caller, funds, LabelRefund)
	return out, nil
}

// RemoveCollectionBid cancels a collection bid and returns the escrowed
// price to its creator.
func (e *Engine) RemoveCollectionBid(call CallCtx, id string) (*Outcome, error) {
	return e.removeBuyOrder(call, id, KindCollectionBid)
}

// AcceptCollectionBid sells a token of the seller's choosing to the
// collection bidder at the bid's price.
func (e *Engine) AcceptCollectionBid(call CallCtx, id, tokenID string, details OrderDetails) (*Outcome, error) {
	if tokenID == "" {
		return nil, ErrInvalidInput("token_id must be set")
	}
	bid, err := e.loadBuyOrder(id, KindCollectionBid)
	if err != nil {
		return nil, err
	}
	return e.acceptBuyOrder(call, bid, tokenID, details)
}
