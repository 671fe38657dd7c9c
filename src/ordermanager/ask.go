package ordermanager

// SetAsk lists a token for sale. The caller must own the token or be
// approved for it; the asset moves into escrow unless a qualifying bid
// settles the sale immediately. sellNow demands an immediate match and fails
// with NoMatchFound instead of resting.
//
// A caller that already has a live ask on the asset may call SetAsk again to
// replace it: the old record is dropped and its expiry reward refunded
// before the new terms take effect.
func (e *Engine) SetAsk(call CallCtx, collection, tokenID string, details OrderDetails, sellNow bool) (*Outcome, error) {
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
	if err := validateDetails(call, details, true); err != nil {
		return nil, err
	}
	reward, err := e.validateExpiry(call, details.Expiry)
	if err != nil {
		return nil, err
	}

	out := &Outcome{}
	funds := call.Funds
	if reward != nil {
		if funds, err = funds.Sub(*reward, "expiry reward"); err != nil {
			return nil, err
		}
	}
	if funds, err = e.collectListingFee(out, p, funds); err != nil {
		return nil, err
	}

	nonce, err := e.store.NextNonce()
	if err != nil {
		return nil, err
	}
	ask := NewAsk(call.Caller, collection, tokenID, details, call.Height, nonce)
	out.OrderID = ask.ID

	// Replacing an own live ask: the asset is already in escrow, so the
	// ownership oracle would report the escrow address. Any other record
	// under this id blocks the listing.
	escrowed := false
	if existing, err := e.store.GetOrder(ask.ID); err != nil {
		return nil, err
	} else if existing != nil {
		if existing.Kind != KindAsk {
			return nil, ErrInternal("id collision on %s", ask.ID)
		}
		if existing.Creator != call.Caller {
			return nil, ErrUnauthorized("a live ask by another creator exists for %s/%s", collection, tokenID)
		}
		if r := existing.Details.ExpiryReward(); r != nil {
			out.pay(existing.Creator, *r, LabelExpiryReward)
		}
		if err := e.store.DeleteOrder(existing.ID); err != nil {
			return nil, err
		}
		out.event(orderEvent("remove-ask", existing, removeOrderAttrs...))
		escrowed = true
	}
	if !escrowed {
		if err := e.ownerOrApproved(call, collection, tokenID); err != nil {
			return nil, err
		}
	}

	match, err := e.matchAsk(ask, call.Time)
	if err != nil {
		return nil, err
	}
	switch {
	case match != nil:
		// An immediate sale never escrows the asset first; custody moves
		// straight from its current holder to the buyer.
		if err := e.finalizeSale(out, p, ask, match, false); err != nil {
			return nil, err
		}
		// The ask never rested, so its reward was never escrowed.
		if reward != nil {
			funds = funds.Add(*reward)
		}
	case sellNow:
		return nil, ErrNoMatchFound()
	default:
		if !escrowed {
			if err := e.escrowAsset(out, p, collection, tokenID); err != nil {
				return nil, err
			}
		}
		if err := e.store.CreateOrder(ask); err != nil {
			return nil, err
		}
		out.event(orderEvent("set-ask", ask, setOrderAttrs...))
	}

	out.payAll(ask.AssetRecipient(), funds, LabelRefund)
	return out, nil
}

// UpdateAsk replaces the terms of the caller's live ask. The old expiry
// reward is released and the new one escrowed from it plus any attached
// funds; a price drop that crosses a resting bid settles immediately.
func (e *Engine) UpdateAsk(call CallCtx, collection, tokenID string, details OrderDetails) (*Outcome, error) {
	p, err := e.store.Params()
	if err != nil {
		return nil, err
	}
	ask, err := e.store.GetOrder(AskID(collection, tokenID))
	if err != nil {
		return nil, err
	}
	if ask == nil || ask.Kind != KindAsk {
		return nil, ErrInvalidInput("ask not found for %s/%s", collection, tokenID)
	}
	if ask.Creator != call.Caller {
		return nil, ErrUnauthorized("only the creator can update the ask")
	}
	if ask.Details.IsExpired(call.Time) {
		return nil, ErrInvalidInput("ask has expired")
	}
	if err := e.validPrice(p, collection, details.Price); err != nil {
		return nil, err
	}
	if err := validateDetails(call, details, true); err != nil {
		return nil, err
	}
	reward, err := e.validateExpiry(call, details.Expiry)
	if err != nil {
		return nil, err
	}

	funds := call.Funds
	if old := ask.Details.ExpiryReward(); old != nil {
		funds = funds.Add(*old)
	}
	if reward != nil {
		if funds, err = funds.Sub(*reward, "expiry reward"); err != nil {
			return nil, err
		}
	}

	updated := *ask
	updated.Details = details
	out := &Outcome{OrderID: updated.ID}

	match, err := e.matchAsk(&updated, call.Time)
	if err != nil {
		return nil, err
	}
	if match != nil {
		if err := e.finalizeSale(out, p, &updated, match, false); err != nil {
			return nil, err
		}
		if reward != nil {
			funds = funds.Add(*reward)
		}
	} else {
		if err := e.store.SaveOrder(&updated); err != nil {
			return nil, err
		}
		out.event(orderEvent("update-ask", &updated, setOrderAttrs...))
	}

	out.payAll(updated.AssetRecipient(), funds, LabelRefund)
	return out, nil
}

// RemoveAsk delists a token and returns it to the asset recipient. Before
// expiry only the creator may remove; after expiry anyone may, and a
// non-creator remover earns the escrowed expiry reward.
func (e *Engine) RemoveAsk(call CallCtx, collection, tokenID string) (*Outcome, error) {
	if err := nonpayable(call); err != nil {
		return nil, err
	}
	ask, err := e.store.GetOrder(AskID(collection, tokenID))
	if err != nil {
		return nil, err
	}
	if ask == nil || ask.Kind != KindAsk {
		return nil, ErrInvalidInput("ask not found for %s/%s", collection, tokenID)
	}

	expired := ask.Details.IsExpired(call.Time)
	if !expired && ask.Creator != call.Caller {
		return nil, ErrUnauthorized("only the creator can remove a live ask")
	}

	out := &Outcome{OrderID: ask.ID}
	if err := e.releaseAsset(out, collection, tokenID, ask.AssetRecipient()); err != nil {
		return nil, err
	}
	if reward := ask.Details.ExpiryReward(); reward != nil {
		if expired && call.Caller != ask.Creator {
			out.pay(call.Caller, *reward, LabelExpiryReward)
		} else {
			out.pay(ask.Creator, *reward, LabelExpiryReward)
		}
	}
	if err := e.store.DeleteOrder(ask.ID); err != nil {
		return nil, err
	}
	out.event(orderEvent("remove-ask", ask, removeOrderAttrs...))
	return out, nil
}

// AcceptAsk buys a listed token at the resting ask's price. details carries
// the buyer's terms: the price is the ceiling the buyer agreed to pay, so a
// repriced ask above it fails rather than surprising the buyer.
func (e *Engine) AcceptAsk(call CallCtx, collection, tokenID string, details OrderDetails) (*Outcome, error) {
	p, err := e.store.Params()
	if err != nil {
		return nil, err
	}
	if err := e.requireTradable(p, collection, call.Time); err != nil {
		return nil, err
	}
	if err := validateDetails(call, details, false); err != nil {
		return nil, err
	}
	details.Expiry = nil

	ask, err := e.store.GetOrder(AskID(collection, tokenID))
	if err != nil {
		return nil, err
	}
	if ask == nil || ask.Kind != KindAsk {
		return nil, ErrInvalidInput("ask not found for %s/%s", collection, tokenID)
	}
	if ask.Details.IsExpired(call.Time) {
		return nil, ErrInvalidInput("ask has expired")
	}
	if ask.Details.ReserveFor != "" && ask.Details.ReserveFor != call.Caller {
		return nil, ErrUnauthorized("ask is reserved for another buyer")
	}
	if ask.Details.Price.Denom != details.Price.Denom ||
		ask.Details.Price.Amount.GreaterThan(details.Price.Amount) {
		return nil, ErrInsufficientFunds("ask price exceeds the accepted price")
	}

	funds, err := call.Funds.Sub(ask.Details.Price, "payment")
	if err != nil {
		return nil, err
	}

	nonce, err := e.store.NextNonce()
	if err != nil {
		return nil, err
	}
	bid := NewBid(call.Caller, collection, tokenID, details, call.Height, nonce)

	out := &Outcome{OrderID: ask.ID}
	if err := e.finalizeSale(out, p, ask, &MatchingBid{Kind: KindBid, Order: bid}, true); err != nil {
		return nil, err
	}

	out.payAll(call.Caller, funds, LabelRefund)
	return out, nil
}
