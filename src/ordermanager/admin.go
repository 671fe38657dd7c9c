package ordermanager

// Admin operations mutate the marketplace policy tables. All of them are
// nonpayable and restricted to the params admin.

func (e *Engine) adminOnly(call CallCtx) (*Params, error) {
	if err := nonpayable(call); err != nil {
		return nil, err
	}
	p, err := e.store.Params()
	if err != nil {
		return nil, err
	}
	if call.Caller != p.Admin {
		return nil, ErrUnauthorized("caller is not the admin")
	}
	return p, nil
}

// UpdateParams replaces the policy snapshot after validating it. The new
// snapshot may hand admin to a different address.
func (e *Engine) UpdateParams(call CallCtx, next Params) (*Outcome, error) {
	if _, err := e.adminOnly(call); err != nil {
		return nil, err
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	if err := e.store.SaveParams(&next); err != nil {
		return nil, err
	}

	out := &Outcome{}
	ev := Event{Type: "update-params"}
	ev.add("admin", next.Admin)
	ev.add("fee_manager", next.FeeManager)
	ev.add("protocol_fee_bps", utoa64(next.ProtocolFeeBps))
	ev.add("maker_reward_bps", utoa64(next.MakerRewardBps))
	ev.add("taker_reward_bps", utoa64(next.TakerRewardBps))
	ev.add("max_royalty_fee_bps", utoa64(next.MaxRoyaltyFeeBps))
	ev.add("default_denom", next.DefaultDenom)
	if next.TradingEnabled {
		ev.add("trading_enabled", "true")
	} else {
		ev.add("trading_enabled", "false")
	}
	ev.add("max_orders_pruned", itoa64(int64(next.MaxOrdersPruned)))
	out.event(ev)
	return out, nil
}

// SetCollectionDenom pins the denom a collection trades in, overriding the
// default denom for new orders. Existing orders keep their denom.
func (e *Engine) SetCollectionDenom(call CallCtx, collection, denom string) (*Outcome, error) {
	if _, err := e.adminOnly(call); err != nil {
		return nil, err
	}
	if collection == "" || denom == "" {
		return nil, ErrInvalidInput("collection and denom must be set")
	}
	if err := e.store.SetCollectionDenom(collection, denom); err != nil {
		return nil, err
	}

	out := &Outcome{}
	ev := Event{Type: "set-collection-denom"}
	ev.add("collection", collection)
	ev.add("denom", denom)
	out.event(ev)
	return out, nil
}

// SetListingFee configures the flat fee charged on listing in a denom.
// Configuring any listing fee makes listing paid; SetAsk then requires one
// of the configured denoms attached.
func (e *Engine) SetListingFee(call CallCtx, fee Coin) (*Outcome, error) {
	if _, err := e.adminOnly(call); err != nil {
		return nil, err
	}
	if !fee.IsValid() {
		return nil, ErrInvalidInput("listing fee must be a positive coin")
	}
	if err := e.store.SetListingFee(fee); err != nil {
		return nil, err
	}

	out := &Outcome{}
	ev := Event{Type: "set-listing-fee"}
	ev.add("fee", fee.String())
	out.event(ev)
	return out, nil
}

func (e *Engine) RemoveListingFee(call CallCtx, denom string) (*Outcome, error) {
	if _, err := e.adminOnly(call); err != nil {
		return nil, err
	}
	if denom == "" {
		return nil, ErrInvalidInput("denom must be set")
	}
	if err := e.store.RemoveListingFee(denom); err != nil {
		return nil, err
	}

	out := &Outcome{}
	ev := Event{Type: "remove-listing-fee"}
	ev.add("denom", denom)
	out.event(ev)
	return out, nil
}

// SetMinExpiryReward opens a denom for expiry rewards and sets the floor a
// reward in it must meet. Orders can only carry expiry in opened denoms.
func (e *Engine) SetMinExpiryReward(call CallCtx, reward Coin) (*Outcome, error) {
	if _, err := e.adminOnly(call); err != nil {
		return nil, err
	}
	if !reward.IsValid() {
		return nil, ErrInvalidInput("min expiry reward must be a positive coin")
	}
	if err := e.store.SetMinExpiryReward(reward); err != nil {
		return nil, err
	}

	out := &Outcome{}
	ev := Event{Type: "set-min-expiry-reward"}
	ev.add("reward", reward.String())
	out.event(ev)
	return out, nil
}

func (e *Engine) RemoveMinExpiryReward(call CallCtx, denom string) (*Outcome, error) {
	if _, err := e.adminOnly(call); err != nil {
		return nil, err
	}
	if denom == "" {
		return nil, ErrInvalidInput("denom must be set")
	}
	if err := e.store.RemoveMinExpiryReward(denom); err != nil {
		return nil, err
	}

	out := &Outcome{}
	ev := Event{Type: "remove-min-expiry-reward"}
	ev.add("denom", denom)
	out.event(ev)
	return out, nil
}
