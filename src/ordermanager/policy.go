package ordermanager

// MaxBasisPoints is 100% expressed in basis points.
const MaxBasisPoints = 10_000

// Validate enforces the invariants every stored params snapshot must hold.
func (p *Params) Validate() error {
	if p.Admin == "" || p.FeeManager == "" || p.EscrowAddress == "" {
		return ErrInvalidInput("admin, fee_manager and escrow_address must be set")
	}
	if p.DefaultDenom == "" {
		return ErrInvalidInput("default_denom must be set")
	}
	if p.ProtocolFeeBps >= MaxBasisPoints {
		return ErrInvalidInput("protocol_fee_bps must be less than 100%%")
	}
	if p.MakerRewardBps+p.TakerRewardBps >= MaxBasisPoints {
		return ErrInvalidInput("maker and taker reward bps must be less than 100%% combined")
	}
	if p.ProtocolFeeBps+p.MaxRoyaltyFeeBps >= MaxBasisPoints {
		return ErrInvalidInput("protocol fee and max royalty fee must be less than 100%% combined")
	}
	if p.MaxOrdersPruned <= 0 {
		return ErrInvalidInput("max_orders_pruned must be positive")
	}
	return nil
}

// collectionDenom resolves the accepted denom for a collection.
func (e *Engine) collectionDenom(p *Params, collection string) (string, error) {
	denom, err := e.store.CollectionDenom(collection)
	if err != nil {
		return "", err
	}
	if denom == "" {
		denom = p.DefaultDenom
	}
	return denom, nil
}

// validPrice rejects zero amounts and denominations the collection does not
// accept.
func (e *Engine) validPrice(p *Params, collection string, price Coin) error {
	if !price.Amount.IsPositive() {
		return ErrInvalidInput("order price must be greater than 0")
	}
	denom, err := e.collectionDenom(p, collection)
	if err != nil {
		return err
	}
	if price.Denom != denom {
		return ErrInvalidInput("invalid denom: %s is not accepted for collection %s", price.Denom, collection)
	}
	return nil
}

// validateDetails covers the field rules shared by all order kinds. Asks may
// reserve the order for a single buyer; bids never carry reserve_for.
func validateDetails(call CallCtx, details OrderDetails, isAsk bool) error {
	if details.Finder == call.Caller && details.Finder != "" {
		return ErrInvalidInput("finder cannot be the order creator")
	}
	if isAsk {
		if details.ReserveFor == call.Caller && details.ReserveFor != "" {
			return ErrInvalidInput("cannot reserve ask for the creator")
		}
	} else if details.ReserveFor != "" {
		return ErrInvalidInput("reserve_for is only valid on asks")
	}
	return nil
}

// validateExpiry checks an optional expiry against the call time and the
// configured per-denom reward floor. Returns the reward to escrow, or nil.
func (e *Engine) validateExpiry(call CallCtx, expiry *Expiry) (*Coin, error) {
	if expiry == nil {
		return nil, nil
	}
	if expiry.Timestamp <= call.Time {
		return nil, ErrInvalidInput("expiry timestamp must be in the future")
	}
	if !expiry.Reward.IsValid() {
		return nil, ErrInvalidInput("expiry reward must be a positive coin")
	}

	minReward, ok, err := e.store.MinExpiryReward(expiry.Reward.Denom)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidInput("min expiry reward not found for denom %s", expiry.Reward.Denom)
	}
	if expiry.Reward.Amount.LessThan(minReward) {
		return nil, ErrInvalidInput("expiry reward must be greater than or equal to the min expiry reward")
	}

	reward := expiry.Reward
	return &reward, nil
}

// collectListingFee deducts the configured listing fee from the attached
// funds and forwards it to the fee manager. With no configured listing fees,
// listing is free. Otherwise the first attached denom carrying a configured
// fee pays it; attaching none of the configured denoms fails the call.
func (e *Engine) collectListingFee(out *Outcome, p *Params, funds Coins) (Coins, error) {
	fees, err := e.store.ListingFees()
	if err != nil {
		return nil, err
	}
	if len(fees) == 0 {
		return funds, nil
	}

	for _, c := range funds {
		for _, fee := range fees {
			if fee.Denom != c.Denom {
				continue
			}
			rest, err := funds.Sub(fee, "listing fee")
			if err != nil {
				return nil, err
			}
			out.pay(p.FeeManager, fee, LabelListingFee)
			return rest, nil
		}
	}
	return nil, ErrInsufficientFunds("listing fee")
}

// requireTradable gates order creation on the global switch and the
// collection's own schedule.
func (e *Engine) requireTradable(p *Params, collection string, now int64) error {
	if !p.TradingEnabled {
		return ErrInvalidInput("trading is disabled")
	}
	tradable, err := e.gate.IsTradable(collection, now)
	if err != nil {
		return err
	}
	if !tradable {
		return ErrInvalidInput("collection %s is not tradable", collection)
	}
	return nil
}
