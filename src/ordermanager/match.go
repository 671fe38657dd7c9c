package ordermanager

// Matching decides whether a newly formed order already satisfies a resting
// counter-order. Candidate enumeration comes from the store; qualification
// and the tie-break chain run here so the decision is a pure function of the
// candidate set.
//
// Tie-break chain for equally priced bid candidates: a token-specific bid
// outranks a collection bid (specific intent beats generic), then earlier
// submission height wins, then lower nonce. The specific-beats-generic rule
// is a documented policy choice, not load-bearing for conservation.

type bidCandidate struct {
	order    Order
	specific bool
}

// outranks reports whether a beats b for an ask at any shared price level.
// Higher price first, then the tie-break chain.
func (a bidCandidate) outranks(b bidCandidate) bool {
	if cmp := a.order.Details.Price.Amount.Cmp(b.order.Details.Price.Amount); cmp != 0 {
		return cmp > 0
	}
	if a.specific != b.specific {
		return a.specific
	}
	if a.order.Height != b.order.Height {
		return a.order.Height < b.order.Height
	}
	return a.order.Nonce < b.order.Nonce
}

// bestMatchingBid picks the winning counter-order for an ask from the live
// bids on its token and the live collection bids on its collection, or nil
// when nothing qualifies.
func bestMatchingBid(ask *Order, bids, collectionBids []Order, now int64) *MatchingBid {
	var best *bidCandidate

	consider := func(o Order, specific bool) {
		if o.Details.IsExpired(now) {
			return
		}
		if o.Details.Price.Denom != ask.Details.Price.Denom {
			return
		}
		if o.Details.Price.Amount.LessThan(ask.Details.Price.Amount) {
			return
		}
		// A reserved ask only trades with the reserved buyer.
		if ask.Details.ReserveFor != "" && o.Creator != ask.Details.ReserveFor {
			return
		}
		cand := bidCandidate{order: o, specific: specific}
		if best == nil || cand.outranks(*best) {
			best = &cand
		}
	}

	for _, o := range bids {
		consider(o, true)
	}
	for _, o := range collectionBids {
		consider(o, false)
	}

	if best == nil {
		return nil
	}
	kind := KindBid
	if !best.specific {
		kind = KindCollectionBid
	}
	order := best.order
	return &MatchingBid{Kind: kind, Order: &order}
}

// askQualifiesFor reports whether a live ask satisfies a buy-side order.
func askQualifiesFor(ask *Order, buyer string, price Coin, now int64) bool {
	if ask == nil || ask.Details.IsExpired(now) {
		return false
	}
	if ask.Details.Price.Denom != price.Denom {
		return false
	}
	if ask.Details.Price.Amount.GreaterThan(price.Amount) {
		return false
	}
	if ask.Details.ReserveFor != "" && ask.Details.ReserveFor != buyer {
		return false
	}
	return true
}

// bestMatchingAsk picks the cheapest qualifying ask for a collection bid;
// ties reduce to submission order (height, then nonce).
func bestMatchingAsk(bid *Order, asks []Order, now int64) *Order {
	var best *Order
	for i := range asks {
		o := asks[i]
		if !askQualifiesFor(&o, bid.Creator, bid.Details.Price, now) {
			continue
		}
		if best == nil {
			best = &o
			continue
		}
		if cmp := o.Details.Price.Amount.Cmp(best.Details.Price.Amount); cmp != 0 {
			if cmp < 0 {
				best = &o
			}
			continue
		}
		if o.Height != best.Height {
			if o.Height < best.Height {
				best = &o
			}
			continue
		}
		if o.Nonce < best.Nonce {
			best = &o
		}
	}
	return best
}

// matchAsk queries the store for the ask's counter-order candidates and
// returns at most one winner.
func (e *Engine) matchAsk(ask *Order, now int64) (*MatchingBid, error) {
	bids, err := e.store.BidsByTokenDenom(ask.Collection, ask.TokenID, ask.Details.Price.Denom)
	if err != nil {
		return nil, err
	}
	collectionBids, err := e.store.CollectionBidsByDenom(ask.Collection, ask.Details.Price.Denom)
	if err != nil {
		return nil, err
	}
	return bestMatchingBid(ask, bids, collectionBids, now), nil
}

// matchBid loads the (unique) live ask for the bid's asset and checks
// whether it qualifies.
func (e *Engine) matchBid(bid *Order, now int64) (*Order, error) {
	ask, err := e.store.GetOrder(AskID(bid.Collection, bid.TokenID))
	if err != nil {
		return nil, err
	}
	if !askQualifiesFor(ask, bid.Creator, bid.Details.Price, now) {
		return nil, nil
	}
	return ask, nil
}

// matchCollectionBid scans the collection's live asks for the cheapest
// qualifying one.
func (e *Engine) matchCollectionBid(bid *Order, now int64) (*Order, error) {
	asks, err := e.store.AsksByCollectionDenom(bid.Collection, bid.Details.Price.Denom)
	if err != nil {
		return nil, err
	}
	return bestMatchingAsk(bid, asks, now), nil
}
