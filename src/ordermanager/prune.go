package ordermanager

// PruneExpired sweeps expired orders in expiry order, unwinding each one as
// a removal: escrowed assets and prices return to their owners and every
// escrowed expiry reward is paid to the pruning caller. Only configured
// operators may prune, and one invocation processes at most
// MaxOrdersPruned records regardless of the requested limit.
func (e *Engine) PruneExpired(call CallCtx, limit int) (*Outcome, error) {
	if err := nonpayable(call); err != nil {
		return nil, err
	}
	p, err := e.store.Params()
	if err != nil {
		return nil, err
	}
	if !p.isOperator(call.Caller) {
		return nil, ErrUnauthorized("caller is not an operator")
	}
	if limit <= 0 || limit > p.MaxOrdersPruned {
		limit = p.MaxOrdersPruned
	}

	expired, err := e.store.ExpiredOrders(call.Time, limit)
	if err != nil {
		return nil, err
	}

	out := &Outcome{}
	for i := range expired {
		o := expired[i]

		switch o.Kind {
		case KindAsk:
			if err := e.releaseAsset(out, o.Collection, o.TokenID, o.AssetRecipient()); err != nil {
				return nil, err
			}
		case KindBid, KindCollectionBid:
			out.pay(o.Creator, o.Details.Price, LabelEscrowReturn)
		default:
			return nil, ErrInternal("unknown order kind %q for %s", o.Kind, o.ID)
		}
		if reward := o.Details.ExpiryReward(); reward != nil {
			out.pay(call.Caller, *reward, LabelPruneReward)
		}
		if err := e.store.DeleteOrder(o.ID); err != nil {
			return nil, err
		}

		ev := orderEvent(eventType("remove", o.Kind), &o, removeOrderAttrs...)
		ev.add("reason", "expired")
		out.event(ev)
	}

	summary := Event{Type: "prune-expired"}
	summary.add("pruned", itoa64(int64(len(expired))))
	out.event(summary)
	return out, nil
}
