package ordermanager

// CallCtx is the host-supplied execution context of one call. Height is the
// engine's call sequence number (total order over all calls), Time the block
// or request timestamp, Funds the coins attached to the message. The engine
// is a pure function of (store state, CallCtx, arguments): it never reads a
// wall clock and never retries.
type CallCtx struct {
	Caller string
	Funds  Coins
	Height uint64
	Time   int64
}

// Engine is the order matching and settlement core. It owns no state of its
// own; everything lives behind the Store and the collaborator oracles, all
// scoped to the host's transaction.
type Engine struct {
	store     Store
	ownership OwnershipOracle
	transfer  TransferAuthority
	royalty   RoyaltyOracle
	gate      TradabilityGate
}

func New(store Store, ownership OwnershipOracle, transfer TransferAuthority, royalty RoyaltyOracle, gate TradabilityGate) *Engine {
	return &Engine{
		store:     store,
		ownership: ownership,
		transfer:  transfer,
		royalty:   royalty,
		gate:      gate,
	}
}

// nonpayable rejects calls that attached funds to an operation that consumes
// none.
func nonpayable(call CallCtx) error {
	if !call.Funds.IsZero() {
		return ErrInvalidInput("this operation does not accept funds")
	}
	return nil
}

// ownerOrApproved checks that the caller owns the token or is an approved
// operator for it.
func (e *Engine) ownerOrApproved(call CallCtx, collection, tokenID string) error {
	owner, approved, err := e.ownership.OwnerOf(collection, tokenID)
	if err != nil {
		return err
	}
	if owner == call.Caller {
		return nil
	}
	for _, addr := range approved {
		if addr == call.Caller {
			return nil
		}
	}
	return ErrUnauthorized("caller is not the owner of %s/%s", collection, tokenID)
}

// escrowAsset moves the token into engine custody and records the leg.
func (e *Engine) escrowAsset(out *Outcome, p *Params, collection, tokenID string) error {
	if err := e.transfer.TransferToken(collection, tokenID, p.EscrowAddress); err != nil {
		return err
	}
	out.AssetTransfers = append(out.AssetTransfers, AssetTransfer{
		Collection: collection,
		TokenID:    tokenID,
		To:         p.EscrowAddress,
	})
	return nil
}

// releaseAsset moves the token out to a recipient and records the leg.
func (e *Engine) releaseAsset(out *Outcome, collection, tokenID, to string) error {
	if err := e.transfer.TransferToken(collection, tokenID, to); err != nil {
		return err
	}
	out.AssetTransfers = append(out.AssetTransfers, AssetTransfer{
		Collection: collection,
		TokenID:    tokenID,
		To:         to,
	})
	return nil
}
