package ordermanager

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Coin is a denominated integer amount. All engine arithmetic is exact
// decimal; floats never appear in fee or price math.
type Coin struct {
	Denom  string          `json:"denom"`
	Amount decimal.Decimal `json:"amount"`
}

func NewCoin(denom string, amount int64) Coin {
	return Coin{Denom: denom, Amount: decimal.NewFromInt(amount)}
}

func (c Coin) IsValid() bool {
	return c.Denom != "" && c.Amount.IsPositive()
}

func (c Coin) IsZero() bool {
	return c.Amount.IsZero()
}

func (c Coin) String() string {
	return fmt.Sprintf("%s%s", c.Amount.String(), c.Denom)
}

// Coins is a normalized balance: sorted by denom, strictly positive amounts,
// at most one entry per denom. Iteration order is therefore deterministic.
type Coins []Coin

// NewCoins normalizes an arbitrary coin list, merging duplicate denoms and
// dropping zero amounts. Negative amounts are rejected by the caller-side
// payload validation before they reach the engine.
func NewCoins(coins ...Coin) Coins {
	byDenom := make(map[string]decimal.Decimal, len(coins))
	for _, c := range coins {
		if c.Denom == "" || !c.Amount.IsPositive() {
			continue
		}
		byDenom[c.Denom] = byDenom[c.Denom].Add(c.Amount)
	}

	out := make(Coins, 0, len(byDenom))
	for denom, amount := range byDenom {
		out = append(out, Coin{Denom: denom, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Denom < out[j].Denom })
	return out
}

func (cs Coins) AmountOf(denom string) decimal.Decimal {
	for _, c := range cs {
		if c.Denom == denom {
			return c.Amount
		}
	}
	return decimal.Zero
}

func (cs Coins) IsZero() bool {
	return len(cs) == 0
}

// Add returns cs with c merged in.
func (cs Coins) Add(c Coin) Coins {
	if c.Denom == "" || !c.Amount.IsPositive() {
		return cs
	}
	return NewCoins(append(append(Coins{}, cs...), c)...)
}

// Sub deducts c from cs. The what label names the payment being collected
// and surfaces in the InsufficientFunds reason.
func (cs Coins) Sub(c Coin, what string) (Coins, error) {
	if c.Denom == "" || c.Amount.IsZero() {
		return cs, nil
	}
	have := cs.AmountOf(c.Denom)
	if have.LessThan(c.Amount) {
		return nil, ErrInsufficientFunds("%s", what)
	}

	out := make(Coins, 0, len(cs))
	for _, existing := range cs {
		if existing.Denom != c.Denom {
			out = append(out, existing)
			continue
		}
		rest := existing.Amount.Sub(c.Amount)
		if rest.IsPositive() {
			out = append(out, Coin{Denom: c.Denom, Amount: rest})
		}
	}
	return out, nil
}
