package controller

import (
	"context"
	"strings"

	"act-wallet-tui/gateway"
)

// Unit symbols of a two-denomination gas balance
const (
	CoarseUnit = "ANT"
	FineUnit   = "ETH"
)

// NoTokens is shown in place of an empty token ledger
const NoTokens = "–"

// Row is one labelled line of the balance region
type Row struct {
	Label string
	Value string
}

// BalanceView is the rendered balance region
type BalanceView struct {
	Gas    string
	Tokens string
}

// Rows returns the fixed gas-then-tokens display
func (b BalanceView) Rows() []Row {
	return []Row{
		{Label: "Gas", Value: b.Gas},
		{Label: "Tokens", Value: b.Tokens},
	}
}

// FormatGas normalizes either gas shape into one row value
func FormatGas(g gateway.GasBalance) string {
	if g.Kind == gateway.GasPair {
		return joinEntries(gateway.Ledger{
			{Symbol: CoarseUnit, Amount: g.Coarse},
			{Symbol: FineUnit, Amount: g.Fine},
		})
	}
	return g.Value
}

// FormatLedger renders "SYM: amount, SYM: amount" or NoTokens
func FormatLedger(l gateway.Ledger) string {
	if len(l) == 0 {
		return NoTokens
	}
	return joinEntries(l)
}

func joinEntries(l gateway.Ledger) string {
	parts := make([]string, 0, len(l))
	for _, e := range l {
		parts = append(parts, e.Symbol+": "+e.Amount)
	}
	return strings.Join(parts, ", ")
}

// Balance shows the balance region, re-reads gas and token balances and
// repopulates every bound token selector. Backend failures are returned as-is.
func (c *Controller) Balance(ctx context.Context) error {
	c.mu.Lock()
	c.balanceVisible = true
	c.mu.Unlock()

	gas, err := c.gw.Balance(ctx)
	if err != nil {
		return err
	}
	ledger, err := c.gw.ActBalances(ctx)
	if err != nil {
		return err
	}

	view := BalanceView{Gas: FormatGas(gas), Tokens: FormatLedger(ledger)}

	c.mu.Lock()
	c.balance = view
	c.ledger = ledger
	c.mu.Unlock()

	for _, s := range c.selectors {
		s.Populate(ledger)
	}

	c.logger.Debug("balances refreshed", "gas", view.Gas, "tokens", len(ledger))
	return nil
}
