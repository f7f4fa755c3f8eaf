package controller

import (
	"sync"

	"act-wallet-tui/gateway"
	"act-wallet-tui/helpers"
)

// ClearLabel is the label of the leading empty option
const ClearLabel = "(clear)"

// SelectorOption is one selector entry
type SelectorOption struct {
	Value string
	Label string
}

// Selector is a token picker derived from the ledger.
// It is never authoritative: choosing an option only fills a token-id input.
type Selector struct {
	mu      sync.RWMutex
	options []SelectorOption
}

func NewSelector() *Selector {
	s := &Selector{}
	s.Populate(nil)
	return s
}

// Populate replaces every option with the clear sentinel plus one option per ledger entry
func (s *Selector) Populate(ledger gateway.Ledger) {
	opts := make([]SelectorOption, 0, len(ledger)+1)
	opts = append(opts, SelectorOption{Value: "", Label: ClearLabel})
	for _, e := range ledger {
		opts = append(opts, SelectorOption{Value: e.TokenID, Label: OptionLabel(e)})
	}

	s.mu.Lock()
	s.options = opts
	s.mu.Unlock()
}

// OptionLabel renders "SYMBOL (abcdef…)" for a ledger entry
func OptionLabel(e gateway.LedgerEntry) string {
	return e.Symbol + " (" + helpers.ShortenID(e.TokenID, 6) + ")"
}

// Options returns a copy of the current options
func (s *Selector) Options() []SelectorOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]SelectorOption, len(s.options))
	copy(out, s.options)
	return out
}

// Choose returns the value of option i
func (s *Selector) Choose(i int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.options) {
		return "", false
	}
	return s.options[i].Value, true
}
