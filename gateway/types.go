package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Network selects which backend network to join
type Network string

const (
	NetworkMain  Network = "Main"
	NetworkLocal Network = "Local"
	NetworkAlpha Network = "Alpha"
)

// Networks lists the selectable networks in display order
func Networks() []Network {
	return []Network{NetworkMain, NetworkLocal, NetworkAlpha}
}

// ParseNetwork matches a network name case-insensitively
func ParseNetwork(s string) (Network, error) {
	for _, n := range Networks() {
		if strings.EqualFold(string(n), strings.TrimSpace(s)) {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown network %q", s)
}

// ConnectArgs is the argument record of the connect command.
// A nil EvmPk asks the backend to generate a key.
type ConnectArgs struct {
	Network Network `json:"network"`
	EvmPk   *string `json:"evmPk"`
}

// CreateTokenArgs is the argument record of create_token.
// Decimals is sent as null when the input was not an integer.
type CreateTokenArgs struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    *int   `json:"decimals"`
	TotalSupply string `json:"totalSupply"`
}

// ParseDecimals converts the decimals input, returning nil when it is not an integer
func ParseDecimals(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

type RequestArgs struct {
	TokenID string `json:"tokenId"`
}

type PayArgs struct {
	TokenID string `json:"tokenId"`
	Amount  string `json:"amount"`
	To      string `json:"to"`
}

type ReceiveArgs struct {
	SpendAddress string `json:"spendAddress"`
}

// GasKind tags the shape of a gas balance response
type GasKind int

const (
	// GasSingle is one opaque display value
	GasSingle GasKind = iota
	// GasPair is a coarse and a fine denomination of the same balance
	GasPair
)

// GasBalance is the decoded balance command result
type GasBalance struct {
	Kind   GasKind
	Value  string
	Coarse string
	Fine   string
}

// SingleGas builds a single-valued gas balance
func SingleGas(v string) GasBalance {
	return GasBalance{Kind: GasSingle, Value: v}
}

// PairGas builds a two-denomination gas balance
func PairGas(coarse, fine string) GasBalance {
	return GasBalance{Kind: GasPair, Coarse: coarse, Fine: fine}
}

func (g *GasBalance) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var pair []json.RawMessage
		if err := json.Unmarshal(b, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("gas balance pair has %d elements", len(pair))
		}
		*g = PairGas(scalarText(pair[0]), scalarText(pair[1]))
		return nil
	}
	*g = SingleGas(scalarText(b))
	return nil
}

// LedgerEntry is one token balance row
type LedgerEntry struct {
	TokenID string
	Symbol  string
	Amount  string
}

// Ledger is the token balance mapping in backend insertion order
type Ledger []LedgerEntry

// UnmarshalJSON decodes an object of tokenId -> [symbol, amount] keeping key order.
// A repeated key overwrites the earlier entry in place. Anything other than an
// object decodes to an empty ledger.
func (l *Ledger) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		*l = nil
		return nil
	}

	om := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(b, om); err != nil {
		return fmt.Errorf("decode ledger: %w", err)
	}

	out := make(Ledger, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		entry := LedgerEntry{TokenID: pair.Key}
		var fields []json.RawMessage
		if json.Unmarshal(pair.Value, &fields) == nil {
			if len(fields) > 0 {
				entry.Symbol = scalarText(fields[0])
			}
			if len(fields) > 1 {
				entry.Amount = scalarText(fields[1])
			}
		} else {
			entry.Amount = scalarText(pair.Value)
		}
		out = append(out, entry)
	}

	*l = out
	return nil
}

// scalarText renders a JSON scalar as display text
func scalarText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if raw[0] == '"' && json.Unmarshal(raw, &s) == nil {
		return s
	}
	return string(raw)
}
