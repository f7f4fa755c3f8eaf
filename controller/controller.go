// Package controller holds the wallet console's client-side state: connection
// lifecycle, balance snapshot, token selectors, flow status slots and the
// navigation panel. It talks to the wallet backend only through Gateway and
// knows nothing about how its state is drawn.
package controller

import (
	"context"
	"io"
	"sync"

	"act-wallet-tui/gateway"

	"github.com/charmbracelet/log"
)

// Slot and panel ids. Flow panels share their id with their status slot.
const (
	SlotConnect     = "connect"
	SlotCreateToken = "create-token"
	SlotRequest     = "request"
	SlotPay         = "pay"
	SlotReceive     = "receive"
	// SlotApp receives failures no flow catches
	SlotApp = "app"
)

// Input field ids
const (
	FieldSecretKey      = "connect.secret-key"
	FieldTokenName      = "create-token.name"
	FieldTokenSymbol    = "create-token.symbol"
	FieldTokenSupply    = "create-token.supply"
	FieldTokenDecimals  = "create-token.decimals"
	FieldRequestTokenID = "request.token-id"
	FieldPayTokenID     = "pay.token-id"
	FieldPayAmount      = "pay.amount"
	FieldPayTo          = "pay.to"
	FieldSpendAddress   = "receive.spend-address"
)

// FlowPanels lists the navigable flow panels in menu order
func FlowPanels() []string {
	return []string{SlotCreateToken, SlotRequest, SlotPay, SlotReceive}
}

// Gateway is the typed backend surface the controller depends on
type Gateway interface {
	IsConnected(ctx context.Context) (bool, error)
	Connect(ctx context.Context, args gateway.ConnectArgs) (string, error)
	Balance(ctx context.Context) (gateway.GasBalance, error)
	ActBalances(ctx context.Context) (gateway.Ledger, error)
	CreateToken(ctx context.Context, args gateway.CreateTokenArgs) (string, error)
	Request(ctx context.Context, args gateway.RequestArgs) (string, error)
	Pay(ctx context.Context, args gateway.PayArgs) (string, error)
	Receive(ctx context.Context, args gateway.ReceiveArgs) error
}

// Inputs is an optional lookup of input field values.
// A missing field reports ok == false.
type Inputs interface {
	Lookup(field string) (string, bool)
}

// Fields is a plain map of field values
type Fields map[string]string

func (f Fields) Lookup(field string) (string, bool) {
	v, ok := f[field]
	return v, ok
}

// value reads a field, treating an absent one as empty
func value(in Inputs, field string) string {
	if in == nil {
		return ""
	}
	v, _ := in.Lookup(field)
	return v
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger routes controller logs to l
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStartPanel sets the flow panel visible before any navigation
func WithStartPanel(panel string) Option {
	return func(c *Controller) {
		c.startPanel = panel
	}
}

// Controller owns every piece of display state derived from the backend
type Controller struct {
	gw     Gateway
	logger *log.Logger

	Status *Registry
	Nav    *Nav

	startPanel string

	mu             sync.Mutex
	connected      bool
	network        gateway.Network
	connectVisible bool
	balanceVisible bool
	balance        BalanceView
	ledger         gateway.Ledger
	selectors      map[string]*Selector
	results        map[string]string
	generatedKey   string
}

// New builds the controller once at startup
func New(gw Gateway, opts ...Option) *Controller {
	c := &Controller{
		gw:             gw,
		logger:         log.New(io.Discard),
		Status:         NewRegistry(),
		startPanel:     SlotCreateToken,
		connectVisible: true,
		balance:        BalanceView{Tokens: NoTokens},
		selectors: map[string]*Selector{
			SlotRequest: NewSelector(),
			SlotPay:     NewSelector(),
		},
		results: map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Nav = NewNav(FlowPanels(), c.startPanel)
	return c
}

// Selector returns the token selector bound to a flow, if it has one
func (c *Controller) Selector(flow string) (*Selector, bool) {
	s, ok := c.selectors[flow]
	return s, ok
}

// SelectorFields maps each selector's flow to the token-id field it mirrors into
func SelectorFields() map[string]string {
	return map[string]string{
		SlotRequest: FieldRequestTokenID,
		SlotPay:     FieldPayTokenID,
	}
}

// LastResult returns the value of the flow's last successful command
func (c *Controller) LastResult(flow string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.results[flow]
	return r, ok
}

// Snapshot is a copy of the controller's display state
type Snapshot struct {
	Connected      bool
	Network        gateway.Network
	ConnectVisible bool
	BalanceVisible bool
	Balance        BalanceView
	Ledger         gateway.Ledger
}

// Snapshot returns the current display state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	ledger := make(gateway.Ledger, len(c.ledger))
	copy(ledger, c.ledger)
	return Snapshot{
		Connected:      c.connected,
		Network:        c.network,
		ConnectVisible: c.connectVisible,
		BalanceVisible: c.balanceVisible,
		Balance:        c.balance,
		Ledger:         ledger,
	}
}
