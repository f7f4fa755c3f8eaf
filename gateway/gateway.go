package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
)

// Command names understood by the wallet backend
type Command string

const (
	CmdIsConnected Command = "is_connected"
	CmdConnect     Command = "connect"
	CmdBalance     Command = "balance"
	CmdActBalances Command = "act_balances"
	CmdCreateToken Command = "create_token"
	CmdRequest     Command = "request"
	CmdPay         Command = "pay"
	CmdReceive     Command = "receive"
)

// Invoker is the backend's named command surface.
// *rpc.Client from go-ethereum satisfies it.
type Invoker interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// CommandError is a rejection returned by the backend for a command.
// Error() is the backend's text, unchanged, so it can be shown to the user as-is.
type CommandError struct {
	Command Command
	Code    int
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// Client wraps a backend connection with one typed method per command
type Client struct {
	inv   Invoker
	close func()
	URL   string
}

// New wraps an existing invoker
func New(inv Invoker) *Client {
	return &Client{inv: inv}
}

// Dial connects to the backend at url (http, ws or ipc path)
func Dial(url string) (*Client, error) {
	return DialWithTimeout(url, 8*time.Second)
}

// DialWithTimeout connects with a custom dial timeout.
// The timeout only bounds the dial; commands themselves are not time limited.
func DialWithTimeout(url string, timeout time.Duration) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial backend %s: %w", url, err)
	}
	return &Client{inv: c, close: c.Close, URL: url}, nil
}

// Close releases the underlying connection, if any
func (c *Client) Close() {
	if c.close != nil {
		c.close()
	}
}

func (c *Client) invoke(ctx context.Context, cmd Command, result interface{}, args interface{}) error {
	var err error
	if args == nil {
		err = c.inv.CallContext(ctx, result, string(cmd))
	} else {
		err = c.inv.CallContext(ctx, result, string(cmd), args)
	}
	if err == nil {
		return nil
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return &CommandError{Command: cmd, Code: rpcErr.ErrorCode(), Message: rpcErr.Error()}
	}
	return err
}

// IsConnected asks the backend whether a wallet session is active
func (c *Client) IsConnected(ctx context.Context) (bool, error) {
	var ok bool
	if err := c.invoke(ctx, CmdIsConnected, &ok, nil); err != nil {
		return false, err
	}
	return ok, nil
}

// Connect opens a wallet session and returns the active secret key
func (c *Client) Connect(ctx context.Context, args ConnectArgs) (string, error) {
	var key string
	if err := c.invoke(ctx, CmdConnect, &key, args); err != nil {
		return "", err
	}
	return key, nil
}

// Balance returns the gas balance in whichever shape the backend sends
func (c *Client) Balance(ctx context.Context) (GasBalance, error) {
	var gas GasBalance
	if err := c.invoke(ctx, CmdBalance, &gas, nil); err != nil {
		return GasBalance{}, err
	}
	return gas, nil
}

// ActBalances returns the token ledger in backend order
func (c *Client) ActBalances(ctx context.Context) (Ledger, error) {
	var ledger Ledger
	if err := c.invoke(ctx, CmdActBalances, &ledger, nil); err != nil {
		return nil, err
	}
	return ledger, nil
}

// CreateToken mints a new token and returns its id
func (c *Client) CreateToken(ctx context.Context, args CreateTokenArgs) (string, error) {
	var id string
	if err := c.invoke(ctx, CmdCreateToken, &id, args); err != nil {
		return "", err
	}
	return id, nil
}

// Request prepares to receive a token and returns the public key to pay to
func (c *Client) Request(ctx context.Context, args RequestArgs) (string, error) {
	var pk string
	if err := c.invoke(ctx, CmdRequest, &pk, args); err != nil {
		return "", err
	}
	return pk, nil
}

// Pay creates a spend and returns its address
func (c *Client) Pay(ctx context.Context, args PayArgs) (string, error) {
	var addr string
	if err := c.invoke(ctx, CmdPay, &addr, args); err != nil {
		return "", err
	}
	return addr, nil
}

// Receive redeems a spend addressed to this wallet
func (c *Client) Receive(ctx context.Context, args ReceiveArgs) error {
	return c.invoke(ctx, CmdReceive, nil, args)
}
