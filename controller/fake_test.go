package controller

import (
	"context"
	"errors"
	"sync"

	"act-wallet-tui/gateway"
)

// fakeGateway answers commands from fields and records every call
type fakeGateway struct {
	mu sync.Mutex

	connected    bool
	connectedErr error
	connectKey   string
	connectErr   error
	gas          gateway.GasBalance
	gasErr       error
	ledger       gateway.Ledger
	ledgerErr    error
	result       string
	flowErr      error

	calls       []gateway.Command
	connectArgs []gateway.ConnectArgs
	lastArgs    interface{}
}

func (f *fakeGateway) record(cmd gateway.Command, args interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cmd)
	if args != nil {
		f.lastArgs = args
	}
}

func (f *fakeGateway) count(cmd gateway.Command) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == cmd {
			n++
		}
	}
	return n
}

func (f *fakeGateway) IsConnected(ctx context.Context) (bool, error) {
	f.record(gateway.CmdIsConnected, nil)
	return f.connected, f.connectedErr
}

func (f *fakeGateway) Connect(ctx context.Context, args gateway.ConnectArgs) (string, error) {
	f.record(gateway.CmdConnect, args)
	f.mu.Lock()
	f.connectArgs = append(f.connectArgs, args)
	f.mu.Unlock()
	if f.connectErr != nil {
		return "", f.connectErr
	}
	f.connected = true
	if args.EvmPk != nil {
		return *args.EvmPk, nil
	}
	return f.connectKey, nil
}

func (f *fakeGateway) Balance(ctx context.Context) (gateway.GasBalance, error) {
	f.record(gateway.CmdBalance, nil)
	return f.gas, f.gasErr
}

func (f *fakeGateway) ActBalances(ctx context.Context) (gateway.Ledger, error) {
	f.record(gateway.CmdActBalances, nil)
	return f.ledger, f.ledgerErr
}

func (f *fakeGateway) CreateToken(ctx context.Context, args gateway.CreateTokenArgs) (string, error) {
	f.record(gateway.CmdCreateToken, args)
	return f.result, f.flowErr
}

func (f *fakeGateway) Request(ctx context.Context, args gateway.RequestArgs) (string, error) {
	f.record(gateway.CmdRequest, args)
	return f.result, f.flowErr
}

func (f *fakeGateway) Pay(ctx context.Context, args gateway.PayArgs) (string, error) {
	f.record(gateway.CmdPay, args)
	return f.result, f.flowErr
}

func (f *fakeGateway) Receive(ctx context.Context, args gateway.ReceiveArgs) error {
	f.record(gateway.CmdReceive, args)
	return f.flowErr
}

var errRejected = errors.New("Not connected.")
