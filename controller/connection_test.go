package controller

import (
	"context"
	"errors"
	"testing"

	"act-wallet-tui/gateway"
)

func TestRefreshNotConnected(t *testing.T) {
	fg := &fakeGateway{}
	c := New(fg)

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	snap := c.Snapshot()
	if !snap.ConnectVisible || snap.Connected {
		t.Errorf("Expected connect region visible and disconnected, got %+v", snap)
	}
	if fg.count(gateway.CmdBalance) != 0 {
		t.Error("Balance must not be read while disconnected")
	}
}

func TestRefreshStatusFailureFailsClosed(t *testing.T) {
	fg := &fakeGateway{connected: true, connectedErr: errors.New("backend down")}
	c := New(fg)

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Status failure should not surface, got %v", err)
	}
	if !c.Snapshot().ConnectVisible {
		t.Error("Connect region should stay visible")
	}
}

func TestRefreshConnected(t *testing.T) {
	fg := &fakeGateway{connected: true, gas: gateway.SingleGas("3")}
	c := New(fg)

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	snap := c.Snapshot()
	if snap.ConnectVisible || !snap.Connected || !snap.BalanceVisible {
		t.Errorf("Unexpected snapshot %+v", snap)
	}
}

func TestRefreshBalanceFailureKeepsConnectVisible(t *testing.T) {
	fg := &fakeGateway{connected: true, ledgerErr: errors.New("ledger unavailable")}
	c := New(fg)

	if err := c.Refresh(context.Background()); err == nil {
		t.Fatal("Expected balance error")
	}
	if !c.Snapshot().ConnectVisible {
		t.Error("Connect region is hidden only after balances render")
	}
}

func TestConnectWithoutKeyInputIsNoop(t *testing.T) {
	fg := &fakeGateway{}
	c := New(fg)

	if err := c.Connect(context.Background(), gateway.NetworkMain, Fields{}); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if len(fg.calls) != 0 {
		t.Errorf("Expected no backend calls, got %v", fg.calls)
	}
}

func TestConnectGeneratesKeyOnce(t *testing.T) {
	fg := &fakeGateway{connectKey: "deadbeef", gas: gateway.SingleGas("0")}
	c := New(fg)

	err := c.Connect(context.Background(), gateway.NetworkLocal, Fields{FieldSecretKey: ""})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if fg.connectArgs[0].EvmPk != nil {
		t.Error("Empty key input must be sent as null")
	}
	if fg.connectArgs[0].Network != gateway.NetworkLocal {
		t.Errorf("Network not forwarded: %s", fg.connectArgs[0].Network)
	}

	key, ok := c.TakeGeneratedKey()
	if !ok || key != "deadbeef" {
		t.Errorf("TakeGeneratedKey = %q, %v", key, ok)
	}
	if _, ok := c.TakeGeneratedKey(); ok {
		t.Error("Generated key must be handed out only once")
	}

	snap := c.Snapshot()
	if !snap.Connected || snap.ConnectVisible || snap.Network != gateway.NetworkLocal {
		t.Errorf("Unexpected snapshot %+v", snap)
	}
}

func TestConnectSuppliedKeyNotRevealed(t *testing.T) {
	fg := &fakeGateway{gas: gateway.SingleGas("0")}
	c := New(fg)

	_ = c.Connect(context.Background(), gateway.NetworkMain, Fields{FieldSecretKey: "0xabc"})
	if fg.connectArgs[0].EvmPk == nil || *fg.connectArgs[0].EvmPk != "0xabc" {
		t.Error("Supplied key must be forwarded verbatim")
	}
	if _, ok := c.TakeGeneratedKey(); ok {
		t.Error("A supplied key is not a generated key")
	}
}

func TestConnectRejectionShownAndRefreshed(t *testing.T) {
	fg := &fakeGateway{connectErr: errors.New("Already connected."), connected: true, gas: gateway.SingleGas("1")}
	c := New(fg)

	if err := c.Connect(context.Background(), gateway.NetworkAlpha, Fields{FieldSecretKey: ""}); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	v, ok := c.Status.Visible(SlotConnect)
	if !ok || v.Role != RoleError || v.Text != "Already connected." {
		t.Errorf("Expected rejection in connect slot, got %+v", v)
	}
	if fg.count(gateway.CmdIsConnected) != 1 {
		t.Error("Refresh must run after a rejected connect")
	}
	if c.Snapshot().ConnectVisible {
		t.Error("Backend reports a session, connect region should hide")
	}
}
