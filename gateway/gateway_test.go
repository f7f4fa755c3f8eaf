package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// fakeBackend is a JSON-RPC 2.0 endpoint answering from canned results
type fakeBackend struct {
	mu       sync.Mutex
	results  map[string]string
	rejects  map[string]string
	requests []rpcRequest
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	result, ok := f.results[req.Method]
	reject, rejected := f.rejects[req.Method]
	f.mu.Unlock()

	resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
	switch {
	case rejected:
		resp["error"] = map[string]interface{}{"code": -32000, "message": reject}
	case ok:
		resp["result"] = json.RawMessage(result)
	default:
		resp["error"] = map[string]interface{}{"code": -32601, "message": "the method " + req.Method + " does not exist/is not available"}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (f *fakeBackend) last() rpcRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func newTestClient(t *testing.T, fb *fakeBackend) *Client {
	t.Helper()
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)

	c, err := Dial(srv.URL)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestClientCommands(t *testing.T) {
	fb := &fakeBackend{results: map[string]string{
		"is_connected": `true`,
		"connect":      `"ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"`,
		"balance":      `["12.5","0.004"]`,
		"act_balances": `{"ff00aa11":["EACT","10.0"],"0011bb22":["ZED","3.5"]}`,
		"create_token": `"6150aa3c2c43e458"`,
		"request":      `"a1b2c3"`,
		"pay":          `"d4e5f6"`,
		"receive":      `null`,
	}}
	c := newTestClient(t, fb)
	ctx := context.Background()

	t.Run("is_connected", func(t *testing.T) {
		ok, err := c.IsConnected(ctx)
		if err != nil {
			t.Fatalf("IsConnected: %v", err)
		}
		if !ok {
			t.Error("Expected connected")
		}
		if len(fb.last().Params) != 0 {
			t.Errorf("Expected no params, got %d", len(fb.last().Params))
		}
	})

	t.Run("connect without key sends null", func(t *testing.T) {
		key, err := c.Connect(ctx, ConnectArgs{Network: NetworkLocal})
		if err != nil {
			t.Fatalf("Connect: %v", err)
		}
		if key == "" {
			t.Error("Expected generated key")
		}
		req := fb.last()
		if len(req.Params) != 1 {
			t.Fatalf("Expected one argument record, got %d", len(req.Params))
		}
		want := `{"network":"Local","evmPk":null}`
		if string(req.Params[0]) != want {
			t.Errorf("Expected params %s, got %s", want, req.Params[0])
		}
	})

	t.Run("balance pair", func(t *testing.T) {
		gas, err := c.Balance(ctx)
		if err != nil {
			t.Fatalf("Balance: %v", err)
		}
		if gas.Kind != GasPair || gas.Coarse != "12.5" || gas.Fine != "0.004" {
			t.Errorf("Unexpected gas balance %+v", gas)
		}
	})

	t.Run("ledger keeps order", func(t *testing.T) {
		ledger, err := c.ActBalances(ctx)
		if err != nil {
			t.Fatalf("ActBalances: %v", err)
		}
		if len(ledger) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(ledger))
		}
		if ledger[0].TokenID != "ff00aa11" || ledger[1].TokenID != "0011bb22" {
			t.Errorf("Order not preserved: %+v", ledger)
		}
	})

	t.Run("create_token", func(t *testing.T) {
		id, err := c.CreateToken(ctx, CreateTokenArgs{Name: "Example", Symbol: "EACT", Decimals: ParseDecimals("18"), TotalSupply: "1000"})
		if err != nil {
			t.Fatalf("CreateToken: %v", err)
		}
		if id != "6150aa3c2c43e458" {
			t.Errorf("Unexpected id %s", id)
		}
		want := `{"name":"Example","symbol":"EACT","decimals":18,"totalSupply":"1000"}`
		if got := string(fb.last().Params[0]); got != want {
			t.Errorf("Expected params %s, got %s", want, got)
		}
	})

	t.Run("request pay receive", func(t *testing.T) {
		pk, err := c.Request(ctx, RequestArgs{TokenID: "ff00aa11"})
		if err != nil || pk != "a1b2c3" {
			t.Fatalf("Request: %q %v", pk, err)
		}
		addr, err := c.Pay(ctx, PayArgs{TokenID: "ff00aa11", Amount: "1.5", To: pk})
		if err != nil || addr != "d4e5f6" {
			t.Fatalf("Pay: %q %v", addr, err)
		}
		want := `{"tokenId":"ff00aa11","amount":"1.5","to":"a1b2c3"}`
		if got := string(fb.last().Params[0]); got != want {
			t.Errorf("Expected params %s, got %s", want, got)
		}
		if err := c.Receive(ctx, ReceiveArgs{SpendAddress: addr}); err != nil {
			t.Fatalf("Receive: %v", err)
		}
		if got := string(fb.last().Params[0]); got != `{"spendAddress":"d4e5f6"}` {
			t.Errorf("Unexpected receive params %s", got)
		}
	})
}

func TestClientRejection(t *testing.T) {
	fb := &fakeBackend{rejects: map[string]string{"pay": "Payment has not been requested"}}
	c := newTestClient(t, fb)

	_, err := c.Pay(context.Background(), PayArgs{TokenID: "x"})
	if err == nil {
		t.Fatal("Expected rejection")
	}
	if err.Error() != "Payment has not been requested" {
		t.Errorf("Expected backend text verbatim, got %q", err.Error())
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Expected *CommandError, got %T", err)
	}
	if cmdErr.Command != CmdPay {
		t.Errorf("Expected command %s, got %s", CmdPay, cmdErr.Command)
	}
	if cmdErr.Code != -32000 {
		t.Errorf("Expected code -32000, got %d", cmdErr.Code)
	}
}

func TestDialInvalidURL(t *testing.T) {
	if _, err := Dial("not-a-valid-scheme://backend"); err == nil {
		t.Error("Expected dial error for unsupported scheme")
	}
}
