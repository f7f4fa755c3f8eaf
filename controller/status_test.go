package controller

import "testing"

func TestRegistrySetMessageIdempotent(t *testing.T) {
	r := NewRegistry()
	r.SetMessage("pay", "x")
	r.SetMessage("pay", "x")

	children := r.Children("pay")
	if len(children) != 1 {
		t.Fatalf("Expected 1 child, got %d", len(children))
	}
	if children[0].Role != RoleMessage || children[0].Text != "x" || !children[0].Visible {
		t.Errorf("Unexpected child %+v", children[0])
	}
}

func TestRegistryMutualExclusion(t *testing.T) {
	r := NewRegistry()
	r.SetMessage("pay", "m")
	r.SetError("pay", "e")

	visible, ok := r.Visible("pay")
	if !ok {
		t.Fatal("Expected a visible child")
	}
	if visible.Role != RoleError || visible.Text != "e" {
		t.Errorf("Expected visible error 'e', got %+v", visible)
	}

	for _, c := range r.Children("pay") {
		if c.Role == RoleMessage && c.Visible {
			t.Error("Message should be hidden after an error is shown")
		}
	}

	r.SetMessage("pay", "m2")
	visible, _ = r.Visible("pay")
	if visible.Role != RoleMessage || visible.Text != "m2" {
		t.Errorf("Expected message 'm2' to win, got %+v", visible)
	}
}

func TestRegistryEmptyTextHides(t *testing.T) {
	r := NewRegistry()
	r.SetError("receive", "boom")
	r.SetMessage("receive", "")

	visible, ok := r.Visible("receive")
	if !ok || visible.Role != RoleError {
		t.Errorf("Empty message must not hide the error, got %+v (ok=%v)", visible, ok)
	}

	r.SetError("receive", "")
	if _, ok := r.Visible("receive"); ok {
		t.Error("Expected nothing visible after clearing the error")
	}
	if n := len(r.Children("receive")); n != 2 {
		t.Errorf("Expected both children kept for reuse, got %d", n)
	}
}

func TestRegistryOverwrite(t *testing.T) {
	r := NewRegistry()
	r.SetMessage("create-token", "first")
	r.SetMessage("create-token", "second")

	visible, _ := r.Visible("create-token")
	if visible.Text != "second" {
		t.Errorf("Expected overwrite, got %q", visible.Text)
	}
}

func TestRegistrySlotsIndependent(t *testing.T) {
	r := NewRegistry()
	r.SetMessage("request", "ok")
	r.SetError("pay", "bad")

	if v, _ := r.Visible("request"); v.Role != RoleMessage {
		t.Errorf("Slot request changed by pay: %+v", v)
	}
	if r.Children("unknown") != nil {
		t.Error("Unused slot should have no children")
	}

	r.Clear("pay")
	if _, ok := r.Visible("pay"); ok {
		t.Error("Expected Clear to hide everything")
	}
}
