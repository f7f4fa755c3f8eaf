package controller

import "testing"

func TestNavClick(t *testing.T) {
	n := NewNav(FlowPanels(), SlotCreateToken)

	if !n.Click(SlotPay) {
		t.Fatal("Click(pay) failed")
	}
	visible := n.Visible()
	if len(visible) != 1 || visible[0] != SlotPay {
		t.Errorf("Expected only pay visible, got %v", visible)
	}
	if n.Active() != SlotPay {
		t.Errorf("Expected pay active, got %s", n.Active())
	}
	if n.IsVisible(SlotCreateToken) {
		t.Error("Previous panel still visible")
	}
}

func TestNavUnknownTarget(t *testing.T) {
	n := NewNav(FlowPanels(), SlotRequest)
	if n.Click("settings") {
		t.Error("Expected unknown target to be rejected")
	}
	if n.Active() != SlotRequest || !n.IsVisible(SlotRequest) {
		t.Error("Unknown target must not change state")
	}
}

func TestNavStepWraps(t *testing.T) {
	n := NewNav(FlowPanels(), SlotReceive)
	if got := n.Step(1); got != SlotCreateToken {
		t.Errorf("Step(1) from receive = %s", got)
	}
	if got := n.Step(-1); got != SlotReceive {
		t.Errorf("Step(-1) from create-token = %s", got)
	}
	if len(n.Visible()) != 1 {
		t.Errorf("Expected a single visible panel, got %v", n.Visible())
	}
}

func TestNavInitialOutsidePanels(t *testing.T) {
	n := NewNav(FlowPanels(), "")
	if len(n.Visible()) != 0 || n.Active() != "" {
		t.Error("Expected no initial panel")
	}
}
