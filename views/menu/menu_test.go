package menu

import (
	"strings"
	"testing"

	"act-wallet-tui/controller"
)

func TestRender(t *testing.T) {
	panels := controller.FlowPanels()
	out, areas := Render(panels, controller.SlotPay)

	if len(areas) != len(panels) {
		t.Fatalf("Expected %d areas, got %d", len(panels), len(areas))
	}
	for i, a := range areas {
		if a.Target != panels[i] {
			t.Errorf("Area %d target = %q, want %q", i, a.Target, panels[i])
		}
		if i > 0 && a.Y != areas[i-1].Y+1 {
			t.Errorf("Area %d not on the next line", i)
		}
	}

	lines := strings.Split(out, "\n")
	payLine := lines[areas[2].Y]
	if !strings.Contains(payLine, "▶") {
		t.Errorf("Expected active marker on pay line, got %q", payLine)
	}
	if strings.Contains(lines[areas[0].Y], "▶") {
		t.Error("Inactive entry marked")
	}
}

func TestTitle(t *testing.T) {
	if got := Title(controller.SlotCreateToken); got != "Create Token" {
		t.Errorf("Title = %q", got)
	}
	if got := Title("unknown"); got != "unknown" {
		t.Errorf("Title passthrough = %q", got)
	}
}
