package status

import (
	"strings"
	"testing"

	"act-wallet-tui/controller"
)

func TestRender(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := Render(nil); got != "" {
			t.Errorf("Expected empty output, got %q", got)
		}
	})

	t.Run("hidden skipped", func(t *testing.T) {
		got := Render([]controller.Child{
			{Role: controller.RoleMessage, Text: "old news", Visible: false},
			{Role: controller.RoleError, Text: "Not connected.", Visible: true},
		})
		if strings.Contains(got, "old news") {
			t.Errorf("Hidden child rendered: %q", got)
		}
		if !strings.Contains(got, "Not connected.") {
			t.Errorf("Visible error missing: %q", got)
		}
	})
}
