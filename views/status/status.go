package status

import (
	"strings"

	"act-wallet-tui/controller"
	"act-wallet-tui/styles"
)

// Render draws the visible children of a status slot, errors in the warning
// style and messages in the accent style. Hidden children are skipped.
func Render(children []controller.Child) string {
	var lines []string
	for _, c := range children {
		if !c.Visible {
			continue
		}
		switch c.Role {
		case controller.RoleError:
			lines = append(lines, styles.ErrorStyle.Render("⚠ "+c.Text))
		default:
			lines = append(lines, styles.MessageStyle.Render("✓ "+c.Text))
		}
	}
	return strings.Join(lines, "\n")
}
