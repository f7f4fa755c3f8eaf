package balance

import (
	"fmt"
	"strings"

	"act-wallet-tui/controller"
	"act-wallet-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the balance region: a gas row followed by a tokens row
func Render(view controller.BalanceView, loading bool, spinnerView string) string {
	h := styles.TitleStyle.Render("Balance")

	if loading {
		return h + "\n\n" + spinnerView + " fetching balances…"
	}

	lines := []string{h, ""}
	for _, row := range view.Rows() {
		value := row.Value
		if value == "" {
			value = lipgloss.NewStyle().Foreground(styles.CMuted).Render(controller.NoTokens)
		}
		lines = append(lines, fmt.Sprintf("%s  %s",
			lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Width(7).Render(row.Label),
			lipgloss.NewStyle().Foreground(styles.CText).Render(value),
		))
	}
	return strings.Join(lines, "\n")
}
