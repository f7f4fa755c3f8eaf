package menu

import (
	"strings"

	"act-wallet-tui/config"
	"act-wallet-tui/controller"
	"act-wallet-tui/helpers"
	"act-wallet-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Title returns the menu label of a flow panel
func Title(panel string) string {
	switch panel {
	case controller.SlotCreateToken:
		return "Create Token"
	case controller.SlotRequest:
		return "Request"
	case controller.SlotPay:
		return "Pay"
	case controller.SlotReceive:
		return "Receive"
	}
	return panel
}

// Render renders the flow menu with the active entry marked. Clickable areas
// are relative to the first line of the returned block.
func Render(panels []string, active string) (string, []config.ClickableArea) {
	var items []string
	var areas []config.ClickableArea

	header := styles.TitleStyle.Render("Menu")
	items = append(items, header, "")
	y := 2

	for _, p := range panels {
		label := Title(p)
		var line string
		if p == active {
			marker := lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("▶ ")
			line = marker + helpers.FadeString(label, styles.FadeKeyFrom, styles.FadeKeyTo)
		} else {
			line = "  " + lipgloss.NewStyle().Foreground(styles.CText).Render(label)
		}
		items = append(items, line)

		areas = append(areas, config.ClickableArea{
			X:      0,
			Y:      y,
			Width:  lipgloss.Width(label) + 2,
			Height: 1,
			Target: p,
		})
		y++
	}

	return strings.Join(items, "\n"), areas
}
