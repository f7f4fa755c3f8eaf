package selector

import (
	"strings"

	"act-wallet-tui/controller"
	"act-wallet-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Render renders a token selection popup centered on screen
func Render(width, height int, title string, options []controller.SelectorOption, selectedIdx int) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(styles.CAccent2).
		Bold(true).
		Align(lipgloss.Center).
		Width(50)

	var list []string
	for i, opt := range options {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(styles.CText)
		if opt.Value == "" {
			style = style.Foreground(styles.CMuted).Italic(true)
		}

		if i == selectedIdx {
			marker = "▸ "
			style = lipgloss.NewStyle().
				Foreground(styles.CAccent).
				Bold(true)
		}

		list = append(list, style.Render(marker+opt.Label))
	}

	hint := lipgloss.NewStyle().
		Foreground(styles.CMuted).
		Width(50).
		Align(lipgloss.Center).
		Render("↑/↓ navigate • Enter select • Esc close")

	boxStyle := lipgloss.NewStyle().
		Width(50).
		Padding(1, 3).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CAccent).
		Background(styles.CPanel)

	content := titleStyle.Render(title) + "\n\n" + strings.Join(list, "\n") + "\n\n" + hint

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		boxStyle.Render(content),
	)
}
