package log

import (
	"fmt"

	"act-wallet-tui/helpers"
	"act-wallet-tui/styles"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// PanelHeight is the viewport height for a terminal of the given height:
// a third of the screen, capped at 15 lines.
func PanelHeight(height int) int {
	// header (3), nav (1), title and borders (4), margins (2)
	reservedHeight := 10
	availableHeight := helpers.Max(5, height-reservedHeight)
	return helpers.Min(availableHeight, helpers.Min(height/3, 15))
}

// Panel is the state the activity panel is drawn from
type Panel struct {
	Backend string
	Ready   bool
	Spinner string
	Empty   bool
}

// Render renders the backend activity panel with dynamic height calculation
func Render(width, height int, p Panel, vp viewport.Model) string {
	title := lipgloss.NewStyle().
		Foreground(styles.CAccent2).
		Bold(true).
		Render("Activity")
	if p.Backend != "" {
		title += lipgloss.NewStyle().Foreground(styles.CMuted).Render(" · " + p.Backend)
	}

	logPanelHeight := PanelHeight(height)
	vp.Height = logPanelHeight

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(0, 1).
		Width(helpers.Max(0, width-2)).
		Height(logPanelHeight + 2) // +2 for title and spacing

	if !p.Ready {
		return border.Render(title + "\n\n" + "starting logger...\n" + p.Spinner)
	}

	if p.Empty {
		hint := styles.MutedStyle.Render("No backend activity yet. Submit a flow or press ") +
			styles.Key("Ctrl+r") + styles.MutedStyle.Render(" to refresh the session.")
		return border.Render(title + "\n\n" + hint)
	}

	// Scroll position once entries overflow the viewport
	if vp.TotalLineCount() > vp.Height {
		title += lipgloss.NewStyle().
			Foreground(styles.CMuted).
			Render(fmt.Sprintf(" [%d%%]", int(vp.ScrollPercent()*100)))
	}

	return border.Render(title + "\n\n" + vp.View())
}
