package flows

import (
	"strings"

	"act-wallet-tui/controller"
	"act-wallet-tui/helpers"
	"act-wallet-tui/styles"
	"act-wallet-tui/views/menu"
	"act-wallet-tui/views/status"

	"github.com/charmbracelet/lipgloss"
)

// Panel is everything needed to draw one flow panel
type Panel struct {
	Flow        string
	Inputs      []string
	Status      []controller.Child
	Result      string
	HasSelector bool
	Busy        bool
	Spinner     string
}

func description(flow string) string {
	switch flow {
	case controller.SlotCreateToken:
		return "Mint a new token with a fixed supply"
	case controller.SlotRequest:
		return "Get a public key to be paid a token on"
	case controller.SlotPay:
		return "Spend tokens to a public key"
	case controller.SlotReceive:
		return "Redeem a spend address into your balance"
	}
	return ""
}

// Shareable reports whether a flow's result is meant to be handed to someone else
func Shareable(flow string) bool {
	return flow == controller.SlotRequest || flow == controller.SlotPay
}

// Render renders a flow panel
func Render(p Panel) string {
	h := styles.TitleStyle.Render(menu.Title(p.Flow))
	sub := lipgloss.NewStyle().Foreground(styles.CMuted).Render(description(p.Flow))

	lines := []string{h, sub, ""}
	lines = append(lines, p.Inputs...)

	if p.HasSelector {
		lines = append(lines, "", styles.MutedStyle.Render("Press ")+styles.Key("Ctrl+t")+styles.MutedStyle.Render(" to pick a token from your balance."))
	}

	if p.Busy {
		lines = append(lines, "", p.Spinner+" waiting for backend…")
	}

	if s := status.Render(p.Status); s != "" {
		lines = append(lines, "", s)
	}

	if p.Result != "" && Shareable(p.Flow) {
		lines = append(lines, "", helpers.GenerateQRCode(p.Result))
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CText).Render(p.Result))
	}

	return strings.Join(lines, "\n")
}

// Nav returns the navigation bar for the flow panels
func Nav(width int, hasSelector, hasResult bool) string {
	keys := []string{
		styles.Key("Tab") + " next field",
		styles.Key("Enter") + " submit",
		styles.Key("Ctrl+n/p") + " menu",
	}
	if hasSelector {
		keys = append(keys, styles.Key("Ctrl+t")+" tokens")
	}
	if hasResult {
		keys = append(keys,
			styles.Key("Ctrl+y")+" copy",
			styles.Key("Ctrl+s")+" save QR",
		)
	}
	keys = append(keys,
		styles.Key("Ctrl+r")+" refresh",
		styles.Key("Ctrl+l")+" logger",
		styles.Key("Esc")+" quit",
	)

	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}
