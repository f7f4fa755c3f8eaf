package connect

import (
	"strings"

	"act-wallet-tui/controller"
	"act-wallet-tui/gateway"
	"act-wallet-tui/styles"
	"act-wallet-tui/views/status"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Temporary form storage (package-level to avoid pointer-to-copy issues)
var (
	TempNetwork   string
	TempSecretKey string
)

// CreateForm creates the connect form with network preselected
func CreateForm(network gateway.Network) *huh.Form {
	TempNetwork = string(network)
	TempSecretKey = ""

	var opts []huh.Option[string]
	for _, n := range gateway.Networks() {
		opts = append(opts, huh.NewOption(string(n), string(n)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(opts...).
				Title("Network").
				Description("Backend network to open the session on").
				Value(&TempNetwork),

			huh.NewInput().
				Title("Secret Key").
				Description("EVM private key. Leave empty to generate one (Ctrl+v to paste)").
				EchoMode(huh.EchoModePassword).
				Placeholder("0x…").
				Value(&TempSecretKey),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// Render renders the connect view
func Render(form *huh.Form, children []controller.Child, connecting bool, spinnerView string) string {
	h := styles.TitleStyle.Render("Connect")
	sub := lipgloss.NewStyle().Foreground(styles.CMuted).Render("Open a wallet session on the backend")

	body := "Loading form..."
	if form != nil {
		body = form.View()
	}

	lines := []string{h, sub, "", body}
	if connecting {
		lines = append(lines, "", spinnerView+" connecting…")
	}
	if s := status.Render(children); s != "" {
		lines = append(lines, "", s)
	}
	return strings.Join(lines, "\n")
}

// Nav returns the navigation bar for connect view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("↑/↓") + " select",
		styles.Key("Tab") + " next",
		styles.Key("Enter") + " connect",
		styles.Key("Ctrl+r") + " refresh",
		styles.Key("Ctrl+l") + " logger",
		styles.Key("Esc") + " quit",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
