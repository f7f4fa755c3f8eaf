package main

import (
	"strings"
	"time"

	"act-wallet-tui/config"
	"act-wallet-tui/controller"
	"act-wallet-tui/helpers"
	"act-wallet-tui/styles"
	"act-wallet-tui/views/balance"
	"act-wallet-tui/views/connect"
	"act-wallet-tui/views/flows"
	logview "act-wallet-tui/views/log"
	"act-wallet-tui/views/menu"
	"act-wallet-tui/views/selector"
	"act-wallet-tui/views/status"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

func (m *model) renderKeyDialog() string {
	title := helpers.FadeString("New secret key generated", styles.FadeKeyFrom, styles.FadeKeyTo)
	warning := lipgloss.NewStyle().Width(60).Align(lipgloss.Center).Foreground(styles.CWarn).
		Render("Store it now. It will not be shown again.")
	key := lipgloss.NewStyle().Width(60).Align(lipgloss.Center).Foreground(styles.CText).Bold(true).
		Render(m.revealedKey)

	copyButton := styles.ActiveButtonStyle.MarginRight(2).Render("Copy (c)")
	closeButton := styles.ButtonStyle.Render("Done (Enter)")
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, copyButton, closeButton)

	parts := []string{title, "", warning, "", key, buttons}
	if m.feedback != "" {
		parts = append(parts, "", styles.MessageStyle.Render(m.feedback))
	}
	ui := lipgloss.JoinVertical(lipgloss.Center, parts...)

	return lipgloss.Place(
		m.w, m.h,
		lipgloss.Center, lipgloss.Center,
		styles.DialogBoxStyle.Render(ui),
	)
}

func (m *model) globalHeader(snap controller.Snapshot) string {
	availableWidth := helpers.Max(0, m.w-8) // Account for panel padding

	// Session status with dot
	var statusDisplay string
	switch {
	case m.connecting:
		statusDisplay = lipgloss.NewStyle().Foreground(styles.COffline).Bold(true).Render("○ Connecting...")
	case snap.Connected && snap.Network != "":
		statusDisplay = lipgloss.NewStyle().Foreground(cAccent).Bold(true).Render("● " + string(snap.Network))
	case snap.Connected:
		statusDisplay = lipgloss.NewStyle().Foreground(cAccent).Bold(true).Render("● Connected")
	default:
		statusDisplay = lipgloss.NewStyle().Foreground(styles.COffline).Bold(true).Render("○ Not connected")
	}

	backendDisplay := lipgloss.NewStyle().Foreground(cMuted).Render("Backend: " + m.client.URL)

	titleText := lipgloss.NewStyle().
		Foreground(cAccent).
		Bold(true).
		Render(helpers.FadeString("act wallet", styles.FadeTitleFrom, styles.FadeTitleTo))

	statusWidth := lipgloss.Width(statusDisplay)
	backendWidth := lipgloss.Width(backendDisplay)
	titleWidth := lipgloss.Width(titleText)
	totalOtherWidth := statusWidth + backendWidth + titleWidth

	var headerLine string
	if totalOtherWidth+4 > availableWidth {
		// Not enough space, stack vertically
		headerLine = statusDisplay + "\n" + titleText + "\n" + backendDisplay
	} else {
		// Three-column layout: Status | Title (centered) | Backend
		remainingSpace := availableWidth - totalOtherWidth
		leftPadding := remainingSpace / 2
		rightPadding := remainingSpace - leftPadding

		leftSpacer := strings.Repeat(" ", helpers.Max(1, leftPadding))
		rightSpacer := strings.Repeat(" ", helpers.Max(1, rightPadding))

		headerLine = statusDisplay + leftSpacer + titleText + rightSpacer + backendDisplay
	}

	separator := lipgloss.NewStyle().
		Foreground(cBorder).
		Render(strings.Repeat("─", availableWidth))

	return headerLine + "\n" + separator
}

// renderInputs draws the active flow's inputs
func (m *model) renderInputs(flow string) []string {
	var out []string
	for _, f := range m.inputs[flow] {
		out = append(out, f.input.View())
	}
	return out
}

func (m *model) View() string {
	// Clear clickable areas for fresh render
	m.clickableAreas = nil

	if m.showKeyDialog {
		return appStyle.Render(m.renderKeyDialog())
	}

	snap := m.ctrl.Snapshot()
	headerPanel := panelStyle.Width(helpers.Max(0, m.w-2)).Render(m.globalHeader(snap))
	sections := []string{headerPanel}
	offsetY := lipgloss.Height(headerPanel)

	if snap.BalanceVisible {
		loading := m.refreshing && snap.Balance.Gas == ""
		balancePanel := panelStyle.Width(helpers.Max(0, m.w-2)).Render(balance.Render(snap.Balance, loading, m.spin.View()))
		sections = append(sections, balancePanel)
		offsetY += lipgloss.Height(balancePanel)
	}

	var nav string

	switch m.activePage {
	case config.PageConnect:
		content := connect.Render(m.connectForm, m.ctrl.Status.Children(controller.SlotConnect), m.connecting, m.spin.View())
		sections = append(sections, panelStyle.Width(helpers.Max(0, m.w-2)).Render(content))
		nav = connect.Nav(m.w - 2)

	case config.PageFlows:
		flow := m.activeFlow()

		menuContent, areas := menu.Render(m.ctrl.Nav.Panels(), flow)
		// panel border (1) + padding (1 row, 2 cols)
		for _, area := range areas {
			area.X += 3
			area.Y += offsetY + 2
			m.clickableAreas = append(m.clickableAreas, area)
		}

		result, hasResult := m.ctrl.LastResult(flow)
		_, hasSelector := m.ctrl.Selector(flow)

		panelContent := flows.Render(flows.Panel{
			Flow:        flow,
			Inputs:      m.renderInputs(flow),
			Status:      m.ctrl.Status.Children(flow),
			Result:      result,
			HasSelector: hasSelector,
			Busy:        m.pending[flow],
			Spinner:     m.spin.View(),
		})
		if m.feedback != "" && time.Since(m.feedbackTime) < 2*time.Second {
			panelContent += "\n\n" + styles.MessageStyle.Render(m.feedback)
		}

		menuWidth := helpers.Max(0, (m.w*3)/10-2)
		flowWidth := helpers.Max(0, (m.w*7)/10-2)

		rightPanel := panelStyle.Width(flowWidth + 1).Render(panelContent)
		leftPanel := panelStyle.
			Width(menuWidth).
			Height(helpers.Max(0, lipgloss.Height(rightPanel)-2)).
			Render(menuContent)

		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel))
		nav = flows.Nav(m.w-2, hasSelector, hasResult && flows.Shareable(flow))
	}

	if appStatus := status.Render(m.ctrl.Status.Children(controller.SlotApp)); appStatus != "" {
		sections = append(sections, lipgloss.NewStyle().Padding(0, 2).Render(appStatus))
	}
	sections = append(sections, nav)

	if m.logEnabled {
		m.logViewport.Height = logview.PanelHeight(m.h)
		sections = append(sections, logview.Render(m.w, m.h, logview.Panel{
			Backend: m.client.URL,
			Ready:   m.logReady,
			Spinner: m.logSpinner.View(),
			Empty:   m.logBuffer.String() == "",
		}, m.logViewport))
	}

	baseView := appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	if m.showSelector {
		sel, ok := m.ctrl.Selector(m.selectorFlow)
		if ok {
			return appStyle.Render(selector.Render(m.w, m.h, "Select Token for "+menu.Title(m.selectorFlow), sel.Options(), m.selectorIdx))
		}
	}

	return baseView
}
