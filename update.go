package main

import (
	"fmt"
	"time"

	"act-wallet-tui/config"
	"act-wallet-tui/controller"
	"act-wallet-tui/gateway"
	"act-wallet-tui/helpers"
	"act-wallet-tui/views/connect"
	"act-wallet-tui/views/flows"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- UPDATE --------------------

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		// Logger already writes into our buffer; unmute it and apply styling
		m.logger.SetLevel(log.DebugLevel)
		m.logger.SetStyles(&log.Styles{
			Timestamp: lipgloss.NewStyle().Foreground(cMuted),
			Caller:    lipgloss.NewStyle().Faint(true),
			Prefix:    lipgloss.NewStyle().Bold(true).Foreground(cAccent2),
			Message:   lipgloss.NewStyle().Foreground(cText),
			Key:       lipgloss.NewStyle().Foreground(cAccent),
			Value:     lipgloss.NewStyle().Foreground(cText),
			Separator: lipgloss.NewStyle().Faint(true),
			Levels: map[log.Level]lipgloss.Style{
				log.DebugLevel: lipgloss.NewStyle().Foreground(cMuted).SetString("DEBUG"),
				log.InfoLevel:  lipgloss.NewStyle().Foreground(cAccent2).SetString("INFO"),
				log.WarnLevel:  lipgloss.NewStyle().Foreground(cWarn).SetString("WARN"),
				log.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).SetString("ERROR"),
			},
		})
		m.logReady = true
		m.addLog("info", "Logger enabled")
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height

		// Only initialize viewport if log is enabled
		if m.logEnabled {
			// Width accounts for border and padding
			m.logViewport.Width = helpers.Max(0, msg.Width-6)
			if m.logReady {
				m.updateLogViewport()
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		// Update log spinner too if log is enabled but not ready
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case refreshedMsg:
		m.refreshing = false
		m.reportFailure("Refresh failed", msg.err)
		m.syncPage()
		m.focusActive()
		if snap := m.ctrl.Snapshot(); snap.Connected {
			m.addLog("success", "Session active")
		} else {
			m.addLog("debug", "No active session")
		}
		m.updateLogViewport()
		return m, nil

	case connectedMsg:
		m.connecting = false
		m.reportFailure("Refresh after connect failed", msg.err)
		if key, ok := m.ctrl.TakeGeneratedKey(); ok {
			m.showKeyDialog = true
			m.revealedKey = key
			m.addLog("warning", "Backend generated a new secret key")
		}
		m.syncPage()
		m.focusActive()
		m.updateLogViewport()
		return m, nil

	case flowDoneMsg:
		m.pending[msg.flow] = false
		m.reportFailure("Balance refresh failed", msg.err)
		m.updateLogViewport()
		return m, nil

	case clipboardCopiedMsg:
		if msg.err != nil {
			m.addLog("error", fmt.Sprintf("Clipboard copy failed: %s", msg.err))
			return m, m.setFeedback("Clipboard unavailable")
		}
		m.addLog("debug", fmt.Sprintf("Copied %s", msg.label))
		return m, m.setFeedback("Copied " + msg.label)

	case qrExportedMsg:
		if msg.err != nil {
			m.addLog("error", fmt.Sprintf("QR export failed: %s", msg.err))
			return m, m.setFeedback("QR export failed")
		}
		m.addLog("success", fmt.Sprintf("QR saved to `%s`", msg.path))
		return m, m.setFeedback("Saved " + msg.path)

	case clearFeedbackMsg:
		if time.Since(m.feedbackTime) >= 2*time.Second {
			m.feedback = ""
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// huh needs its own internal messages
	if m.activePage == config.PageConnect && m.connectForm != nil {
		return m.updateConnectForm(msg)
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.MouseLeft || m.showKeyDialog || m.showSelector {
		return m, nil
	}
	for _, area := range m.clickableAreas {
		if !area.Contains(msg.X, msg.Y) {
			continue
		}
		if m.ctrl.Nav.Click(area.Target) {
			m.focusActive()
			m.addLog("debug", fmt.Sprintf("Menu click on `%s` at (%d,%d)", area.Target, msg.X, msg.Y))
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Generated key dialog blocks everything until dismissed
	if m.showKeyDialog {
		switch msg.String() {
		case "c", "ctrl+y":
			return m, copyToClipboard("secret key", m.revealedKey)
		case "enter", "esc":
			m.showKeyDialog = false
			m.revealedKey = ""
		}
		return m, nil
	}

	if m.showSelector {
		return m.handleSelectorKey(msg)
	}

	// global keys
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "ctrl+l":
		return m, m.toggleLogger()

	case "ctrl+r":
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.addLog("info", "Refreshing session")
		return m, refreshCmd(m.ctx, m.ctrl)

	case "pgup", "pgdown":
		// Allow scrolling in log viewport when enabled
		if m.logEnabled && m.logReady {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return m, cmd
		}
	}

	// page-specific behavior
	switch m.activePage {

	case config.PageConnect:
		return m.updateConnectForm(msg)

	case config.PageFlows:
		return m.handleFlowKey(msg)
	}
	return m, nil
}

func (m *model) handleFlowKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	flow := m.activeFlow()

	switch msg.String() {
	case "tab", "down":
		m.moveFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil

	case "enter":
		return m, m.submitFlow()

	case "ctrl+n", "ctrl+p":
		delta := 1
		if msg.String() == "ctrl+p" {
			delta = -1
		}
		next := m.ctrl.Nav.Step(delta)
		m.focusActive()
		m.addLog("debug", fmt.Sprintf("Switched to `%s`", next))
		return m, nil

	case "ctrl+t":
		m.openSelector(flow)
		return m, nil

	case "ctrl+y":
		if result, ok := m.ctrl.LastResult(flow); ok {
			return m, copyToClipboard(helpers.ShortenKey(result), result)
		}
		return m, nil

	case "ctrl+s":
		if result, ok := m.ctrl.LastResult(flow); ok && flows.Shareable(flow) {
			return m, exportQR(flow, result)
		}
		return m, nil
	}

	// Forward everything else to the focused input
	fields := m.inputs[flow]
	idx := m.focused[flow]
	if idx < 0 || idx >= len(fields) {
		return m, nil
	}
	var cmd tea.Cmd
	fields[idx].input, cmd = fields[idx].input.Update(msg)
	return m, cmd
}

func (m *model) updateConnectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.connectForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.connectForm = f
	}

	if m.connectForm.State != huh.StateCompleted {
		return m, cmd
	}

	network, err := gateway.ParseNetwork(connect.TempNetwork)
	if err != nil {
		network = gateway.NetworkMain
	}
	in := controller.Fields{controller.FieldSecretKey: connect.TempSecretKey}

	// Fresh form so the key does not linger in the completed one
	m.connectForm = connect.CreateForm(network)

	if m.connecting {
		return m, cmd
	}
	m.connecting = true
	m.addLog("info", fmt.Sprintf("Connecting to `%s` on %s", m.client.URL, network))
	return m, tea.Batch(cmd, connectCmd(m.ctx, m.ctrl, network, in))
}

// openSelector shows the token popup for flows that have one
func (m *model) openSelector(flow string) {
	sel, ok := m.ctrl.Selector(flow)
	if !ok {
		return
	}
	field := controller.SelectorFields()[flow]
	current := m.fieldValues(flow)[field]

	m.selectorIdx = 0
	for i, opt := range sel.Options() {
		if opt.Value != "" && opt.Value == current {
			m.selectorIdx = i
			break
		}
	}
	m.selectorFlow = flow
	m.showSelector = true
}

func (m *model) handleSelectorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel, ok := m.ctrl.Selector(m.selectorFlow)
	if !ok {
		m.showSelector = false
		return m, nil
	}
	n := len(sel.Options())

	switch msg.String() {
	case "up", "k":
		if m.selectorIdx > 0 {
			m.selectorIdx--
		}
	case "down", "j":
		if m.selectorIdx < n-1 {
			m.selectorIdx++
		}
	case "enter":
		if value, ok := sel.Choose(m.selectorIdx); ok {
			m.setField(m.selectorFlow, controller.SelectorFields()[m.selectorFlow], value)
			m.addLog("debug", fmt.Sprintf("Token `%s` chosen for %s", helpers.ShortenID(value, 6), m.selectorFlow))
		}
		m.showSelector = false
	case "esc":
		m.showSelector = false
	}
	return m, nil
}

// toggleLogger shows or hides the log panel and persists the choice
func (m *model) toggleLogger() tea.Cmd {
	m.logEnabled = !m.logEnabled

	fileCfg := config.LoadOrCreate(m.configPath)
	fileCfg.Logger = m.logEnabled
	if err := config.Save(m.configPath, fileCfg); err != nil {
		m.ctrl.Status.SetError(controller.SlotApp, fmt.Sprintf("Saving config failed: %s", err))
	}

	if m.logEnabled {
		// Initialize viewport when enabling
		if m.w > 0 {
			m.logViewport.Width = m.w - 6
		}
		m.logReady = false
		return tea.Batch(initLogViewport(), m.logSpinner.Tick)
	}

	// Clear logs and mute when disabling
	m.logger.SetLevel(mutedLevel)
	m.logBuffer.Reset()
	m.logReady = false
	return nil
}
