package main

import (
	"context"
	"fmt"
	"time"

	"act-wallet-tui/config"
	"act-wallet-tui/controller"
	"act-wallet-tui/gateway"
	"act-wallet-tui/helpers"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// mutedLevel silences the shared logger while the panel is hidden
const mutedLevel = log.FatalLevel

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// refreshCmd re-evaluates the backend session
func refreshCmd(ctx context.Context, ctrl *controller.Controller) tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{err: ctrl.Refresh(ctx)}
	}
}

// connectCmd opens a session with the submitted form values
func connectCmd(ctx context.Context, ctrl *controller.Controller, network gateway.Network, in controller.Inputs) tea.Cmd {
	return func() tea.Msg {
		return connectedMsg{err: ctrl.Connect(ctx, network, in)}
	}
}

// flowCmd runs one flow command with a snapshot of its inputs
func flowCmd(ctx context.Context, ctrl *controller.Controller, flow string, in controller.Inputs) tea.Cmd {
	var run func(context.Context, controller.Inputs) error
	switch flow {
	case controller.SlotCreateToken:
		run = ctrl.CreateToken
	case controller.SlotRequest:
		run = ctrl.Request
	case controller.SlotPay:
		run = ctrl.Pay
	case controller.SlotReceive:
		run = ctrl.Receive
	default:
		return nil
	}
	return func() tea.Msg {
		return flowDoneMsg{flow: flow, err: run(ctx, in)}
	}
}

// copyToClipboard copies text to clipboard
func copyToClipboard(label, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardCopiedMsg{label: label, err: clipboard.WriteAll(text)}
	}
}

// exportQR writes text as a QR PNG into the working directory
func exportQR(flow, text string) tea.Cmd {
	return func() tea.Msg {
		path := fmt.Sprintf("act-%s-%s.png", flow, time.Now().Format("20060102-150405"))
		return qrExportedMsg{path: path, err: helpers.WriteQRPNG(path, text)}
	}
}

// clearFeedback waits 2 seconds then sends a message to clear clipboard feedback
func clearFeedback() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return clearFeedbackMsg{}
	})
}

// -------------------- MODEL HELPER METHODS --------------------
// These methods help with state management and command generation

// addLog adds a log entry with timestamp and type
func (m *model) addLog(logType, message string) {
	if !m.logEnabled || !m.logReady || m.logger == nil {
		return
	}

	// Use the logger to write messages
	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	// Update viewport content
	m.updateLogViewport()
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}

	// Get content from log buffer
	content := m.logBuffer.String()
	m.logViewport.SetContent(content)
	// Scroll to bottom to show latest entries
	m.logViewport.GotoBottom()
}

// reportFailure surfaces an error no flow caught
func (m *model) reportFailure(what string, err error) {
	if err == nil {
		m.ctrl.Status.Clear(controller.SlotApp)
		return
	}
	m.ctrl.Status.SetError(controller.SlotApp, err.Error())
	m.addLog("error", fmt.Sprintf("%s: %s", what, err))
}

// activeFlow returns the visible flow panel
func (m *model) activeFlow() string {
	return m.ctrl.Nav.Active()
}

// fieldValues snapshots a flow's inputs for the controller
func (m *model) fieldValues(flow string) controller.Fields {
	fields := controller.Fields{}
	for _, f := range m.inputs[flow] {
		fields[f.id] = f.input.Value()
	}
	return fields
}

// setField writes value into the input bound to field id
func (m *model) setField(flow, id, value string) {
	for i, f := range m.inputs[flow] {
		if f.id == id {
			m.inputs[flow][i].input.SetValue(value)
			return
		}
	}
}

// focusActive focuses the current input of the active flow and blurs the rest
func (m *model) focusActive() {
	active := m.activeFlow()
	for flow, fields := range m.inputs {
		for i := range fields {
			if flow == active && i == m.focused[flow] {
				fields[i].input.Focus()
			} else {
				fields[i].input.Blur()
			}
		}
	}
}

// moveFocus cycles the focused input of the active flow
func (m *model) moveFocus(delta int) {
	flow := m.activeFlow()
	n := len(m.inputs[flow])
	if n == 0 {
		return
	}
	m.focused[flow] = ((m.focused[flow]+delta)%n + n) % n
	m.focusActive()
}

// submitFlow starts the active flow's command unless one is already running
func (m *model) submitFlow() tea.Cmd {
	flow := m.activeFlow()
	if m.pending[flow] {
		return nil
	}
	cmd := flowCmd(m.ctx, m.ctrl, flow, m.fieldValues(flow))
	if cmd == nil {
		return nil
	}
	m.pending[flow] = true
	m.addLog("info", fmt.Sprintf("Submitting `%s`", flow))
	return cmd
}

// syncPage follows the connect region: visible means the connect page
func (m *model) syncPage() {
	if m.ctrl.Snapshot().ConnectVisible {
		m.activePage = config.PageConnect
		return
	}
	m.activePage = config.PageFlows
}

// setFeedback shows a transient hint under the flow panel
func (m *model) setFeedback(msg string) tea.Cmd {
	m.feedback = msg
	m.feedbackTime = time.Now()
	return clearFeedback()
}
