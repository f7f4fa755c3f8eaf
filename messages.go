package main

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// refreshedMsg carries the outcome of a connection refresh
type refreshedMsg struct {
	err error
}

// connectedMsg carries the outcome of a connect attempt. Rejections are already
// in the connect slot; err is the trailing refresh failure.
type connectedMsg struct {
	err error
}

// flowDoneMsg carries the outcome of a flow command; err is the trailing
// balance failure, the command's own rejection lives in the flow's slot
type flowDoneMsg struct {
	flow string
	err  error
}

// clipboardCopiedMsg indicates clipboard copy completed
type clipboardCopiedMsg struct {
	label string
	err   error
}

// qrExportedMsg indicates a QR PNG was written
type qrExportedMsg struct {
	path string
	err  error
}

// clearFeedbackMsg hides transient copy and export feedback
type clearFeedbackMsg struct{}
