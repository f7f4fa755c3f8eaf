package main

import (
	"context"
	"strings"
	"sync"
	"time"

	"act-wallet-tui/config"
	"act-wallet-tui/controller"
	"act-wallet-tui/gateway"
	"act-wallet-tui/styles"
	"act-wallet-tui/views/connect"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- MODEL --------------------

// fieldSpec describes one text input of a flow panel
type fieldSpec struct {
	id          string
	prompt      string
	placeholder string
	charLimit   int
}

// flowFields lists each flow panel's inputs in focus order
var flowFields = map[string][]fieldSpec{
	controller.SlotCreateToken: {
		{id: controller.FieldTokenName, prompt: "Name: ", placeholder: "Example Token", charLimit: 64},
		{id: controller.FieldTokenSymbol, prompt: "Symbol: ", placeholder: "EACT", charLimit: 16},
		{id: controller.FieldTokenSupply, prompt: "Total Supply: ", placeholder: "1000000", charLimit: 78},
		{id: controller.FieldTokenDecimals, prompt: "Decimals: ", placeholder: "18", charLimit: 3},
	},
	controller.SlotRequest: {
		{id: controller.FieldRequestTokenID, prompt: "Token ID: ", placeholder: "token id", charLimit: 128},
	},
	controller.SlotPay: {
		{id: controller.FieldPayTokenID, prompt: "Token ID: ", placeholder: "token id", charLimit: 128},
		{id: controller.FieldPayAmount, prompt: "Amount: ", placeholder: "0", charLimit: 78},
		{id: controller.FieldPayTo, prompt: "To: ", placeholder: "public key", charLimit: 256},
	},
	controller.SlotReceive: {
		{id: controller.FieldSpendAddress, prompt: "Spend Address: ", placeholder: "spend address", charLimit: 256},
	},
}

// fieldInput binds a text input to its field id
type fieldInput struct {
	id    string
	input textinput.Model
}

// logSink is the log buffer shared by the UI and controller goroutines
type logSink struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (s *logSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *logSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func (s *logSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Reset()
}

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	activePage config.Page

	cfg        config.Config
	configPath string

	// backend
	client *gateway.Client
	ctrl   *controller.Controller
	ctx    context.Context
	cancel context.CancelFunc

	// connect form
	connectForm *huh.Form
	connecting  bool
	refreshing  bool

	// flow panels
	inputs  map[string][]fieldInput
	focused map[string]int
	pending map[string]bool
	spin    spinner.Model

	// token selector popup
	showSelector bool
	selectorFlow string
	selectorIdx  int

	// one-time generated key dialog
	showKeyDialog bool
	revealedKey   string

	// clipboard and export feedback
	feedback     string
	feedbackTime time.Time

	// clickable areas for mouse support
	clickableAreas []config.ClickableArea

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *logSink
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model
}

// newFieldInput builds a styled text input
func newFieldInput(spec fieldSpec) textinput.Model {
	in := textinput.New()
	in.Placeholder = spec.placeholder
	in.Prompt = spec.prompt
	in.PromptStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
	in.TextStyle = lipgloss.NewStyle().Foreground(styles.CText)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)
	in.CharLimit = spec.charLimit
	in.Width = 48
	return in
}

// -------------------- INIT --------------------

// newModel wires the controller to the dialed backend and builds the UI state
func newModel(cfg config.Config, configPath string, client *gateway.Client) model {
	logBuffer := &logSink{}
	logger := log.NewWithOptions(logBuffer, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	logger.SetLevel(mutedLevel)

	startPanel := controller.SlotCreateToken
	for _, p := range controller.FlowPanels() {
		if p == cfg.StartPanel {
			startPanel = p
		}
	}

	ctrl := controller.New(client,
		controller.WithLogger(logger),
		controller.WithStartPanel(startPanel),
	)

	inputs := make(map[string][]fieldInput, len(flowFields))
	for flow, specs := range flowFields {
		for _, spec := range specs {
			inputs[flow] = append(inputs[flow], fieldInput{id: spec.id, input: newFieldInput(spec)})
		}
	}

	network, err := cfg.NetworkValue()
	if err != nil {
		network = gateway.NetworkMain
	}

	// spinner
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	// Initialize log viewport
	vp := viewport.New(0, 20) // Will be resized in Update on first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	// Initialize log spinner
	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	ctx, cancel := context.WithCancel(context.Background())

	m := model{
		activePage:  config.PageConnect,
		cfg:         cfg,
		configPath:  configPath,
		client:      client,
		ctrl:        ctrl,
		ctx:         ctx,
		cancel:      cancel,
		connectForm: connect.CreateForm(network),
		inputs:      inputs,
		focused:     map[string]int{},
		pending:     map[string]bool{},
		spin:        sp,
		logEnabled:  cfg.Logger,
		logger:      logger,
		logBuffer:   logBuffer,
		logViewport: vp,
		logSpinner:  logSpin,
	}
	m.focusActive()

	return m
}

// Init implements tea.Model interface and returns initial commands
func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	m.refreshing = true
	cmds = append(cmds, refreshCmd(m.ctx, m.ctrl))
	return tea.Batch(cmds...)
}
