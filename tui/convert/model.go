package convert

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/CrestNiraj12/threadreader/app"
	"github.com/CrestNiraj12/threadreader/domain"
	"github.com/CrestNiraj12/threadreader/tui/common"
)

// --- Alerts ---

// AlertKind selects how the alert region is styled.
type AlertKind string

const (
	AlertDanger AlertKind = "danger"
	AlertInfo   AlertKind = "info"
)

// Alert is the single notice line shared by errors and the cache notice.
type Alert struct {
	Message string
	Kind    AlertKind
}

// --- Messages ---

// ThreadProcessedMsg carries the outcome of one submission.
type ThreadProcessedMsg struct {
	Seq    int
	Result domain.ThreadResult
	Err    error
}

// CopiedMsg reports the outcome of a clipboard write.
type CopiedMsg struct {
	Err error
}

// CopyLabelResetMsg restores the copy label after a successful copy.
type CopyLabelResetMsg struct{}

// --- Model ---

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 14 // title, input, button row, alert, result header, help
	minViewport   = 3
)

// Model is the convert screen: a URL field, a submit action, an alert line
// and a result region with a copy action. Every handle it needs is a field.
type Model struct {
	processor app.ThreadProcessor
	clipboard app.Clipboard
	log       zerolog.Logger
	keys      common.KeyMap

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model

	loading        bool
	submitDisabled bool
	alertVisible   bool
	alert          Alert
	resultVisible  bool
	text           string // Raw server text, copied as-is
	copyLabel      string

	seq        int // Submissions issued, for log correlation
	width      int
	height     int
	resetDelay time.Duration
	schedule   func(d time.Duration, msg tea.Msg) tea.Cmd
}

// New creates the convert screen.
func New(processor app.ThreadProcessor, clipboard app.Clipboard, log zerolog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "https://x.com/user/status/1234567890"
	ti.Prompt = "🔗 "
	ti.CharLimit = 512
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		processor:  processor,
		clipboard:  clipboard,
		log:        log,
		keys:       common.DefaultKeyMap(),
		input:      ti,
		spinner:    sp,
		viewport:   viewport.New(defaultWidth, defaultHeight-chromeHeight),
		help:       help.New(),
		copyLabel:  LabelCopy,
		resetDelay: CopyResetDelay,
		schedule:   after,
	}
	m.setSize(defaultWidth, defaultHeight)
	return m
}

// after delivers msg once, d from now.
func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetValue replaces the URL field contents.
func (m *Model) SetValue(url string) {
	m.input.SetValue(url)
}

// Loading reports whether a submission is in flight.
func (m Model) Loading() bool { return m.loading }

// SubmitDisabled reports whether the submit action is unavailable.
func (m Model) SubmitDisabled() bool { return m.submitDisabled }

// Alert returns the alert and whether it is visible.
func (m Model) Alert() (Alert, bool) { return m.alert, m.alertVisible }

// Result returns the result text and whether the result region is visible.
func (m Model) Result() (string, bool) { return m.text, m.resultVisible }

// CopyLabel returns the current copy action label.
func (m Model) CopyLabel() string { return m.copyLabel }

func (m *Model) setSize(width, height int) {
	m.width, m.height = width, height
	m.input.Width = max(width-8, 10)
	m.help.Width = width

	m.viewport.Width = max(width-4, 10)
	m.viewport.Height = max(height-chromeHeight, minViewport)
	m.refreshViewport()
}
