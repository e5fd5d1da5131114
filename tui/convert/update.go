package convert

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages for the convert screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Copy):
			// The copy action lives in the result region.
			if !m.resultVisible {
				return m, nil
			}
			return m, m.copyResult()
		case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case key.Matches(msg, m.keys.ToggleHelp):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case ThreadProcessedMsg:
		return m.handleProcessed(msg), nil

	case CopiedMsg:
		return m.handleCopied(msg)

	case CopyLabelResetMsg:
		m.copyLabel = LabelCopy
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Typing, paste and cursor blink go to the URL field.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates the URL field and starts one request.
func (m Model) submit() (Model, tea.Cmd) {
	if m.submitDisabled {
		return m, nil
	}
	url := strings.TrimSpace(m.input.Value())
	if url == "" {
		m.showError(MsgInvalidURL, AlertDanger)
		return m, nil
	}

	m.loading = true
	m.alertVisible = false
	m.resultVisible = false
	m.submitDisabled = true
	m.seq++

	m.log.Debug().Int("seq", m.seq).Str("url", url).Msg("submitting thread")
	return m, tea.Batch(m.spinner.Tick, processThread(m.processor, m.seq, url))
}

// handleProcessed renders the outcome. Loading and the disabled submit
// state are cleared on every path.
func (m Model) handleProcessed(msg ThreadProcessedMsg) (next Model) {
	defer func() {
		next.loading = false
		next.submitDisabled = false
	}()

	if msg.Err != nil {
		m.log.Info().Int("seq", msg.Seq).Err(msg.Err).Msg("thread failed")
		m.showError(FailureMessage(msg.Err), AlertDanger)
		return m
	}

	m.setResult(msg.Result.Text)
	m.resultVisible = true
	if msg.Result.Cached {
		m.showError(MsgCached, AlertInfo)
	}
	m.log.Info().Int("seq", msg.Seq).Bool("cached", msg.Result.Cached).Msg("thread shown")
	return m
}

func (m Model) handleCopied(msg CopiedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Warn().Err(msg.Err).Msg("copy failed")
		m.showError(MsgCopyFailed, AlertDanger)
		return m, nil
	}
	m.copyLabel = LabelCopied
	return m, m.schedule(m.resetDelay, CopyLabelResetMsg{})
}

// showError is the single rendering path for the alert region.
func (m *Model) showError(message string, kind AlertKind) {
	if kind == "" {
		kind = AlertDanger
	}
	m.alert = Alert{Message: message, Kind: kind}
	m.alertVisible = true
}

func (m *Model) setResult(text string) {
	m.text = text
	m.refreshViewport()
	m.viewport.GotoTop()
}
