package convert

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/CrestNiraj12/threadreader/domain"
)

type stubProcessor struct {
	calls  int
	urls   []string
	result domain.ThreadResult
	err    error
	panics bool
}

func (s *stubProcessor) Process(_ context.Context, url string) (domain.ThreadResult, error) {
	s.calls++
	s.urls = append(s.urls, url)
	if s.panics {
		panic("boom")
	}
	return s.result, s.err
}

type stubClipboard struct {
	got []string
	err error
}

func (s *stubClipboard) WriteAll(text string) error {
	s.got = append(s.got, text)
	return s.err
}

type scheduled struct {
	d   time.Duration
	msg tea.Msg
}

func newTestModel(p *stubProcessor, c *stubClipboard) (Model, *[]scheduled) {
	m := New(p, c, zerolog.Nop())
	var sched []scheduled
	m.schedule = func(d time.Duration, msg tea.Msg) tea.Cmd {
		sched = append(sched, scheduled{d: d, msg: msg})
		return func() tea.Msg { return msg }
	}
	return m, &sched
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	copyKey  = tea.KeyMsg{Type: tea.KeyCtrlY}
)

// runCmd executes cmd and flattens batches into the messages they yield.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func processedFrom(t *testing.T, cmd tea.Cmd) ThreadProcessedMsg {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		if p, ok := msg.(ThreadProcessedMsg); ok {
			return p
		}
	}
	t.Fatalf("expected a ThreadProcessedMsg from submit command")
	return ThreadProcessedMsg{}
}

func copiedFrom(t *testing.T, cmd tea.Cmd) CopiedMsg {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		if c, ok := msg.(CopiedMsg); ok {
			return c
		}
	}
	t.Fatalf("expected a CopiedMsg from copy command")
	return CopiedMsg{}
}

// submitAndResolve types url, presses enter and feeds the outcome back.
func submitAndResolve(t *testing.T, m Model, url string) Model {
	t.Helper()
	m.SetValue(url)
	m, cmd := m.Update(enterKey)
	m, _ = m.Update(processedFrom(t, cmd))
	return m
}
