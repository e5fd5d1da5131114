package convert

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/threadreader/app"
)

// processThread always yields a ThreadProcessedMsg, even if the processor
// panics, so the screen can never be left loading.
func processThread(processor app.ThreadProcessor, seq int, url string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = ThreadProcessedMsg{Seq: seq, Err: fmt.Errorf("processor panic: %v", r)}
			}
		}()
		result, err := processor.Process(context.Background(), url)
		return ThreadProcessedMsg{Seq: seq, Result: result, Err: err}
	}
}

// copyResult writes the raw result text, possibly empty, to the clipboard.
func (m Model) copyResult() tea.Cmd {
	clipboard, text := m.clipboard, m.text
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = CopiedMsg{Err: fmt.Errorf("clipboard panic: %v", r)}
			}
		}()
		return CopiedMsg{Err: clipboard.WriteAll(text)}
	}
}
