package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/CrestNiraj12/threadreader/domain"
	"github.com/CrestNiraj12/threadreader/tui/convert"
)

type echoProcessor struct{}

func (echoProcessor) Process(_ context.Context, url string) (domain.ThreadResult, error) {
	return domain.ThreadResult{Text: "text for " + url}, nil
}

type okClipboard struct{}

func (okClipboard) WriteAll(string) error { return nil }

func newTestApp(initialURL string) App {
	return NewApp(Deps{
		Processor:  echoProcessor{},
		Clipboard:  okClipboard{},
		Logger:     zerolog.Nop(),
		InitialURL: initialURL,
	})
}

func TestApp_QuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := newTestApp("").Update(k)
		if cmd == nil {
			t.Fatalf("expected quit command for %q", k.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg for %q", k.String())
		}
	}
}

func TestApp_DelegatesSubmitToConvert(t *testing.T) {
	a := newTestApp("https://x.com/a/status/9")

	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = model.(App)
	if !a.convert.Loading() {
		t.Fatalf("expected convert screen loading after enter")
	}

	var processed tea.Msg
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			if msg, ok := c().(convert.ThreadProcessedMsg); ok {
				processed = msg
			}
		}
	}
	if processed == nil {
		t.Fatalf("expected ThreadProcessedMsg in submit batch")
	}

	model, _ = a.Update(processed)
	a = model.(App)
	text, visible := a.convert.Result()
	if !visible || text != "text for https://x.com/a/status/9" {
		t.Fatalf("unexpected result %q visible=%v", text, visible)
	}
}

func TestApp_NoInitialURLStartsEmpty(t *testing.T) {
	model, cmd := newTestApp("").Update(tea.KeyMsg{Type: tea.KeyEnter})
	a := model.(App)
	if cmd != nil || a.convert.Loading() {
		t.Fatalf("empty field must not submit")
	}
	if alert, visible := a.convert.Alert(); !visible || alert.Message != convert.MsgInvalidURL {
		t.Fatalf("expected validation alert, got %+v visible=%v", alert, visible)
	}
}
