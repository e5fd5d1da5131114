package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	atotto "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"

	"github.com/CrestNiraj12/threadreader/app"
)

// ErrUnsupported is returned when no platform clipboard tool is available.
var ErrUnsupported = errors.New("clipboard unsupported on this platform")

// System writes to the OS clipboard (pbcopy, xclip, xsel, wl-copy, win32).
type System struct {
	write func(string) error
}

// NewSystem creates a System clipboard.
func NewSystem() *System {
	return &System{write: atotto.WriteAll}
}

// WriteAll copies text to the OS clipboard.
func (s *System) WriteAll(text string) error {
	if atotto.Unsupported {
		return ErrUnsupported
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	return nil
}

// OSC52 asks the terminal emulator to set its clipboard via an OSC 52
// escape sequence. Works over SSH where no local clipboard tool exists.
type OSC52 struct {
	out io.Writer
	env func(string) string
}

// NewOSC52 creates an OSC 52 clipboard writing sequences to out.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{out: out, env: os.Getenv}
}

// WriteAll emits the clipboard sequence, wrapped for tmux or screen when
// running inside one.
func (o *OSC52) WriteAll(text string) error {
	seq := osc52.New(text)
	switch {
	case o.env("TMUX") != "":
		seq = seq.Tmux()
	case o.env("STY") != "":
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.out); err != nil {
		return fmt.Errorf("writing osc52 sequence: %w", err)
	}
	return nil
}

// New returns the clipboard for the configured mode ("system" or "osc52").
// Unknown modes fall back to the system clipboard.
func New(mode string, out io.Writer) app.Clipboard {
	if mode == "osc52" {
		return NewOSC52(out)
	}
	return NewSystem()
}
