package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/CrestNiraj12/threadreader/app"
	"github.com/CrestNiraj12/threadreader/tui/common"
	"github.com/CrestNiraj12/threadreader/tui/convert"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Processor  app.ThreadProcessor
	Clipboard  app.Clipboard
	Logger     zerolog.Logger
	InitialURL string // Prefills the URL field
}

// App is the root Bubble Tea model. It owns quitting and delegates the
// rest to the convert screen.
type App struct {
	deps    Deps
	convert convert.Model
	keys    common.KeyMap
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	c := convert.New(deps.Processor, deps.Clipboard, deps.Logger)
	if deps.InitialURL != "" {
		c.SetValue(deps.InitialURL)
	}
	return App{
		deps:    deps,
		convert: c,
		keys:    common.DefaultKeyMap(),
	}
}

// Init delegates to the convert screen.
func (a App) Init() tea.Cmd {
	return a.convert.Init()
}

// Update handles global keys and routes everything else to the convert screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, a.keys.Quit) {
		a.deps.Logger.Debug().Msg("quit requested")
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.convert, cmd = a.convert.Update(msg)
	return a, cmd
}

// View renders the convert screen.
func (a App) View() string {
	return a.convert.View()
}
