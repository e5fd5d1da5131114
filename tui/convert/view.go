package convert

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/threadreader/tui/common"
)

// View renders the convert screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("🧵 ThreadReader"))
	b.WriteString("\n")
	b.WriteString(common.TaglineStyle.Render("Turn Twitter/X threads into plain text"))
	b.WriteString("\n\n")

	b.WriteString(common.InputBoxStyle.Width(max(m.width-4, 10)).Render(m.input.View()))
	b.WriteString("\n")

	if m.submitDisabled {
		b.WriteString(common.ButtonDisabledStyle.Render("Convert"))
	} else {
		b.WriteString(common.ButtonStyle.Render("Convert"))
	}
	if m.loading {
		b.WriteString("  " + m.spinner.View() + " Processing thread...")
	}
	b.WriteString("\n")

	if m.alertVisible {
		b.WriteString("\n")
		b.WriteString(alertStyle(m.alert.Kind).Render(m.alert.Message))
		b.WriteString("\n")
	}

	if m.resultVisible {
		b.WriteString("\n")
		label := common.ButtonStyle.Render(m.copyLabel)
		if m.copyLabel == LabelCopied {
			label = common.SuccessStyle.Render(m.copyLabel)
		}
		b.WriteString(common.ContentStyle.Bold(true).Render("Thread text") + "  " + label)
		b.WriteString("\n")
		b.WriteString(common.ResultBoxStyle.Render(m.viewport.View()))
		b.WriteString("\n")
	}

	b.WriteString(common.StatusBarStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func alertStyle(kind AlertKind) lipgloss.Style {
	if kind == AlertInfo {
		return common.InfoStyle
	}
	return common.ErrorStyle
}

// refreshViewport re-wraps the result for the current width.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(common.ContentStyle.Render(renderText(m.text, m.viewport.Width)))
}

// renderText strips terminal escapes the server text may carry and wraps
// it to width.
func renderText(text string, width int) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = ansi.Strip(text)
	if width <= 0 {
		return text
	}
	return ansi.Wordwrap(text, width, "")
}
