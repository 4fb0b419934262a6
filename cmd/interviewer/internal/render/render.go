// Package render formats answers, prompts and errors for the terminal.
// Plain mode emits text exactly as received; styled mode renders answers as
// markdown with glamour and colors the prefixes with lipgloss.
package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// GitHub terminal palette.
var (
	ColorMuted  = lipgloss.Color("#656d76")
	ColorAccent = lipgloss.Color("#0969da")
	ColorError  = lipgloss.Color("#cf222e")
	ColorAnswer = lipgloss.Color("#1a7f37")
)

var (
	BannerStyle       = lipgloss.NewStyle().Foreground(ColorMuted)
	QuestionStyle     = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	AnswerPrefixStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAnswer)
	ErrorStyle        = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
)

// Prefixes of the interactive loop.
const (
	QuestionPrefix = "Q>"
	AnswerPrefix   = "A>"
	ErrorPrefix    = "Error:"
)

// Renderer formats output for one terminal.
type Renderer struct {
	styled bool
	md     *glamour.TermRenderer
}

// New returns a Renderer. When styled is false every method returns plain
// text. width is the word-wrap column for markdown; <= 0 means 100.
func New(styled bool, width int) *Renderer {
	r := &Renderer{styled: styled}
	if !styled {
		return r
	}

	if width <= 0 {
		width = 100
	}

	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		r.md = md
	}

	return r
}

// Styled reports whether the renderer emits terminal styling.
func (r *Renderer) Styled() bool { return r.styled }

// Banner formats the greeting line of the interactive loop.
func (r *Renderer) Banner(s string) string {
	if !r.styled {
		return s
	}
	return BannerStyle.Render(s)
}

// Prompt returns the question prompt, including its trailing space.
func (r *Renderer) Prompt() string {
	if !r.styled {
		return QuestionPrefix + " "
	}
	return QuestionStyle.Render(QuestionPrefix) + " "
}

// Answer formats a single-shot answer. Plain mode returns it unchanged.
func (r *Renderer) Answer(text string) string {
	if !r.styled {
		return text
	}
	return r.markdown(text)
}

// Reply formats an answer inside the interactive loop.
func (r *Renderer) Reply(text string) string {
	text = strings.TrimSpace(text)
	if !r.styled {
		return AnswerPrefix + " " + text
	}
	return AnswerPrefixStyle.Render(AnswerPrefix) + "\n" + r.markdown(text)
}

// Error formats a per-question failure.
func (r *Renderer) Error(err error) string {
	if !r.styled {
		return ErrorPrefix + " " + err.Error()
	}
	return ErrorStyle.Render(ErrorPrefix) + " " + err.Error()
}

// markdown converts markdown text to terminal-formatted output. Falls back
// to plain text if the renderer is unavailable.
func (r *Renderer) markdown(text string) string {
	if r.md == nil {
		return text
	}
	out, err := r.md.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
