package story

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles used for everything the game prints.
type Theme struct {
	Narrative lipgloss.Style
	Event     lipgloss.Style
	Prompt    lipgloss.Style
	Alert     lipgloss.Style
	Title     lipgloss.Style
	Goodbye   lipgloss.Style
	Border    lipgloss.Style
	Panel     lipgloss.Style
}

// NewForestTheme builds the green forest palette on r. Pass a renderer bound to
// the game's output so non-terminal writers get plain text.
func NewForestTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Narrative: r.NewStyle().Foreground(lipgloss.Color("2")),
		Event:     r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true).Italic(true),
		Prompt:    r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Alert:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Title:     r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true).Reverse(true),
		Goodbye:   r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		Border:    r.NewStyle().Foreground(lipgloss.Color("2")),
		Panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1),
	}
}

// RenderOutcome styles a turn outcome. Walking outcomes pair the narrative
// phrase with the event; everything else is an alert.
func (t Theme) RenderOutcome(o Outcome) string {
	if !o.Walked() {
		return t.Alert.Render(o.Phrase())
	}
	return t.Narrative.Render(o.Phrase()) + " " + t.Event.Render(o.Event)
}

// RenderPanel draws body in a bordered box sized to fit, with title centered
// in the top border.
func (t Theme) RenderPanel(title, body string) string {
	border := lipgloss.RoundedBorder()
	label := t.Title.Render(title)
	labelWidth := lipgloss.Width(label)

	box := t.Panel.Border(border).BorderTop(false)
	// Keep at least one border rune on each side of the title.
	if need := labelWidth + 2 - box.GetHorizontalPadding(); lipgloss.Width(body) < need {
		body = lipgloss.PlaceHorizontal(need, lipgloss.Left, body)
	}
	rendered := box.Render(body)

	fill := lipgloss.Width(rendered) - 2 - labelWidth
	left := fill / 2
	top := t.Border.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		label +
		t.Border.Render(strings.Repeat(border.Top, fill-left)+border.TopRight)
	return top + "\n" + rendered
}
