package story

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderPanelTitleInTopBorder(t *testing.T) {
	tests := map[string]string{
		"wide body":   "You wake up in a dark forest.\nYou can go left or right.",
		"narrow body": "hi",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			panel := plainTheme(&out).RenderPanel(" THE DARK FOREST ", body)

			lines := strings.Split(panel, "\n")
			top := lines[0]
			if !strings.HasPrefix(top, "╭─") || !strings.HasSuffix(top, "─╮") {
				t.Fatalf("top border = %q", top)
			}
			if !strings.Contains(top, " THE DARK FOREST ") {
				t.Fatalf("title not in top border: %q", top)
			}
			if !strings.HasPrefix(lines[len(lines)-1], "╰") {
				t.Fatalf("bottom border = %q", lines[len(lines)-1])
			}
			width := lipgloss.Width(top)
			for i, line := range lines {
				if lipgloss.Width(line) != width {
					t.Fatalf("line %d width %d, want %d:\n%s", i, lipgloss.Width(line), width, panel)
				}
			}
			for _, want := range strings.Split(body, "\n") {
				if !strings.Contains(panel, want) {
					t.Fatalf("panel missing %q:\n%s", want, panel)
				}
			}
		})
	}
}
