package story

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func plainTheme(out *bytes.Buffer) Theme {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(termenv.Ascii)
	return NewForestTheme(r)
}

func newTestGame(input string, events []string) (*Game, *bytes.Buffer) {
	var out bytes.Buffer
	return &Game{
		Events: events,
		Theme:  plainTheme(&out),
		Rand:   rand.New(rand.NewPCG(1, 2)),
		In:     strings.NewReader(input),
		Out:    &out,
	}, &out
}

// indexes returns the position of each needle in s, failing if any is missing.
func indexes(t *testing.T, s string, needles ...string) []int {
	t.Helper()
	out := make([]int, len(needles))
	for i, n := range needles {
		out[i] = strings.Index(s, n)
		if out[i] < 0 {
			t.Fatalf("output missing %q:\n%s", n, s)
		}
	}
	return out
}

func TestGameLeftThenExit(t *testing.T) {
	game, out := newTestGame("left\nexit\n", []string{"a leaf falls"})

	if err := game.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if game.State() != StateStopped {
		t.Fatalf("state = %v, want stopped", game.State())
	}

	got := out.String()
	pos := indexes(t, got,
		"THE DARK FOREST",
		"You walk left. a leaf falls",
		"You flee the forest. Game Over.",
		"👋 Goodbye! Thanks for playing.",
	)
	for i := 1; i < len(pos); i++ {
		if pos[i] <= pos[i-1] {
			t.Fatalf("output out of order:\n%s", got)
		}
	}
	if n := strings.Count(got, "You walk left."); n != 1 {
		t.Fatalf("expected one walk line, got %d", n)
	}
	if n := strings.Count(got, "Which direction do you choose?"); n != 2 {
		t.Fatalf("expected two prompts, got %d", n)
	}
}

func TestGameStopsReadingAfterExit(t *testing.T) {
	game, out := newTestGame("  EXIT \nleft\nright\n", []string{"a leaf falls"})

	if err := game.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(out.String(), "You walk") {
		t.Fatalf("turns played after exit:\n%s", out.String())
	}
}

func TestGameInvalidInputStandsStill(t *testing.T) {
	game, out := newTestGame("jump\nRIGHT\nexit\n", []string{"a leaf falls"})

	if err := game.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	indexes(t, out.String(),
		"You stand still, unsure what to do. The forest swallows you.",
		"You walk right. a leaf falls",
	)
}

func TestGameEndOfInput(t *testing.T) {
	game, out := newTestGame("left", []string{"a leaf falls"})

	if err := game.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if strings.Contains(got, "You flee the forest.") {
		t.Fatalf("flee message printed on end of input:\n%s", got)
	}
	indexes(t, got, "You walk left. a leaf falls", "👋 Goodbye! Thanks for playing.")
	if game.State() != StateStopped {
		t.Fatalf("state = %v, want stopped", game.State())
	}
}

func TestGameLongLineStandsStill(t *testing.T) {
	long := strings.Repeat("a", 70*1024)
	game, out := newTestGame(long+"\nleft\nexit\n", []string{"a leaf falls"})

	if err := game.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	pos := indexes(t, out.String(),
		"You stand still, unsure what to do. The forest swallows you.",
		"You walk left. a leaf falls",
		"You flee the forest. Game Over.",
	)
	if pos[0] > pos[1] || pos[1] > pos[2] {
		t.Fatalf("output out of order")
	}
}

func TestGameCRLFInput(t *testing.T) {
	game, out := newTestGame("right\r\nexit\r\n", []string{"a leaf falls"})

	if err := game.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	indexes(t, out.String(), "You walk right. a leaf falls", "You flee the forest. Game Over.")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("terminal gone") }

func TestGameReadError(t *testing.T) {
	game, out := newTestGame("", nil)
	game.In = failingReader{}

	err := game.Run()
	if err == nil || !strings.Contains(err.Error(), "terminal gone") {
		t.Fatalf("expected read error, got %v", err)
	}
	indexes(t, out.String(), "👋 Goodbye! Thanks for playing.")
}

func TestGameWarn(t *testing.T) {
	game, out := newTestGame("", nil)

	game.Warn(LoadResult{Path: "/opt/forest/events.txt", Fallback: FallbackNone})
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
	game.Warn(LoadResult{Path: "/opt/forest/events.txt", Fallback: FallbackEmpty})
	if !strings.Contains(out.String(), "Warning: 'events.txt' is empty. Using default events.") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRenderOutcomePlain(t *testing.T) {
	var out bytes.Buffer
	theme := plainTheme(&out)

	got := theme.RenderOutcome(Outcome{Choice: ChoiceLeft, Event: "a leaf falls"})
	if got != "You walk left. a leaf falls" {
		t.Fatalf("render = %q", got)
	}
	if got := theme.RenderOutcome(Outcome{Choice: ChoiceLeft, NoEvents: true}); got != "No events available!" {
		t.Fatalf("render = %q", got)
	}
}
