package story

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// State is the lifecycle state of a Game.
type State uint8

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	if s == StateStopped {
		return "stopped"
	}
	return "running"
}

const (
	panelTitle  = " THE DARK FOREST "
	promptText  = "Which direction do you choose? (left/right/exit): "
	fleeText    = "You flee the forest. Game Over."
	goodbyeText = "👋 Goodbye! Thanks for playing."
)

// Game runs the read/print loop for one session.
type Game struct {
	Events []string
	Theme  Theme
	Rand   Picker
	In     io.Reader
	Out    io.Writer

	state State
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Warn prints a loader warning, if there is one.
func (g *Game) Warn(res LoadResult) {
	if msg := res.Warning(); msg != "" {
		g.Alert(msg)
	}
}

// Alert prints msg in the alert style.
func (g *Game) Alert(msg string) {
	fmt.Fprintln(g.Out, g.Theme.Alert.Render(msg))
}

// Run shows the welcome panel and plays turns until the player types exit or
// the input ends. Only a failure reading input is returned.
func (g *Game) Run() error {
	g.state = StateRunning
	fmt.Fprintln(g.Out, g.welcome())

	reader := bufio.NewReader(g.In)
	var readErr error
	for g.state == StateRunning {
		fmt.Fprint(g.Out, "\n"+g.Theme.Prompt.Render(promptText))
		line, err := reader.ReadString('\n')
		if line != "" {
			g.turn(strings.TrimRight(line, "\r\n"))
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = err
			}
			if g.state == StateRunning {
				fmt.Fprintln(g.Out)
			}
			break
		}
	}
	g.state = StateStopped
	fmt.Fprintln(g.Out, "\n"+g.Theme.Goodbye.Render(goodbyeText))

	if readErr != nil {
		return fmt.Errorf("read input: %w", readErr)
	}
	return nil
}

func (g *Game) turn(input string) {
	choice := ParseChoice(input)
	if choice == ChoiceExit {
		fmt.Fprintln(g.Out, g.Theme.Alert.Render(fleeText))
		g.state = StateStopped
		return
	}
	fmt.Fprintln(g.Out, g.Theme.RenderOutcome(Resolve(choice, g.Events, g.Rand)))
}

func (g *Game) welcome() string {
	body := strings.Join([]string{
		"You wake up in a " + g.Theme.Narrative.Render("dark forest") + ".",
		"You can go " + g.Theme.Prompt.Render("left") + " or " + g.Theme.Prompt.Render("right") + ".",
	}, "\n")
	return g.Theme.RenderPanel(panelTitle, body)
}
