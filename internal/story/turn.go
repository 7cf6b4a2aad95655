package story

import "strings"

// Choice is the player's decision for one turn.
type Choice uint8

const (
	ChoiceInvalid Choice = iota
	ChoiceLeft
	ChoiceRight
	ChoiceExit
)

func (c Choice) String() string {
	switch c {
	case ChoiceLeft:
		return "left"
	case ChoiceRight:
		return "right"
	case ChoiceExit:
		return "exit"
	default:
		return "invalid"
	}
}

// ParseChoice normalizes raw player input into a Choice.
func ParseChoice(input string) Choice {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "left":
		return ChoiceLeft
	case "right":
		return ChoiceRight
	case "exit":
		return ChoiceExit
	default:
		return ChoiceInvalid
	}
}

// Picker is the random source used to sample events. *rand.Rand from
// math/rand/v2 satisfies it.
type Picker interface {
	IntN(n int) int
}

const (
	walkLeftText   = "You walk left."
	walkRightText  = "You walk right."
	standStillText = "You stand still, unsure what to do. The forest swallows you."
	noEventsText   = "No events available!"
)

// Outcome is the result of one turn.
type Outcome struct {
	Choice Choice
	// Event is the sampled event; empty when the choice does not walk anywhere.
	Event string
	// NoEvents is set when the event list was empty.
	NoEvents bool
}

// Walked reports whether the outcome moved the player and carries an event.
func (o Outcome) Walked() bool {
	return !o.NoEvents && (o.Choice == ChoiceLeft || o.Choice == ChoiceRight)
}

// Phrase is the fixed narrative text for the outcome, without the event.
func (o Outcome) Phrase() string {
	switch {
	case o.NoEvents:
		return noEventsText
	case o.Choice == ChoiceLeft:
		return walkLeftText
	case o.Choice == ChoiceRight:
		return walkRightText
	default:
		return standStillText
	}
}

// String renders the outcome as plain text.
func (o Outcome) String() string {
	if o.Walked() {
		return o.Phrase() + " " + o.Event
	}
	return o.Phrase()
}

// Resolve maps a choice to its outcome. Walking samples one event uniformly
// from events; every other choice leaves rng and the list untouched.
func Resolve(choice Choice, events []string, rng Picker) Outcome {
	if len(events) == 0 {
		return Outcome{Choice: choice, NoEvents: true}
	}
	switch choice {
	case ChoiceLeft, ChoiceRight:
		return Outcome{Choice: choice, Event: events[rng.IntN(len(events))]}
	default:
		return Outcome{Choice: choice}
	}
}
