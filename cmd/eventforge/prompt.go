package main

import "fmt"

const eventPromptTemplate = `You write ambient events for "The Dark Forest," a tiny text adventure played in a terminal.

Each turn the player walks left or right and the game prints "You walk left." or "You walk right." followed by one event. Events are what the player notices at that moment in %s.

Write %d events. Rules:
- One event per line, no numbering, bullets, quotes or blank lines.
- Lowercase, no trailing punctuation, under twelve words.
- Present tense, second person or plain description ("a branch snaps behind you", "you smell smoke").
- Unsettling but never gory. No dialogue, no named characters, no outcomes that end the game.

Reply with the events only.`

func eventPrompt(setting string, count int) string {
	return fmt.Sprintf(eventPromptTemplate, setting, count)
}
