package main

import (
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"darkforest/internal/config"
	"darkforest/internal/story"
)

// settings are read from the environment (and an optional .env file).
type settings struct {
	EventsFile string `env:"DARKFOREST_EVENTS_FILE" envDefault:"events.txt"`
	Seed       int64  `env:"DARKFOREST_SEED" envDefault:"0"`
}

var defaultSettings = settings{EventsFile: "events.txt"}

// loadSettings never fails: problems come back as warnings and the affected
// settings keep their defaults.
func loadSettings(dotenv ...string) (settings, []string) {
	var warnings []string
	if err := config.LoadDotEnv(dotenv...); err != nil {
		warnings = append(warnings, "Warning: could not load .env file: "+err.Error()+". Ignoring it.")
	}
	var cfg settings
	if err := config.ParseEnv(&cfg); err != nil {
		warnings = append(warnings, "Warning: invalid configuration: "+err.Error()+". Using defaults.")
		cfg = defaultSettings
	}
	return cfg, warnings
}

func main() {
	cfg, warnings := loadSettings()

	theme := story.NewForestTheme(lipgloss.NewRenderer(os.Stdout))
	game := &story.Game{
		Theme: theme,
		Rand:  newRand(cfg.Seed),
		In:    os.Stdin,
		Out:   os.Stdout,
	}
	for _, w := range warnings {
		game.Alert(w)
	}

	// Load events safely; the loader always hands back something playable.
	res := story.LoadEvents(story.ResolvePath(cfg.EventsFile))
	game.Warn(res)
	game.Events = res.Events

	if err := game.Run(); err != nil {
		log.Printf("Error reading input: %v", err)
	}
}

// newRand seeds the event picker. A zero seed means a fresh game every run.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}
