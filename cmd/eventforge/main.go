// Command eventforge builds the events.txt file read by the Dark Forest game.
// Events come from a Supabase table, a Gemini model, or both.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"darkforest/internal/config"
)

type settings struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-pro"`
	SupabaseURL  string `env:"SUPABASE_URL"`
	SupabaseKey  string `env:"SUPABASE_KEY"`
	Table        string `env:"EVENTFORGE_TABLE" envDefault:"events"`
	Count        int    `env:"EVENTFORGE_COUNT" envDefault:"12"`
	Out          string `env:"EVENTFORGE_OUT" envDefault:"events.txt"`
	Setting      string `env:"EVENTFORGE_THEME" envDefault:"a dark forest"`
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}
	var cfg settings
	if err := config.ParseEnv(&cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Count <= 0 {
		log.Fatalf("EVENTFORGE_COUNT must be positive, got %d", cfg.Count)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	f := &forge{count: cfg.Count}
	if cfg.SupabaseURL != "" && cfg.SupabaseKey != "" {
		store, err := newSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.Table)
		if err != nil {
			log.Fatalf("Failed to connect to Supabase: %v", err)
		}
		log.Printf("Using Supabase table %q", cfg.Table)
		f.store = store
	}
	if cfg.GeminiAPIKey != "" {
		gen, err := newGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Setting)
		if err != nil {
			log.Fatalf("Failed to create Generative client: %v", err)
		}
		defer gen.Close()
		log.Printf("Generating %d events with %s", cfg.Count, cfg.GeminiModel)
		f.generator = gen
	}
	if f.store == nil && f.generator == nil {
		log.Fatal("No event source configured: set GEMINI_API_KEY and/or SUPABASE_URL and SUPABASE_KEY")
	}

	events, err := f.collect(ctx)
	if err != nil {
		log.Fatalf("Failed to collect events: %v", err)
	}
	if err := writeEvents(cfg.Out, events); err != nil {
		log.Fatalf("Failed to write events: %v", err)
	}
	log.Printf("Wrote %d events to %s", len(events), cfg.Out)
}
