package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Generator produces new event phrases.
type Generator interface {
	Generate(ctx context.Context, count int) ([]string, error)
}

// Store is a remote table of curated events.
type Store interface {
	List(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, events []string) error
}

// ErrNoEvents is returned when every source came back empty.
var ErrNoEvents = errors.New("no events to write")

// forge collects events from the configured sources. Stored events come
// first, then generated ones; new generated events are pushed to the store.
type forge struct {
	store     Store
	generator Generator
	count     int
}

func (f *forge) collect(ctx context.Context) ([]string, error) {
	var stored, generated []string
	if f.store != nil {
		events, err := f.store.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list stored events: %w", err)
		}
		stored = events
	}
	if f.generator != nil {
		events, err := f.generator.Generate(ctx, f.count)
		if err != nil {
			return nil, fmt.Errorf("generate events: %w", err)
		}
		generated = events
	}

	known := mergeEvents(stored)
	merged := mergeEvents(known, generated)
	if len(merged) == 0 {
		return nil, ErrNoEvents
	}

	if f.store != nil {
		if fresh := merged[len(known):]; len(fresh) > 0 {
			if err := f.store.Insert(ctx, fresh); err != nil {
				return nil, fmt.Errorf("store generated events: %w", err)
			}
		}
	}
	return merged, nil
}

// mergeEvents concatenates lists, trimming entries and dropping blanks and
// exact duplicates. The first occurrence wins.
func mergeEvents(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, e := range list {
			e = strings.TrimSpace(e)
			if e == "" {
				continue
			}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// parseGenerated turns a model reply into event lines, stripping list markers
// and wrapping quotes the model sometimes adds despite the prompt.
func parseGenerated(text string) []string {
	var events []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• ")
		line = trimNumbering(line)
		line = strings.Trim(line, "\"'` ")
		if line == "" {
			continue
		}
		events = append(events, line)
	}
	return events
}

func trimNumbering(line string) string {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(line) || (line[i] != '.' && line[i] != ')') {
		return line
	}
	return strings.TrimSpace(line[i+1:])
}

// writeEvents replaces path with one event per line. The file is written next
// to path and renamed so the game never sees a partial list.
func writeEvents(path string, events []string) error {
	if len(events) == 0 {
		return ErrNoEvents
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".events-*.txt")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strings.Join(events, "\n") + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
