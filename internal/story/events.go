// Package story implements the Dark Forest game: loading the event list,
// resolving a player's choice into an outcome and running the turn loop.
package story

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"unicode/utf8"
)

// Fallback tells why LoadEvents returned a built-in list instead of the file contents.
type Fallback uint8

const (
	FallbackNone        Fallback = iota // events came from the file
	FallbackMissing                     // file does not exist
	FallbackEmpty                       // file has no non-blank lines
	FallbackReadFailure                 // file could not be read or decoded
)

func (f Fallback) String() string {
	switch f {
	case FallbackNone:
		return "none"
	case FallbackMissing:
		return "missing"
	case FallbackEmpty:
		return "empty"
	case FallbackReadFailure:
		return "read failure"
	default:
		return fmt.Sprintf("Fallback(%d)", uint8(f))
	}
}

// ErrInvalidEncoding is reported when the events file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("events file is not valid UTF-8")

// Built-in event lists, one per fallback tier.
var (
	defaultMissingEvents = []string{"a bird screeches loudly", "you trip over a root", "a cold wind blows"}
	defaultEmptyEvents   = []string{"nothing happens", "a leaf falls"}
	defaultFailureEvents = []string{"an unknown error occurs"}
)

// DefaultEvents returns a copy of the built-in list used for the given fallback.
// FallbackNone has no built-in list and yields nil.
func DefaultEvents(f Fallback) []string {
	var src []string
	switch f {
	case FallbackMissing:
		src = defaultMissingEvents
	case FallbackEmpty:
		src = defaultEmptyEvents
	case FallbackReadFailure:
		src = defaultFailureEvents
	default:
		return nil
	}
	return append([]string(nil), src...)
}

// LoadResult is the outcome of LoadEvents. Events is never empty.
type LoadResult struct {
	Path     string
	Events   []string
	Fallback Fallback
	Err      error
}

// Warning returns the message to show the player, or "" when the file was used.
func (r LoadResult) Warning() string {
	name := filepath.Base(r.Path)
	switch r.Fallback {
	case FallbackMissing:
		return fmt.Sprintf("Warning: '%s' not found at %s. Using default events.", name, r.Path)
	case FallbackEmpty:
		return fmt.Sprintf("Warning: '%s' is empty. Using default events.", name)
	case FallbackReadFailure:
		return fmt.Sprintf("Error reading file: %v", r.Err)
	default:
		return ""
	}
}

// LoadEvents reads one event per line from path. Lines are trimmed and blank
// lines are dropped. It never fails: any problem with the file substitutes a
// built-in list and records why in the result.
func LoadEvents(path string) LoadResult {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return fallback(path, FallbackMissing, err)
		}
		return fallback(path, FallbackReadFailure, err)
	}
	if !utf8.Valid(data) {
		return fallback(path, FallbackReadFailure, fmt.Errorf("%s: %w", path, ErrInvalidEncoding))
	}

	events, err := ParseEvents(data)
	if err != nil {
		return fallback(path, FallbackReadFailure, err)
	}
	if len(events) == 0 {
		return fallback(path, FallbackEmpty, nil)
	}
	return LoadResult{Path: path, Events: events}
}

// ParseEvents splits data into trimmed, non-blank lines in order.
func ParseEvents(data []byte) ([]string, error) {
	var events []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		events = append(events, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan events: %w", err)
	}
	return events, nil
}

// ResolvePath locates a relative events file. The copy next to the
// executable wins; otherwise a copy in the working directory is used (as
// under go run). When neither exists the executable's path is returned so
// the missing-file warning names it.
func ResolvePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	beside := filepath.Join(filepath.Dir(exe), name)
	if _, err := os.Stat(beside); err == nil {
		return beside
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return beside
}

func fallback(path string, f Fallback, err error) LoadResult {
	return LoadResult{Path: path, Events: DefaultEvents(f), Fallback: f, Err: err}
}
