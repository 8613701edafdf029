// Package table implements the Converter port with an in-memory sign
// table. The table can be seeded from a map (tests, native mappings) or
// loaded from a tab-separated sign file, optionally hot-reloaded when
// the file changes so a long-running server picks up edits.
package table

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/tpgillam/cuneifyplus/internal/core/domain"
	"github.com/tpgillam/cuneifyplus/internal/core/ports/driven"
	"github.com/tpgillam/cuneifyplus/internal/logger"
)

// Ensure Converter implements the interface.
var _ driven.Converter = (*Converter)(nil)

// Converter serves glyph lookups from an in-memory sign table.
type Converter struct {
	mu    sync.RWMutex
	signs map[string]string
	path  string
}

// New creates a converter backed by the given sign table.
// The map is copied; the caller's map is not retained.
func New(signs map[string]string) *Converter {
	c := &Converter{signs: make(map[string]string, len(signs))}
	for sign, glyph := range signs {
		c.signs[sign] = glyph
	}
	return c
}

// Load creates a converter from a sign file. Each non-blank line holds
// a sign and its glyphs separated by a tab; lines starting with '#' are
// comments.
func Load(path string) (*Converter, error) {
	c := &Converter{path: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Convert returns the glyphs for a sign. The empty sign converts to the
// empty string.
func (c *Converter) Convert(_ context.Context, sign string) (string, error) {
	if sign == "" {
		return "", nil
	}

	c.mu.RLock()
	glyph, ok := c.signs[sign]
	c.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%s: %w", sign, domain.ErrUnrecognisedSign)
	}
	return glyph, nil
}

// Len returns the number of signs in the table.
func (c *Converter) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.signs)
}

// Reload re-reads the sign file. Converters built with New have no
// backing file and reloading is a no-op.
func (c *Converter) Reload() error {
	if c.path == "" {
		return nil
	}

	f, err := os.Open(c.path)
	if err != nil {
		return fmt.Errorf("opening sign file: %w", err)
	}
	defer f.Close()

	signs := make(map[string]string)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sign, glyph, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("%s:%d: expected sign<TAB>glyphs", c.path, lineNo)
		}
		signs[strings.TrimSpace(sign)] = strings.TrimSpace(glyph)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading sign file: %w", err)
	}

	c.mu.Lock()
	c.signs = signs
	c.mu.Unlock()
	logger.Debug("sign table loaded: %d signs from %s", len(signs), c.path)
	return nil
}

// Watch re-reads the sign file whenever it changes on disk. It blocks
// until the context is cancelled and is intended to run in its own
// goroutine next to a long-running server.
func (c *Converter) Watch(ctx context.Context) error {
	if c.path == "" {
		return fmt.Errorf("no sign file to watch: %w", domain.ErrInvalidInput)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(c.path); err != nil {
		return fmt.Errorf("watching %s: %w", c.path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				if err := c.Reload(); err != nil {
					logger.Warn("sign table reload failed: %v", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("sign table watch error: %v", err)
		}
	}
}
