// Package cached decorates a Converter with a persistent sign store.
// Hits are served from the store without touching the underlying
// converter; misses fall through and the result is written back, so
// repeated documents stop invoking the external tool entirely.
package cached

import (
	"context"
	"fmt"

	"github.com/tpgillam/cuneifyplus/internal/core/ports/driven"
	"github.com/tpgillam/cuneifyplus/internal/logger"
)

// Ensure Converter implements the interface.
var _ driven.Converter = (*Converter)(nil)

// Converter caches conversions in a SignStore.
type Converter struct {
	next     driven.Converter
	store    driven.SignStore
	readOnly bool
}

// Option configures a Converter.
type Option func(*Converter)

// ReadOnly prevents write-back to the store. Used by servers that run
// against a shared store they must not modify.
func ReadOnly() Option {
	return func(c *Converter) {
		c.readOnly = true
	}
}

// New wraps next with caching in store.
func New(next driven.Converter, store driven.SignStore, opts ...Option) *Converter {
	c := &Converter{next: next, store: store}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert serves the sign from the store when possible, otherwise
// delegates to the underlying converter. Store read failures fall
// through to the converter; write-back failures are logged, not fatal,
// since conversions are idempotent and inexpensive.
func (c *Converter) Convert(ctx context.Context, sign string) (string, error) {
	if sign == "" {
		return "", nil
	}

	if glyph, ok, err := c.store.Get(ctx, sign); err == nil && ok {
		logger.Debug("cache hit for %q", sign)
		return glyph, nil
	} else if err != nil {
		logger.Warn("sign store read failed for %q: %v", sign, err)
	}

	glyph, err := c.next.Convert(ctx, sign)
	if err != nil {
		return "", err
	}

	if !c.readOnly {
		if err := c.store.Put(ctx, sign, glyph); err != nil {
			logger.Warn("sign store write failed for %q: %v", sign, err)
		}
	}
	return glyph, nil
}

// Warm copies every mapping from the store of another converter run
// into this store. Used by the cache import command.
func Warm(ctx context.Context, store driven.SignStore, signs map[string]string) error {
	for sign, glyph := range signs {
		if err := store.Put(ctx, sign, glyph); err != nil {
			return fmt.Errorf("storing %q: %w", sign, err)
		}
	}
	return nil
}
