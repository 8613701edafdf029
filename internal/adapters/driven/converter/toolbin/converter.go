// Package toolbin adapts the external cuneify binary to the Converter
// port. The binary owns the actual transliteration-to-glyph mapping and
// font logic; this package only invokes it, once per sign.
package toolbin

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/tpgillam/cuneifyplus/internal/core/domain"
	"github.com/tpgillam/cuneifyplus/internal/core/ports/driven"
	"github.com/tpgillam/cuneifyplus/internal/logger"
)

// Ensure Converter implements the interface.
var _ driven.Converter = (*Converter)(nil)

const (
	// DefaultFont is the glyph font requested from the tool when none
	// is configured.
	DefaultFont = "CuneiformComposite"

	// DefaultTimeout bounds a single tool invocation.
	DefaultTimeout = 10 * time.Second

	// toolRate throttles invocations so a large document does not fork
	// an unbounded burst of processes.
	toolRate = 50
)

// Converter shells out to the external conversion tool for every sign.
// Invocations are blocking, independent and throttled.
type Converter struct {
	bin     string
	font    string
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Converter.
type Option func(*Converter)

// WithFont selects the glyph font passed to the tool.
func WithFont(font string) Option {
	return func(c *Converter) {
		if font != "" {
			c.font = font
		}
	}
}

// WithTimeout bounds a single tool invocation.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New creates a converter that invokes the named binary.
func New(bin string, opts ...Option) *Converter {
	c := &Converter{
		bin:     bin,
		font:    DefaultFont,
		timeout: DefaultTimeout,
		limiter: rate.NewLimiter(rate.Limit(toolRate), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert invokes the tool for one sign and returns its glyph output.
// A missing binary surfaces as domain.ErrConverterUnavailable; a
// non-zero exit as domain.ErrUnrecognisedSign, which rendering treats
// as a per-sign warning rather than a failure.
func (c *Converter) Convert(ctx context.Context, sign string) (string, error) {
	if sign == "" {
		return "", nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	logger.Debug("invoking %s for sign %q", c.bin, sign)
	cmd := exec.CommandContext(ctx, c.bin, "--font", c.font, sign)
	out, err := cmd.Output()
	if err != nil {
		return "", c.classifyError(sign, err)
	}

	return strings.TrimRight(string(out), "\n"), nil
}

// classifyError maps an exec failure onto a domain error.
func (c *Converter) classifyError(sign string, err error) error {
	var execErr *exec.Error
	if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		return fmt.Errorf("%s: %w", c.bin, domain.ErrConverterUnavailable)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		detail := strings.TrimSpace(string(exitErr.Stderr))
		if detail == "" {
			detail = fmt.Sprintf("exit status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("%s (%s): %w", sign, detail, domain.ErrUnrecognisedSign)
	}

	return fmt.Errorf("invoking %s: %w", c.bin, err)
}
