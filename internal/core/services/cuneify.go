package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tpgillam/cuneifyplus/internal/core/domain"
	"github.com/tpgillam/cuneifyplus/internal/core/ports/driven"
	"github.com/tpgillam/cuneifyplus/internal/core/ports/driving"
	"github.com/tpgillam/cuneifyplus/internal/logger"
)

// Ensure CuneifyService implements the interface.
var _ driving.CuneifyService = (*CuneifyService)(nil)

// maxLineBytes bounds a single input line. ATF lines are short; this is
// only a guard against binary input.
const maxLineBytes = 1 << 20

// CuneifyService renders transliterated text as cuneiform glyphs using
// a pluggable Converter. Processing is strictly sequential line by
// line, so input line order is preserved in the output.
type CuneifyService struct {
	converter driven.Converter
}

// NewCuneifyService creates a new rendering service.
func NewCuneifyService(converter driven.Converter) *CuneifyService {
	return &CuneifyService{converter: converter}
}

// RenderLine renders a single line of free transliteration.
func (s *CuneifyService) RenderLine(ctx context.Context, line string, opts domain.RenderOptions) (*domain.RenderResult, error) {
	if s.converter == nil {
		return nil, domain.ErrConverterUnavailable
	}
	if !utf8.ValidString(line) {
		return nil, domain.ErrInvalidEncoding
	}

	res := &domain.RenderResult{LinesIn: 1}
	out, err := s.renderFreeLine(ctx, line, opts, res)
	if err != nil {
		return nil, err
	}
	res.Output = out
	res.LinesConverted = 1
	return res, nil
}

// Render renders a whole document read from r.
//
// In ATF mode every input line is classified, emitted unchanged, and
// transliteration lines are followed by a synthesized comment line
// holding the glyphs. In free mode each line is converted in place.
// Signs without a glyph mapping are warnings; only an unavailable
// converter or unreadable input aborts the run.
func (s *CuneifyService) Render(ctx context.Context, r io.Reader, opts domain.RenderOptions) (*domain.RenderResult, error) {
	if s.converter == nil {
		return nil, domain.ErrConverterUnavailable
	}

	res := &domain.RenderResult{}
	var out strings.Builder

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		raw := scanner.Text()
		if !utf8.ValidString(raw) {
			return nil, fmt.Errorf("line %d: %w", res.LinesIn+1, domain.ErrInvalidEncoding)
		}
		res.LinesIn++

		if opts.ATF {
			if err := s.renderATFLine(ctx, raw, opts, res, &out); err != nil {
				return nil, err
			}
			continue
		}

		converted, err := s.renderFreeLine(ctx, raw, opts, res)
		if err != nil {
			return nil, err
		}
		out.WriteString(converted)
		out.WriteByte('\n')
		res.LinesConverted++

		// An extra blank line aids legibility when the transliteration
		// is shown alongside the glyphs.
		if opts.ShowTransliteration {
			out.WriteByte('\n')
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	res.Output = out.String()
	return res, nil
}

// renderATFLine classifies one ATF line and appends it, plus a
// conversion line when the line carries transliteration, to out.
func (s *CuneifyService) renderATFLine(ctx context.Context, raw string, opts domain.RenderOptions, res *domain.RenderResult, out *strings.Builder) error {
	line := domain.ClassifyLine(raw)

	out.WriteString(raw)
	out.WriteByte('\n')
	if !line.Convertible() {
		return nil
	}

	// The two-row transliteration view makes no sense under a comment
	// marker; the original line is already right above the glyphs.
	lineOpts := opts
	lineOpts.ShowTransliteration = false

	converted, err := s.renderFreeLine(ctx, line.Body, lineOpts, res)
	if err != nil {
		return err
	}
	out.WriteString("#")
	out.WriteString(line.Gap)
	out.WriteString(converted)
	out.WriteByte('\n')
	res.LinesConverted++
	return nil
}

// renderFreeLine converts one line of free transliteration. The line is
// split into signs, each sign converted independently, and the results
// rejoined with spaces (or column-aligned under the originals when
// ShowTransliteration is set).
func (s *CuneifyService) renderFreeLine(ctx context.Context, line string, opts domain.RenderOptions, res *domain.RenderResult) (string, error) {
	signs, seps := domain.SplitSigns(line)

	glyphs := make([]string, len(signs))
	for i, sign := range signs {
		glyph, ok, err := s.renderSign(ctx, sign, res)
		if err != nil {
			return "", err
		}
		if !ok {
			// Unrecognised: substitute the indicator, or echo the
			// original sign when the indicator is empty.
			glyph = opts.UnrecognisedIndicator
			if glyph == "" {
				glyph = sign
			}
		}
		glyphs[i] = glyph
	}

	if !opts.ShowTransliteration {
		return strings.Join(glyphs, " "), nil
	}

	var top, bottom strings.Builder
	for i := range signs {
		cell := signs[i] + seps[i]
		width := utf8.RuneCountInString(cell)
		if w := utf8.RuneCountInString(glyphs[i]); w > width {
			width = w
		}
		top.WriteString(padRight(cell, width))
		bottom.WriteString(padRight(glyphs[i], width))
	}
	return top.String() + "\n" + bottom.String(), nil
}

// renderSign converts a single sign. The boolean reports whether a
// glyph was produced; false means the sign is unrecognised and has been
// recorded as a warning. Errors are reserved for failures that must
// abort the run.
func (s *CuneifyService) renderSign(ctx context.Context, sign string, res *domain.RenderResult) (string, bool, error) {
	// Unreadable-sign markers and bare flags are never converted.
	if domain.PassThrough(sign) {
		return sign, true, nil
	}

	lead, core, trail := domain.SplitFlags(sign)
	norm, err := domain.NormalizeSign(core)
	if err != nil {
		return "", false, fmt.Errorf("normalising %q: %w", sign, err)
	}

	// The empty sign corresponds to no glyph at all.
	if norm == "" {
		return lead + trail, true, nil
	}

	glyph, err := s.converter.Convert(ctx, norm)
	switch {
	case err == nil:
		return lead + glyph + trail, true, nil
	case errors.Is(err, domain.ErrUnrecognisedSign):
		logger.Warn("no glyph mapping for %q", sign)
		res.RecordUnrecognised(sign)
		return "", false, nil
	default:
		return "", false, fmt.Errorf("converting %q: %w", sign, err)
	}
}

// padRight pads s with spaces to the given rune width.
func padRight(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
