package driving

import (
	"context"
	"io"

	"github.com/tpgillam/cuneifyplus/internal/core/domain"
)

// CuneifyService renders transliterated text as cuneiform glyphs.
type CuneifyService interface {
	// RenderLine renders a single line of free transliteration.
	RenderLine(ctx context.Context, line string, opts domain.RenderOptions) (*domain.RenderResult, error)

	// Render renders a whole document read from r. In ATF mode every
	// input line is emitted unchanged in its original order; each
	// transliteration line is followed by a synthesized comment line
	// carrying the glyphs.
	Render(ctx context.Context, r io.Reader, opts domain.RenderOptions) (*domain.RenderResult, error)
}

// SignListService builds ordered glyph-to-transliteration mappings from
// a text.
type SignListService interface {
	// Build scans the text from r and returns the sign list. Signs
	// without a glyph mapping are collected, not fatal.
	Build(ctx context.Context, r io.Reader) (*domain.SignList, error)
}
