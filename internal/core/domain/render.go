package domain

// RenderOptions controls one rendering run.
type RenderOptions struct {
	// ATF selects ATF mode: lines are classified and only transliteration
	// lines are converted, each followed by a synthesized comment line
	// carrying the glyphs. When false, every line is free transliteration
	// and is converted in place.
	ATF bool

	// ShowTransliteration also emits the original transliteration,
	// column-aligned above the glyphs. Only meaningful in free mode.
	ShowTransliteration bool

	// UnrecognisedIndicator is shown in place of a sign the converter
	// does not know. The empty string, the default, echoes the original
	// sign unchanged.
	UnrecognisedIndicator string
}

// DefaultRenderOptions returns the options used when the caller does not
// specify any: free mode, unrecognised signs echoed as-is.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{}
}

// RenderResult is the outcome of rendering a line or a document.
type RenderResult struct {
	// Output is the rendered text. In ATF mode it contains every input
	// line in original order, interleaved with synthesized conversion
	// lines.
	Output string

	// LinesIn is the number of input lines processed.
	LinesIn int

	// LinesConverted is the number of transliteration lines for which a
	// conversion line was synthesized.
	LinesConverted int

	// Unrecognised lists the signs that had no glyph mapping, in order
	// of first appearance. These are warnings, not failures.
	Unrecognised []string
}

// RecordUnrecognised registers a sign that could not be converted,
// keeping first appearance order and suppressing duplicates.
func (r *RenderResult) RecordUnrecognised(sign string) {
	for _, s := range r.Unrecognised {
		if s == sign {
			return
		}
	}
	r.Unrecognised = append(r.Unrecognised, sign)
}
