package driven

import "context"

// Converter maps a single normalised transliteration sign onto its
// cuneiform glyph sequence. It is the pluggable capability at the heart
// of the system: the external conversion tool, an in-memory sign table
// and a caching decorator all implement it interchangeably.
//
// Implementations return domain.ErrUnrecognisedSign (possibly wrapped)
// when no glyph exists for the sign, and domain.ErrConverterUnavailable
// when the capability as a whole cannot be reached. The empty sign
// converts to the empty string.
type Converter interface {
	Convert(ctx context.Context, sign string) (string, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(ctx context.Context, sign string) (string, error)

// Convert calls f.
func (f ConverterFunc) Convert(ctx context.Context, sign string) (string, error) {
	return f(ctx, sign)
}
