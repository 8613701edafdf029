package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidEncoding indicates the input stream is not valid UTF-8.
	// Rendering stops for the whole stream when this is reported.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")

	// ErrNotASign indicates a string that was expected to be a single
	// sign still contains sign separators ('-', ' ' or '.').
	ErrNotASign = errors.New("not a single sign")

	// ErrUnrecognisedSign indicates the converter has no glyph for a sign.
	// Rendering continues; the sign is recorded as a warning.
	ErrUnrecognisedSign = errors.New("unrecognised sign")

	// ErrConverterUnavailable indicates the glyph converter cannot be
	// reached at all (missing binary, closed store). Unlike
	// ErrUnrecognisedSign this aborts the whole rendering run.
	ErrConverterUnavailable = errors.New("glyph converter unavailable")
)
