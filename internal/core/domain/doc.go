// Package domain defines the core business entities for Cuneify.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Line: One classified line of an ATF document
//   - RenderOptions / RenderResult: Inputs and outputs of a rendering run
//   - SignList: Ordered glyph-to-transliteration mapping
//
// It also owns the two pieces of pure logic the rest of the system is
// built around: ATF line classification and tokenization (atf.go) and
// transliteration sign normalisation (transliteration.go).
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
