// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Converter: Maps one transliteration sign onto cuneiform glyphs.
//     The real mapping lives outside this repository (external tool or
//     sign table); everything here is a caller.
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SignStore: Persists sign-to-glyph mappings. Without it, every
//     conversion goes to the underlying converter.
//   - ConfigStore: Application configuration. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
