// Package services implements the core application logic for Cuneify.
//
// Services orchestrate the domain logic (classification, tokenization,
// normalisation) with the driven ports (glyph converter, sign store).
// They implement the driving port interfaces consumed by the CLI, HTTP,
// MCP and TUI adapters.
package services
