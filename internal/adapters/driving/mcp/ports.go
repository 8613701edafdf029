package mcp

import (
	"github.com/tpgillam/cuneifyplus/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Cuneify renders transliteration as cuneiform glyphs.
	Cuneify driving.CuneifyService

	// SignList builds glyph inventories.
	SignList driving.SignListService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Cuneify == nil {
		return ErrMissingCuneifyService
	}
	// SignList is optional; the sign_list tool is skipped without it.
	return nil
}
