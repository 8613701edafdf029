package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tpgillam/cuneifyplus/internal/core/domain"
)

// CuneifyInput is the input schema for the cuneify tool.
type CuneifyInput struct {
	Text         string `json:"text" jsonschema:"the transliterated text to convert"`
	ATF          bool   `json:"atf,omitempty" jsonschema:"treat the text as an ATF document"`
	Unrecognised string `json:"unrecognised,omitempty" jsonschema:"indicator shown for signs without a glyph; by default the sign is echoed unchanged"`
}

// CuneifyOutput is the output schema for the cuneify tool.
type CuneifyOutput struct {
	Output         string   `json:"output"`
	LinesConverted int      `json:"lines_converted"`
	Unrecognised   []string `json:"unrecognised,omitempty"`
}

// SignListInput is the input schema for the sign_list tool.
type SignListInput struct {
	Text string `json:"text" jsonschema:"the transliterated text to inventory"`
}

// SignListOutput is the output schema for the sign_list tool.
type SignListOutput struct {
	Signs        []SignEntryOutput `json:"signs"`
	Unrecognised []string          `json:"unrecognised,omitempty"`
}

// SignEntryOutput represents one glyph and its transliteration values.
type SignEntryOutput struct {
	Glyph  string   `json:"glyph"`
	Values []string `json:"values"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cuneify",
		Description: "Convert transliterated cuneiform text to glyphs",
	}, s.handleCuneify)

	if s.ports.SignList != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "sign_list",
			Description: "Build an ordered glyph-to-transliteration sign list",
		}, s.handleSignList)
	}
}

// handleCuneify handles the cuneify tool invocation.
func (s *Server) handleCuneify(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CuneifyInput,
) (*mcp.CallToolResult, CuneifyOutput, error) {
	opts := domain.DefaultRenderOptions()
	opts.ATF = input.ATF
	if input.Unrecognised != "" {
		opts.UnrecognisedIndicator = input.Unrecognised
	}

	res, err := s.ports.Cuneify.Render(ctx, strings.NewReader(input.Text), opts)
	if err != nil {
		return nil, CuneifyOutput{}, err
	}

	return nil, CuneifyOutput{
		Output:         res.Output,
		LinesConverted: res.LinesConverted,
		Unrecognised:   res.Unrecognised,
	}, nil
}

// handleSignList handles the sign_list tool invocation.
func (s *Server) handleSignList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SignListInput,
) (*mcp.CallToolResult, SignListOutput, error) {
	list, err := s.ports.SignList.Build(ctx, strings.NewReader(input.Text))
	if err != nil {
		return nil, SignListOutput{}, err
	}

	output := SignListOutput{
		Signs:        make([]SignEntryOutput, 0, list.Len()),
		Unrecognised: list.Unrecognised(),
	}
	for _, entry := range list.Entries() {
		output.Signs = append(output.Signs, SignEntryOutput{
			Glyph:  entry.Glyph,
			Values: entry.Values,
		})
	}

	return nil, output, nil
}
