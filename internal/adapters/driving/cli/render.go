package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tpgillam/cuneifyplus/internal/core/domain"
)

var (
	renderATF          bool
	renderShow         bool
	renderUnrecognised string
	renderOutput       string
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Convert a transliteration file to cuneiform",
	Long: `Converts transliterated text to cuneiform glyphs. Reads the named
file, or standard input when no file is given.

With --atf the input is treated as an ATF document: every line is kept
unchanged in its original order, and each transliteration line (one
starting with a line number and a period) is followed by a synthesized
"#" comment line carrying the glyphs. Structural lines (@, &, #atf:)
and comments pass through untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&renderATF, "atf", false, "parse the input as an ATF document")
	renderCmd.Flags().BoolVar(&renderShow, "show-transliteration", false,
		"also show the transliteration, column-aligned above the glyphs")
	renderCmd.Flags().StringVar(&renderUnrecognised, "unrecognised", "",
		"indicator for signs without a glyph (default: echo the sign)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write output to file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if cuneifyService == nil {
		return errors.New("cuneify service not configured")
	}

	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	opts := domain.RenderOptions{
		ATF:                   renderATF,
		ShowTransliteration:   renderShow,
		UnrecognisedIndicator: renderUnrecognised,
	}

	res, err := cuneifyService.Render(cmd.Context(), in, opts)
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if renderOutput != "" {
		if err := os.WriteFile(renderOutput, []byte(res.Output), 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	} else {
		cmd.Print(res.Output)
	}

	if len(res.Unrecognised) > 0 {
		cmd.PrintErrf("warning: %d unrecognised sign(s): %s\n",
			len(res.Unrecognised), strings.Join(res.Unrecognised, ", "))
	}
	return nil
}

// openInput returns the reader for the optional file argument, falling
// back to the command's standard input.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { f.Close() }, nil
}
