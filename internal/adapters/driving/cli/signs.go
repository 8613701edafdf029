package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var signsCmd = &cobra.Command{
	Use:   "signs [file]",
	Short: "Show the sign list for a text",
	Long: `Scans the transliterated text and prints an ordered mapping from
each distinct glyph to the transliteration values that produced it,
in order of first appearance. Signs without a glyph mapping are listed
separately.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSigns,
}

func init() {
	rootCmd.AddCommand(signsCmd)
}

var (
	signsGlyphStyle  = lipgloss.NewStyle().Bold(true)
	signsHeaderStyle = lipgloss.NewStyle().Underline(true)
)

func runSigns(cmd *cobra.Command, args []string) error {
	if signListService == nil {
		return errors.New("sign list service not configured")
	}

	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	list, err := signListService.Build(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("building sign list: %w", err)
	}

	if list.Len() == 0 && len(list.Unrecognised()) == 0 {
		cmd.Println("No signs found.")
		return nil
	}

	// Styling only makes sense on a terminal.
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	printHeader(cmd, styled, "Sign list:")
	for _, entry := range list.Entries() {
		glyph := entry.Glyph
		if styled {
			glyph = signsGlyphStyle.Render(glyph)
		}
		cmd.Printf("  %s  %s\n", glyph, strings.Join(entry.Values, ", "))
	}

	if unrecognised := list.Unrecognised(); len(unrecognised) > 0 {
		cmd.Println()
		printHeader(cmd, styled, "Unrecognised signs:")
		for _, sign := range unrecognised {
			cmd.Printf("  %s\n", sign)
		}
	}
	return nil
}

func printHeader(cmd *cobra.Command, styled bool, text string) {
	if styled {
		text = signsHeaderStyle.Render(text)
	}
	cmd.Println(text)
}
