package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tpgillam/cuneifyplus/internal/adapters/driven/converter/cached"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the persistent sign cache",
	Long: `Commands for the local sign cache. Conversions resolved by the
external tool are remembered here, so repeated documents never invoke
the tool again.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	RunE:  runCacheStats,
}

var cacheExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export cached mappings as a tab-separated sign file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCacheExport,
}

var cacheImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import mappings from a tab-separated sign file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheImport,
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheExportCmd)
	cacheCmd.AddCommand(cacheImportCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheStats(cmd *cobra.Command, _ []string) error {
	if signStore == nil {
		return errors.New("sign store not configured")
	}

	n, err := signStore.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("counting cached signs: %w", err)
	}
	cmd.Printf("Cached signs: %d\n", n)
	return nil
}

func runCacheExport(cmd *cobra.Command, args []string) error {
	if signStore == nil {
		return errors.New("sign store not configured")
	}

	signs, err := signStore.All(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading cache: %w", err)
	}

	keys := make([]string, 0, len(signs))
	for sign := range signs {
		keys = append(keys, sign)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, sign := range keys {
		fmt.Fprintf(&b, "%s\t%s\n", sign, signs[sign])
	}

	if len(args) == 1 {
		if err := os.WriteFile(args[0], []byte(b.String()), 0644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		cmd.Printf("Exported %d sign(s) to %s\n", len(keys), args[0])
		return nil
	}

	cmd.Print(b.String())
	return nil
}

func runCacheImport(cmd *cobra.Command, args []string) error {
	if signStore == nil {
		return errors.New("sign store not configured")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening sign file: %w", err)
	}
	defer f.Close()

	signs := make(map[string]string)
	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sign, glyph, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("%s:%d: expected sign<TAB>glyphs", args[0], lineNo)
		}
		signs[strings.TrimSpace(sign)] = strings.TrimSpace(glyph)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading sign file: %w", err)
	}

	if err := cached.Warm(cmd.Context(), signStore, signs); err != nil {
		return fmt.Errorf("importing signs: %w", err)
	}

	cmd.Printf("Imported %d sign(s)\n", len(signs))
	return nil
}
