// Package cli implements the cuneify command line interface with cobra.
// Commands talk to the core exclusively through the driving ports; the
// concrete services are injected once at startup via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tpgillam/cuneifyplus/internal/adapters/driven/converter/table"
	"github.com/tpgillam/cuneifyplus/internal/core/ports/driven"
	"github.com/tpgillam/cuneifyplus/internal/core/ports/driving"
	"github.com/tpgillam/cuneifyplus/internal/logger"
)

// version is stamped by the build; overridden via SetVersion.
var version = "dev"

var verbose bool

// Injected service implementations.
var (
	cuneifyService  driving.CuneifyService
	signListService driving.SignListService
	signStore       driven.SignStore
	signTable       *table.Converter
)

var rootCmd = &cobra.Command{
	Use:   "cuneify",
	Short: "Convert transliterated cuneiform to glyphs",
	Long: `Cuneify converts Latin-alphabet transliterations of cuneiform
texts into cuneiform glyphs, either as free text or as ATF documents
where each transliteration line gains a synthesized comment line with
its glyphs.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}

// Services aggregates everything the commands need.
// This provides a single injection point for dependency injection.
type Services struct {
	// Cuneify renders transliteration as glyphs. Required.
	Cuneify driving.CuneifyService

	// SignList builds glyph inventories. Optional.
	SignList driving.SignListService

	// SignStore backs the cache commands. Optional.
	SignStore driven.SignStore

	// SignTable is the file-backed sign table, when one is configured.
	// The serve command watches it for changes. Optional.
	SignTable *table.Converter
}

// SetServices injects the service implementations used by all commands.
func SetServices(s Services) {
	cuneifyService = s.Cuneify
	signListService = s.SignList
	signStore = s.SignStore
	signTable = s.SignTable
}

// SetVersion overrides the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
