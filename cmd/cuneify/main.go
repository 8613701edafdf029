// Command cuneify converts transliterated cuneiform texts into glyphs.
// It wires the adapters (sign cache, converter, configuration) into the
// core services and hands control to the CLI.
package main

import (
	"fmt"
	"os"

	"github.com/tpgillam/cuneifyplus/internal/adapters/driven/config/file"
	"github.com/tpgillam/cuneifyplus/internal/adapters/driven/converter/cached"
	"github.com/tpgillam/cuneifyplus/internal/adapters/driven/converter/table"
	"github.com/tpgillam/cuneifyplus/internal/adapters/driven/converter/toolbin"
	"github.com/tpgillam/cuneifyplus/internal/adapters/driven/storage/sqlite"
	"github.com/tpgillam/cuneifyplus/internal/adapters/driving/cli"
	"github.com/tpgillam/cuneifyplus/internal/core/ports/driven"
	"github.com/tpgillam/cuneifyplus/internal/core/services"
)

// version is overridden at build time via -ldflags.
var version = "0.3.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	// CUNEIFY_CONFIG_DIR overrides ~/.cuneify, mainly for tests.
	cfg, err := file.NewConfigStore(os.Getenv("CUNEIFY_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store, err := sqlite.NewStore(cfg.GetString("data.dir"))
	if err != nil {
		return fmt.Errorf("opening sign cache: %w", err)
	}
	defer store.Close()

	// A configured sign file takes precedence over the external tool.
	var base driven.Converter
	var signTable *table.Converter
	if path := cfg.GetString("signs.file"); path != "" {
		signTable, err = table.Load(path)
		if err != nil {
			return fmt.Errorf("loading sign table: %w", err)
		}
		base = signTable
	} else {
		bin := cfg.GetString("converter.bin")
		if bin == "" {
			bin = "cuneify"
		}
		var opts []toolbin.Option
		if font := cfg.GetString("converter.font"); font != "" {
			opts = append(opts, toolbin.WithFont(font))
		}
		base = toolbin.New(bin, opts...)
	}

	var cacheOpts []cached.Option
	if cfg.GetBool("cache.read_only") {
		cacheOpts = append(cacheOpts, cached.ReadOnly())
	}
	converter := cached.New(base, store, cacheOpts...)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Cuneify:   services.NewCuneifyService(converter),
		SignList:  services.NewSignListService(converter),
		SignStore: store,
		SignTable: signTable,
	})

	return cli.Execute()
}
