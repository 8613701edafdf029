package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tpgillam/cuneifyplus/internal/adapters/driving/httpapi"
	"github.com/tpgillam/cuneifyplus/internal/logger"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP conversion front end",
	Long: `Starts a local HTTP server exposing the converter.

POST /cuneify converts the transliteration in the request body and
returns UTF-8 plain text. Query parameters: atf=1 for ATF documents,
show=1 for aligned transliteration rows, unrecognised=<s> to override
the indicator for unmapped signs. GET /healthz reports liveness.

The server holds no per-request state; when a file-backed sign table is
configured it is re-read automatically whenever the file changes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8051, "port to listen on (0 = random)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if cuneifyService == nil {
		return errors.New("cuneify service not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Hot-reload the sign table while the server runs.
	if signTable != nil {
		go func() {
			if err := signTable.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("sign table watch stopped: %v", err)
			}
		}()
	}

	srv := httpapi.NewServer(servePort, cuneifyService)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	cmd.Printf("Listening on http://127.0.0.1:%d\n", srv.Port())

	<-ctx.Done()
	cmd.Println("Shutting down...")
	return srv.Stop()
}
