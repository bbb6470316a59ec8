package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/lemma/internal/server"
)

func serveCmd(e *env) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the checkers as a JSON API",
		Long: `Start an HTTP server exposing the checkers:

  GET  /           API index
  GET  /theorem    theorem statement and references
  POST /verify     check a module of the given rank
  GET  /assprimes  associated primes verification
  GET  /health     liveness

Stops gracefully on SIGINT or SIGTERM.

Example:
  lemma serve --addr :8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = e.cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Options{
				Addr:         addr,
				Ring:         e.cfg.Ring,
				PrimesModule: e.cfg.Fixtures.PrimesModule.Name,
				Logger:       e.log,
			})
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :3000)")

	return cmd
}
