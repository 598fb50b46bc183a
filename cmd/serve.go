// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/lifedash/internal/auth"
	"github.com/manav03panchal/lifedash/internal/logging"
	"github.com/manav03panchal/lifedash/internal/output"
)

var (
	flagServeAddr  string
	flagServeDelay string
)

// serveCmd runs the mock auth endpoint.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the mock auth endpoint",
	Long: `Run the mock authentication endpoint used by 'lifedash login'.

POST /api/auth/login accepts {"email": "...", "password": "..."} and answers
after an artificial delay of at least one second. GET /healthz reports
server health.

Demo accounts:
  demo@example.com  / password123  (user)
  admin@example.com / admin123     (admin)

Examples:
  lifedash serve
  lifedash serve --addr 127.0.0.1:9000
  LIFEDASH_AUTH_DELAY=2s lifedash serve`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().StringVar(&flagServeDelay, "delay", "", "Artificial response delay, at least 1s")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := *ctx.Config
	if flagServeAddr != "" {
		cfg.Server.Addr = flagServeAddr
	}
	if flagServeDelay != "" {
		d, err := parseDelay(flagServeDelay)
		if err != nil {
			return err
		}
		cfg.Auth.Delay = d
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := auth.NewServer(cfg, Version)
	logging.Info("auth server starting", "addr", srv.Addr(), "delay", cfg.Auth.Delay.String())
	if ctx.IsCLI() {
		ctx.CLIFormatter().Title("Lifedash auth server")
		ctx.CLIFormatter().Muted("Listening on http://" + srv.Addr() + auth.LoginPath)
		rows := make([]output.TableRow, 0, len(auth.DefaultAccounts))
		for _, a := range auth.DefaultAccounts {
			rows = append(rows, output.TableRow{Columns: []string{a.User.Email, a.Password, string(a.User.Role)}})
		}
		ctx.CLIFormatter().Println()
		ctx.CLIFormatter().PrintTable([]string{"Email", "Password", "Role"}, rows)
	}

	if err := srv.ListenAndServe(runCtx); err != nil {
		return err
	}
	logging.Info("auth server stopped")
	return nil
}
