// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citynav/server"
)

const defaultAddr = ":8080"

func newServeCmd(a *app) *cobra.Command {
	var (
		addr     string
		maxPaths int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the city and path queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = getEnv(envAddr, defaultAddr)
			}
			if maxPaths < 0 {
				return fmt.Errorf("--max-paths must be ≥ 0, got %d", maxPaths)
			}
			g, err := a.buildCity()
			if err != nil {
				return err
			}

			log := a.log.WithField("component", "server")
			h := server.NewHandler(g, server.WithLogger(log), server.WithMaxPaths(maxPaths))
			srv := server.NewHTTPServer(addr, server.NewRouter(h))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.WithField("addr", addr).Info("server listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			log.Info("server exited")

			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address (default: "+envAddr+" or :8080)")
	cmd.Flags().IntVar(&maxPaths, "max-paths", 50000, "per-request path cap (0 = no limit)")

	return cmd
}
