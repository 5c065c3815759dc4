package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/khanglvm/gift-inventory/internal/web"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the 'serve' command for running the web form.
func NewServeCmd(app *App) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the questionnaire over HTTP",
		Long: `Start an HTTP server showing the questionnaire in a browser.

Each browser session gets its own form/results navigation. Submissions are
appended to the response file one at a time. Routes:
  GET  /             the form, or the results after submitting
  POST /submit       store the answers
  POST /back         return to the form
  GET  /api/results  results as JSON
  GET  /healthz      liveness check
  GET  /metrics      Prometheus metrics

Stops gracefully on SIGINT/SIGTERM.`,
		Example: `  gift-inventory serve
  gift-inventory serve --listen 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, s, err := app.service()
			if err != nil {
				return err
			}
			if listen == "" {
				listen = s.Listen
			}

			srv, err := web.NewServer(svc, app.logger)
			if err != nil {
				return fmt.Errorf("failed to create web server: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, app.logger, listen, srv.Handler())
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "Listen address (default from settings, :8080)")

	return cmd
}

// runServe serves handler on addr until ctx is cancelled, then shuts down
// gracefully.
func runServe(ctx context.Context, logger *zap.Logger, addr string, handler http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Serving questionnaire", zap.String("addr", ln.Addr().String()))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error during shutdown: %w", err)
		}
		logger.Info("Shutdown complete")
		return nil
	})

	return g.Wait()
}
