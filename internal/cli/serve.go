// serve.go implements the "eqtutor serve" command, an HTTP API over the
// same solve and verify flow as the TUI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/eqtutor/eqtutor/internal/api"
	"github.com/eqtutor/eqtutor/internal/celebrate"
	"github.com/eqtutor/eqtutor/internal/config"
	"github.com/eqtutor/eqtutor/internal/equation"
	"github.com/eqtutor/eqtutor/internal/log"
	"github.com/eqtutor/eqtutor/internal/middleware"
	"github.com/eqtutor/eqtutor/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve POST /api/solve, POST /api/verify and GET /api/examples.
The listen address comes from server.addr in .eqtutor/config.yaml, the
EQTUTOR_ADDR environment variable, or --addr.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var addrFlag string

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	env, err := setup()
	if err != nil {
		return err
	}
	if addrFlag != "" {
		env.cfg.Server.Addr = addrFlag
	}

	store := session.NewStore()
	srv := &http.Server{
		Addr:         env.cfg.Server.Addr,
		Handler:      newRouter(env.cfg, store, env.logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ttl := time.Duration(env.cfg.Server.SessionTTL) * time.Minute
	go pruneSessions(ctx, store, ttl)
	slog.Info("Session pruning started", "session_ttl", ttl.String())

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listening on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	slog.Info("Server stopped successfully")
	return nil
}

// newRouter builds the HTTP handler tree.
func newRouter(cfg *config.Config, store *session.Store, logger log.Appender) http.Handler {
	mode := equation.GuessInteger
	if cfg.Guess.AllowFractions {
		mode = equation.GuessExact
	}
	h := api.NewHandler(store, logger, celebrate.NewPicker(cfg.Celebration.Messages, nil), mode)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	h.RegisterRoutes(r)
	return r
}

// pruneSessions drops idle sessions until ctx is cancelled.
func pruneSessions(ctx context.Context, store *session.Store, ttl time.Duration) {
	interval := ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.PruneIdle(ttl); n > 0 {
				slog.Info("Pruned idle sessions", "count", n, "remaining", store.Len())
			}
		}
	}
}
