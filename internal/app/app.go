package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/sangkips/storefront-admin/internal/config"
	"github.com/sangkips/storefront-admin/internal/domain/repository"
	"github.com/sangkips/storefront-admin/internal/presentation/http/middleware"
	"github.com/sangkips/storefront-admin/internal/worker"
)

// Module wires the HTTP server, the maintenance worker and their lifecycle.
var Module = fx.Options(
	fx.Provide(
		newHTTPServer,
		newJanitor,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort("", p.Config.App.Port),
		Handler:           p.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

type janitorParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	Keys        repository.IdempotencyRepository
	RateLimiter *middleware.ClientRateLimiter
}

func newJanitor(p janitorParams) *worker.Janitor {
	return worker.NewJanitor(p.Keys, p.RateLimiter, p.Config.Idempotency.PurgeInterval, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Janitor    *worker.Janitor
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting storefront admin",
				slog.String("addr", p.Server.Addr),
				slog.String("env", p.Config.App.Env),
			)
			p.Janitor.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Janitor.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.App.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("storefront admin stopped")
			return nil
		},
	})
}
