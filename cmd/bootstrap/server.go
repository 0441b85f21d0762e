package bootstrap

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var EngineModule = fx.Module("engine",
	fx.Provide(func() *gin.Engine {
		return gin.New()
	}),
)

var ServerModule = fx.Module("server",
	fx.Invoke(StartServer),
)

// StartServer binds the listener during OnStart so a busy port fails startup,
// then serves in the background until OnStop drains in-flight requests.
func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.Serve(ln); err != nil && !errs.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped unexpectedly", "error", err.Error())
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
