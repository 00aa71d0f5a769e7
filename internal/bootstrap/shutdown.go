package bootstrap

import (
	"context"
	"log/slog"

	"github.com/R-Gerard/Roguelike-sub001/internal/server"
)

// GracefulShutdown stops the debug server. Errors are logged; there is
// nothing left to flush after it.
func GracefulShutdown(ctx context.Context, srv *server.Server) {
	if srv == nil {
		return
	}
	slog.Info(LogMsgShuttingDownServer)
	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
		return
	}
	slog.Info(LogMsgServerStopped)
}
