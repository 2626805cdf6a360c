package bootstrap

import (
	"context"
	"log/slog"
)

// GracefulShutdown stops the app in dependency order:
// 1. HTTP server (stop accepting new requests, end open SSE streams)
// 2. Scheduler and worker pool (no more growth ticks)
// 3. SSE hub (already stopped when a server was running)
// 4. Event publisher (flush pending retries)
// 5. Discord, storage and tracing
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, app *App) {
	slog.Info(LogMsgShuttingDownServer)

	if app.Server != nil {
		if err := app.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgStoppingBackgroundJobs)
	if app.Scheduler != nil {
		app.Scheduler.Stop()
	}
	if app.Pool != nil {
		app.Pool.Stop()
	}
	if app.Hub != nil {
		app.Hub.Stop()
	}

	if app.Publisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := app.Publisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if app.Notifier != nil {
		if err := app.Notifier.Close(); err != nil {
			slog.Error(LogMsgDiscordCloseFailed, "error", err)
		}
	}

	if app.Storage != nil {
		if err := app.Storage.Close(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	if app.shutdownTracing != nil {
		if err := app.shutdownTracing(ctx); err != nil {
			slog.Error(LogMsgTracingShutdownFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
