package app

import (
	"github.com/ghuser/solarbom/pkg/cache"
	"github.com/ghuser/solarbom/pkg/config"
	"github.com/ghuser/solarbom/pkg/database"
	"github.com/ghuser/solarbom/pkg/events"
	"github.com/ghuser/solarbom/pkg/flash"
	"github.com/ghuser/solarbom/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route-registration calls during server initialization.
//
// Cfg is the immutable startup configuration — company identity and file
// locations reach the materials service through it, never through globals.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "rendering document", "list_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Cfg      *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
	Flash    *flash.Store // Redis-backed flash notices; nil in worker process
}
