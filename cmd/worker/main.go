package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/solarbom/pkg/app"
	"github.com/ghuser/solarbom/pkg/cache"
	"github.com/ghuser/solarbom/pkg/config"
	"github.com/ghuser/solarbom/pkg/database"
	"github.com/ghuser/solarbom/pkg/events"
	"github.com/ghuser/solarbom/pkg/logger"
	"github.com/ghuser/solarbom/pkg/telemetry"
	listEvents "github.com/ghuser/solarbom/services/materials/domain/events"
	"github.com/ghuser/solarbom/services/materials/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Cfg:      cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	staleCtx, cancelStale := context.WithCancel(ctx)
	go runStaleDocumentSweep(staleCtx, appConfig)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelStale()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		listEvents.TopicListCreated:      handleListCreated(a),
		listEvents.TopicDocumentRendered: handleDocumentRendered(a),
	}

	registered := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		registered = append(registered, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", registered)
	return nil
}

// handleListCreated returns a handler for materials.list_created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so subsequent GetByID calls are served
// from cache. The event carries only identifiers, so the full record is
// fetched from Postgres before caching.
func handleListCreated(a *app.Application) func(context.Context, *message.Message) error {
	repo := postgres.NewListRepository(a.Db, a.EventBus)
	listCache := cache.NewListCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt listEvents.ListCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		list, err := repo.GetByID(ctx, evt.ListID)
		if err != nil {
			// The list may already be deleted; nothing to warm.
			a.Logger.WarnContext(ctx, "list fetch failed for list_created",
				"list_id", evt.ListID, "error", err)
			return nil
		}

		if err := listCache.Set(ctx, list); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for list_created",
				"list_id", evt.ListID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"list_id", evt.ListID, "client", evt.Client, "items", evt.ItemCount)
		}

		return nil
	}
}

// handleDocumentRendered returns a handler for materials.document_rendered
// events. Re-warms the cache so the cached copy carries the document path.
func handleDocumentRendered(a *app.Application) func(context.Context, *message.Message) error {
	repo := postgres.NewListRepository(a.Db, a.EventBus)
	listCache := cache.NewListCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt listEvents.DocumentRenderedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		list, err := repo.GetByID(ctx, evt.ListID)
		if err != nil {
			a.Logger.WarnContext(ctx, "list fetch failed for document_rendered",
				"list_id", evt.ListID, "error", err)
			return nil
		}

		if err := listCache.Set(ctx, list); err != nil {
			a.Logger.WarnContext(ctx, "cache refresh failed for document_rendered",
				"list_id", evt.ListID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache refreshed with document path",
				"list_id", evt.ListID, "path", evt.DocumentPath)
		}

		return nil
	}
}

// runStaleDocumentSweep periodically logs document files on disk that no
// longer have a backing record. Detection only; removal stays a manual
// operation so a bad query can never mass-delete customer documents.
func runStaleDocumentSweep(ctx context.Context, a *app.Application) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	repo := postgres.NewListRepository(a.Db, a.EventBus)

	for {
		select {
		case <-ctx.Done():
			a.Logger.Info("stale document sweep shutting down")
			return
		case <-ticker.C:
			lists, err := repo.FindAll(ctx)
			if err != nil {
				a.Logger.WarnContext(ctx, "stale sweep: list query failed", "error", err)
				continue
			}
			known := make(map[string]bool, len(lists))
			for _, l := range lists {
				if l.DocumentPath != "" {
					known[l.DocumentPath] = true
				}
			}
			reportStaleDocuments(ctx, a, known)
		}
	}
}

// reportStaleDocuments walks the documents directory and logs files not
// referenced by any record.
func reportStaleDocuments(ctx context.Context, a *app.Application, known map[string]bool) {
	entries, err := os.ReadDir(a.Cfg.DocumentsDir)
	if err != nil {
		a.Logger.WarnContext(ctx, "stale sweep: read documents dir failed", "error", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path, err := absDocumentPath(a.Cfg.DocumentsDir, e.Name())
		if err != nil {
			continue
		}
		if !known[path] {
			a.Logger.InfoContext(ctx, "stale document found", "path", path)
		}
	}
}

// absDocumentPath resolves a directory entry to the absolute form stored in
// list records, so map lookups compare like with like.
func absDocumentPath(dir, name string) (string, error) {
	return filepath.Abs(filepath.Join(dir, name))
}
