package deps

import (
	"context"
	"log"
	"time"

	"github.com/bwise1/georemind/config"
	"github.com/bwise1/georemind/internal/db"
	"github.com/bwise1/georemind/internal/geofence"
	"github.com/bwise1/georemind/internal/notify"
	"github.com/bwise1/georemind/internal/reminders"
	"github.com/bwise1/georemind/util/websockets"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependencies struct {
	DB        *db.DB
	WebSocket *websockets.WebSocketManager
	Repo      *reminders.Repository
	Geofence  *geofence.Engine
	Notifier  notify.Notifier
}

// New wires the dependency graph with explicit constructors: store →
// repository → transition handler → engine, with the WebSocket hub feeding
// positions into the engine and carrying alerts back out.
func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	store := reminders.NewPostgresStore(database.Pool())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.EnsureSchema(ctx); err != nil {
		log.Panicln("failed to apply reminders schema", "error", err)
	}

	repo := reminders.NewRepository(store)

	websocket := websockets.NewWebSocketManager()
	notifier := notify.NewWebSocketNotifier(websocket)
	handler := geofence.NewTransitionService(repo, notifier)
	engine := geofence.NewEngine(handler)
	websocket.SetPositionSink(engine)

	deps := Dependencies{
		DB:        database,
		WebSocket: websocket,
		Repo:      repo,
		Geofence:  engine,
		Notifier:  notifier,
	}
	return &deps
}

func (d *Dependencies) Pool() *pgxpool.Pool {
	return d.DB.Pool()
}
