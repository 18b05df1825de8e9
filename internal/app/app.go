package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"example.com/bc-solo/internal/config"
	"example.com/bc-solo/internal/console"
	"example.com/bc-solo/internal/game"
	"example.com/bc-solo/internal/store"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// Незаконченная партия хранится под фиксированным ключом: у консольной
// игры нет второй параллельной партии.
const currentSessionKey = "current"

type App struct {
	cfg config.Config
	log *slog.Logger

	db  *pgxpool.Pool
	rdb *redis.Client

	sessions game.SessionPersistence // nil => резюм выключен
	results  *store.ResultsStore     // nil => результаты не пишем

	session *game.Session
	loop    *console.Loop
	started time.Time
}

type Options struct {
	In     io.Reader        // optional; default os.Stdin
	Out    io.Writer        // optional; default os.Stdout
	Digits game.DigitSource // optional; default game.DefaultSource()

	// Sessions overrides the snapshot store regardless of Redis config
	// (used by tests).
	Sessions game.SessionPersistence
}

func New(ctx context.Context, cfg config.Config, log *slog.Logger, opts Options) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Digits == nil {
		opts.Digits = game.DefaultSource()
	}

	a := &App{cfg: cfg, log: log}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// --- Redis (опционально) ---
	if cfg.Redis.Addr != "" {
		a.rdb = redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err := a.rdb.Ping(pingCtx).Err(); err != nil {
			_ = a.rdb.Close()
			return nil, fmt.Errorf("redis ping (%s db=%d): %w", cfg.Redis.Addr, cfg.Redis.DB, err)
		}
		a.sessions = game.NewRedisSessionStore(a.rdb, cfg.Redis.SessionTTL)
	}
	if opts.Sessions != nil {
		a.sessions = opts.Sessions
	}

	// --- Postgres (опционально) ---
	if cfg.Postgres.URL != "" {
		dbpool, err := pgxpool.New(ctx, cfg.Postgres.URL)
		if err != nil {
			_ = a.Close(ctx)
			return nil, fmt.Errorf("pgxpool: %w", err)
		}
		if err := dbpool.Ping(pingCtx); err != nil {
			dbpool.Close()
			_ = a.Close(ctx)
			return nil, fmt.Errorf("postgres ping: %w", err)
		}
		a.db = dbpool
		a.results = store.NewResultsStore(dbpool)
	}

	a.session = a.loadOrNewSession(ctx, opts.Digits)
	a.started = time.Now()

	a.loop = console.NewLoop(a.session, opts.In, opts.Out)
	a.loop.OnStep(func(out game.Outcome) {
		if a.sessions == nil {
			return
		}
		if err := a.sessions.Save(ctx, currentSessionKey, a.session.Snapshot()); err != nil {
			a.log.Warn("save session snapshot", "err", err)
		}
	})

	return a, nil
}

// loadOrNewSession resumes an unfinished saved game when the store has
// one, otherwise starts fresh. A corrupt snapshot is logged and dropped,
// never fatal.
func (a *App) loadOrNewSession(ctx context.Context, digits game.DigitSource) *game.Session {
	if a.sessions != nil {
		snap, found, err := a.sessions.Load(ctx, currentSessionKey)
		if err != nil {
			a.log.Warn("load session snapshot", "err", err)
		} else if found {
			s, err := game.RestoreSession(snap)
			if err != nil {
				a.log.Warn("restore session", "err", err)
			} else if s.State() == game.Playing {
				a.log.Info("resuming session", "session", s.ID(), "attempts", s.Attempts())
				return s
			}
		}
	}
	return game.NewSession(uuid.NewString(), game.NewSecret(digits))
}

// Run plays the game to completion. Returns nil on a win; the caller
// decides what a cancellation or an input failure means for the process.
func (a *App) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)

	a.log.Info("game starting", "session", a.session.ID(), "attempts", a.session.Attempts())

	g.Go(func() error {
		defer cancel()
		return a.loop.Run(gctx)
	})

	// страховка на прерывание: сохраняем незаконченную партию
	g.Go(func() error {
		<-gctx.Done()
		if a.sessions != nil && a.session.State() == game.Playing {
			saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer saveCancel()
			if err := a.sessions.Save(saveCtx, currentSessionKey, a.session.Snapshot()); err != nil {
				a.log.Warn("save session snapshot", "err", err)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return a.finish(ctx)
}

// finish runs only after a win: record the result, drop the snapshot.
func (a *App) finish(ctx context.Context) error {
	if a.results != nil {
		res := store.GameResult{
			SessionID:  a.session.ID(),
			Attempts:   a.session.Attempts(),
			StartedAt:  a.started,
			FinishedAt: time.Now(),
		}
		if err := a.results.Record(ctx, res); err != nil {
			a.log.Warn("record game result", "err", err)
		}
		if recent, err := a.results.Recent(ctx, 5); err != nil {
			a.log.Warn("load recent results", "err", err)
		} else {
			a.log.Info("recent games", "count", len(recent))
		}
	}
	if a.sessions != nil {
		if err := a.sessions.Delete(ctx, currentSessionKey); err != nil {
			a.log.Warn("delete session snapshot", "err", err)
		}
	}
	a.log.Info("game won", "session", a.session.ID(), "attempts", a.session.Attempts())
	return nil
}

func (a *App) Close(ctx context.Context) error {
	// best-effort
	if a.db != nil {
		a.db.Close()
	}
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	return nil
}
