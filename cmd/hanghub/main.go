package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	charmlog "charm.land/log/v2"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	bolt "go.etcd.io/bbolt"
	"golang.org/x/sync/errgroup"

	"github.com/nakamauwu/hanghub/cockroach"
	"github.com/nakamauwu/hanghub/cockroach/migrator"
	"github.com/nakamauwu/hanghub/config"
	"github.com/nakamauwu/hanghub/kvdb"
	"github.com/nakamauwu/hanghub/pubsub"
	"github.com/nakamauwu/hanghub/service"
	transporthttp "github.com/nakamauwu/hanghub/transport/http"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	errLogger := slog.New(charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
	}))
	infoLogger := slog.New(charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		ReportTimestamp: true,
	}))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg.DatabaseURL, infoLogger)
	if err != nil {
		return err
	}

	defer closeStore()

	var ps service.PubSub = pubsub.NewInProcess()
	if cfg.NATSURL != "" {
		conn, err := nats.Connect(cfg.NATSURL, nats.Name("hanghub"))
		if err != nil {
			return fmt.Errorf("connect nats: %w", err)
		}

		defer conn.Close()

		ps = pubsub.NewNATS(conn)
		infoLogger.Info("connected to nats", "url", conn.ConnectedUrlRedacted())
	}

	svc := service.New(&service.Config{
		Store:             store,
		PubSub:            ps,
		BaseCtx:           context.Background(),
		BackgroundTimeout: cfg.BackgroundTimeout,
	})

	go func() {
		for err := range svc.Errs() {
			errLogger.Error("service error", "error", err)
		}
	}()

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, level.AllowInfo())
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC, "component", "http")

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: transporthttp.New(svc, logger, transporthttp.Options{
			RequestTimeout:  cfg.RequestTimeout,
			CreateRoomRate:  cfg.CreateRoomRate,
			CreateRoomBurst: cfg.CreateRoomBurst,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		infoLogger.Info("starting hanghub server", "url", fmt.Sprintf("http://localhost:%d", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("start hanghub server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		infoLogger.Info("shutting down hanghub server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown hanghub server: %w", err)
		}
		return nil
	})

	err = g.Wait()

	_ = svc.Close()

	return err
}

// openStore picks the room store from the database URL scheme.
func openStore(ctx context.Context, databaseURL string, infoLogger *slog.Logger) (service.Store, func(), error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse database url: %w", err)
	}

	switch u.Scheme {
	case "kvdb":
		path := strings.TrimPrefix(databaseURL, "kvdb://")
		if path == "" {
			return nil, nil, errors.New("kvdb database url is missing a file path")
		}

		db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
		if err != nil {
			return nil, nil, fmt.Errorf("open bbolt database: %w", err)
		}

		store, err := kvdb.NewRoomStore(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		infoLogger.Info("using embedded room store", "path", path)
		return store, func() { _ = db.Close() }, nil
	case "postgres", "postgresql":
		dbPool, err := pgxpool.New(ctx, databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open cockroach connection pool: %w", err)
		}

		if err := dbPool.Ping(ctx); err != nil {
			dbPool.Close()
			return nil, nil, fmt.Errorf("ping cockroach: %w", err)
		}

		migrationStart := time.Now()
		infoLogger.Info("starting cockroach migrations")

		applied, err := migrator.Migrate(ctx, dbPool, cockroach.MigrationsFS)
		if err != nil {
			dbPool.Close()
			return nil, nil, fmt.Errorf("migrate cockroach schema: %w", err)
		}

		infoLogger.Info("finished cockroach migrations", "applied", len(applied), "took", time.Since(migrationStart))
		return cockroach.New(dbPool), dbPool.Close, nil
	}

	return nil, nil, fmt.Errorf("unsupported database url scheme %q", u.Scheme)
}
