// Package server wires configuration, storage, services and the gRPC transport
// together and runs them until the process is told to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gophposts/internal/dbx"
	"github.com/dmitrijs2005/gophposts/internal/logging"
	"github.com/dmitrijs2005/gophposts/internal/server/auth"
	"github.com/dmitrijs2005/gophposts/internal/server/config"
	"github.com/dmitrijs2005/gophposts/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gophposts/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophposts/internal/server/services"

	gs "github.com/dmitrijs2005/gophposts/internal/server/grpc"
)

const dbInitTimeout = 30 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *gs.GRPCServer
}

// NewApp validates c and builds every component. Any error here is a
// configuration or startup failure and the process should exit.
func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdout)
}

func newApp(c *config.Config, out io.Writer) (*App, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	logger := logging.NewJSONLogger(out, level)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	key, err := auth.NewSigningKey(c.SecretKey)
	if err != nil {
		return nil, err
	}

	app := &App{config: c, logger: logger}

	var (
		rm repomanager.RepositoryManager
		tx dbx.Transactor
		db dbx.DBTX
	)

	if c.DatabaseDSN == "" {
		logger.Warn(context.Background(), "no database DSN configured, using in-memory storage")
		store := memory.NewStore()
		rm = repomanager.NewInMemoryRepositoryManager(store)
		tx = store
	} else {
		sqlDB, err := openDB(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager()

		ctx, cancel := context.WithTimeout(context.Background(), dbInitTimeout)
		defer cancel()
		if err := rm.RunMigrations(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}

		app.db = sqlDB
		db = sqlDB
		tx = dbx.NewSQLTransactor(sqlDB, nil)
	}

	us := services.NewUserService(db, rm, auth.NewCodec(key), c.AccessTokenValidityDuration, time.Now, logger)
	ps := services.NewPostService(db, tx, rm, time.Now, logger)
	au := auth.NewAuthenticator(auth.NewVerifier(key), rm.Users(db).GetUserByLogin, time.Now, logger)

	app.server = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, us, ps, au)
	return app, nil
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbInitTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Received signal", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	err := app.server.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, "gRPC server error", "error", err.Error())
	}

	if app.db != nil {
		if cerr := app.db.Close(); cerr != nil {
			app.logger.Error(ctx, "db close error", "error", cerr.Error())
		}
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
