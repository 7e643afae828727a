package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/stellarburgers/internal/client/client"
	"github.com/dmitrijs2005/stellarburgers/internal/client/config"
	"github.com/dmitrijs2005/stellarburgers/internal/client/feed"
	"github.com/dmitrijs2005/stellarburgers/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/stellarburgers/internal/client/session"
	"github.com/dmitrijs2005/stellarburgers/internal/client/store"
	"github.com/dmitrijs2005/stellarburgers/internal/logging"
	"github.com/redis/go-redis/v9"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	store   *store.Store
	watcher *feed.Watcher
	log     logging.Logger
	closers []io.Closer
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp builds the whole client graph from cfg, talking to the terminal.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	return newApp(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
}

func newApp(ctx context.Context, cfg *config.Config, in io.Reader, out, logOut io.Writer) (*App, error) {
	log := logging.NewTextLogger(logOut, cfg.LogLevel)

	a := &App{config: cfg, log: log, reader: bufio.NewReader(in), out: out}

	repo, err := a.openStorage(ctx)
	if err != nil {
		log.Error(ctx, "error initializing storage", "backend", cfg.StorageBackend, "error", err)
		return nil, err
	}

	cookies, err := session.NewCookieStore(ctx, cfg.APIBaseURL, repo)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	creds := session.NewCredentials(cookies, repo)
	api := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, creds)

	a.store = store.New(api, cookies, repo, log)
	a.watcher = feed.NewWatcher(cfg.FeedWSURL, a.store, log, cfg.FeedReconnectInterval)
	return a, nil
}

func (a *App) openStorage(ctx context.Context) (metadata.Repository, error) {
	switch a.config.StorageBackend {
	case config.BackendSQLite:
		db, err := client.InitDatabase(ctx, a.config.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db)
		return metadata.NewSQLiteRepository(db), nil

	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: a.config.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, err
		}
		a.closers = append(a.closers, rdb)
		return metadata.NewRedisRepository(rdb, ""), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", a.config.StorageBackend)
}

// Run bootstraps the store, starts the live feed and blocks in the REPL until
// the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.println("Welcome to Stellar Burgers CLI (type 'help' for commands)")

	if err := a.store.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "bootstrap interrupted", "error", err)
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := a.watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.log.Warn(ctx, "feed watcher stopped", "error", err)
		}
	}()

	runREPL(ctx, a, a.getStatus, a.reader)

	cancel()
	<-done
	a.store.Wait()
}

// Close releases the storage backend.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i].Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return store.SelectIsAuthenticated(a.store.State())
}

func (a *App) getStatus() string {
	s := a.store.State()
	items := store.SelectConstructorItems(s)
	n := len(items.Ingredients)
	if items.Bun != nil {
		n++
	}
	status := fmt.Sprintf("%d items", n)
	if u := store.SelectUser(s); u != nil && store.SelectIsAuthenticated(s) {
		status = u.Name + " " + status
	}
	return "(" + status + ")"
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
