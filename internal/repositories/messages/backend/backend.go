package messagesbackend

import (
	"context"
	"fmt"
	"io"

	"github.com/zestagio/timeline/internal/config"
	messagesrepo "github.com/zestagio/timeline/internal/repositories/messages"
	badgermessagesrepo "github.com/zestagio/timeline/internal/repositories/messages/badger"
	inmemmessagesrepo "github.com/zestagio/timeline/internal/repositories/messages/in-mem"
	"github.com/zestagio/timeline/internal/store"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverBadger   = "badger"
	DriverMemory   = "memory"
)

type Repository interface {
	Save(ctx context.Context, msg messagesrepo.Message) error
	GetMessageByID(ctx context.Context, id string) (*messagesrepo.Message, error)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var nopCloser = closerFunc(func() error { return nil })

// Open builds the messages repository for the configured driver.
// The returned closer releases the underlying storage.
func Open(ctx context.Context, cfg config.StoresConfig) (Repository, io.Closer, error) {
	switch cfg.Driver {
	case DriverPostgres:
		db, err := store.NewPSQLDatabase(store.NewPSQLOptions(
			cfg.PSQL.Addr,
			cfg.PSQL.Username,
			cfg.PSQL.Password,
			cfg.PSQL.Database,
			store.WithDebug(cfg.PSQL.Debug),
		))
		if err != nil {
			return nil, nil, fmt.Errorf("create psql database: %v", err)
		}
		return newSQLRepo(ctx, db)

	case DriverSQLite:
		db, err := store.NewSQLiteDatabase(store.NewSQLiteOptions(cfg.SQLite.Path))
		if err != nil {
			return nil, nil, fmt.Errorf("create sqlite database: %v", err)
		}
		return newSQLRepo(ctx, db)

	case DriverBadger:
		repo, err := badgermessagesrepo.New(badgermessagesrepo.NewOptions(badgermessagesrepo.WithDir(cfg.Badger.Dir)))
		if err != nil {
			return nil, nil, fmt.Errorf("create badger repo: %v", err)
		}
		return repo, repo, nil

	case DriverMemory:
		return inmemmessagesrepo.New(), nopCloser, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

func newSQLRepo(ctx context.Context, db *store.Database) (Repository, io.Closer, error) {
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate: %v", err)
	}

	repo, err := messagesrepo.New(messagesrepo.NewOptions(db))
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("create messages repo: %v", err)
	}
	return repo, db, nil
}
