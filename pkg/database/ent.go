package database

import (
	"context"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/Alijeyrad/notifications/config"
	"github.com/Alijeyrad/notifications/internal/repo"
)

// NewEntClient creates a new Ent client from central config
func NewEntClient(cfg config.DatabaseConfig) (*repo.Client, error) {
	return NewEntClientFromConfig(FromCentralConfig(cfg))
}

// NewEntClientFromConfig creates a new Ent client from package Config
func NewEntClientFromConfig(cfg Config) (*repo.Client, error) {
	drv, err := OpenDriver(cfg)
	if err != nil {
		return nil, err
	}

	opts := []repo.Option{repo.Driver(drv)}
	if cfg.Debug {
		opts = append(opts, repo.Debug(), repo.Log(func(v ...any) {
			slog.Debug("sql", "query", fmt.Sprint(v...))
		}))
	}
	return repo.NewClient(opts...), nil
}

// OpenDriver opens the database and wraps it in an ent SQL driver of the
// matching dialect.
func OpenDriver(cfg Config) (*entsql.Driver, error) {
	db, err := openSQLDB(cfg)
	if err != nil {
		return nil, err
	}

	name := dialect.Postgres
	if cfg.driver() == DriverSQLite {
		name = dialect.SQLite
	}
	return entsql.OpenDB(name, db), nil
}

func MigrateEnt(ctx context.Context, client *repo.Client) error {
	return client.Schema.Create(ctx)
}
