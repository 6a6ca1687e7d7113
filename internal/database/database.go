package database

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"ms-moviebooking/internal/models"
)

// Open connects to the SQLite store. The default DSN is ":memory:",
// so all data lives for the process lifetime only and every restart
// starts from the seed set.
func Open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// An in-memory SQLite database exists per connection; cap the pool
	// at one so every query sees the same store.
	sqldb.SetMaxOpenConns(1)

	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// Migrate creates the schema.
func Migrate(ctx context.Context, db *bun.DB) error {
	for _, model := range tables() {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func tables() []interface{} {
	return []interface{}{
		(*models.Movie)(nil),
		(*models.Theatre)(nil),
		(*models.Booking)(nil),
		(*models.FoodItem)(nil),
	}
}
