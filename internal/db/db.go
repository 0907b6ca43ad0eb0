package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// sqlitePragmas are connection options every SQLite handle needs. SQLite
// ships with foreign_keys OFF per connection, which would make the cascade
// and reference constraints in the schema inert, so the pragma cannot be
// left to the operator's connection string.
var sqlitePragmas = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=journal_mode(WAL)",
}

// sqliteDSN appends the required pragmas to a connection string unless the
// operator already set them.
func sqliteDSN(connection string) string {
	for _, pragma := range sqlitePragmas {
		key := pragma[:strings.Index(pragma, "(")]
		if strings.Contains(connection, key) {
			continue
		}
		if strings.Contains(connection, "?") {
			connection += "&" + pragma
		} else {
			connection += "?" + pragma
		}
	}
	return connection
}

func Init(driver, connection string) (*sqlx.DB, error) {
	// SQLite: create data directory if needed
	if driver == "sqlite" {
		dir := filepath.Dir(connection)
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}

		connection = sqliteDSN(connection)
	}

	db, err := sqlx.Connect(driver, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("database connected", "driver", driver)

	return db, nil
}

func Close(db *sqlx.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}
