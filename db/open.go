package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. databaseType selects the
// driver: "postgres" (lib/pq) or "sqlite" (modernc.org/sqlite).
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	var driver string
	switch databaseType {
	case "postgres":
		driver = "postgres"
	case "sqlite":
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}

	conn, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return conn, nil
}

// IsUniqueViolation reports whether err is a unique-constraint violation
// from either supported driver. This is the authoritative signal that a
// concurrent duplicate insert lost the race.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	// lib/pq: class 23, unique_violation
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	// modernc.org/sqlite surfaces SQLITE_CONSTRAINT_UNIQUE as a plain
	// error string
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
