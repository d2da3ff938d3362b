package export

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/chrissnell/vacances/pkg/migrate"
	"github.com/chrissnell/vacances/pkg/vacances"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

const sqliteUpsert = `
INSERT INTO school_holidays (date, zone_a, zone_b, zone_c, name)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(date) DO UPDATE SET
	zone_a = excluded.zone_a,
	zone_b = excluded.zone_b,
	zone_c = excluded.zone_c,
	name   = excluded.name`

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}
	m := migrate.NewMigrator(db, migrate.NewFSProvider(migrations, "migrations", ""), nil)
	if err := m.MigrateUp(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate SQLite database: %w", err)
	}
	return db, nil
}

// WriteSQLite stores the day entries in the school_holidays table of the
// database at path, creating it when needed. Existing dates are overwritten.
func WriteSQLite(ctx context.Context, path string, h vacances.Holidays) error {
	db, err := openSQLite(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, sqliteUpsert)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, e := range vacances.Sorted(h) {
		if _, err := stmt.ExecContext(ctx, e.Date.String(), e.ZoneA, e.ZoneB, e.ZoneC, e.Name); err != nil {
			return fmt.Errorf("failed to store %s: %w", e.Date, err)
		}
	}

	return tx.Commit()
}

// ReadSQLite loads the day entries previously stored with WriteSQLite
func ReadSQLite(ctx context.Context, path string) (vacances.Holidays, error) {
	db, err := openSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT date, zone_a, zone_b, zone_c, name FROM school_holidays ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to query school_holidays: %w", err)
	}
	defer rows.Close()

	h := vacances.Holidays{}
	for rows.Next() {
		var (
			date string
			e    vacances.DayEntry
		)
		if err := rows.Scan(&date, &e.ZoneA, &e.ZoneB, &e.ZoneC, &e.Name); err != nil {
			return nil, fmt.Errorf("failed to scan school_holidays row: %w", err)
		}
		d, err := vacances.ParseDate(date)
		if err != nil {
			return nil, err
		}
		e.Date = d
		h[d] = e
	}
	return h, rows.Err()
}
