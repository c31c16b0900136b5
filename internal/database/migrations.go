package database

import (
	"embed"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// migration pairs a schema version with its SQL payload. Version and name
// come from the NNN_name.sql filename.
type migration struct {
	version int
	name    string
	sql     string
}

// MigrationStatus reports one known migration and whether it has been applied.
type MigrationStatus struct {
	Version int
	Name    string
	Applied bool
}

// Migrate applies every pending migration in version order, each inside its
// own transaction, recording progress in schema_migrations. Already-applied
// versions are skipped, so running it at startup is safe.
func (db *DB) Migrate(logger *log.Logger) error {
	if err := db.ensureVersionTable(); err != nil {
		return err
	}

	applied, err := db.appliedVersions()
	if err != nil {
		return err
	}

	migrations, err := loadMigrations()
	if err != nil {
		return err
	}

	for _, mig := range migrations {
		if applied[mig.version] {
			continue
		}

		logger.Printf("applying migration %03d_%s", mig.version, mig.name)

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("migration %d: begin: %w", mig.version, err)
		}

		if _, err := tx.Exec(mig.sql); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", mig.version, mig.name, err)
		}

		if _, err := tx.Exec(
			`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
			mig.version, mig.name,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d: record version: %w", mig.version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migration %d: commit: %w", mig.version, err)
		}
	}

	return nil
}

// MigrationStatuses returns the applied state of every known migration in
// version order.
func (db *DB) MigrationStatuses() ([]MigrationStatus, error) {
	if err := db.ensureVersionTable(); err != nil {
		return nil, err
	}

	applied, err := db.appliedVersions()
	if err != nil {
		return nil, err
	}

	migrations, err := loadMigrations()
	if err != nil {
		return nil, err
	}

	statuses := make([]MigrationStatus, 0, len(migrations))
	for _, mig := range migrations {
		statuses = append(statuses, MigrationStatus{
			Version: mig.version,
			Name:    mig.name,
			Applied: applied[mig.version],
		})
	}

	return statuses, nil
}

func (db *DB) ensureVersionTable() error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	return nil
}

func (db *DB) appliedVersions() (map[int]bool, error) {
	rows, err := db.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// loadMigrations reads the embedded migration files, sorted by version.
// Files that do not match the NNN_name.sql convention are rejected rather
// than silently skipped.
func loadMigrations() ([]migration, error) {
	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	migrations := make([]migration, 0, len(entries))
	for _, entry := range entries {
		filename := entry.Name()

		prefix, rest, ok := strings.Cut(filename, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s: filename must look like NNN_name.sql", filename)
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration %s: bad version prefix: %w", filename, err)
		}

		content, err := migrationFS.ReadFile("migrations/" + filename)
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", filename, err)
		}

		migrations = append(migrations, migration{
			version: version,
			name:    strings.TrimSuffix(rest, ".sql"),
			sql:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].version < migrations[j].version
	})

	return migrations, nil
}
