package db

import (
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"tarot-scores/internal/db/migrations"
)

// Open connects to the local SQLite database at path using the pure-Go
// driver registered by modernc.org/sqlite.
func Open(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, errors.New("database path is required")
	}
	conn, err := gorm.Open(sqlite.New(sqlite.Config{
		DSN:        path,
		DriverName: "sqlite",
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// Ensure SQLite enforces foreign keys
	if err := conn.Exec("PRAGMA foreign_keys = ON;").Error; err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	// One connection keeps every operation behind SQLite's write lock;
	// the store assumes a single local writer.
	sqlDB.SetMaxOpenConns(1)

	return conn, nil
}

// Migrate applies the embedded schema migrations in version order.
// Re-running at the current version is a no-op and existing records are
// left untouched.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("db connection is nil")
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration setup failed: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("migration setup failed: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("database migration failed: %w", err)
	}
	log.Println("database migration complete")
	return nil
}
