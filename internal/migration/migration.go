// Package migration creates the relational schema.
package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mcal/pkg/log"
)

// Timestamps are stored as ISO-8601 text without offset so that they keep
// the wall clock they were entered with and compare lexically.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS calendars (
		id    BIGSERIAL PRIMARY KEY,
		name  TEXT NOT NULL UNIQUE,
		color TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id               BIGSERIAL PRIMARY KEY,
		calendar_id      BIGINT NOT NULL REFERENCES calendars (id) ON DELETE CASCADE,
		title            TEXT NOT NULL,
		description      TEXT,
		location         TEXT,
		start_time       TEXT NOT NULL,
		end_time         TEXT NOT NULL,
		is_all_day       BOOLEAN NOT NULL DEFAULT FALSE,
		repeat_frequency TEXT NOT NULL DEFAULT 'none',
		repeat_until     TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_calendar_id ON events (calendar_id)`,
	`CREATE INDEX IF NOT EXISTS idx_events_start_date ON events (LEFT(start_time, 10))`,
}

// Up applies every statement in one transaction. It is safe to run on an
// existing schema.
func Up(ctx context.Context, db *gorm.DB, l log.Logger) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, stmt := range statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("statement %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("migration: %w", err)
	}

	l.Infof(ctx, "migration.Up: schema ready (%d statements)", len(statements))
	return nil
}
