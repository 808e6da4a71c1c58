package postgre

import (
	"fmt"

	"gorm.io/gorm"

	"mcal/internal/calendar/repository"
	"mcal/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the calendar domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("calendar/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("calendar/repository/postgre.%s", method)
}
