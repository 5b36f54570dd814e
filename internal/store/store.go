package store

import (
	"context"

	"gorm.io/gorm"
)

// Store wraps the database handle for all entity operations. The handle is
// opened once at process start and injected here, never held as a package
// global.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping reports whether the underlying database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
