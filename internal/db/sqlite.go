package db

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/smartdiet/smartdiet-backend/internal/logger"
)

type SQLiteService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSQLiteService(path string, log *logger.Logger) (*SQLiteService, error) {
	serviceLog := log.With("service", "SQLiteService")

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			serviceLog.Error("Failed to create database directory", "dir", dir, "error", err)
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}

	serviceLog.Info("Opening sqlite database...", "path", path)
	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to open sqlite database", "error", err)
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := gormDB.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		serviceLog.Error("Failed to enable foreign key support", "error", err)
		return nil, fmt.Errorf("enable foreign key support: %w", err)
	}

	return &SQLiteService{db: gormDB, log: serviceLog}, nil
}

// MigrateAll applies the versioned migration list in order, each step in
// its own transaction. It must run to completion before the store serves
// any other call; a failure is fatal to startup.
func (s *SQLiteService) MigrateAll() error {
	for _, m := range migrations {
		s.log.Info("Applying migration...", "migration", m.id)
		if err := s.db.Transaction(m.apply); err != nil {
			s.log.Error("Migration failed", "migration", m.id, "error", err)
			return fmt.Errorf("migration %s: %w", m.id, err)
		}
	}
	s.log.Info("All migrations applied", "count", len(migrations))
	return nil
}

func (s *SQLiteService) DB() *gorm.DB {
	return s.db
}
