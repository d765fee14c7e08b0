package repos

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/smartdiet/smartdiet-backend/internal/db"
	"github.com/smartdiet/smartdiet-backend/internal/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, *logger.Logger) {
	t.Helper()
	log, err := logger.New(logger.Config{Mode: "development"})
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	svc, err := db.NewSQLiteService(filepath.Join(t.TempDir(), "test.db"), log)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := svc.MigrateAll(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return svc.DB(), log
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
