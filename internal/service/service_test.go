package service_test

import (
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Teckas-Technologies/spring-crud/internal/core/database"
	"github.com/Teckas-Technologies/spring-crud/internal/domain"
)

var testEntityTypes = []string{"USER", "ORGANIZATION", "DEVICE"}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Entity{}, &domain.Account{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func testLogger() *zap.Logger { return zap.NewNop() }
