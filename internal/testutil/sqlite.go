// Package testutil opens throwaway stores for package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tlodholz/OpsReadyAPI/internal/model"
)

// NewSQLiteDB returns a private in-memory SQLite store with every table
// migrated. One connection only, so a transaction owns the whole store.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(Models()...); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

// Models every persisted model, parents first
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.UserProfile{},
		&model.TrainingEvent{},
		&model.TrainingAssignment{},
		&model.TrainingRecord{},
		&model.Vehicle{},
		&model.VehicleMaintenance{},
	}
}

// FailCreateOn makes the n-th (1-based) insert into table fail with err.
// Earlier and later inserts are unaffected.
func FailCreateOn(t testing.TB, db *gorm.DB, table string, n int, err error) {
	t.Helper()

	seen := 0
	name := "testutil:fail_" + table + "_" + uuid.NewString()
	cbErr := db.Callback().Create().Before("gorm:create").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Schema == nil || tx.Statement.Schema.Table != table {
			return
		}
		seen++
		if seen == n {
			_ = tx.AddError(err)
		}
	})
	if cbErr != nil {
		t.Fatalf("register callback: %v", cbErr)
	}
}
