//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tlodholz/OpsReadyAPI/internal/model"
	"github.com/tlodholz/OpsReadyAPI/internal/repository"
	"github.com/tlodholz/OpsReadyAPI/pkg/database"
	pkgerrors "github.com/tlodholz/OpsReadyAPI/pkg/errors"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=opsready password=opsready dbname=opsready_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot connect to test database: %v\n", err)
		os.Exit(1)
	}

	sqlDB, err := testDB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sql.DB: %v\n", err)
		os.Exit(1)
	}
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		fmt.Fprintf(os.Stderr, "migrations failed: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// uniqueEvent returns an event id no other run uses
func uniqueEvent() int64 {
	return time.Now().UnixNano() % 1_000_000_000
}

func cleanupEvent(eventID int64) {
	testDB.Exec("DELETE FROM training_records WHERE training_assignment_id IN (SELECT assignment_id FROM training_assignments WHERE training_event_id = ?)", eventID)
	testDB.Exec("DELETE FROM training_assignments WHERE training_event_id = ?", eventID)
}

// ═══════════════════════════════════════════════════════════
// Test: unique (event, user) under concurrency
// ═══════════════════════════════════════════════════════════

func TestIntegration_ConcurrentAssignOneWinner(t *testing.T) {
	eventID := uniqueEvent()
	defer cleanupEvent(eventID)

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	const writers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		dupes   int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.TrainingAssignment.Create(ctx, &model.TrainingAssignment{
				TrainingEventID: eventID, UserID: 1,
				AssignedDate: time.Now(), CreatedDate: time.Now(),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, pkgerrors.ErrDuplicate):
				dupes++
			default:
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, writers-1, dupes)
}

// ═══════════════════════════════════════════════════════════
// Test: savepoint recovers an aborted transaction
// ═══════════════════════════════════════════════════════════

func TestIntegration_SavePointAfterUniqueViolation(t *testing.T) {
	eventID := uniqueEvent()
	defer cleanupEvent(eventID)

	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.TrainingAssignment.Create(ctx, &model.TrainingAssignment{
		TrainingEventID: eventID, UserID: 1, AssignedDate: now, CreatedDate: now,
	}))

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback()
	txRepo := repo.WithTx(tx)

	require.NoError(t, txRepo.SavePoint("item_0"))
	err = txRepo.TrainingAssignment.Create(ctx, &model.TrainingAssignment{
		TrainingEventID: eventID, UserID: 1, AssignedDate: now, CreatedDate: now,
	})
	require.ErrorIs(t, err, pkgerrors.ErrDuplicate)
	require.NoError(t, txRepo.RollbackTo("item_0"))

	// the transaction is usable again
	require.NoError(t, txRepo.TrainingAssignment.Create(ctx, &model.TrainingAssignment{
		TrainingEventID: eventID, UserID: 2, AssignedDate: now, CreatedDate: now,
	}))
	require.NoError(t, tx.Commit().Error)

	ids, err := repo.TrainingAssignment.ListUserIDsByEvent(ctx, eventID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, ids)
}

// ═══════════════════════════════════════════════════════════
// Test: record back-reference is enforced
// ═══════════════════════════════════════════════════════════

func TestIntegration_RecordRequiresAssignment(t *testing.T) {
	repo := repository.NewRepository(testDB)
	a := &model.TrainingAssignment{AssignmentID: -1}
	rec := model.NewPlaceholderRecord(a, model.SystemActor, time.Now())

	err := repo.TrainingRecord.Create(context.Background(), rec)
	assert.ErrorIs(t, err, pkgerrors.ErrConstraint, "dangling assignment id must be rejected")
}
