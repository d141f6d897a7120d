package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/tlodholz/OpsReadyAPI/internal/dto"
	"github.com/tlodholz/OpsReadyAPI/internal/model"
)

func setupTestTrainingRecordService(t *testing.T) (TrainingRecordService, *mockTrainingRecordRepo, int64) {
	t.Helper()
	repo := newMockRepository()
	a := &model.TrainingAssignment{TrainingEventID: 10, UserID: 1}
	if err := repo.TrainingAssignment.Create(context.Background(), a); err != nil {
		t.Fatalf("seed assignment: %v", err)
	}
	svc := NewTrainingRecordService(repo, fixedClock, zap.NewNop())
	return svc, repo.TrainingRecord.(*mockTrainingRecordRepo), a.AssignmentID
}

func TestTrainingRecordService_CreateDefaultsDates(t *testing.T) {
	svc, _, assignmentID := setupTestTrainingRecordService(t)
	completion := time.Date(2026, 2, 20, 16, 0, 0, 0, time.UTC)
	expiry := time.Date(2027, 2, 20, 18, 45, 0, 0, time.UTC)

	rec, err := svc.Create(context.Background(), &dto.TrainingRecordRequest{
		TrainingAssignmentID: assignmentID,
		Completed:            true,
		CompletionDate:       &completion,
		ExpirationDate:       &expiry,
	}, "evaluator")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !rec.CompletionDate.Equal(completion) {
		t.Errorf("expected supplied completion date, got %v", rec.CompletionDate)
	}
	if !rec.EnrollmentDate.Equal(fixedNow) || !rec.CertificationExpiryDate.Equal(fixedNow) {
		t.Error("expected missing dates to default to now")
	}
	if want := time.Date(2027, 2, 20, 0, 0, 0, 0, time.UTC); !rec.ExpirationDate.Equal(want) {
		t.Errorf("expected expiration date truncated to %v, got %v", want, rec.ExpirationDate)
	}
	if rec.RecordCreatedBy != "evaluator" {
		t.Errorf("expected creator evaluator, got %s", rec.RecordCreatedBy)
	}
}

func TestTrainingRecordService_CreateMissingAssignment(t *testing.T) {
	svc, _, _ := setupTestTrainingRecordService(t)

	_, err := svc.Create(context.Background(), &dto.TrainingRecordRequest{TrainingAssignmentID: 999}, "system")
	if !errors.Is(err, ErrTrainingRecordAssignmentMissing) {
		t.Errorf("expected ErrTrainingRecordAssignmentMissing, got %v", err)
	}
}

func TestTrainingRecordService_UpdateAndDelete(t *testing.T) {
	svc, repo, assignmentID := setupTestTrainingRecordService(t)
	ctx := context.Background()
	rec, _ := svc.Create(ctx, &dto.TrainingRecordRequest{TrainingAssignmentID: assignmentID}, "system")

	if _, err := svc.Update(ctx, rec.TrainingRecordID, &dto.TrainingRecordRequest{TrainingAssignmentID: assignmentID}, "editor"); !errors.Is(err, ErrIDMismatch) {
		t.Errorf("expected ErrIDMismatch, got %v", err)
	}

	updated, err := svc.Update(ctx, rec.TrainingRecordID, &dto.TrainingRecordRequest{
		TrainingRecordID:     rec.TrainingRecordID,
		TrainingAssignmentID: assignmentID,
		Status:               "Passed",
		Score:                "96",
		Completed:            true,
	}, "editor")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != "Passed" || updated.Score != "96" || !updated.Completed {
		t.Errorf("fields not applied: %+v", updated)
	}
	if repo.records[rec.TrainingRecordID].RecordUpdatedBy != "editor" {
		t.Error("expected updated_by editor to be stored")
	}

	if err := svc.Delete(ctx, rec.TrainingRecordID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, rec.TrainingRecordID); !errors.Is(err, ErrTrainingRecordNotFound) {
		t.Errorf("expected ErrTrainingRecordNotFound, got %v", err)
	}
}

func TestTrainingRecordService_ListExpiringCertifications(t *testing.T) {
	svc, _, assignmentID := setupTestTrainingRecordService(t)
	ctx := context.Background()

	soon := fixedNow.AddDate(0, 0, 10)
	late := fixedNow.AddDate(0, 0, 90)
	for _, tc := range []struct {
		expiry    time.Time
		completed bool
	}{
		{soon, true},
		{soon, false},
		{late, true},
	} {
		expiry := tc.expiry
		if _, err := svc.Create(ctx, &dto.TrainingRecordRequest{
			TrainingAssignmentID:    assignmentID,
			Completed:               tc.completed,
			CertificationExpiryDate: &expiry,
		}, "system"); err != nil {
			t.Fatalf("seed record: %v", err)
		}
	}

	records, err := svc.ListExpiringCertifications(ctx, fixedNow, fixedNow.AddDate(0, 0, 30))
	if err != nil {
		t.Fatalf("ListExpiringCertifications failed: %v", err)
	}
	if len(records) != 1 || !records[0].CertificationExpiryDate.Equal(soon) {
		t.Errorf("expected one completed record expiring soon, got %+v", records)
	}
}
