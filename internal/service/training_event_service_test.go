package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/tlodholz/OpsReadyAPI/internal/dto"
	"github.com/tlodholz/OpsReadyAPI/internal/model"
	"github.com/tlodholz/OpsReadyAPI/internal/repository"
	"github.com/tlodholz/OpsReadyAPI/internal/testutil"
)

func setupTestTrainingEventService() (TrainingEventService, *mockTrainingEventRepo) {
	repo := newMockRepository()
	return NewTrainingEventService(repo, fixedClock, zap.NewNop()), repo.TrainingEvent.(*mockTrainingEventRepo)
}

func eventReq(title string, start time.Time) *dto.TrainingEventRequest {
	return &dto.TrainingEventRequest{Title: title, StartDate: start, EndDate: start.Add(4 * time.Hour), Location: "Range 2"}
}

// ── CRUD ──

func TestTrainingEventService_Create(t *testing.T) {
	svc, _ := setupTestTrainingEventService()
	start := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	e, err := svc.Create(context.Background(), eventReq("Firearms Qualification", start), "jdoe")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if e.TrainingEventID == 0 || e.RecordCreatedBy != "jdoe" || !e.RecordCreatedDate.Equal(fixedNow) {
		t.Errorf("unexpected stored event %+v", e)
	}

	bad := eventReq("Backwards", start)
	bad.EndDate = start.Add(-time.Hour)
	if _, err := svc.Create(context.Background(), bad, "jdoe"); !errors.Is(err, ErrTrainingEventDateRange) {
		t.Errorf("expected ErrTrainingEventDateRange, got %v", err)
	}
	if _, err := svc.Create(context.Background(), nil, "jdoe"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTrainingEventService_Update(t *testing.T) {
	svc, _ := setupTestTrainingEventService()
	ctx := context.Background()
	start := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	e, _ := svc.Create(ctx, eventReq("CPR", start), "creator")

	req := eventReq("CPR Refresher", start)
	if _, err := svc.Update(ctx, e.TrainingEventID, req, "editor"); !errors.Is(err, ErrIDMismatch) {
		t.Errorf("expected ErrIDMismatch without body id, got %v", err)
	}

	req.TrainingEventID = e.TrainingEventID
	updated, err := svc.Update(ctx, e.TrainingEventID, req, "editor")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "CPR Refresher" || updated.RecordUpdatedBy != "editor" || updated.RecordCreatedBy != "creator" {
		t.Errorf("unexpected updated event %+v", updated)
	}

	req.TrainingEventID = 404
	if _, err := svc.Update(ctx, 404, req, "editor"); !errors.Is(err, ErrTrainingEventNotFound) {
		t.Errorf("expected ErrTrainingEventNotFound, got %v", err)
	}
}

func TestTrainingEventService_ListFiltersAndDelete(t *testing.T) {
	svc, _ := setupTestTrainingEventService()
	ctx := context.Background()
	march := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	may := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
	first, _ := svc.Create(ctx, eventReq("Defensive Tactics", march), "system")
	_, _ = svc.Create(ctx, eventReq("Driving Course", may), "system")

	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	list, err := svc.List(ctx, &dto.TrainingEventListRequest{From: &from})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Driving Course" {
		t.Errorf("expected only the May event, got %+v", list)
	}

	list, _ = svc.List(ctx, &dto.TrainingEventListRequest{Title: "Tactics"})
	if len(list) != 1 || list[0].TrainingEventID != first.TrainingEventID {
		t.Errorf("expected title filter to match Defensive Tactics, got %+v", list)
	}

	if err := svc.Delete(ctx, first.TrainingEventID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, first.TrainingEventID); !errors.Is(err, ErrTrainingEventNotFound) {
		t.Errorf("expected ErrTrainingEventNotFound, got %v", err)
	}
}

// ── iCalendar ──

func TestTrainingEventService_CalendarRoundTrip(t *testing.T) {
	svc, _ := setupTestTrainingEventService()
	ctx := context.Background()
	start := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	_, _ = svc.Create(ctx, eventReq("Firearms Qualification", start), "system")
	_, _ = svc.Create(ctx, eventReq("Crisis Intervention", start.Add(48*time.Hour)), "system")

	feed, err := svc.Calendar(ctx, nil)
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	for _, want := range []string{"BEGIN:VCALENDAR", "METHOD:PUBLISH", "SUMMARY:Firearms Qualification", "LOCATION:Range 2"} {
		if !strings.Contains(feed, want) {
			t.Errorf("calendar missing %q", want)
		}
	}

	again, _ := svc.Calendar(ctx, nil)
	if uidLines(feed) != uidLines(again) {
		t.Error("expected event UIDs to be stable across renders")
	}

	events, skipped, err := ParseTrainingEventsICS(strings.NewReader(feed), time.UTC)
	if err != nil {
		t.Fatalf("parse own calendar: %v", err)
	}
	if skipped != 0 || len(events) != 2 {
		t.Fatalf("expected 2 events and 0 skipped, got %d/%d", len(events), skipped)
	}
	if events[0].Title != "Firearms Qualification" || !events[0].StartDate.Equal(start) || !events[0].EndDate.Equal(start.Add(4*time.Hour)) {
		t.Errorf("round trip mismatch: %+v", events[0])
	}
}

func uidLines(feed string) string {
	var uids []string
	for _, line := range strings.Split(feed, "\n") {
		if strings.HasPrefix(line, "UID:") {
			uids = append(uids, strings.TrimSpace(line))
		}
	}
	return strings.Join(uids, ",")
}

const importCalendar = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//Academy//Schedule//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:a-1\r\n" +
	"DTSTAMP:20260101T000000Z\r\n" +
	"DTSTART:20260401T130000Z\r\n" +
	"DTEND:20260401T170000Z\r\n" +
	"SUMMARY:Taser Recertification\r\n" +
	"LOCATION:Gym\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:a-2\r\n" +
	"DTSTAMP:20260101T000000Z\r\n" +
	"DTSTART:20260402T130000Z\r\n" +
	"DURATION:PT1H30M\r\n" +
	"SUMMARY:Legal Update\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:a-3\r\n" +
	"DTSTAMP:20260101T000000Z\r\n" +
	"DTSTART:20260403T130000Z\r\n" +
	"SUMMARY:No End Given\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:a-4\r\n" +
	"DTSTAMP:20260101T000000Z\r\n" +
	"DTSTART:20260404T130000Z\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseTrainingEventsICS(t *testing.T) {
	events, skipped, err := ParseTrainingEventsICS(strings.NewReader(importCalendar), time.UTC)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if skipped != 1 {
		t.Errorf("expected the summary-less event to be skipped, got %d", skipped)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	tests := []struct {
		title string
		hours float64
	}{
		{"Taser Recertification", 4},
		{"Legal Update", 1.5},
		{"No End Given", 1},
	}
	for i, tt := range tests {
		if events[i].Title != tt.title {
			t.Errorf("event %d: expected %q, got %q", i, tt.title, events[i].Title)
		}
		if got := events[i].EndDate.Sub(events[i].StartDate).Hours(); got != tt.hours {
			t.Errorf("%s: expected %.1fh, got %.1fh", tt.title, tt.hours, got)
		}
	}
}

func TestParseICSDuration(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{"PT1H30M", 90 * time.Minute, false},
		{"P1D", 24 * time.Hour, false},
		{"P1W", 7 * 24 * time.Hour, false},
		{"PT45S", 45 * time.Second, false},
		{"-PT15M", -15 * time.Minute, false},
		{"1 hour", 0, true},
		{"P", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseICSDuration(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseICSDuration(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseICSDuration(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTrainingEventService_ImportICS(t *testing.T) {
	svc, repo := setupTestTrainingEventService()

	resp, err := svc.ImportICS(context.Background(), strings.NewReader(importCalendar), "importer")
	if err != nil {
		t.Fatalf("ImportICS failed: %v", err)
	}
	if resp.Imported != 3 || resp.Skipped != 1 || len(resp.EventIDs) != 3 {
		t.Errorf("unexpected import result %+v", resp)
	}
	stored := repo.events[resp.EventIDs[0]]
	if stored.RecordCreatedBy != "importer" || !stored.RecordCreatedDate.Equal(fixedNow) {
		t.Errorf("expected audit stamp on imported event, got %+v", stored.AuditModel)
	}
}

func TestTrainingEventService_ImportICS_NoUsableEvents(t *testing.T) {
	svc, _ := setupTestTrainingEventService()
	cal := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//x//y//EN\r\nEND:VCALENDAR\r\n"

	_, err := svc.ImportICS(context.Background(), strings.NewReader(cal), "importer")
	if !errors.Is(err, ErrTrainingEventICSEmpty) {
		t.Errorf("expected ErrTrainingEventICSEmpty, got %v", err)
	}
}

func TestTrainingEventService_ImportICS_AllOrNothing(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	testutil.FailCreateOn(t, db, "training_events", 2, errors.New("disk full"))
	svc := NewTrainingEventService(repository.NewRepository(db), fixedClock, zap.NewNop())

	if _, err := svc.ImportICS(context.Background(), strings.NewReader(importCalendar), "importer"); err == nil {
		t.Fatal("expected import to fail")
	}

	var n int64
	if err := db.Model(&model.TrainingEvent{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no events after rollback, got %d", n)
	}
}
