package service

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/tlodholz/OpsReadyAPI/internal/model"
)

// ── iCalendar export / import for training events ────────────

const (
	icsMaxFileSize     = 5 * 1024 * 1024 // 5MB
	icsProductID       = "-//OpsReady//Training Calendar//EN"
	icsDefaultDuration = time.Hour
)

// BuildTrainingCalendar renders events as a PUBLISH calendar. UIDs are
// derived from the event id so clients can track updates.
func BuildTrainingCalendar(events []model.TrainingEvent, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)

	for i := range events {
		e := &events[i]
		uid := uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("opsready:training-event:%d", e.TrainingEventID)))

		vevent := cal.AddEvent(uid.String())
		vevent.SetDtStampTime(stamp)
		vevent.SetCreatedTime(e.RecordCreatedDate)
		vevent.SetModifiedAt(e.RecordUpdatedDate)
		vevent.SetStartAt(e.StartDate)
		vevent.SetEndAt(e.EndDate)
		vevent.SetSummary(e.Title)
		if e.Location != "" {
			vevent.SetLocation(e.Location)
		}
		if desc := eventDescription(e); desc != "" {
			vevent.SetDescription(desc)
		}
	}

	return cal.Serialize()
}

func eventDescription(e *model.TrainingEvent) string {
	var parts []string
	if e.Description != "" {
		parts = append(parts, e.Description)
	}
	if e.Instructor != "" {
		parts = append(parts, "Instructor: "+e.Instructor)
	}
	if e.CertificationIssued {
		parts = append(parts, "Certification issued")
	}
	return strings.Join(parts, "\n")
}

// ParseTrainingEventsICS reads every VEVENT with a summary and a start.
// Returns the events found and how many VEVENTs were unusable.
func ParseTrainingEventsICS(reader io.Reader, loc *time.Location) ([]model.TrainingEvent, int, error) {
	cal, err := ics.ParseCalendar(io.LimitReader(reader, icsMaxFileSize))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse iCalendar: %w", err)
	}

	var (
		events  []model.TrainingEvent
		skipped int
	)
	for _, vevent := range cal.Events() {
		e, ok := parseTrainingVEvent(vevent, loc)
		if !ok {
			skipped++
			continue
		}
		events = append(events, e)
	}
	return events, skipped, nil
}

func parseTrainingVEvent(vevent *ics.VEvent, loc *time.Location) (model.TrainingEvent, bool) {
	title := propertyValue(vevent, ics.ComponentPropertySummary)
	if title == "" {
		return model.TrainingEvent{}, false
	}

	start, err := parseICSDateTime(vevent, ics.ComponentPropertyDtStart, loc)
	if err != nil {
		return model.TrainingEvent{}, false
	}

	end, err := parseICSDateTime(vevent, ics.ComponentPropertyDtEnd, loc)
	if err != nil {
		end = start.Add(icsDefaultDuration)
		if raw := propertyValue(vevent, ics.ComponentPropertyDuration); raw != "" {
			if d, derr := parseICSDuration(raw); derr == nil {
				end = start.Add(d)
			}
		}
	}
	if end.Before(start) {
		return model.TrainingEvent{}, false
	}

	return model.TrainingEvent{
		Title:         title,
		Description:   propertyValue(vevent, ics.ComponentPropertyDescription),
		Location:      propertyValue(vevent, ics.ComponentPropertyLocation),
		StartDate:     start,
		EndDate:       end,
		DurationHours: end.Sub(start).Hours(),
	}, true
}

func propertyValue(vevent *ics.VEvent, name ics.ComponentProperty) string {
	prop := vevent.GetProperty(name)
	if prop == nil {
		return ""
	}
	return strings.TrimSpace(prop.Value)
}

// parseICSDateTime handles UTC, floating and TZID-qualified values plus
// all-day dates
func parseICSDateTime(vevent *ics.VEvent, name ics.ComponentProperty, loc *time.Location) (time.Time, error) {
	prop := vevent.GetProperty(name)
	if prop == nil {
		return time.Time{}, fmt.Errorf("missing property %s", name)
	}
	val := prop.Value

	tzid := ""
	for k, v := range prop.ICalParameters {
		if strings.EqualFold(k, "TZID") && len(v) > 0 {
			tzid = v[0]
		}
	}

	for _, layout := range []string{"20060102T150405Z", "20060102T150405", "20060102"} {
		t, err := time.Parse(layout, val)
		if err != nil {
			continue
		}
		if strings.HasSuffix(layout, "Z") {
			return t.In(loc), nil
		}
		zone := loc
		if tzid != "" {
			if tzLoc, err := time.LoadLocation(tzid); err == nil {
				zone = tzLoc
			}
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, zone).In(loc), nil
	}

	return time.Time{}, fmt.Errorf("unparseable date %q", val)
}

var icsDurationPattern = regexp.MustCompile(`^([+-])?P(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// parseICSDuration RFC 5545 dur-value, e.g. PT1H30M or P1D
func parseICSDuration(raw string) (time.Duration, error) {
	m := icsDurationPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(raw)))
	if m == nil || raw == "P" || raw == "PT" {
		return 0, fmt.Errorf("invalid duration %q", raw)
	}

	units := []time.Duration{7 * 24 * time.Hour, 24 * time.Hour, time.Hour, time.Minute, time.Second}
	var d time.Duration
	for i, unit := range units {
		if m[i+2] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+2])
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", raw, err)
		}
		d += time.Duration(n) * unit
	}
	if m[1] == "-" {
		d = -d
	}
	return d, nil
}
