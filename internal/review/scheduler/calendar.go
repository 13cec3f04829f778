package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-capture/internal/review"
	"task-capture/pkg/breaker"
	"task-capture/pkg/gcalendar"
	pkgLog "task-capture/pkg/log"
)

// DefaultEventLength is the duration of a timed reminder event.
const DefaultEventLength = 30 * time.Minute

// EventCreator is the part of the Google Calendar client the scheduler uses.
type EventCreator interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type calendarScheduler struct {
	l          pkgLog.Logger
	calendar   EventCreator
	breaker    *breaker.Breaker
	calendarID string
	timezone   string
}

// NewCalendar returns a ReminderScheduler that books a calendar event with
// popup reminders for each accepted, dated task.
func NewCalendar(l pkgLog.Logger, calendar EventCreator, b *breaker.Breaker, calendarID, timezone string) review.ReminderScheduler {
	return &calendarScheduler{
		l:          l,
		calendar:   calendar,
		breaker:    b,
		calendarID: calendarID,
		timezone:   timezone,
	}
}

func (s *calendarScheduler) ScheduleReminder(ctx context.Context, r review.Reminder) error {
	req := gcalendar.CreateEventRequest{
		CalendarID:      s.calendarID,
		Summary:         r.Task.Title,
		Description:     describe(r),
		StartTime:       r.Start,
		EndTime:         r.Start.Add(DefaultEventLength),
		AllDay:          r.AllDay,
		Timezone:        s.timezone,
		ReminderMinutes: r.Minutes,
	}

	event, err := breaker.Execute(s.breaker, func() (*gcalendar.Event, error) {
		return s.calendar.CreateEvent(ctx, req)
	})
	if err != nil {
		return fmt.Errorf("schedule reminder for %q: %w", r.Task.Title, err)
	}

	s.l.Infof(ctx, "scheduler: event %s for task %s", event.ID, r.Task.ID)
	return nil
}

func describe(r review.Reminder) string {
	var parts []string
	if r.Task.CategoryID != "" {
		parts = append(parts, "Category: "+r.Task.CategoryID)
	}
	if r.Task.Priority != "" {
		parts = append(parts, "Priority: "+string(r.Task.Priority))
	}
	if r.Task.MemoURL != "" {
		parts = append(parts, r.Task.MemoURL)
	}
	return strings.Join(parts, "\n")
}
