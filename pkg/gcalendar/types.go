package gcalendar

import "time"

// PrimaryCalendar addresses the authorized account's own calendar.
const PrimaryCalendar = "primary"

// CreateEventRequest describes a reminder event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Timezone    string
	// ReminderMinutes are popup offsets before StartTime.
	ReminderMinutes []int
}

// Event is the part of a created event callers care about.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Start    time.Time
	AllDay   bool
}
