package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client books reminder events through the Google Calendar API.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile reads credentials from disk. tokenPath is
// consulted only when the credentials are an OAuth desktop client.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: read credentials: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON accepts either a service account key or an
// OAuth desktop client paired with a token previously saved at tokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	ts, err := tokenSource(ctx, credentialsJSON, tokenPath)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP uses an already authorized HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	return &Client{service: svc}, nil
}

func tokenSource(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	if jwt, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return jwt.TokenSource(ctx), nil
	}

	conf, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: unsupported credentials format: %w", err)
	}

	raw, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: OAuth client credentials need a saved token at %q: %w", tokenPath, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("gcalendar: parse token %q: %w", tokenPath, err)
	}
	return conf.TokenSource(ctx, &tok), nil
}

// CreateEvent inserts an event. All-day events cover the date of StartTime
// only. Non-empty ReminderMinutes replace the calendar's default reminders
// with popups.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       eventTime(req.StartTime, req.AllDay, req.Timezone),
		End:         eventTime(req.EndTime, req.AllDay, req.Timezone),
		Reminders:   reminders(req.ReminderMinutes),
	}
	if req.AllDay {
		event.End = eventTime(req.StartTime.AddDate(0, 0, 1), true, req.Timezone)
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = PrimaryCalendar
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: insert event: %w", err)
	}

	return &Event{
		ID:       created.Id,
		Summary:  created.Summary,
		HtmlLink: created.HtmlLink,
		Start:    req.StartTime,
		AllDay:   req.AllDay,
	}, nil
}

func reminders(minutes []int) *calendar.EventReminders {
	if len(minutes) == 0 {
		return nil
	}
	overrides := make([]*calendar.EventReminder, 0, len(minutes))
	for _, m := range minutes {
		overrides = append(overrides, &calendar.EventReminder{Method: "popup", Minutes: int64(m)})
	}
	return &calendar.EventReminders{
		Overrides: overrides,
		// UseDefault=false is the zero value and would otherwise be omitted.
		ForceSendFields: []string{"UseDefault"},
	}
}

func eventTime(t time.Time, allDay bool, timezone string) *calendar.EventDateTime {
	if allDay {
		return &calendar.EventDateTime{Date: t.Format(time.DateOnly)}
	}
	// The RFC 3339 offset fixes the instant; TimeZone only picks the display zone.
	return &calendar.EventDateTime{DateTime: t.Format(time.RFC3339), TimeZone: timezone}
}
