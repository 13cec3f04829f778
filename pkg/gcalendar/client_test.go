package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-capture/pkg/gcalendar"
)

const desktopCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

// rewriteTransport sends every request to a local test server.
type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	hc := ts.Client()
	hc.Transport = &rewriteTransport{Transport: hc.Transport, Host: strings.TrimPrefix(ts.URL, "http://")}

	c, err := gcalendar.NewClientFromHTTP(context.Background(), hc)
	require.NoError(t, err)
	return c
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewClientFromCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("unsupported format", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`{"broken":true}`), "")
		assert.ErrorContains(t, err, "unsupported credentials format")
	})

	t.Run("desktop client with saved token", func(t *testing.T) {
		token := writeFile(t, "token.json", `{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`)
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(desktopCreds), token)
		assert.NoError(t, err)
	})

	t.Run("desktop client without token", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "token.json")
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(desktopCreds), missing)
		assert.ErrorContains(t, err, "need a saved token")
	})

	t.Run("desktop client with corrupt token", func(t *testing.T) {
		token := writeFile(t, "token.json", `{"broken": true`)
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(desktopCreds), token)
		assert.ErrorContains(t, err, "parse token")
	})

	t.Run("from file", func(t *testing.T) {
		creds := writeFile(t, "creds.json", `{"broken":true}`)
		_, err := gcalendar.NewClientFromCredentialsFile(ctx, creds, "")
		assert.Error(t, err)

		_, err = gcalendar.NewClientFromCredentialsFile(ctx, filepath.Join(t.TempDir(), "missing.json"), "")
		assert.ErrorContains(t, err, "read credentials")
	})
}

func TestCreateEvent(t *testing.T) {
	var got struct {
		Summary string `json:"summary"`
		Start   struct {
			DateTime string `json:"dateTime"`
			TimeZone string `json:"timeZone"`
		} `json:"start"`
		Reminders struct {
			UseDefault *bool `json:"useDefault"`
			Overrides  []struct {
				Method  string `json:"method"`
				Minutes int    `json:"minutes"`
			} `json:"overrides"`
		} `json:"reminders"`
	}
	var path string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"id": "event-123", "summary": "Buy groceries", "htmlLink": "https://calendar.google.com/event-uri"}`))
	})

	start := time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC)
	event, err := c.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:         "Buy groceries",
		StartTime:       start,
		EndTime:         start.Add(30 * time.Minute),
		Timezone:        "UTC",
		ReminderMinutes: []int{30, 10},
	})
	require.NoError(t, err)

	assert.Equal(t, "/calendar/v3/calendars/primary/events", path)
	assert.Equal(t, "event-123", event.ID)
	assert.Equal(t, "https://calendar.google.com/event-uri", event.HtmlLink)
	assert.Equal(t, start, event.Start)
	assert.False(t, event.AllDay)

	assert.Equal(t, "2024-05-02T15:00:00Z", got.Start.DateTime)
	assert.Equal(t, "UTC", got.Start.TimeZone)
	require.NotNil(t, got.Reminders.UseDefault)
	assert.False(t, *got.Reminders.UseDefault)
	require.Len(t, got.Reminders.Overrides, 2)
	assert.Equal(t, "popup", got.Reminders.Overrides[0].Method)
	assert.Equal(t, 30, got.Reminders.Overrides[0].Minutes)
}

func TestCreateAllDayEvent(t *testing.T) {
	var got struct {
		Start struct {
			Date string `json:"date"`
		} `json:"start"`
		End struct {
			Date string `json:"date"`
		} `json:"end"`
		Reminders *json.RawMessage `json:"reminders"`
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"id": "event-124"}`))
	})

	start := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	event, err := c.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		CalendarID: "family",
		Summary:    "Pay rent",
		StartTime:  start,
		EndTime:    start,
		AllDay:     true,
	})
	require.NoError(t, err)

	assert.True(t, event.AllDay)
	assert.Equal(t, "2024-05-31", got.Start.Date)
	assert.Equal(t, "2024-06-01", got.End.Date)
	assert.Nil(t, got.Reminders, "no overrides keeps the calendar defaults")
}

func TestCreateEventError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.CreateEvent(context.Background(), gcalendar.CreateEventRequest{Summary: "x"})
	assert.ErrorContains(t, err, "insert event")
}
