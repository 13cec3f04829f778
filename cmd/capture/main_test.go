package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, May 1, 2024 15:30 UTC.
const testNow = "2024-05-01 15:30"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExtractTable(t *testing.T) {
	out, err := run(t, "", "extract", "--now", testNow, "Remind me to buy groceries tomorrow at 3 PM")
	require.NoError(t, err)

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Buy groceries")
	assert.Contains(t, out, "2024-05-02 15:00")
	assert.Contains(t, out, "household")
}

func TestExtractJSONFromStdin(t *testing.T) {
	out, err := run(t, "don't forget to pick up milk, pick up milk today", "extract", "--json", "--now", testNow)
	require.NoError(t, err)

	var got []struct {
		Title string `json:"title"`
		Date  string `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Pick up milk", got[0].Title)
	assert.Equal(t, "2024-05-01", got[0].Date)
}

func TestExtractNothingFound(t *testing.T) {
	out, err := run(t, "", "extract", "--now", testNow, "ok", "thanks")
	require.NoError(t, err)
	assert.Equal(t, "No tasks found.\n", out)
}

func TestExtractEmptyInput(t *testing.T) {
	_, err := run(t, "   ", "extract")
	assert.Error(t, err)
}

func TestVoice(t *testing.T) {
	out, err := run(t, "", "voice", "--now", testNow, "Remind me to call the dentist tomorrow at 9am")
	require.NoError(t, err)

	assert.Contains(t, out, "Title:    Call the dentist")
	assert.Contains(t, out, "When:     2024-05-02 09:00")
	assert.Contains(t, out, "Category: health")
}

func TestResolve(t *testing.T) {
	out, err := run(t, "", "resolve", "--now", testNow, "next friday at noon")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2024-05-03 12:00 (rule "), out)

	out, err = run(t, "", "resolve", "--now", testNow, "buy some milk")
	require.NoError(t, err)
	assert.Equal(t, "No date or time found.\n", out)
}

func TestResolveJSON(t *testing.T) {
	out, err := run(t, "", "resolve", "--json", "--now", testNow, "next friday at noon")
	require.NoError(t, err)

	var got struct {
		Found  bool `json:"found"`
		Result struct {
			Date string `json:"date"`
			Time string `json:"time"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Found)
	assert.Equal(t, "2024-05-03", got.Result.Date)
	assert.Equal(t, "12:00", got.Result.Time)
}

func TestInvalidFlags(t *testing.T) {
	_, err := run(t, "", "resolve", "--now", "yesterday-ish", "tomorrow")
	assert.ErrorContains(t, err, "invalid --now")

	_, err = run(t, "", "resolve", "--timezone", "Mars/Olympus", "tomorrow")
	assert.ErrorContains(t, err, "invalid --timezone")
}

func TestReferenceLayouts(t *testing.T) {
	for _, in := range []string{"2024-05-01T15:30:00Z", "2024-05-01 15:30", "2024-05-01T15:30", "2024-05-01"} {
		o := &options{now: in, timezone: "UTC"}
		got, err := o.reference()
		require.NoError(t, err, in)
		assert.Equal(t, "2024-05-01", got.Format("2006-01-02"))
	}

	o := &options{timezone: "UTC"}
	got, err := o.reference()
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}
