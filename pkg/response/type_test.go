package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-capture/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	saigon := time.FixedZone("ICT", 7*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), `"2024-05-01T15:30:00Z"`},
		{"converted to utc", time.Date(2024, 5, 1, 22, 30, 0, 0, saigon), `"2024-05-01T15:30:00Z"`},
		{"zero", time.Time{}, `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}
