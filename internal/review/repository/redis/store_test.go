package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-capture/internal/extraction"
	"task-capture/internal/review"
	"task-capture/internal/review/repository"
	"task-capture/internal/review/repository/redis"
	"task-capture/pkg/datemath"
)

// newClient connects to REDIS_ADDR. The test is skipped without one.
func newClient(t *testing.T) *goredis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not reachable at %s: %v", addr, err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := redis.New(newClient(t), time.Minute)

	date := datemath.Date{Year: 2024, Month: time.May, Day: 2}
	sess := review.Session{
		ID:     "test-" + time.Now().Format("150405.000000"),
		UserID: "u-1",
		Candidates: []extraction.Candidate{{
			Title:      "Buy groceries",
			Date:       &date,
			Time:       &datemath.ClockTime{Hour: 15},
			Confidence: 1,
			Keywords:   []string{"tomorrow"},
		}},
		CreatedAt: time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC),
	}

	require.NoError(t, s.Save(ctx, sess))
	t.Cleanup(func() { _ = s.Delete(ctx, sess.ID) })

	got, err := s.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	require.NoError(t, s.SetLatest(ctx, sess.UserID, sess.ID))
	id, err := s.Latest(ctx, sess.UserID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, id)

	require.NoError(t, s.Delete(ctx, sess.ID))
	_, err = s.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
