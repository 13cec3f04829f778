package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"task-capture/internal/review"
	"task-capture/internal/review/repository"
)

const keyPrefix = "capture:review"

type implStore struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Redis-backed session store. Sessions are JSON values that
// expire after ttl; pass 0 to keep them forever.
func New(client *redis.Client, ttl time.Duration) repository.Store {
	return &implStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

func latestKey(userID string) string {
	return fmt.Sprintf("%s:latest:%s", keyPrefix, userID)
}

func (s *implStore) Save(ctx context.Context, sess review.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, sessionKey(sess.ID), raw, s.ttl).Err()
}

func (s *implStore) Get(ctx context.Context, id string) (review.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return review.Session{}, repository.ErrNotFound
	}
	if err != nil {
		return review.Session{}, err
	}

	var sess review.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return review.Session{}, fmt.Errorf("unmarshal session %s: %w", id, err)
	}
	return sess, nil
}

func (s *implStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

func (s *implStore) SetLatest(ctx context.Context, userID, sessionID string) error {
	return s.client.Set(ctx, latestKey(userID), sessionID, s.ttl).Err()
}

func (s *implStore) Latest(ctx context.Context, userID string) (string, error) {
	id, err := s.client.Get(ctx, latestKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrNotFound
	}
	return id, err
}
