package memory

import (
	"context"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-capture/internal/review"
	"task-capture/internal/review/repository"
)

type implStore struct {
	sessions *expirable.LRU[string, review.Session]
	latest   *expirable.LRU[string, string]
}

// New creates an in-process session store holding at most size sessions,
// each for ttl.
func New(size int, ttl time.Duration) repository.Store {
	return &implStore{
		sessions: expirable.NewLRU[string, review.Session](size, nil, ttl),
		latest:   expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (s *implStore) Save(ctx context.Context, sess review.Session) error {
	sess.Candidates = slices.Clone(sess.Candidates)
	s.sessions.Add(sess.ID, sess)
	return nil
}

func (s *implStore) Get(ctx context.Context, id string) (review.Session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return review.Session{}, repository.ErrNotFound
	}
	sess.Candidates = slices.Clone(sess.Candidates)
	return sess, nil
}

func (s *implStore) Delete(ctx context.Context, id string) error {
	s.sessions.Remove(id)
	return nil
}

func (s *implStore) SetLatest(ctx context.Context, userID, sessionID string) error {
	s.latest.Add(userID, sessionID)
	return nil
}

func (s *implStore) Latest(ctx context.Context, userID string) (string, error) {
	id, ok := s.latest.Get(userID)
	if !ok {
		return "", repository.ErrNotFound
	}
	return id, nil
}
