package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"task-capture/internal/model"
	"task-capture/internal/review"
	"task-capture/internal/review/repository"
)

// Open stores a new session holding candidates in their ranked order.
func (uc *implUseCase) Open(ctx context.Context, sc model.Scope, input review.OpenInput) (review.Session, error) {
	if len(input.Candidates) == 0 {
		return review.Session{}, review.ErrEmptySession
	}

	now := uc.clock()
	sess := review.Session{
		ID:         uuid.NewString(),
		UserID:     sc.UserID,
		Source:     input.Source,
		Candidates: slices.Clone(input.Candidates),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.store.Save(ctx, sess); err != nil {
		uc.l.Errorf(ctx, "uc.Open Save: %v", err)
		return review.Session{}, err
	}
	if sc.UserID != "" {
		if err := uc.store.SetLatest(ctx, sc.UserID, sess.ID); err != nil {
			uc.l.Warnf(ctx, "uc.Open SetLatest: %v", err)
		}
	}
	uc.metrics.ReviewSessionsOpen.Inc()

	return sess, nil
}

// Get returns a session by id.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (review.Session, error) {
	return uc.load(ctx, sc, id)
}

// Latest returns the newest session of the scope's user.
func (uc *implUseCase) Latest(ctx context.Context, sc model.Scope) (review.Session, error) {
	id, err := uc.store.Latest(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return review.Session{}, review.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "uc.Latest: %v", err)
		return review.Session{}, err
	}
	return uc.load(ctx, sc, id)
}

// Edit replaces the candidate at the given index. The title must survive
// trimming and the confidence is clamped to [0,1].
func (uc *implUseCase) Edit(ctx context.Context, sc model.Scope, input review.EditInput) (review.Session, error) {
	c := input.Candidate
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return review.Session{}, review.ErrInvalidCandidate
	}
	c.Confidence = min(max(c.Confidence, 0), 1)
	if !c.InferredPriority.Valid() {
		c.InferredPriority = model.PriorityMedium
	}
	if c.Keywords == nil {
		c.Keywords = []string{}
	}

	defer uc.locks.lock(input.SessionID)()

	sess, err := uc.load(ctx, sc, input.SessionID)
	if err != nil {
		return review.Session{}, err
	}
	if err := checkIndex(sess, input.Index); err != nil {
		return review.Session{}, err
	}

	sess.Candidates[input.Index] = c
	return uc.save(ctx, sess)
}

// Remove drops the candidate at the given index; later candidates shift up.
// A session left without candidates is deleted.
func (uc *implUseCase) Remove(ctx context.Context, sc model.Scope, input review.RemoveInput) (review.Session, error) {
	defer uc.locks.lock(input.SessionID)()

	sess, err := uc.load(ctx, sc, input.SessionID)
	if err != nil {
		return review.Session{}, err
	}
	if err := checkIndex(sess, input.Index); err != nil {
		return review.Session{}, err
	}

	sess.Candidates = slices.Delete(sess.Candidates, input.Index, input.Index+1)
	return uc.saveOrClose(ctx, sess)
}

// load fetches a session on behalf of sc. A session owned by another user is
// reported as missing so its id stays hidden.
func (uc *implUseCase) load(ctx context.Context, sc model.Scope, id string) (review.Session, error) {
	sess, err := uc.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return review.Session{}, review.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "uc.load %s: %v", id, err)
		return review.Session{}, err
	}
	if sc.UserID != "" && sc.UserID != sess.UserID {
		uc.l.Warnf(ctx, "uc.load %s: user %s is not the owner", id, sc.UserID)
		return review.Session{}, review.ErrSessionNotFound
	}
	return sess, nil
}

// saveOrClose stores sess, or deletes it once no candidate is left. The
// returned session is still the updated one in both cases.
func (uc *implUseCase) saveOrClose(ctx context.Context, sess review.Session) (review.Session, error) {
	if len(sess.Candidates) > 0 {
		return uc.save(ctx, sess)
	}

	sess.UpdatedAt = uc.clock()
	if err := uc.store.Delete(ctx, sess.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "uc.saveOrClose Delete %s: %v", sess.ID, err)
		return review.Session{}, err
	}
	uc.metrics.ReviewSessionsClosed.Inc()
	return sess, nil
}

func (uc *implUseCase) save(ctx context.Context, sess review.Session) (review.Session, error) {
	sess.UpdatedAt = uc.clock()
	if err := uc.store.Save(ctx, sess); err != nil {
		uc.l.Errorf(ctx, "uc.save %s: %v", sess.ID, err)
		return review.Session{}, err
	}
	return sess, nil
}

func checkIndex(sess review.Session, index int) error {
	if index < 0 || index >= len(sess.Candidates) {
		return fmt.Errorf("%w: %d not in [0,%d)", review.ErrIndexOutOfRange, index, len(sess.Candidates))
	}
	return nil
}

