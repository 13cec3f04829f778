package usecase

import (
	"context"
	"slices"

	"task-capture/internal/extraction"
	"task-capture/internal/model"
	"task-capture/internal/review"
	"task-capture/pkg/datemath"
)

// Accept persists the candidate at the given index as a task, then asks the
// scheduler for a reminder when the task is dated. The accepted candidate
// leaves the session, and the session is deleted once empty. A scheduler
// failure is logged and does not undo the stored task.
//
// The session lock is held across the write so two concurrent accepts of the
// same index cannot both store the candidate.
func (uc *implUseCase) Accept(ctx context.Context, sc model.Scope, input review.AcceptInput) (review.AcceptOutput, error) {
	unlock := uc.locks.lock(input.SessionID)
	defer unlock()

	sess, err := uc.load(ctx, sc, input.SessionID)
	if err != nil {
		return review.AcceptOutput{}, err
	}
	if err := checkIndex(sess, input.Index); err != nil {
		return review.AcceptOutput{}, err
	}

	task := uc.toTask(sess.Candidates[input.Index], sess.Source)
	stored, err := uc.writer.CreateTask(ctx, task)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Accept CreateTask: %v", err)
		return review.AcceptOutput{}, err
	}
	uc.metrics.TasksAccepted.WithLabelValues(string(task.Source)).Inc()

	sess.Candidates = slices.Delete(sess.Candidates, input.Index, input.Index+1)
	sess, err = uc.saveOrClose(ctx, sess)
	if err != nil {
		return review.AcceptOutput{}, err
	}

	out := review.AcceptOutput{Task: stored, Session: sess}
	if stored.Due == nil || uc.scheduler == nil {
		return out, nil
	}

	err = uc.scheduler.ScheduleReminder(ctx, review.Reminder{
		Task:    stored,
		Start:   *stored.Due,
		AllDay:  stored.AllDay,
		Minutes: uc.reminderMinutes,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Accept ScheduleReminder for %s: %v", stored.ID, err)
		return out, nil
	}
	out.Scheduled = true
	return out, nil
}

func (uc *implUseCase) toTask(c extraction.Candidate, source model.TaskSource) model.Task {
	if source == "" {
		source = model.SourceChat
	}
	t := model.Task{
		Title:      c.Title,
		CategoryID: c.SuggestedCategory,
		Priority:   c.InferredPriority,
		Source:     source,
	}
	if c.Date != nil {
		due := datemath.ParsedDateTime{Date: *c.Date, Time: c.Time}.At(uc.dateMath.Location())
		t.Due = &due
		t.AllDay = c.Time == nil
	}
	return t
}
