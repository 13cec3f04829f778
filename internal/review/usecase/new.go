package usecase

import (
	"time"

	"task-capture/internal/review"
	"task-capture/internal/review/repository"
	"task-capture/pkg/datemath"
	pkgLog "task-capture/pkg/log"
	"task-capture/pkg/metrics"
)

// implUseCase is the private implementation of review.UseCase.
type implUseCase struct {
	l               pkgLog.Logger
	store           repository.Store
	writer          review.TaskWriter
	scheduler       review.ReminderScheduler
	dateMath        *datemath.Parser
	metrics         *metrics.Metrics
	reminderMinutes []int
	clock           func() time.Time
	locks           *sessionLocks
}

// New creates a new review UseCase. scheduler may be nil when reminders are
// not configured.
func New(
	l pkgLog.Logger,
	store repository.Store,
	writer review.TaskWriter,
	scheduler review.ReminderScheduler,
	dateMath *datemath.Parser,
	m *metrics.Metrics,
	reminderMinutes []int,
) *implUseCase {
	return &implUseCase{
		l:               l,
		store:           store,
		writer:          writer,
		scheduler:       scheduler,
		dateMath:        dateMath,
		metrics:         m,
		reminderMinutes: reminderMinutes,
		clock:           dateMath.Now,
		locks:           &sessionLocks{},
	}
}
