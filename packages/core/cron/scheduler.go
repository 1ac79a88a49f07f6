package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"

	"github.com/robfig/cron/v3"
)

// DefaultArchiveSchedule runs the archival sweep every day at 03:00 (seconds precision).
const DefaultArchiveSchedule = "0 0 3 * * *"

const sweepTimeout = 5 * time.Minute

// Archiver snapshots every edition whose end date has passed.
type Archiver interface {
	ArchiveFinished(ctx context.Context) ([]models.SnapshotResult, error)
}

type Scheduler struct {
	cron     *cron.Cron
	archiver Archiver
	schedule string
	log      *slog.Logger
}

func NewScheduler(archiver Archiver, schedule string, log *slog.Logger) *Scheduler {
	log = logger.OrDefault(log).With("component", "scheduler")
	if schedule == "" {
		schedule = DefaultArchiveSchedule
	}

	c := cron.New(cron.WithSeconds(), cron.WithLogger(cronLogger{log}), cron.WithChain(cron.SkipIfStillRunning(cronLogger{log})))

	return &Scheduler{
		cron:     c,
		archiver: archiver,
		schedule: schedule,
		log:      log,
	}
}

// Start registers the jobs and starts the scheduler
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runArchival); err != nil {
		return fmt.Errorf("failed to schedule archival job %q: %w", s.schedule, err)
	}

	s.cron.Start()
	s.log.Info("scheduler started", "archive_schedule", s.schedule)
	return nil
}

// Stop waits for a running job to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) runArchival() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	results, err := s.archiver.ArchiveFinished(ctx)
	if err != nil {
		s.log.Error("archival sweep failed", "error", err)
		return
	}
	if len(results) == 0 {
		s.log.Debug("no finished editions to archive")
		return
	}
	for _, r := range results {
		s.log.Info("archival sweep", "edition_id", r.EditionID, "outcome", r.Outcome, "rows", r.Rows)
	}
}

// RunNow triggers the archival sweep synchronously
func (s *Scheduler) RunNow() {
	s.log.Info("manually triggering archival sweep")
	s.runArchival()
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
