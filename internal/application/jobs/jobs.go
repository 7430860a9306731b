// Package jobs runs periodic maintenance next to the HTTP server.
package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sangkips/innkeeper-api/internal/domain/repository"
)

// IdempotencyCleaner removes expired idempotency keys
type IdempotencyCleaner interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// Scheduler owns the cron runner
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler creates a stopped scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

// RegisterIdempotencyCleanup schedules repo.DeleteExpired on spec (cron syntax
// or descriptors such as "@hourly")
func (s *Scheduler) RegisterIdempotencyCleanup(spec string, repo repository.IdempotencyRepository) error {
	_, err := s.cron.AddFunc(spec, CleanupIdempotencyKeys(repo))
	if err != nil {
		return fmt.Errorf("failed to schedule idempotency cleanup %q: %w", spec, err)
	}
	return nil
}

// CleanupIdempotencyKeys returns the job body, usable without a scheduler
func CleanupIdempotencyKeys(repo IdempotencyCleaner) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		removed, err := repo.DeleteExpired(ctx)
		if err != nil {
			log.Printf("[jobs] idempotency cleanup failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("[jobs] removed %d expired idempotency keys", removed)
		}
	}
}

// Start runs the scheduled jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("Cron jobs initialized successfully")
}

// Stop waits for running jobs to finish or ctx to expire
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Entries returns the number of scheduled jobs
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
