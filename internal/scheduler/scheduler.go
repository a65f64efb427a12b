// Package scheduler triggers periodic maintenance work. The facet refresh
// keeps the filter dialog's option lists in step with library contents
// without recomputing them on every request.
package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/davidhaley/medley/internal/jobs"
)

type Scheduler struct {
	cron  *cron.Cron
	queue *jobs.Queue
}

func New(queue *jobs.Queue) *Scheduler {
	return &Scheduler{cron: cron.New(), queue: queue}
}

// Start registers the cron entries and begins the loop. spec is a standard
// five-field cron expression.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		if _, err := s.queue.Enqueue(jobs.TaskFacetsRefreshAll, struct{}{}); err != nil {
			log.Printf("[scheduler] facets refresh enqueue failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[scheduler] facet refresh scheduled (%s)", spec)
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[scheduler] stopped")
}
