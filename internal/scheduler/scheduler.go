// Package scheduler runs the daily dose materialization as a background
// cron job. It is best-effort and non-durable: a stopped process simply
// misses a run, and the generator's idempotence makes the next run a
// safe catch-up.
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

type ScheduleGenerator interface {
	GenerateForDate(date string) (int, error)
}

type OverdueSweeper interface {
	SweepOverdue() (int, error)
}

type Scheduler struct {
	generator ScheduleGenerator
	sweeper   OverdueSweeper
	location  *time.Location
	cron      *cron.Cron
}

func New(generator ScheduleGenerator, sweeper OverdueSweeper, location *time.Location) *Scheduler {
	if location == nil {
		location = time.Local
	}
	return &Scheduler{
		generator: generator,
		sweeper:   sweeper,
		location:  location,
		cron:      cron.New(cron.WithLocation(location)),
	}
}

// Start runs one pass immediately, then every day shortly after
// midnight.
func (scheduler *Scheduler) Start() error {
	scheduler.runOnce()

	if _, err := scheduler.cron.AddFunc("5 0 * * *", scheduler.runOnce); err != nil {
		return err
	}
	scheduler.cron.Start()
	return nil
}

func (scheduler *Scheduler) Stop() {
	scheduler.cron.Stop()
}

func (scheduler *Scheduler) runOnce() {
	today := time.Now().In(scheduler.location).Format("2006-01-02")

	created, err := scheduler.generator.GenerateForDate(today)
	if err != nil {
		log.Printf("schedule generation for %s failed: %v", today, err)
	} else if created > 0 {
		log.Printf("schedule generation for %s created %d doses", today, created)
	}

	swept, err := scheduler.sweeper.SweepOverdue()
	if err != nil {
		log.Printf("overdue dose sweep failed: %v", err)
	} else if swept > 0 {
		log.Printf("marked %d overdue doses missed", swept)
	}
}
