package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// ScheduledTask runs a job on a cron schedule until cancelled. Runs never
// overlap: a tick that fires while the previous run is still busy is skipped.
type ScheduledTask struct {
	Name   string
	cronID cron.EntryID
	cron   *cron.Cron
	cancel chan struct{}
}

func NewScheduledTask(name, cronSpec string, taskFunc func(ctx context.Context)) (*ScheduledTask, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	cancel := make(chan struct{})
	task := &ScheduledTask{
		Name:   name,
		cron:   c,
		cancel: cancel,
	}

	id, err := c.AddFunc(cronSpec, func() {
		select {
		case <-cancel:
			return
		default:
			ctx, stop := context.WithCancel(context.Background())
			defer stop()
			go func() {
				select {
				case <-cancel:
					stop()
				case <-ctx.Done():
				}
			}()
			taskFunc(ctx)
		}
	})
	if err != nil {
		return nil, err
	}

	task.cronID = id
	c.Start()
	return task, nil
}

// Next reports when the task fires again.
func (s *ScheduledTask) Next() time.Time {
	return s.cron.Entry(s.cronID).Next
}

// Cancel removes the task and waits for a running job to return.
func (s *ScheduledTask) Cancel() {
	s.cron.Remove(s.cronID)
	close(s.cancel)
	<-s.cron.Stop().Done()
}
