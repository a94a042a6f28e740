package controllers

import (
	"context"
	"sync"

	"wallet/src/config"
	"wallet/src/models"
	"wallet/src/scheduler"
	"wallet/src/services"
	"wallet/src/utils"

	"github.com/sirupsen/logrus"
)

type Controller struct {
	Snapshots      services.SnapshotServiceI
	Logger         *logrus.Logger
	SchedulerMutex sync.Mutex
	Scheduler      *scheduler.ScheduledTask
}

func NewController(cfg *config.Config, logger *logrus.Logger) *Controller {
	stores := services.NewStores(cfg)
	portfolio := services.NewPortfolioService(stores, services.NewPriceServiceFromConfig(cfg))
	return &Controller{
		Snapshots: services.NewSnapshotService(portfolio, services.NewHistoryStore(cfg)),
		Logger:    logger,
	}
}

func (c *Controller) TakeSnapshot(ctx context.Context) (*models.PortfolioSnapshot, error) {
	return c.Snapshots.TakeSnapshot(ctx)
}

// ScheduleSnapshots (re)installs the periodic snapshot job.
func (c *Controller) ScheduleSnapshots(cronSpec string) error {
	c.SchedulerMutex.Lock()
	defer c.SchedulerMutex.Unlock()

	if c.Scheduler != nil {
		c.Scheduler.Cancel()
		c.Scheduler = nil
	}

	task, err := scheduler.NewScheduledTask("portfolio-snapshot", cronSpec, func(ctx context.Context) {
		ctx = utils.WithLogger(ctx, c.Logger)
		if _, err := c.Snapshots.TakeSnapshot(ctx); err != nil {
			c.Logger.WithError(err).Error("Scheduled portfolio snapshot failed")
		}
	})
	if err != nil {
		return err
	}
	c.Scheduler = task
	c.Logger.WithFields(logrus.Fields{"task": task.Name, "cron": cronSpec, "next": task.Next()}).Info("Snapshot task scheduled")
	return nil
}

// StopScheduler cancels the snapshot job if one is installed.
func (c *Controller) StopScheduler() {
	c.SchedulerMutex.Lock()
	defer c.SchedulerMutex.Unlock()
	if c.Scheduler != nil {
		c.Scheduler.Cancel()
		c.Scheduler = nil
	}
}
