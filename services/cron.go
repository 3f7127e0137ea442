// Package services hosts the scheduled jobs of the API.
package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/qwest/portfolioapi/api/item"
	"github.com/qwest/portfolioapi/config"
	"github.com/qwest/portfolioapi/shared/zaplogger"
)

// CronService keeps the public item cache warm so invalidations do not
// leave the gallery cold.
type CronService struct {
	cfg   *config.Config
	items *item.Service
	c     *cron.Cron
}

func NewCronService(cfg *config.Config, items *item.Service) *CronService {
	return &CronService{
		cfg:   cfg,
		items: items,
		c:     cron.New(),
	}
}

// Start registers and starts the scheduled jobs.
func (cs *CronService) Start() {
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Initializing CronService")

	cs.addScheduledJob("Items Cache Warm Job", cs.itemsCacheWarmJob, "*/15 * * * *")
	cs.addStartupJob("Items Cache Warm Job", cs.itemsCacheWarmJob, 1*time.Second)

	cs.c.Start()
}

// Stop halts the scheduler.
func (cs *CronService) Stop() {
	cs.c.Stop()
}

func (cs *CronService) addScheduledJob(name string, job func(), schedule string) {
	_, err := cs.c.AddFunc(schedule, func() {
		zaplogger.Info("Executing scheduled job", zaplogger.Fields{
			"job":  name,
			"time": time.Now().Format("15:04:05"),
		})
		job()
	})
	if err != nil {
		zaplogger.Error("Failed to schedule job", zaplogger.Fields{
			"job":   name,
			"error": err.Error(),
		})
		return
	}
	zaplogger.Info("  * scheduled: " + name + " [" + schedule + "]")
}

func (cs *CronService) addStartupJob(name string, job func(), delay time.Duration) {
	go func() {
		time.Sleep(delay)
		zaplogger.Info("Executing startup job", zaplogger.Fields{"job": name})
		job()
	}()
	zaplogger.Info("  * startup: " + name)
}

// itemsCacheWarmJob re-fetches the item list, which repopulates the
// Redis cache on a miss.
func (cs *CronService) itemsCacheWarmJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	items := cs.items.List(ctx)
	zaplogger.Info("Items cache warmed", zaplogger.Fields{"count": len(items)})
}
