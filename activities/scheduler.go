package activities

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hekimalabs/smas_backend/config"
	"github.com/hekimalabs/smas_backend/sms"
)

type JobStatus string

const (
	StatusSuccess JobStatus = "success"
	StatusSkipped JobStatus = "skipped"
	StatusFailed  JobStatus = "failed"
)

// Result is the outcome of one job on one tick.
type Result struct {
	Name     string
	Status   JobStatus
	Reason   string
	Duration time.Duration
}

type jobFunc func(ctx context.Context, tick Tick) error

type job struct {
	name string
	due  func(tick Tick) bool
	run  jobFunc
}

// Scheduler drives the hourly job loop and the minute snapshot loop.
// Jobs run sequentially in a fixed order; a panic or error in one job
// is contained at that job's boundary.
type Scheduler struct {
	Logger         *logrus.Logger
	SMS            sms.Sender
	HourInterval   time.Duration
	MinuteInterval time.Duration
	LockTTL        time.Duration

	instanceId string
	jobs       []job
}

const tickLockKey = "activities:tick"

func NewScheduler(logger *logrus.Logger, sender sms.Sender) *Scheduler {
	s := &Scheduler{
		Logger:         logger,
		SMS:            sender,
		HourInterval:   time.Hour,
		MinuteInterval: time.Minute,
		LockTTL:        10 * time.Minute,
		instanceId:     uuid.NewString(),
	}
	if v := os.Getenv("SCHEDULER_HOUR_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			s.HourInterval = d
		}
	}

	always := func(Tick) bool { return true }
	onReminderDayAt := func(hour int) func(Tick) bool {
		return func(t Tick) bool { return t.AtHour(hour) && t.OnReminderDay() }
	}

	s.jobs = []job{
		{name: "decrement_subscription_days", due: func(t Tick) bool { return t.AtHour(hourDecrementDays) }, run: s.decrementSubscriptionDays},
		{name: "expiry_reminders", due: onReminderDayAt(hourExpiryReminder), run: s.sendExpiryReminders},
		{name: "customer_debt_reminders", due: onReminderDayAt(hourDebtReminder), run: s.sendDebtReminders},
		{name: "stock_status_alerts", due: onReminderDayAt(hourStockStatus), run: s.sendStockStatusAlerts},
		{name: "incomplete_service_alerts", due: onReminderDayAt(hourServiceAlerts), run: s.sendIncompleteServiceAlerts},
		{name: "unpaid_expense_purchase_alerts", due: onReminderDayAt(hourServiceAlerts), run: s.sendUnpaidExpensePurchaseAlerts},
		{name: "unpaid_debt_summaries", due: onReminderDayAt(hourUnpaidDebts), run: s.sendUnpaidDebtSummaries},
		{name: "financial_reports", due: always, run: s.sendFinancialReports},
		{name: "purge_soft_deleted", due: always, run: s.purgeSoftDeleted},
		{name: "sweep_expired_branches", due: always, run: s.sweepExpiredBranches},
	}

	return s
}

// Run blocks until ctx is cancelled. The hour loop runs every job in
// order; the minute loop only re-checks the stock snapshot window.
func (s *Scheduler) Run(ctx context.Context) {
	s.Logger.WithFields(logrus.Fields{
		"instance":      s.instanceId,
		"hour_interval": s.HourInterval.String(),
	}).Info("activities scheduler started")

	hourTimer := time.NewTicker(s.HourInterval)
	defer hourTimer.Stop()
	minuteTimer := time.NewTicker(s.MinuteInterval)
	defer minuteTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Logger.Info("activities scheduler stopped")
			return
		case now := <-hourTimer.C:
			s.runFenced(ctx, NewTick(now))
		case now := <-minuteTimer.C:
			s.RunMinuteAt(ctx, NewTick(now))
		}
	}
}

// runFenced takes the tick lock so only one replica runs the hourly
// jobs. A lock held elsewhere skips the tick; a lock backend outage
// lets the tick proceed unfenced rather than silencing every job.
func (s *Scheduler) runFenced(ctx context.Context, tick Tick) {
	locker := config.GetRedisLock()
	if locker != nil {
		lock, err := locker.Obtain(ctx, tickLockKey, s.LockTTL, nil)
		if err != nil {
			if errors.Is(err, redislock.ErrNotObtained) {
				s.Logger.WithField("instance", s.instanceId).Debug("tick lock held elsewhere, skipping")
				return
			}
			config.LogError(s.Logger, "scheduler.go", "runFenced", "ObtainLock", tickLockKey, err)
		} else {
			defer lock.Release(ctx)
		}
	}

	s.RunTickAt(ctx, tick)
}

// RunTickAt evaluates every hourly job against the tick. Exposed for
// the ops endpoint and tests; production ticks arrive through Run.
func (s *Scheduler) RunTickAt(ctx context.Context, tick Tick) []Result {
	results := make([]Result, 0, len(s.jobs))
	for _, j := range s.jobs {
		results = append(results, s.runJob(ctx, j, tick))
	}

	s.Logger.WithFields(logrus.Fields{
		"instance": s.instanceId,
		"tick":     tick.At.Format(time.RFC3339),
		"summary":  summarize(results),
	}).Info("tick completed")

	return results
}

// RunMinuteAt runs only the end-of-day stock snapshot. The job itself
// re-checks the time window, so calling it every minute is cheap.
func (s *Scheduler) RunMinuteAt(ctx context.Context, tick Tick) Result {
	return s.runJob(ctx, job{
		name: "stock_snapshot",
		due:  func(t Tick) bool { return t.IsEndOfDay() },
		run:  s.captureStockSnapshots,
	}, tick)
}

func (s *Scheduler) runJob(ctx context.Context, j job, tick Tick) (result Result) {
	started := time.Now()
	result = Result{Name: j.name, Status: StatusSuccess}

	defer func() {
		result.Duration = time.Since(started)
		if r := recover(); r != nil {
			result.Status = StatusFailed
			result.Reason = fmt.Sprintf("panic: %v", r)
			s.Logger.WithFields(logrus.Fields{
				"job":   j.name,
				"panic": fmt.Sprintf("%v", r),
				"stack": string(debug.Stack()),
			}).Error("job panicked")
		}
	}()

	if !j.due(tick) {
		result.Status = StatusSkipped
		result.Reason = "not due"
		return result
	}

	if err := j.run(ctx, tick); err != nil {
		result.Status = StatusFailed
		result.Reason = err.Error()
		return result
	}

	return result
}

func summarize(results []Result) map[string]string {
	out := make(map[string]string, len(results))
	for _, r := range results {
		out[r.Name] = string(r.Status)
	}
	return out
}
