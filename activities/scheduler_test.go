package activities

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testScheduler(jobs []job) *Scheduler {
	return &Scheduler{
		Logger:     quietLogger(),
		instanceId: "test",
		jobs:       jobs,
	}
}

func TestPanickingJobDoesNotAbortOthers(t *testing.T) {
	ran := make([]string, 0, 2)
	always := func(Tick) bool { return true }

	s := testScheduler([]job{
		{name: "boom", due: always, run: func(ctx context.Context, tick Tick) error {
			panic("job blew up")
		}},
		{name: "after", due: always, run: func(ctx context.Context, tick Tick) error {
			ran = append(ran, "after")
			return nil
		}},
	})

	results := s.RunTickAt(context.Background(), NewTick(time.Now()))

	if len(ran) != 1 || ran[0] != "after" {
		t.Fatalf("job after the panic did not run: %v", ran)
	}
	if results[0].Status != StatusFailed {
		t.Fatalf("panicking job status = %s, want failed", results[0].Status)
	}
	if results[1].Status != StatusSuccess {
		t.Fatalf("following job status = %s, want success", results[1].Status)
	}
}

func TestNotDueJobIsSkipped(t *testing.T) {
	ran := false

	s := testScheduler([]job{
		{name: "off_hour", due: func(Tick) bool { return false }, run: func(ctx context.Context, tick Tick) error {
			ran = true
			return nil
		}},
	})

	results := s.RunTickAt(context.Background(), NewTick(time.Now()))

	if ran {
		t.Fatal("not-due job must not run")
	}
	if results[0].Status != StatusSkipped {
		t.Fatalf("status = %s, want skipped", results[0].Status)
	}
}

func TestFailingJobReportsReason(t *testing.T) {
	s := testScheduler([]job{
		{name: "flaky", due: func(Tick) bool { return true }, run: func(ctx context.Context, tick Tick) error {
			return errors.New("gateway down")
		}},
	})

	results := s.RunTickAt(context.Background(), NewTick(time.Now()))

	if results[0].Status != StatusFailed || results[0].Reason != "gateway down" {
		t.Fatalf("result = %+v", results[0])
	}
}

func TestJobsRunInRegistrationOrder(t *testing.T) {
	order := make([]string, 0, 3)
	always := func(Tick) bool { return true }
	record := func(name string) jobFunc {
		return func(ctx context.Context, tick Tick) error {
			order = append(order, name)
			return nil
		}
	}

	s := testScheduler([]job{
		{name: "first", due: always, run: record("first")},
		{name: "second", due: always, run: record("second")},
		{name: "third", due: always, run: record("third")},
	})

	s.RunTickAt(context.Background(), NewTick(time.Now()))

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Fatalf("order = %v", order)
	}
}

func TestDefaultJobCadence(t *testing.T) {
	s := NewScheduler(quietLogger(), nil)

	due := func(tick Tick) map[string]bool {
		out := make(map[string]bool, len(s.jobs))
		for _, j := range s.jobs {
			out[j.name] = j.due(tick)
		}
		return out
	}

	// Monday 01:00: only the decrement is due among fixed-hour jobs.
	monday1am := due(at(2026, time.August, 31, 1, 0))
	if !monday1am["decrement_subscription_days"] {
		t.Error("decrement should be due at 01:00")
	}
	if monday1am["expiry_reminders"] {
		t.Error("expiry reminders are not due at 01:00")
	}

	// Monday 08:00: expiry reminders fire.
	if !due(at(2026, time.August, 31, 8, 0))["expiry_reminders"] {
		t.Error("expiry reminders should be due Monday 08:00")
	}
	// Tuesday 08:00: right hour, wrong weekday.
	if due(at(2026, time.September, 1, 8, 0))["expiry_reminders"] {
		t.Error("expiry reminders must not fire on a Tuesday")
	}

	// Sweeper jobs run on every tick.
	anyHour := due(at(2026, time.September, 1, 3, 0))
	if !anyHour["purge_soft_deleted"] || !anyHour["sweep_expired_branches"] {
		t.Error("sweeper jobs should be due every hour")
	}
	if !anyHour["financial_reports"] {
		t.Error("report job gates per branch, the job itself is always due")
	}
}

func TestMinuteJobOnlyFiresAtEndOfDay(t *testing.T) {
	s := testScheduler(nil)
	s.Logger = quietLogger()

	result := s.RunMinuteAt(context.Background(), at(2026, time.August, 30, 12, 30))
	if result.Status != StatusSkipped {
		t.Fatalf("midday snapshot status = %s, want skipped", result.Status)
	}
}
