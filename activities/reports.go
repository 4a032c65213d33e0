package activities

import (
	"context"
	"time"

	"github.com/hekimalabs/smas_backend/config"
	"github.com/hekimalabs/smas_backend/models"
	"github.com/hekimalabs/smas_backend/models/reports"
	"github.com/hekimalabs/smas_backend/utils"
)

type reportPeriod struct {
	key   string
	title string
	due   func(tick Tick) bool
	from  func(tick Tick) time.Time
}

// reportPeriods lists the closing-hour report family. Daily goes out
// every day, weekly on Sundays, monthly on the last day of the month,
// annual on December 31st. All windows end at the branch's end of day.
func reportPeriods() []reportPeriod {
	return []reportPeriod{
		{
			key:   models.NotificationDailyReport,
			title: "Ripoti ya siku",
			due:   func(Tick) bool { return true },
			from:  Tick.StartOfDay,
		},
		{
			key:   models.NotificationWeeklyReport,
			title: "Ripoti ya wiki",
			due:   Tick.IsSunday,
			from:  Tick.StartOfWeek,
		},
		{
			key:   models.NotificationMonthlyReport,
			title: "Ripoti ya mwezi",
			due:   Tick.IsLastDayOfMonth,
			from:  Tick.StartOfMonth,
		},
		{
			key:   models.NotificationAnnualReport,
			title: "Ripoti ya mwaka",
			due:   Tick.IsLastDayOfYear,
			from:  Tick.StartOfYear,
		},
	}
}

// sendFinancialReports delivers the closing-hour reports. Each branch
// is matched against its own configured closing time; a branch without
// one is simply never due. An aggregation failure aborts every report
// for that branch on this tick, a partial statement is worse than a
// late one.
func (s *Scheduler) sendFinancialReports(ctx context.Context, tick Tick) error {
	branches, err := s.listActiveBranches(ctx)
	if err != nil {
		return err
	}

	for i := range branches {
		branch := &branches[i]
		if !tick.AtClosingHour(branch.Settings.ClosingTime) {
			continue
		}

		to := tick.EndOfDay()
		for _, period := range reportPeriods() {
			if !period.due(tick) {
				continue
			}
			if !branch.Settings.HasNotification(period.key) {
				continue
			}

			statement, err := reports.GetIncomeStatement(ctx, branch.ID, period.from(tick), to)
			if err != nil {
				config.LogError(s.Logger, "reports.go", "sendFinancialReports", "GetIncomeStatement", branch.ID, err)
				break
			}
			if statement.IsZero() {
				continue
			}

			text := reportMessage(period.title, branch.Name, statement)
			s.send(ctx, branch, text, utils.TanzaniaPhone(branch.PhoneNumber))
		}
	}

	return nil
}
