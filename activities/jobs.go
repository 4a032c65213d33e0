package activities

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hekimalabs/smas_backend/config"
	"github.com/hekimalabs/smas_backend/models"
	"github.com/hekimalabs/smas_backend/sms"
	"github.com/hekimalabs/smas_backend/utils"
)

// send pushes one message through the gateway. Branches without their
// own gateway credentials use the platform defaults; a branch is only
// skipped when neither is available. Send failures are logged and
// swallowed; a dead gateway must not fail the job that noticed a low
// stock level.
func (s *Scheduler) send(ctx context.Context, branch *models.Branch, text string, receivers ...string) {
	if len(receivers) == 0 {
		return
	}

	vendor, apiKey := branch.Vendor, branch.ApiKey
	if !branch.SMSConfigured() {
		vendor = utils.GetEnv("SMS_DEFAULT_VENDOR", "")
		apiKey = utils.GetEnv("SMS_DEFAULT_API_KEY", "")
	}
	if vendor == "" || apiKey == "" {
		return
	}

	err := s.SMS.Send(ctx, sms.Message{
		Text:      text,
		Receivers: receivers,
		Vendor:    vendor,
		ApiKey:    apiKey,
	})
	if err != nil {
		config.LogError(s.Logger, "jobs.go", "send", "Send", branch.Name, err)
	}
}

func (s *Scheduler) decrementSubscriptionDays(ctx context.Context, tick Tick) error {
	affected, err := models.DecrementSubscriptionDays(ctx)
	if err != nil {
		config.LogError(s.Logger, "jobs.go", "decrementSubscriptionDays", "DecrementSubscriptionDays", nil, err)
		return err
	}

	s.Logger.WithField("branches", affected).Info("subscription days decremented")
	return nil
}

// expiryReminderDue starts the countdown a week out. Every branch at
// or under the threshold is messaged on each reminder day, including
// the post-expiry countdown to deletion.
func expiryReminderDue(days int) bool {
	return days <= 7
}

// sendExpiryReminders messages branches whose subscription is running
// out, from a week before expiry through the 7-day countdown to
// deletion.
func (s *Scheduler) sendExpiryReminders(ctx context.Context, tick Tick) error {
	branches, err := s.listBranches(ctx)
	if err != nil {
		return err
	}

	for i := range branches {
		branch := &branches[i]
		if !branch.Fee.IsPositive() {
			continue
		}
		if !branch.Settings.HasNotification(models.NotificationMonthlySubscription) {
			continue
		}
		if !expiryReminderDue(branch.Days) {
			continue
		}

		s.send(ctx, branch, subscriptionMessage(branch.Days), utils.InternationalPhone(branch.PhoneNumber))
	}

	return nil
}

// outstandingByCustomer folds a customer's debts into one total so a
// customer with several open debts gets a single reminder. The
// returned ids keep the debts' order for deterministic sends.
func outstandingByCustomer(debts []models.Debt) ([]uint, map[uint]decimal.Decimal) {
	order := make([]uint, 0, len(debts))
	totals := make(map[uint]decimal.Decimal, len(debts))
	for _, debt := range debts {
		if _, seen := totals[debt.CustomerId]; !seen {
			order = append(order, debt.CustomerId)
		}
		totals[debt.CustomerId] = totals[debt.CustomerId].Add(debt.Outstanding())
	}
	return order, totals
}

// sendDebtReminders texts each debtor customer one message with their
// total outstanding balance. A failed debt query is logged and that
// branch is treated as having nothing to remind.
func (s *Scheduler) sendDebtReminders(ctx context.Context, tick Tick) error {
	branches, err := s.listActiveBranches(ctx)
	if err != nil {
		return err
	}

	for i := range branches {
		branch := &branches[i]
		if !branch.Settings.HasNotification(models.NotificationCustomerDebtReminder) {
			continue
		}

		debts, err := models.ListUnpaidDebts(ctx, branch.ID, models.DebtTypeDebtor)
		if err != nil {
			config.LogError(s.Logger, "jobs.go", "sendDebtReminders", "ListUnpaidDebts", branch.ID, err)
			continue
		}

		customerIds, totals := outstandingByCustomer(debts)
		for _, customerId := range customerIds {
			customer, err := models.GetCustomer(ctx, branch.ID, customerId)
			if err != nil {
				config.LogError(s.Logger, "jobs.go", "sendDebtReminders", "GetCustomer", customerId, err)
				continue
			}
			if customer.PhoneNumber == "" {
				continue
			}

			text := debtReminderMessage(customer.Name, branch.Name, utils.FormatAmount(totals[customerId]))
			s.send(ctx, branch, text, utils.TanzaniaPhone(customer.PhoneNumber))
		}
	}

	return nil
}

func (s *Scheduler) sendStockStatusAlerts(ctx context.Context, tick Tick) error {
	branches, err := s.listActiveBranches(ctx)
	if err != nil {
		return err
	}

	for i := range branches {
		branch := &branches[i]
		if !branch.Settings.HasNotification(models.NotificationProductStock) {
			continue
		}

		products, err := models.ListReorderProducts(ctx, branch.ID)
		if err != nil {
			config.LogError(s.Logger, "jobs.go", "sendStockStatusAlerts", "ListReorderProducts", branch.ID, err)
			continue
		}
		if len(products) == 0 {
			continue
		}

		names := make([]string, 0, len(products))
		for _, p := range products {
			names = append(names, p.Name)
		}

		s.send(ctx, branch, stockStatusMessage(names), utils.TanzaniaPhone(branch.PhoneNumber))
	}

	return nil
}

func (s *Scheduler) sendIncompleteServiceAlerts(ctx context.Context, tick Tick) error {
	branches, err := s.listActiveBranches(ctx)
	if err != nil {
		return err
	}

	for i := range branches {
		branch := &branches[i]
		if !branch.Settings.HasNotification(models.NotificationIncompleteService) {
			continue
		}

		count, err := models.CountIncompleteServices(ctx, branch.ID)
		if err != nil {
			config.LogError(s.Logger, "jobs.go", "sendIncompleteServiceAlerts", "CountIncompleteServices", branch.ID, err)
			continue
		}

		s.send(ctx, branch, incompleteServiceMessage(count), utils.TanzaniaPhone(branch.PhoneNumber))
	}

	return nil
}

func (s *Scheduler) sendUnpaidExpensePurchaseAlerts(ctx context.Context, tick Tick) error {
	branches, err := s.listActiveBranches(ctx)
	if err != nil {
		return err
	}

	for i := range branches {
		branch := &branches[i]
		if !branch.Settings.HasNotification(models.NotificationUnpaidExpensePurchase) {
			continue
		}

		expenses, err := models.CountUnpaidExpenses(ctx, branch.ID)
		if err != nil {
			config.LogError(s.Logger, "jobs.go", "sendUnpaidExpensePurchaseAlerts", "CountUnpaidExpenses", branch.ID, err)
			continue
		}
		purchases, err := models.CountUnpaidPurchases(ctx, branch.ID)
		if err != nil {
			config.LogError(s.Logger, "jobs.go", "sendUnpaidExpensePurchaseAlerts", "CountUnpaidPurchases", branch.ID, err)
			continue
		}

		s.send(ctx, branch, unpaidExpensePurchaseMessage(expenses, purchases), utils.TanzaniaPhone(branch.PhoneNumber))
	}

	return nil
}

func (s *Scheduler) sendUnpaidDebtSummaries(ctx context.Context, tick Tick) error {
	branches, err := s.listActiveBranches(ctx)
	if err != nil {
		return err
	}

	for i := range branches {
		branch := &branches[i]
		if !branch.Settings.HasNotification(models.NotificationDailyDebtsReport) {
			continue
		}

		debtorDebts, err := models.ListUnpaidDebts(ctx, branch.ID, models.DebtTypeDebtor)
		if err != nil {
			config.LogError(s.Logger, "jobs.go", "sendUnpaidDebtSummaries", "ListDebtorDebts", branch.ID, err)
			continue
		}
		creditorDebts, err := models.ListUnpaidDebts(ctx, branch.ID, models.DebtTypeCreditor)
		if err != nil {
			config.LogError(s.Logger, "jobs.go", "sendUnpaidDebtSummaries", "ListCreditorDebts", branch.ID, err)
			continue
		}

		debtorTotal := decimal.Zero
		for _, debt := range debtorDebts {
			debtorTotal = debtorTotal.Add(debt.Outstanding())
		}
		creditorTotal := decimal.Zero
		for _, debt := range creditorDebts {
			creditorTotal = creditorTotal.Add(debt.Outstanding())
		}

		text := unpaidDebtsMessage(len(debtorDebts), utils.FormatAmount(debtorTotal),
			len(creditorDebts), utils.FormatAmount(creditorTotal))
		s.send(ctx, branch, text, utils.TanzaniaPhone(branch.PhoneNumber))
	}

	return nil
}
