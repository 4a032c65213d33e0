package activities

import (
	"strconv"
	"strings"
	"time"
)

// Trigger hours for the fixed-hour jobs. The loop runs once per hour,
// so each job fires at most once per matching hour; a delayed loop
// loses that firing, there is no catch-up.
const (
	hourDecrementDays  = 1
	hourExpiryReminder = 8
	hourDebtReminder   = 10
	hourStockStatus    = 11
	hourServiceAlerts  = 14
	hourUnpaidDebts    = 16
)

// Tick is one evaluation of the wall clock. Every due-predicate reads
// from here so tests can replay any instant.
type Tick struct {
	At time.Time
}

func NewTick(at time.Time) Tick {
	return Tick{At: at}
}

func (t Tick) AtHour(hour int) bool {
	return t.At.Hour() == hour
}

// OnReminderDay reports whether reminders go out today. Reminder jobs
// run Monday, Wednesday and Friday only.
func (t Tick) OnReminderDay() bool {
	switch t.At.Weekday() {
	case time.Monday, time.Wednesday, time.Friday:
		return true
	}
	return false
}

func (t Tick) IsSunday() bool {
	return t.At.Weekday() == time.Sunday
}

func (t Tick) IsLastDayOfMonth() bool {
	return t.At.AddDate(0, 0, 1).Day() == 1
}

func (t Tick) IsLastDayOfYear() bool {
	return t.At.Month() == time.December && t.At.Day() == 31
}

// IsEndOfDay gates the stock snapshot: the minute loop checks every
// minute but only the last minute of the day qualifies.
func (t Tick) IsEndOfDay() bool {
	return t.At.Hour() == 23 && t.At.Minute() >= 59
}

// AtClosingHour matches the tick against a branch's "HH:MM" closing
// time. A missing or malformed setting means not due, never an error.
func (t Tick) AtClosingHour(closingTime string) bool {
	closingTime = strings.TrimSpace(closingTime)
	if closingTime == "" {
		return false
	}

	parts := strings.SplitN(closingTime, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}

	return t.At.Hour() == hour
}

// StartOfDay truncates the tick to midnight in its own location.
func (t Tick) StartOfDay() time.Time {
	return time.Date(t.At.Year(), t.At.Month(), t.At.Day(), 0, 0, 0, 0, t.At.Location())
}

func (t Tick) StartOfWeek() time.Time {
	return t.StartOfDay().AddDate(0, 0, -6)
}

func (t Tick) StartOfMonth() time.Time {
	return time.Date(t.At.Year(), t.At.Month(), 1, 0, 0, 0, 0, t.At.Location())
}

func (t Tick) StartOfYear() time.Time {
	return time.Date(t.At.Year(), time.January, 1, 0, 0, 0, 0, t.At.Location())
}

func (t Tick) EndOfDay() time.Time {
	return t.StartOfDay().AddDate(0, 0, 1)
}
