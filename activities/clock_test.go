package activities

import (
	"testing"
	"time"
)

func at(year int, month time.Month, day, hour, minute int) Tick {
	return NewTick(time.Date(year, month, day, hour, minute, 0, 0, time.UTC))
}

func TestReminderDays(t *testing.T) {
	// 2026-08-31 is a Monday.
	cases := []struct {
		day  int
		want bool
	}{
		{31, true},  // Monday
		{1, false},  // Tuesday (Sep)
		{2, true},   // Wednesday
		{3, false},  // Thursday
		{4, true},   // Friday
		{5, false},  // Saturday
		{6, false},  // Sunday
	}
	for _, c := range cases {
		var tick Tick
		if c.day == 31 {
			tick = at(2026, time.August, c.day, 8, 0)
		} else {
			tick = at(2026, time.September, c.day, 8, 0)
		}
		if got := tick.OnReminderDay(); got != c.want {
			t.Errorf("OnReminderDay(%s) = %v, want %v", tick.At.Weekday(), got, c.want)
		}
	}
}

func TestEndOfDayWindow(t *testing.T) {
	if !at(2026, time.August, 30, 23, 59).IsEndOfDay() {
		t.Error("23:59 should be end of day")
	}
	if at(2026, time.August, 30, 23, 58).IsEndOfDay() {
		t.Error("23:58 should not be end of day")
	}
	if at(2026, time.August, 30, 0, 59).IsEndOfDay() {
		t.Error("00:59 should not be end of day")
	}
}

func TestAtClosingHour(t *testing.T) {
	tick := at(2026, time.August, 30, 18, 15)

	if !tick.AtClosingHour("18:00") {
		t.Error("18:15 should match closing time 18:00")
	}
	if tick.AtClosingHour("19:00") {
		t.Error("18:15 should not match closing time 19:00")
	}
	if tick.AtClosingHour("") {
		t.Error("absent closing time must never be due")
	}
	if tick.AtClosingHour("garbage") {
		t.Error("malformed closing time must never be due")
	}
	if tick.AtClosingHour("25:00") {
		t.Error("out-of-range hour must never be due")
	}
}

func TestLastDayOfMonth(t *testing.T) {
	if !at(2026, time.August, 31, 18, 0).IsLastDayOfMonth() {
		t.Error("Aug 31 is the last day of August")
	}
	if at(2026, time.August, 30, 18, 0).IsLastDayOfMonth() {
		t.Error("Aug 30 is not the last day of August")
	}
	if !at(2028, time.February, 29, 18, 0).IsLastDayOfMonth() {
		t.Error("Feb 29 is the last day of a leap February")
	}
	if at(2028, time.February, 28, 18, 0).IsLastDayOfMonth() {
		t.Error("Feb 28 is not the last day of a leap February")
	}
}

func TestLastDayOfYear(t *testing.T) {
	if !at(2026, time.December, 31, 18, 0).IsLastDayOfYear() {
		t.Error("Dec 31 is the last day of the year")
	}
	if at(2026, time.December, 30, 18, 0).IsLastDayOfYear() {
		t.Error("Dec 30 is not the last day of the year")
	}
}

func TestReportWindows(t *testing.T) {
	tick := at(2026, time.August, 30, 18, 0)

	if got := tick.StartOfDay(); got.Hour() != 0 || got.Day() != 30 {
		t.Errorf("StartOfDay = %v", got)
	}
	if got := tick.StartOfWeek(); got.Day() != 24 {
		t.Errorf("StartOfWeek = %v, want Aug 24", got)
	}
	if got := tick.StartOfMonth(); got.Day() != 1 || got.Month() != time.August {
		t.Errorf("StartOfMonth = %v", got)
	}
	if got := tick.StartOfYear(); got.Month() != time.January || got.Day() != 1 {
		t.Errorf("StartOfYear = %v", got)
	}
	if got := tick.EndOfDay(); got.Day() != 31 || got.Hour() != 0 {
		t.Errorf("EndOfDay = %v, want Aug 31 midnight", got)
	}
}
