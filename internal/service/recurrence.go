package service

import "time"

// RecurrenceChecker decides whether a recurring transaction produces a copy
// on a given day.
type RecurrenceChecker interface {
	IsDue(templateDate, today time.Time) bool
}

// WeeklyChecker is due on the template's weekday.
type WeeklyChecker struct{}

func (WeeklyChecker) IsDue(templateDate, today time.Time) bool {
	return templateDate.Weekday() == today.Weekday()
}

// MonthlyChecker is due on the template's day of the month. Templates dated
// the 29th to 31st are skipped in months without that day.
type MonthlyChecker struct{}

func (MonthlyChecker) IsDue(templateDate, today time.Time) bool {
	return templateDate.Day() == today.Day()
}

var recurrenceCheckers = map[RecurrenceInterval]RecurrenceChecker{
	RecurrenceWeekly:  WeeklyChecker{},
	RecurrenceMonthly: MonthlyChecker{},
}

// GetRecurrenceChecker returns the checker for interval, or false when the
// interval is unknown. Unknown intervals are never due.
func GetRecurrenceChecker(interval RecurrenceInterval) (RecurrenceChecker, bool) {
	checker, ok := recurrenceCheckers[interval]
	return checker, ok
}

// isDue reports whether tx is a recurring template with a copy due today.
func isDue(tx Transaction, today time.Time) bool {
	if !tx.IsRecurring || tx.Interval == nil {
		return false
	}
	checker, ok := GetRecurrenceChecker(*tx.Interval)
	if !ok {
		return false
	}
	return checker.IsDue(tx.Date, today)
}
