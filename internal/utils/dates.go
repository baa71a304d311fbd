package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// YearsToExpiry converts a YYYY-MM-DD expiration date into the ACT/365
// year fraction the solver expects. Expirations in the past or on the
// valuation date are rejected.
func YearsToExpiry(expiration string, now time.Time) (float64, error) {
	exp, err := time.Parse(dateLayout, expiration)
	if err != nil {
		return 0, fmt.Errorf("invalid expiration date %q (want YYYY-MM-DD)", expiration)
	}

	years := exp.Sub(now).Hours() / 24.0 / 365.0
	if years <= 0 {
		return 0, fmt.Errorf("expiration %s is not in the future", expiration)
	}
	return years, nil
}

// CalculateNextOptionsExpiration returns the next third Friday, the
// standard monthly options expiration:
// - Third Friday of current month if we haven't reached the expiration week yet
// - Third Friday of next month if we're in or past the expiration week
func CalculateNextOptionsExpiration() string {
	today := time.Now()
	currentMonth := today.Month()
	currentYear := today.Year()

	// Find 3rd Friday of current month
	firstDay := time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, today.Location())
	firstFriday := firstDay
	for firstFriday.Weekday() != time.Friday {
		firstFriday = firstFriday.AddDate(0, 0, 1)
	}
	thirdFriday := firstFriday.AddDate(0, 0, 14)

	// If current day is in the week of 3rd Friday or past it, use next month's 3rd Friday
	weekStart := thirdFriday.AddDate(0, 0, -7)

	if today.After(weekStart) || today.Equal(weekStart) {
		// Use next month's 3rd Friday
		nextMonth := currentMonth + 1
		nextYear := currentYear
		if nextMonth > 12 {
			nextMonth = 1
			nextYear++
		}
		nextFirstDay := time.Date(nextYear, nextMonth, 1, 0, 0, 0, 0, today.Location())
		nextFirstFriday := nextFirstDay
		for nextFirstFriday.Weekday() != time.Friday {
			nextFirstFriday = nextFirstFriday.AddDate(0, 0, 1)
		}
		nextThirdFriday := nextFirstFriday.AddDate(0, 0, 14)
		return nextThirdFriday.Format(dateLayout)
	}

	return thirdFriday.Format(dateLayout)
}
