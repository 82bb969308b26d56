package schedule

import (
	"time"

	"github.com/glowbook/salon-booking-api/internal/httperr"
	"github.com/glowbook/salon-booking-api/internal/models"
	"github.com/glowbook/salon-booking-api/internal/validators"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ParseDate parses a naive business-local YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// atClock pins an HH:MM string onto a date. Invalid strings collapse to
// midnight; callers validate clock strings at the boundary.
func atClock(day time.Time, hm string) time.Time {
	t, err := time.Parse(clockLayout, hm)
	if err != nil {
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ValidateWeek checks a wholesale working-hours replacement: exactly one
// entry per weekday 0-6, and open days must carry a valid HH:MM window with
// openTime < closeTime.
func ValidateWeek(ws models.WeekSchedule) error {
	if len(ws) != 7 {
		return httperr.ErrBusiness("invalid_week_length")
	}

	seen := [7]bool{}
	for _, d := range ws {
		if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
			return httperr.ErrBusiness("invalid_day_of_week")
		}
		if seen[d.DayOfWeek] {
			return httperr.ErrBusiness("duplicate_day_of_week")
		}
		seen[d.DayOfWeek] = true

		if !d.IsOpen {
			continue
		}
		if !validators.IsClock(d.OpenTime) || !validators.IsClock(d.CloseTime) {
			return httperr.ErrBusiness("invalid_time_format")
		}
		if !validators.ClockBefore(d.OpenTime, d.CloseTime) {
			return httperr.ErrBusiness("open_after_close")
		}
	}
	return nil
}

// dayEntry finds the schedule entry for a weekday, nil when absent.
func dayEntry(ws models.WeekSchedule, weekday int) *models.WorkingDay {
	for i := range ws {
		if ws[i].DayOfWeek == weekday {
			return &ws[i]
		}
	}
	return nil
}
