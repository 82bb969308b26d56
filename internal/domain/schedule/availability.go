package schedule

import (
	"time"

	"github.com/glowbook/salon-booking-api/internal/models"
)

// Block is one renderable calendar interval. Working hours paint the
// background (KindOpen); exceptions overlay on top. Overlapping exceptions
// are emitted independently, never merged.
type Block struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	Kind  string `json:"kind"`
	Title string `json:"title,omitempty"`

	ExceptionID uint `json:"exception_id,omitempty"`
	FullDay     bool `json:"full_day,omitempty"`
}

// Blocks materializes the schedule for the inclusive date range [from, to]:
// one open block per open weekday, then every exception occurrence that
// intersects the range. All arithmetic is naive local time.
func Blocks(
	ws models.WeekSchedule,
	exceptions []models.ScheduleException,
	from time.Time,
	to time.Time,
) []Block {

	rangeStart := startOfDay(from)
	rangeEnd := startOfDay(to).AddDate(0, 0, 1)

	blocks := make([]Block, 0)

	for day := rangeStart; day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
		wd := dayEntry(ws, int(day.Weekday()))
		if wd == nil || !wd.IsOpen {
			continue
		}
		blocks = append(blocks, Block{
			Start: atClock(day, wd.OpenTime),
			End:   atClock(day, wd.CloseTime),
			Kind:  BlockKindOpen,
		})
	}

	for i := range exceptions {
		blocks = append(blocks, exceptionBlocks(&exceptions[i], rangeStart, rangeEnd)...)
	}

	return blocks
}

// exceptionBlocks expands one exception into its occurrences inside
// [rangeStart, rangeEnd).
//
// Recurring exceptions land on every matching weekday in the range,
// independent of their anchor date; end_date is ignored for them, each
// occurrence is a single day. Non-recurring full-day exceptions span
// [date, end_date+1d) as one block.
func exceptionBlocks(ex *models.ScheduleException, rangeStart, rangeEnd time.Time) []Block {
	var out []Block

	if ex.Recurring && ex.RecurringDay != nil {
		for day := rangeStart; day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
			if int(day.Weekday()) != *ex.RecurringDay {
				continue
			}
			out = append(out, occurrenceOn(ex, day))
		}
		return out
	}

	anchor, err := ParseDate(ex.Date)
	if err != nil {
		return nil
	}

	if ex.IsFullDay {
		end := anchor.AddDate(0, 0, 1)
		if ex.EndDate != nil {
			if ed, err := ParseDate(*ex.EndDate); err == nil {
				end = ed.AddDate(0, 0, 1)
			}
		}
		if anchor.Before(rangeEnd) && end.After(rangeStart) {
			out = append(out, Block{
				Start:       anchor,
				End:         end,
				Kind:        ex.Type,
				Title:       ex.Title,
				ExceptionID: ex.ID,
				FullDay:     true,
			})
		}
		return out
	}

	if !anchor.Before(rangeStart) && anchor.Before(rangeEnd) {
		out = append(out, occurrenceOn(ex, anchor))
	}
	return out
}

// occurrenceOn renders a single-day occurrence of an exception on day.
func occurrenceOn(ex *models.ScheduleException, day time.Time) Block {
	b := Block{
		Kind:        ex.Type,
		Title:       ex.Title,
		ExceptionID: ex.ID,
	}

	if ex.IsFullDay || ex.StartTime == nil || ex.EndTime == nil {
		b.Start = day
		b.End = day.AddDate(0, 0, 1)
		b.FullDay = true
		return b
	}

	b.Start = atClock(day, *ex.StartTime)
	b.End = atClock(day, *ex.EndTime)
	return b
}

// IsOpen reports whether the business is open for the whole interval
// [start, end): inside that day's working hours and clear of every
// exception occurrence. Both ends must fall on the same date.
func IsOpen(
	ws models.WeekSchedule,
	exceptions []models.ScheduleException,
	start time.Time,
	end time.Time,
) bool {

	day := startOfDay(start)

	wd := dayEntry(ws, int(day.Weekday()))
	if wd == nil || !wd.IsOpen {
		return false
	}

	if start.Before(atClock(day, wd.OpenTime)) || end.After(atClock(day, wd.CloseTime)) {
		return false
	}

	nextDay := day.AddDate(0, 0, 1)
	for i := range exceptions {
		for _, b := range exceptionBlocks(&exceptions[i], day, nextDay) {
			if start.Before(b.End) && end.After(b.Start) {
				return false
			}
		}
	}

	return true
}
