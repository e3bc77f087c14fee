package workinghours

import (
	"strings"
	"time"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/types"
)

// GetTimeSlotsForDate lists the "HH:MM" slots a client can pick on date, in ascending
// order. A zero date or a disabled weekday yields an empty list.
func GetTimeSlotsForDate(date time.Time, workingHoursRaw, workingDaysRaw interface{}) []string {
	if date.IsZero() {
		return []string{}
	}
	schedule := BuildScheduleByDay(workingHoursRaw, workingDaysRaw)
	return SlotsForSchedule(schedule[date.Weekday()])
}

// GetTimeSlotsForDateString is GetTimeSlotsForDate for a "YYYY-MM-DD" (or RFC 3339) date.
// An empty or unparseable date yields an empty list.
func GetTimeSlotsForDateString(date string, workingHoursRaw, workingDaysRaw interface{}) []string {
	parsed, ok := ParseDate(date)
	if !ok {
		return []string{}
	}
	return GetTimeSlotsForDate(parsed, workingHoursRaw, workingDaysRaw)
}

// SlotsForSchedule walks the slot grid of a single day. A slot is kept only when it
// ends by EndMinutes and does not overlap the break.
func SlotsForSchedule(day domain.WorkingDaySchedule) []string {
	slots := make([]string, 0)
	if !day.Enabled {
		return slots
	}

	interval := domain.SlotIntervalMinutes
	for m := day.StartMinutes; m+interval <= day.EndMinutes; m += interval {
		if day.HasBreak() && overlaps(m, m+interval, *day.BreakStartMinutes, *day.BreakEndMinutes) {
			continue
		}
		slots = append(slots, types.FormatMinutes(m))
	}
	return slots
}

// ParseDate accepts "YYYY-MM-DD" or an RFC 3339 timestamp. Only the calendar date is
// kept; for timestamps it is the date in the timestamp's own offset.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if d, err := time.Parse(domain.DateFormat, s); err == nil {
		return d, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
