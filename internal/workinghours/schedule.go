package workinghours

import (
	"time"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/ptr"
)

// BuildScheduleByDay normalizes the raw configuration and re-expresses every weekday
// in minutes since midnight.
func BuildScheduleByDay(workingHoursRaw, workingDaysRaw interface{}) domain.WeeklySchedule {
	config := NormalizeWorkingHoursConfig(workingHoursRaw, workingDaysRaw)
	return ScheduleFromConfig(config)
}

// ScheduleFromConfig converts an already canonical configuration. Days missing from
// config come out disabled with the default window.
func ScheduleFromConfig(config domain.WorkingHoursConfig) domain.WeeklySchedule {
	schedule := make(domain.WeeklySchedule, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		day, ok := config.Day(d)
		if !ok {
			day = domain.WorkingDayConfig{Start: domain.DefaultStart, End: domain.DefaultEnd}
		}
		schedule[d] = scheduleForDay(day)
	}
	return schedule
}

// scheduleForDay re-validates the canonical strings; the break check repeats the one
// done by the normalizer so that no caller can hand a broken break to slot generation.
func scheduleForDay(day domain.WorkingDayConfig) domain.WorkingDaySchedule {
	start := parseMinutesOr(day.Start, domain.DefaultStartMinutes)
	end := parseMinutesOr(day.End, domain.DefaultEndMinutes)
	if end <= start {
		start, end = domain.DefaultStartMinutes, domain.DefaultEndMinutes
	}

	schedule := domain.WorkingDaySchedule{
		Enabled:      day.Enabled,
		StartMinutes: start,
		EndMinutes:   end,
	}
	if !day.BreakEnabled {
		return schedule
	}

	breakStart := parseMinutesOr(day.BreakStart, domain.DefaultBreakStartMinutes)
	breakEnd := parseMinutesOr(day.BreakEnd, domain.DefaultBreakEndMinutes)
	if breakStart, breakEnd, ok := clampBreak(start, end, breakStart, breakEnd); ok {
		schedule.BreakStartMinutes = ptr.Ptr(breakStart)
		schedule.BreakEndMinutes = ptr.Ptr(breakEnd)
	}
	return schedule
}
