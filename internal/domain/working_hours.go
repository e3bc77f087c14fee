package domain

import (
	"strconv"
	"time"
)

// WorkingDayConfig is the canonical configuration of a single weekday.
// Once normalized: Start < End, and when BreakEnabled,
// Start <= BreakStart < BreakEnd <= End. All values are "HH:MM" on the slot grid.
type WorkingDayConfig struct {
	Enabled      bool   `json:"enabled"`
	Start        string `json:"start"`
	End          string `json:"end"`
	BreakEnabled bool   `json:"breakEnabled"`
	BreakStart   string `json:"breakStart"`
	BreakEnd     string `json:"breakEnd"`
}

// WorkingHoursConfig maps every weekday (Sunday = 0) to its configuration.
type WorkingHoursConfig struct {
	Days map[time.Weekday]WorkingDayConfig `json:"days"`
}

// Day returns the configuration of weekday d.
func (c WorkingHoursConfig) Day(d time.Weekday) (WorkingDayConfig, bool) {
	day, ok := c.Days[d]
	return day, ok
}

// EnabledWeekdays lists enabled weekdays in ascending order.
func (c WorkingHoursConfig) EnabledWeekdays() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if c.Days[d].Enabled {
			days = append(days, d)
		}
	}
	return days
}

// AsRaw returns the loosely-typed {"days": {"0": {...}}} shape the config is persisted in,
// suitable for feeding back into the normalizer.
func (c WorkingHoursConfig) AsRaw() map[string]interface{} {
	days := make(map[string]interface{}, len(c.Days))
	for d, day := range c.Days {
		days[strconv.Itoa(int(d))] = map[string]interface{}{
			"enabled":      day.Enabled,
			"start":        day.Start,
			"end":          day.End,
			"breakEnabled": day.BreakEnabled,
			"breakStart":   day.BreakStart,
			"breakEnd":     day.BreakEnd,
		}
	}
	return map[string]interface{}{"days": days}
}

// WorkingDaySchedule is the minute-offset form of WorkingDayConfig.
// Break bounds are nil when no valid break applies.
type WorkingDaySchedule struct {
	Enabled           bool `json:"enabled"`
	StartMinutes      int  `json:"startMinutes"`
	EndMinutes        int  `json:"endMinutes"`
	BreakStartMinutes *int `json:"breakStartMinutes,omitempty"`
	BreakEndMinutes   *int `json:"breakEndMinutes,omitempty"`
}

// HasBreak returns true if both break bounds are present.
func (s WorkingDaySchedule) HasBreak() bool {
	return s.BreakStartMinutes != nil && s.BreakEndMinutes != nil
}

// WeeklySchedule maps every weekday to its numeric schedule.
type WeeklySchedule map[time.Weekday]WorkingDaySchedule
