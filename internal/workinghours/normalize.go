package workinghours

import (
	"sort"
	"strconv"
	"time"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/types"
)

// NormalizeWorkingHoursConfig maps any supported raw representation of a tenant's
// working hours into the canonical seven-day configuration.
//
// workingHoursRaw may be an object {"days": {"<weekday>": {...}}}, the same object
// JSON-encoded, a legacy list of "HH:MM" start times, or anything else (nil,
// unparseable), which yields the default window. workingDaysRaw may be a list of
// weekday numbers, a JSON-encoded list, a comma-separated string or nil.
//
// The result always has entries for Sunday through Saturday, every Start is before
// End and every enabled break lies inside its window.
func NormalizeWorkingHoursConfig(workingHoursRaw, workingDaysRaw interface{}) domain.WorkingHoursConfig {
	enabledDays := resolveEnabledDays(workingDaysRaw)
	resolved := resolveWorkingHours(workingHoursRaw)

	if days, ok := daysObject(resolved); ok {
		return normalizeDays(days, enabledDays)
	}

	if entries, ok := resolved.([]interface{}); ok {
		start, end := legacyWindow(entries)
		return uniformConfig(start, end, enabledDays)
	}

	return uniformConfig(domain.DefaultStartMinutes, domain.DefaultEndMinutes, enabledDays)
}

// resolveWorkingHours decodes JSON strings. A string that is not JSON is kept as is
// and matches none of the known shapes.
func resolveWorkingHours(raw interface{}) interface{} {
	generic := toGeneric(raw)
	s, ok := generic.(string)
	if !ok {
		return generic
	}
	if parsed, ok := parseJSONString(s); ok {
		return parsed
	}
	return s
}

func daysObject(resolved interface{}) (map[string]interface{}, bool) {
	obj, ok := resolved.(map[string]interface{})
	if !ok {
		return nil, false
	}
	days, ok := obj["days"].(map[string]interface{})
	return days, ok
}

func normalizeDays(days map[string]interface{}, enabledDays weekdaySet) domain.WorkingHoursConfig {
	config := domain.WorkingHoursConfig{Days: make(map[time.Weekday]domain.WorkingDayConfig, 7)}
	for d := time.Sunday; d <= time.Saturday; d++ {
		partial, _ := days[strconv.Itoa(int(d))].(map[string]interface{})
		config.Days[d] = normalizeDay(partial, enabledDays[d])
	}
	return config
}

// normalizeDay resolves one weekday. A nil partial yields the defaults with
// fallbackEnabled.
func normalizeDay(partial map[string]interface{}, fallbackEnabled bool) domain.WorkingDayConfig {
	start := floorToGrid(parseMinutesOr(partial["start"], domain.DefaultStartMinutes))
	end := floorToGrid(parseMinutesOr(partial["end"], domain.DefaultEndMinutes))
	if end <= start {
		start, end = domain.DefaultStartMinutes, domain.DefaultEndMinutes
	}

	day := domain.WorkingDayConfig{
		Enabled:    boolOr(partial["enabled"], fallbackEnabled),
		Start:      types.FormatMinutes(start),
		End:        types.FormatMinutes(end),
		BreakStart: domain.DefaultBreakStart,
		BreakEnd:   domain.DefaultBreakEnd,
	}

	if !boolOr(partial["breakEnabled"], false) {
		return day
	}

	breakStart := floorToGrid(parseMinutesOr(partial["breakStart"], domain.DefaultBreakStartMinutes))
	breakEnd := floorToGrid(parseMinutesOr(partial["breakEnd"], domain.DefaultBreakEndMinutes))
	breakStart, breakEnd, ok := clampBreak(start, end, breakStart, breakEnd)
	if !ok {
		return day
	}

	day.BreakEnabled = true
	day.BreakStart = types.FormatMinutes(breakStart)
	day.BreakEnd = types.FormatMinutes(breakEnd)
	return day
}

// legacyWindow derives one working window from a list of accepted start times:
// earliest entry to latest entry plus one slot, capped at 23:30.
func legacyWindow(entries []interface{}) (int, int) {
	seen := make(map[int]struct{}, len(entries))
	points := make([]int, 0, len(entries))
	for _, entry := range entries {
		m := parseMinutesOr(entry, -1)
		if m < 0 {
			continue
		}
		m = floorToGrid(m)
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		points = append(points, m)
	}

	if len(points) == 0 {
		return domain.DefaultStartMinutes, domain.DefaultEndMinutes
	}
	sort.Ints(points)

	start := points[0]
	end := points[len(points)-1] + domain.SlotIntervalMinutes
	if end > domain.LatestLegacyEndMinutes {
		end = domain.LatestLegacyEndMinutes
	}
	// a single 23:30 entry cannot form a window under the cap
	if end <= start {
		return domain.DefaultStartMinutes, domain.DefaultEndMinutes
	}
	return start, end
}

func uniformConfig(start, end int, enabledDays weekdaySet) domain.WorkingHoursConfig {
	config := domain.WorkingHoursConfig{Days: make(map[time.Weekday]domain.WorkingDayConfig, 7)}
	for d := time.Sunday; d <= time.Saturday; d++ {
		config.Days[d] = domain.WorkingDayConfig{
			Enabled:    enabledDays[d],
			Start:      types.FormatMinutes(start),
			End:        types.FormatMinutes(end),
			BreakStart: domain.DefaultBreakStart,
			BreakEnd:   domain.DefaultBreakEnd,
		}
	}
	return config
}

// boolOr reads a flag stored as a bool, a "true"/"false" string or a 0/1 number.
func boolOr(v interface{}, def bool) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	case float64:
		return val != 0
	}
	return def
}
