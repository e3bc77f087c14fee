package workinghours

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
)

// weekdaySet marks enabled weekdays, indexed by time.Weekday.
type weekdaySet [7]bool

func defaultWeekdaySet() weekdaySet {
	var set weekdaySet
	for _, d := range domain.DefaultWorkingDays() {
		set[d] = true
	}
	return set
}

// resolveEnabledDays returns the enabled weekdays described by raw.
// Anything that is neither a list nor a string counts as "not provided" and yields
// the default set; a list or string with no usable entry yields an empty set.
func resolveEnabledDays(raw interface{}) weekdaySet {
	entries, provided := workingDayEntries(raw)
	if !provided {
		return defaultWeekdaySet()
	}

	var set weekdaySet
	for _, entry := range entries {
		if d, ok := weekdayFromValue(entry); ok {
			set[d] = true
		}
	}
	return set
}

func workingDayEntries(raw interface{}) ([]interface{}, bool) {
	switch v := toGeneric(raw).(type) {
	case []interface{}:
		return v, true
	case string:
		if parsed, ok := parseJSONString(v); ok {
			if list, isList := parsed.([]interface{}); isList {
				return list, true
			}
		}
		parts := strings.Split(v, ",")
		entries := make([]interface{}, len(parts))
		for i, p := range parts {
			entries[i] = p
		}
		return entries, true
	default:
		return nil, false
	}
}

// weekdayFromValue accepts integral numbers and numeric strings in [0,6].
func weekdayFromValue(v interface{}) (time.Weekday, bool) {
	var n int
	switch val := v.(type) {
	case float64:
		if val != math.Trunc(val) {
			return 0, false
		}
		n = int(val)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}

	if n < int(time.Sunday) || n > int(time.Saturday) {
		return 0, false
	}
	return time.Weekday(n), true
}
