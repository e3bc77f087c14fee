package workinghours

import (
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/types"
)

// parseMinutesOr parses "HH:MM", returning def for anything invalid.
func parseMinutesOr(v interface{}, def int) int {
	s, ok := v.(string)
	if !ok {
		return def
	}
	m, err := types.ParseMinutes(s)
	if err != nil {
		return def
	}
	return m
}

func floorToGrid(minutes int) int {
	return types.FloorMinutes(minutes, domain.SlotIntervalMinutes)
}

// clampBreak pulls the break inside [start, end]. ok is false when nothing is left of it.
func clampBreak(start, end, breakStart, breakEnd int) (int, int, bool) {
	if breakStart < start {
		breakStart = start
	}
	if breakEnd > end {
		breakEnd = end
	}
	if breakEnd <= breakStart {
		return 0, 0, false
	}
	return breakStart, breakEnd, true
}

// overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
