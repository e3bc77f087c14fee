package workinghours

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/types"
)

func defaultDay(enabled bool) domain.WorkingDayConfig {
	return domain.WorkingDayConfig{
		Enabled:    enabled,
		Start:      "08:00",
		End:        "18:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	}
}

func TestNormalize_AbsentInputUsesDefaults(t *testing.T) {
	config := NormalizeWorkingHoursConfig(nil, nil)

	require.Len(t, config.Days, 7)
	assert.Equal(t, defaultDay(false), config.Days[time.Sunday])
	for d := time.Monday; d <= time.Saturday; d++ {
		assert.Equal(t, defaultDay(true), config.Days[d], "weekday %s", d)
	}
}

func TestNormalize_WorkingDaysShapes(t *testing.T) {
	tests := []struct {
		name     string
		raw      interface{}
		expected []time.Weekday
	}{
		{"nil falls back to Mon-Sat", nil, domain.DefaultWorkingDays()},
		{"number is not provided", 3, domain.DefaultWorkingDays()},
		{"generic list", []interface{}{float64(1), float64(3)}, []time.Weekday{time.Monday, time.Wednesday}},
		{"typed int list", []int{0, 6}, []time.Weekday{time.Sunday, time.Saturday}},
		{"weekday list", []time.Weekday{time.Tuesday}, []time.Weekday{time.Tuesday}},
		{"JSON list", "[2,4]", []time.Weekday{time.Tuesday, time.Thursday}},
		{"comma separated", "1, 2,5", []time.Weekday{time.Monday, time.Tuesday, time.Friday}},
		{"single number string", "3", []time.Weekday{time.Wednesday}},
		{"out of range and fractional dropped", []interface{}{float64(7), float64(-1), 2.5, float64(5)}, []time.Weekday{time.Friday}},
		{"numeric strings in list", []string{"0", "x", "6"}, []time.Weekday{time.Sunday, time.Saturday}},
		{"empty list means closed", []int{}, []time.Weekday{}},
		{"garbage string means closed", "abc", []time.Weekday{}},
		{"empty JSON list means closed", "[]", []time.Weekday{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NormalizeWorkingHoursConfig(nil, tt.raw)
			assert.Equal(t, tt.expected, config.EnabledWeekdays())
		})
	}
}

func TestNormalize_ObjectShape(t *testing.T) {
	raw := map[string]interface{}{
		"days": map[string]interface{}{
			"1": map[string]interface{}{
				"enabled":      true,
				"start":        "09:10",
				"end":          "17:45",
				"breakEnabled": true,
				"breakStart":   "12:15",
				"breakEnd":     "13:05",
			},
			"2": map[string]interface{}{"enabled": false},
		},
	}

	config := NormalizeWorkingHoursConfig(raw, nil)

	assert.Equal(t, domain.WorkingDayConfig{
		Enabled:      true,
		Start:        "09:00",
		End:          "17:30",
		BreakEnabled: true,
		BreakStart:   "12:00",
		BreakEnd:     "13:00",
	}, config.Days[time.Monday])
	assert.Equal(t, defaultDay(false), config.Days[time.Tuesday])
	// weekdays missing from the object take the default enabled flag
	assert.Equal(t, defaultDay(true), config.Days[time.Wednesday])
	assert.Equal(t, defaultDay(false), config.Days[time.Sunday])
}

func TestNormalize_ObjectShapeNumericKeys(t *testing.T) {
	raw := map[string]interface{}{
		"days": map[int]interface{}{
			0: map[string]interface{}{"enabled": true, "start": "10:00", "end": "14:00"},
		},
	}

	config := NormalizeWorkingHoursConfig(raw, nil)

	assert.True(t, config.Days[time.Sunday].Enabled)
	assert.Equal(t, "10:00", config.Days[time.Sunday].Start)
	assert.Equal(t, "14:00", config.Days[time.Sunday].End)
}

func TestNormalize_JSONStringShape(t *testing.T) {
	raw := `{"days":{"6":{"enabled":true,"start":"07:00","end":"11:00"}}}`

	config := NormalizeWorkingHoursConfig(raw, "[6]")

	assert.Equal(t, []time.Weekday{time.Saturday}, config.EnabledWeekdays())
	assert.Equal(t, "07:00", config.Days[time.Saturday].Start)
	assert.Equal(t, "11:00", config.Days[time.Saturday].End)
}

func TestNormalize_DayEnabledOverridesWorkingDays(t *testing.T) {
	raw := map[string]interface{}{
		"days": map[string]interface{}{
			"0": map[string]interface{}{"enabled": true},
			"1": map[string]interface{}{"enabled": "false"},
		},
	}

	config := NormalizeWorkingHoursConfig(raw, []int{1})

	assert.True(t, config.Days[time.Sunday].Enabled)
	assert.False(t, config.Days[time.Monday].Enabled)
	assert.False(t, config.Days[time.Tuesday].Enabled)
}

func TestNormalize_InvalidTimesFallBack(t *testing.T) {
	tests := []struct {
		name       string
		start, end interface{}
		expStart   string
		expEnd     string
	}{
		{"hour out of range", "24:00", "17:00", "08:00", "17:00"},
		{"minute out of range", "09:60", "17:00", "08:00", "17:00"},
		{"not a time", "nine", "17:00", "08:00", "17:00"},
		{"number instead of string", 540, "17:00", "08:00", "17:00"},
		{"inverted window", "18:00", "09:00", "08:00", "18:00"},
		{"empty window after floor", "10:10", "10:20", "08:00", "18:00"},
		{"seconds accepted", "09:00:00", "12:30:59", "09:00", "12:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]interface{}{
				"days": map[string]interface{}{
					"3": map[string]interface{}{"start": tt.start, "end": tt.end},
				},
			}
			day := NormalizeWorkingHoursConfig(raw, nil).Days[time.Wednesday]
			assert.Equal(t, tt.expStart, day.Start)
			assert.Equal(t, tt.expEnd, day.End)
		})
	}
}

func TestNormalize_Breaks(t *testing.T) {
	tests := []struct {
		name       string
		day        map[string]interface{}
		expEnabled bool
		expStart   string
		expEnd     string
	}{
		{
			name:       "disabled break keeps placeholders",
			day:        map[string]interface{}{"breakStart": "10:00", "breakEnd": "11:00"},
			expEnabled: false, expStart: "12:00", expEnd: "13:00",
		},
		{
			name:       "enabled without bounds uses default break",
			day:        map[string]interface{}{"breakEnabled": true},
			expEnabled: true, expStart: "12:00", expEnd: "13:00",
		},
		{
			name:       "inverted break collapses",
			day:        map[string]interface{}{"breakEnabled": true, "breakStart": "14:00", "breakEnd": "13:00"},
			expEnabled: false, expStart: "12:00", expEnd: "13:00",
		},
		{
			name:       "break clamped into window",
			day:        map[string]interface{}{"start": "09:00", "end": "17:00", "breakEnabled": true, "breakStart": "07:00", "breakEnd": "10:00"},
			expEnabled: true, expStart: "09:00", expEnd: "10:00",
		},
		{
			name:       "break clamped at closing time",
			day:        map[string]interface{}{"start": "09:00", "end": "17:00", "breakEnabled": true, "breakStart": "16:00", "breakEnd": "19:00"},
			expEnabled: true, expStart: "16:00", expEnd: "17:00",
		},
		{
			name:       "break outside window collapses",
			day:        map[string]interface{}{"start": "09:00", "end": "12:00", "breakEnabled": true, "breakStart": "13:00", "breakEnd": "14:00"},
			expEnabled: false, expStart: "12:00", expEnd: "13:00",
		},
		{
			name:       "zero length after floor collapses",
			day:        map[string]interface{}{"breakEnabled": true, "breakStart": "12:05", "breakEnd": "12:25"},
			expEnabled: false, expStart: "12:00", expEnd: "13:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]interface{}{"days": map[string]interface{}{"1": tt.day}}
			day := NormalizeWorkingHoursConfig(raw, nil).Days[time.Monday]
			assert.Equal(t, tt.expEnabled, day.BreakEnabled)
			assert.Equal(t, tt.expStart, day.BreakStart)
			assert.Equal(t, tt.expEnd, day.BreakEnd)
		})
	}
}

func TestNormalize_LegacyArray(t *testing.T) {
	config := NormalizeWorkingHoursConfig([]interface{}{"09:15", "09:15", "14:40"}, nil)

	for d := time.Sunday; d <= time.Saturday; d++ {
		day := config.Days[d]
		assert.Equal(t, "09:00", day.Start)
		assert.Equal(t, "15:00", day.End)
		assert.False(t, day.BreakEnabled)
		assert.Equal(t, d != time.Sunday, day.Enabled)
	}
}

func TestNormalize_LegacyArrayEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		raw      interface{}
		expStart string
		expEnd   string
	}{
		{"JSON encoded list", `["10:00","08:30"]`, "08:30", "10:30"},
		{"typed string list", []string{"11:00"}, "11:00", "11:30"},
		{"empty list", []interface{}{}, "08:00", "18:00"},
		{"only invalid entries", []interface{}{"25:00", 7, nil}, "08:00", "18:00"},
		{"capped at 23:30", []string{"22:00", "23:45"}, "22:00", "23:30"},
		{"single late entry collapses", []string{"23:30"}, "08:00", "18:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := NormalizeWorkingHoursConfig(tt.raw, nil).Days[time.Friday]
			assert.Equal(t, tt.expStart, day.Start)
			assert.Equal(t, tt.expEnd, day.End)
		})
	}
}

func TestNormalize_FallbackShapes(t *testing.T) {
	inputs := []interface{}{
		"not json",
		`{"days": 5}`,
		`{"other": {}}`,
		42,
		true,
		[]byte("{broken"),
		make(chan int),
	}

	for _, raw := range inputs {
		config := NormalizeWorkingHoursConfig(raw, []int{2})
		require.Len(t, config.Days, 7)
		assert.Equal(t, defaultDay(true), config.Days[time.Tuesday], "input %v", raw)
		assert.Equal(t, defaultDay(false), config.Days[time.Monday], "input %v", raw)
	}
}

func TestNormalize_AcceptsTypedConfig(t *testing.T) {
	original := NormalizeWorkingHoursConfig(map[string]interface{}{
		"days": map[string]interface{}{
			"4": map[string]interface{}{"start": "10:00", "end": "16:00", "breakEnabled": true},
		},
	}, nil)

	fromStruct := NormalizeWorkingHoursConfig(original, nil)
	assert.Equal(t, original, fromStruct)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	fromJSON := NormalizeWorkingHoursConfig(string(data), nil)
	assert.Equal(t, original, fromJSON)

	fromRaw := NormalizeWorkingHoursConfig(json.RawMessage(data), nil)
	assert.Equal(t, original, fromRaw)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []struct {
		hours interface{}
		days  interface{}
	}{
		{nil, nil},
		{[]string{"09:15", "14:40"}, "1,2,3"},
		{`{"days":{"1":{"start":"07:45","end":"19:10","breakEnabled":true,"breakStart":"11:50","breakEnd":"13:20"}}}`, nil},
		{map[string]interface{}{"days": map[string]interface{}{"2": map[string]interface{}{"breakEnabled": true, "breakStart": "20:00"}}}, []int{}},
	}

	for _, in := range inputs {
		first := NormalizeWorkingHoursConfig(in.hours, in.days)
		second := NormalizeWorkingHoursConfig(first.AsRaw(), nil)
		assert.Equal(t, first, second)
	}
}

func TestNormalize_GridAndWindowInvariants(t *testing.T) {
	times := []string{"00:00", "00:29", "07:45", "08:00", "12:15", "13:05", "17:59", "23:30", "23:59", "bad"}

	for _, start := range times {
		for _, end := range times {
			for _, bs := range []string{"06:00", "12:15", "17:45"} {
				for _, be := range []string{"12:00", "13:05", "23:59"} {
					raw := map[string]interface{}{"days": map[string]interface{}{"3": map[string]interface{}{
						"start": start, "end": end, "breakEnabled": true, "breakStart": bs, "breakEnd": be,
					}}}
					day := NormalizeWorkingHoursConfig(raw, nil).Days[time.Wednesday]

					s := mustMinutes(t, day.Start)
					e := mustMinutes(t, day.End)
					b1 := mustMinutes(t, day.BreakStart)
					b2 := mustMinutes(t, day.BreakEnd)

					for _, m := range []int{s, e, b1, b2} {
						require.Zero(t, m%domain.SlotIntervalMinutes)
					}
					require.Less(t, s, e)
					if day.BreakEnabled {
						require.LessOrEqual(t, s, b1)
						require.Less(t, b1, b2)
						require.LessOrEqual(t, b2, e)
					}
				}
			}
		}
	}
}

func mustMinutes(t *testing.T, s string) int {
	t.Helper()
	m, err := types.ParseMinutes(s)
	require.NoError(t, err)
	return m
}
