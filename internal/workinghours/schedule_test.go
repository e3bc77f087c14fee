package workinghours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/ptr"
)

func TestBuildScheduleByDay_Defaults(t *testing.T) {
	schedule := BuildScheduleByDay(nil, nil)

	require.Len(t, schedule, 7)
	assert.Equal(t, domain.WorkingDaySchedule{Enabled: false, StartMinutes: 480, EndMinutes: 1080}, schedule[time.Sunday])
	assert.Equal(t, domain.WorkingDaySchedule{Enabled: true, StartMinutes: 480, EndMinutes: 1080}, schedule[time.Monday])
}

func TestBuildScheduleByDay_WithBreak(t *testing.T) {
	raw := `{"days":{"2":{"enabled":true,"start":"09:00","end":"17:00","breakEnabled":true,"breakStart":"12:15","breakEnd":"13:05"}}}`

	day := BuildScheduleByDay(raw, nil)[time.Tuesday]

	assert.Equal(t, domain.WorkingDaySchedule{
		Enabled:           true,
		StartMinutes:      540,
		EndMinutes:        1020,
		BreakStartMinutes: ptr.Ptr(720),
		BreakEndMinutes:   ptr.Ptr(780),
	}, day)
	assert.True(t, day.HasBreak())
}

func TestBuildScheduleByDay_CollapsedBreakIsOmitted(t *testing.T) {
	raw := map[string]interface{}{"days": map[string]interface{}{
		"1": map[string]interface{}{"breakEnabled": true, "breakStart": "14:00", "breakEnd": "13:00"},
	}}

	day := BuildScheduleByDay(raw, nil)[time.Monday]

	assert.False(t, day.HasBreak())
	assert.Nil(t, day.BreakStartMinutes)
	assert.Nil(t, day.BreakEndMinutes)
}

func TestScheduleFromConfig_RevalidatesCanonicalValues(t *testing.T) {
	// Hand-built configs bypass the normalizer; the schedule layer must still hold the invariants.
	config := domain.WorkingHoursConfig{Days: map[time.Weekday]domain.WorkingDayConfig{
		time.Monday: {
			Enabled: true, Start: "garbage", End: "17:00",
			BreakEnabled: true, BreakStart: "16:00", BreakEnd: "20:00",
		},
		time.Tuesday: {
			Enabled: true, Start: "10:00", End: "12:00",
			BreakEnabled: true, BreakStart: "13:00", BreakEnd: "14:00",
		},
		time.Wednesday: {
			Enabled: true, Start: "15:00", End: "09:00",
		},
	}}

	schedule := ScheduleFromConfig(config)

	require.Len(t, schedule, 7)

	monday := schedule[time.Monday]
	assert.Equal(t, 480, monday.StartMinutes)
	assert.Equal(t, 1020, monday.EndMinutes)
	require.True(t, monday.HasBreak())
	assert.Equal(t, 960, *monday.BreakStartMinutes)
	assert.Equal(t, 1020, *monday.BreakEndMinutes)

	assert.False(t, schedule[time.Tuesday].HasBreak())

	assert.Equal(t, 480, schedule[time.Wednesday].StartMinutes)
	assert.Equal(t, 1080, schedule[time.Wednesday].EndMinutes)

	assert.False(t, schedule[time.Sunday].Enabled)
}
