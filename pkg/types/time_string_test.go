package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr error
	}{
		{"00:00", 0, nil},
		{"08:30", 510, nil},
		{"8:30", 510, nil},
		{"23:59", 1439, nil},
		{"12:00:45", 720, nil},
		{"24:00", 0, ErrTimeOutOfRange},
		{"12:60", 0, ErrTimeOutOfRange},
		{"12:00:60", 0, ErrTimeOutOfRange},
		{"", 0, ErrInvalidTimeFormat},
		{"noon", 0, ErrInvalidTimeFormat},
		{"12:5", 0, ErrInvalidTimeFormat},
		{" 12:00", 0, ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMinutes(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAndFloor(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "09:05", FormatMinutes(545))
	assert.Equal(t, "00:30", FormatMinutes(MinutesPerDay+30))

	assert.Equal(t, 540, FloorMinutes(555, 30))
	assert.Equal(t, 540, FloorMinutes(540, 30))
	assert.Equal(t, 555, FloorMinutes(555, 0))
}

func TestTimeString_Arithmetic(t *testing.T) {
	ts, err := NewTimeStringFromString("11:40")
	require.NoError(t, err)

	later, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "12:10", later.String())
	assert.True(t, ts.IsBefore(later))
	assert.False(t, later.IsBefore(ts))

	_, err = ts.AddMinutes(13 * 60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	assert.Equal(t, "15:04", NewTimeString(time.Date(2025, 1, 1, 15, 4, 59, 0, time.UTC)).String())
}

func TestTimeString_JSONAndSQL(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(9 * 60)
	require.NoError(t, err)

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.JSONEq(t, `"09:00"`, string(data))

	var decoded TimeString
	require.NoError(t, json.Unmarshal([]byte(`"17:30"`), &decoded))
	assert.Equal(t, 1050, decoded.Minutes())
	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &decoded))

	var scanned TimeString
	require.NoError(t, scanned.Scan([]byte("10:30:00")))
	assert.Equal(t, "10:30", scanned.String())
	assert.Error(t, scanned.Scan(nil))
	assert.Error(t, scanned.Scan(42))

	value, err := scanned.Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", value)
}
