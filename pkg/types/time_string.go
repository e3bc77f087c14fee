package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

var (
	// ErrInvalidTimeFormat is returned when a value does not look like HH:MM
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOutOfRange is returned for hours outside [0,23] or minutes outside [0,59]
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// Optional seconds cover values read back from Postgres TIME columns.
var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// TimeString is a wall-clock time of day, rendered as zero-padded "HH:MM".
// Internally it is the number of minutes since midnight, in [0, 1439].
type TimeString struct {
	minutes int
}

// NewTimeString takes the hour and minute of t, ignoring date and location.
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*MinutesPerHour + t.Minute()}
}

// NewTimeStringFromString parses "HH:MM" (or "HH:MM:SS", seconds are dropped).
func NewTimeStringFromString(s string) (TimeString, error) {
	m, err := ParseMinutes(s)
	if err != nil {
		return TimeString{}, err
	}
	return TimeString{minutes: m}, nil
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight.
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString{minutes: minutes}, nil
}

// ParseMinutes converts "HH:MM" into minutes since midnight.
// Hours must be in [0,23] and minutes in [0,59].
func ParseMinutes(s string) (int, error) {
	match := timePattern.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}
	if match[3] != "" {
		if seconds, _ := strconv.Atoi(match[3]); seconds > 59 {
			return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
		}
	}

	return hours*MinutesPerHour + minutes, nil
}

// FormatMinutes renders minutes since midnight as "HH:MM".
// Values outside a single day wrap around.
func FormatMinutes(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/MinutesPerHour, minutes%MinutesPerHour)
}

// FloorMinutes rounds minutes down to the nearest multiple of interval.
func FloorMinutes(minutes, interval int) int {
	if interval <= 0 {
		return minutes
	}
	return minutes - minutes%interval
}

// Minutes returns minutes since midnight.
func (t TimeString) Minutes() int {
	return t.minutes
}

// String returns "HH:MM".
func (t TimeString) String() string {
	return FormatMinutes(t.minutes)
}

// AddMinutes returns t shifted by n minutes; crossing midnight is an error.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	return NewTimeStringFromMinutes(t.minutes + n)
}

func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// MarshalJSON encodes the time as "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an "HH:MM" string
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scan implements sql.Scanner for TIME and TEXT columns
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case nil:
		return fmt.Errorf("%w: NULL", ErrInvalidTimeFormat)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}
}

func (t *TimeString) scanString(s string) error {
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return t.String(), nil
}
