// Package availability combines the working-hours engine with booking limits and
// existing appointments. It is shared by the slot and date use cases.
package availability

import (
	"fmt"
	"time"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/workinghours"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/types"
)

// DaySlots returns the bookable slot starts of date for the given settings.
// Slots starting before now+MinBookingNoticeMinutes are dropped when date is today.
// Past dates yield no slots.
func DaySlots(settings *domain.TenantSchedulingSettings, date, now time.Time) []types.TimeString {
	if IsDateInPast(date, now) {
		return []types.TimeString{}
	}

	raw := workinghours.GetTimeSlotsForDate(date, settings.RawWorkingHours(), settings.RawWorkingDays())
	slots := make([]types.TimeString, 0, len(raw))
	for _, s := range raw {
		ts, err := types.NewTimeStringFromString(s)
		if err != nil {
			continue
		}
		slots = append(slots, ts)
	}

	if !IsSameDay(date, now) {
		return slots
	}
	return FilterByNotice(slots, now, settings.MinBookingNoticeMinutes)
}

// FilterByNotice keeps slots that start no earlier than now plus the notice period.
// A threshold past midnight leaves nothing.
func FilterByNotice(slots []types.TimeString, now time.Time, noticeMinutes int) []types.TimeString {
	result := make([]types.TimeString, 0, len(slots))

	minAllowed, err := types.NewTimeString(now).AddMinutes(noticeMinutes)
	if err != nil {
		return result
	}

	for _, slot := range slots {
		if !slot.IsBefore(minAllowed) {
			result = append(result, slot)
		}
	}
	return result
}

// CalculateAvailableSpots computes free spots for each slot
func CalculateAvailableSpots(
	slots []types.TimeString,
	appointments []*domain.Appointment,
	maxConcurrent int,
) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(slots))

	for i, slotStart := range slots {
		available := maxConcurrent - CountOverlapping(slotStart, domain.SlotIntervalMinutes, appointments)
		if available < 0 {
			available = 0
		}

		result[i] = domain.AvailableSlot{
			StartTime:       slotStart,
			DurationMinutes: domain.SlotIntervalMinutes,
			AvailableSpots:  available,
			TotalSpots:      maxConcurrent,
		}
	}

	return result
}

// CountOverlapping counts active appointments whose interval overlaps the slot.
// Intervals that only touch (one ends where the other starts) do not overlap:
//   - slot 11:30-12:00, appointment 11:20-11:40 overlaps
//   - slot 11:30-12:00, appointment 11:00-11:30 does not
//   - slot 11:30-12:00, appointment 12:00-12:30 does not
func CountOverlapping(slotStart types.TimeString, slotDuration int, appointments []*domain.Appointment) int {
	start := slotStart.Minutes()
	end := start + slotDuration

	count := 0
	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		if a.StartTime.Minutes() < end && a.EndMinutes() > start {
			count++
		}
	}
	return count
}

// HasFreeSpot reports whether any slot still has capacity
func HasFreeSpot(slots []domain.AvailableSlot) bool {
	for i := range slots {
		if !slots[i].IsFull() {
			return true
		}
	}
	return false
}

// ValidateDate checks the date is neither in the past nor beyond the tenant's
// advance booking limit, if it has one
func ValidateDate(date, now time.Time, settings *domain.TenantSchedulingSettings) error {
	if IsDateInPast(date, now) {
		return ErrDateInPast
	}

	if !settings.HasAdvanceBookingLimit() {
		return nil
	}

	if dateOnly(date).After(LastBookableDate(now, settings.AdvanceBookingDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, settings.AdvanceBookingDays)
	}

	return nil
}

// LastBookableDate returns the calendar date advanceBookingDays after now (midnight UTC)
func LastBookableDate(now time.Time, advanceBookingDays int) time.Time {
	return dateOnly(now).AddDate(0, 0, advanceBookingDays)
}

// IsSameDay compares calendar dates, ignoring the time of day
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast reports whether date falls before today's calendar date
func IsDateInPast(date, now time.Time) bool {
	return dateOnly(date).Before(dateOnly(now))
}

// dateOnly drops the time of day, keeping the calendar date in UTC so that
// dates from different locations compare by their Y/M/D only.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
