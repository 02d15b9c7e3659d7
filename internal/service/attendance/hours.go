package attendance

import (
	"math"
	"time"

	"github.com/kalendra-hr/hrms-backend-go/internal/domain/attendance"
)

// Time-accounting policy constants.
const (
	// StandardWorkHours is the length of the standard workday after check-in,
	// before overtime eligibility begins.
	StandardWorkHours = 7

	// LunchHours is deducted from regular hours regardless of whether the
	// full lunch period was actually free.
	LunchHours = 1.0

	// ExtraBlockHours is the length of each granted overtime window.
	ExtraBlockHours = 2

	// MinPresentHours is the floor below which a closed day does not count
	// as present in monthly summaries.
	MinPresentHours = 2.0
)

// standardEnd is the 7-hour mark where overtime eligibility begins.
func standardEnd(checkIn time.Time) time.Time {
	return checkIn.Add(StandardWorkHours * time.Hour)
}

// regularEnd is where the standard day stops accruing regular hours. The
// standard day occupies 8 wall-clock hours: 7 payable plus the lunch hour,
// so a full 8-hour session yields 7 regular hours after the deduction.
func regularEnd(checkIn time.Time) time.Time {
	return checkIn.Add(time.Duration((StandardWorkHours + LunchHours) * float64(time.Hour)))
}

// regularHours computes hours worked inside the standard workday, lunch
// deducted, never negative.
func regularHours(checkIn, checkOut time.Time) float64 {
	end := checkOut
	if regEnd := regularEnd(checkIn); end.After(regEnd) {
		end = regEnd
	}
	h := end.Sub(checkIn).Hours() - LunchHours
	if h < 0 {
		return 0
	}
	return h
}

// overtimeHours sums the intersection of every granted allocation with the
// actual worked interval. Overlapping allocations are not unioned; a span
// covered by two allocations counts twice.
func overtimeHours(checkIn, checkOut time.Time, allocations []attendance.ExtraAllocation) float64 {
	var total float64
	for _, alloc := range allocations {
		total += overlapHours(alloc.Start, alloc.End, checkIn, checkOut)
	}
	return total
}

// overlapHours returns the length in hours of the overlap between
// [aStart, aEnd] and [bStart, bEnd].
func overlapHours(aStart, aEnd, bStart, bEnd time.Time) float64 {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start).Hours()
}

// calculateHours derives the persisted totals for a closed session.
// Intermediate sums keep full precision; callers round once when persisting.
func calculateHours(checkIn, checkOut time.Time, allocations []attendance.ExtraAllocation) (total, overtime float64) {
	overtime = overtimeHours(checkIn, checkOut, allocations)
	total = regularHours(checkIn, checkOut) + overtime
	return total, overtime
}

// extraTimeWindow computes the overtime window to grant at request time.
// Before the 7-hour mark the block is pinned to start at the mark, so an
// early request can never claim overtime inside the standard workday.
func extraTimeWindow(checkIn, now time.Time) attendance.ExtraAllocation {
	stdEnd := standardEnd(checkIn)
	start := now
	if now.Before(stdEnd) {
		start = stdEnd
	}
	return attendance.ExtraAllocation{
		Start: start,
		End:   start.Add(ExtraBlockHours * time.Hour),
	}
}

// round2 rounds to 2 decimal places for persistence and display.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
