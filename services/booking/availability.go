// services/booking/availability.go
package booking

import (
	"time"

	"myadvisor/models"
)

// DefaultSlotDuration is the fixed bookable granularity.
const DefaultSlotDuration = 30 * time.Minute

const dateLayout = "2006-01-02"
const clockLayout = "15:04"

// ComputeFreeWindows computes the advisor's bookable slots for every calendar
// day in [rangeStart, rangeEnd] inclusive, given their shift configuration and
// the appointments already booked in that window. It is a pure function: no
// I/O, no shared state, deterministic for identical inputs.
//
// Days are processed independently. An appointment is matched to a day by its
// start date only, so an appointment crossing midnight is only removed from
// the slots of the day it starts on.
func ComputeFreeWindows(
	schedule models.ShiftSchedule,
	appointments []models.Appointment,
	rangeStart, rangeEnd time.Time,
	slotDuration time.Duration,
) models.FreeWindowSet {
	if slotDuration <= 0 {
		slotDuration = DefaultSlotDuration
	}

	windows := make(models.FreeWindowSet)

	first := dayOf(rangeStart)
	last := dayOf(rangeEnd)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(dateLayout)

		var dayAppointments []models.Appointment
		for _, appt := range appointments {
			if appt.StartTime.Format(dateLayout) == dateStr {
				dayAppointments = append(dayAppointments, appt)
			}
		}

		slots := shiftSlots(d, schedule.Shift1Start, schedule.Shift1End, slotDuration, dayAppointments)
		if schedule.HasSecondShift() {
			slots = append(slots, shiftSlots(d, *schedule.Shift2Start, *schedule.Shift2End, slotDuration, dayAppointments)...)
		}
		windows[dateStr] = slots
	}

	return windows
}

// shiftSlots discretizes one shift of one day into slots and removes those
// occupied by appointments. An inverted or malformed shift yields an empty
// list rather than an error.
func shiftSlots(day time.Time, startClock, endClock string, slotDuration time.Duration, appointments []models.Appointment) []models.TimeSlot {
	slots := []models.TimeSlot{}

	shiftStart, ok := atClock(day, startClock)
	if !ok {
		return slots
	}
	shiftEnd, ok := atClock(day, endClock)
	if !ok {
		return slots
	}
	if !shiftEnd.After(shiftStart) {
		return slots
	}

	occupied := make(map[int64]struct{})
	for _, appt := range appointments {
		end := appt.EndTime
		if shiftEnd.Before(end) {
			end = shiftEnd
		}
		// Occupied ticks start on the slot grid at or before the appointment
		// start, so a booking not aligned to a slot boundary still knocks out
		// every slot it touches.
		for t := alignToGrid(appt.StartTime, shiftStart, slotDuration); t.Before(end); t = t.Add(slotDuration) {
			occupied[t.Unix()] = struct{}{}
		}
	}

	// Trailing partial slots at shift end are dropped.
	for t := shiftStart; !t.Add(slotDuration).After(shiftEnd); t = t.Add(slotDuration) {
		if _, taken := occupied[t.Unix()]; taken {
			continue
		}
		slots = append(slots, models.TimeSlot{
			Start: t,
			End:   t.Add(slotDuration),
			Label: t.Format(clockLayout),
		})
	}

	return slots
}

// alignToGrid floors t onto the slot grid anchored at gridStart.
func alignToGrid(t, gridStart time.Time, slotDuration time.Duration) time.Time {
	offset := t.Sub(gridStart)
	steps := offset / slotDuration
	if offset < 0 && offset%slotDuration != 0 {
		steps--
	}
	return gridStart.Add(steps * slotDuration)
}

// atClock resolves a "HH:MM" time-of-day onto the given calendar day.
func atClock(day time.Time, clock string) (time.Time, bool) {
	parsed, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), true
}

// dayOf truncates a timestamp to 00:00:00 of its calendar day.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
