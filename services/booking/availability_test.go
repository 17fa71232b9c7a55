package booking

import (
	"reflect"
	"testing"
	"time"

	"myadvisor/models"
)

func schedule(s1start, s1end string) models.ShiftSchedule {
	return models.ShiftSchedule{AdvisorID: 1, Shift1Start: s1start, Shift1End: s1end}
}

func labels(slots []models.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Label)
	}
	return out
}

func TestComputeFreeWindows_EmptyDay(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	windows := ComputeFreeWindows(schedule("09:00", "12:00"), nil, day, day, 30*time.Minute)

	slots, ok := windows["2026-03-02"]
	if !ok {
		t.Fatalf("expected an entry for 2026-03-02, got keys %v", windows)
	}
	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if got := labels(slots); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected slots %v, got %v", want, got)
	}
	if !slots[0].Start.Equal(day.Add(9 * time.Hour)) {
		t.Errorf("expected first slot start 09:00, got %s", slots[0].Start)
	}
	if !slots[0].End.Equal(day.Add(9*time.Hour + 30*time.Minute)) {
		t.Errorf("expected first slot end 09:30, got %s", slots[0].End)
	}
}

func TestComputeFreeWindows_BookedInterval(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	appointments := []models.Appointment{
		{AdvisorID: 1, StartTime: day.Add(10 * time.Hour), EndTime: day.Add(11 * time.Hour)},
	}

	windows := ComputeFreeWindows(schedule("09:00", "12:00"), appointments, day, day, 30*time.Minute)

	want := []string{"09:00", "09:30", "11:00", "11:30"}
	if got := labels(windows["2026-03-02"]); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected slots %v, got %v", want, got)
	}
}

func TestComputeFreeWindows_TrailingPartialSlotDropped(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	windows := ComputeFreeWindows(schedule("09:00", "12:15"), nil, day, day, 30*time.Minute)

	// floor(195 / 30) = 6 slots; the 12:00 partial slot is dropped.
	if got := len(windows["2026-03-02"]); got != 6 {
		t.Fatalf("expected 6 slots, got %d (%v)", got, labels(windows["2026-03-02"]))
	}
}

func TestComputeFreeWindows_SecondShift(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	s2start, s2end := "14:00", "16:00"
	sched := schedule("09:00", "12:00")
	sched.Shift2Start = &s2start
	sched.Shift2End = &s2end

	windows := ComputeFreeWindows(sched, nil, day, day, 30*time.Minute)

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "14:00", "14:30", "15:00", "15:30"}
	if got := labels(windows["2026-03-02"]); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected shift1-then-shift2 slots %v, got %v", want, got)
	}
}

func TestComputeFreeWindows_MultiDayRange(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 4, 23, 59, 59, 0, time.UTC)

	windows := ComputeFreeWindows(schedule("08:00", "16:00"), nil, start, end, 30*time.Minute)

	if len(windows) != 3 {
		t.Fatalf("expected 3 date keys, got %d (%v)", len(windows), windows)
	}
	for _, date := range []string{"2026-03-02", "2026-03-03", "2026-03-04"} {
		if got := len(windows[date]); got != 16 {
			t.Errorf("expected 16 slots on %s, got %d", date, got)
		}
	}
}

func TestComputeFreeWindows_InvertedShift(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	windows := ComputeFreeWindows(schedule("12:00", "09:00"), nil, day, day, 30*time.Minute)

	if got := len(windows["2026-03-02"]); got != 0 {
		t.Fatalf("expected no slots for inverted shift, got %d", got)
	}
}

func TestComputeFreeWindows_MalformedShiftClock(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	windows := ComputeFreeWindows(schedule("nine", "12:00"), nil, day, day, 30*time.Minute)

	if got := len(windows["2026-03-02"]); got != 0 {
		t.Fatalf("expected no slots for malformed shift, got %d", got)
	}
}

func TestComputeFreeWindows_UnalignedAppointmentRemovesTouchedSlots(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	appointments := []models.Appointment{
		{AdvisorID: 1, StartTime: day.Add(10*time.Hour + 15*time.Minute), EndTime: day.Add(10*time.Hour + 45*time.Minute)},
	}

	windows := ComputeFreeWindows(schedule("09:00", "12:00"), appointments, day, day, 30*time.Minute)

	// The booking straddles the 10:00 and 10:30 slots; both go.
	want := []string{"09:00", "09:30", "11:00", "11:30"}
	if got := labels(windows["2026-03-02"]); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected slots %v, got %v", want, got)
	}
}

func TestComputeFreeWindows_OverlappingAppointmentsIdempotent(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	appointments := []models.Appointment{
		{AdvisorID: 1, StartTime: day.Add(10 * time.Hour), EndTime: day.Add(11 * time.Hour)},
		{AdvisorID: 1, StartTime: day.Add(10 * time.Hour), EndTime: day.Add(10*time.Hour + 30*time.Minute)},
	}

	windows := ComputeFreeWindows(schedule("09:00", "12:00"), appointments, day, day, 30*time.Minute)

	want := []string{"09:00", "09:30", "11:00", "11:30"}
	if got := labels(windows["2026-03-02"]); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected slots %v, got %v", want, got)
	}
}

func TestComputeFreeWindows_MidnightCrossingOnlyAffectsStartDay(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)
	// Starts 23:00 on day one, runs into the next morning.
	appointments := []models.Appointment{
		{AdvisorID: 1, StartTime: day.Add(23 * time.Hour), EndTime: next.Add(1 * time.Hour)},
	}

	windows := ComputeFreeWindows(schedule("21:00", "23:30"), appointments, day, next, 30*time.Minute)

	wantFirst := []string{"21:00", "21:30", "22:00", "22:30"}
	if got := labels(windows["2026-03-02"]); !reflect.DeepEqual(got, wantFirst) {
		t.Fatalf("expected day-one slots %v, got %v", wantFirst, got)
	}
	// Day matching is by start date only, so the second day keeps every slot.
	wantSecond := []string{"21:00", "21:30", "22:00", "22:30", "23:00"}
	if got := labels(windows["2026-03-03"]); !reflect.DeepEqual(got, wantSecond) {
		t.Fatalf("expected day-two slots %v, got %v", wantSecond, got)
	}
}

func TestComputeFreeWindows_Deterministic(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 3, 23, 59, 59, 0, time.UTC)
	appointments := []models.Appointment{
		{AdvisorID: 1, StartTime: start.Add(9 * time.Hour), EndTime: start.Add(10 * time.Hour)},
	}

	first := ComputeFreeWindows(schedule("09:00", "12:00"), appointments, start, end, 30*time.Minute)
	second := ComputeFreeWindows(schedule("09:00", "12:00"), appointments, start, end, 30*time.Minute)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output for identical inputs:\n%v\n%v", first, second)
	}
}

func TestComputeFreeWindows_DefaultSlotDuration(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	windows := ComputeFreeWindows(schedule("09:00", "12:00"), nil, day, day, 0)

	if got := len(windows["2026-03-02"]); got != 6 {
		t.Fatalf("expected 6 slots with the default duration, got %d", got)
	}
}
