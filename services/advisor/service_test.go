package advisor

import (
	"errors"
	"testing"

	"myadvisor/models"
)

func strPtr(s string) *string { return &s }

func TestValidateSchedule_SingleShift(t *testing.T) {
	err := validateSchedule(models.ShiftSchedule{Shift1Start: "09:00", Shift1End: "17:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateSchedule_InvertedShiftRejected(t *testing.T) {
	err := validateSchedule(models.ShiftSchedule{Shift1Start: "17:00", Shift1End: "09:00"})
	if !errors.Is(err, ErrInvalidShift) {
		t.Fatalf("expected ErrInvalidShift, got %v", err)
	}
}

func TestValidateSchedule_OverlappingSecondShiftRejected(t *testing.T) {
	err := validateSchedule(models.ShiftSchedule{
		Shift1Start: "09:00", Shift1End: "13:00",
		Shift2Start: strPtr("12:00"), Shift2End: strPtr("18:00"),
	})
	if !errors.Is(err, ErrInvalidShift) {
		t.Fatalf("expected ErrInvalidShift, got %v", err)
	}
}

func TestValidateSchedule_DisjointSecondShift(t *testing.T) {
	err := validateSchedule(models.ShiftSchedule{
		Shift1Start: "09:00", Shift1End: "12:00",
		Shift2Start: strPtr("14:00"), Shift2End: strPtr("18:00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateSchedule_HalfConfiguredSecondShiftRejected(t *testing.T) {
	err := validateSchedule(models.ShiftSchedule{
		Shift1Start: "09:00", Shift1End: "12:00",
		Shift2Start: strPtr("14:00"),
	})
	if !errors.Is(err, ErrInvalidShift) {
		t.Fatalf("expected ErrInvalidShift, got %v", err)
	}
}

func TestValidateSchedule_MalformedClockRejected(t *testing.T) {
	err := validateSchedule(models.ShiftSchedule{Shift1Start: "9am", Shift1End: "17:00"})
	if !errors.Is(err, ErrInvalidShift) {
		t.Fatalf("expected ErrInvalidShift, got %v", err)
	}
}
