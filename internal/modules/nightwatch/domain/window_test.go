package domain_test

import (
	"errors"
	"testing"
	"time"

	"focusd/internal/modules/nightwatch/domain"
	apperrors "focusd/internal/platform/errors"
)

func at(hour int) time.Time {
	return time.Date(2026, 8, 24, hour, 30, 0, 0, time.Local)
}

func TestDefaultWindowBoundaries(t *testing.T) {
	t.Parallel()
	window := domain.Default()

	cases := []struct {
		hour int
		want bool
	}{
		{0, true},  // start bound inclusive
		{3, true},  // middle of the night
		{5, true},  // last blocked hour
		{6, false}, // end bound exclusive
		{12, false},
		{23, false},
	}
	for _, tc := range cases {
		if got := window.Contains(at(tc.hour)); got != tc.want {
			t.Fatalf("hour %d: expected %t, got %t", tc.hour, tc.want, got)
		}
	}
}

func TestCustomWindowContains(t *testing.T) {
	t.Parallel()
	window := domain.Window{StartHour: 22, EndHour: 24}
	if !window.Contains(at(23)) {
		t.Fatalf("23:30 must fall inside [22,24)")
	}
	if window.Contains(at(21)) {
		t.Fatalf("21:30 must fall outside [22,24)")
	}
}

func TestWindowValidate(t *testing.T) {
	t.Parallel()
	valid := []domain.Window{
		{StartHour: 0, EndHour: 6},
		{StartHour: 0, EndHour: 24},
		{StartHour: 23, EndHour: 24},
	}
	for _, w := range valid {
		if err := w.Validate(); err != nil {
			t.Fatalf("window %+v must validate, got %v", w, err)
		}
	}

	invalid := []domain.Window{
		{StartHour: -1, EndHour: 6},
		{StartHour: 6, EndHour: 6},
		{StartHour: 7, EndHour: 6},
		{StartHour: 0, EndHour: 25},
	}
	for _, w := range invalid {
		if err := w.Validate(); !errors.Is(err, apperrors.ErrInvalidWindow) {
			t.Fatalf("window %+v must fail validation, got %v", w, err)
		}
	}
}
