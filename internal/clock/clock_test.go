package clock

import (
	"errors"
	"testing"
)

func TestSystemSampler_Bounds(t *testing.T) {
	s, err := SystemSampler{}.Sample()
	if err != nil {
		t.Fatalf("Sample() error = %v, want nil", err)
	}
	if s.Hour12 < 0 || s.Hour12 > 11 {
		t.Errorf("Hour12 = %d, want [0,11]", s.Hour12)
	}
	if s.Minute < 0 || s.Minute > 59 {
		t.Errorf("Minute = %d, want [0,59]", s.Minute)
	}
	if s.Second < 0 || s.Second > 59 {
		t.Errorf("Second = %d, want [0,59]", s.Second)
	}
	if s.Millisecond < 0 || s.Millisecond > 999 {
		t.Errorf("Millisecond = %d, want [0,999]", s.Millisecond)
	}
}

func TestFixedSampler(t *testing.T) {
	want := TimeSample{Hour12: 3, Minute: 15, Second: 30, Millisecond: 250}
	got, err := FixedSampler{T: want}.Sample()
	if err != nil {
		t.Fatalf("Sample() error = %v, want nil", err)
	}
	if got != want {
		t.Errorf("Sample() = %+v, want %+v", got, want)
	}

	sentinel := errors.New("clock read failed")
	if _, err := (FixedSampler{Err: sentinel}).Sample(); !errors.Is(err, sentinel) {
		t.Errorf("Sample() error = %v, want %v", err, sentinel)
	}
}
