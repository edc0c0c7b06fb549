package clock

import (
	"math"
	"testing"
)

func TestAngles_HourHandCreep(t *testing.T) {
	for hour := 0; hour < 12; hour++ {
		prev := -1.0
		for minute := 0; minute < 60; minute++ {
			a := Angles(TimeSample{Hour12: hour, Minute: minute}, AngleOptions{})
			want := float64(hour)*30 + float64(minute)*0.5
			if a.Hour != want {
				t.Fatalf("Angles(%d:%02d).Hour = %v, want %v", hour, minute, a.Hour, want)
			}
			if a.Hour <= prev {
				t.Fatalf("hour angle not strictly increasing at %d:%02d", hour, minute)
			}
			prev = a.Hour
		}
	}
}

func TestAngles_MinuteHandRange(t *testing.T) {
	for minute := 0; minute < 60; minute++ {
		for second := 0; second < 60; second++ {
			a := Angles(TimeSample{Minute: minute, Second: second}, AngleOptions{SmoothMinute: true})
			lo := float64(minute) * 6
			hi := lo + 5.9
			if a.Minute < lo || a.Minute > hi+1e-9 {
				t.Fatalf("Minute angle %v out of [%v, %v] at %02d:%02d", a.Minute, lo, hi, minute, second)
			}
		}
	}
}

func TestAngles_SecondHandBounds(t *testing.T) {
	smooth := AngleOptions{SmoothSecond: true}

	a := Angles(TimeSample{}, smooth)
	if a.Second != 0 {
		t.Errorf("Second angle at 0s0ms = %v, want 0", a.Second)
	}

	a = Angles(TimeSample{Second: 59, Millisecond: 999}, smooth)
	if math.Abs(a.Second-359.994) > 1e-9 {
		t.Errorf("Second angle at 59s999ms = %v, want 359.994", a.Second)
	}
	if a.Second >= 360 {
		t.Errorf("Second angle %v must stay below 360", a.Second)
	}
}

func TestAngles_AllOutputsWrapped(t *testing.T) {
	opts := AngleOptions{SmoothMinute: true, SmoothSecond: true}
	for hour := 0; hour < 12; hour++ {
		for minute := 0; minute < 60; minute += 7 {
			for second := 0; second < 60; second += 11 {
				a := Angles(TimeSample{Hour12: hour, Minute: minute, Second: second, Millisecond: 999}, opts)
				for name, deg := range map[string]float64{"hour": a.Hour, "minute": a.Minute, "second": a.Second} {
					if deg < 0 || deg >= 360 {
						t.Fatalf("%s angle %v out of [0, 360) at %d:%02d:%02d", name, deg, hour, minute, second)
					}
				}
			}
		}
	}
}

func TestAngles_TickingHandsIgnoreSubUnits(t *testing.T) {
	a := Angles(TimeSample{Minute: 30, Second: 45, Millisecond: 500}, AngleOptions{})
	if a.Minute != 180 {
		t.Errorf("ticking minute angle = %v, want 180", a.Minute)
	}
	if a.Second != 270 {
		t.Errorf("ticking second angle = %v, want 270", a.Second)
	}
}

func TestAngles_CardinalPositions(t *testing.T) {
	a := Angles(TimeSample{Hour12: 3}, AngleOptions{})
	if a.Hour != 90 {
		t.Errorf("hour angle at 3:00:00 = %v, want 90", a.Hour)
	}
	a = Angles(TimeSample{}, AngleOptions{})
	if a.Hour != 0 {
		t.Errorf("hour angle at 12:00:00 = %v, want 0", a.Hour)
	}
}
