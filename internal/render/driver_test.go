package render

import (
	"errors"
	"testing"

	"analogue-clock/internal/clock"
	"analogue-clock/internal/config"
)

// stubSurface reports a close request after a fixed number of polls.
type stubSurface struct {
	closeAfter int
	polls      int
	frames     int
}

func (s *stubSurface) ShouldClose() bool {
	s.polls++
	return s.polls > s.closeAfter
}
func (s *stubSurface) Begin() {}
func (s *stubSurface) End()   { s.frames++ }

// stubScene records the angles it was asked to draw.
type stubScene struct {
	opts    clock.AngleOptions
	drawn   []clock.HandAngles
	applied []config.Config
}

func (s *stubScene) Options() clock.AngleOptions { return s.opts }
func (s *stubScene) Draw(a clock.HandAngles)     { s.drawn = append(s.drawn, a) }
func (s *stubScene) Apply(cfg config.Config)     { s.applied = append(s.applied, cfg) }

func TestDriver_QuitStopsWithinOnePollCycle(t *testing.T) {
	surface := &stubSurface{closeAfter: 3}
	scene := &stubScene{}
	d := NewDriver(surface, clock.FixedSampler{}, scene, nil)

	if err := d.Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if d.State() != Stopped {
		t.Errorf("state = %v, want Stopped", d.State())
	}
	if surface.frames != 3 {
		t.Errorf("frames presented = %d, want 3", surface.frames)
	}
	if len(scene.drawn) != 3 {
		t.Errorf("scene drawn %d times, want 3", len(scene.drawn))
	}
}

func TestDriver_DrawsAnglesFromSampler(t *testing.T) {
	surface := &stubSurface{closeAfter: 1}
	scene := &stubScene{opts: clock.AngleOptions{SmoothMinute: true}}
	sampler := clock.FixedSampler{T: clock.TimeSample{Hour12: 3, Minute: 30, Second: 15}}

	if err := NewDriver(surface, sampler, scene, nil).Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if len(scene.drawn) != 1 {
		t.Fatalf("scene drawn %d times, want 1", len(scene.drawn))
	}
	a := scene.drawn[0]
	if a.Hour != 105 {
		t.Errorf("hour angle = %v, want 105", a.Hour)
	}
	if a.Minute != 181.5 {
		t.Errorf("minute angle = %v, want 181.5 (smooth minute)", a.Minute)
	}
}

func TestDriver_TimeSourceFailureIsFatal(t *testing.T) {
	surface := &stubSurface{closeAfter: 100}
	scene := &stubScene{}
	sentinel := errors.New("clock read failed")

	err := NewDriver(surface, clock.FixedSampler{Err: sentinel}, scene, nil).Run()
	if !errors.Is(err, sentinel) {
		t.Fatalf("Run() error = %v, want %v", err, sentinel)
	}
	if surface.frames != 0 {
		t.Errorf("frames presented = %d, want 0 (no partial frame)", surface.frames)
	}
}

func TestDriver_AppliesThemeUpdates(t *testing.T) {
	surface := &stubSurface{closeAfter: 2}
	scene := &stubScene{}

	updates := make(chan config.Config, 1)
	cfg := config.Default()
	cfg.Colors.SecondHand = "0 1 0"
	updates <- cfg

	if err := NewDriver(surface, clock.FixedSampler{}, scene, updates).Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if len(scene.applied) != 1 {
		t.Fatalf("theme applied %d times, want 1", len(scene.applied))
	}
	if scene.applied[0].Colors.SecondHand != "0 1 0" {
		t.Errorf("applied second hand color = %q, want update", scene.applied[0].Colors.SecondHand)
	}
}

func TestDriver_StopIsIdempotent(t *testing.T) {
	d := NewDriver(&stubSurface{}, clock.FixedSampler{}, &stubScene{}, nil)
	d.Stop()
	d.Stop()
	if d.State() != Stopped {
		t.Errorf("state = %v, want Stopped", d.State())
	}
}
