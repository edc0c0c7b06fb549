package render

import (
	"fmt"

	"analogue-clock/internal/clock"
	"analogue-clock/internal/config"
)

// State of the frame driver loop.
type State int

const (
	Running State = iota
	Stopped
)

// Surface is the platform window the driver draws through. The raylib
// implementation lives in window.go; tests substitute a stub.
type Surface interface {
	// ShouldClose reports whether a quit request (window close or the
	// escape key) arrived since the last poll.
	ShouldClose() bool
	// Begin opens a frame.
	Begin()
	// End presents the frame and paces the loop to the target cadence.
	End()
}

// Scene draws one clock variant for a frame's hand angles.
type Scene interface {
	// Options selects this variant's hand interpolation.
	Options() clock.AngleOptions
	// Draw clears the frame and renders face, markers, hands, and hub.
	Draw(angles clock.HandAngles)
	// Apply installs a reloaded theme before the next frame.
	Apply(cfg config.Config)
}

// Driver owns the render loop: one tick samples the time, computes hand
// angles, and hands them to the scene. It is strictly sequential; the
// only shared input is the theme update channel, drained non-blockingly
// at tick boundaries.
type Driver struct {
	surface Surface
	sampler clock.Sampler
	scene   Scene
	updates <-chan config.Config
	state   State
}

// NewDriver wires a driver; updates may be nil when no theme file is
// being watched.
func NewDriver(surface Surface, sampler clock.Sampler, scene Scene, updates <-chan config.Config) *Driver {
	return &Driver{
		surface: surface,
		sampler: sampler,
		scene:   scene,
		updates: updates,
	}
}

func (d *Driver) State() State { return d.state }

// Stop requests the loop to end at the next tick boundary.
func (d *Driver) Stop() { d.state = Stopped }

// Run drives frames until a quit request or a failed time read. A quit
// is observed at the next poll, at most one frame of latency. A time
// source failure is fatal: no partial frame is presented.
func (d *Driver) Run() error {
	d.state = Running
	for d.state == Running {
		if d.surface.ShouldClose() {
			d.Stop()
			break
		}

		select {
		case cfg, ok := <-d.updates:
			if ok {
				d.scene.Apply(cfg)
			}
		default:
		}

		sample, err := d.sampler.Sample()
		if err != nil {
			d.Stop()
			return fmt.Errorf("time source: %w", err)
		}
		angles := clock.Angles(sample, d.scene.Options())

		d.surface.Begin()
		d.scene.Draw(angles)
		d.surface.End()
	}
	return nil
}
