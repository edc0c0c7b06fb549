package clock

// HandAngles holds the three hand angles in degrees clockwise from
// 12 o'clock, each in [0, 360).
type HandAngles struct {
	Hour   float64
	Minute float64
	Second float64
}

// AngleOptions selects sub-unit interpolation for smooth hand motion.
// The zero value gives ticking minute and second hands.
type AngleOptions struct {
	SmoothMinute bool // nudge the minute hand along with the seconds
	SmoothSecond bool // nudge the second hand along with the milliseconds
}

// Angles maps a time sample to hand angles. The hour hand always creeps
// with the minutes (0.5 degrees per minute); finer interpolation for the
// other hands is opted into per render variant. Inputs are bounded, so
// every result already lands in [0, 360) without wrapping.
func Angles(t TimeSample, opts AngleOptions) HandAngles {
	a := HandAngles{
		Hour:   float64(t.Hour12)*30 + float64(t.Minute)*0.5,
		Minute: float64(t.Minute) * 6,
		Second: float64(t.Second) * 6,
	}
	if opts.SmoothMinute {
		a.Minute += float64(t.Second) * 0.1
	}
	if opts.SmoothSecond {
		a.Second += float64(t.Millisecond) * 0.006
	}
	return a
}
