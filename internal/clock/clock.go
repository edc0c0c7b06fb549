package clock

import "time"

// TimeSample is one wall-clock reading. It is taken once per frame and
// stays fixed for that frame.
type TimeSample struct {
	Hour12      int // [0,11]
	Minute      int // [0,59]
	Second      int // [0,59]
	Millisecond int // [0,999]
}

// Sampler provides the current time of day; swappable for deterministic
// tests.
type Sampler interface {
	Sample() (TimeSample, error)
}

// SystemSampler reads the local wall clock with millisecond resolution.
type SystemSampler struct{}

func (SystemSampler) Sample() (TimeSample, error) {
	now := time.Now()
	hour, minute, second := now.Clock()
	return TimeSample{
		Hour12:      hour % 12,
		Minute:      minute,
		Second:      second,
		Millisecond: now.Nanosecond() / 1e6,
	}, nil
}

// FixedSampler returns the same sample (or error) on every call.
type FixedSampler struct {
	T   TimeSample
	Err error
}

func (f FixedSampler) Sample() (TimeSample, error) { return f.T, f.Err }
