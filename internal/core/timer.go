package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
// It also accumulates the simulated time that has passed, which renderers
// use to animate time-dependent shading.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	elapsed     time.Duration
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// TPS reports the current tick rate.
func (f *FixedStep) TPS() int {
	if f.step <= 0 {
		return 0
	}
	return int(time.Second / f.step)
}

// ShouldStep reports whether the simulation should advance by one tick.
// Each granted tick advances the simulated-time clock by one step.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		f.elapsed += f.step
		return true
	}
	return false
}

// Elapsed returns the simulated time granted so far, in seconds.
func (f *FixedStep) Elapsed() float64 {
	return f.elapsed.Seconds()
}
