package sortbench

import "time"

// Clock is a source of monotonic timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process monotonic clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Timer measures single algorithm invocations.
type Timer struct {
	clock Clock
}

// NewTimer returns a timer reading clock. A nil clock means SystemClock.
func NewTimer(clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timer{clock: clock}
}

// Time runs alg on a and returns the elapsed wall-clock seconds. The array
// is sorted as a side effect and is not restored. If the sort fails its
// error is returned with zero elapsed time.
func (t *Timer) Time(alg Algorithm, a []int32) (float64, error) {
	start := t.clock.Now()
	err := alg.Sort(a)
	stop := t.clock.Now()
	if err != nil {
		return 0, err
	}
	return stop.Sub(start).Seconds(), nil
}
