package clock

import "time"

// Clock supplies the current time. Services take a Clock instead of calling
// time.Now directly so tests can simulate elapsed work hours.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}
