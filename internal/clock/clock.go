package clock

import "time"

// System is the wall clock. It always reports UTC.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}
