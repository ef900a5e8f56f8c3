// Package clock provides the wall clock used outside tests.
package clock

import (
	"time"

	"crm/internal/domain/service"
)

type systemClock struct{}

// New returns a Clock backed by the time package.
func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) service.Timer {
	return time.AfterFunc(d, f)
}
