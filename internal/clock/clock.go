// Package clock supplies payment timestamps.
package clock

import "time"

// Clock stamps receipts. Services take one so tests can pin the time.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// System reports the wall clock in UTC.
func System() Clock {
	return Func(func() time.Time { return time.Now().UTC() })
}

// Fixed always reports t.
func Fixed(t time.Time) Clock {
	t = t.UTC()
	return Func(func() time.Time { return t })
}
