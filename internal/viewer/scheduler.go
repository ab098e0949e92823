package viewer

import "time"

// Scheduler moves work off the UI loop and results back onto it
type Scheduler interface {
	// Go runs work off the loop, then done on the loop.
	Go(work func(), done func())
	// Post runs f on the loop.
	Post(f func())
	// AfterFunc runs f on the loop once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc call
type Timer interface {
	// Stop prevents the call and reports whether it was still pending.
	Stop() bool
}
