package engine

import "time"

// Clock supplies the ledger's notion of current time (unix seconds). Offer
// windows are compared against it at the moment an operation is admitted.
type Clock interface {
	Now() int64
}

type systemClock struct{}

func (systemClock) Now() int64 {
	return time.Now().Unix()
}

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return systemClock{}
}
