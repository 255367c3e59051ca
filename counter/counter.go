package counter

// Counter accumulates generator draws and tracks how fast they arrive.
type Counter interface {
	// Value returns the total number of draws recorded.
	Value() int64
	// RatePerSec returns the draw rate measured over the last completed period.
	RatePerSec() int64

	Add(draws int64)
}
