package randlib

import "time"

type Options struct {
	clock func() time.Time
}

type Option func(opts *Options)

func newOptions(opts ...Option) *Options {
	var opt Options
	for _, o := range opts {
		o(&opt)
	}
	if opt.clock == nil {
		opt.clock = time.Now
	}
	return &opt
}

// WithClock replaces the wall clock consulted while seeding.
func WithClock(clock func() time.Time) Option {
	return func(opts *Options) {
		opts.clock = clock
	}
}
