package service

import "time"

// Option configures optional collaborators shared by all lifecycle services.
type Option func(*options)

type options struct {
	auditor string
	now     func() time.Time
}

// WithAuditor sets the name stamped into created_by and updated_by.
// An empty name keeps the service default.
func WithAuditor(name string) Option {
	return func(o *options) {
		if name != "" {
			o.auditor = name
		}
	}
}

// WithClock replaces time.Now as the source of audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(defaultAuditor string, opts []Option) options {
	o := options{
		auditor: defaultAuditor,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
